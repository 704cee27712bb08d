package ticket

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/ijalalfrz/ticket-analysis-service/internal/pkg/validation"
	"github.com/shopspring/decimal"
)

// Validator applies the record policy: non-blank route codes, present date and
// time fields in the configured layouts, strictly positive price.
type Validator struct {
	rules *validation.Validator
}

func NewValidator(settings Settings) (*Validator, error) {
	rules, err := validation.New()
	if err != nil {
		return nil, err
	}

	// price tags run against the decimal sign so gt=0 stays exact
	rules.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.Sign()
		}
		return nil
	}, decimal.Decimal{})

	if err := rules.RegisterRule("notblank", validators.NotBlank, "{0} must not be blank"); err != nil {
		return nil, err
	}

	if err := rules.RegisterRule("date_layout", layoutRule(settings.DateLayout),
		fmt.Sprintf("{0} does not match date layout %q", settings.DateLayout)); err != nil {
		return nil, err
	}

	if err := rules.RegisterRule("time_layout", layoutRule(settings.TimeLayout),
		fmt.Sprintf("{0} does not match time layout %q", settings.TimeLayout)); err != nil {
		return nil, err
	}

	return &Validator{rules: rules}, nil
}

// Validate returns the first failed check, or nil when t may enter the pipeline.
func (v *Validator) Validate(t Ticket) error {
	return v.rules.Struct(t)
}

func layoutRule(layout string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		_, err := ParseLayout(layout, fl.Field().String())
		return err == nil
	}
}
