// Package validation wraps go-playground/validator with an english translator so
// callers get one readable message per failed struct.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
}

// New builds a validator that reports fields by their json name.
func New() (*Validator, error) {
	validate := validator.New()

	uni := ut.New(en.New(), en.New())
	trans, _ := uni.GetTranslator("en")

	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, fmt.Errorf("register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{
		validate: validate,
		trans:    trans,
	}, nil
}

// RegisterRule adds a custom tag together with its message. {0} in message is
// replaced with the field name.
func (v *Validator) RegisterRule(tag string, fn validator.Func, message string) error {
	if err := v.validate.RegisterValidation(tag, fn); err != nil {
		return fmt.Errorf("register rule %s: %w", tag, err)
	}

	err := v.validate.RegisterTranslation(tag, v.trans,
		func(trans ut.Translator) error {
			return trans.Add(tag, message, true)
		},
		func(trans ut.Translator, fe validator.FieldError) string {
			msg, err := trans.T(tag, fe.Field())
			if err != nil {
				return fe.Error()
			}
			return msg
		},
	)
	if err != nil {
		return fmt.Errorf("register translation %s: %w", tag, err)
	}

	return nil
}

// RegisterCustomTypeFunc lets tags run against a derived value of types, e.g. the
// sign of a decimal.
func (v *Validator) RegisterCustomTypeFunc(fn validator.CustomTypeFunc, types ...interface{}) {
	v.validate.RegisterCustomTypeFunc(fn, types...)
}

// Struct validates s and returns the first failure, translated.
func (v *Validator) Struct(s interface{}) error {
	if err := v.validate.Struct(s); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			return errors.New(ve[0].Translate(v.trans))
		}
		return err
	}
	return nil
}
