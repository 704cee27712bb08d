//go:build unit

package validation

import (
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Code  string `json:"code" validate:"required"`
	Label string `json:"label" validate:"upper"`
	Skip  string `json:"-"`
}

func TestValidator_Struct(t *testing.T) {
	v, err := New()
	require.NoError(t, err)

	require.NoError(t, v.RegisterRule("upper", func(fl validator.FieldLevel) bool {
		return fl.Field().String() == strings.ToUpper(fl.Field().String())
	}, "{0} must be upper case"))

	structRequest := func(in sample, wantMsg string) func(t *testing.T) {
		return func(t *testing.T) {
			err := v.Struct(in)
			if wantMsg == "" {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			if diff := cmp.Diff(wantMsg, err.Error()); diff != "" {
				t.Fatalf("Struct() message mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("valid", structRequest(sample{Code: "SU", Label: "AEROFLOT"}, ""))
	t.Run("required_uses_json_name", structRequest(sample{Label: "TK"}, "code is a required field"))
	t.Run("custom_rule_message", structRequest(sample{Code: "SU", Label: "aeroflot"}, "label must be upper case"))
}
