package dto

import (
	"github.com/ijalalfrz/ticket-analysis-service/internal/pkg/validation"
)

var requestValidator *validation.Validator

type ErrorResponse struct {
	Error string `json:"error"`
}

// InitValidator prepares the request validator. It must run before any Bind call.
func InitValidator() error {
	v, err := validation.New()
	if err != nil {
		return err
	}

	requestValidator = v

	return nil
}

func ValidateSingleError(req interface{}) error {
	return requestValidator.Struct(req)
}
