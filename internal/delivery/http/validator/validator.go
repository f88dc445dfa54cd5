// Package validator adapts go-playground/validator to Echo's Validator
// interface so handlers can call c.Validate on bound requests.
package validator

import (
	"github.com/go-playground/validator/v10"
)

type echoValidator struct {
	validate *validator.Validate
}

// New creates an Echo-compatible request validator.
func New() *echoValidator {
	return &echoValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator.
func (v *echoValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
