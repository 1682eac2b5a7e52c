// Package validator adapts go-playground/validator to Echo's Validator
// interface so request DTOs can declare `validate` tags.
package validator

import (
	domainerrors "canopy/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// RequestValidator wraps a validator instance for Echo.
type RequestValidator struct {
	validate *validator.Validate
}

// New creates the validator used by the HTTP server.
func New() *RequestValidator {
	return &RequestValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Validation failures surface as the
// domain validation error so the error handler renders them uniformly.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
