// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	domainerrors "wellkart/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// Validator wraps a shared validator instance for echo.
type Validator struct {
	validate *playground.Validate
}

// New constructs the echo validator.
func New() *Validator {
	return &Validator{validate: playground.New(playground.WithRequiredStructEnabled())}
}

// Validate checks struct tags and maps failures to the validation error envelope.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
