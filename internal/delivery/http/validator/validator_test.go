package validator

import (
	"net/http"
	"testing"

	domainerrors "wellkart/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registrationForm struct {
	Name  string `validate:"required"`
	Email string `validate:"required,email"`
}

func TestValidator_Validate_TaggedStruct(t *testing.T) {
	v := New()

	err := v.Validate(&registrationForm{Name: "Asha Rao", Email: "asha@example.com"})
	require.NoError(t, err)
}

func TestValidator_Validate_FailureMapsToValidationError(t *testing.T) {
	v := New()

	err := v.Validate(&registrationForm{Name: "Asha Rao", Email: ""})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "Email")
}

func TestValidator_Validate_BadEmailFormat(t *testing.T) {
	v := New()

	err := v.Validate(&registrationForm{Name: "Asha Rao", Email: "not-an-email"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}
