package validator

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type loginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

func TestFormatValidationError(t *testing.T) {
	v := validator.New()

	err := v.Struct(loginForm{Email: "nope", Password: "short"})
	assert.Equal(t, "email must be a valid email; password must be at least 8 characters", FormatValidationError(err))

	err = v.Struct(loginForm{})
	assert.Equal(t, "email is required; password is required", FormatValidationError(err))
}

func TestFormatValidationErrorPassesThroughOtherErrors(t *testing.T) {
	assert.Equal(t, "boom", FormatValidationError(errors.New("boom")))
}
