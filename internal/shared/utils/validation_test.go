package utils

import (
	stderrors "errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleForm struct {
	Username string `validate:"required"`
	Email    string `validate:"omitempty,email"`
	Action   string `validate:"omitempty,oneof=update delete"`
}

func TestFormErrorMessage_RequiredField(t *testing.T) {
	err := validator.New().Struct(sampleForm{})
	require.Error(t, err)

	msg := FormErrorMessage(err, "fallback")
	assert.Equal(t, "username is required", msg)
}

func TestFormErrorMessage_MultipleFields(t *testing.T) {
	err := validator.New().Struct(sampleForm{Email: "not-an-email", Action: "publish"})
	require.Error(t, err)

	msg := FormErrorMessage(err, "fallback")
	assert.Contains(t, msg, "username is required")
	assert.Contains(t, msg, "email must be a valid email address")
	assert.Contains(t, msg, "action must be one of [update delete]")
}

func TestFormErrorMessage_NonValidatorError(t *testing.T) {
	msg := FormErrorMessage(stderrors.New("unexpected EOF"), "invalid form")
	assert.Equal(t, "invalid form", msg)
}
