package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidPhoneNumber(t *testing.T) {
	valid := []string{"12345678", "919876543210", "123456789012345"}
	for _, phone := range valid {
		assert.True(t, IsValidPhoneNumber(phone), "expected %q to be valid", phone)
	}

	invalid := []string{
		"",
		"1234567",          // too short
		"1234567890123456", // too long
		"+919876543210",    // punctuation
		"98765 43210",      // whitespace
		"abcdefgh",
	}
	for _, phone := range invalid {
		assert.False(t, IsValidPhoneNumber(phone), "expected %q to be invalid", phone)
	}
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("f47ac10b-58cc-4372-a567-0e02b2c3d479"))
	assert.True(t, IsValidUUID("F47AC10B-58CC-4372-A567-0E02B2C3D479"))
	assert.False(t, IsValidUUID("f47ac10b58cc4372a5670e02b2c3d479"))
	assert.False(t, IsValidUUID("not-a-uuid"))
	assert.False(t, IsValidUUID(""))
}

type sampleRequest struct {
	Email string `validate:"required,email"`
	Name  string `validate:"required,min=2"`
}

func (r *sampleRequest) Validate() error {
	return Struct(r)
}

func TestValidateStruct(t *testing.T) {
	t.Run("valid passes", func(t *testing.T) {
		req := &sampleRequest{Email: "host@example.com", Name: "Asha"}

		msg, fieldErrors := validateStruct(req)

		assert.Empty(t, msg)
		assert.Nil(t, fieldErrors)
	})

	t.Run("failures map to field errors", func(t *testing.T) {
		req := &sampleRequest{Email: "not-an-email"}

		msg, fieldErrors := validateStruct(req)

		assert.Equal(t, "Validation failed", msg)
		require.Len(t, fieldErrors, 2)
		assert.Equal(t, "email", fieldErrors[0].Field)
		assert.Equal(t, "must be a valid email address", fieldErrors[0].Error)
		assert.Equal(t, "name", fieldErrors[1].Field)
		assert.Equal(t, "is required", fieldErrors[1].Error)
	})
}

type customRuleRequest struct{}

func (r *customRuleRequest) Validate() error {
	return CustomValidationErrors{
		{Field: "phone_number", Message: "must be 8 to 15 digits"},
	}
}

func TestCustomValidationErrors(t *testing.T) {
	msg, fieldErrors := validateStruct(&customRuleRequest{})

	assert.Equal(t, "Validation failed", msg)
	require.Len(t, fieldErrors, 1)
	assert.Equal(t, "phone_number", fieldErrors[0].Field)
	assert.Equal(t, "must be 8 to 15 digits", fieldErrors[0].Error)
}
