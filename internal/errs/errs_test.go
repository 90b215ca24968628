package errs

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "NOT_FOUND", MakeUpperCaseWithUnderscores("Not Found"))
	assert.Equal(t, "OK", MakeUpperCaseWithUnderscores("OK"))
}

func TestConstructors(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		err := NewNotFoundError("Enquiry not found", true, nil)

		assert.Equal(t, http.StatusNotFound, err.Status)
		assert.Equal(t, "NOT_FOUND", err.Code)
		assert.Equal(t, "Enquiry not found", err.Message)
		assert.True(t, err.Override)
	})

	t.Run("not found with custom code", func(t *testing.T) {
		code := "ENQUIRY_MISSING"
		err := NewNotFoundError("gone", true, &code)

		assert.Equal(t, "ENQUIRY_MISSING", err.Code)
	})

	t.Run("invalid argument", func(t *testing.T) {
		err := NewInvalidArgumentError("skip must not be negative")

		assert.Equal(t, http.StatusBadRequest, err.Status)
		assert.Equal(t, "INVALID_ARGUMENT", err.Code)
		assert.True(t, err.Override)
	})

	t.Run("bad request with field errors", func(t *testing.T) {
		fields := []FieldError{{Field: "email", Error: "is required"}}
		err := NewBadRequestError("Validation failed", true, nil, fields, nil)

		assert.Equal(t, "BAD_REQUEST", err.Code)
		require.Len(t, err.Errors, 1)
		assert.Equal(t, "email", err.Errors[0].Field)
	})

	t.Run("conflict", func(t *testing.T) {
		err := NewConflictError("already exists", true, nil)

		assert.Equal(t, http.StatusConflict, err.Status)
		assert.Equal(t, "CONFLICT", err.Code)
	})

	t.Run("internal server error hides detail", func(t *testing.T) {
		err := NewInternalServerError()

		assert.Equal(t, http.StatusInternalServerError, err.Status)
		assert.Equal(t, http.StatusText(http.StatusInternalServerError), err.Message)
		assert.False(t, err.Override)
	})
}

func TestHTTPErrorIs(t *testing.T) {
	err := NewNotFoundError("x", false, nil)

	// Is matches on type, not on status or code.
	assert.ErrorIs(t, err, &HTTPError{})
}

func TestWithMessage(t *testing.T) {
	original := NewConflictError("original", true, nil)
	copied := original.WithMessage("replaced")

	assert.Equal(t, "replaced", copied.Message)
	assert.Equal(t, original.Code, copied.Code)
	assert.Equal(t, original.Status, copied.Status)
	assert.Equal(t, "original", original.Message)
}
