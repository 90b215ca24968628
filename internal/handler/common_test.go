package handler

import (
	"testing"
	"time"

	"github.com/gostays/backend/internal/lib/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, parseDate(nil))
	})

	t.Run("valid date parses", func(t *testing.T) {
		got := parseDate(utils.Ptr("1990-06-15"))

		require.NotNil(t, got)
		assert.Equal(t, time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC), *got)
	})

	t.Run("malformed date maps to nil", func(t *testing.T) {
		assert.Nil(t, parseDate(utils.Ptr("15/06/1990")))
	})
}

func TestCreateEnquiryRequestValidate(t *testing.T) {
	valid := CreateEnquiryRequest{
		HostName:    "Asha Kumar",
		PhoneNumber: "9876543210",
	}

	t.Run("minimal valid payload", func(t *testing.T) {
		req := valid
		assert.NoError(t, req.Validate())
	})

	t.Run("bad phone rejected", func(t *testing.T) {
		req := valid
		req.PhoneNumber = "+91-98765"

		assert.Error(t, req.Validate())
	})

	t.Run("bad alternate phone rejected", func(t *testing.T) {
		req := valid
		req.AlternatePhoneNumber = utils.Ptr("abc")

		assert.Error(t, req.Validate())
	})

	t.Run("unknown gender rejected", func(t *testing.T) {
		req := valid
		req.Gender = utils.Ptr("UNKNOWN")

		assert.Error(t, req.Validate())
	})
}

func TestCreateUserRequestValidate(t *testing.T) {
	valid := CreateUserRequest{
		AuthProvider: "EMAIL",
		UserType:     "HOST",
		Email:        utils.Ptr("host@example.com"),
		FullName:     "Asha Kumar",
	}

	t.Run("email only is enough", func(t *testing.T) {
		req := valid
		assert.NoError(t, req.Validate())
	})

	t.Run("phone only is enough", func(t *testing.T) {
		req := valid
		req.Email = nil
		req.PhoneNumber = utils.Ptr("9876543210")

		assert.NoError(t, req.Validate())
	})

	t.Run("neither email nor phone rejected", func(t *testing.T) {
		req := valid
		req.Email = nil

		assert.Error(t, req.Validate())
	})

	t.Run("invalid phone rejected", func(t *testing.T) {
		req := valid
		req.PhoneNumber = utils.Ptr("12")

		assert.Error(t, req.Validate())
	})
}

func TestCreateIssueRequestValidate(t *testing.T) {
	valid := CreateIssueRequest{
		Title:       "Broken water heater",
		Type:        "COMPLAINT",
		CreatedByID: 4,
	}

	t.Run("minimal valid payload", func(t *testing.T) {
		req := valid
		assert.NoError(t, req.Validate())
	})

	t.Run("unknown type rejected", func(t *testing.T) {
		req := valid
		req.Type = "FEEDBACK"

		assert.Error(t, req.Validate())
	})

	t.Run("unknown priority rejected", func(t *testing.T) {
		req := valid
		req.Priority = utils.Ptr("CRITICAL")

		assert.Error(t, req.Validate())
	})

	t.Run("non-url attachment rejected", func(t *testing.T) {
		req := valid
		req.Attachments = []string{"not a url"}

		assert.Error(t, req.Validate())
	})
}

func TestCreateExperienceRequestValidate(t *testing.T) {
	valid := CreateExperienceRequest{
		UserID: 4,
		Title:  "Backwater canoe trip",
	}

	t.Run("minimal valid payload", func(t *testing.T) {
		req := valid
		assert.NoError(t, req.Validate())
	})

	t.Run("unknown duration unit rejected", func(t *testing.T) {
		req := valid
		req.DurationUnit = utils.Ptr("WEEK")

		assert.Error(t, req.Validate())
	})

	t.Run("negative price rejected", func(t *testing.T) {
		req := valid
		req.Price = utils.Ptr(-1.0)

		assert.Error(t, req.Validate())
	})
}

func TestListAvailabilityRequestValidate(t *testing.T) {
	t.Run("no range is fine", func(t *testing.T) {
		req := ListAvailabilityRequest{PropertyID: 1}
		assert.NoError(t, req.Validate())
	})

	t.Run("full range is fine", func(t *testing.T) {
		req := ListAvailabilityRequest{
			PropertyID: 1,
			From:       utils.Ptr("2026-09-01"),
			To:         utils.Ptr("2026-09-10"),
		}
		assert.NoError(t, req.Validate())
	})

	t.Run("half a range rejected", func(t *testing.T) {
		req := ListAvailabilityRequest{
			PropertyID: 1,
			From:       utils.Ptr("2026-09-01"),
		}
		assert.Error(t, req.Validate())
	})
}
