package repository

import (
	"testing"

	"github.com/gostays/backend/internal/lib/utils"
	"github.com/stretchr/testify/assert"
)

func TestBuildEnquirySearchWhere(t *testing.T) {
	t.Run("no filters matches everything", func(t *testing.T) {
		where, args := buildEnquirySearchWhere(EnquirySearchFilters{})

		assert.Empty(t, where)
		assert.Empty(t, args)
	})

	t.Run("status is exact match", func(t *testing.T) {
		where, args := buildEnquirySearchWhere(EnquirySearchFilters{
			Status: utils.Ptr("PENDING"),
		})

		assert.Equal(t, " WHERE status = $1", where)
		assert.Equal(t, []any{"PENDING"}, args)
	})

	t.Run("phone is case-sensitive contains", func(t *testing.T) {
		where, args := buildEnquirySearchWhere(EnquirySearchFilters{
			PhoneNumber: utils.Ptr("98765"),
		})

		assert.Equal(t, " WHERE phone_number LIKE '%' || $1 || '%'", where)
		assert.Equal(t, []any{"98765"}, args)
	})

	t.Run("name fields are case-insensitive contains", func(t *testing.T) {
		where, _ := buildEnquirySearchWhere(EnquirySearchFilters{
			HostName: utils.Ptr("kumar"),
		})

		assert.Equal(t, " WHERE host_name ILIKE '%' || $1 || '%'", where)
	})

	t.Run("multiple filters are OR-combined in order", func(t *testing.T) {
		where, args := buildEnquirySearchWhere(EnquirySearchFilters{
			Status:      utils.Ptr("PENDING"),
			PhoneNumber: utils.Ptr("987"),
			Email:       utils.Ptr("host@example.com"),
		})

		assert.Equal(t,
			" WHERE status = $1 OR phone_number LIKE '%' || $2 || '%' OR email ILIKE '%' || $3 || '%'",
			where)
		assert.Equal(t, []any{"PENDING", "987", "host@example.com"}, args)
	})

	t.Run("empty-string filters are skipped", func(t *testing.T) {
		where, args := buildEnquirySearchWhere(EnquirySearchFilters{
			Status:      utils.Ptr(""),
			PhoneNumber: utils.Ptr(""),
			HostName:    utils.Ptr("kumar"),
		})

		assert.Equal(t, " WHERE host_name ILIKE '%' || $1 || '%'", where)
		assert.Equal(t, []any{"kumar"}, args)
	})

	t.Run("all empty strings match everything", func(t *testing.T) {
		where, args := buildEnquirySearchWhere(EnquirySearchFilters{
			Email:       utils.Ptr(""),
			CompanyName: utils.Ptr(""),
		})

		assert.Empty(t, where)
		assert.Empty(t, args)
	})

	t.Run("all seven filters numbered sequentially", func(t *testing.T) {
		where, args := buildEnquirySearchWhere(EnquirySearchFilters{
			Status:       utils.Ptr("PENDING"),
			PhoneNumber:  utils.Ptr("1"),
			IDCardNumber: utils.Ptr("2"),
			Email:        utils.Ptr("3"),
			HostName:     utils.Ptr("4"),
			CompanyName:  utils.Ptr("5"),
			ATPID:        utils.Ptr("6"),
		})

		assert.Len(t, args, 7)
		assert.Contains(t, where, "atp_id ILIKE '%' || $7 || '%'")
	})
}
