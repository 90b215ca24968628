package handler

import (
	"time"

	"github.com/gostays/backend/internal/validation"
)

// IDRequest is the request type for endpoints that only take a numeric
// path id.
type IDRequest struct {
	ID int64 `param:"id" validate:"required,min=1"`
}

func (r *IDRequest) Validate() error {
	return validation.Struct(r)
}

// dateLayout is the wire format for date-only fields.
const dateLayout = "2006-01-02"

// parseDate converts an optional date string into a time. The datetime
// validator tag has already checked the format, so a parse failure maps
// to nil rather than an error.
func parseDate(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil
	}
	return &t
}
