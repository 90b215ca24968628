package sqlerr

import (
	"net/http"
	"testing"

	"github.com/gostays/backend/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateErrorCode(t *testing.T) {
	tests := []struct {
		table   string
		errType Code
		want    string
	}{
		{"enquiries", UniqueViolation, "ENQUIRIE_ALREADY_EXISTS"},
		{"users", ForeignKeyViolation, "USER_NOT_FOUND"},
		{"properties", NotNullViolation, "PROPERTIE_REQUIRED"},
		{"rooms", CheckViolation, "ROOM_INVALID"},
		{"rooms", Other, "ROOM_ERROR"},
		{"", UniqueViolation, "RECORD_ALREADY_EXISTS"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, generateErrorCode(tt.table, tt.errType))
	}
}

func TestGetEntityName(t *testing.T) {
	// Column ending in _id wins over table name.
	assert.Equal(t, "User", getEntityName("properties", "user_id"))
	assert.Equal(t, "Property", getEntityName("properties", ""))
	assert.Equal(t, "District", getEntityName("districts", "name"))
	assert.Equal(t, "record", getEntityName("", ""))
}

func TestHumanizeText(t *testing.T) {
	assert.Equal(t, "Host Name", humanizeText("host_name"))
	assert.Equal(t, "Email", humanizeText("email"))
	assert.Equal(t, "", humanizeText(""))
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	tests := []struct {
		constraint string
		want       string
	}{
		{"unique_users_email", "email"},
		{"users_email_key", "email"},
		{"users_phone_number_key", "number"},
		{"enquiries_atp_id_ukey", "id"},
		{"pk_users", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, extractColumnForUniqueViolation(tt.constraint), "constraint %q", tt.constraint)
	}
}

func TestHandleError(t *testing.T) {
	t.Run("existing HTTPError passes through", func(t *testing.T) {
		original := errs.NewNotFoundError("Enquiry not found", true, nil)

		assert.Same(t, original, HandleError(original).(*errs.HTTPError))
	})

	t.Run("unique violation becomes conflict", func(t *testing.T) {
		err := HandleError(&pgconn.PgError{
			Code:           "23505",
			TableName:      "users",
			ConstraintName: "users_email_key",
		})

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusConflict, httpErr.Status)
		assert.Equal(t, "USER_ALREADY_EXISTS", httpErr.Code)
		assert.Contains(t, httpErr.Message, "Email")
	})

	t.Run("foreign key violation becomes bad request", func(t *testing.T) {
		err := HandleError(&pgconn.PgError{
			Code:       "23503",
			TableName:  "properties",
			ColumnName: "user_id",
		})

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Equal(t, "PROPERTIE_NOT_FOUND", httpErr.Code)
		assert.Contains(t, httpErr.Message, "User")
	})

	t.Run("not null violation carries field errors", func(t *testing.T) {
		err := HandleError(&pgconn.PgError{
			Code:       "23502",
			TableName:  "enquiries",
			ColumnName: "host_name",
		})

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		require.Len(t, httpErr.Errors, 1)
		assert.Equal(t, "host_name", httpErr.Errors[0].Field)
	})

	t.Run("no rows with table prefix names the entity", func(t *testing.T) {
		wrapped := errors.Wrap(pgx.ErrNoRows, "table:enquiries: get scan")

		err := HandleError(wrapped)

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusNotFound, httpErr.Status)
		assert.Equal(t, "Enquirie not found", httpErr.Message)
	})

	t.Run("no rows without prefix is generic", func(t *testing.T) {
		err := HandleError(pgx.ErrNoRows)

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusNotFound, httpErr.Status)
		assert.Equal(t, "Resource not found", httpErr.Message)
	})

	t.Run("unknown error becomes internal server error", func(t *testing.T) {
		err := HandleError(errors.New("connection reset"))

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	})
}
