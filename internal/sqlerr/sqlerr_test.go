package sqlerr

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapCode(t *testing.T) {
	tests := []struct {
		sqlstate string
		want     Code
	}{
		{"23505", UniqueViolation},
		{"23503", ForeignKeyViolation},
		{"23502", NotNullViolation},
		{"23514", CheckViolation},
		{"40001", SerializationFailure},
		{"22P02", InvalidTextRepresentation},
		{"42601", Other},
		{"", Other},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MapCode(tt.sqlstate), "sqlstate %q", tt.sqlstate)
	}
}

func TestMapSeverity(t *testing.T) {
	assert.Equal(t, SeverityError, MapSeverity("ERROR"))
	assert.Equal(t, SeverityFatal, MapSeverity("FATAL"))
	assert.Equal(t, SeverityPanic, MapSeverity("PANIC"))
	assert.Equal(t, SeverityUnknown, MapSeverity("NOTICE"))
}

func TestConvertPgError(t *testing.T) {
	src := &pgconn.PgError{
		Code:           "23505",
		Severity:       "ERROR",
		Message:        "duplicate key value violates unique constraint",
		TableName:      "users",
		ConstraintName: "users_email_key",
	}

	converted := ConvertPgError(src)

	assert.Equal(t, UniqueViolation, converted.Code)
	assert.Equal(t, SeverityError, converted.Severity)
	assert.Equal(t, "23505", converted.DatabaseCode)
	assert.Equal(t, "users", converted.TableName)

	// Unwrap keeps errors.As working against the driver error.
	var pgerr *pgconn.PgError
	require.ErrorAs(t, converted, &pgerr)
	assert.Same(t, src, pgerr)
}

func TestErrCode(t *testing.T) {
	converted := ConvertPgError(&pgconn.PgError{Code: "23503"})

	assert.Equal(t, ForeignKeyViolation, ErrCode(converted))
	assert.Equal(t, ForeignKeyViolation, ErrCode(errors.Wrap(converted, "table:properties: insert")))
	assert.Equal(t, Other, ErrCode(errors.New("plain error")))
}
