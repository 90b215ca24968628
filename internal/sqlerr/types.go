package sqlerr

// Code classifies a database error into the categories the application
// cares about. Anything unmapped is Other.
type Code int

const (
	Other Code = iota
	UniqueViolation
	ForeignKeyViolation
	NotNullViolation
	CheckViolation
	SerializationFailure
	InvalidTextRepresentation
)

// Severity mirrors the PostgreSQL error severity field.
type Severity int

const (
	SeverityUnknown Severity = iota
	SeverityError
	SeverityFatal
	SeverityPanic
)

// SQLSTATE codes this package maps. See PostgreSQL appendix A.
const (
	pgUniqueViolation           = "23505"
	pgForeignKeyViolation       = "23503"
	pgNotNullViolation          = "23502"
	pgCheckViolation            = "23514"
	pgSerializationFailure      = "40001"
	pgInvalidTextRepresentation = "22P02"
)

// MapCode maps a SQLSTATE string to a Code.
func MapCode(sqlstate string) Code {
	switch sqlstate {
	case pgUniqueViolation:
		return UniqueViolation
	case pgForeignKeyViolation:
		return ForeignKeyViolation
	case pgNotNullViolation:
		return NotNullViolation
	case pgCheckViolation:
		return CheckViolation
	case pgSerializationFailure:
		return SerializationFailure
	case pgInvalidTextRepresentation:
		return InvalidTextRepresentation
	default:
		return Other
	}
}

// MapSeverity maps a PostgreSQL severity string to a Severity.
func MapSeverity(severity string) Severity {
	switch severity {
	case "ERROR":
		return SeverityError
	case "FATAL":
		return SeverityFatal
	case "PANIC":
		return SeverityPanic
	default:
		return SeverityUnknown
	}
}

// Error is the normalized database error. It keeps the interesting
// metadata from pgconn.PgError and the original error for Unwrap.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string // original SQLSTATE
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string

	driverErr error
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the original driver error so errors.As keeps working
// against pgconn.PgError.
func (e *Error) Unwrap() error {
	return e.driverErr
}
