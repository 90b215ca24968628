// Package sqlerr normalizes PostgreSQL driver errors into application
// errors.
//
// Repositories let pgx errors bubble up; the global error handler calls
// HandleError to turn SQLSTATE codes (unique/foreign-key/not-null/check
// violations) and no-rows results into typed errs.HTTPError values with
// user-friendly messages.
package sqlerr
