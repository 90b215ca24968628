// Package errs defines the error types returned to API clients.
//
// Handlers, services, and repositories return *HTTPError values (or plain
// errors that the global error handler later converts) so the client always
// receives a consistent, actionable error shape.
package errs
