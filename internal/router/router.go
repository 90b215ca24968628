// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"github.com/gostays/backend/internal/handler"
	"github.com/gostays/backend/internal/middleware"
	"github.com/labstack/echo/v4"
)

// New builds the Echo instance with the full middleware chain and all
// routes registered. The order matters: recovery wraps everything,
// tracing starts the transaction before the context enhancer reads it,
// and the request logger runs last so it sees the final status.
func New(mw *middleware.Middlewares, h *handler.Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = mw.Global.GlobalErrorHandler

	e.Use(mw.Global.Recover())
	e.Use(mw.Global.Secure())
	e.Use(mw.Global.CORS())
	e.Use(middleware.RequestID())
	e.Use(mw.Tracing.NewRelicMiddleware())
	e.Use(mw.ContextEnhancer.EnhanceContext())
	e.Use(mw.Tracing.EnhanceTracing())
	e.Use(mw.Global.RequestLogger())

	registerSystemRoutes(e, h)
	registerAPIRoutes(e, h)

	return e
}
