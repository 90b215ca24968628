package handler

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gostays/backend/internal/server"
	"github.com/labstack/echo/v4"
)

// OpenAPIHandler serves the interactive API docs UI. The UI is a static
// HTML page that loads its viewer from a CDN and reads the spec from
// the static folder.
type OpenAPIHandler struct {
	Handler
}

// NewOpenAPIHandler constructs the OpenAPI docs handler.
func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
	}
}

// ServeOpenAPIUI reads static/openapi.html and serves it as HTML.
// Caching is disabled so doc updates show up immediately.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	templateBytes, err := os.ReadFile("static/openapi.html")

	c.Response().Header().Set("Cache-Control", "no-cache")

	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	if err := c.HTML(http.StatusOK, string(templateBytes)); err != nil {
		return fmt.Errorf("failed to write HTML response: %w", err)
	}

	return nil
}
