package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gostays/backend/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoRequest struct {
	Name string `json:"name" validate:"required,min=2"`
}

func (r *echoRequest) Validate() error {
	return validation.Struct(r)
}

func TestHandleSuccessEnvelope(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Asha"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	fn := Handle(Handler{}, func(c echo.Context, in *echoRequest) (map[string]string, error) {
		return map[string]string{"greeting": "hello " + in.Name}, nil
	}, http.StatusCreated, "Created successfully")

	require.NoError(t, fn(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)
	assert.Equal(t, "Created successfully", body.Message)

	data, ok := body.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "hello Asha", data["greeting"])
}

func TestHandleValidationFailure(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":""}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	fn := Handle(Handler{}, func(c echo.Context, in *echoRequest) (any, error) {
		called = true
		return nil, nil
	}, http.StatusOK, "ok")

	err := fn(c)

	require.Error(t, err)
	assert.False(t, called, "handler must not run when validation fails")
}

func TestHandleAllocatesFreshRequestPerCall(t *testing.T) {
	e := echo.New()

	var seen []*echoRequest
	fn := Handle(Handler{}, func(c echo.Context, in *echoRequest) (any, error) {
		seen = append(seen, in)
		return nil, nil
	}, http.StatusOK, "ok")

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Asha"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		c := e.NewContext(req, httptest.NewRecorder())
		require.NoError(t, fn(c))
	}

	require.Len(t, seen, 2)
	assert.NotSame(t, seen[0], seen[1])
}

func TestHandleNoContent(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("7")

	fn := HandleNoContent(Handler{}, func(c echo.Context, in *IDRequest) error {
		assert.Equal(t, int64(7), in.ID)
		return nil
	}, http.StatusNoContent)

	require.NoError(t, fn(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}
