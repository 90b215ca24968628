package handler

import (
	"net/http"

	"github.com/gostays/backend/internal/model"
	"github.com/gostays/backend/internal/server"
	"github.com/gostays/backend/internal/service"
	"github.com/gostays/backend/internal/validation"
	"github.com/labstack/echo/v4"
)

// GeographyHandler serves the district and grama panchayat lookup
// endpoints.
type GeographyHandler struct {
	Handler
	services *service.Services
}

// NewGeographyHandler constructs the geography handler.
func NewGeographyHandler(s *server.Server, services *service.Services) *GeographyHandler {
	return &GeographyHandler{
		Handler:  NewHandler(s),
		services: services,
	}
}

// --- Districts --------------------------------------------------------------

type CreateDistrictRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	State       string  `json:"state" validate:"required,min=2,max=100"`
	Code        *string `json:"code" validate:"omitempty,max=20"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

func (r *CreateDistrictRequest) Validate() error {
	return validation.Struct(r)
}

func (h *GeographyHandler) createDistrict(c echo.Context, req *CreateDistrictRequest) (*model.District, error) {
	return h.services.Geography.CreateDistrict(c.Request().Context(), req.Name, req.State, req.Code, req.Description)
}

type ListDistrictsRequest struct {
	Skip     int   `query:"skip" validate:"min=0"`
	Limit    int   `query:"limit" validate:"min=0,max=1000"`
	IsActive *bool `query:"is_active"`
}

func (r *ListDistrictsRequest) Validate() error {
	return validation.Struct(r)
}

func (h *GeographyHandler) listDistricts(c echo.Context, req *ListDistrictsRequest) ([]model.District, error) {
	return h.services.Geography.ListDistricts(c.Request().Context(), req.Skip, req.Limit, req.IsActive)
}

func (h *GeographyHandler) getDistrict(c echo.Context, req *IDRequest) (*model.District, error) {
	return h.services.Geography.GetDistrict(c.Request().Context(), req.ID)
}

type UpdateDistrictRequest struct {
	ID          int64   `param:"id" validate:"required,min=1"`
	Name        *string `json:"name" validate:"omitempty,min=2,max=100"`
	State       *string `json:"state" validate:"omitempty,min=2,max=100"`
	Code        *string `json:"code" validate:"omitempty,max=20"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	IsActive    *bool   `json:"is_active"`
}

func (r *UpdateDistrictRequest) Validate() error {
	return validation.Struct(r)
}

func (h *GeographyHandler) updateDistrict(c echo.Context, req *UpdateDistrictRequest) (*model.District, error) {
	return h.services.Geography.UpdateDistrict(c.Request().Context(),
		req.ID, req.Name, req.State, req.Code, req.Description, req.IsActive)
}

func (h *GeographyHandler) removeDistrict(c echo.Context, req *IDRequest) (*model.District, error) {
	return h.services.Geography.DeleteDistrict(c.Request().Context(), req.ID)
}

// --- Grama panchayats -------------------------------------------------------

type CreateGramaPanchayatRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=100"`
	DistrictID  int64    `json:"district_id" validate:"required,min=1"`
	Code        *string  `json:"code" validate:"omitempty,max=20"`
	Description *string  `json:"description" validate:"omitempty,max=500"`
	Population  *int     `json:"population" validate:"omitempty,min=0"`
	AreaSqKm    *float64 `json:"area_sq_km" validate:"omitempty,gt=0"`
}

func (r *CreateGramaPanchayatRequest) Validate() error {
	return validation.Struct(r)
}

func (h *GeographyHandler) createPanchayat(c echo.Context, req *CreateGramaPanchayatRequest) (*model.GramaPanchayat, error) {
	return h.services.Geography.CreateGramaPanchayat(c.Request().Context(), service.CreateGramaPanchayatInput{
		Name:        req.Name,
		DistrictID:  req.DistrictID,
		Code:        req.Code,
		Description: req.Description,
		Population:  req.Population,
		AreaSqKm:    req.AreaSqKm,
	})
}

func (h *GeographyHandler) getPanchayat(c echo.Context, req *IDRequest) (*model.GramaPanchayat, error) {
	return h.services.Geography.GetGramaPanchayat(c.Request().Context(), req.ID)
}

// ListGramaPanchayatsRequest lists the panchayats of a district.
type ListGramaPanchayatsRequest struct {
	DistrictID int64 `param:"district_id" validate:"required,min=1"`
}

func (r *ListGramaPanchayatsRequest) Validate() error {
	return validation.Struct(r)
}

func (h *GeographyHandler) listPanchayats(c echo.Context, req *ListGramaPanchayatsRequest) ([]model.GramaPanchayat, error) {
	return h.services.Geography.ListGramaPanchayats(c.Request().Context(), req.DistrictID)
}

type UpdateGramaPanchayatRequest struct {
	ID          int64    `param:"id" validate:"required,min=1"`
	Name        *string  `json:"name" validate:"omitempty,min=2,max=100"`
	Code        *string  `json:"code" validate:"omitempty,max=20"`
	Description *string  `json:"description" validate:"omitempty,max=500"`
	Population  *int     `json:"population" validate:"omitempty,min=0"`
	AreaSqKm    *float64 `json:"area_sq_km" validate:"omitempty,gt=0"`
	IsActive    *bool    `json:"is_active"`
}

func (r *UpdateGramaPanchayatRequest) Validate() error {
	return validation.Struct(r)
}

func (h *GeographyHandler) updatePanchayat(c echo.Context, req *UpdateGramaPanchayatRequest) (*model.GramaPanchayat, error) {
	return h.services.Geography.UpdateGramaPanchayat(c.Request().Context(), req.ID, service.UpdateGramaPanchayatInput{
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
		Population:  req.Population,
		AreaSqKm:    req.AreaSqKm,
		IsActive:    req.IsActive,
	})
}

func (h *GeographyHandler) removePanchayat(c echo.Context, req *IDRequest) (*model.GramaPanchayat, error) {
	return h.services.Geography.DeleteGramaPanchayat(c.Request().Context(), req.ID)
}

// --- Route factories --------------------------------------------------------

func (h *GeographyHandler) CreateDistrict() echo.HandlerFunc {
	return Handle(h.Handler, h.createDistrict, http.StatusCreated, "District created successfully")
}

func (h *GeographyHandler) ListDistricts() echo.HandlerFunc {
	return Handle(h.Handler, h.listDistricts, http.StatusOK, "Districts retrieved successfully")
}

func (h *GeographyHandler) GetDistrict() echo.HandlerFunc {
	return Handle(h.Handler, h.getDistrict, http.StatusOK, "District retrieved successfully")
}

func (h *GeographyHandler) UpdateDistrict() echo.HandlerFunc {
	return Handle(h.Handler, h.updateDistrict, http.StatusOK, "District updated successfully")
}

func (h *GeographyHandler) DeleteDistrict() echo.HandlerFunc {
	return Handle(h.Handler, h.removeDistrict, http.StatusOK, "District deleted successfully")
}

func (h *GeographyHandler) CreatePanchayat() echo.HandlerFunc {
	return Handle(h.Handler, h.createPanchayat, http.StatusCreated, "Grama panchayat created successfully")
}

func (h *GeographyHandler) GetPanchayat() echo.HandlerFunc {
	return Handle(h.Handler, h.getPanchayat, http.StatusOK, "Grama panchayat retrieved successfully")
}

func (h *GeographyHandler) ListPanchayats() echo.HandlerFunc {
	return Handle(h.Handler, h.listPanchayats, http.StatusOK, "Grama panchayats retrieved successfully")
}

func (h *GeographyHandler) UpdatePanchayat() echo.HandlerFunc {
	return Handle(h.Handler, h.updatePanchayat, http.StatusOK, "Grama panchayat updated successfully")
}

func (h *GeographyHandler) DeletePanchayat() echo.HandlerFunc {
	return Handle(h.Handler, h.removePanchayat, http.StatusOK, "Grama panchayat deleted successfully")
}
