package handler

import (
	"net/http"

	"github.com/gostays/backend/internal/model"
	"github.com/gostays/backend/internal/server"
	"github.com/gostays/backend/internal/service"
	"github.com/gostays/backend/internal/validation"
	"github.com/labstack/echo/v4"
)

// ExperienceHandler serves the host experience listing endpoints.
type ExperienceHandler struct {
	Handler
	services *service.Services
}

// NewExperienceHandler constructs the experience handler.
func NewExperienceHandler(s *server.Server, services *service.Services) *ExperienceHandler {
	return &ExperienceHandler{
		Handler:  NewHandler(s),
		services: services,
	}
}

type CreateExperienceRequest struct {
	UserID            int64    `json:"user_id" validate:"required,min=1"`
	AreaCoordinatorID *int64   `json:"area_coordinator_id" validate:"omitempty,min=1"`
	Title             string   `json:"title" validate:"required,min=3,max=255"`
	Category          *string  `json:"category" validate:"omitempty,max=100"`
	Subcategory       *string  `json:"subcategory" validate:"omitempty,max=100"`
	Duration          *int     `json:"duration" validate:"omitempty,min=1"`
	DurationUnit      *string  `json:"duration_unit" validate:"omitempty,oneof=MINUTE HOUR DAY"`
	GroupSize         *int     `json:"group_size" validate:"omitempty,min=1"`
	Languages         []string `json:"languages" validate:"omitempty,dive,min=1"`
	Description       *string  `json:"description" validate:"omitempty,max=5000"`
	Included          []string `json:"included"`
	Photos            []string `json:"photos" validate:"omitempty,dive,url"`
	VideoURL          *string  `json:"video_url" validate:"omitempty,url"`
	SafetyItems       []string `json:"safety_items"`
	Price             *float64 `json:"price" validate:"omitempty,gte=0"`
	IsPriceByGuest    *bool    `json:"is_price_by_guest"`
	IncludedInPrice   []string `json:"included_in_price"`
	LegalDeclarations []string `json:"legal_declarations"`
}

func (r *CreateExperienceRequest) Validate() error {
	return validation.Struct(r)
}

func (h *ExperienceHandler) create(c echo.Context, req *CreateExperienceRequest) (*model.Experience, error) {
	return h.services.Experiences.Create(c.Request().Context(), service.CreateExperienceInput{
		UserID:            req.UserID,
		AreaCoordinatorID: req.AreaCoordinatorID,
		Title:             req.Title,
		Category:          req.Category,
		Subcategory:       req.Subcategory,
		Duration:          req.Duration,
		DurationUnit:      req.DurationUnit,
		GroupSize:         req.GroupSize,
		Languages:         req.Languages,
		Description:       req.Description,
		Included:          req.Included,
		Photos:            req.Photos,
		VideoURL:          req.VideoURL,
		SafetyItems:       req.SafetyItems,
		Price:             req.Price,
		IsPriceByGuest:    req.IsPriceByGuest,
		IncludedInPrice:   req.IncludedInPrice,
		LegalDeclarations: req.LegalDeclarations,
	})
}

type ListExperiencesRequest struct {
	Skip              int     `query:"skip" validate:"min=0"`
	Limit             int     `query:"limit" validate:"min=0,max=1000"`
	UserID            *int64  `query:"user_id" validate:"omitempty,min=1"`
	AreaCoordinatorID *int64  `query:"area_coordinator_id" validate:"omitempty,min=1"`
	Status            *string `query:"status" validate:"omitempty,oneof=ACTIVE BLOCKED DELETED"`
	ApprovalStatus    *string `query:"approval_status" validate:"omitempty,oneof=DRAFT PENDING APPROVED REJECTED"`
}

func (r *ListExperiencesRequest) Validate() error {
	return validation.Struct(r)
}

func (h *ExperienceHandler) list(c echo.Context, req *ListExperiencesRequest) ([]model.Experience, error) {
	return h.services.Experiences.List(c.Request().Context(), req.Skip, req.Limit, service.ExperienceListFilters{
		UserID:            req.UserID,
		AreaCoordinatorID: req.AreaCoordinatorID,
		Status:            req.Status,
		ApprovalStatus:    req.ApprovalStatus,
	})
}

func (h *ExperienceHandler) get(c echo.Context, req *IDRequest) (*model.Experience, error) {
	return h.services.Experiences.Get(c.Request().Context(), req.ID)
}

type UpdateExperienceRequest struct {
	ID                int64    `param:"id" validate:"required,min=1"`
	AreaCoordinatorID *int64   `json:"area_coordinator_id" validate:"omitempty,min=1"`
	Title             *string  `json:"title" validate:"omitempty,min=3,max=255"`
	Category          *string  `json:"category" validate:"omitempty,max=100"`
	Subcategory       *string  `json:"subcategory" validate:"omitempty,max=100"`
	Duration          *int     `json:"duration" validate:"omitempty,min=1"`
	DurationUnit      *string  `json:"duration_unit" validate:"omitempty,oneof=MINUTE HOUR DAY"`
	GroupSize         *int     `json:"group_size" validate:"omitempty,min=1"`
	Languages         []string `json:"languages" validate:"omitempty,dive,min=1"`
	Description       *string  `json:"description" validate:"omitempty,max=5000"`
	Included          []string `json:"included"`
	Photos            []string `json:"photos" validate:"omitempty,dive,url"`
	VideoURL          *string  `json:"video_url" validate:"omitempty,url"`
	SafetyItems       []string `json:"safety_items"`
	Price             *float64 `json:"price" validate:"omitempty,gte=0"`
	IsPriceByGuest    *bool    `json:"is_price_by_guest"`
	IncludedInPrice   []string `json:"included_in_price"`
	LegalDeclarations []string `json:"legal_declarations"`
}

func (r *UpdateExperienceRequest) Validate() error {
	return validation.Struct(r)
}

func (h *ExperienceHandler) update(c echo.Context, req *UpdateExperienceRequest) (*model.Experience, error) {
	return h.services.Experiences.Update(c.Request().Context(), req.ID, service.UpdateExperienceInput{
		AreaCoordinatorID: req.AreaCoordinatorID,
		Title:             req.Title,
		Category:          req.Category,
		Subcategory:       req.Subcategory,
		Duration:          req.Duration,
		DurationUnit:      req.DurationUnit,
		GroupSize:         req.GroupSize,
		Languages:         req.Languages,
		Description:       req.Description,
		Included:          req.Included,
		Photos:            req.Photos,
		VideoURL:          req.VideoURL,
		SafetyItems:       req.SafetyItems,
		Price:             req.Price,
		IsPriceByGuest:    req.IsPriceByGuest,
		IncludedInPrice:   req.IncludedInPrice,
		LegalDeclarations: req.LegalDeclarations,
	})
}

type UpdateExperienceStatusRequest struct {
	ID     int64  `param:"id" validate:"required,min=1"`
	Status string `json:"status" validate:"required,oneof=ACTIVE BLOCKED DELETED"`
}

func (r *UpdateExperienceStatusRequest) Validate() error {
	return validation.Struct(r)
}

func (h *ExperienceHandler) updateStatus(c echo.Context, req *UpdateExperienceStatusRequest) (*model.Experience, error) {
	return h.services.Experiences.UpdateStatus(c.Request().Context(), req.ID, req.Status)
}

type UpdateExperienceApprovalRequest struct {
	ID             int64  `param:"id" validate:"required,min=1"`
	ApprovalStatus string `json:"approval_status" validate:"required,oneof=DRAFT PENDING APPROVED REJECTED"`
}

func (r *UpdateExperienceApprovalRequest) Validate() error {
	return validation.Struct(r)
}

func (h *ExperienceHandler) updateApproval(c echo.Context, req *UpdateExperienceApprovalRequest) (*model.Experience, error) {
	return h.services.Experiences.UpdateApprovalStatus(c.Request().Context(), req.ID, req.ApprovalStatus)
}

func (h *ExperienceHandler) remove(c echo.Context, req *IDRequest) (*model.Experience, error) {
	return h.services.Experiences.Delete(c.Request().Context(), req.ID)
}

// --- Route factories --------------------------------------------------------

func (h *ExperienceHandler) Create() echo.HandlerFunc {
	return Handle(h.Handler, h.create, http.StatusCreated, "Experience created successfully")
}

func (h *ExperienceHandler) List() echo.HandlerFunc {
	return Handle(h.Handler, h.list, http.StatusOK, "Experiences retrieved successfully")
}

func (h *ExperienceHandler) Get() echo.HandlerFunc {
	return Handle(h.Handler, h.get, http.StatusOK, "Experience retrieved successfully")
}

func (h *ExperienceHandler) Update() echo.HandlerFunc {
	return Handle(h.Handler, h.update, http.StatusOK, "Experience updated successfully")
}

func (h *ExperienceHandler) UpdateStatus() echo.HandlerFunc {
	return Handle(h.Handler, h.updateStatus, http.StatusOK, "Experience status updated successfully")
}

func (h *ExperienceHandler) UpdateApproval() echo.HandlerFunc {
	return Handle(h.Handler, h.updateApproval, http.StatusOK, "Experience approval updated successfully")
}

func (h *ExperienceHandler) Delete() echo.HandlerFunc {
	return Handle(h.Handler, h.remove, http.StatusOK, "Experience deleted successfully")
}
