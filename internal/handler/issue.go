package handler

import (
	"net/http"

	"github.com/gostays/backend/internal/model"
	"github.com/gostays/backend/internal/server"
	"github.com/gostays/backend/internal/service"
	"github.com/gostays/backend/internal/validation"
	"github.com/labstack/echo/v4"
)

// IssueHandler serves the complaint / support ticket endpoints.
type IssueHandler struct {
	Handler
	services *service.Services
}

// NewIssueHandler constructs the issue handler.
func NewIssueHandler(s *server.Server, services *service.Services) *IssueHandler {
	return &IssueHandler{
		Handler:  NewHandler(s),
		services: services,
	}
}

type CreateIssueRequest struct {
	Title        string   `json:"title" validate:"required,min=3,max=255"`
	Type         string   `json:"type" validate:"required,oneof=COMPLAINT SUPPORT"`
	CreatedByID  int64    `json:"created_by_id" validate:"required,min=1"`
	AssignedToID *int64   `json:"assigned_to_id" validate:"omitempty,min=1"`
	Priority     *string  `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	Description  *string  `json:"description" validate:"omitempty,max=5000"`
	PropertyID   *int64   `json:"property_id" validate:"omitempty,min=1"`
	Attachments  []string `json:"attachments" validate:"omitempty,dive,url"`
}

func (r *CreateIssueRequest) Validate() error {
	return validation.Struct(r)
}

func (h *IssueHandler) create(c echo.Context, req *CreateIssueRequest) (*model.Issue, error) {
	return h.services.Issues.Create(c.Request().Context(), service.CreateIssueInput{
		Title:        req.Title,
		Type:         req.Type,
		CreatedByID:  req.CreatedByID,
		AssignedToID: req.AssignedToID,
		Priority:     req.Priority,
		Description:  req.Description,
		PropertyID:   req.PropertyID,
		Attachments:  req.Attachments,
	})
}

type ListIssuesRequest struct {
	Skip         int     `query:"skip" validate:"min=0"`
	Limit        int     `query:"limit" validate:"min=0,max=1000"`
	Type         *string `query:"type" validate:"omitempty,oneof=COMPLAINT SUPPORT"`
	Status       *string `query:"status" validate:"omitempty,oneof=ACTIVE INACTIVE DELETED"`
	IssueStatus  *string `query:"issue_status" validate:"omitempty,oneof=OPEN IN_PROGRESS ESCALATED CLOSED"`
	Priority     *string `query:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	CreatedByID  *int64  `query:"created_by_id" validate:"omitempty,min=1"`
	AssignedToID *int64  `query:"assigned_to_id" validate:"omitempty,min=1"`
	PropertyID   *int64  `query:"property_id" validate:"omitempty,min=1"`
}

func (r *ListIssuesRequest) Validate() error {
	return validation.Struct(r)
}

func (h *IssueHandler) list(c echo.Context, req *ListIssuesRequest) ([]model.Issue, error) {
	return h.services.Issues.List(c.Request().Context(), req.Skip, req.Limit, service.IssueListFilters{
		Type:         req.Type,
		Status:       req.Status,
		IssueStatus:  req.IssueStatus,
		Priority:     req.Priority,
		CreatedByID:  req.CreatedByID,
		AssignedToID: req.AssignedToID,
		PropertyID:   req.PropertyID,
	})
}

func (h *IssueHandler) get(c echo.Context, req *IDRequest) (*model.Issue, error) {
	return h.services.Issues.Get(c.Request().Context(), req.ID)
}

// UpdateIssueRequest updates the describable fields. The issue code is
// immutable; status, priority and assignment have dedicated endpoints.
type UpdateIssueRequest struct {
	ID          int64    `param:"id" validate:"required,min=1"`
	UpdatedByID int64    `json:"updated_by_id" validate:"required,min=1"`
	Title       *string  `json:"title" validate:"omitempty,min=3,max=255"`
	Description *string  `json:"description" validate:"omitempty,max=5000"`
	Attachments []string `json:"attachments" validate:"omitempty,dive,url"`
}

func (r *UpdateIssueRequest) Validate() error {
	return validation.Struct(r)
}

func (h *IssueHandler) update(c echo.Context, req *UpdateIssueRequest) (*model.Issue, error) {
	return h.services.Issues.Update(c.Request().Context(), req.ID, service.UpdateIssueInput{
		Title:       req.Title,
		Description: req.Description,
		Attachments: req.Attachments,
	}, req.UpdatedByID)
}

type UpdateIssueStatusRequest struct {
	ID          int64   `param:"id" validate:"required,min=1"`
	IssueStatus string  `json:"issue_status" validate:"required,oneof=OPEN IN_PROGRESS ESCALATED CLOSED"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	UpdatedByID int64   `json:"updated_by_id" validate:"required,min=1"`
}

func (r *UpdateIssueStatusRequest) Validate() error {
	return validation.Struct(r)
}

func (h *IssueHandler) updateStatus(c echo.Context, req *UpdateIssueStatusRequest) (*model.Issue, error) {
	return h.services.Issues.UpdateStatus(c.Request().Context(), req.ID, req.IssueStatus, req.Description, req.UpdatedByID)
}

// AssignIssueRequest sets the assignee; a null assigned_to_id
// unassigns.
type AssignIssueRequest struct {
	ID           int64  `param:"id" validate:"required,min=1"`
	AssignedToID *int64 `json:"assigned_to_id" validate:"omitempty,min=1"`
	AssignedByID int64  `json:"assigned_by_id" validate:"required,min=1"`
}

func (r *AssignIssueRequest) Validate() error {
	return validation.Struct(r)
}

func (h *IssueHandler) assign(c echo.Context, req *AssignIssueRequest) (*model.Issue, error) {
	return h.services.Issues.Assign(c.Request().Context(), req.ID, req.AssignedToID, req.AssignedByID)
}

type UpdateIssuePriorityRequest struct {
	ID          int64  `param:"id" validate:"required,min=1"`
	Priority    string `json:"priority" validate:"required,oneof=LOW MEDIUM HIGH URGENT"`
	UpdatedByID int64  `json:"updated_by_id" validate:"required,min=1"`
}

func (r *UpdateIssuePriorityRequest) Validate() error {
	return validation.Struct(r)
}

func (h *IssueHandler) updatePriority(c echo.Context, req *UpdateIssuePriorityRequest) (*model.Issue, error) {
	return h.services.Issues.UpdatePriority(c.Request().Context(), req.ID, req.Priority, req.UpdatedByID)
}

// DeleteIssueRequest soft-deletes; the acting user rides the query
// string because DELETE bodies are unreliable across proxies.
type DeleteIssueRequest struct {
	ID          int64 `param:"id" validate:"required,min=1"`
	DeletedByID int64 `query:"deleted_by_id" validate:"required,min=1"`
}

func (r *DeleteIssueRequest) Validate() error {
	return validation.Struct(r)
}

func (h *IssueHandler) remove(c echo.Context, req *DeleteIssueRequest) (*model.Issue, error) {
	return h.services.Issues.Delete(c.Request().Context(), req.ID, req.DeletedByID)
}

func (h *IssueHandler) listActivities(c echo.Context, req *IDRequest) ([]model.IssueActivity, error) {
	return h.services.Issues.ListActivities(c.Request().Context(), req.ID)
}

type EscalateIssueRequest struct {
	ID              int64   `param:"id" validate:"required,min=1"`
	EscalationLevel string  `json:"escalation_level" validate:"required,oneof=LEVEL_1 LEVEL_2 LEVEL_3"`
	EscalatedByID   int64   `json:"escalated_by_id" validate:"required,min=1"`
	EscalatedToID   int64   `json:"escalated_to_id" validate:"required,min=1"`
	Reason          *string `json:"reason" validate:"omitempty,max=2000"`
	Notes           *string `json:"notes" validate:"omitempty,max=2000"`
}

func (r *EscalateIssueRequest) Validate() error {
	return validation.Struct(r)
}

func (h *IssueHandler) escalate(c echo.Context, req *EscalateIssueRequest) (*model.IssueEscalation, error) {
	return h.services.Issues.Escalate(c.Request().Context(), req.ID, service.EscalateIssueInput{
		EscalationLevel: req.EscalationLevel,
		EscalatedByID:   req.EscalatedByID,
		EscalatedToID:   req.EscalatedToID,
		Reason:          req.Reason,
		Notes:           req.Notes,
	})
}

func (h *IssueHandler) listEscalations(c echo.Context, req *IDRequest) ([]model.IssueEscalation, error) {
	return h.services.Issues.ListEscalations(c.Request().Context(), req.ID)
}

// --- Route factories --------------------------------------------------------

func (h *IssueHandler) Create() echo.HandlerFunc {
	return Handle(h.Handler, h.create, http.StatusCreated, "Issue created successfully")
}

func (h *IssueHandler) List() echo.HandlerFunc {
	return Handle(h.Handler, h.list, http.StatusOK, "Issues retrieved successfully")
}

func (h *IssueHandler) Get() echo.HandlerFunc {
	return Handle(h.Handler, h.get, http.StatusOK, "Issue retrieved successfully")
}

func (h *IssueHandler) Update() echo.HandlerFunc {
	return Handle(h.Handler, h.update, http.StatusOK, "Issue updated successfully")
}

func (h *IssueHandler) UpdateStatus() echo.HandlerFunc {
	return Handle(h.Handler, h.updateStatus, http.StatusOK, "Issue status updated successfully")
}

func (h *IssueHandler) Assign() echo.HandlerFunc {
	return Handle(h.Handler, h.assign, http.StatusOK, "Issue assignment updated successfully")
}

func (h *IssueHandler) UpdatePriority() echo.HandlerFunc {
	return Handle(h.Handler, h.updatePriority, http.StatusOK, "Issue priority updated successfully")
}

func (h *IssueHandler) Delete() echo.HandlerFunc {
	return Handle(h.Handler, h.remove, http.StatusOK, "Issue deleted successfully")
}

func (h *IssueHandler) ListActivities() echo.HandlerFunc {
	return Handle(h.Handler, h.listActivities, http.StatusOK, "Issue activities retrieved successfully")
}

func (h *IssueHandler) Escalate() echo.HandlerFunc {
	return Handle(h.Handler, h.escalate, http.StatusCreated, "Issue escalated successfully")
}

func (h *IssueHandler) ListEscalations() echo.HandlerFunc {
	return Handle(h.Handler, h.listEscalations, http.StatusOK, "Issue escalations retrieved successfully")
}
