package handler

import (
	"net/http"

	"github.com/gostays/backend/internal/model"
	"github.com/gostays/backend/internal/server"
	"github.com/gostays/backend/internal/service"
	"github.com/gostays/backend/internal/validation"
	"github.com/labstack/echo/v4"
)

// TrainingHandler serves the coordinator training endpoints: modules,
// contents, per-user progress and quiz submission.
type TrainingHandler struct {
	Handler
	services *service.Services
}

// NewTrainingHandler constructs the training handler.
func NewTrainingHandler(s *server.Server, services *service.Services) *TrainingHandler {
	return &TrainingHandler{
		Handler:  NewHandler(s),
		services: services,
	}
}

// --- Modules ----------------------------------------------------------------

type CreateTrainingModuleRequest struct {
	Title                    string  `json:"title" validate:"required,min=2,max=255"`
	Description              *string `json:"description" validate:"omitempty,max=1000"`
	ModuleOrder              int     `json:"module_order" validate:"required,min=1"`
	EstimatedDurationMinutes *int    `json:"estimated_duration_minutes" validate:"omitempty,min=1"`
	CreatedBy                int64   `json:"created_by" validate:"required,min=1"`
}

func (r *CreateTrainingModuleRequest) Validate() error {
	return validation.Struct(r)
}

func (h *TrainingHandler) createModule(c echo.Context, req *CreateTrainingModuleRequest) (*model.TrainingModule, error) {
	return h.services.Training.CreateModule(c.Request().Context(), service.CreateTrainingModuleInput{
		Title:                    req.Title,
		Description:              req.Description,
		ModuleOrder:              req.ModuleOrder,
		EstimatedDurationMinutes: req.EstimatedDurationMinutes,
		CreatedBy:                req.CreatedBy,
	})
}

func (h *TrainingHandler) getModule(c echo.Context, req *IDRequest) (*model.TrainingModule, error) {
	return h.services.Training.GetModule(c.Request().Context(), req.ID)
}

func (h *TrainingHandler) getModuleWithContents(c echo.Context, req *IDRequest) (*model.TrainingModuleWithContents, error) {
	return h.services.Training.GetModuleWithContents(c.Request().Context(), req.ID)
}

// EmptyRequest is for endpoints that take no input at all.
type EmptyRequest struct{}

func (r *EmptyRequest) Validate() error { return nil }

func (h *TrainingHandler) listActiveModules(c echo.Context, _ *EmptyRequest) ([]model.TrainingModule, error) {
	return h.services.Training.ListActiveModules(c.Request().Context())
}

type UpdateTrainingModuleRequest struct {
	ID                       int64   `param:"id" validate:"required,min=1"`
	Title                    *string `json:"title" validate:"omitempty,min=2,max=255"`
	Description              *string `json:"description" validate:"omitempty,max=1000"`
	ModuleOrder              *int    `json:"module_order" validate:"omitempty,min=1"`
	IsActive                 *bool   `json:"is_active"`
	EstimatedDurationMinutes *int    `json:"estimated_duration_minutes" validate:"omitempty,min=1"`
}

func (r *UpdateTrainingModuleRequest) Validate() error {
	return validation.Struct(r)
}

func (h *TrainingHandler) updateModule(c echo.Context, req *UpdateTrainingModuleRequest) (*model.TrainingModule, error) {
	return h.services.Training.UpdateModule(c.Request().Context(), req.ID, service.UpdateTrainingModuleInput{
		Title:                    req.Title,
		Description:              req.Description,
		ModuleOrder:              req.ModuleOrder,
		IsActive:                 req.IsActive,
		EstimatedDurationMinutes: req.EstimatedDurationMinutes,
	})
}

func (h *TrainingHandler) removeModule(c echo.Context, req *IDRequest) (*model.TrainingModule, error) {
	return h.services.Training.DeleteModule(c.Request().Context(), req.ID)
}

// --- Contents ---------------------------------------------------------------

type CreateTrainingContentRequest struct {
	ModuleID             int64             `param:"id" validate:"required,min=1"`
	ContentType          string            `json:"content_type" validate:"required,oneof=TEXT VIDEO DOCUMENT QUIZ"`
	Title                string            `json:"title" validate:"required,min=2,max=255"`
	Content              string            `json:"content" validate:"required"`
	ContentOrder         int               `json:"content_order" validate:"required,min=1"`
	IsRequired           bool              `json:"is_required"`
	VideoDurationSeconds *int              `json:"video_duration_seconds" validate:"omitempty,min=1"`
	ThumbnailURL         *string           `json:"thumbnail_url" validate:"omitempty,url"`
	QuizQuestions        map[string]string `json:"quiz_questions"`
	PassingScore         *int              `json:"passing_score" validate:"omitempty,min=0,max=100"`
}

func (r *CreateTrainingContentRequest) Validate() error {
	return validation.Struct(r)
}

func (h *TrainingHandler) createContent(c echo.Context, req *CreateTrainingContentRequest) (*model.TrainingContent, error) {
	return h.services.Training.CreateContent(c.Request().Context(), service.CreateTrainingContentInput{
		ModuleID:             req.ModuleID,
		ContentType:          req.ContentType,
		Title:                req.Title,
		Content:              req.Content,
		ContentOrder:         req.ContentOrder,
		IsRequired:           req.IsRequired,
		VideoDurationSeconds: req.VideoDurationSeconds,
		ThumbnailURL:         req.ThumbnailURL,
		QuizQuestions:        req.QuizQuestions,
		PassingScore:         req.PassingScore,
	})
}

func (h *TrainingHandler) getContent(c echo.Context, req *IDRequest) (*model.TrainingContent, error) {
	return h.services.Training.GetContent(c.Request().Context(), req.ID)
}

func (h *TrainingHandler) listContents(c echo.Context, req *IDRequest) ([]model.TrainingContent, error) {
	return h.services.Training.ListContents(c.Request().Context(), req.ID)
}

func (h *TrainingHandler) removeContent(c echo.Context, req *IDRequest) (*model.TrainingContent, error) {
	return h.services.Training.DeleteContent(c.Request().Context(), req.ID)
}

// --- Progress ---------------------------------------------------------------

// GetProgressRequest addresses a progress row by user, module and
// optional content. A missing row is created as NOT_STARTED.
type GetProgressRequest struct {
	UserID    int64  `param:"user_id" validate:"required,min=1"`
	ModuleID  int64  `param:"module_id" validate:"required,min=1"`
	ContentID *int64 `query:"content_id" validate:"omitempty,min=1"`
}

func (r *GetProgressRequest) Validate() error {
	return validation.Struct(r)
}

func (h *TrainingHandler) getProgress(c echo.Context, req *GetProgressRequest) (*model.TrainingProgress, error) {
	return h.services.Training.GetProgress(c.Request().Context(), req.UserID, req.ModuleID, req.ContentID)
}

func (h *TrainingHandler) listUserProgress(c echo.Context, req *UserIDRequest) ([]model.TrainingProgress, error) {
	return h.services.Training.ListUserProgress(c.Request().Context(), req.UserID)
}

type UpdateProgressRequest struct {
	UserID             int64   `param:"user_id" validate:"required,min=1"`
	ModuleID           int64   `param:"module_id" validate:"required,min=1"`
	ContentID          *int64  `json:"content_id" validate:"omitempty,min=1"`
	Status             *string `json:"status" validate:"omitempty,oneof=NOT_STARTED IN_PROGRESS COMPLETED FAILED"`
	ProgressPercentage *int    `json:"progress_percentage" validate:"omitempty,min=0,max=100"`
	TimeSpentSeconds   *int    `json:"time_spent_seconds" validate:"omitempty,min=0"`
}

func (r *UpdateProgressRequest) Validate() error {
	return validation.Struct(r)
}

func (h *TrainingHandler) updateProgress(c echo.Context, req *UpdateProgressRequest) (*model.TrainingProgress, error) {
	return h.services.Training.UpdateProgress(c.Request().Context(), req.UserID, req.ModuleID, req.ContentID,
		service.UpdateProgressInput{
			Status:             req.Status,
			ProgressPercentage: req.ProgressPercentage,
			TimeSpentSeconds:   req.TimeSpentSeconds,
		})
}

// --- Quiz -------------------------------------------------------------------

// SubmitQuizRequest carries a quiz submission. Answers maps question id
// to the user's answer.
type SubmitQuizRequest struct {
	ContentID        int64             `param:"id" validate:"required,min=1"`
	UserID           int64             `json:"user_id" validate:"required,min=1"`
	Answers          map[string]string `json:"answers" validate:"required,min=1"`
	TimeSpentSeconds int               `json:"time_spent_seconds" validate:"min=0"`
}

func (r *SubmitQuizRequest) Validate() error {
	return validation.Struct(r)
}

func (h *TrainingHandler) submitQuiz(c echo.Context, req *SubmitQuizRequest) (*model.QuizResult, error) {
	return h.services.Training.SubmitQuiz(c.Request().Context(),
		req.UserID, req.ContentID, req.Answers, req.TimeSpentSeconds)
}

// --- Route factories --------------------------------------------------------

func (h *TrainingHandler) CreateModule() echo.HandlerFunc {
	return Handle(h.Handler, h.createModule, http.StatusCreated, "Training module created successfully")
}

func (h *TrainingHandler) GetModule() echo.HandlerFunc {
	return Handle(h.Handler, h.getModule, http.StatusOK, "Training module retrieved successfully")
}

func (h *TrainingHandler) GetModuleWithContents() echo.HandlerFunc {
	return Handle(h.Handler, h.getModuleWithContents, http.StatusOK, "Training module retrieved successfully")
}

func (h *TrainingHandler) ListActiveModules() echo.HandlerFunc {
	return Handle(h.Handler, h.listActiveModules, http.StatusOK, "Training modules retrieved successfully")
}

func (h *TrainingHandler) UpdateModule() echo.HandlerFunc {
	return Handle(h.Handler, h.updateModule, http.StatusOK, "Training module updated successfully")
}

func (h *TrainingHandler) DeleteModule() echo.HandlerFunc {
	return Handle(h.Handler, h.removeModule, http.StatusOK, "Training module deleted successfully")
}

func (h *TrainingHandler) CreateContent() echo.HandlerFunc {
	return Handle(h.Handler, h.createContent, http.StatusCreated, "Training content created successfully")
}

func (h *TrainingHandler) GetContent() echo.HandlerFunc {
	return Handle(h.Handler, h.getContent, http.StatusOK, "Training content retrieved successfully")
}

func (h *TrainingHandler) ListContents() echo.HandlerFunc {
	return Handle(h.Handler, h.listContents, http.StatusOK, "Training contents retrieved successfully")
}

func (h *TrainingHandler) DeleteContent() echo.HandlerFunc {
	return Handle(h.Handler, h.removeContent, http.StatusOK, "Training content deleted successfully")
}

func (h *TrainingHandler) GetProgress() echo.HandlerFunc {
	return Handle(h.Handler, h.getProgress, http.StatusOK, "Training progress retrieved successfully")
}

func (h *TrainingHandler) ListUserProgress() echo.HandlerFunc {
	return Handle(h.Handler, h.listUserProgress, http.StatusOK, "Training progress retrieved successfully")
}

func (h *TrainingHandler) UpdateProgress() echo.HandlerFunc {
	return Handle(h.Handler, h.updateProgress, http.StatusOK, "Training progress updated successfully")
}

func (h *TrainingHandler) SubmitQuiz() echo.HandlerFunc {
	return Handle(h.Handler, h.submitQuiz, http.StatusOK, "Quiz graded successfully")
}
