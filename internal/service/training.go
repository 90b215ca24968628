package service

import (
	"context"
	"time"

	"github.com/gostays/backend/internal/errs"
	"github.com/gostays/backend/internal/model"
	"github.com/gostays/backend/internal/repository"
	"github.com/gostays/backend/internal/server"
)

// DefaultQuizPassingScore applies when a quiz content has no explicit
// passing score.
const DefaultQuizPassingScore = 70

// TrainingService owns coordinator training: modules, contents, and
// per-user progress including quiz grading.
type TrainingService struct {
	server *server.Server
	repos  *repository.Repositories
}

// NewTrainingService constructs the training service.
func NewTrainingService(s *server.Server, repos *repository.Repositories) *TrainingService {
	return &TrainingService{
		server: s,
		repos:  repos,
	}
}

// --- Modules ----------------------------------------------------------------

// CreateTrainingModuleInput carries the module creation fields.
type CreateTrainingModuleInput struct {
	Title                    string
	Description              *string
	ModuleOrder              int
	EstimatedDurationMinutes *int
	CreatedBy                int64
}

func (s *TrainingService) CreateModule(ctx context.Context, in CreateTrainingModuleInput) (*model.TrainingModule, error) {
	values := map[string]any{
		"title":        in.Title,
		"module_order": in.ModuleOrder,
		"created_by":   in.CreatedBy,
	}
	putOpt(values, "description", in.Description)
	putOpt(values, "estimated_duration_minutes", in.EstimatedDurationMinutes)

	return s.repos.TrainingModules.Create(ctx, values)
}

func (s *TrainingService) GetModule(ctx context.Context, id int64) (*model.TrainingModule, error) {
	return s.repos.TrainingModules.GetOrFail(ctx, id, "Training module not found")
}

// GetModuleWithContents returns a module with its content list
// materialized by a second query. Nothing is loaded implicitly.
func (s *TrainingService) GetModuleWithContents(ctx context.Context, id int64) (*model.TrainingModuleWithContents, error) {
	module, err := s.repos.TrainingModules.GetOrFail(ctx, id, "Training module not found")
	if err != nil {
		return nil, err
	}

	contents, err := s.repos.TrainingContents.ListByModule(ctx, id)
	if err != nil {
		return nil, err
	}

	return &model.TrainingModuleWithContents{
		TrainingModule: *module,
		Contents:       contents,
	}, nil
}

// ListActiveModules returns active modules in curriculum order.
func (s *TrainingService) ListActiveModules(ctx context.Context) ([]model.TrainingModule, error) {
	return s.repos.TrainingModules.ListActive(ctx)
}

// UpdateTrainingModuleInput carries the partially updatable fields.
type UpdateTrainingModuleInput struct {
	Title                    *string
	Description              *string
	ModuleOrder              *int
	IsActive                 *bool
	EstimatedDurationMinutes *int
}

func (s *TrainingService) UpdateModule(ctx context.Context, id int64, in UpdateTrainingModuleInput) (*model.TrainingModule, error) {
	values := map[string]any{}
	putOpt(values, "title", in.Title)
	putOpt(values, "description", in.Description)
	putOpt(values, "module_order", in.ModuleOrder)
	putOpt(values, "is_active", in.IsActive)
	putOpt(values, "estimated_duration_minutes", in.EstimatedDurationMinutes)

	module, err := s.repos.TrainingModules.Update(ctx, id, values)
	if err != nil {
		return nil, err
	}
	if module == nil {
		return nil, errs.NewNotFoundError("Training module not found", true, nil)
	}
	return module, nil
}

func (s *TrainingService) DeleteModule(ctx context.Context, id int64) (*model.TrainingModule, error) {
	module, err := s.repos.TrainingModules.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if module == nil {
		return nil, errs.NewNotFoundError("Training module not found", true, nil)
	}
	return module, nil
}

// --- Contents ---------------------------------------------------------------

// CreateTrainingContentInput carries the content creation fields.
// QuizQuestions maps question id to correct answer and is only valid
// for QUIZ content.
type CreateTrainingContentInput struct {
	ModuleID             int64
	ContentType          string
	Title                string
	Content              string
	ContentOrder         int
	IsRequired           bool
	VideoDurationSeconds *int
	ThumbnailURL         *string
	QuizQuestions        map[string]string
	PassingScore         *int
}

func (s *TrainingService) CreateContent(ctx context.Context, in CreateTrainingContentInput) (*model.TrainingContent, error) {
	if in.QuizQuestions != nil && model.ContentType(in.ContentType) != model.ContentQuiz {
		return nil, errs.NewInvalidArgumentError("quiz questions are only valid for QUIZ content")
	}

	values := map[string]any{
		"module_id":     in.ModuleID,
		"content_type":  in.ContentType,
		"title":         in.Title,
		"content":       in.Content,
		"content_order": in.ContentOrder,
		"is_required":   in.IsRequired,
	}
	putOpt(values, "video_duration_seconds", in.VideoDurationSeconds)
	putOpt(values, "thumbnail_url", in.ThumbnailURL)
	putOpt(values, "passing_score", in.PassingScore)
	if in.QuizQuestions != nil {
		values["quiz_questions"] = in.QuizQuestions
	}

	return s.repos.TrainingContents.Create(ctx, values)
}

func (s *TrainingService) GetContent(ctx context.Context, id int64) (*model.TrainingContent, error) {
	return s.repos.TrainingContents.GetOrFail(ctx, id, "Training content not found")
}

func (s *TrainingService) ListContents(ctx context.Context, moduleID int64) ([]model.TrainingContent, error) {
	return s.repos.TrainingContents.ListByModule(ctx, moduleID)
}

func (s *TrainingService) DeleteContent(ctx context.Context, id int64) (*model.TrainingContent, error) {
	content, err := s.repos.TrainingContents.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, errs.NewNotFoundError("Training content not found", true, nil)
	}
	return content, nil
}

// --- Progress ---------------------------------------------------------------

// GetProgress returns the progress row for (user, module, content),
// creating a NOT_STARTED row on first access.
func (s *TrainingService) GetProgress(ctx context.Context, userID, moduleID int64, contentID *int64) (*model.TrainingProgress, error) {
	return s.repos.TrainingProgress.GetOrCreate(ctx, userID, moduleID, contentID)
}

// ListUserProgress returns all progress rows of a user.
func (s *TrainingService) ListUserProgress(ctx context.Context, userID int64) ([]model.TrainingProgress, error) {
	return s.repos.TrainingProgress.ListByUser(ctx, userID)
}

// UpdateProgressInput carries a progress update. TimeSpentSeconds is a
// delta, accumulated onto the stored total.
type UpdateProgressInput struct {
	Status             *string
	ProgressPercentage *int
	TimeSpentSeconds   *int
}

// UpdateProgress applies a progress update with the transition rules:
// the first move to IN_PROGRESS stamps started_at, the first move to
// COMPLETED stamps completed_at, and every update touches
// last_accessed_at. Timestamps are never overwritten on repeat
// transitions, so restarting a module keeps the original start time.
func (s *TrainingService) UpdateProgress(ctx context.Context, userID, moduleID int64, contentID *int64, in UpdateProgressInput) (*model.TrainingProgress, error) {
	if in.ProgressPercentage != nil && (*in.ProgressPercentage < 0 || *in.ProgressPercentage > 100) {
		return nil, errs.NewInvalidArgumentError("progress percentage out of range")
	}

	progress, err := s.repos.TrainingProgress.GetOrCreate(ctx, userID, moduleID, contentID)
	if err != nil {
		return nil, err
	}

	values := map[string]any{}
	if in.Status != nil {
		status := model.TrainingStatus(*in.Status)
		if !validTrainingStatus(status) {
			return nil, errs.NewInvalidArgumentError("unknown training status: " + *in.Status)
		}
		for k, v := range transitionValues(progress, status, time.Now().UTC()) {
			values[k] = v
		}
	} else {
		values["last_accessed_at"] = time.Now().UTC()
	}

	putOpt(values, "progress_percentage", in.ProgressPercentage)
	if in.TimeSpentSeconds != nil {
		values["time_spent_seconds"] = progress.TimeSpentSeconds + *in.TimeSpentSeconds
	}

	updated, err := s.repos.TrainingProgress.Update(ctx, progress.ID, values)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, errs.NewNotFoundError("Training progress not found", true, nil)
	}
	return updated, nil
}

// transitionValues derives the column updates for a status transition.
// Pure so the timestamp rules are testable without a database.
func transitionValues(progress *model.TrainingProgress, status model.TrainingStatus, now time.Time) map[string]any {
	values := map[string]any{
		"status":           string(status),
		"last_accessed_at": now,
	}

	if status == model.TrainingInProgress && progress.StartedAt == nil {
		values["started_at"] = now
	}
	if status == model.TrainingCompleted && progress.CompletedAt == nil {
		values["completed_at"] = now
	}

	return values
}

func validTrainingStatus(s model.TrainingStatus) bool {
	switch s {
	case model.TrainingNotStarted, model.TrainingInProgress, model.TrainingCompleted, model.TrainingFailed:
		return true
	}
	return false
}

// --- Quiz -------------------------------------------------------------------

// SubmitQuiz grades a quiz submission against the content's stored
// answers, records the attempt on the user's progress row, and returns
// the result. Passing sets COMPLETED, failing sets FAILED; attempts and
// time spent accumulate across submissions.
func (s *TrainingService) SubmitQuiz(ctx context.Context, userID, contentID int64, answers map[string]string, timeSpentSeconds int) (*model.QuizResult, error) {
	content, err := s.repos.TrainingContents.GetOrFail(ctx, contentID, "Training content not found")
	if err != nil {
		return nil, err
	}
	if content.ContentType != model.ContentQuiz {
		return nil, errs.NewInvalidArgumentError("content is not a quiz")
	}
	if len(content.QuizQuestions) == 0 {
		return nil, errs.NewInvalidArgumentError("quiz has no questions")
	}

	correct, total := gradeQuiz(content.QuizQuestions, answers)
	score := correct * 100 / total

	passingScore := DefaultQuizPassingScore
	if content.PassingScore != nil {
		passingScore = *content.PassingScore
	}
	passed := score >= passingScore

	progress, err := s.repos.TrainingProgress.GetOrCreate(ctx, userID, content.ModuleID, &contentID)
	if err != nil {
		return nil, err
	}

	status := model.TrainingFailed
	if passed {
		status = model.TrainingCompleted
	}

	values := transitionValues(progress, status, time.Now().UTC())
	values["quiz_score"] = score
	values["quiz_attempts"] = progress.QuizAttempts + 1
	values["time_spent_seconds"] = progress.TimeSpentSeconds + timeSpentSeconds
	if passed {
		values["progress_percentage"] = 100
	}

	if _, err := s.repos.TrainingProgress.Update(ctx, progress.ID, values); err != nil {
		return nil, err
	}

	return &model.QuizResult{
		ContentID:      contentID,
		Score:          score,
		Passed:         passed,
		TotalQuestions: total,
		CorrectAnswers: correct,
		Attempts:       progress.QuizAttempts + 1,
	}, nil
}

// gradeQuiz counts answers matching the stored answer key. Comparison
// is exact string equality; unanswered questions count as wrong.
func gradeQuiz(questions, answers map[string]string) (correct, total int) {
	total = len(questions)
	for id, expected := range questions {
		if given, ok := answers[id]; ok && given == expected {
			correct++
		}
	}
	return correct, total
}
