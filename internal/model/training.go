package model

import "time"

// ContentType distinguishes the kinds of training content.
type ContentType string

const (
	ContentText     ContentType = "TEXT"
	ContentVideo    ContentType = "VIDEO"
	ContentDocument ContentType = "DOCUMENT"
	ContentQuiz     ContentType = "QUIZ"
)

// TrainingStatus tracks a coordinator's progress through a module or a
// single content item.
type TrainingStatus string

const (
	TrainingNotStarted TrainingStatus = "NOT_STARTED"
	TrainingInProgress TrainingStatus = "IN_PROGRESS"
	TrainingCompleted  TrainingStatus = "COMPLETED"
	TrainingFailed     TrainingStatus = "FAILED"
)

// TrainingModule is an ordered unit of coordinator training.
type TrainingModule struct {
	ID                       int64     `db:"id" json:"id"`
	Title                    string    `db:"title" json:"title"`
	Description              *string   `db:"description" json:"description"`
	ModuleOrder              int       `db:"module_order" json:"module_order"`
	IsActive                 bool      `db:"is_active" json:"is_active"`
	EstimatedDurationMinutes *int      `db:"estimated_duration_minutes" json:"estimated_duration_minutes"`
	CreatedBy                int64     `db:"created_by" json:"created_by"`
	CreatedAt                time.Time `db:"created_at" json:"created_at"`
	UpdatedAt                time.Time `db:"updated_at" json:"updated_at"`
}

// TrainingModuleWithContents pairs a module with its materialized
// content list. Contents are loaded by an explicit second query.
type TrainingModuleWithContents struct {
	TrainingModule
	Contents []TrainingContent `json:"contents"`
}

// TrainingContent is a single item inside a module. QuizQuestions maps
// question id to the correct answer and is only set for QUIZ content.
type TrainingContent struct {
	ID                   int64             `db:"id" json:"id"`
	ModuleID             int64             `db:"module_id" json:"module_id"`
	ContentType          ContentType       `db:"content_type" json:"content_type"`
	Title                string            `db:"title" json:"title"`
	Content              string            `db:"content" json:"content"`
	ContentOrder         int               `db:"content_order" json:"content_order"`
	IsRequired           bool              `db:"is_required" json:"is_required"`
	VideoDurationSeconds *int              `db:"video_duration_seconds" json:"video_duration_seconds"`
	ThumbnailURL         *string           `db:"thumbnail_url" json:"thumbnail_url"`
	QuizQuestions        map[string]string `db:"quiz_questions" json:"quiz_questions,omitempty"`
	PassingScore         *int              `db:"passing_score" json:"passing_score"`
	CreatedAt            time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt            time.Time         `db:"updated_at" json:"updated_at"`
}

// TrainingProgress is a coordinator's progress record, either for a
// whole module (content_id null) or a single content item.
type TrainingProgress struct {
	ID                 int64          `db:"id" json:"id"`
	UserID             int64          `db:"user_id" json:"user_id"`
	ModuleID           int64          `db:"module_id" json:"module_id"`
	ContentID          *int64         `db:"content_id" json:"content_id"`
	Status             TrainingStatus `db:"status" json:"status"`
	ProgressPercentage int            `db:"progress_percentage" json:"progress_percentage"`
	TimeSpentSeconds   int            `db:"time_spent_seconds" json:"time_spent_seconds"`
	QuizScore          *int           `db:"quiz_score" json:"quiz_score"`
	QuizAttempts       int            `db:"quiz_attempts" json:"quiz_attempts"`
	StartedAt          *time.Time     `db:"started_at" json:"started_at"`
	CompletedAt        *time.Time     `db:"completed_at" json:"completed_at"`
	LastAccessedAt     *time.Time     `db:"last_accessed_at" json:"last_accessed_at"`
	CreatedAt          time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time      `db:"updated_at" json:"updated_at"`
}

// QuizResult is the outcome of grading a quiz submission.
type QuizResult struct {
	ContentID      int64 `json:"content_id"`
	Score          int   `json:"score"`
	Passed         bool  `json:"passed"`
	TotalQuestions int   `json:"total_questions"`
	CorrectAnswers int   `json:"correct_answers"`
	Attempts       int   `json:"attempts"`
}
