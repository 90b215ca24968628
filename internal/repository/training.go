package repository

import (
	"context"

	"github.com/gostays/backend/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

var (
	trainingModuleColumns = []string{
		"title", "description", "module_order", "is_active",
		"estimated_duration_minutes", "created_by",
	}

	trainingContentColumns = []string{
		"module_id", "content_type", "title", "content",
		"content_order", "is_required", "video_duration_seconds",
		"thumbnail_url", "quiz_questions", "passing_score",
	}

	trainingProgressColumns = []string{
		"user_id", "module_id", "content_id", "status",
		"progress_percentage", "time_spent_seconds", "quiz_score",
		"quiz_attempts", "started_at", "completed_at", "last_accessed_at",
	}
)

// TrainingModulesRepository persists coordinator training modules.
type TrainingModulesRepository struct {
	*Repository[model.TrainingModule]
	pool *pgxpool.Pool
}

func NewTrainingModulesRepository(pool *pgxpool.Pool) *TrainingModulesRepository {
	return &TrainingModulesRepository{
		Repository: NewRepository[model.TrainingModule](pool, "training_modules", trainingModuleColumns...),
		pool:       pool,
	}
}

// ListActive returns active modules in curriculum order.
func (r *TrainingModulesRepository) ListActive(ctx context.Context) ([]model.TrainingModule, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT * FROM training_modules WHERE is_active ORDER BY module_order",
	)
	if err != nil {
		return nil, errors.Wrap(err, "table:training_modules: list active")
	}

	results, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[model.TrainingModule])
	if err != nil {
		return nil, errors.Wrap(err, "table:training_modules: list active scan")
	}
	return results, nil
}

// TrainingContentsRepository persists content items inside modules.
type TrainingContentsRepository struct {
	*Repository[model.TrainingContent]
	pool *pgxpool.Pool
}

func NewTrainingContentsRepository(pool *pgxpool.Pool) *TrainingContentsRepository {
	return &TrainingContentsRepository{
		Repository: NewRepository[model.TrainingContent](pool, "training_contents", trainingContentColumns...),
		pool:       pool,
	}
}

// ListByModule returns a module's contents in display order.
func (r *TrainingContentsRepository) ListByModule(ctx context.Context, moduleID int64) ([]model.TrainingContent, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT * FROM training_contents WHERE module_id = $1 ORDER BY content_order",
		moduleID,
	)
	if err != nil {
		return nil, errors.Wrap(err, "table:training_contents: list by module")
	}

	results, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[model.TrainingContent])
	if err != nil {
		return nil, errors.Wrap(err, "table:training_contents: list by module scan")
	}
	return results, nil
}

// TrainingProgressRepository persists per-user training progress rows.
type TrainingProgressRepository struct {
	*Repository[model.TrainingProgress]
	pool *pgxpool.Pool
}

func NewTrainingProgressRepository(pool *pgxpool.Pool) *TrainingProgressRepository {
	return &TrainingProgressRepository{
		Repository: NewRepository[model.TrainingProgress](pool, "training_progress", trainingProgressColumns...),
		pool:       pool,
	}
}

// Find fetches the progress row for (user, module, content). contentID
// nil targets the module-level row. Returns (nil, nil) when no row
// exists yet.
func (r *TrainingProgressRepository) Find(ctx context.Context, userID, moduleID int64, contentID *int64) (*model.TrainingProgress, error) {
	query := `
		SELECT * FROM training_progress
		WHERE user_id = $1 AND module_id = $2
		  AND content_id IS NOT DISTINCT FROM $3`

	rows, err := r.pool.Query(ctx, query, userID, moduleID, contentID)
	if err != nil {
		return nil, errors.Wrap(err, "table:training_progress: find")
	}

	progress, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByNameLax[model.TrainingProgress])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "table:training_progress: find scan")
	}
	return &progress, nil
}

// GetOrCreate returns the progress row for (user, module, content),
// inserting a NOT_STARTED row if none exists. The unique index on the
// triple makes a concurrent duplicate insert fail loudly rather than
// fork state.
func (r *TrainingProgressRepository) GetOrCreate(ctx context.Context, userID, moduleID int64, contentID *int64) (*model.TrainingProgress, error) {
	existing, err := r.Find(ctx, userID, moduleID, contentID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	return r.Create(ctx, map[string]any{
		"user_id":    userID,
		"module_id":  moduleID,
		"content_id": contentID,
		"status":     model.TrainingNotStarted,
	})
}

// ListByUser returns all progress rows of a user, most recent activity
// first.
func (r *TrainingProgressRepository) ListByUser(ctx context.Context, userID int64) ([]model.TrainingProgress, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT * FROM training_progress WHERE user_id = $1 ORDER BY last_accessed_at DESC NULLS LAST, id",
		userID,
	)
	if err != nil {
		return nil, errors.Wrap(err, "table:training_progress: list by user")
	}

	results, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[model.TrainingProgress])
	if err != nil {
		return nil, errors.Wrap(err, "table:training_progress: list by user scan")
	}
	return results, nil
}
