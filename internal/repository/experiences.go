package repository

import (
	"github.com/gostays/backend/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

var experienceColumns = []string{
	"user_id", "area_coordinator_id", "title", "category", "subcategory",
	"duration", "duration_unit", "group_size", "languages", "description",
	"included", "photos", "video_url", "safety_items", "price",
	"is_price_by_guest", "included_in_price", "legal_declarations",
	"status", "approval_status",
}

// ExperiencesRepository persists host-offered experience listings.
// Plain generic CRUD covers it: all listing filters are equality
// predicates.
type ExperiencesRepository struct {
	*Repository[model.Experience]
}

// NewExperiencesRepository constructs the experiences repository.
func NewExperiencesRepository(pool *pgxpool.Pool) *ExperiencesRepository {
	return &ExperiencesRepository{
		Repository: NewRepository[model.Experience](pool, "experiences", experienceColumns...),
	}
}
