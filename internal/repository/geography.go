package repository

import (
	"context"

	"github.com/gostays/backend/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

var (
	districtColumns = []string{"name", "state", "code", "description", "is_active"}

	gramaPanchayatColumns = []string{
		"name", "district_id", "code", "description",
		"population", "area_sq_km", "is_active",
	}
)

// DistrictsRepository is CRUD over districts.
type DistrictsRepository struct {
	*Repository[model.District]
}

func NewDistrictsRepository(pool *pgxpool.Pool) *DistrictsRepository {
	return &DistrictsRepository{
		Repository: NewRepository[model.District](pool, "districts", districtColumns...),
	}
}

// GramaPanchayatsRepository is CRUD over grama panchayats.
type GramaPanchayatsRepository struct {
	*Repository[model.GramaPanchayat]
	pool *pgxpool.Pool
}

func NewGramaPanchayatsRepository(pool *pgxpool.Pool) *GramaPanchayatsRepository {
	return &GramaPanchayatsRepository{
		Repository: NewRepository[model.GramaPanchayat](pool, "grama_panchayats", gramaPanchayatColumns...),
		pool:       pool,
	}
}

// ListByDistrict returns the panchayats of a district ordered by name.
func (r *GramaPanchayatsRepository) ListByDistrict(ctx context.Context, districtID int64) ([]model.GramaPanchayat, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT * FROM grama_panchayats WHERE district_id = $1 ORDER BY name",
		districtID,
	)
	if err != nil {
		return nil, errors.Wrap(err, "table:grama_panchayats: list by district")
	}

	results, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[model.GramaPanchayat])
	if err != nil {
		return nil, errors.Wrap(err, "table:grama_panchayats: list by district scan")
	}
	return results, nil
}
