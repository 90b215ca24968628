package service

import (
	"context"

	"github.com/gostays/backend/internal/errs"
	"github.com/gostays/backend/internal/model"
	"github.com/gostays/backend/internal/repository"
	"github.com/gostays/backend/internal/server"
)

// GeographyService owns the district and grama panchayat lookups used
// to place properties.
type GeographyService struct {
	server *server.Server
	repos  *repository.Repositories
}

// NewGeographyService constructs the geography service.
func NewGeographyService(s *server.Server, repos *repository.Repositories) *GeographyService {
	return &GeographyService{
		server: s,
		repos:  repos,
	}
}

// --- Districts --------------------------------------------------------------

func (s *GeographyService) CreateDistrict(ctx context.Context, name, state string, code, description *string) (*model.District, error) {
	values := map[string]any{
		"name":  name,
		"state": state,
	}
	putOpt(values, "code", code)
	putOpt(values, "description", description)
	return s.repos.Districts.Create(ctx, values)
}

func (s *GeographyService) GetDistrict(ctx context.Context, id int64) (*model.District, error) {
	return s.repos.Districts.GetOrFail(ctx, id, "District not found")
}

func (s *GeographyService) ListDistricts(ctx context.Context, skip, limit int, isActive *bool) ([]model.District, error) {
	filters := map[string]any{}
	putOpt(filters, "is_active", isActive)
	return s.repos.Districts.List(ctx, skip, limit, filters)
}

func (s *GeographyService) UpdateDistrict(ctx context.Context, id int64, name, state, code, description *string, isActive *bool) (*model.District, error) {
	values := map[string]any{}
	putOpt(values, "name", name)
	putOpt(values, "state", state)
	putOpt(values, "code", code)
	putOpt(values, "description", description)
	putOpt(values, "is_active", isActive)

	district, err := s.repos.Districts.Update(ctx, id, values)
	if err != nil {
		return nil, err
	}
	if district == nil {
		return nil, errs.NewNotFoundError("District not found", true, nil)
	}
	return district, nil
}

// DeleteDistrict removes a district; its panchayats go with it through
// the FK cascade.
func (s *GeographyService) DeleteDistrict(ctx context.Context, id int64) (*model.District, error) {
	district, err := s.repos.Districts.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if district == nil {
		return nil, errs.NewNotFoundError("District not found", true, nil)
	}
	return district, nil
}

// --- Grama panchayats -------------------------------------------------------

// CreateGramaPanchayatInput carries the panchayat creation fields.
type CreateGramaPanchayatInput struct {
	Name        string
	DistrictID  int64
	Code        *string
	Description *string
	Population  *int
	AreaSqKm    *float64
}

func (s *GeographyService) CreateGramaPanchayat(ctx context.Context, in CreateGramaPanchayatInput) (*model.GramaPanchayat, error) {
	values := map[string]any{
		"name":        in.Name,
		"district_id": in.DistrictID,
	}
	putOpt(values, "code", in.Code)
	putOpt(values, "description", in.Description)
	putOpt(values, "population", in.Population)
	putOpt(values, "area_sq_km", in.AreaSqKm)

	return s.repos.GramaPanchayats.Create(ctx, values)
}

func (s *GeographyService) GetGramaPanchayat(ctx context.Context, id int64) (*model.GramaPanchayat, error) {
	return s.repos.GramaPanchayats.GetOrFail(ctx, id, "Grama panchayat not found")
}

// ListGramaPanchayats returns the panchayats of a district, name order.
func (s *GeographyService) ListGramaPanchayats(ctx context.Context, districtID int64) ([]model.GramaPanchayat, error) {
	return s.repos.GramaPanchayats.ListByDistrict(ctx, districtID)
}

// UpdateGramaPanchayatInput carries the partially updatable fields.
type UpdateGramaPanchayatInput struct {
	Name        *string
	Code        *string
	Description *string
	Population  *int
	AreaSqKm    *float64
	IsActive    *bool
}

func (s *GeographyService) UpdateGramaPanchayat(ctx context.Context, id int64, in UpdateGramaPanchayatInput) (*model.GramaPanchayat, error) {
	values := map[string]any{}
	putOpt(values, "name", in.Name)
	putOpt(values, "code", in.Code)
	putOpt(values, "description", in.Description)
	putOpt(values, "population", in.Population)
	putOpt(values, "area_sq_km", in.AreaSqKm)
	putOpt(values, "is_active", in.IsActive)

	panchayat, err := s.repos.GramaPanchayats.Update(ctx, id, values)
	if err != nil {
		return nil, err
	}
	if panchayat == nil {
		return nil, errs.NewNotFoundError("Grama panchayat not found", true, nil)
	}
	return panchayat, nil
}

func (s *GeographyService) DeleteGramaPanchayat(ctx context.Context, id int64) (*model.GramaPanchayat, error) {
	panchayat, err := s.repos.GramaPanchayats.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if panchayat == nil {
		return nil, errs.NewNotFoundError("Grama panchayat not found", true, nil)
	}
	return panchayat, nil
}
