package service

import (
	"context"

	"github.com/gostays/backend/internal/errs"
	"github.com/gostays/backend/internal/model"
	"github.com/gostays/backend/internal/repository"
	"github.com/gostays/backend/internal/server"
)

// ExperienceService owns host-offered experience listings and their
// approval workflow.
type ExperienceService struct {
	server *server.Server
	repos  *repository.Repositories
}

// NewExperienceService constructs the experience service.
func NewExperienceService(s *server.Server, repos *repository.Repositories) *ExperienceService {
	return &ExperienceService{
		server: s,
		repos:  repos,
	}
}

// CreateExperienceInput carries the fields of a new listing. Slice
// fields land in jsonb columns; nil slices keep the column NULL.
type CreateExperienceInput struct {
	UserID            int64
	AreaCoordinatorID *int64
	Title             string
	Category          *string
	Subcategory       *string
	Duration          *int
	DurationUnit      *string
	GroupSize         *int
	Languages         []string
	Description       *string
	Included          []string
	Photos            []string
	VideoURL          *string
	SafetyItems       []string
	Price             *float64
	IsPriceByGuest    *bool
	IncludedInPrice   []string
	LegalDeclarations []string
}

// putList sets values[key] when the slice was provided.
func putList(values map[string]any, key string, v []string) {
	if v != nil {
		values[key] = v
	}
}

// Create stores a new experience after checking that the owning user
// (and coordinator, when given) exist.
func (s *ExperienceService) Create(ctx context.Context, in CreateExperienceInput) (*model.Experience, error) {
	if _, err := s.repos.Users.GetOrFail(ctx, in.UserID, "User not found"); err != nil {
		return nil, err
	}
	if in.AreaCoordinatorID != nil {
		if _, err := s.repos.Users.GetOrFail(ctx, *in.AreaCoordinatorID, "Area coordinator not found"); err != nil {
			return nil, err
		}
	}

	values := map[string]any{
		"user_id": in.UserID,
		"title":   in.Title,
	}
	putOpt(values, "area_coordinator_id", in.AreaCoordinatorID)
	putOpt(values, "category", in.Category)
	putOpt(values, "subcategory", in.Subcategory)
	putOpt(values, "duration", in.Duration)
	putOpt(values, "duration_unit", in.DurationUnit)
	putOpt(values, "group_size", in.GroupSize)
	putOpt(values, "description", in.Description)
	putOpt(values, "video_url", in.VideoURL)
	putOpt(values, "price", in.Price)
	putOpt(values, "is_price_by_guest", in.IsPriceByGuest)
	putList(values, "languages", in.Languages)
	putList(values, "included", in.Included)
	putList(values, "photos", in.Photos)
	putList(values, "safety_items", in.SafetyItems)
	putList(values, "included_in_price", in.IncludedInPrice)
	putList(values, "legal_declarations", in.LegalDeclarations)

	return s.repos.Experiences.Create(ctx, values)
}

// Get fetches an experience or returns a 404.
func (s *ExperienceService) Get(ctx context.Context, id int64) (*model.Experience, error) {
	return s.repos.Experiences.GetOrFail(ctx, id, "Experience not found")
}

// ExperienceListFilters are the optional equality filters of the list.
type ExperienceListFilters struct {
	UserID            *int64
	AreaCoordinatorID *int64
	Status            *string
	ApprovalStatus    *string
}

// List returns experiences within [skip, skip+limit), AND-filtered.
func (s *ExperienceService) List(ctx context.Context, skip, limit int, f ExperienceListFilters) ([]model.Experience, error) {
	if f.Status != nil && !model.ValidExperienceStatus(*f.Status) {
		return nil, errs.NewInvalidArgumentError("unknown experience status: " + *f.Status)
	}
	if f.ApprovalStatus != nil && !model.ValidExperienceApprovalStatus(*f.ApprovalStatus) {
		return nil, errs.NewInvalidArgumentError("unknown approval status: " + *f.ApprovalStatus)
	}

	filters := map[string]any{}
	putOpt(filters, "user_id", f.UserID)
	putOpt(filters, "area_coordinator_id", f.AreaCoordinatorID)
	putOpt(filters, "status", f.Status)
	putOpt(filters, "approval_status", f.ApprovalStatus)

	return s.repos.Experiences.List(ctx, skip, limit, filters)
}

// UpdateExperienceInput carries the partially updatable fields.
type UpdateExperienceInput struct {
	AreaCoordinatorID *int64
	Title             *string
	Category          *string
	Subcategory       *string
	Duration          *int
	DurationUnit      *string
	GroupSize         *int
	Languages         []string
	Description       *string
	Included          []string
	Photos            []string
	VideoURL          *string
	SafetyItems       []string
	Price             *float64
	IsPriceByGuest    *bool
	IncludedInPrice   []string
	LegalDeclarations []string
}

// Update applies a partial update and returns the stored experience, or
// a 404 when the id does not exist. A newly supplied coordinator must
// exist.
func (s *ExperienceService) Update(ctx context.Context, id int64, in UpdateExperienceInput) (*model.Experience, error) {
	if in.AreaCoordinatorID != nil {
		if _, err := s.repos.Users.GetOrFail(ctx, *in.AreaCoordinatorID, "Area coordinator not found"); err != nil {
			return nil, err
		}
	}

	values := map[string]any{}
	putOpt(values, "area_coordinator_id", in.AreaCoordinatorID)
	putOpt(values, "title", in.Title)
	putOpt(values, "category", in.Category)
	putOpt(values, "subcategory", in.Subcategory)
	putOpt(values, "duration", in.Duration)
	putOpt(values, "duration_unit", in.DurationUnit)
	putOpt(values, "group_size", in.GroupSize)
	putOpt(values, "description", in.Description)
	putOpt(values, "video_url", in.VideoURL)
	putOpt(values, "price", in.Price)
	putOpt(values, "is_price_by_guest", in.IsPriceByGuest)
	putList(values, "languages", in.Languages)
	putList(values, "included", in.Included)
	putList(values, "photos", in.Photos)
	putList(values, "safety_items", in.SafetyItems)
	putList(values, "included_in_price", in.IncludedInPrice)
	putList(values, "legal_declarations", in.LegalDeclarations)

	experience, err := s.repos.Experiences.Update(ctx, id, values)
	if err != nil {
		return nil, err
	}
	if experience == nil {
		return nil, errs.NewNotFoundError("Experience not found", true, nil)
	}
	return experience, nil
}

// UpdateStatus changes the lifecycle status (ACTIVE/BLOCKED/DELETED).
func (s *ExperienceService) UpdateStatus(ctx context.Context, id int64, status string) (*model.Experience, error) {
	if !model.ValidExperienceStatus(status) {
		return nil, errs.NewInvalidArgumentError("unknown experience status: " + status)
	}

	experience, err := s.repos.Experiences.Update(ctx, id, map[string]any{"status": status})
	if err != nil {
		return nil, err
	}
	if experience == nil {
		return nil, errs.NewNotFoundError("Experience not found", true, nil)
	}
	return experience, nil
}

// UpdateApprovalStatus moves a listing through editorial review.
func (s *ExperienceService) UpdateApprovalStatus(ctx context.Context, id int64, approvalStatus string) (*model.Experience, error) {
	if !model.ValidExperienceApprovalStatus(approvalStatus) {
		return nil, errs.NewInvalidArgumentError("unknown approval status: " + approvalStatus)
	}

	experience, err := s.repos.Experiences.Update(ctx, id, map[string]any{"approval_status": approvalStatus})
	if err != nil {
		return nil, err
	}
	if experience == nil {
		return nil, errs.NewNotFoundError("Experience not found", true, nil)
	}
	return experience, nil
}

// Delete soft-deletes an experience by flipping its status to DELETED.
func (s *ExperienceService) Delete(ctx context.Context, id int64) (*model.Experience, error) {
	return s.UpdateStatus(ctx, id, string(model.ExperienceDeleted))
}
