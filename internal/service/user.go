package service

import (
	"context"
	"time"

	"github.com/gostays/backend/internal/errs"
	"github.com/gostays/backend/internal/model"
	"github.com/gostays/backend/internal/repository"
	"github.com/gostays/backend/internal/server"
)

// UserService owns base account records. Credentials and token issuance
// are out of scope; password hashes are stored opaquely when provided.
type UserService struct {
	server *server.Server
	repos  *repository.Repositories
}

// NewUserService constructs the user service.
func NewUserService(s *server.Server, repos *repository.Repositories) *UserService {
	return &UserService{
		server: s,
		repos:  repos,
	}
}

// CreateUserInput carries the account creation fields.
type CreateUserInput struct {
	AuthProvider string
	UserType     string
	Email        *string
	PhoneNumber  *string
	PasswordHash *string
	FullName     string
	DOB          *time.Time
	ProfileImage *string
}

// Create stores a new account. Duplicate email/phone surfaces as a
// conflict through the unique indexes.
func (s *UserService) Create(ctx context.Context, in CreateUserInput) (*model.User, error) {
	values := map[string]any{
		"auth_provider": in.AuthProvider,
		"user_type":     in.UserType,
		"full_name":     in.FullName,
	}
	putOpt(values, "email", in.Email)
	putOpt(values, "phone_number", in.PhoneNumber)
	putOpt(values, "password_hash", in.PasswordHash)
	putOpt(values, "dob", in.DOB)
	putOpt(values, "profile_image", in.ProfileImage)

	return s.repos.Users.Create(ctx, values)
}

// Get fetches an account or returns a 404.
func (s *UserService) Get(ctx context.Context, id int64) (*model.User, error) {
	return s.repos.Users.GetOrFail(ctx, id, "User not found")
}

// List returns accounts within [skip, skip+limit), optionally filtered
// by user type and active status.
func (s *UserService) List(ctx context.Context, skip, limit int, userType *string, status *bool) ([]model.User, error) {
	filters := map[string]any{}
	putOpt(filters, "user_type", userType)
	putOpt(filters, "status", status)
	return s.repos.Users.List(ctx, skip, limit, filters)
}

// Search finds accounts whose name, email or phone contains term.
func (s *UserService) Search(ctx context.Context, page repository.PageRequest, term string) ([]model.User, repository.PaginationInfo, error) {
	page.Normalize()

	results, total, err := s.repos.Users.Search(ctx, term, page.Skip(), page.Limit)
	if err != nil {
		return nil, repository.PaginationInfo{}, err
	}

	return results, repository.NewPaginationInfo(total, page.Page, page.Limit), nil
}

// UpdateUserInput carries the partially updatable account fields.
type UpdateUserInput struct {
	Email        *string
	PhoneNumber  *string
	FullName     *string
	DOB          *time.Time
	ProfileImage *string
	Status       *bool
}

// Update applies a partial update, 404 when the id does not exist.
func (s *UserService) Update(ctx context.Context, id int64, in UpdateUserInput) (*model.User, error) {
	values := map[string]any{}
	putOpt(values, "email", in.Email)
	putOpt(values, "phone_number", in.PhoneNumber)
	putOpt(values, "full_name", in.FullName)
	putOpt(values, "dob", in.DOB)
	putOpt(values, "profile_image", in.ProfileImage)
	putOpt(values, "status", in.Status)

	user, err := s.repos.Users.Update(ctx, id, values)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errs.NewNotFoundError("User not found", true, nil)
	}
	return user, nil
}

// Delete removes an account, 404 when the id does not exist.
func (s *UserService) Delete(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.repos.Users.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errs.NewNotFoundError("User not found", true, nil)
	}
	return user, nil
}

// GetHostProfile composes the account with its property record. The
// property is nil for a host that has not started onboarding.
func (s *UserService) GetHostProfile(ctx context.Context, userID int64) (*model.HostProfile, error) {
	profile, err := s.repos.Users.GetHostProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errs.NewNotFoundError("User not found", true, nil)
	}
	return profile, nil
}
