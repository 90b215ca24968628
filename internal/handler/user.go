package handler

import (
	"net/http"

	"github.com/gostays/backend/internal/model"
	"github.com/gostays/backend/internal/repository"
	"github.com/gostays/backend/internal/server"
	"github.com/gostays/backend/internal/service"
	"github.com/gostays/backend/internal/validation"
	"github.com/labstack/echo/v4"
)

// UserHandler serves account management endpoints.
type UserHandler struct {
	Handler
	services *service.Services
}

// NewUserHandler constructs the user handler.
func NewUserHandler(s *server.Server, services *service.Services) *UserHandler {
	return &UserHandler{
		Handler:  NewHandler(s),
		services: services,
	}
}

// CreateUserRequest is the account creation payload. Either an email
// or a phone number must be present so the account stays reachable.
type CreateUserRequest struct {
	AuthProvider string  `json:"auth_provider" validate:"required,oneof=EMAIL GOOGLE MOBILE"`
	UserType     string  `json:"user_type" validate:"required,oneof=ADMIN GUEST HOST"`
	Email        *string `json:"email" validate:"omitempty,email"`
	PhoneNumber  *string `json:"phone_number"`
	PasswordHash *string `json:"password_hash"`
	FullName     string  `json:"full_name" validate:"required,min=2,max=255"`
	DOB          *string `json:"dob" validate:"omitempty,datetime=2006-01-02"`
	ProfileImage *string `json:"profile_image" validate:"omitempty,url"`
}

func (r *CreateUserRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}

	var custom validation.CustomValidationErrors
	if r.Email == nil && r.PhoneNumber == nil {
		custom = append(custom, validation.CustomValidationError{
			Field: "email", Message: "either email or phone_number is required",
		})
	}
	if r.PhoneNumber != nil && !validation.IsValidPhoneNumber(*r.PhoneNumber) {
		custom = append(custom, validation.CustomValidationError{
			Field: "phone_number", Message: "must be 8 to 15 digits",
		})
	}
	if len(custom) > 0 {
		return custom
	}
	return nil
}

func (h *UserHandler) create(c echo.Context, req *CreateUserRequest) (*model.User, error) {
	return h.services.Users.Create(c.Request().Context(), service.CreateUserInput{
		AuthProvider: req.AuthProvider,
		UserType:     req.UserType,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: req.PasswordHash,
		FullName:     req.FullName,
		DOB:          parseDate(req.DOB),
		ProfileImage: req.ProfileImage,
	})
}

// ListUsersRequest carries the list window and optional filters.
type ListUsersRequest struct {
	Skip     int     `query:"skip" validate:"min=0"`
	Limit    int     `query:"limit" validate:"min=0,max=1000"`
	UserType *string `query:"user_type" validate:"omitempty,oneof=ADMIN GUEST HOST"`
	Status   *bool   `query:"status"`
}

func (r *ListUsersRequest) Validate() error {
	return validation.Struct(r)
}

func (h *UserHandler) list(c echo.Context, req *ListUsersRequest) ([]model.User, error) {
	return h.services.Users.List(c.Request().Context(), req.Skip, req.Limit, req.UserType, req.Status)
}

func (h *UserHandler) get(c echo.Context, req *IDRequest) (*model.User, error) {
	return h.services.Users.Get(c.Request().Context(), req.ID)
}

// SearchUsersRequest carries a contains search over name/email/phone.
type SearchUsersRequest struct {
	Q     string `query:"q" validate:"required,min=1,max=255"`
	Page  int    `query:"page" validate:"omitempty,min=1"`
	Limit int    `query:"limit" validate:"omitempty,min=1,max=100"`
}

func (r *SearchUsersRequest) Validate() error {
	return validation.Struct(r)
}

// UserSearchResponse pairs the result page with pagination metadata.
type UserSearchResponse struct {
	Users      []model.User              `json:"users"`
	Pagination repository.PaginationInfo `json:"pagination"`
}

func (h *UserHandler) search(c echo.Context, req *SearchUsersRequest) (*UserSearchResponse, error) {
	results, pagination, err := h.services.Users.Search(c.Request().Context(),
		repository.PageRequest{Page: req.Page, Limit: req.Limit}, req.Q)
	if err != nil {
		return nil, err
	}

	return &UserSearchResponse{
		Users:      results,
		Pagination: pagination,
	}, nil
}

// UpdateUserRequest carries the partially updatable account fields.
type UpdateUserRequest struct {
	ID           int64   `param:"id" validate:"required,min=1"`
	Email        *string `json:"email" validate:"omitempty,email"`
	PhoneNumber  *string `json:"phone_number"`
	FullName     *string `json:"full_name" validate:"omitempty,min=2,max=255"`
	DOB          *string `json:"dob" validate:"omitempty,datetime=2006-01-02"`
	ProfileImage *string `json:"profile_image" validate:"omitempty,url"`
	Status       *bool   `json:"status"`
}

func (r *UpdateUserRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}

	if r.PhoneNumber != nil && !validation.IsValidPhoneNumber(*r.PhoneNumber) {
		return validation.CustomValidationErrors{{
			Field: "phone_number", Message: "must be 8 to 15 digits",
		}}
	}
	return nil
}

func (h *UserHandler) update(c echo.Context, req *UpdateUserRequest) (*model.User, error) {
	return h.services.Users.Update(c.Request().Context(), req.ID, service.UpdateUserInput{
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		FullName:     req.FullName,
		DOB:          parseDate(req.DOB),
		ProfileImage: req.ProfileImage,
		Status:       req.Status,
	})
}

func (h *UserHandler) remove(c echo.Context, req *IDRequest) (*model.User, error) {
	return h.services.Users.Delete(c.Request().Context(), req.ID)
}

func (h *UserHandler) hostProfile(c echo.Context, req *IDRequest) (*model.HostProfile, error) {
	return h.services.Users.GetHostProfile(c.Request().Context(), req.ID)
}

// Route factories.

func (h *UserHandler) Create() echo.HandlerFunc {
	return Handle(h.Handler, h.create, http.StatusCreated, "User created successfully")
}

func (h *UserHandler) List() echo.HandlerFunc {
	return Handle(h.Handler, h.list, http.StatusOK, "Users retrieved successfully")
}

func (h *UserHandler) Get() echo.HandlerFunc {
	return Handle(h.Handler, h.get, http.StatusOK, "User retrieved successfully")
}

func (h *UserHandler) Search() echo.HandlerFunc {
	return Handle(h.Handler, h.search, http.StatusOK, "Users searched successfully")
}

func (h *UserHandler) Update() echo.HandlerFunc {
	return Handle(h.Handler, h.update, http.StatusOK, "User updated successfully")
}

func (h *UserHandler) Delete() echo.HandlerFunc {
	return Handle(h.Handler, h.remove, http.StatusOK, "User deleted successfully")
}

func (h *UserHandler) HostProfile() echo.HandlerFunc {
	return Handle(h.Handler, h.hostProfile, http.StatusOK, "Host profile retrieved successfully")
}
