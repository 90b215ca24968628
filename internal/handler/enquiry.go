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

// EnquiryHandler serves the enquiry intake and processing endpoints.
type EnquiryHandler struct {
	Handler
	services *service.Services
}

// NewEnquiryHandler constructs the enquiry handler.
func NewEnquiryHandler(s *server.Server, services *service.Services) *EnquiryHandler {
	return &EnquiryHandler{
		Handler:  NewHandler(s),
		services: services,
	}
}

// CreateEnquiryRequest is the public intake form payload.
type CreateEnquiryRequest struct {
	CompanyName          *string `json:"company_name" validate:"omitempty,max=255"`
	HostName             string  `json:"host_name" validate:"required,min=2,max=255"`
	Email                *string `json:"email" validate:"omitempty,email"`
	PhoneNumber          string  `json:"phone_number" validate:"required"`
	AlternatePhoneNumber *string `json:"alternate_phone_number"`
	DOB                  *string `json:"dob" validate:"omitempty,datetime=2006-01-02"`
	Gender               *string `json:"gender" validate:"omitempty,oneof=MALE FEMALE OTHER"`
	IDCardType           *string `json:"id_card_type" validate:"omitempty,oneof=AADHAR PAN DRIVING_LICENSE VOTER_ID PASSPORT OTHER"`
	IDCardNumber         *string `json:"id_card_number" validate:"omitempty,max=50"`
	ATPID                *string `json:"atp_id" validate:"omitempty,max=50"`
	Remarks              *string `json:"remarks" validate:"omitempty,max=1000"`
}

func (r *CreateEnquiryRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}

	var custom validation.CustomValidationErrors
	if !validation.IsValidPhoneNumber(r.PhoneNumber) {
		custom = append(custom, validation.CustomValidationError{
			Field: "phone_number", Message: "must be 8 to 15 digits",
		})
	}
	if r.AlternatePhoneNumber != nil && !validation.IsValidPhoneNumber(*r.AlternatePhoneNumber) {
		custom = append(custom, validation.CustomValidationError{
			Field: "alternate_phone_number", Message: "must be 8 to 15 digits",
		})
	}
	if len(custom) > 0 {
		return custom
	}
	return nil
}

func (h *EnquiryHandler) create(c echo.Context, req *CreateEnquiryRequest) (*model.Enquiry, error) {
	return h.services.Enquiries.Create(c.Request().Context(), service.CreateEnquiryInput{
		CompanyName:          req.CompanyName,
		HostName:             req.HostName,
		Email:                req.Email,
		PhoneNumber:          req.PhoneNumber,
		AlternatePhoneNumber: req.AlternatePhoneNumber,
		DOB:                  parseDate(req.DOB),
		Gender:               req.Gender,
		IDCardType:           req.IDCardType,
		IDCardNumber:         req.IDCardNumber,
		ATPID:                req.ATPID,
		Remarks:              req.Remarks,
	})
}

// ListEnquiriesRequest carries the list window and optional status
// filter.
type ListEnquiriesRequest struct {
	Skip   int     `query:"skip" validate:"min=0"`
	Limit  int     `query:"limit" validate:"min=0,max=1000"`
	Status *string `query:"status" validate:"omitempty,oneof=PENDING PROCESSED REJECTED CONVERTED"`
}

func (r *ListEnquiriesRequest) Validate() error {
	return validation.Struct(r)
}

func (h *EnquiryHandler) list(c echo.Context, req *ListEnquiriesRequest) ([]model.Enquiry, error) {
	return h.services.Enquiries.List(c.Request().Context(), req.Skip, req.Limit, req.Status)
}

func (h *EnquiryHandler) get(c echo.Context, req *IDRequest) (*model.Enquiry, error) {
	return h.services.Enquiries.Get(c.Request().Context(), req.ID)
}

// UpdateEnquiryRequest carries the partially updatable fields; absent
// fields keep their stored values.
type UpdateEnquiryRequest struct {
	ID                   int64   `param:"id" validate:"required,min=1"`
	CompanyName          *string `json:"company_name" validate:"omitempty,max=255"`
	HostName             *string `json:"host_name" validate:"omitempty,min=2,max=255"`
	Email                *string `json:"email" validate:"omitempty,email"`
	PhoneNumber          *string `json:"phone_number"`
	AlternatePhoneNumber *string `json:"alternate_phone_number"`
	DOB                  *string `json:"dob" validate:"omitempty,datetime=2006-01-02"`
	Gender               *string `json:"gender" validate:"omitempty,oneof=MALE FEMALE OTHER"`
	IDCardType           *string `json:"id_card_type" validate:"omitempty,oneof=AADHAR PAN DRIVING_LICENSE VOTER_ID PASSPORT OTHER"`
	IDCardNumber         *string `json:"id_card_number" validate:"omitempty,max=50"`
	ATPID                *string `json:"atp_id" validate:"omitempty,max=50"`
	Remarks              *string `json:"remarks" validate:"omitempty,max=1000"`
}

func (r *UpdateEnquiryRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}

	var custom validation.CustomValidationErrors
	if r.PhoneNumber != nil && !validation.IsValidPhoneNumber(*r.PhoneNumber) {
		custom = append(custom, validation.CustomValidationError{
			Field: "phone_number", Message: "must be 8 to 15 digits",
		})
	}
	if r.AlternatePhoneNumber != nil && !validation.IsValidPhoneNumber(*r.AlternatePhoneNumber) {
		custom = append(custom, validation.CustomValidationError{
			Field: "alternate_phone_number", Message: "must be 8 to 15 digits",
		})
	}
	if len(custom) > 0 {
		return custom
	}
	return nil
}

func (h *EnquiryHandler) update(c echo.Context, req *UpdateEnquiryRequest) (*model.Enquiry, error) {
	return h.services.Enquiries.Update(c.Request().Context(), req.ID, service.UpdateEnquiryInput{
		CompanyName:          req.CompanyName,
		HostName:             req.HostName,
		Email:                req.Email,
		PhoneNumber:          req.PhoneNumber,
		AlternatePhoneNumber: req.AlternatePhoneNumber,
		DOB:                  parseDate(req.DOB),
		Gender:               req.Gender,
		IDCardType:           req.IDCardType,
		IDCardNumber:         req.IDCardNumber,
		ATPID:                req.ATPID,
		Remarks:              req.Remarks,
	})
}

// UpdateEnquiryStatusRequest moves an enquiry to a new status.
type UpdateEnquiryStatusRequest struct {
	ID      int64   `param:"id" validate:"required,min=1"`
	Status  string  `json:"status" validate:"required,oneof=PENDING PROCESSED REJECTED CONVERTED"`
	Remarks *string `json:"remarks" validate:"omitempty,max=1000"`
}

func (r *UpdateEnquiryStatusRequest) Validate() error {
	return validation.Struct(r)
}

func (h *EnquiryHandler) updateStatus(c echo.Context, req *UpdateEnquiryStatusRequest) (*model.Enquiry, error) {
	return h.services.Enquiries.UpdateStatus(c.Request().Context(), req.ID, req.Status, req.Remarks)
}

// SearchEnquiriesRequest carries the page window and the optional
// OR-combined predicates.
type SearchEnquiriesRequest struct {
	Page         int     `json:"page" validate:"omitempty,min=1"`
	Limit        int     `json:"limit" validate:"omitempty,min=1,max=100"`
	Status       *string `json:"status" validate:"omitempty,oneof=PENDING PROCESSED REJECTED CONVERTED"`
	PhoneNumber  *string `json:"phone_number"`
	IDCardNumber *string `json:"id_card_number"`
	Email        *string `json:"email"`
	HostName     *string `json:"host_name"`
	CompanyName  *string `json:"company_name"`
	ATPID        *string `json:"atp_id"`
}

func (r *SearchEnquiriesRequest) Validate() error {
	return validation.Struct(r)
}

// EnquirySearchResponse pairs the result page with its pagination
// metadata.
type EnquirySearchResponse struct {
	Enquiries  []model.Enquiry           `json:"enquiries"`
	Pagination repository.PaginationInfo `json:"pagination"`
}

func (h *EnquiryHandler) search(c echo.Context, req *SearchEnquiriesRequest) (*EnquirySearchResponse, error) {
	results, pagination, err := h.services.Enquiries.Search(c.Request().Context(),
		repository.PageRequest{Page: req.Page, Limit: req.Limit},
		repository.EnquirySearchFilters{
			Status:       req.Status,
			PhoneNumber:  req.PhoneNumber,
			IDCardNumber: req.IDCardNumber,
			Email:        req.Email,
			HostName:     req.HostName,
			CompanyName:  req.CompanyName,
			ATPID:        req.ATPID,
		})
	if err != nil {
		return nil, err
	}

	return &EnquirySearchResponse{
		Enquiries:  results,
		Pagination: pagination,
	}, nil
}

func (h *EnquiryHandler) remove(c echo.Context, req *IDRequest) (*model.Enquiry, error) {
	return h.services.Enquiries.Delete(c.Request().Context(), req.ID)
}

// Route factories. The router registers these; the generic pipeline
// handles binding, validation, logging and the response envelope.

func (h *EnquiryHandler) Create() echo.HandlerFunc {
	return Handle(h.Handler, h.create, http.StatusCreated, "Enquiry submitted successfully")
}

func (h *EnquiryHandler) List() echo.HandlerFunc {
	return Handle(h.Handler, h.list, http.StatusOK, "Enquiries retrieved successfully")
}

func (h *EnquiryHandler) Get() echo.HandlerFunc {
	return Handle(h.Handler, h.get, http.StatusOK, "Enquiry retrieved successfully")
}

func (h *EnquiryHandler) Update() echo.HandlerFunc {
	return Handle(h.Handler, h.update, http.StatusOK, "Enquiry updated successfully")
}

func (h *EnquiryHandler) UpdateStatus() echo.HandlerFunc {
	return Handle(h.Handler, h.updateStatus, http.StatusOK, "Enquiry status updated successfully")
}

func (h *EnquiryHandler) Search() echo.HandlerFunc {
	return Handle(h.Handler, h.search, http.StatusOK, "Enquiries searched successfully")
}

func (h *EnquiryHandler) Delete() echo.HandlerFunc {
	return Handle(h.Handler, h.remove, http.StatusOK, "Enquiry deleted successfully")
}
