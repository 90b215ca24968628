package service

import (
	"context"
	"time"

	"github.com/gostays/backend/internal/errs"
	"github.com/gostays/backend/internal/lib/job"
	"github.com/gostays/backend/internal/model"
	"github.com/gostays/backend/internal/repository"
	"github.com/gostays/backend/internal/server"
)

// EnquiryService owns the prospective-host enquiry flow: public intake,
// staff listing/search, and status processing.
type EnquiryService struct {
	server *server.Server
	repos  *repository.Repositories
}

// NewEnquiryService constructs the enquiry service.
func NewEnquiryService(s *server.Server, repos *repository.Repositories) *EnquiryService {
	return &EnquiryService{
		server: s,
		repos:  repos,
	}
}

// CreateEnquiryInput carries the intake form fields. Optional fields
// are pointers and omitted from the insert when nil, letting column
// defaults apply.
type CreateEnquiryInput struct {
	CompanyName          *string
	HostName             string
	Email                *string
	PhoneNumber          string
	AlternatePhoneNumber *string
	DOB                  *time.Time
	Gender               *string
	IDCardType           *string
	IDCardNumber         *string
	ATPID                *string
	Remarks              *string
}

// Create stores a new enquiry in PENDING status and enqueues the
// acknowledgement email when the form included an address. Email
// delivery is best-effort: a Redis outage never fails the intake.
func (s *EnquiryService) Create(ctx context.Context, in CreateEnquiryInput) (*model.Enquiry, error) {
	values := map[string]any{
		"host_name":    in.HostName,
		"phone_number": in.PhoneNumber,
		"status":       string(model.EnquiryStatusPending),
	}
	putOpt(values, "company_name", in.CompanyName)
	putOpt(values, "email", in.Email)
	putOpt(values, "alternate_phone_number", in.AlternatePhoneNumber)
	putOpt(values, "dob", in.DOB)
	putOpt(values, "gender", in.Gender)
	putOpt(values, "id_card_type", in.IDCardType)
	putOpt(values, "id_card_number", in.IDCardNumber)
	putOpt(values, "atp_id", in.ATPID)
	putOpt(values, "remarks", in.Remarks)

	enquiry, err := s.repos.Enquiries.Create(ctx, values)
	if err != nil {
		return nil, err
	}

	if enquiry.Email != nil {
		s.enqueueAcknowledgement(enquiry)
	}

	return enquiry, nil
}

// enqueueAcknowledgement pushes the acknowledgement task onto the job
// queue. Failures are logged, not returned: the enquiry is already
// stored.
func (s *EnquiryService) enqueueAcknowledgement(enquiry *model.Enquiry) {
	task, err := job.NewEnquiryReceivedTask(enquiry.ID, *enquiry.Email, enquiry.HostName, enquiry.PhoneNumber)
	if err != nil {
		s.server.Logger.Error().Err(err).Int64("enquiry_id", enquiry.ID).
			Msg("failed to build enquiry acknowledgement task")
		return
	}

	if _, err := s.server.Job.Client.Enqueue(task); err != nil {
		s.server.Logger.Error().Err(err).Int64("enquiry_id", enquiry.ID).
			Msg("failed to enqueue enquiry acknowledgement")
	}
}

// Get fetches an enquiry or returns a 404.
func (s *EnquiryService) Get(ctx context.Context, id int64) (*model.Enquiry, error) {
	return s.repos.Enquiries.GetOrFail(ctx, id, "Enquiry not found")
}

// List returns enquiries within [skip, skip+limit), optionally filtered
// by status.
func (s *EnquiryService) List(ctx context.Context, skip, limit int, status *string) ([]model.Enquiry, error) {
	filters := map[string]any{}
	if status != nil {
		if !model.ValidEnquiryStatus(*status) {
			return nil, errs.NewInvalidArgumentError("unknown enquiry status: " + *status)
		}
		filters["status"] = *status
	}
	return s.repos.Enquiries.List(ctx, skip, limit, filters)
}

// UpdateEnquiryInput carries the partially updatable fields.
type UpdateEnquiryInput struct {
	CompanyName          *string
	HostName             *string
	Email                *string
	PhoneNumber          *string
	AlternatePhoneNumber *string
	DOB                  *time.Time
	Gender               *string
	IDCardType           *string
	IDCardNumber         *string
	ATPID                *string
	Remarks              *string
}

// Update applies a partial update and returns the stored enquiry, or a
// 404 when the id does not exist.
func (s *EnquiryService) Update(ctx context.Context, id int64, in UpdateEnquiryInput) (*model.Enquiry, error) {
	values := map[string]any{}
	putOpt(values, "company_name", in.CompanyName)
	putOpt(values, "host_name", in.HostName)
	putOpt(values, "email", in.Email)
	putOpt(values, "phone_number", in.PhoneNumber)
	putOpt(values, "alternate_phone_number", in.AlternatePhoneNumber)
	putOpt(values, "dob", in.DOB)
	putOpt(values, "gender", in.Gender)
	putOpt(values, "id_card_type", in.IDCardType)
	putOpt(values, "id_card_number", in.IDCardNumber)
	putOpt(values, "atp_id", in.ATPID)
	putOpt(values, "remarks", in.Remarks)

	enquiry, err := s.repos.Enquiries.Update(ctx, id, values)
	if err != nil {
		return nil, err
	}
	if enquiry == nil {
		return nil, errs.NewNotFoundError("Enquiry not found", true, nil)
	}
	return enquiry, nil
}

// UpdateStatus moves an enquiry to a new status with optional remarks.
// Any status may transition to any other; staff correct mistakes by
// moving the enquiry again. A status email is enqueued when the
// enquiry carries an address.
func (s *EnquiryService) UpdateStatus(ctx context.Context, id int64, status string, remarks *string) (*model.Enquiry, error) {
	if !model.ValidEnquiryStatus(status) {
		return nil, errs.NewInvalidArgumentError("unknown enquiry status: " + status)
	}

	values := map[string]any{"status": status}
	putOpt(values, "remarks", remarks)

	enquiry, err := s.repos.Enquiries.Update(ctx, id, values)
	if err != nil {
		return nil, err
	}
	if enquiry == nil {
		return nil, errs.NewNotFoundError("Enquiry not found", true, nil)
	}

	if enquiry.Email != nil {
		s.enqueueStatusNotice(enquiry)
	}

	return enquiry, nil
}

func (s *EnquiryService) enqueueStatusNotice(enquiry *model.Enquiry) {
	remarks := ""
	if enquiry.Remarks != nil {
		remarks = *enquiry.Remarks
	}

	task, err := job.NewEnquiryStatusTask(enquiry.ID, *enquiry.Email, enquiry.HostName, string(enquiry.Status), remarks)
	if err != nil {
		s.server.Logger.Error().Err(err).Int64("enquiry_id", enquiry.ID).
			Msg("failed to build enquiry status task")
		return
	}

	if _, err := s.server.Job.Client.Enqueue(task); err != nil {
		s.server.Logger.Error().Err(err).Int64("enquiry_id", enquiry.ID).
			Msg("failed to enqueue enquiry status notice")
	}
}

// Search runs the OR-combined predicate search, newest first, and
// returns the page plus pagination metadata.
func (s *EnquiryService) Search(ctx context.Context, page repository.PageRequest, f repository.EnquirySearchFilters) ([]model.Enquiry, repository.PaginationInfo, error) {
	if f.Status != nil && *f.Status != "" && !model.ValidEnquiryStatus(*f.Status) {
		return nil, repository.PaginationInfo{}, errs.NewInvalidArgumentError("unknown enquiry status: " + *f.Status)
	}

	page.Normalize()

	results, total, err := s.repos.Enquiries.Search(ctx, f, page.Skip(), page.Limit)
	if err != nil {
		return nil, repository.PaginationInfo{}, err
	}

	return results, repository.NewPaginationInfo(total, page.Page, page.Limit), nil
}

// Delete removes an enquiry. Deleting an absent enquiry is a 404 so the
// client learns the id was wrong.
func (s *EnquiryService) Delete(ctx context.Context, id int64) (*model.Enquiry, error) {
	enquiry, err := s.repos.Enquiries.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if enquiry == nil {
		return nil, errs.NewNotFoundError("Enquiry not found", true, nil)
	}
	return enquiry, nil
}
