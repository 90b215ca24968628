package service

import (
	"context"
	"time"

	"github.com/gostays/backend/internal/errs"
	"github.com/gostays/backend/internal/model"
	"github.com/gostays/backend/internal/repository"
	"github.com/gostays/backend/internal/server"
)

// Onboarding progress is a 9-step flow; the property record tracks the
// highest step the host has reached.
const (
	MinProgressStep = 1
	MaxProgressStep = 9
)

// PropertyService owns property listings and their child records
// (rooms, facilities, photos, location, availability).
type PropertyService struct {
	server *server.Server
	repos  *repository.Repositories
}

// NewPropertyService constructs the property service.
func NewPropertyService(s *server.Server, repos *repository.Repositories) *PropertyService {
	return &PropertyService{
		server: s,
		repos:  repos,
	}
}

// --- Property types ---------------------------------------------------------

func (s *PropertyService) CreatePropertyType(ctx context.Context, name string, description *string, isActive bool) (*model.PropertyType, error) {
	values := map[string]any{
		"name":      name,
		"is_active": isActive,
	}
	putOpt(values, "description", description)
	return s.repos.PropertyTypes.Create(ctx, values)
}

func (s *PropertyService) GetPropertyType(ctx context.Context, id int64) (*model.PropertyType, error) {
	return s.repos.PropertyTypes.GetOrFail(ctx, id, "Property type not found")
}

func (s *PropertyService) ListPropertyTypes(ctx context.Context, skip, limit int) ([]model.PropertyType, error) {
	return s.repos.PropertyTypes.List(ctx, skip, limit, nil)
}

func (s *PropertyService) UpdatePropertyType(ctx context.Context, id int64, name, description *string, isActive *bool) (*model.PropertyType, error) {
	values := map[string]any{}
	putOpt(values, "name", name)
	putOpt(values, "description", description)
	putOpt(values, "is_active", isActive)

	pt, err := s.repos.PropertyTypes.Update(ctx, id, values)
	if err != nil {
		return nil, err
	}
	if pt == nil {
		return nil, errs.NewNotFoundError("Property type not found", true, nil)
	}
	return pt, nil
}

func (s *PropertyService) DeletePropertyType(ctx context.Context, id int64) (*model.PropertyType, error) {
	pt, err := s.repos.PropertyTypes.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if pt == nil {
		return nil, errs.NewNotFoundError("Property type not found", true, nil)
	}
	return pt, nil
}

// --- Properties -------------------------------------------------------------

// CreatePropertyInput starts a host's onboarding. Only user_id is
// mandatory; the rest arrives step by step.
type CreatePropertyInput struct {
	UserID             int64
	PropertyName       *string
	AlternatePhone     *string
	AreaCoordinatorID  *int64
	PropertyTypeID     *int64
	IDProofType        *string
	IDProofURL         *string
	CertificateNumber  *string
	TradeLicenseNumber *string
}

// CreateProperty creates the listing record. The unique index on
// user_id rejects a second listing for the same host as a conflict.
func (s *PropertyService) CreateProperty(ctx context.Context, in CreatePropertyInput) (*model.Property, error) {
	values := map[string]any{
		"user_id": in.UserID,
	}
	putOpt(values, "property_name", in.PropertyName)
	putOpt(values, "alternate_phone", in.AlternatePhone)
	putOpt(values, "area_coordinator_id", in.AreaCoordinatorID)
	putOpt(values, "property_type_id", in.PropertyTypeID)
	putOpt(values, "id_proof_type", in.IDProofType)
	putOpt(values, "id_proof_url", in.IDProofURL)
	putOpt(values, "certificate_number", in.CertificateNumber)
	putOpt(values, "trade_license_number", in.TradeLicenseNumber)

	return s.repos.Properties.Create(ctx, values)
}

func (s *PropertyService) GetProperty(ctx context.Context, id int64) (*model.Property, error) {
	return s.repos.Properties.GetOrFail(ctx, id, "Property not found")
}

// GetPropertyByUser returns the host's listing, 404 when onboarding has
// not started.
func (s *PropertyService) GetPropertyByUser(ctx context.Context, userID int64) (*model.Property, error) {
	property, err := s.repos.Properties.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, errs.NewNotFoundError("Property not found", true, nil)
	}
	return property, nil
}

// ListProperties returns listings filtered by any combination of
// status, classification and area coordinator.
func (s *PropertyService) ListProperties(ctx context.Context, skip, limit int, status, classification *string, areaCoordinatorID *int64) ([]model.Property, error) {
	filters := map[string]any{}
	if status != nil {
		if !model.ValidPropertyStatus(*status) {
			return nil, errs.NewInvalidArgumentError("unknown property status: " + *status)
		}
		filters["status"] = *status
	}
	putOpt(filters, "classification", classification)
	putOpt(filters, "area_coordinator_id", areaCoordinatorID)

	return s.repos.Properties.List(ctx, skip, limit, filters)
}

// UpdatePropertyInput carries the partially updatable listing fields.
type UpdatePropertyInput struct {
	PropertyName       *string
	AlternatePhone     *string
	AreaCoordinatorID  *int64
	PropertyTypeID     *int64
	IDProofType        *string
	IDProofURL         *string
	CertificateNumber  *string
	TradeLicenseNumber *string
	Classification     *string
	ProgressStep       *int
	IsVerified         *bool
}

// UpdateProperty applies a partial update. The progress step may only
// move within the onboarding window.
func (s *PropertyService) UpdateProperty(ctx context.Context, id int64, in UpdatePropertyInput) (*model.Property, error) {
	if in.ProgressStep != nil && (*in.ProgressStep < MinProgressStep || *in.ProgressStep > MaxProgressStep) {
		return nil, errs.NewInvalidArgumentError("progress step out of range")
	}

	values := map[string]any{}
	putOpt(values, "property_name", in.PropertyName)
	putOpt(values, "alternate_phone", in.AlternatePhone)
	putOpt(values, "area_coordinator_id", in.AreaCoordinatorID)
	putOpt(values, "property_type_id", in.PropertyTypeID)
	putOpt(values, "id_proof_type", in.IDProofType)
	putOpt(values, "id_proof_url", in.IDProofURL)
	putOpt(values, "certificate_number", in.CertificateNumber)
	putOpt(values, "trade_license_number", in.TradeLicenseNumber)
	putOpt(values, "classification", in.Classification)
	putOpt(values, "progress_step", in.ProgressStep)
	putOpt(values, "is_verified", in.IsVerified)

	property, err := s.repos.Properties.Update(ctx, id, values)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, errs.NewNotFoundError("Property not found", true, nil)
	}
	return property, nil
}

// UpdatePropertyStatus moves a listing to a new lifecycle status.
func (s *PropertyService) UpdatePropertyStatus(ctx context.Context, id int64, status string) (*model.Property, error) {
	if !model.ValidPropertyStatus(status) {
		return nil, errs.NewInvalidArgumentError("unknown property status: " + status)
	}

	property, err := s.repos.Properties.Update(ctx, id, map[string]any{"status": status})
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, errs.NewNotFoundError("Property not found", true, nil)
	}
	return property, nil
}

// DeleteProperty removes a listing; child records go with it through
// the FK cascade.
func (s *PropertyService) DeleteProperty(ctx context.Context, id int64) (*model.Property, error) {
	property, err := s.repos.Properties.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, errs.NewNotFoundError("Property not found", true, nil)
	}
	return property, nil
}

// --- Rooms ------------------------------------------------------------------

func (s *PropertyService) AddRoom(ctx context.Context, propertyID int64, roomType string, count int, amenities []string) (*model.Room, error) {
	if amenities == nil {
		amenities = []string{}
	}
	return s.repos.Rooms.Create(ctx, map[string]any{
		"property_id": propertyID,
		"room_type":   roomType,
		"count":       count,
		"amenities":   amenities,
	})
}

func (s *PropertyService) ListRooms(ctx context.Context, propertyID int64) ([]model.Room, error) {
	return s.repos.Rooms.ListByProperty(ctx, propertyID)
}

func (s *PropertyService) UpdateRoom(ctx context.Context, id int64, roomType *string, count *int, amenities []string) (*model.Room, error) {
	values := map[string]any{}
	putOpt(values, "room_type", roomType)
	putOpt(values, "count", count)
	if amenities != nil {
		values["amenities"] = amenities
	}

	room, err := s.repos.Rooms.Update(ctx, id, values)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, errs.NewNotFoundError("Room not found", true, nil)
	}
	return room, nil
}

func (s *PropertyService) DeleteRoom(ctx context.Context, id int64) (*model.Room, error) {
	room, err := s.repos.Rooms.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, errs.NewNotFoundError("Room not found", true, nil)
	}
	return room, nil
}

// --- Facilities -------------------------------------------------------------

func (s *PropertyService) AddFacility(ctx context.Context, propertyID int64, category string, details map[string]any) (*model.Facility, error) {
	if details == nil {
		details = map[string]any{}
	}
	return s.repos.Facilities.Create(ctx, map[string]any{
		"property_id": propertyID,
		"category":    category,
		"details":     details,
	})
}

func (s *PropertyService) ListFacilities(ctx context.Context, propertyID int64) ([]model.Facility, error) {
	return s.repos.Facilities.ListByProperty(ctx, propertyID)
}

func (s *PropertyService) UpdateFacility(ctx context.Context, id int64, category *string, details map[string]any) (*model.Facility, error) {
	values := map[string]any{}
	putOpt(values, "category", category)
	if details != nil {
		values["details"] = details
	}

	facility, err := s.repos.Facilities.Update(ctx, id, values)
	if err != nil {
		return nil, err
	}
	if facility == nil {
		return nil, errs.NewNotFoundError("Facility not found", true, nil)
	}
	return facility, nil
}

func (s *PropertyService) DeleteFacility(ctx context.Context, id int64) (*model.Facility, error) {
	facility, err := s.repos.Facilities.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if facility == nil {
		return nil, errs.NewNotFoundError("Facility not found", true, nil)
	}
	return facility, nil
}

// --- Photos -----------------------------------------------------------------

// AddPhoto records photo metadata. The image bytes live in object
// storage; only the URL is stored here.
func (s *PropertyService) AddPhoto(ctx context.Context, propertyID int64, category, imageURL string) (*model.PropertyPhoto, error) {
	return s.repos.Photos.Create(ctx, map[string]any{
		"property_id": propertyID,
		"category":    category,
		"image_url":   imageURL,
	})
}

func (s *PropertyService) ListPhotos(ctx context.Context, propertyID int64) ([]model.PropertyPhoto, error) {
	return s.repos.Photos.ListByProperty(ctx, propertyID)
}

func (s *PropertyService) DeletePhoto(ctx context.Context, id int64) (*model.PropertyPhoto, error) {
	photo, err := s.repos.Photos.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if photo == nil {
		return nil, errs.NewNotFoundError("Photo not found", true, nil)
	}
	return photo, nil
}

// --- Location ---------------------------------------------------------------

// GetLocation returns the property's address record, 404 when not yet
// recorded.
func (s *PropertyService) GetLocation(ctx context.Context, propertyID int64) (*model.Location, error) {
	location, err := s.repos.Locations.GetByProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, errs.NewNotFoundError("Location not found", true, nil)
	}
	return location, nil
}

// PutLocation writes the property's address record, replacing any
// existing one. The FK rejects unknown properties.
func (s *PropertyService) PutLocation(ctx context.Context, loc model.Location) (*model.Location, error) {
	return s.repos.Locations.Upsert(ctx, loc)
}

// --- Availability -----------------------------------------------------------

// AddAvailability records a bookable window. The window must be
// ordered; the schema enforces the same rule.
func (s *PropertyService) AddAvailability(ctx context.Context, propertyID int64, from, to time.Time, isAvailable bool) (*model.Availability, error) {
	if to.Before(from) {
		return nil, errs.NewInvalidArgumentError("available_to must not precede available_from")
	}

	return s.repos.Availability.Create(ctx, map[string]any{
		"property_id":    propertyID,
		"available_from": from,
		"available_to":   to,
		"is_available":   isAvailable,
	})
}

func (s *PropertyService) ListAvailability(ctx context.Context, propertyID int64) ([]model.Availability, error) {
	return s.repos.Availability.ListByProperty(ctx, propertyID)
}

// FindAvailability returns the property's open windows overlapping
// [from, to].
func (s *PropertyService) FindAvailability(ctx context.Context, propertyID int64, from, to time.Time) ([]model.Availability, error) {
	if to.Before(from) {
		return nil, errs.NewInvalidArgumentError("window end must not precede window start")
	}
	return s.repos.Availability.FindWindow(ctx, propertyID, from, to)
}

func (s *PropertyService) DeleteAvailability(ctx context.Context, id int64) (*model.Availability, error) {
	window, err := s.repos.Availability.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if window == nil {
		return nil, errs.NewNotFoundError("Availability window not found", true, nil)
	}
	return window, nil
}
