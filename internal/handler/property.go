package handler

import (
	"net/http"

	"github.com/gostays/backend/internal/model"
	"github.com/gostays/backend/internal/server"
	"github.com/gostays/backend/internal/service"
	"github.com/gostays/backend/internal/validation"
	"github.com/labstack/echo/v4"
)

// PropertyHandler serves property onboarding endpoints: the listing
// itself plus rooms, facilities, photos, location and availability.
type PropertyHandler struct {
	Handler
	services *service.Services
}

// NewPropertyHandler constructs the property handler.
func NewPropertyHandler(s *server.Server, services *service.Services) *PropertyHandler {
	return &PropertyHandler{
		Handler:  NewHandler(s),
		services: services,
	}
}

// --- Property types ---------------------------------------------------------

type CreatePropertyTypeRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	IsActive    bool    `json:"is_active"`
}

func (r *CreatePropertyTypeRequest) Validate() error {
	return validation.Struct(r)
}

func (h *PropertyHandler) createType(c echo.Context, req *CreatePropertyTypeRequest) (*model.PropertyType, error) {
	return h.services.Properties.CreatePropertyType(c.Request().Context(), req.Name, req.Description, req.IsActive)
}

type ListPropertyTypesRequest struct {
	Skip  int `query:"skip" validate:"min=0"`
	Limit int `query:"limit" validate:"min=0,max=1000"`
}

func (r *ListPropertyTypesRequest) Validate() error {
	return validation.Struct(r)
}

func (h *PropertyHandler) listTypes(c echo.Context, req *ListPropertyTypesRequest) ([]model.PropertyType, error) {
	return h.services.Properties.ListPropertyTypes(c.Request().Context(), req.Skip, req.Limit)
}

func (h *PropertyHandler) getType(c echo.Context, req *IDRequest) (*model.PropertyType, error) {
	return h.services.Properties.GetPropertyType(c.Request().Context(), req.ID)
}

type UpdatePropertyTypeRequest struct {
	ID          int64   `param:"id" validate:"required,min=1"`
	Name        *string `json:"name" validate:"omitempty,min=2,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	IsActive    *bool   `json:"is_active"`
}

func (r *UpdatePropertyTypeRequest) Validate() error {
	return validation.Struct(r)
}

func (h *PropertyHandler) updateType(c echo.Context, req *UpdatePropertyTypeRequest) (*model.PropertyType, error) {
	return h.services.Properties.UpdatePropertyType(c.Request().Context(), req.ID, req.Name, req.Description, req.IsActive)
}

func (h *PropertyHandler) removeType(c echo.Context, req *IDRequest) (*model.PropertyType, error) {
	return h.services.Properties.DeletePropertyType(c.Request().Context(), req.ID)
}

// --- Properties -------------------------------------------------------------

type CreatePropertyRequest struct {
	UserID             int64   `json:"user_id" validate:"required,min=1"`
	PropertyName       *string `json:"property_name" validate:"omitempty,max=255"`
	AlternatePhone     *string `json:"alternate_phone"`
	AreaCoordinatorID  *int64  `json:"area_coordinator_id" validate:"omitempty,min=1"`
	PropertyTypeID     *int64  `json:"property_type_id" validate:"omitempty,min=1"`
	IDProofType        *string `json:"id_proof_type" validate:"omitempty,max=50"`
	IDProofURL         *string `json:"id_proof_url" validate:"omitempty,url"`
	CertificateNumber  *string `json:"certificate_number" validate:"omitempty,max=100"`
	TradeLicenseNumber *string `json:"trade_license_number" validate:"omitempty,max=100"`
}

func (r *CreatePropertyRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}

	if r.AlternatePhone != nil && !validation.IsValidPhoneNumber(*r.AlternatePhone) {
		return validation.CustomValidationErrors{{
			Field: "alternate_phone", Message: "must be 8 to 15 digits",
		}}
	}
	return nil
}

func (h *PropertyHandler) create(c echo.Context, req *CreatePropertyRequest) (*model.Property, error) {
	return h.services.Properties.CreateProperty(c.Request().Context(), service.CreatePropertyInput{
		UserID:             req.UserID,
		PropertyName:       req.PropertyName,
		AlternatePhone:     req.AlternatePhone,
		AreaCoordinatorID:  req.AreaCoordinatorID,
		PropertyTypeID:     req.PropertyTypeID,
		IDProofType:        req.IDProofType,
		IDProofURL:         req.IDProofURL,
		CertificateNumber:  req.CertificateNumber,
		TradeLicenseNumber: req.TradeLicenseNumber,
	})
}

type ListPropertiesRequest struct {
	Skip              int     `query:"skip" validate:"min=0"`
	Limit             int     `query:"limit" validate:"min=0,max=1000"`
	Status            *string `query:"status" validate:"omitempty,oneof=ACTIVE INACTIVE BLOCKED DELETED"`
	Classification    *string `query:"classification" validate:"omitempty,oneof=SILVER GOLD DIAMOND"`
	AreaCoordinatorID *int64  `query:"area_coordinator_id" validate:"omitempty,min=1"`
}

func (r *ListPropertiesRequest) Validate() error {
	return validation.Struct(r)
}

func (h *PropertyHandler) list(c echo.Context, req *ListPropertiesRequest) ([]model.Property, error) {
	return h.services.Properties.ListProperties(c.Request().Context(),
		req.Skip, req.Limit, req.Status, req.Classification, req.AreaCoordinatorID)
}

func (h *PropertyHandler) get(c echo.Context, req *IDRequest) (*model.Property, error) {
	return h.services.Properties.GetProperty(c.Request().Context(), req.ID)
}

// UserIDRequest targets a property through its owning user.
type UserIDRequest struct {
	UserID int64 `param:"user_id" validate:"required,min=1"`
}

func (r *UserIDRequest) Validate() error {
	return validation.Struct(r)
}

func (h *PropertyHandler) getByUser(c echo.Context, req *UserIDRequest) (*model.Property, error) {
	return h.services.Properties.GetPropertyByUser(c.Request().Context(), req.UserID)
}

type UpdatePropertyRequest struct {
	ID                 int64   `param:"id" validate:"required,min=1"`
	PropertyName       *string `json:"property_name" validate:"omitempty,max=255"`
	AlternatePhone     *string `json:"alternate_phone"`
	AreaCoordinatorID  *int64  `json:"area_coordinator_id" validate:"omitempty,min=1"`
	PropertyTypeID     *int64  `json:"property_type_id" validate:"omitempty,min=1"`
	IDProofType        *string `json:"id_proof_type" validate:"omitempty,max=50"`
	IDProofURL         *string `json:"id_proof_url" validate:"omitempty,url"`
	CertificateNumber  *string `json:"certificate_number" validate:"omitempty,max=100"`
	TradeLicenseNumber *string `json:"trade_license_number" validate:"omitempty,max=100"`
	Classification     *string `json:"classification" validate:"omitempty,oneof=SILVER GOLD DIAMOND"`
	ProgressStep       *int    `json:"progress_step" validate:"omitempty,min=1,max=9"`
	IsVerified         *bool   `json:"is_verified"`
}

func (r *UpdatePropertyRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}

	if r.AlternatePhone != nil && !validation.IsValidPhoneNumber(*r.AlternatePhone) {
		return validation.CustomValidationErrors{{
			Field: "alternate_phone", Message: "must be 8 to 15 digits",
		}}
	}
	return nil
}

func (h *PropertyHandler) update(c echo.Context, req *UpdatePropertyRequest) (*model.Property, error) {
	return h.services.Properties.UpdateProperty(c.Request().Context(), req.ID, service.UpdatePropertyInput{
		PropertyName:       req.PropertyName,
		AlternatePhone:     req.AlternatePhone,
		AreaCoordinatorID:  req.AreaCoordinatorID,
		PropertyTypeID:     req.PropertyTypeID,
		IDProofType:        req.IDProofType,
		IDProofURL:         req.IDProofURL,
		CertificateNumber:  req.CertificateNumber,
		TradeLicenseNumber: req.TradeLicenseNumber,
		Classification:     req.Classification,
		ProgressStep:       req.ProgressStep,
		IsVerified:         req.IsVerified,
	})
}

type UpdatePropertyStatusRequest struct {
	ID     int64  `param:"id" validate:"required,min=1"`
	Status string `json:"status" validate:"required,oneof=ACTIVE INACTIVE BLOCKED DELETED"`
}

func (r *UpdatePropertyStatusRequest) Validate() error {
	return validation.Struct(r)
}

func (h *PropertyHandler) updateStatus(c echo.Context, req *UpdatePropertyStatusRequest) (*model.Property, error) {
	return h.services.Properties.UpdatePropertyStatus(c.Request().Context(), req.ID, req.Status)
}

func (h *PropertyHandler) remove(c echo.Context, req *IDRequest) (*model.Property, error) {
	return h.services.Properties.DeleteProperty(c.Request().Context(), req.ID)
}

// --- Rooms ------------------------------------------------------------------

type AddRoomRequest struct {
	PropertyID int64    `param:"id" validate:"required,min=1"`
	RoomType   string   `json:"room_type" validate:"required,min=2,max=100"`
	Count      int      `json:"count" validate:"required,min=1,max=100"`
	Amenities  []string `json:"amenities" validate:"omitempty,dive,min=1,max=100"`
}

func (r *AddRoomRequest) Validate() error {
	return validation.Struct(r)
}

func (h *PropertyHandler) addRoom(c echo.Context, req *AddRoomRequest) (*model.Room, error) {
	return h.services.Properties.AddRoom(c.Request().Context(), req.PropertyID, req.RoomType, req.Count, req.Amenities)
}

func (h *PropertyHandler) listRooms(c echo.Context, req *IDRequest) ([]model.Room, error) {
	return h.services.Properties.ListRooms(c.Request().Context(), req.ID)
}

type UpdateRoomRequest struct {
	ID        int64    `param:"id" validate:"required,min=1"`
	RoomType  *string  `json:"room_type" validate:"omitempty,min=2,max=100"`
	Count     *int     `json:"count" validate:"omitempty,min=1,max=100"`
	Amenities []string `json:"amenities" validate:"omitempty,dive,min=1,max=100"`
}

func (r *UpdateRoomRequest) Validate() error {
	return validation.Struct(r)
}

func (h *PropertyHandler) updateRoom(c echo.Context, req *UpdateRoomRequest) (*model.Room, error) {
	return h.services.Properties.UpdateRoom(c.Request().Context(), req.ID, req.RoomType, req.Count, req.Amenities)
}

func (h *PropertyHandler) removeRoom(c echo.Context, req *IDRequest) (*model.Room, error) {
	return h.services.Properties.DeleteRoom(c.Request().Context(), req.ID)
}

// --- Facilities -------------------------------------------------------------

type AddFacilityRequest struct {
	PropertyID int64          `param:"id" validate:"required,min=1"`
	Category   string         `json:"category" validate:"required,oneof=GENERAL BEDROOM BATHROOM DINING"`
	Details    map[string]any `json:"details"`
}

func (r *AddFacilityRequest) Validate() error {
	return validation.Struct(r)
}

func (h *PropertyHandler) addFacility(c echo.Context, req *AddFacilityRequest) (*model.Facility, error) {
	return h.services.Properties.AddFacility(c.Request().Context(), req.PropertyID, req.Category, req.Details)
}

func (h *PropertyHandler) listFacilities(c echo.Context, req *IDRequest) ([]model.Facility, error) {
	return h.services.Properties.ListFacilities(c.Request().Context(), req.ID)
}

type UpdateFacilityRequest struct {
	ID       int64          `param:"id" validate:"required,min=1"`
	Category *string        `json:"category" validate:"omitempty,oneof=GENERAL BEDROOM BATHROOM DINING"`
	Details  map[string]any `json:"details"`
}

func (r *UpdateFacilityRequest) Validate() error {
	return validation.Struct(r)
}

func (h *PropertyHandler) updateFacility(c echo.Context, req *UpdateFacilityRequest) (*model.Facility, error) {
	return h.services.Properties.UpdateFacility(c.Request().Context(), req.ID, req.Category, req.Details)
}

func (h *PropertyHandler) removeFacility(c echo.Context, req *IDRequest) (*model.Facility, error) {
	return h.services.Properties.DeleteFacility(c.Request().Context(), req.ID)
}

// --- Photos -----------------------------------------------------------------

type AddPhotoRequest struct {
	PropertyID int64  `param:"id" validate:"required,min=1"`
	Category   string `json:"category" validate:"required,oneof=EXTERIOR BEDROOM BATHROOM LIVING_ROOM KITCHEN DINING COMMON_AREA AMENITIES"`
	ImageURL   string `json:"image_url" validate:"required,url"`
}

func (r *AddPhotoRequest) Validate() error {
	return validation.Struct(r)
}

func (h *PropertyHandler) addPhoto(c echo.Context, req *AddPhotoRequest) (*model.PropertyPhoto, error) {
	return h.services.Properties.AddPhoto(c.Request().Context(), req.PropertyID, req.Category, req.ImageURL)
}

func (h *PropertyHandler) listPhotos(c echo.Context, req *IDRequest) ([]model.PropertyPhoto, error) {
	return h.services.Properties.ListPhotos(c.Request().Context(), req.ID)
}

func (h *PropertyHandler) removePhoto(c echo.Context, req *IDRequest) error {
	_, err := h.services.Properties.DeletePhoto(c.Request().Context(), req.ID)
	return err
}

// --- Location ---------------------------------------------------------------

func (h *PropertyHandler) getLocation(c echo.Context, req *IDRequest) (*model.Location, error) {
	return h.services.Properties.GetLocation(c.Request().Context(), req.ID)
}

type PutLocationRequest struct {
	PropertyID      int64    `param:"id" validate:"required,min=1"`
	Address         string   `json:"address" validate:"required,min=5,max=1000"`
	GoogleMapLink   *string  `json:"google_map_link" validate:"omitempty,url"`
	Floor           *string  `json:"floor" validate:"omitempty,max=50"`
	ElderlyFriendly bool     `json:"elderly_friendly"`
	Latitude        *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude       *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
}

func (r *PutLocationRequest) Validate() error {
	return validation.Struct(r)
}

func (h *PropertyHandler) putLocation(c echo.Context, req *PutLocationRequest) (*model.Location, error) {
	return h.services.Properties.PutLocation(c.Request().Context(), model.Location{
		PropertyID:      req.PropertyID,
		Address:         req.Address,
		GoogleMapLink:   req.GoogleMapLink,
		Floor:           req.Floor,
		ElderlyFriendly: req.ElderlyFriendly,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
	})
}

// --- Availability -----------------------------------------------------------

type AddAvailabilityRequest struct {
	PropertyID    int64  `param:"id" validate:"required,min=1"`
	AvailableFrom string `json:"available_from" validate:"required,datetime=2006-01-02"`
	AvailableTo   string `json:"available_to" validate:"required,datetime=2006-01-02"`
	IsAvailable   bool   `json:"is_available"`
}

func (r *AddAvailabilityRequest) Validate() error {
	return validation.Struct(r)
}

func (h *PropertyHandler) addAvailability(c echo.Context, req *AddAvailabilityRequest) (*model.Availability, error) {
	from := parseDate(&req.AvailableFrom)
	to := parseDate(&req.AvailableTo)
	return h.services.Properties.AddAvailability(c.Request().Context(), req.PropertyID, *from, *to, req.IsAvailable)
}

// ListAvailabilityRequest lists a property's windows; with a from/to
// pair it narrows to windows overlapping that range.
type ListAvailabilityRequest struct {
	PropertyID int64   `param:"id" validate:"required,min=1"`
	From       *string `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To         *string `query:"to" validate:"omitempty,datetime=2006-01-02"`
}

func (r *ListAvailabilityRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}

	if (r.From == nil) != (r.To == nil) {
		return validation.CustomValidationErrors{{
			Field: "from", Message: "from and to must be provided together",
		}}
	}
	return nil
}

func (h *PropertyHandler) listAvailability(c echo.Context, req *ListAvailabilityRequest) ([]model.Availability, error) {
	if req.From != nil {
		return h.services.Properties.FindAvailability(c.Request().Context(),
			req.PropertyID, *parseDate(req.From), *parseDate(req.To))
	}
	return h.services.Properties.ListAvailability(c.Request().Context(), req.PropertyID)
}

func (h *PropertyHandler) removeAvailability(c echo.Context, req *IDRequest) (*model.Availability, error) {
	return h.services.Properties.DeleteAvailability(c.Request().Context(), req.ID)
}

// --- Route factories --------------------------------------------------------

func (h *PropertyHandler) CreateType() echo.HandlerFunc {
	return Handle(h.Handler, h.createType, http.StatusCreated, "Property type created successfully")
}

func (h *PropertyHandler) ListTypes() echo.HandlerFunc {
	return Handle(h.Handler, h.listTypes, http.StatusOK, "Property types retrieved successfully")
}

func (h *PropertyHandler) GetType() echo.HandlerFunc {
	return Handle(h.Handler, h.getType, http.StatusOK, "Property type retrieved successfully")
}

func (h *PropertyHandler) UpdateType() echo.HandlerFunc {
	return Handle(h.Handler, h.updateType, http.StatusOK, "Property type updated successfully")
}

func (h *PropertyHandler) DeleteType() echo.HandlerFunc {
	return Handle(h.Handler, h.removeType, http.StatusOK, "Property type deleted successfully")
}

func (h *PropertyHandler) Create() echo.HandlerFunc {
	return Handle(h.Handler, h.create, http.StatusCreated, "Property created successfully")
}

func (h *PropertyHandler) List() echo.HandlerFunc {
	return Handle(h.Handler, h.list, http.StatusOK, "Properties retrieved successfully")
}

func (h *PropertyHandler) Get() echo.HandlerFunc {
	return Handle(h.Handler, h.get, http.StatusOK, "Property retrieved successfully")
}

func (h *PropertyHandler) GetByUser() echo.HandlerFunc {
	return Handle(h.Handler, h.getByUser, http.StatusOK, "Property retrieved successfully")
}

func (h *PropertyHandler) Update() echo.HandlerFunc {
	return Handle(h.Handler, h.update, http.StatusOK, "Property updated successfully")
}

func (h *PropertyHandler) UpdateStatus() echo.HandlerFunc {
	return Handle(h.Handler, h.updateStatus, http.StatusOK, "Property status updated successfully")
}

func (h *PropertyHandler) Delete() echo.HandlerFunc {
	return Handle(h.Handler, h.remove, http.StatusOK, "Property deleted successfully")
}

func (h *PropertyHandler) AddRoom() echo.HandlerFunc {
	return Handle(h.Handler, h.addRoom, http.StatusCreated, "Room added successfully")
}

func (h *PropertyHandler) ListRooms() echo.HandlerFunc {
	return Handle(h.Handler, h.listRooms, http.StatusOK, "Rooms retrieved successfully")
}

func (h *PropertyHandler) UpdateRoom() echo.HandlerFunc {
	return Handle(h.Handler, h.updateRoom, http.StatusOK, "Room updated successfully")
}

func (h *PropertyHandler) DeleteRoom() echo.HandlerFunc {
	return Handle(h.Handler, h.removeRoom, http.StatusOK, "Room deleted successfully")
}

func (h *PropertyHandler) AddFacility() echo.HandlerFunc {
	return Handle(h.Handler, h.addFacility, http.StatusCreated, "Facility added successfully")
}

func (h *PropertyHandler) ListFacilities() echo.HandlerFunc {
	return Handle(h.Handler, h.listFacilities, http.StatusOK, "Facilities retrieved successfully")
}

func (h *PropertyHandler) UpdateFacility() echo.HandlerFunc {
	return Handle(h.Handler, h.updateFacility, http.StatusOK, "Facility updated successfully")
}

func (h *PropertyHandler) DeleteFacility() echo.HandlerFunc {
	return Handle(h.Handler, h.removeFacility, http.StatusOK, "Facility deleted successfully")
}

func (h *PropertyHandler) AddPhoto() echo.HandlerFunc {
	return Handle(h.Handler, h.addPhoto, http.StatusCreated, "Photo added successfully")
}

func (h *PropertyHandler) ListPhotos() echo.HandlerFunc {
	return Handle(h.Handler, h.listPhotos, http.StatusOK, "Photos retrieved successfully")
}

func (h *PropertyHandler) DeletePhoto() echo.HandlerFunc {
	return HandleNoContent(h.Handler, h.removePhoto, http.StatusNoContent)
}

func (h *PropertyHandler) GetLocation() echo.HandlerFunc {
	return Handle(h.Handler, h.getLocation, http.StatusOK, "Location retrieved successfully")
}

func (h *PropertyHandler) PutLocation() echo.HandlerFunc {
	return Handle(h.Handler, h.putLocation, http.StatusOK, "Location saved successfully")
}

func (h *PropertyHandler) AddAvailability() echo.HandlerFunc {
	return Handle(h.Handler, h.addAvailability, http.StatusCreated, "Availability window added successfully")
}

func (h *PropertyHandler) ListAvailability() echo.HandlerFunc {
	return Handle(h.Handler, h.listAvailability, http.StatusOK, "Availability retrieved successfully")
}

func (h *PropertyHandler) DeleteAvailability() echo.HandlerFunc {
	return Handle(h.Handler, h.removeAvailability, http.StatusOK, "Availability window deleted successfully")
}
