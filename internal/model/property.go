package model

import "time"

// PropertyClassification is the quality tier assigned to a property.
type PropertyClassification string

const (
	ClassificationSilver  PropertyClassification = "SILVER"
	ClassificationGold    PropertyClassification = "GOLD"
	ClassificationDiamond PropertyClassification = "DIAMOND"
)

// PropertyStatus is the lifecycle state of a property listing.
type PropertyStatus string

const (
	PropertyStatusActive   PropertyStatus = "ACTIVE"
	PropertyStatusInactive PropertyStatus = "INACTIVE"
	PropertyStatusBlocked  PropertyStatus = "BLOCKED"
	PropertyStatusDeleted  PropertyStatus = "DELETED"
)

// ValidPropertyStatus reports whether s is a known status value.
func ValidPropertyStatus(s string) bool {
	switch PropertyStatus(s) {
	case PropertyStatusActive, PropertyStatusInactive, PropertyStatusBlocked, PropertyStatusDeleted:
		return true
	}
	return false
}

// FacilityCategory groups facility records by area.
type FacilityCategory string

const (
	FacilityGeneral  FacilityCategory = "GENERAL"
	FacilityBedroom  FacilityCategory = "BEDROOM"
	FacilityBathroom FacilityCategory = "BATHROOM"
	FacilityDining   FacilityCategory = "DINING"
)

// PhotoCategory groups property photos by subject.
type PhotoCategory string

const (
	PhotoExterior   PhotoCategory = "EXTERIOR"
	PhotoBedroom    PhotoCategory = "BEDROOM"
	PhotoBathroom   PhotoCategory = "BATHROOM"
	PhotoLivingRoom PhotoCategory = "LIVING_ROOM"
	PhotoKitchen    PhotoCategory = "KITCHEN"
	PhotoDining     PhotoCategory = "DINING"
	PhotoCommonArea PhotoCategory = "COMMON_AREA"
	PhotoAmenities  PhotoCategory = "AMENITIES"
)

// PropertyType is a lookup of listing types (homestay, serviced villa, ...).
type PropertyType struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Property is a host's listing. Exactly one per host account (user_id is
// unique); progress_step tracks the 9-step onboarding flow.
type Property struct {
	ID                 int64                  `db:"id" json:"id"`
	UserID             int64                  `db:"user_id" json:"user_id"`
	PropertyName       *string                `db:"property_name" json:"property_name"`
	AlternatePhone     *string                `db:"alternate_phone" json:"alternate_phone"`
	AreaCoordinatorID  *int64                 `db:"area_coordinator_id" json:"area_coordinator_id"`
	PropertyTypeID     *int64                 `db:"property_type_id" json:"property_type_id"`
	IDProofType        *string                `db:"id_proof_type" json:"id_proof_type"`
	IDProofURL         *string                `db:"id_proof_url" json:"id_proof_url"`
	CertificateNumber  *string                `db:"certificate_number" json:"certificate_number"`
	TradeLicenseNumber *string                `db:"trade_license_number" json:"trade_license_number"`
	Classification     PropertyClassification `db:"classification" json:"classification"`
	Status             PropertyStatus         `db:"status" json:"status"`
	ProgressStep       int                    `db:"progress_step" json:"progress_step"`
	IsVerified         bool                   `db:"is_verified" json:"is_verified"`
	CreatedAt          time.Time              `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time              `db:"updated_at" json:"updated_at"`
}

// Room is a room-type line on a property (type + how many of them).
type Room struct {
	ID         int64     `db:"id" json:"id"`
	PropertyID int64     `db:"property_id" json:"property_id"`
	RoomType   string    `db:"room_type" json:"room_type"`
	Count      int       `db:"count" json:"count"`
	Amenities  []string  `db:"amenities" json:"amenities"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// Facility is a categorized facility record with free-form details.
type Facility struct {
	ID         int64            `db:"id" json:"id"`
	PropertyID int64            `db:"property_id" json:"property_id"`
	Category   FacilityCategory `db:"category" json:"category"`
	Details    map[string]any   `db:"details" json:"details"`
	CreatedAt  time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time        `db:"updated_at" json:"updated_at"`
}

// PropertyPhoto is photo metadata; the binary lives in object storage
// and only its URL is recorded here.
type PropertyPhoto struct {
	ID         int64         `db:"id" json:"id"`
	PropertyID int64         `db:"property_id" json:"property_id"`
	Category   PhotoCategory `db:"category" json:"category"`
	ImageURL   string        `db:"image_url" json:"image_url"`
	CreatedAt  time.Time     `db:"created_at" json:"created_at"`
}

// Location is the 1:1 address record for a property.
type Location struct {
	ID              int64     `db:"id" json:"id"`
	PropertyID      int64     `db:"property_id" json:"property_id"`
	Address         string    `db:"address" json:"address"`
	GoogleMapLink   *string   `db:"google_map_link" json:"google_map_link"`
	Floor           *string   `db:"floor" json:"floor"`
	ElderlyFriendly bool      `db:"elderly_friendly" json:"elderly_friendly"`
	Latitude        *float64  `db:"latitude" json:"latitude"`
	Longitude       *float64  `db:"longitude" json:"longitude"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// Availability is a bookable date window on a property.
type Availability struct {
	ID            int64     `db:"id" json:"id"`
	PropertyID    int64     `db:"property_id" json:"property_id"`
	AvailableFrom time.Time `db:"available_from" json:"available_from"`
	AvailableTo   time.Time `db:"available_to" json:"available_to"`
	IsAvailable   bool      `db:"is_available" json:"is_available"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}
