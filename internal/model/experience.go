package model

import "time"

// DurationUnit is the unit of an experience's duration value.
type DurationUnit string

const (
	DurationMinute DurationUnit = "MINUTE"
	DurationHour   DurationUnit = "HOUR"
	DurationDay    DurationUnit = "DAY"
)

// ExperienceStatus is the lifecycle state of an experience listing;
// deletion is soft and lands on DELETED.
type ExperienceStatus string

const (
	ExperienceActive  ExperienceStatus = "ACTIVE"
	ExperienceBlocked ExperienceStatus = "BLOCKED"
	ExperienceDeleted ExperienceStatus = "DELETED"
)

// ValidExperienceStatus reports whether s is a known status value.
func ValidExperienceStatus(s string) bool {
	switch ExperienceStatus(s) {
	case ExperienceActive, ExperienceBlocked, ExperienceDeleted:
		return true
	}
	return false
}

// ExperienceApprovalStatus tracks editorial review of a listing.
type ExperienceApprovalStatus string

const (
	ApprovalDraft    ExperienceApprovalStatus = "DRAFT"
	ApprovalPending  ExperienceApprovalStatus = "PENDING"
	ApprovalApproved ExperienceApprovalStatus = "APPROVED"
	ApprovalRejected ExperienceApprovalStatus = "REJECTED"
)

// ValidExperienceApprovalStatus reports whether s is a known approval
// status.
func ValidExperienceApprovalStatus(s string) bool {
	switch ExperienceApprovalStatus(s) {
	case ApprovalDraft, ApprovalPending, ApprovalApproved, ApprovalRejected:
		return true
	}
	return false
}

// Experience is a host-offered activity (cooking class, guided walk,
// ...) sold alongside a stay. List-valued fields are jsonb columns.
type Experience struct {
	ID                int64                    `db:"id" json:"id"`
	UserID            int64                    `db:"user_id" json:"user_id"`
	AreaCoordinatorID *int64                   `db:"area_coordinator_id" json:"area_coordinator_id"`
	Title             string                   `db:"title" json:"title"`
	Category          *string                  `db:"category" json:"category"`
	Subcategory       *string                  `db:"subcategory" json:"subcategory"`
	Duration          *int                     `db:"duration" json:"duration"`
	DurationUnit      *DurationUnit            `db:"duration_unit" json:"duration_unit"`
	GroupSize         *int                     `db:"group_size" json:"group_size"`
	Languages         []string                 `db:"languages" json:"languages"`
	Description       *string                  `db:"description" json:"description"`
	Included          []string                 `db:"included" json:"included"`
	Photos            []string                 `db:"photos" json:"photos"`
	VideoURL          *string                  `db:"video_url" json:"video_url"`
	SafetyItems       []string                 `db:"safety_items" json:"safety_items"`
	Price             *float64                 `db:"price" json:"price"`
	IsPriceByGuest    bool                     `db:"is_price_by_guest" json:"is_price_by_guest"`
	IncludedInPrice   []string                 `db:"included_in_price" json:"included_in_price"`
	LegalDeclarations []string                 `db:"legal_declarations" json:"legal_declarations"`
	Status            ExperienceStatus         `db:"status" json:"status"`
	ApprovalStatus    ExperienceApprovalStatus `db:"approval_status" json:"approval_status"`
	CreatedAt         time.Time                `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time                `db:"updated_at" json:"updated_at"`
}
