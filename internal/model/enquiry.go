package model

import "time"

// Gender of the person filing an enquiry.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

// IDCardType enumerates accepted identity documents.
type IDCardType string

const (
	IDCardAadhar         IDCardType = "AADHAR"
	IDCardPAN            IDCardType = "PAN"
	IDCardDrivingLicense IDCardType = "DRIVING_LICENSE"
	IDCardVoterID        IDCardType = "VOTER_ID"
	IDCardPassport       IDCardType = "PASSPORT"
	IDCardOther          IDCardType = "OTHER"
)

// EnquiryStatus tracks lead processing. Any status may transition to any
// other; no state machine is enforced.
type EnquiryStatus string

const (
	EnquiryStatusPending   EnquiryStatus = "PENDING"
	EnquiryStatusProcessed EnquiryStatus = "PROCESSED"
	EnquiryStatusRejected  EnquiryStatus = "REJECTED"
	// EnquiryStatusConverted marks an enquiry converted to a registration.
	EnquiryStatusConverted EnquiryStatus = "CONVERTED"
)

// ValidEnquiryStatus reports whether s is a known status value.
func ValidEnquiryStatus(s string) bool {
	switch EnquiryStatus(s) {
	case EnquiryStatusPending, EnquiryStatusProcessed, EnquiryStatusRejected, EnquiryStatusConverted:
		return true
	}
	return false
}

// Enquiry is a prospective-host lead captured from the public enquiry
// form.
type Enquiry struct {
	ID                   int64         `db:"id" json:"id"`
	CompanyName          *string       `db:"company_name" json:"company_name"`
	HostName             string        `db:"host_name" json:"host_name"`
	Email                *string       `db:"email" json:"email"`
	PhoneNumber          string        `db:"phone_number" json:"phone_number"`
	AlternatePhoneNumber *string       `db:"alternate_phone_number" json:"alternate_phone_number"`
	DOB                  *time.Time    `db:"dob" json:"dob"`
	Gender               *Gender       `db:"gender" json:"gender"`
	IDCardType           *IDCardType   `db:"id_card_type" json:"id_card_type"`
	IDCardNumber         *string       `db:"id_card_number" json:"id_card_number"`
	ATPID                *string       `db:"atp_id" json:"atp_id"`
	Status               EnquiryStatus `db:"status" json:"status"`
	Remarks              *string       `db:"remarks" json:"remarks"`
	CreatedAt            time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt            time.Time     `db:"updated_at" json:"updated_at"`
}
