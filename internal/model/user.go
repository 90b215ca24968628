package model

import "time"

// AuthProvider identifies how an account authenticates.
type AuthProvider string

const (
	AuthProviderEmail  AuthProvider = "EMAIL"
	AuthProviderGoogle AuthProvider = "GOOGLE"
	AuthProviderMobile AuthProvider = "MOBILE"
)

// UserType is the role discriminator on the base account record. Host
// role data lives on the property record keyed by user id and is fetched
// by explicit join.
type UserType string

const (
	UserTypeAdmin UserType = "ADMIN"
	UserTypeGuest UserType = "GUEST"
	UserTypeHost  UserType = "HOST"
)

// User is the base account record shared by guests, hosts, and admins.
type User struct {
	ID           int64        `db:"id" json:"id"`
	AuthProvider AuthProvider `db:"auth_provider" json:"auth_provider"`
	UserType     UserType     `db:"user_type" json:"user_type"`
	Email        *string      `db:"email" json:"email"`
	PhoneNumber  *string      `db:"phone_number" json:"phone_number"`
	PasswordHash *string      `db:"password_hash" json:"-"`
	FullName     string       `db:"full_name" json:"full_name"`
	DOB          *time.Time   `db:"dob" json:"dob"`
	ProfileImage *string      `db:"profile_image" json:"profile_image"`
	Status       bool         `db:"status" json:"status"`
	CreatedAt    time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time    `db:"updated_at" json:"updated_at"`
}

// HostProfile is the composed view of a host account and its property
// record, produced by an explicit join.
type HostProfile struct {
	User     User      `json:"user"`
	Property *Property `json:"property"`
}
