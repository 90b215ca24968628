package model

import "time"

// District is a state district used to place properties geographically.
type District struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	State       string    `db:"state" json:"state"`
	Code        *string   `db:"code" json:"code"`
	Description *string   `db:"description" json:"description"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// GramaPanchayat is the village-level administrative unit under a
// district.
type GramaPanchayat struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	DistrictID  int64     `db:"district_id" json:"district_id"`
	Code        *string   `db:"code" json:"code"`
	Description *string   `db:"description" json:"description"`
	Population  *int      `db:"population" json:"population"`
	AreaSqKm    *float64  `db:"area_sq_km" json:"area_sq_km"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
