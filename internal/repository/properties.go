package repository

import (
	"context"
	"time"

	"github.com/gostays/backend/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

var (
	propertyTypeColumns = []string{"name", "description", "is_active"}

	propertyColumns = []string{
		"user_id", "property_name", "alternate_phone",
		"area_coordinator_id", "property_type_id", "id_proof_type",
		"id_proof_url", "certificate_number", "trade_license_number",
		"classification", "status", "progress_step", "is_verified",
	}

	roomColumns     = []string{"property_id", "room_type", "count", "amenities"}
	facilityColumns = []string{"property_id", "category", "details"}
	photoColumns    = []string{"property_id", "category", "image_url"}

	availabilityColumns = []string{
		"property_id", "available_from", "available_to", "is_available",
	}
)

// PropertyTypesRepository is plain CRUD over the property_types lookup.
type PropertyTypesRepository struct {
	*Repository[model.PropertyType]
}

func NewPropertyTypesRepository(pool *pgxpool.Pool) *PropertyTypesRepository {
	return &PropertyTypesRepository{
		Repository: NewRepository[model.PropertyType](pool, "property_types", propertyTypeColumns...),
	}
}

// PropertiesRepository persists host property listings.
type PropertiesRepository struct {
	*Repository[model.Property]
	pool *pgxpool.Pool
}

func NewPropertiesRepository(pool *pgxpool.Pool) *PropertiesRepository {
	return &PropertiesRepository{
		Repository: NewRepository[model.Property](pool, "properties", propertyColumns...),
		pool:       pool,
	}
}

// GetByUser fetches the property owned by userID, (nil, nil) when the
// host has not started onboarding. user_id is unique so at most one row
// exists.
func (r *PropertiesRepository) GetByUser(ctx context.Context, userID int64) (*model.Property, error) {
	rows, err := r.pool.Query(ctx, "SELECT * FROM properties WHERE user_id = $1", userID)
	if err != nil {
		return nil, errors.Wrap(err, "table:properties: get by user")
	}

	property, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByNameLax[model.Property])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "table:properties: get by user scan")
	}
	return &property, nil
}

// RoomsRepository persists room-type lines of a property.
type RoomsRepository struct {
	*Repository[model.Room]
}

func NewRoomsRepository(pool *pgxpool.Pool) *RoomsRepository {
	return &RoomsRepository{
		Repository: NewRepository[model.Room](pool, "rooms", roomColumns...),
	}
}

// ListByProperty returns all room lines of a property.
func (r *RoomsRepository) ListByProperty(ctx context.Context, propertyID int64) ([]model.Room, error) {
	return r.List(ctx, 0, MaxListLimit, map[string]any{"property_id": propertyID})
}

// FacilitiesRepository persists categorized facility records.
type FacilitiesRepository struct {
	*Repository[model.Facility]
}

func NewFacilitiesRepository(pool *pgxpool.Pool) *FacilitiesRepository {
	return &FacilitiesRepository{
		Repository: NewRepository[model.Facility](pool, "facilities", facilityColumns...),
	}
}

// ListByProperty returns all facility records of a property.
func (r *FacilitiesRepository) ListByProperty(ctx context.Context, propertyID int64) ([]model.Facility, error) {
	return r.List(ctx, 0, MaxListLimit, map[string]any{"property_id": propertyID})
}

// PhotosRepository persists property photo metadata.
type PhotosRepository struct {
	*Repository[model.PropertyPhoto]
}

func NewPhotosRepository(pool *pgxpool.Pool) *PhotosRepository {
	return &PhotosRepository{
		Repository: NewRepository[model.PropertyPhoto](pool, "property_photos", photoColumns...),
	}
}

// ListByProperty returns all photo records of a property.
func (r *PhotosRepository) ListByProperty(ctx context.Context, propertyID int64) ([]model.PropertyPhoto, error) {
	return r.List(ctx, 0, MaxListLimit, map[string]any{"property_id": propertyID})
}

// LocationsRepository persists the 1:1 address record of a property.
type LocationsRepository struct {
	*Repository[model.Location]
	pool *pgxpool.Pool
}

func NewLocationsRepository(pool *pgxpool.Pool) *LocationsRepository {
	return &LocationsRepository{
		Repository: NewRepository[model.Location](pool, "locations",
			"property_id", "address", "google_map_link", "floor",
			"elderly_friendly", "latitude", "longitude"),
		pool: pool,
	}
}

// GetByProperty fetches the location of a property, (nil, nil) when not
// yet recorded.
func (r *LocationsRepository) GetByProperty(ctx context.Context, propertyID int64) (*model.Location, error) {
	rows, err := r.pool.Query(ctx, "SELECT * FROM locations WHERE property_id = $1", propertyID)
	if err != nil {
		return nil, errors.Wrap(err, "table:locations: get by property")
	}

	location, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByNameLax[model.Location])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "table:locations: get by property scan")
	}
	return &location, nil
}

// Upsert writes the location of a property, replacing the existing row
// if one exists. locations has a unique constraint on property_id, so
// ON CONFLICT keeps this a single statement.
func (r *LocationsRepository) Upsert(ctx context.Context, loc model.Location) (*model.Location, error) {
	query := `
		INSERT INTO locations (
			property_id, address, google_map_link, floor,
			elderly_friendly, latitude, longitude
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (property_id) DO UPDATE SET
			address = excluded.address,
			google_map_link = excluded.google_map_link,
			floor = excluded.floor,
			elderly_friendly = excluded.elderly_friendly,
			latitude = excluded.latitude,
			longitude = excluded.longitude,
			updated_at = now()
		RETURNING *`

	rows, err := r.pool.Query(ctx, query,
		loc.PropertyID, loc.Address, loc.GoogleMapLink, loc.Floor,
		loc.ElderlyFriendly, loc.Latitude, loc.Longitude,
	)
	if err != nil {
		return nil, errors.Wrap(err, "table:locations: upsert")
	}

	stored, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByNameLax[model.Location])
	if err != nil {
		return nil, errors.Wrap(err, "table:locations: upsert scan")
	}
	return &stored, nil
}

// AvailabilityRepository persists bookable date windows.
type AvailabilityRepository struct {
	*Repository[model.Availability]
	pool *pgxpool.Pool
}

func NewAvailabilityRepository(pool *pgxpool.Pool) *AvailabilityRepository {
	return &AvailabilityRepository{
		Repository: NewRepository[model.Availability](pool, "availability", availabilityColumns...),
		pool:       pool,
	}
}

// ListByProperty returns all availability windows of a property ordered
// by start date.
func (r *AvailabilityRepository) ListByProperty(ctx context.Context, propertyID int64) ([]model.Availability, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT * FROM availability WHERE property_id = $1 ORDER BY available_from",
		propertyID,
	)
	if err != nil {
		return nil, errors.Wrap(err, "table:availability: list by property")
	}

	results, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[model.Availability])
	if err != nil {
		return nil, errors.Wrap(err, "table:availability: list by property scan")
	}
	return results, nil
}

// FindWindow returns available windows of a property overlapping
// [from, to].
func (r *AvailabilityRepository) FindWindow(ctx context.Context, propertyID int64, from, to time.Time) ([]model.Availability, error) {
	query := `
		SELECT * FROM availability
		WHERE property_id = $1
		  AND is_available
		  AND available_from <= $3
		  AND available_to >= $2
		ORDER BY available_from`

	rows, err := r.pool.Query(ctx, query, propertyID, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "table:availability: find window")
	}

	results, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[model.Availability])
	if err != nil {
		return nil, errors.Wrap(err, "table:availability: find window scan")
	}
	return results, nil
}
