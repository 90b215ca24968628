package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/gostays/backend/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

var userColumns = []string{
	"auth_provider", "user_type", "email", "phone_number",
	"password_hash", "full_name", "dob", "profile_image", "status",
}

// UsersRepository persists base account records.
type UsersRepository struct {
	*Repository[model.User]
	pool *pgxpool.Pool
}

// NewUsersRepository constructs the users repository.
func NewUsersRepository(pool *pgxpool.Pool) *UsersRepository {
	return &UsersRepository{
		Repository: NewRepository[model.User](pool, "users", userColumns...),
		pool:       pool,
	}
}

// buildUserSearchWhere renders the OR-combined contains predicates for
// user search (same shape as enquiry search).
func buildUserSearchWhere(term string) (string, []any) {
	if term == "" {
		return "", nil
	}
	predicates := []string{
		"full_name ILIKE '%' || $1 || '%'",
		"email ILIKE '%' || $1 || '%'",
		"phone_number LIKE '%' || $1 || '%'",
	}
	return " WHERE " + strings.Join(predicates, " OR "), []any{term}
}

// Search finds users whose name, email or phone contains term, newest
// first. Empty term matches everything.
func (r *UsersRepository) Search(ctx context.Context, term string, skip, limit int) ([]model.User, int64, error) {
	limit = clampLimit(limit)
	where, args := buildUserSearchWhere(term)

	var total int64
	if err := r.pool.QueryRow(ctx, "SELECT count(*) FROM users"+where, args...).Scan(&total); err != nil {
		return nil, 0, errors.Wrap(err, "table:users: search count")
	}

	query := fmt.Sprintf(
		"SELECT * FROM users%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		where, len(args)+1, len(args)+2,
	)
	args = append(args, limit, skip)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, errors.Wrap(err, "table:users: search")
	}

	results, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[model.User])
	if err != nil {
		return nil, 0, errors.Wrap(err, "table:users: search scan")
	}
	return results, total, nil
}

// GetByEmail fetches a user by exact email, (nil, nil) when absent.
func (r *UsersRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	rows, err := r.pool.Query(ctx, "SELECT * FROM users WHERE email = $1", email)
	if err != nil {
		return nil, errors.Wrap(err, "table:users: get by email")
	}

	user, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByNameLax[model.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "table:users: get by email scan")
	}
	return &user, nil
}

// GetHostProfile composes a user with its property record. Role data is
// never loaded implicitly: this is the one place the join happens, and
// a user without a property yields a profile with a nil Property.
// Returns (nil, nil) when the user itself is absent.
func (r *UsersRepository) GetHostProfile(ctx context.Context, userID int64) (*model.HostProfile, error) {
	user, err := r.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	rows, err := r.pool.Query(ctx, "SELECT * FROM properties WHERE user_id = $1", userID)
	if err != nil {
		return nil, errors.Wrap(err, "table:properties: get by user")
	}

	property, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByNameLax[model.Property])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &model.HostProfile{User: *user}, nil
		}
		return nil, errors.Wrap(err, "table:properties: get by user scan")
	}

	return &model.HostProfile{User: *user, Property: &property}, nil
}
