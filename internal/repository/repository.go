// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist,
// or update data, abstracting SQL logic away from the service layer.
//
// Most entities are served by the generic Repository type; domain
// repositories wrap it and add entity-specific queries (search, joins,
// upserts) where plain CRUD is not enough.
package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/gostays/backend/internal/errs"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

const (
	// DefaultListLimit applies when a caller passes limit <= 0.
	DefaultListLimit = 100

	// MaxListLimit is the hard ceiling; larger limits are clamped, not
	// rejected.
	MaxListLimit = 1000
)

// Querier is the subset of pgxpool.Pool the generic repository needs.
// *pgxpool.Pool satisfies it; tests substitute a stub.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository provides generic CRUD over a single table. T is the entity
// struct; rows are mapped by column name (RowToStructByNameLax, so
// extra struct fields without matching columns are tolerated).
//
// The columns allowlist covers the writable/filterable columns of the
// table — everything except id, created_at and updated_at, which the
// repository manages itself. Keys outside the allowlist are rejected
// with an invalid-argument error before any SQL runs; column names
// never come from user input unvalidated.
type Repository[T any] struct {
	db      Querier
	table   string
	columns map[string]struct{}
}

// NewRepository constructs a generic repository for table with the
// given writable/filterable column allowlist.
func NewRepository[T any](db Querier, table string, columns ...string) *Repository[T] {
	allowed := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		allowed[c] = struct{}{}
	}
	return &Repository[T]{
		db:      db,
		table:   table,
		columns: allowed,
	}
}

// Table returns the table name the repository operates on.
func (r *Repository[T]) Table() string {
	return r.table
}

// Create inserts a row with the provided columns and returns the stored
// entity, defaults applied. Constraint violations surface as raw pg
// errors for the global handler to translate.
func (r *Repository[T]) Create(ctx context.Context, values map[string]any) (*T, error) {
	cols, args, err := r.splitValues(values)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING *",
		r.table, strings.Join(cols, ", "), placeholders(1, len(cols)),
	)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "table:%s: insert", r.table)
	}

	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByNameLax[T])
	if err != nil {
		return nil, errors.Wrapf(err, "table:%s: insert scan", r.table)
	}
	return &row, nil
}

// Get fetches a row by id. Absence is not an error: returns (nil, nil)
// so callers can distinguish "not there" from "query failed".
func (r *Repository[T]) Get(ctx context.Context, id int64) (*T, error) {
	query := fmt.Sprintf("SELECT * FROM %s WHERE id = $1", r.table)

	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, errors.Wrapf(err, "table:%s: get", r.table)
	}

	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByNameLax[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "table:%s: get scan", r.table)
	}
	return &row, nil
}

// GetOrFail fetches a row by id and converts absence into a 404 with
// the caller-supplied message.
func (r *Repository[T]) GetOrFail(ctx context.Context, id int64, message string) (*T, error) {
	row, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, errs.NewNotFoundError(message, true, nil)
	}
	return row, nil
}

// List returns rows matching the equality filters (AND-combined),
// ordered by id, within the window [skip, skip+limit).
//
// limit <= 0 falls back to DefaultListLimit and anything above
// MaxListLimit is clamped; a negative skip and unknown filter keys are
// contract violations and rejected.
func (r *Repository[T]) List(ctx context.Context, skip, limit int, filters map[string]any) ([]T, error) {
	if skip < 0 {
		return nil, errs.NewInvalidArgumentError("skip must not be negative")
	}
	limit = clampLimit(limit)

	where, args, err := r.buildWhere(filters, 1)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(
		"SELECT * FROM %s%s ORDER BY id LIMIT $%d OFFSET $%d",
		r.table, where, len(args)+1, len(args)+2,
	)
	args = append(args, limit, skip)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "table:%s: list", r.table)
	}

	results, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[T])
	if err != nil {
		return nil, errors.Wrapf(err, "table:%s: list scan", r.table)
	}
	return results, nil
}

// Update sets only the provided columns plus updated_at and returns the
// stored row, or (nil, nil) when no row has that id.
//
// An empty values map is a valid partial update that specifies nothing:
// it is a no-op and returns the stored row unchanged.
func (r *Repository[T]) Update(ctx context.Context, id int64, values map[string]any) (*T, error) {
	if len(values) == 0 {
		return r.Get(ctx, id)
	}

	cols, args, err := r.splitValues(values)
	if err != nil {
		return nil, err
	}

	assignments := make([]string, 0, len(cols)+1)
	for i, col := range cols {
		assignments = append(assignments, fmt.Sprintf("%s = $%d", col, i+1))
	}
	assignments = append(assignments, "updated_at = now()")

	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = $%d RETURNING *",
		r.table, strings.Join(assignments, ", "), len(cols)+1,
	)
	args = append(args, id)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "table:%s: update", r.table)
	}

	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByNameLax[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "table:%s: update scan", r.table)
	}
	return &row, nil
}

// Delete removes a row by id and returns the deleted entity, or
// (nil, nil) when nothing matched. Deleting an absent row is never an
// error.
func (r *Repository[T]) Delete(ctx context.Context, id int64) (*T, error) {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1 RETURNING *", r.table)

	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, errors.Wrapf(err, "table:%s: delete", r.table)
	}

	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByNameLax[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "table:%s: delete scan", r.table)
	}
	return &row, nil
}

// Count returns the number of rows matching the equality filters.
func (r *Repository[T]) Count(ctx context.Context, filters map[string]any) (int64, error) {
	where, args, err := r.buildWhere(filters, 1)
	if err != nil {
		return 0, err
	}

	query := fmt.Sprintf("SELECT count(*) FROM %s%s", r.table, where)

	var total int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, errors.Wrapf(err, "table:%s: count", r.table)
	}
	return total, nil
}

// splitValues validates value keys against the column allowlist and
// returns columns and arguments in deterministic (sorted) order so
// generated SQL is stable.
func (r *Repository[T]) splitValues(values map[string]any) ([]string, []any, error) {
	if len(values) == 0 {
		return nil, nil, errs.NewInvalidArgumentError("no values provided")
	}

	cols := make([]string, 0, len(values))
	for col := range values {
		if _, ok := r.columns[col]; !ok {
			return nil, nil, errs.NewInvalidArgumentError(fmt.Sprintf("unknown column %q for table %s", col, r.table))
		}
		cols = append(cols, col)
	}
	sort.Strings(cols)

	args := make([]any, 0, len(cols))
	for _, col := range cols {
		args = append(args, values[col])
	}
	return cols, args, nil
}

// buildWhere renders AND-combined equality predicates starting at
// placeholder $start. Returns an empty clause for empty filters.
func (r *Repository[T]) buildWhere(filters map[string]any, start int) (string, []any, error) {
	if len(filters) == 0 {
		return "", nil, nil
	}

	cols := make([]string, 0, len(filters))
	for col := range filters {
		if _, ok := r.columns[col]; !ok {
			return "", nil, errs.NewInvalidArgumentError(fmt.Sprintf("unknown filter %q for table %s", col, r.table))
		}
		cols = append(cols, col)
	}
	sort.Strings(cols)

	predicates := make([]string, 0, len(cols))
	args := make([]any, 0, len(cols))
	for i, col := range cols {
		predicates = append(predicates, fmt.Sprintf("%s = $%d", col, start+i))
		args = append(args, filters[col])
	}
	return " WHERE " + strings.Join(predicates, " AND "), args, nil
}

// clampLimit applies the default and ceiling to a requested page size.
func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

// placeholders renders "$start, $start+1, ..." for n arguments.
func placeholders(start, n int) string {
	parts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		parts = append(parts, fmt.Sprintf("$%d", start+i))
	}
	return strings.Join(parts, ", ")
}
