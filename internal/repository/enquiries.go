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

// enquiryColumns is the writable/filterable allowlist for enquiries.
var enquiryColumns = []string{
	"company_name", "host_name", "email", "phone_number",
	"alternate_phone_number", "dob", "gender", "id_card_type",
	"id_card_number", "atp_id", "status", "remarks",
}

// EnquiriesRepository persists prospective-host enquiries.
type EnquiriesRepository struct {
	*Repository[model.Enquiry]
	pool *pgxpool.Pool
}

// NewEnquiriesRepository constructs the enquiries repository.
func NewEnquiriesRepository(pool *pgxpool.Pool) *EnquiriesRepository {
	return &EnquiriesRepository{
		Repository: NewRepository[model.Enquiry](pool, "enquiries", enquiryColumns...),
		pool:       pool,
	}
}

// EnquirySearchFilters are the optional predicates of the admin search.
// Nil and empty-string fields are skipped; set fields are combined with
// OR, so a row matching any one predicate is returned.
type EnquirySearchFilters struct {
	Status       *string
	PhoneNumber  *string
	IDCardNumber *string
	Email        *string
	HostName     *string
	CompanyName  *string
	ATPID        *string
}

// buildEnquirySearchWhere renders the OR-combined predicate clause.
// Returns an empty clause (match everything) when no filter is set.
// An empty-string predicate counts as unset: it carries no search
// intent, and a `contains ""` predicate would match every row.
//
// Identifier-like fields (phone, id card number) use case-sensitive
// contains; name-like fields use ILIKE.
func buildEnquirySearchWhere(f EnquirySearchFilters) (string, []any) {
	var predicates []string
	var args []any

	add := func(template string, value *string) {
		if value == nil || *value == "" {
			return
		}
		args = append(args, *value)
		predicates = append(predicates, fmt.Sprintf(template, len(args)))
	}

	add("status = $%d", f.Status)
	add("phone_number LIKE '%%' || $%d || '%%'", f.PhoneNumber)
	add("id_card_number LIKE '%%' || $%d || '%%'", f.IDCardNumber)
	add("email ILIKE '%%' || $%d || '%%'", f.Email)
	add("host_name ILIKE '%%' || $%d || '%%'", f.HostName)
	add("company_name ILIKE '%%' || $%d || '%%'", f.CompanyName)
	add("atp_id ILIKE '%%' || $%d || '%%'", f.ATPID)

	if len(predicates) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(predicates, " OR "), args
}

// Search runs the OR-combined enquiry search, newest first, and returns
// the matching page plus the total match count.
func (r *EnquiriesRepository) Search(ctx context.Context, f EnquirySearchFilters, skip, limit int) ([]model.Enquiry, int64, error) {
	limit = clampLimit(limit)
	where, args := buildEnquirySearchWhere(f)

	var total int64
	countQuery := "SELECT count(*) FROM enquiries" + where
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, errors.Wrap(err, "table:enquiries: search count")
	}

	query := fmt.Sprintf(
		"SELECT * FROM enquiries%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		where, len(args)+1, len(args)+2,
	)
	args = append(args, limit, skip)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, errors.Wrap(err, "table:enquiries: search")
	}

	results, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[model.Enquiry])
	if err != nil {
		return nil, 0, errors.Wrap(err, "table:enquiries: search scan")
	}
	return results, total, nil
}
