package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/gostays/backend/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

var (
	issueColumns = []string{
		"issue_code", "title", "type", "created_by_id", "assigned_to_id",
		"status", "issue_status", "priority", "description", "property_id",
		"attachments",
	}

	issueActivityColumns = []string{
		"issue_id", "activity_type", "performed_by_id", "description",
		"old_value", "new_value",
	}

	issueEscalationColumns = []string{
		"issue_id", "escalation_level", "escalated_by_id", "escalated_to_id",
		"reason", "notes", "resolved", "resolved_at", "resolved_by_id",
	}
)

// IssuesRepository persists complaints and support tickets.
type IssuesRepository struct {
	*Repository[model.Issue]
	pool *pgxpool.Pool
}

// NewIssuesRepository constructs the issues repository.
func NewIssuesRepository(pool *pgxpool.Pool) *IssuesRepository {
	return &IssuesRepository{
		Repository: NewRepository[model.Issue](pool, "issues", issueColumns...),
		pool:       pool,
	}
}

// issueCodePrefix maps an issue type to its code prefix.
func issueCodePrefix(t model.IssueType) string {
	if t == model.IssueComplaint {
		return "CMP"
	}
	return "TKT"
}

// nextIssueCode derives the next code for a prefix from the codes
// already issued. Numbering starts at 1000; codes that do not parse are
// skipped.
func nextIssueCode(prefix string, existing []string) string {
	maxNum := 999
	for _, code := range existing {
		rest, ok := strings.CutPrefix(code, prefix+"-")
		if !ok {
			continue
		}
		num, err := strconv.Atoi(rest)
		if err != nil {
			continue
		}
		if num > maxNum {
			maxNum = num
		}
	}
	return fmt.Sprintf("%s-%d", prefix, maxNum+1)
}

// NextIssueCode generates the next sequential code for an issue type
// (CMP-1000, CMP-1001, ... for complaints; TKT-… for support).
func (r *IssuesRepository) NextIssueCode(ctx context.Context, issueType model.IssueType) (string, error) {
	prefix := issueCodePrefix(issueType)

	rows, err := r.pool.Query(ctx,
		"SELECT issue_code FROM issues WHERE type = $1 AND issue_code LIKE $2",
		issueType, prefix+"-%",
	)
	if err != nil {
		return "", errors.Wrap(err, "table:issues: next code")
	}

	codes, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return "", errors.Wrap(err, "table:issues: next code scan")
	}
	return nextIssueCode(prefix, codes), nil
}

// IssueActivitiesRepository persists the append-only audit trail of an
// issue. Rows are never updated or deleted individually; they go with
// the issue through the FK cascade.
type IssueActivitiesRepository struct {
	*Repository[model.IssueActivity]
	pool *pgxpool.Pool
}

// NewIssueActivitiesRepository constructs the activities repository.
func NewIssueActivitiesRepository(pool *pgxpool.Pool) *IssueActivitiesRepository {
	return &IssueActivitiesRepository{
		Repository: NewRepository[model.IssueActivity](pool, "issue_activities", issueActivityColumns...),
		pool:       pool,
	}
}

// ListByIssue returns an issue's activities, newest first.
func (r *IssueActivitiesRepository) ListByIssue(ctx context.Context, issueID int64) ([]model.IssueActivity, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT * FROM issue_activities WHERE issue_id = $1 ORDER BY created_at DESC, id DESC",
		issueID,
	)
	if err != nil {
		return nil, errors.Wrap(err, "table:issue_activities: list by issue")
	}

	results, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[model.IssueActivity])
	if err != nil {
		return nil, errors.Wrap(err, "table:issue_activities: list by issue scan")
	}
	return results, nil
}

// IssueEscalationsRepository persists complaint escalations.
type IssueEscalationsRepository struct {
	*Repository[model.IssueEscalation]
	pool *pgxpool.Pool
}

// NewIssueEscalationsRepository constructs the escalations repository.
func NewIssueEscalationsRepository(pool *pgxpool.Pool) *IssueEscalationsRepository {
	return &IssueEscalationsRepository{
		Repository: NewRepository[model.IssueEscalation](pool, "issue_escalations", issueEscalationColumns...),
		pool:       pool,
	}
}

// ListByIssue returns an issue's escalations, newest first.
func (r *IssueEscalationsRepository) ListByIssue(ctx context.Context, issueID int64) ([]model.IssueEscalation, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT * FROM issue_escalations WHERE issue_id = $1 ORDER BY created_at DESC, id DESC",
		issueID,
	)
	if err != nil {
		return nil, errors.Wrap(err, "table:issue_escalations: list by issue")
	}

	results, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[model.IssueEscalation])
	if err != nil {
		return nil, errors.Wrap(err, "table:issue_escalations: list by issue scan")
	}
	return results, nil
}
