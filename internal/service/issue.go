package service

import (
	"context"
	"fmt"

	"github.com/gostays/backend/internal/errs"
	"github.com/gostays/backend/internal/model"
	"github.com/gostays/backend/internal/repository"
	"github.com/gostays/backend/internal/server"
)

// IssueService owns complaints and support tickets: intake with
// generated codes, the support workflow, and the audit trail.
type IssueService struct {
	server *server.Server
	repos  *repository.Repositories
}

// NewIssueService constructs the issue service.
func NewIssueService(s *server.Server, repos *repository.Repositories) *IssueService {
	return &IssueService{
		server: s,
		repos:  repos,
	}
}

// logActivity appends an audit entry. Best-effort: the issue change has
// already committed, so a failed audit insert is logged, not returned.
func (s *IssueService) logActivity(ctx context.Context, issueID int64, activityType model.IssueActivityType, performedByID int64, description string, oldValue, newValue *string) {
	values := map[string]any{
		"issue_id":        issueID,
		"activity_type":   activityType,
		"performed_by_id": performedByID,
		"description":     description,
	}
	putOpt(values, "old_value", oldValue)
	putOpt(values, "new_value", newValue)

	if _, err := s.repos.IssueActivities.Create(ctx, values); err != nil {
		s.server.Logger.Error().Err(err).Int64("issue_id", issueID).
			Str("activity_type", string(activityType)).
			Msg("failed to record issue activity")
	}
}

// CreateIssueInput carries the intake fields for a new issue.
type CreateIssueInput struct {
	Title        string
	Type         string
	CreatedByID  int64
	AssignedToID *int64
	Priority     *string
	Description  *string
	PropertyID   *int64
	Attachments  []string
}

// Create stores a new issue with a generated sequential code and logs
// the creation on the audit trail.
func (s *IssueService) Create(ctx context.Context, in CreateIssueInput) (*model.Issue, error) {
	if !model.ValidIssueType(in.Type) {
		return nil, errs.NewInvalidArgumentError("unknown issue type: " + in.Type)
	}
	if in.Priority != nil && !model.ValidIssuePriority(*in.Priority) {
		return nil, errs.NewInvalidArgumentError("unknown issue priority: " + *in.Priority)
	}

	if _, err := s.repos.Users.GetOrFail(ctx, in.CreatedByID, "Reporting user not found"); err != nil {
		return nil, err
	}
	if in.AssignedToID != nil {
		if _, err := s.repos.Users.GetOrFail(ctx, *in.AssignedToID, "Assignee not found"); err != nil {
			return nil, err
		}
	}
	if in.PropertyID != nil {
		if _, err := s.repos.Properties.GetOrFail(ctx, *in.PropertyID, "Property not found"); err != nil {
			return nil, err
		}
	}

	code, err := s.repos.Issues.NextIssueCode(ctx, model.IssueType(in.Type))
	if err != nil {
		return nil, err
	}

	values := map[string]any{
		"issue_code":    code,
		"title":         in.Title,
		"type":          in.Type,
		"created_by_id": in.CreatedByID,
	}
	putOpt(values, "assigned_to_id", in.AssignedToID)
	putOpt(values, "priority", in.Priority)
	putOpt(values, "description", in.Description)
	putOpt(values, "property_id", in.PropertyID)
	if in.Attachments != nil {
		values["attachments"] = in.Attachments
	}

	issue, err := s.repos.Issues.Create(ctx, values)
	if err != nil {
		return nil, err
	}

	status := string(issue.IssueStatus)
	s.logActivity(ctx, issue.ID, model.ActivityCreated, in.CreatedByID,
		fmt.Sprintf("Issue %q created", issue.Title), nil, &status)

	return issue, nil
}

// Get fetches an issue or returns a 404.
func (s *IssueService) Get(ctx context.Context, id int64) (*model.Issue, error) {
	return s.repos.Issues.GetOrFail(ctx, id, "Issue not found")
}

// IssueListFilters are the optional equality filters of the issue list.
type IssueListFilters struct {
	Type         *string
	Status       *string
	IssueStatus  *string
	Priority     *string
	CreatedByID  *int64
	AssignedToID *int64
	PropertyID   *int64
}

// List returns issues within [skip, skip+limit), AND-filtered.
func (s *IssueService) List(ctx context.Context, skip, limit int, f IssueListFilters) ([]model.Issue, error) {
	if f.Type != nil && !model.ValidIssueType(*f.Type) {
		return nil, errs.NewInvalidArgumentError("unknown issue type: " + *f.Type)
	}
	if f.IssueStatus != nil && !model.ValidIssueWorkflowStatus(*f.IssueStatus) {
		return nil, errs.NewInvalidArgumentError("unknown issue status: " + *f.IssueStatus)
	}
	if f.Priority != nil && !model.ValidIssuePriority(*f.Priority) {
		return nil, errs.NewInvalidArgumentError("unknown issue priority: " + *f.Priority)
	}

	filters := map[string]any{}
	putOpt(filters, "type", f.Type)
	putOpt(filters, "status", f.Status)
	putOpt(filters, "issue_status", f.IssueStatus)
	putOpt(filters, "priority", f.Priority)
	putOpt(filters, "created_by_id", f.CreatedByID)
	putOpt(filters, "assigned_to_id", f.AssignedToID)
	putOpt(filters, "property_id", f.PropertyID)

	return s.repos.Issues.List(ctx, skip, limit, filters)
}

// UpdateIssueInput carries the partially updatable fields. The issue
// code is system-generated and immutable; status, priority and
// assignment change through their dedicated operations.
type UpdateIssueInput struct {
	Title       *string
	Description *string
	Attachments []string
}

// Update applies a partial update and logs it.
func (s *IssueService) Update(ctx context.Context, id int64, in UpdateIssueInput, updatedByID int64) (*model.Issue, error) {
	values := map[string]any{}
	putOpt(values, "title", in.Title)
	putOpt(values, "description", in.Description)
	if in.Attachments != nil {
		values["attachments"] = in.Attachments
	}

	issue, err := s.repos.Issues.Update(ctx, id, values)
	if err != nil {
		return nil, err
	}
	if issue == nil {
		return nil, errs.NewNotFoundError("Issue not found", true, nil)
	}

	s.logActivity(ctx, issue.ID, model.ActivityUpdated, updatedByID, "Issue details updated", nil, nil)
	return issue, nil
}

// UpdateStatus moves an issue through the workflow and logs the
// transition with its old and new value.
func (s *IssueService) UpdateStatus(ctx context.Context, id int64, status string, description *string, updatedByID int64) (*model.Issue, error) {
	if !model.ValidIssueWorkflowStatus(status) {
		return nil, errs.NewInvalidArgumentError("unknown issue status: " + status)
	}

	issue, err := s.repos.Issues.GetOrFail(ctx, id, "Issue not found")
	if err != nil {
		return nil, err
	}

	oldStatus := string(issue.IssueStatus)
	updated, err := s.repos.Issues.Update(ctx, id, map[string]any{"issue_status": status})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, errs.NewNotFoundError("Issue not found", true, nil)
	}

	text := fmt.Sprintf("Status changed from %s to %s", oldStatus, status)
	if description != nil && *description != "" {
		text = *description
	}
	s.logActivity(ctx, updated.ID, model.ActivityStatusChanged, updatedByID, text, &oldStatus, &status)

	return updated, nil
}

// Assign sets or clears the assignee and logs the change. A nil
// assignedToID unassigns the issue.
func (s *IssueService) Assign(ctx context.Context, id int64, assignedToID *int64, assignedByID int64) (*model.Issue, error) {
	if assignedToID != nil {
		if _, err := s.repos.Users.GetOrFail(ctx, *assignedToID, "Assignee not found"); err != nil {
			return nil, err
		}
	}

	issue, err := s.repos.Issues.GetOrFail(ctx, id, "Issue not found")
	if err != nil {
		return nil, err
	}

	updated, err := s.repos.Issues.Update(ctx, id, map[string]any{"assigned_to_id": assignedToID})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, errs.NewNotFoundError("Issue not found", true, nil)
	}

	if !int64PtrEqual(issue.AssignedToID, assignedToID) {
		description := "Issue unassigned"
		if assignedToID != nil {
			description = fmt.Sprintf("Issue assigned to user %d", *assignedToID)
		}
		s.logActivity(ctx, updated.ID, model.ActivityAssigned, assignedByID, description,
			int64PtrString(issue.AssignedToID), int64PtrString(assignedToID))
	}

	return updated, nil
}

// UpdatePriority changes the queue priority and logs old and new value.
func (s *IssueService) UpdatePriority(ctx context.Context, id int64, priority string, updatedByID int64) (*model.Issue, error) {
	if !model.ValidIssuePriority(priority) {
		return nil, errs.NewInvalidArgumentError("unknown issue priority: " + priority)
	}

	issue, err := s.repos.Issues.GetOrFail(ctx, id, "Issue not found")
	if err != nil {
		return nil, err
	}

	oldPriority := string(issue.Priority)
	updated, err := s.repos.Issues.Update(ctx, id, map[string]any{"priority": priority})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, errs.NewNotFoundError("Issue not found", true, nil)
	}

	s.logActivity(ctx, updated.ID, model.ActivityPriorityChanged, updatedByID,
		fmt.Sprintf("Priority changed from %s to %s", oldPriority, priority),
		&oldPriority, &priority)

	return updated, nil
}

// Delete soft-deletes an issue by flipping its record status to
// DELETED; the audit trail is kept.
func (s *IssueService) Delete(ctx context.Context, id int64, deletedByID int64) (*model.Issue, error) {
	issue, err := s.repos.Issues.GetOrFail(ctx, id, "Issue not found")
	if err != nil {
		return nil, err
	}

	oldStatus := string(issue.Status)
	updated, err := s.repos.Issues.Update(ctx, id, map[string]any{"status": model.IssueRecordDeleted})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, errs.NewNotFoundError("Issue not found", true, nil)
	}

	newStatus := string(model.IssueRecordDeleted)
	s.logActivity(ctx, updated.ID, model.ActivityStatusChanged, deletedByID, "Issue deleted", &oldStatus, &newStatus)

	return updated, nil
}

// ListActivities returns an issue's audit trail, newest first.
func (s *IssueService) ListActivities(ctx context.Context, issueID int64) ([]model.IssueActivity, error) {
	if _, err := s.repos.Issues.GetOrFail(ctx, issueID, "Issue not found"); err != nil {
		return nil, err
	}
	return s.repos.IssueActivities.ListByIssue(ctx, issueID)
}

// EscalateIssueInput carries the fields of a new escalation.
type EscalateIssueInput struct {
	EscalationLevel string
	EscalatedByID   int64
	EscalatedToID   int64
	Reason          *string
	Notes           *string
}

// Escalate raises a complaint to a higher support level: records the
// escalation, moves the issue to ESCALATED and logs the activity. Only
// complaints can be escalated.
func (s *IssueService) Escalate(ctx context.Context, issueID int64, in EscalateIssueInput) (*model.IssueEscalation, error) {
	if !model.ValidEscalationLevel(in.EscalationLevel) {
		return nil, errs.NewInvalidArgumentError("unknown escalation level: " + in.EscalationLevel)
	}

	issue, err := s.repos.Issues.GetOrFail(ctx, issueID, "Issue not found")
	if err != nil {
		return nil, err
	}
	if issue.Type != model.IssueComplaint {
		return nil, errs.NewBadRequestError("Only COMPLAINT type issues can be escalated", true, nil, nil, nil)
	}

	if _, err := s.repos.Users.GetOrFail(ctx, in.EscalatedByID, "Escalating user not found"); err != nil {
		return nil, err
	}
	if _, err := s.repos.Users.GetOrFail(ctx, in.EscalatedToID, "Escalation target user not found"); err != nil {
		return nil, err
	}

	values := map[string]any{
		"issue_id":         issueID,
		"escalation_level": in.EscalationLevel,
		"escalated_by_id":  in.EscalatedByID,
		"escalated_to_id":  in.EscalatedToID,
	}
	putOpt(values, "reason", in.Reason)
	putOpt(values, "notes", in.Notes)

	escalation, err := s.repos.IssueEscalations.Create(ctx, values)
	if err != nil {
		return nil, err
	}

	if _, err := s.repos.Issues.Update(ctx, issueID, map[string]any{"issue_status": model.IssueEscalated}); err != nil {
		return nil, err
	}

	newStatus := string(model.IssueEscalated)
	s.logActivity(ctx, issueID, model.ActivityEscalated, in.EscalatedByID,
		fmt.Sprintf("Issue escalated to %s", in.EscalationLevel), nil, &newStatus)

	return escalation, nil
}

// ListEscalations returns an issue's escalations, newest first.
func (s *IssueService) ListEscalations(ctx context.Context, issueID int64) ([]model.IssueEscalation, error) {
	if _, err := s.repos.Issues.GetOrFail(ctx, issueID, "Issue not found"); err != nil {
		return nil, err
	}
	return s.repos.IssueEscalations.ListByIssue(ctx, issueID)
}

// int64PtrEqual compares two optional ids by value.
func int64PtrEqual(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// int64PtrString renders an optional id for the audit trail.
func int64PtrString(v *int64) *string {
	if v == nil {
		return nil
	}
	s := fmt.Sprintf("%d", *v)
	return &s
}
