package model

import "time"

// IssueType distinguishes complaints from support tickets. The type
// decides the issue code prefix (CMP / TKT) and whether the issue can
// be escalated.
type IssueType string

const (
	IssueComplaint IssueType = "COMPLAINT"
	IssueSupport   IssueType = "SUPPORT"
)

// ValidIssueType reports whether s is a known issue type.
func ValidIssueType(s string) bool {
	switch IssueType(s) {
	case IssueComplaint, IssueSupport:
		return true
	}
	return false
}

// IssueRecordStatus is the lifecycle state of the record itself;
// deletion is soft and lands on DELETED.
type IssueRecordStatus string

const (
	IssueRecordActive   IssueRecordStatus = "ACTIVE"
	IssueRecordInactive IssueRecordStatus = "INACTIVE"
	IssueRecordDeleted  IssueRecordStatus = "DELETED"
)

// IssueWorkflowStatus tracks the issue through the support workflow.
type IssueWorkflowStatus string

const (
	IssueOpen       IssueWorkflowStatus = "OPEN"
	IssueInProgress IssueWorkflowStatus = "IN_PROGRESS"
	IssueEscalated  IssueWorkflowStatus = "ESCALATED"
	IssueClosed     IssueWorkflowStatus = "CLOSED"
)

// ValidIssueWorkflowStatus reports whether s is a known workflow status.
func ValidIssueWorkflowStatus(s string) bool {
	switch IssueWorkflowStatus(s) {
	case IssueOpen, IssueInProgress, IssueEscalated, IssueClosed:
		return true
	}
	return false
}

// IssuePriority orders the support queue.
type IssuePriority string

const (
	PriorityLow    IssuePriority = "LOW"
	PriorityMedium IssuePriority = "MEDIUM"
	PriorityHigh   IssuePriority = "HIGH"
	PriorityUrgent IssuePriority = "URGENT"
)

// ValidIssuePriority reports whether s is a known priority.
func ValidIssuePriority(s string) bool {
	switch IssuePriority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// IssueActivityType labels entries on an issue's audit trail.
type IssueActivityType string

const (
	ActivityCreated         IssueActivityType = "CREATED"
	ActivityStatusChanged   IssueActivityType = "STATUS_CHANGED"
	ActivityAssigned        IssueActivityType = "ASSIGNED"
	ActivityUpdated         IssueActivityType = "UPDATED"
	ActivityEscalated       IssueActivityType = "ESCALATED"
	ActivityPriorityChanged IssueActivityType = "PRIORITY_CHANGED"
)

// EscalationLevel is how far up the chain a complaint has gone.
type EscalationLevel string

const (
	EscalationLevel1 EscalationLevel = "LEVEL_1"
	EscalationLevel2 EscalationLevel = "LEVEL_2"
	EscalationLevel3 EscalationLevel = "LEVEL_3"
)

// ValidEscalationLevel reports whether s is a known escalation level.
func ValidEscalationLevel(s string) bool {
	switch EscalationLevel(s) {
	case EscalationLevel1, EscalationLevel2, EscalationLevel3:
		return true
	}
	return false
}

// Issue is a complaint or support ticket raised by a user, optionally
// against a property. IssueCode is system-generated and immutable.
type Issue struct {
	ID           int64               `db:"id" json:"id"`
	IssueCode    *string             `db:"issue_code" json:"issue_code"`
	Title        string              `db:"title" json:"title"`
	Type         IssueType           `db:"type" json:"type"`
	CreatedByID  int64               `db:"created_by_id" json:"created_by_id"`
	AssignedToID *int64              `db:"assigned_to_id" json:"assigned_to_id"`
	Status       IssueRecordStatus   `db:"status" json:"status"`
	IssueStatus  IssueWorkflowStatus `db:"issue_status" json:"issue_status"`
	Priority     IssuePriority       `db:"priority" json:"priority"`
	Description  *string             `db:"description" json:"description"`
	PropertyID   *int64              `db:"property_id" json:"property_id"`
	Attachments  []string            `db:"attachments" json:"attachments"`
	CreatedAt    time.Time           `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time           `db:"updated_at" json:"updated_at"`
}

// IssueActivity is one append-only entry on an issue's audit trail.
type IssueActivity struct {
	ID            int64             `db:"id" json:"id"`
	IssueID       int64             `db:"issue_id" json:"issue_id"`
	ActivityType  IssueActivityType `db:"activity_type" json:"activity_type"`
	PerformedByID int64             `db:"performed_by_id" json:"performed_by_id"`
	Description   *string           `db:"description" json:"description"`
	OldValue      *string           `db:"old_value" json:"old_value"`
	NewValue      *string           `db:"new_value" json:"new_value"`
	CreatedAt     time.Time         `db:"created_at" json:"created_at"`
}

// IssueEscalation records a complaint being raised to a higher support
// level, and whether that escalation has since been resolved.
type IssueEscalation struct {
	ID              int64           `db:"id" json:"id"`
	IssueID         int64           `db:"issue_id" json:"issue_id"`
	EscalationLevel EscalationLevel `db:"escalation_level" json:"escalation_level"`
	EscalatedByID   int64           `db:"escalated_by_id" json:"escalated_by_id"`
	EscalatedToID   int64           `db:"escalated_to_id" json:"escalated_to_id"`
	Reason          *string         `db:"reason" json:"reason"`
	Notes           *string         `db:"notes" json:"notes"`
	Resolved        bool            `db:"resolved" json:"resolved"`
	ResolvedAt      *time.Time      `db:"resolved_at" json:"resolved_at"`
	ResolvedByID    *int64          `db:"resolved_by_id" json:"resolved_by_id"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at" json:"updated_at"`
}
