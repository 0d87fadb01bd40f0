package events

import (
	"time"

	"github.com/spec-kit/nagarseva/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventIssueReported      EventType = "issue_reported"
	EventIssueStatusChanged EventType = "issue_status_changed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	IssueID   string      `json:"issue_id"`
	Actor     domain.Role `json:"actor,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// IssueReportedPayload payload.
type IssueReportedPayload struct {
	Title      string               `json:"title"`
	Category   domain.IssueCategory `json:"category"`
	Priority   domain.IssuePriority `json:"priority"`
	ReportedBy string               `json:"reported_by"`
	AIScore    int                  `json:"ai_score"`
}

// IssueStatusChangedPayload payload.
type IssueStatusChangedPayload struct {
	Title     string             `json:"title"`
	OldStatus domain.IssueStatus `json:"old_status"`
	NewStatus domain.IssueStatus `json:"new_status"`
}
