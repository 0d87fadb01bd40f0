package dto

import (
	"time"

	"github.com/spec-kit/nagarseva/internal/domain"
)

// CreateIssueRequest payload.
type CreateIssueRequest struct {
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Category    domain.IssueCategory `json:"category"`
	Priority    domain.IssuePriority `json:"priority"`
	Address     string               `json:"address"`
	Location    *domain.Location     `json:"location"`
	ReportedBy  string               `json:"reportedBy"`
}

// UpdateIssueStatusRequest payload.
type UpdateIssueStatusRequest struct {
	Status domain.IssueStatus `json:"status"`
}

// IssueListQuery captures the shared filter from the query string.
type IssueListQuery struct {
	Status   string `query:"status"`
	Priority string `query:"priority"`
	Category string `query:"category"`
	Search   string `query:"q"`
}

// IssueResponse is the wire form of an issue.
type IssueResponse struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Category    domain.IssueCategory `json:"category"`
	Priority    domain.IssuePriority `json:"priority"`
	Status      domain.IssueStatus   `json:"status"`
	Location    domain.Location      `json:"location"`
	Address     string               `json:"address"`
	ReportedAt  time.Time            `json:"reportedAt"`
	ReportedBy  string               `json:"reportedBy"`
	Votes       int                  `json:"votes"`
	AIScore     int                  `json:"aiScore"`
}

// NewIssueResponse maps a domain issue.
func NewIssueResponse(issue *domain.Issue) IssueResponse {
	return IssueResponse{
		ID:          issue.ID,
		Title:       issue.Title,
		Description: issue.Description,
		Category:    issue.Category,
		Priority:    issue.Priority,
		Status:      issue.Status,
		Location:    issue.Location,
		Address:     issue.Address,
		ReportedAt:  issue.ReportedAt,
		ReportedBy:  issue.ReportedBy,
		Votes:       issue.Votes,
		AIScore:     issue.AIScore,
	}
}
