package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/nagarseva/internal/domain"
	"github.com/spec-kit/nagarseva/internal/events"
	"github.com/spec-kit/nagarseva/internal/fixtures"
	"github.com/spec-kit/nagarseva/internal/repository"
	apperrors "github.com/spec-kit/nagarseva/pkg/util/errorutil"
)

const (
	defaultAddress    = "Ranchi, Jharkhand"
	defaultReportedBy = "Current User"
)

// IssueService coordinates issue reporting and triage.
type IssueService struct {
	issues     repository.IssueRepository
	scorer     fixtures.Scorer
	locator    fixtures.Locator
	dispatcher events.Dispatcher
	logger     *zap.Logger
	now        func() time.Time
	newID      func() string
}

// IssueDependencies bundles collaborators for the issue service.
type IssueDependencies struct {
	IssueRepo  repository.IssueRepository
	Scorer     fixtures.Scorer
	Locator    fixtures.Locator
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// ReportInput describes a citizen report.
type ReportInput struct {
	Title       string
	Description string
	Category    domain.IssueCategory
	Priority    domain.IssuePriority
	Address     string
	Location    *domain.Location
	ReportedBy  string
}

// NewIssueService constructs the service.
func NewIssueService(deps IssueDependencies) *IssueService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IssueService{
		issues:     deps.IssueRepo,
		scorer:     deps.Scorer,
		locator:    deps.Locator,
		dispatcher: deps.Dispatcher,
		logger:     logger,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// Report validates input, stores a new issue at the head of the list and announces it.
func (s *IssueService) Report(ctx context.Context, input ReportInput) (*domain.Issue, error) {
	title := strings.TrimSpace(input.Title)
	details := map[string]any{}
	if title == "" {
		details["title"] = "required"
	}
	if input.Category == "" {
		details["category"] = "required"
	} else if !input.Category.Valid() {
		details["category"] = "unknown category"
	}
	priority := input.Priority
	if priority == "" {
		priority = domain.IssuePriorityMedium
	} else if !priority.Valid() {
		details["priority"] = "must be low, medium or high"
	}
	if len(details) > 0 {
		return nil, apperrors.NewValidationError("title and category are required", details)
	}

	issue := domain.Issue{
		ID:          s.newID(),
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Category:    input.Category,
		Priority:    priority,
		Status:      domain.IssueStatusReported,
		Address:     strings.TrimSpace(input.Address),
		ReportedAt:  s.now(),
		ReportedBy:  strings.TrimSpace(input.ReportedBy),
	}
	if issue.Address == "" {
		issue.Address = defaultAddress
	}
	if issue.ReportedBy == "" {
		issue.ReportedBy = defaultReportedBy
	}
	if input.Location != nil {
		issue.Location = *input.Location
	} else {
		issue.Location = s.locator.Locate()
	}
	issue.AIScore = s.scorer.Score(issue)

	s.issues.Add(issue)
	s.publishEvent(ctx, events.Event{
		Type:    events.EventIssueReported,
		IssueID: issue.ID,
		Actor:   domain.RoleCitizen,
		Payload: events.IssueReportedPayload{
			Title:      issue.Title,
			Category:   issue.Category,
			Priority:   issue.Priority,
			ReportedBy: issue.ReportedBy,
			AIScore:    issue.AIScore,
		},
	})
	return &issue, nil
}

// UpdateStatus sets any status on the issue, including moving a resolved issue back.
func (s *IssueService) UpdateStatus(ctx context.Context, id string, status domain.IssueStatus) (*domain.Issue, error) {
	if !status.Valid() {
		return nil, apperrors.NewValidationError("invalid status", map[string]any{"status": string(status)})
	}
	previous, ok := s.issues.UpdateStatus(id, status)
	if !ok {
		return nil, apperrors.NewNotFound("issue", map[string]any{"id": id})
	}
	updated := previous
	updated.Status = status

	s.publishEvent(ctx, events.Event{
		Type:    events.EventIssueStatusChanged,
		IssueID: id,
		Actor:   domain.RoleAdmin,
		Payload: events.IssueStatusChangedPayload{
			Title:     updated.Title,
			OldStatus: previous.Status,
			NewStatus: status,
		},
	})
	return &updated, nil
}

// List returns the issues matching filter, newest first.
func (s *IssueService) List(_ context.Context, filter repository.IssueFilter) []domain.Issue {
	issues := s.issues.List()
	if !filter.Active() {
		return issues
	}
	return filter.Apply(issues)
}

// Get returns one issue by id.
func (s *IssueService) Get(_ context.Context, id string) (*domain.Issue, error) {
	for _, issue := range s.issues.List() {
		if issue.ID == id {
			return &issue, nil
		}
	}
	return nil, apperrors.NewNotFound("issue", map[string]any{"id": id})
}

func (s *IssueService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event handler failed", zap.String("event_type", string(event.Type)), zap.Error(err))
	}
}
