package views

import (
	"context"

	"github.com/spec-kit/nagarseva/internal/domain"
	"github.com/spec-kit/nagarseva/internal/repository"
	"github.com/spec-kit/nagarseva/internal/service"
)

// AdminFilter is the dashboard's filter bar.
type AdminFilter struct {
	Status   string
	Priority string
	Search   string
}

func (f AdminFilter) query() string {
	return encodeQuery("status", f.Status, "priority", f.Priority, "q", f.Search)
}

// AdminPage is the municipal dashboard.
type AdminPage struct {
	Stats      service.DashboardStats
	Filter     AdminFilter
	Statuses   []domain.IssueStatus
	Priorities []domain.IssuePriority
	Issues     []IssueCard
	Empty      bool
}

// Admin builds the dashboard for filter.
func (b *Builder) Admin(ctx context.Context, filter AdminFilter) AdminPage {
	if filter.Status == "" {
		filter.Status = repository.FilterAll
	}
	if filter.Priority == "" {
		filter.Priority = repository.FilterAll
	}
	issues := b.issues.List(ctx, repository.IssueFilter{
		Status:   filter.Status,
		Priority: filter.Priority,
		Search:   filter.Search,
	})
	return AdminPage{
		Stats:      b.analytics.Dashboard(ctx),
		Filter:     filter,
		Statuses:   domain.IssueStatuses,
		Priorities: domain.IssuePriorities,
		Issues:     cards(issues, false, true, filter.query()),
		Empty:      len(issues) == 0,
	}
}
