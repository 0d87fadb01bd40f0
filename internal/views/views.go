// Package views builds the page model of each top level view. Builders read the
// issue store through the services and never write to it.
package views

import (
	"net/url"

	"github.com/spec-kit/nagarseva/internal/domain"
	"github.com/spec-kit/nagarseva/internal/service"
	"github.com/spec-kit/nagarseva/internal/shell"
)

// Dependencies bundles what the builders read from.
type Dependencies struct {
	Issues        *service.IssueService
	Analytics     *service.AnalyticsService
	Community     *service.CommunityService
	Notifications *service.NotificationService
}

// Builder assembles page models.
type Builder struct {
	issues        *service.IssueService
	analytics     *service.AnalyticsService
	community     *service.CommunityService
	notifications *service.NotificationService
}

// NewBuilder constructs a builder.
func NewBuilder(deps Dependencies) *Builder {
	return &Builder{
		issues:        deps.Issues,
		analytics:     deps.Analytics,
		community:     deps.Community,
		notifications: deps.Notifications,
	}
}

// NavLink is a header navigation entry with its active flag resolved.
type NavLink struct {
	domain.NavItem
	Active bool
}

// Chrome is the header and layout data shared by every page.
type Chrome struct {
	Title      string
	State      shell.State
	ShowHeader bool
	Identity   shell.Identity
	Nav        []NavLink
	Bell       int
}

// Chrome returns the layout data for state.
func (b *Builder) Chrome(state shell.State, title string) Chrome {
	items := shell.NavItems(state.Role)
	nav := make([]NavLink, len(items))
	for i, item := range items {
		nav[i] = NavLink{NavItem: item, Active: item.View == state.View}
	}
	bell := 0
	if b.notifications != nil {
		bell = b.notifications.UnreadCount(state.Role)
	}
	return Chrome{
		Title:      title,
		State:      state,
		ShowHeader: state.ShowsHeader(),
		Identity:   shell.IdentityFor(state.Role),
		Nav:        nav,
		Bell:       bell,
	}
}

// IssueCard is one rendered issue.
type IssueCard struct {
	Issue       domain.Issue
	ShowVoting  bool
	Admin       bool
	Statuses    []domain.IssueStatus
	ReturnQuery string
}

func cards(issues []domain.Issue, showVoting, admin bool, returnQuery string) []IssueCard {
	out := make([]IssueCard, len(issues))
	for i, issue := range issues {
		out[i] = IssueCard{Issue: issue, ShowVoting: showVoting, Admin: admin, ReturnQuery: returnQuery}
		if admin {
			out[i].Statuses = domain.IssueStatuses
		}
	}
	return out
}

func firstN(issues []domain.Issue, n int) []domain.Issue {
	if len(issues) > n {
		return issues[:n]
	}
	return issues
}

// encodeQuery drops empty values so links stay short.
func encodeQuery(pairs ...string) string {
	values := url.Values{}
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] != "" {
			values.Set(pairs[i], pairs[i+1])
		}
	}
	return values.Encode()
}
