package views

import (
	"context"

	"github.com/spec-kit/nagarseva/internal/domain"
	"github.com/spec-kit/nagarseva/internal/repository"
)

const myReportsLimit = 5

// ReportForm is the report form's submitted values and their errors.
type ReportForm struct {
	Title       string
	Description string
	Category    string
	Priority    string
	Address     string
	Error       string
	FieldErrors map[string]string
}

// CitizenPage is the citizen portal.
type CitizenPage struct {
	Stats        domain.CitizenStats
	SuccessRate  domain.Rate
	Achievements []domain.Achievement
	Reporting    bool
	Form         ReportForm
	Categories   []domain.IssueCategory
	Priorities   []domain.IssuePriority
	MyReports    []IssueCard
}

// Citizen builds the citizen portal. My Reports shows the newest issues of the
// whole list, since reports are not attributed to a signed in user.
func (b *Builder) Citizen(ctx context.Context, reporting bool, form ReportForm) CitizenPage {
	if form.Priority == "" {
		form.Priority = string(domain.IssuePriorityMedium)
	}
	issues := b.issues.List(ctx, repository.IssueFilter{})
	return CitizenPage{
		Stats:        b.community.CitizenStats(),
		SuccessRate:  b.community.CitizenSuccessRate(),
		Achievements: b.community.Achievements(),
		Reporting:    reporting || form.Error != "",
		Form:         form,
		Categories:   domain.IssueCategories,
		Priorities:   []domain.IssuePriority{domain.IssuePriorityLow, domain.IssuePriorityMedium, domain.IssuePriorityHigh},
		MyReports:    cards(firstN(issues, myReportsLimit), true, false, ""),
	}
}
