package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/nagarseva/internal/config"
	"github.com/spec-kit/nagarseva/internal/domain"
	"github.com/spec-kit/nagarseva/internal/events"
	"github.com/spec-kit/nagarseva/internal/fixtures"
	"github.com/spec-kit/nagarseva/internal/repository"
	apperrors "github.com/spec-kit/nagarseva/pkg/util/errorutil"
)

type fixedScorer int

func (s fixedScorer) Score(domain.Issue) int { return int(s) }

type fixedLocator domain.Location

func (l fixedLocator) Locate() domain.Location { return domain.Location(l) }

type testEnv struct {
	store    *repository.IssueStore
	issues   *IssueService
	notifier *NotificationService
	data     *fixtures.Data
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	data := fixtures.MustDefault()
	store := repository.NewIssueStore(data.Issues)
	dispatcher := events.NewInMemoryDispatcher()
	notifier := NewNotificationService(dispatcher, zap.NewNop(), config.NotificationConfig{FeedSize: 3})
	notifier.RegisterHandlers()

	svc := NewIssueService(IssueDependencies{
		IssueRepo:  store,
		Scorer:     fixedScorer(77),
		Locator:    fixedLocator{Lat: 23.4, Lng: 85.4},
		Dispatcher: dispatcher,
	})
	svc.now = func() time.Time { return time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC) }
	return &testEnv{store: store, issues: svc, notifier: notifier, data: data}
}

func TestReportAddsIssueAtHead(t *testing.T) {
	env := newTestEnv(t)
	before := env.store.Len()

	issue, err := env.issues.Report(context.Background(), ReportInput{
		Title:    "Broken light",
		Category: domain.CategoryStreetLight,
		Priority: domain.IssuePriorityLow,
	})
	if err != nil {
		t.Fatalf("Report() error = %v", err)
	}

	list := env.store.List()
	if len(list) != before+1 {
		t.Fatalf("len = %d, want %d", len(list), before+1)
	}
	if list[0].ID != issue.ID || list[0].Title != "Broken light" {
		t.Fatalf("head = %+v, want new issue", list[0])
	}
	if issue.Status != domain.IssueStatusReported || issue.Votes != 0 {
		t.Fatalf("issue = %+v", issue)
	}
	if issue.AIScore != 77 || issue.Location.Lat != 23.4 {
		t.Fatalf("placeholders not applied: %+v", issue)
	}
	if issue.Address != defaultAddress || issue.ReportedBy != defaultReportedBy {
		t.Fatalf("defaults not applied: %+v", issue)
	}
	if env.notifier.UnreadCount(domain.RoleAdmin) != 1 {
		t.Fatalf("admin feed = %+v", env.notifier.Feed(domain.RoleAdmin))
	}
}

func TestReportDefaultsPriorityAndKeepsLocation(t *testing.T) {
	env := newTestEnv(t)
	loc := &domain.Location{Lat: 1, Lng: 2}

	issue, err := env.issues.Report(context.Background(), ReportInput{
		Title:    "  Overflowing drain ",
		Category: domain.CategoryDrainage,
		Location: loc,
	})
	if err != nil {
		t.Fatalf("Report() error = %v", err)
	}
	if issue.Priority != domain.IssuePriorityMedium {
		t.Fatalf("priority = %q, want medium", issue.Priority)
	}
	if issue.Title != "Overflowing drain" || issue.Location != *loc {
		t.Fatalf("issue = %+v", issue)
	}
}

func TestReportValidation(t *testing.T) {
	cases := []struct {
		name  string
		input ReportInput
		field string
	}{
		{name: "missing title", input: ReportInput{Category: domain.CategoryGarbage}, field: "title"},
		{name: "blank title", input: ReportInput{Title: "   ", Category: domain.CategoryGarbage}, field: "title"},
		{name: "missing category", input: ReportInput{Title: "x"}, field: "category"},
		{name: "unknown category", input: ReportInput{Title: "x", Category: "Graffiti"}, field: "category"},
		{name: "unknown priority", input: ReportInput{Title: "x", Category: domain.CategoryOther, Priority: "urgent"}, field: "priority"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)
			before := env.store.Len()

			_, err := env.issues.Report(context.Background(), tc.input)
			if !errors.Is(err, apperrors.ErrValidation) {
				t.Fatalf("error = %v, want validation", err)
			}
			if _, ok := apperrors.ToDomainError(err).Details[tc.field]; !ok {
				t.Fatalf("details = %v, want %s", apperrors.ToDomainError(err).Details, tc.field)
			}
			if env.store.Len() != before {
				t.Fatalf("store changed on invalid report")
			}
		})
	}
}

func TestUpdateStatusChangesOnlyTarget(t *testing.T) {
	env := newTestEnv(t)
	before := env.store.List()

	updated, err := env.issues.UpdateStatus(context.Background(), "2", domain.IssueStatusResolved)
	if err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	if updated.Status != domain.IssueStatusResolved {
		t.Fatalf("returned status = %q", updated.Status)
	}

	after := env.store.List()
	for i := range after {
		if after[i].ID == "2" {
			if after[i].Status != domain.IssueStatusResolved {
				t.Fatalf("issue 2 status = %q", after[i].Status)
			}
			continue
		}
		if after[i].Status != before[i].Status {
			t.Fatalf("issue %s changed from %q to %q", after[i].ID, before[i].Status, after[i].Status)
		}
	}

	feed := env.notifier.Feed(domain.RoleCitizen)
	if len(feed) != 1 || feed[0].IssueID != "2" || feed[0].Type != events.EventIssueStatusChanged {
		t.Fatalf("citizen feed = %+v", feed)
	}
}

func TestUpdateStatusEventCarriesPreviousStatus(t *testing.T) {
	env := newTestEnv(t)
	dispatcher := events.NewInMemoryDispatcher()
	var mu sync.Mutex
	var changes []events.IssueStatusChangedPayload
	dispatcher.Subscribe(events.EventIssueStatusChanged, func(_ context.Context, e events.Event) error {
		mu.Lock()
		defer mu.Unlock()
		changes = append(changes, e.Payload.(events.IssueStatusChangedPayload))
		return nil
	})
	env.issues.dispatcher = dispatcher

	ctx := context.Background()
	env.issues.UpdateStatus(ctx, "1", domain.IssueStatusInProgress)
	env.issues.UpdateStatus(ctx, "1", domain.IssueStatusResolved)

	if len(changes) != 2 {
		t.Fatalf("published %d changes, want 2", len(changes))
	}
	if changes[0].OldStatus != domain.IssueStatusAcknowledged || changes[0].NewStatus != domain.IssueStatusInProgress {
		t.Fatalf("first change = %+v", changes[0])
	}
	if changes[1].OldStatus != domain.IssueStatusInProgress || changes[1].NewStatus != domain.IssueStatusResolved {
		t.Fatalf("second change = %+v", changes[1])
	}

	changes = nil
	targets := []domain.IssueStatus{domain.IssueStatusReported, domain.IssueStatusAcknowledged, domain.IssueStatusInProgress}
	var wg sync.WaitGroup
	for _, status := range targets {
		wg.Add(1)
		go func(status domain.IssueStatus) {
			defer wg.Done()
			env.issues.UpdateStatus(ctx, "1", status)
		}(status)
	}
	wg.Wait()

	final, err := env.issues.Get(ctx, "1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	// The updates form one chain from resolved to the final status, so every
	// predecessor is seen exactly once.
	want := map[domain.IssueStatus]bool{domain.IssueStatusResolved: true}
	for _, status := range targets {
		want[status] = true
	}
	delete(want, final.Status)
	if len(changes) != len(targets) {
		t.Fatalf("published %d changes, want %d", len(changes), len(targets))
	}
	for _, change := range changes {
		if !want[change.OldStatus] {
			t.Fatalf("old status %q reported twice or never current (changes %+v)", change.OldStatus, changes)
		}
		delete(want, change.OldStatus)
	}
}

func TestUpdateStatusErrors(t *testing.T) {
	env := newTestEnv(t)

	if _, err := env.issues.UpdateStatus(context.Background(), "missing", domain.IssueStatusResolved); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("unknown id error = %v, want not found", err)
	}
	if _, err := env.issues.UpdateStatus(context.Background(), "1", "closed"); !errors.Is(err, apperrors.ErrValidation) {
		t.Fatalf("bad status error = %v, want validation", err)
	}
	if env.notifier.UnreadCount(domain.RoleCitizen) != 0 {
		t.Fatalf("failed updates must not notify")
	}
}

func TestListAppliesFilter(t *testing.T) {
	env := newTestEnv(t)
	all := env.issues.List(context.Background(), repository.IssueFilter{})
	if len(all) != env.store.Len() {
		t.Fatalf("unfiltered len = %d", len(all))
	}
	inactive := env.issues.List(context.Background(), repository.IssueFilter{Status: repository.FilterAll, Search: " "})
	if len(inactive) != len(all) {
		t.Fatalf("inactive filter len = %d, want %d", len(inactive), len(all))
	}
	for _, issue := range env.issues.List(context.Background(), repository.IssueFilter{Priority: "high"}) {
		if issue.Priority != domain.IssuePriorityHigh {
			t.Fatalf("filter leaked %+v", issue)
		}
	}
}

func TestNotificationFeedIsBounded(t *testing.T) {
	env := newTestEnv(t)
	for i := 0; i < 5; i++ {
		if _, err := env.issues.Report(context.Background(), ReportInput{Title: "t", Category: domain.CategoryOther}); err != nil {
			t.Fatalf("Report() error = %v", err)
		}
	}
	if got := env.notifier.UnreadCount(domain.RoleAdmin); got != 3 {
		t.Fatalf("feed size = %d, want 3", got)
	}
}

func TestResolutionRate(t *testing.T) {
	if got := ResolutionRate(nil).String(); got != "N/A" {
		t.Fatalf("empty rate = %q, want N/A", got)
	}
	issues := []domain.Issue{
		{Status: domain.IssueStatusResolved},
		{Status: domain.IssueStatusReported},
		{Status: domain.IssueStatusResolved},
		{Status: domain.IssueStatusInProgress},
	}
	if got := ResolutionRate(issues).String(); got != "50.0%" {
		t.Fatalf("rate = %q, want 50.0%%", got)
	}
}

func TestCategoryBreakdownOrderAndLimit(t *testing.T) {
	var issues []domain.Issue
	add := func(cat domain.IssueCategory, n int) {
		for i := 0; i < n; i++ {
			issues = append(issues, domain.Issue{Category: cat})
		}
	}
	add(domain.CategoryGarbage, 3)
	add(domain.CategoryPothole, 3)
	add(domain.CategoryDrainage, 5)
	add(domain.CategoryOther, 1)

	rows := CategoryBreakdown(issues, 3)
	want := []domain.IssueCategory{domain.CategoryDrainage, domain.CategoryGarbage, domain.CategoryPothole}
	if len(rows) != len(want) {
		t.Fatalf("rows = %+v", rows)
	}
	for i, row := range rows {
		if row.Category != want[i] {
			t.Fatalf("row %d = %q, want %q", i, row.Category, want[i])
		}
	}
	if rows[0].Share.String() != "41.7%" {
		t.Fatalf("share = %s", rows[0].Share)
	}
}

func TestPriorityBreakdownSkipsEmpty(t *testing.T) {
	rows := PriorityBreakdown([]domain.Issue{
		{Priority: domain.IssuePriorityLow},
		{Priority: domain.IssuePriorityLow},
		{Priority: domain.IssuePriorityHigh},
	})
	if len(rows) != 2 || rows[0].Priority != domain.IssuePriorityHigh || rows[1].Count != 2 {
		t.Fatalf("rows = %+v", rows)
	}
}

func TestAnalyticsOverviewAndDashboard(t *testing.T) {
	env := newTestEnv(t)
	analytics := NewAnalyticsService(env.store, env.data, fixtures.NewRandomGenerator(1))

	overview := analytics.Overview(context.Background())
	if overview.TotalIssues != env.store.Len() {
		t.Fatalf("total = %d", overview.TotalIssues)
	}
	if len(overview.Areas) != len(env.data.Areas) {
		t.Fatalf("areas = %+v", overview.Areas)
	}
	if overview.AvgResolutionTime != env.data.Figures.AvgResolutionTime {
		t.Fatalf("avg resolution = %q", overview.AvgResolutionTime)
	}

	dash := analytics.Dashboard(context.Background())
	if dash.Total != dash.Pending+dash.InProgress+dash.Resolved {
		t.Fatalf("dashboard tiles do not add up: %+v", dash)
	}
}

func TestCommunityServiceSuccessRate(t *testing.T) {
	data := &fixtures.Data{Citizen: domain.CitizenStats{ReportsSubmitted: 0}}
	if got := NewCommunityService(data).CitizenSuccessRate().String(); got != "N/A" {
		t.Fatalf("rate = %q", got)
	}
	data.Citizen = domain.CitizenStats{ReportsSubmitted: 4, IssuesResolved: 3}
	if got := NewCommunityService(data).CitizenSuccessRate().String(); got != "75.0%" {
		t.Fatalf("rate = %q", got)
	}
}
