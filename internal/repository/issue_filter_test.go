package repository

import (
	"reflect"
	"testing"

	"github.com/spec-kit/nagarseva/internal/domain"
)

func filterFixture() []domain.Issue {
	mk := func(id, title string, cat domain.IssueCategory, pri domain.IssuePriority, st domain.IssueStatus) domain.Issue {
		issue := sampleIssue(id)
		issue.Title = title
		issue.Category = cat
		issue.Priority = pri
		issue.Status = st
		return issue
	}
	return []domain.Issue{
		mk("1", "Large pothole on MG Road", domain.CategoryPothole, domain.IssuePriorityHigh, domain.IssueStatusAcknowledged),
		mk("2", "Street light not working", domain.CategoryStreetLight, domain.IssuePriorityMedium, domain.IssueStatusInProgress),
		mk("3", "Overflowing garbage bin", domain.CategoryGarbage, domain.IssuePriorityHigh, domain.IssueStatusReported),
		mk("4", "Water logging after rain", domain.CategoryDrainage, domain.IssuePriorityHigh, domain.IssueStatusResolved),
		mk("5", "Broken traffic signal", domain.CategoryTrafficSignal, domain.IssuePriorityMedium, domain.IssueStatusAcknowledged),
	}
}

func ids(issues []domain.Issue) []string {
	out := make([]string, 0, len(issues))
	for _, issue := range issues {
		out = append(out, issue.ID)
	}
	return out
}

func TestIssueFilterApply(t *testing.T) {
	issues := filterFixture()

	tests := []struct {
		name   string
		filter IssueFilter
		want   []string
	}{
		{name: "no predicates", filter: IssueFilter{}, want: []string{"1", "2", "3", "4", "5"}},
		{name: "all values", filter: IssueFilter{Status: "all", Priority: "all", Category: "all"}, want: []string{"1", "2", "3", "4", "5"}},
		{name: "status", filter: IssueFilter{Status: "acknowledged"}, want: []string{"1", "5"}},
		{name: "priority", filter: IssueFilter{Priority: "high"}, want: []string{"1", "3", "4"}},
		{name: "category", filter: IssueFilter{Category: "Drainage"}, want: []string{"4"}},
		{name: "search title case insensitive", filter: IssueFilter{Search: "POTHOLE"}, want: []string{"1"}},
		{name: "search matches category", filter: IssueFilter{Search: "traffic sig"}, want: []string{"5"}},
		{name: "search ignores description", filter: IssueFilter{Search: "description"}, want: []string{}},
		{name: "combined", filter: IssueFilter{Status: "acknowledged", Priority: "high"}, want: []string{"1"}},
		{name: "no match", filter: IssueFilter{Status: "resolved", Priority: "low"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filter.Apply(issues)
			if !reflect.DeepEqual(ids(got), tt.want) {
				t.Fatalf("Apply() = %v, want %v", ids(got), tt.want)
			}
			for _, issue := range got {
				if !tt.filter.Match(issue) {
					t.Fatalf("Apply() returned non-matching issue %s", issue.ID)
				}
			}
		})
	}
}

func TestIssueFilterResultIsSubsetInOrder(t *testing.T) {
	issues := filterFixture()
	filters := []IssueFilter{
		{Status: "reported"},
		{Priority: "medium", Search: "light"},
		{Search: "o"},
	}
	for _, f := range filters {
		got := f.Apply(issues)
		pos := 0
		for _, issue := range got {
			for pos < len(issues) && issues[pos].ID != issue.ID {
				pos++
			}
			if pos == len(issues) {
				t.Fatalf("%+v: issue %s not found in order within full list", f, issue.ID)
			}
		}
	}
}

func TestIssueFilterActive(t *testing.T) {
	if (IssueFilter{Status: "all", Search: "  "}).Active() {
		t.Fatalf("Active() = true for inactive filter")
	}
	if !(IssueFilter{Priority: "low"}).Active() {
		t.Fatalf("Active() = false for priority filter")
	}
}

func TestIssueFilterSearchIgnoresSurroundingSpace(t *testing.T) {
	got := ids(IssueFilter{Search: "  water "}.Apply(filterFixture()))
	if !reflect.DeepEqual(got, []string{"4"}) {
		t.Fatalf("padded search = %v, want [4]", got)
	}
}
