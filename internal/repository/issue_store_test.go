package repository

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/spec-kit/nagarseva/internal/domain"
)

func sampleIssue(id string) domain.Issue {
	return domain.Issue{
		ID:          id,
		Title:       "Issue " + id,
		Description: "description " + id,
		Category:    domain.CategoryPothole,
		Priority:    domain.IssuePriorityMedium,
		Status:      domain.IssueStatusReported,
		Location:    domain.Location{Lat: 23.34, Lng: 85.30},
		Address:     "Main Road",
		ReportedAt:  time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		ReportedBy:  "tester",
		AIScore:     70,
	}
}

func seedIssues() []domain.Issue {
	issues := make([]domain.Issue, 0, 5)
	for i := 1; i <= 5; i++ {
		issues = append(issues, sampleIssue(fmt.Sprint(i)))
	}
	return issues
}

func TestIssueStoreAddPrependsInReverseInsertionOrder(t *testing.T) {
	store := NewIssueStore(nil)

	for i := 0; i < 10; i++ {
		store.Add(sampleIssue(fmt.Sprintf("n%d", i)))

		got := store.List()
		if len(got) != i+1 {
			t.Fatalf("List() len = %d after %d adds", len(got), i+1)
		}
		if got[0].ID != fmt.Sprintf("n%d", i) {
			t.Fatalf("List()[0].ID = %q, want most recent n%d", got[0].ID, i)
		}
	}

	got := store.List()
	for i, issue := range got {
		want := fmt.Sprintf("n%d", 9-i)
		if issue.ID != want {
			t.Fatalf("List()[%d].ID = %q, want %q", i, issue.ID, want)
		}
	}
}

func TestIssueStoreAddDoesNotValidate(t *testing.T) {
	store := NewIssueStore(seedIssues())

	store.Add(domain.Issue{ID: "1", Status: "bogus"})

	got := store.List()
	if len(got) != 6 {
		t.Fatalf("List() len = %d, want 6", len(got))
	}
	if got[0].Status != "bogus" || got[0].ID != "1" {
		t.Fatalf("List()[0] = %+v, want stored as given", got[0])
	}
}

func TestIssueStoreUpdateStatusChangesOnlyStatus(t *testing.T) {
	store := NewIssueStore(seedIssues())
	before := store.List()

	previous, ok := store.UpdateStatus("2", domain.IssueStatusResolved)
	if !ok {
		t.Fatalf("UpdateStatus(2) reported no match")
	}
	if previous.ID != "2" || previous.Status == domain.IssueStatusResolved {
		t.Fatalf("previous = %+v, want issue 2 before the change", previous)
	}

	after := store.List()
	for i := range before {
		want := before[i]
		if want.ID == "2" {
			want.Status = domain.IssueStatusResolved
		}
		if !reflect.DeepEqual(after[i], want) {
			t.Fatalf("issue %s = %+v, want %+v", before[i].ID, after[i], want)
		}
	}
}

func TestIssueStoreUpdateStatusAllowsAnyTransition(t *testing.T) {
	store := NewIssueStore(seedIssues())

	store.UpdateStatus("1", domain.IssueStatusResolved)
	previous, _ := store.UpdateStatus("1", domain.IssueStatusReported)

	if previous.Status != domain.IssueStatusResolved {
		t.Fatalf("previous status = %q, want resolved", previous.Status)
	}
	if got := store.List()[0].Status; got != domain.IssueStatusReported {
		t.Fatalf("status = %q, want reported after reopening", got)
	}
}

func TestIssueStoreUpdateStatusUnknownIDIsNoop(t *testing.T) {
	store := NewIssueStore(seedIssues())
	before := store.List()

	if _, ok := store.UpdateStatus("missing", domain.IssueStatusResolved); ok {
		t.Fatalf("UpdateStatus(missing) reported a match")
	}
	if !reflect.DeepEqual(store.List(), before) {
		t.Fatalf("List() changed after unknown id update")
	}
}

func TestIssueStoreListReturnsSnapshot(t *testing.T) {
	store := NewIssueStore(seedIssues())

	snapshot := store.List()
	snapshot[0].Title = "mutated"
	store.UpdateStatus("1", domain.IssueStatusResolved)

	if store.List()[0].Title == "mutated" {
		t.Fatalf("caller mutation leaked into store")
	}
	if snapshot[0].Status != domain.IssueStatusReported {
		t.Fatalf("store update leaked into earlier snapshot")
	}
}

func TestIssueStoreSeedIsCopied(t *testing.T) {
	seed := seedIssues()
	store := NewIssueStore(seed)
	seed[0].Title = "changed"

	if store.List()[0].Title == "changed" {
		t.Fatalf("seed slice aliases store state")
	}
	if store.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", store.Len())
	}
}
