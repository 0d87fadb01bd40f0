package repository

import (
	"sync"

	"github.com/spec-kit/nagarseva/internal/domain"
)

// IssueRepository is the issue list shared by every view.
type IssueRepository interface {
	List() []domain.Issue
	Add(issue domain.Issue)
	UpdateStatus(id string, status domain.IssueStatus) (domain.Issue, bool)
}

// IssueStore keeps issues in memory, newest first.
//
// Every mutation builds a new slice and swaps it in, so a slice returned by List
// is never written to again.
type IssueStore struct {
	mu     sync.RWMutex
	issues []domain.Issue
}

// NewIssueStore returns a store seeded with a copy of seed, keeping its order.
func NewIssueStore(seed []domain.Issue) *IssueStore {
	issues := make([]domain.Issue, len(seed))
	copy(issues, seed)
	return &IssueStore{issues: issues}
}

// List returns the current issues in store order.
func (s *IssueStore) List() []domain.Issue {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Issue, len(s.issues))
	copy(out, s.issues)
	return out
}

// Add prepends issue as given. Contents and id uniqueness are not checked.
func (s *IssueStore) Add(issue domain.Issue) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]domain.Issue, 0, len(s.issues)+1)
	next = append(next, issue)
	next = append(next, s.issues...)
	s.issues = next
}

// UpdateStatus sets the status of the issue whose id matches exactly and
// returns the record as it was before the change. It reports whether an issue
// matched; an unknown id leaves the store untouched.
func (s *IssueStore) UpdateStatus(id string, status domain.IssueStatus) (domain.Issue, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := -1
	for i := range s.issues {
		if s.issues[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.Issue{}, false
	}
	previous := s.issues[idx]
	next := make([]domain.Issue, len(s.issues))
	copy(next, s.issues)
	next[idx].Status = status
	s.issues = next
	return previous, true
}

// Len returns the number of stored issues.
func (s *IssueStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.issues)
}
