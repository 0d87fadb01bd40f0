package repository

import (
	"strings"

	"github.com/spec-kit/nagarseva/internal/domain"
)

// FilterAll is the select value meaning "no predicate".
const FilterAll = "all"

// IssueFilter is the predicate set shared by every view. Empty or "all" fields are inactive.
type IssueFilter struct {
	Status   string
	Priority string
	Category string
	// Search is trimmed, then matched case-insensitively against title and category.
	Search string
}

// Active reports whether any predicate is set.
func (f IssueFilter) Active() bool {
	return active(f.Status) || active(f.Priority) || active(f.Category) || strings.TrimSpace(f.Search) != ""
}

// Match reports whether issue satisfies every active predicate.
func (f IssueFilter) Match(issue domain.Issue) bool {
	if active(f.Status) && string(issue.Status) != f.Status {
		return false
	}
	if active(f.Priority) && string(issue.Priority) != f.Priority {
		return false
	}
	if active(f.Category) && string(issue.Category) != f.Category {
		return false
	}
	term := strings.ToLower(strings.TrimSpace(f.Search))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(issue.Title), term) ||
		strings.Contains(strings.ToLower(string(issue.Category)), term)
}

// Apply returns the issues matching f in their original order.
func (f IssueFilter) Apply(issues []domain.Issue) []domain.Issue {
	out := make([]domain.Issue, 0, len(issues))
	for _, issue := range issues {
		if f.Match(issue) {
			out = append(out, issue)
		}
	}
	return out
}

func active(v string) bool {
	return v != "" && v != FilterAll
}
