package service

import (
	"context"
	"sort"

	"github.com/spec-kit/nagarseva/internal/domain"
	"github.com/spec-kit/nagarseva/internal/fixtures"
	"github.com/spec-kit/nagarseva/internal/repository"
)

// topCategories caps the category breakdown.
const topCategories = 6

// CategoryCount is one row of the category breakdown.
type CategoryCount struct {
	Category domain.IssueCategory `json:"category"`
	Count    int                  `json:"count"`
	Share    domain.Rate          `json:"share"`
}

// PriorityCount is one row of the priority breakdown.
type PriorityCount struct {
	Priority domain.IssuePriority `json:"priority"`
	Count    int                  `json:"count"`
}

// DashboardStats are the admin dashboard tiles.
type DashboardStats struct {
	Total               int    `json:"total"`
	Pending             int    `json:"pending"`
	InProgress          int    `json:"inProgress"`
	Resolved            int    `json:"resolved"`
	AvgResponseTime     string `json:"avgResponseTime"`
	CitizenSatisfaction string `json:"citizenSatisfaction"`
}

// Overview is the analytics page payload. Live figures come from the store; the
// rest are fixtures.
type Overview struct {
	TotalIssues       int                     `json:"totalIssues"`
	ResolvedIssues    int                     `json:"resolvedIssues"`
	ResolutionRate    domain.Rate             `json:"resolutionRate"`
	AvgResolutionTime string                  `json:"avgResolutionTime"`
	ActiveCitizens    int64                   `json:"activeCitizens"`
	Categories        []CategoryCount         `json:"categories"`
	Priorities        []PriorityCount         `json:"priorities"`
	MonthlyTrends     []domain.MonthlyTrend   `json:"monthlyTrends"`
	Areas             []domain.AreaStat       `json:"areas"`
	ResponseTimes     []domain.ResponseBucket `json:"responseTimes"`
}

// AnalyticsService derives statistics from the live issue list.
type AnalyticsService struct {
	issues repository.IssueRepository
	data   *fixtures.Data
	areas  fixtures.AreaStatsSource
}

// NewAnalyticsService constructs the service.
func NewAnalyticsService(issues repository.IssueRepository, data *fixtures.Data, areas fixtures.AreaStatsSource) *AnalyticsService {
	return &AnalyticsService{issues: issues, data: data, areas: areas}
}

// Overview assembles the analytics page.
func (s *AnalyticsService) Overview(_ context.Context) Overview {
	issues := s.issues.List()
	resolved := countStatus(issues, domain.IssueStatusResolved)
	return Overview{
		TotalIssues:       len(issues),
		ResolvedIssues:    resolved,
		ResolutionRate:    ResolutionRate(issues),
		AvgResolutionTime: s.data.Figures.AvgResolutionTime,
		ActiveCitizens:    s.data.Community.ActiveCitizens,
		Categories:        CategoryBreakdown(issues, topCategories),
		Priorities:        PriorityBreakdown(issues),
		MonthlyTrends:     s.data.MonthlyTrends,
		Areas:             s.areas.AreaStats(s.data.Areas),
		ResponseTimes:     s.data.ResponseTimes,
	}
}

// Dashboard returns the admin tiles. Pending counts reported and acknowledged issues.
func (s *AnalyticsService) Dashboard(_ context.Context) DashboardStats {
	issues := s.issues.List()
	return DashboardStats{
		Total:               len(issues),
		Pending:             countStatus(issues, domain.IssueStatusReported) + countStatus(issues, domain.IssueStatusAcknowledged),
		InProgress:          countStatus(issues, domain.IssueStatusInProgress),
		Resolved:            countStatus(issues, domain.IssueStatusResolved),
		AvgResponseTime:     s.data.Figures.AvgResponseTime,
		CitizenSatisfaction: s.data.Figures.CitizenSatisfaction,
	}
}

// ResolutionRate is resolved/total; it is undefined for an empty list.
func ResolutionRate(issues []domain.Issue) domain.Rate {
	return domain.NewRate(countStatus(issues, domain.IssueStatusResolved), len(issues))
}

// CategoryBreakdown counts issues per category, largest first (ties by name), keeping at most limit rows.
func CategoryBreakdown(issues []domain.Issue, limit int) []CategoryCount {
	counts := map[domain.IssueCategory]int{}
	for _, issue := range issues {
		counts[issue.Category]++
	}
	rows := make([]CategoryCount, 0, len(counts))
	for cat, n := range counts {
		rows = append(rows, CategoryCount{Category: cat, Count: n, Share: domain.NewRate(n, len(issues))})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Category < rows[j].Category
	})
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

// PriorityBreakdown counts issues per priority in high, medium, low order, skipping empty ones.
func PriorityBreakdown(issues []domain.Issue) []PriorityCount {
	counts := map[domain.IssuePriority]int{}
	for _, issue := range issues {
		counts[issue.Priority]++
	}
	rows := make([]PriorityCount, 0, len(domain.IssuePriorities))
	for _, p := range domain.IssuePriorities {
		if counts[p] > 0 {
			rows = append(rows, PriorityCount{Priority: p, Count: counts[p]})
		}
	}
	return rows
}

func countStatus(issues []domain.Issue, status domain.IssueStatus) int {
	n := 0
	for _, issue := range issues {
		if issue.Status == status {
			n++
		}
	}
	return n
}
