package views

import (
	"context"
	"math"

	"github.com/spec-kit/nagarseva/internal/service"
)

// trendScale is the monthly count drawn as a full width bar.
const trendScale = 80

// TrendBar is a monthly trend row with bar widths in percent.
type TrendBar struct {
	Month         string
	Reported      int
	Resolved      int
	ReportedWidth float64
	ResolvedWidth float64
}

// AnalyticsPage is the analytics view.
type AnalyticsPage struct {
	service.Overview
	Trends []TrendBar
}

// Analytics builds the analytics view.
func (b *Builder) Analytics(ctx context.Context) AnalyticsPage {
	overview := b.analytics.Overview(ctx)
	trends := make([]TrendBar, len(overview.MonthlyTrends))
	for i, m := range overview.MonthlyTrends {
		trends[i] = TrendBar{
			Month:         m.Month,
			Reported:      m.Reported,
			Resolved:      m.Resolved,
			ReportedWidth: barWidth(m.Reported),
			ResolvedWidth: barWidth(m.Resolved),
		}
	}
	return AnalyticsPage{Overview: overview, Trends: trends}
}

// barWidth is n relative to trendScale, capped at 100.
func barWidth(n int) float64 {
	return math.Min(float64(n)/trendScale*100, 100)
}
