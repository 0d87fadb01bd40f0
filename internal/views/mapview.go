package views

import (
	"context"

	"github.com/spec-kit/nagarseva/internal/domain"
	"github.com/spec-kit/nagarseva/internal/repository"
)

const mapListLimit = 10

// MapCategories are the map's category filter options.
var MapCategories = []string{
	repository.FilterAll,
	string(domain.CategoryPothole),
	string(domain.CategoryStreetLight),
	string(domain.CategoryGarbage),
	string(domain.CategoryWaterSupply),
	string(domain.CategoryDrainage),
}

// StatusColors are the marker colours per status.
var StatusColors = map[domain.IssueStatus]string{
	domain.IssueStatusReported:     "#3B82F6",
	domain.IssueStatusAcknowledged: "#F59E0B",
	domain.IssueStatusInProgress:   "#8B5CF6",
	domain.IssueStatusResolved:     "#10B981",
}

// LegendEntry is one line of the map legend.
type LegendEntry struct {
	Status domain.IssueStatus
	Color  string
}

// MapMarker is a listed issue with its colour.
type MapMarker struct {
	Issue domain.Issue
	Color string
}

// MapPage is the live map view.
type MapPage struct {
	Categories []string
	Selected   string
	Heatmap    bool
	// HeatmapToggle is the query string that flips the heat map.
	HeatmapToggle string
	Count         int
	Markers       []MapMarker
	Legend        []LegendEntry
}

// Map builds the map view for category and heat map state.
func (b *Builder) Map(ctx context.Context, category string, heatmap bool) MapPage {
	if category == "" {
		category = repository.FilterAll
	}
	issues := b.issues.List(ctx, repository.IssueFilter{Category: category})

	markers := make([]MapMarker, 0, mapListLimit)
	for _, issue := range firstN(issues, mapListLimit) {
		markers = append(markers, MapMarker{Issue: issue, Color: StatusColors[issue.Status]})
	}
	legend := make([]LegendEntry, 0, len(domain.IssueStatuses))
	for _, status := range domain.IssueStatuses {
		legend = append(legend, LegendEntry{Status: status, Color: StatusColors[status]})
	}

	toggle := "0"
	if !heatmap {
		toggle = "1"
	}
	return MapPage{
		Categories:    MapCategories,
		Selected:      category,
		Heatmap:       heatmap,
		HeatmapToggle: encodeQuery("category", category, "heatmap", toggle),
		Count:         len(issues),
		Markers:       markers,
		Legend:        legend,
	}
}
