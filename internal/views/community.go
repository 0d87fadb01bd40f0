package views

import "github.com/spec-kit/nagarseva/internal/domain"

// Community hub tabs.
const (
	TabDiscussions  = "discussions"
	TabLeaderboard  = "leaderboard"
	TabAchievements = "achievements"
)

var communityTabs = []TabLink{
	{ID: TabDiscussions, Label: "Discussions"},
	{ID: TabLeaderboard, Label: "Leaderboard"},
	{ID: TabAchievements, Label: "Achievements"},
}

// TabLink is a community hub tab.
type TabLink struct {
	ID     string
	Label  string
	Active bool
}

// LeaderRow is a leaderboard entry; the top three are highlighted.
type LeaderRow struct {
	domain.LeaderboardEntry
	Highlight bool
}

// CommunityPage is the community hub.
type CommunityPage struct {
	Stats        domain.CommunityStats
	Tab          string
	Tabs         []TabLink
	Discussions  []domain.Discussion
	Leaderboard  []LeaderRow
	Achievements []domain.Achievement
}

// Community builds the hub with tab selected. Unknown tabs show discussions.
func (b *Builder) Community(tab string) CommunityPage {
	switch tab {
	case TabDiscussions, TabLeaderboard, TabAchievements:
	default:
		tab = TabDiscussions
	}

	tabs := make([]TabLink, len(communityTabs))
	for i, t := range communityTabs {
		t.Active = t.ID == tab
		tabs[i] = t
	}
	entries := b.community.Leaderboard()
	rows := make([]LeaderRow, len(entries))
	for i, entry := range entries {
		rows[i] = LeaderRow{LeaderboardEntry: entry, Highlight: entry.Rank <= 3}
	}

	return CommunityPage{
		Stats:        b.community.Stats(),
		Tab:          tab,
		Tabs:         tabs,
		Discussions:  b.community.Discussions(),
		Leaderboard:  rows,
		Achievements: b.community.Achievements(),
	}
}
