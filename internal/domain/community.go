package domain

// Discussion is a community thread teaser.
type Discussion struct {
	ID           int    `json:"id" yaml:"id"`
	Title        string `json:"title" yaml:"title"`
	Author       string `json:"author" yaml:"author"`
	Replies      int    `json:"replies" yaml:"replies"`
	LastActivity string `json:"lastActivity" yaml:"lastActivity"`
	Category     string `json:"category" yaml:"category"`
	IsHot        bool   `json:"isHot" yaml:"isHot"`
}

// LeaderboardEntry is a ranked contributor.
type LeaderboardEntry struct {
	Rank    int    `json:"rank" yaml:"rank"`
	Name    string `json:"name" yaml:"name"`
	Points  int64  `json:"points" yaml:"points"`
	Reports int    `json:"reports" yaml:"reports"`
	Level   int    `json:"level" yaml:"level"`
}

// Achievement is a gamification badge.
type Achievement struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Icon        string `json:"icon" yaml:"icon"`
	Unlocked    bool   `json:"unlocked" yaml:"unlocked"`
}

// CitizenStats summarises the signed-in citizen's activity.
type CitizenStats struct {
	Level            int      `json:"level" yaml:"level"`
	Points           int64    `json:"points" yaml:"points"`
	ReportsSubmitted int      `json:"reportsSubmitted" yaml:"reportsSubmitted"`
	IssuesResolved   int      `json:"issuesResolved" yaml:"issuesResolved"`
	Badges           []string `json:"badges" yaml:"badges"`
}

// CommunityStats are the headline figures of the community hub.
type CommunityStats struct {
	ActiveCitizens int64 `json:"activeCitizens" yaml:"activeCitizens"`
	Discussions    int64 `json:"discussions" yaml:"discussions"`
	Champions      int64 `json:"champions" yaml:"champions"`
	TotalPoints    int64 `json:"totalPoints" yaml:"totalPoints"`
}

// MonthlyTrend pairs reported and resolved counts for a month.
type MonthlyTrend struct {
	Month    string `json:"month" yaml:"month"`
	Reported int    `json:"reported" yaml:"reported"`
	Resolved int    `json:"resolved" yaml:"resolved"`
}

// ResponseBucket is a share of issues answered within a timeframe.
type ResponseBucket struct {
	Timeframe  string `json:"timeframe" yaml:"timeframe"`
	Percentage int    `json:"percentage" yaml:"percentage"`
	Color      string `json:"color" yaml:"color"`
}

// AreaStat is a per-area issue summary.
type AreaStat struct {
	Area     string `json:"area"`
	Total    int    `json:"total"`
	Resolved int    `json:"resolved"`
	Rate     Rate   `json:"rate"`
}

// Feature is a landing page selling point.
type Feature struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// DashboardFigures are fixed headline values with no live source yet.
type DashboardFigures struct {
	AvgResponseTime     string `json:"avgResponseTime" yaml:"avgResponseTime"`
	CitizenSatisfaction string `json:"citizenSatisfaction" yaml:"citizenSatisfaction"`
	AvgResolutionTime   string `json:"avgResolutionTime" yaml:"avgResolutionTime"`
}
