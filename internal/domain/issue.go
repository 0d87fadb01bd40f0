package domain

import "time"

// IssueStatus enumerates lifecycle labels for issues. No transition order is enforced.
type IssueStatus string

const (
	IssueStatusReported     IssueStatus = "reported"
	IssueStatusAcknowledged IssueStatus = "acknowledged"
	IssueStatusInProgress   IssueStatus = "in-progress"
	IssueStatusResolved     IssueStatus = "resolved"
)

// IssueStatuses lists every status in display order.
var IssueStatuses = []IssueStatus{
	IssueStatusReported,
	IssueStatusAcknowledged,
	IssueStatusInProgress,
	IssueStatusResolved,
}

// Valid reports whether s is one of the enumerated statuses.
func (s IssueStatus) Valid() bool {
	for _, known := range IssueStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Label returns the human readable status, e.g. "In Progress".
func (s IssueStatus) Label() string {
	switch s {
	case IssueStatusReported:
		return "Reported"
	case IssueStatusAcknowledged:
		return "Acknowledged"
	case IssueStatusInProgress:
		return "In Progress"
	case IssueStatusResolved:
		return "Resolved"
	}
	return string(s)
}

// IssuePriority enumerates urgency.
type IssuePriority string

const (
	IssuePriorityLow    IssuePriority = "low"
	IssuePriorityMedium IssuePriority = "medium"
	IssuePriorityHigh   IssuePriority = "high"
)

// IssuePriorities lists priorities from most to least urgent.
var IssuePriorities = []IssuePriority{
	IssuePriorityHigh,
	IssuePriorityMedium,
	IssuePriorityLow,
}

// Valid reports whether p is one of the enumerated priorities.
func (p IssuePriority) Valid() bool {
	switch p {
	case IssuePriorityLow, IssuePriorityMedium, IssuePriorityHigh:
		return true
	}
	return false
}

// IssueCategory is the fixed set of reportable problem kinds.
type IssueCategory string

const (
	CategoryPothole       IssueCategory = "Pothole"
	CategoryStreetLight   IssueCategory = "Street Light"
	CategoryGarbage       IssueCategory = "Garbage"
	CategoryWaterSupply   IssueCategory = "Water Supply"
	CategoryDrainage      IssueCategory = "Drainage"
	CategoryTrafficSignal IssueCategory = "Traffic Signal"
	CategoryRoadDamage    IssueCategory = "Road Damage"
	CategoryOther         IssueCategory = "Other"
)

// IssueCategories lists categories in form order.
var IssueCategories = []IssueCategory{
	CategoryPothole,
	CategoryStreetLight,
	CategoryGarbage,
	CategoryWaterSupply,
	CategoryDrainage,
	CategoryTrafficSignal,
	CategoryRoadDamage,
	CategoryOther,
}

// Valid reports whether c is one of the enumerated categories.
func (c IssueCategory) Valid() bool {
	for _, known := range IssueCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Location is a latitude/longitude pair. It is only displayed.
type Location struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// Issue is a single citizen-submitted civic problem report.
type Issue struct {
	ID          string        `json:"id" yaml:"id"`
	Title       string        `json:"title" yaml:"title"`
	Description string        `json:"description" yaml:"description"`
	Category    IssueCategory `json:"category" yaml:"category"`
	Priority    IssuePriority `json:"priority" yaml:"priority"`
	Status      IssueStatus   `json:"status" yaml:"status"`
	Location    Location      `json:"location" yaml:"location"`
	Address     string        `json:"address" yaml:"address"`
	ReportedAt  time.Time     `json:"reportedAt" yaml:"reportedAt"`
	ReportedBy  string        `json:"reportedBy" yaml:"reportedBy"`
	Votes       int           `json:"votes" yaml:"votes"`
	AIScore     int           `json:"aiScore" yaml:"aiScore"`
}
