// Package fixtures holds every piece of fake data the demo shows: the seed issue
// list, community and analytics figures, and the random placeholder generators
// standing in for AI scoring, geolocation and per-area statistics.
package fixtures

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/spec-kit/nagarseva/internal/domain"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

// Data is the decoded fixture file.
type Data struct {
	Issues        []domain.Issue            `yaml:"issues"`
	Citizen       domain.CitizenStats       `yaml:"citizen"`
	Community     domain.CommunityStats     `yaml:"community"`
	Discussions   []domain.Discussion       `yaml:"discussions"`
	Leaderboard   []domain.LeaderboardEntry `yaml:"leaderboard"`
	Achievements  []domain.Achievement      `yaml:"achievements"`
	MonthlyTrends []domain.MonthlyTrend     `yaml:"monthlyTrends"`
	ResponseTimes []domain.ResponseBucket   `yaml:"responseTimes"`
	Areas         []string                  `yaml:"areas"`
	Figures       domain.DashboardFigures   `yaml:"figures"`
	Features      []domain.Feature          `yaml:"features"`
}

// Load reads fixtures from path, or the embedded defaults when path is empty.
func Load(path string) (*Data, error) {
	raw := defaultFixtures
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading fixtures %s: %w", path, err)
		}
		raw = b
	}
	return Parse(raw)
}

// Parse decodes and checks a fixture document.
func Parse(raw []byte) (*Data, error) {
	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decoding fixtures: %w", err)
	}
	if err := data.validate(); err != nil {
		return nil, err
	}
	return &data, nil
}

// MustDefault returns the embedded fixtures and panics if they are broken.
func MustDefault() *Data {
	data, err := Parse(defaultFixtures)
	if err != nil {
		panic(err)
	}
	return data
}

func (d *Data) validate() error {
	seen := make(map[string]struct{}, len(d.Issues))
	for i, issue := range d.Issues {
		if issue.ID == "" {
			return fmt.Errorf("fixture issue %d: missing id", i)
		}
		if _, dup := seen[issue.ID]; dup {
			return fmt.Errorf("fixture issue %q: duplicate id", issue.ID)
		}
		seen[issue.ID] = struct{}{}
		if !issue.Status.Valid() {
			return fmt.Errorf("fixture issue %q: unknown status %q", issue.ID, issue.Status)
		}
		if !issue.Priority.Valid() {
			return fmt.Errorf("fixture issue %q: unknown priority %q", issue.ID, issue.Priority)
		}
		if !issue.Category.Valid() {
			return fmt.Errorf("fixture issue %q: unknown category %q", issue.ID, issue.Category)
		}
	}
	return nil
}
