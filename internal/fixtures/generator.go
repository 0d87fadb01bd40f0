package fixtures

import (
	"math/rand"
	"sync"

	"github.com/spec-kit/nagarseva/internal/domain"
)

// DefaultLocation is the city centre new reports are scattered around.
var DefaultLocation = domain.Location{Lat: 23.3441, Lng: 85.3096}

// Scorer assigns the cosmetic AI score of a new issue.
type Scorer interface {
	Score(issue domain.Issue) int
}

// Locator places a report that arrived without coordinates.
type Locator interface {
	Locate() domain.Location
}

// AreaStatsSource produces the geographic distribution panel.
type AreaStatsSource interface {
	AreaStats(areas []string) []domain.AreaStat
}

// RandomGenerator implements every placeholder with a seeded pseudo-random source.
type RandomGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomGenerator returns a generator; equal seeds produce equal sequences.
func NewRandomGenerator(seed int64) *RandomGenerator {
	return &RandomGenerator{rng: rand.New(rand.NewSource(seed))}
}

// Score returns a value in [60, 99]. The issue content is ignored.
func (g *RandomGenerator) Score(domain.Issue) int {
	return 60 + g.intn(40)
}

// Locate jitters DefaultLocation by up to 0.1 degrees north and east.
func (g *RandomGenerator) Locate() domain.Location {
	g.mu.Lock()
	defer g.mu.Unlock()
	return domain.Location{
		Lat: DefaultLocation.Lat + g.rng.Float64()*0.1,
		Lng: DefaultLocation.Lng + g.rng.Float64()*0.1,
	}
}

// AreaStats invents a total in [20, 69] per area and resolves 70% of it.
func (g *RandomGenerator) AreaStats(areas []string) []domain.AreaStat {
	out := make([]domain.AreaStat, 0, len(areas))
	for _, area := range areas {
		total := 20 + g.intn(50)
		resolved := total * 7 / 10
		out = append(out, domain.AreaStat{
			Area:     area,
			Total:    total,
			Resolved: resolved,
			Rate:     domain.NewRate(resolved, total),
		})
	}
	return out
}

func (g *RandomGenerator) intn(n int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Intn(n)
}
