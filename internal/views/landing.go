package views

import "github.com/spec-kit/nagarseva/internal/domain"

// LandingPage is the role picker shown before a role is chosen.
type LandingPage struct {
	Features []domain.Feature
	Stats    domain.CommunityStats
}

// Landing builds the landing page.
func (b *Builder) Landing() LandingPage {
	return LandingPage{
		Features: b.community.Features(),
		Stats:    b.community.Stats(),
	}
}
