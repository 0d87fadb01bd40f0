package service

import (
	"github.com/spec-kit/nagarseva/internal/domain"
	"github.com/spec-kit/nagarseva/internal/fixtures"
)

// CommunityService serves the gamification fixtures. Nothing here is computed.
type CommunityService struct {
	data *fixtures.Data
}

// NewCommunityService constructs the service.
func NewCommunityService(data *fixtures.Data) *CommunityService {
	return &CommunityService{data: data}
}

func (s *CommunityService) Stats() domain.CommunityStats { return s.data.Community }
func (s *CommunityService) Discussions() []domain.Discussion { return s.data.Discussions }
func (s *CommunityService) Leaderboard() []domain.LeaderboardEntry { return s.data.Leaderboard }
func (s *CommunityService) Achievements() []domain.Achievement { return s.data.Achievements }
func (s *CommunityService) CitizenStats() domain.CitizenStats { return s.data.Citizen }
func (s *CommunityService) Features() []domain.Feature { return s.data.Features }

// CitizenSuccessRate is resolved/submitted for the citizen profile.
func (s *CommunityService) CitizenSuccessRate() domain.Rate {
	return domain.NewRate(s.data.Citizen.IssuesResolved, s.data.Citizen.ReportsSubmitted)
}
