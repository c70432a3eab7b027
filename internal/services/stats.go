package services

import (
	"context"
	"fmt"

	"weddingrsvp/internal/domain"
)

type statsService struct {
	authorizer domain.AdminAuthorizer
	repo       domain.RSVPRepository
}

// NewStatsService returns a StatsService that authorizes callers with
// authorizer and aggregates every record in repo.
func NewStatsService(authorizer domain.AdminAuthorizer, repo domain.RSVPRepository) domain.StatsService {
	return &statsService{authorizer: authorizer, repo: repo}
}

func (s *statsService) GetStats(ctx context.Context, credential string) (*domain.RSVPStats, error) {
	if _, err := s.authorizer.Authorize(ctx, credential); err != nil {
		return nil, err
	}
	list, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load rsvps: %w", err)
	}
	return AggregateStats(list), nil
}

// AggregateStats sums the records in list. Records with a non-positive
// TotalGuests count as one person.
func AggregateStats(list []*domain.RSVP) *domain.RSVPStats {
	stats := &domain.RSVPStats{DietaryRestrictions: []string{}}
	for _, r := range list {
		guests := r.TotalGuests
		if guests <= 0 {
			guests = 1
		}
		stats.TotalRSVPs++
		stats.TotalGuests += guests
		if r.NeedsAccommodation {
			stats.AccommodationRequests += guests
		}
		if r.StayingForPizzaParty {
			stats.PizzaPartyAttendees += guests
		}
		if r.DietaryRestrictions != "" {
			stats.DietaryRestrictions = append(stats.DietaryRestrictions, r.DietaryRestrictions)
		}
		for _, g := range r.AdditionalGuests {
			if g.DietaryRestrictions != "" {
				stats.DietaryRestrictions = append(stats.DietaryRestrictions, g.DietaryRestrictions)
			}
		}
	}
	return stats
}
