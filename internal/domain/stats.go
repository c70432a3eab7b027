package domain

import "context"

// RSVPStats summarizes all responses for the hosts.
// swagger:model RSVPStats
type RSVPStats struct {
	TotalRSVPs            int      `json:"totalRSVPs"`
	TotalGuests           int      `json:"totalGuests"`
	AccommodationRequests int      `json:"accommodationRequests"`
	PizzaPartyAttendees   int      `json:"pizzaPartyAttendees"`
	DietaryRestrictions   []string `json:"dietaryRestrictions"`
}

// StatsService computes RSVPStats for an administrator.
type StatsService interface {
	// GetStats returns ErrUnauthenticated when the credential is missing or
	// invalid and ErrForbidden when it does not belong to an administrator.
	GetStats(ctx context.Context, credential string) (*RSVPStats, error)
}
