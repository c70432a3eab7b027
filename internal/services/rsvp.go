package services

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"weddingrsvp/internal/domain"
	"weddingrsvp/internal/metrics"
)

type rsvpService struct {
	repo     domain.RSVPRepository
	deadline time.Time
	metrics  *metrics.RSVPMetrics
	now      func() time.Time
}

// NewRSVPService returns an RSVPService backed by repo. A zero deadline
// accepts submissions at any time.
func NewRSVPService(repo domain.RSVPRepository, deadline time.Time, m *metrics.RSVPMetrics) domain.RSVPService {
	return &rsvpService{
		repo:     repo,
		deadline: deadline,
		metrics:  m,
		now:      time.Now,
	}
}

func (s *rsvpService) Submit(ctx context.Context, in domain.RSVPSubmission) (*domain.RSVP, error) {
	sub, err := ValidateSubmission(in)
	if err != nil {
		s.metrics.IncSubmission(metrics.ResultInvalid)
		return nil, err
	}
	if !s.deadline.IsZero() && s.now().After(s.deadline) {
		s.metrics.IncSubmission(metrics.ResultClosed)
		return nil, domain.ErrRSVPClosed
	}
	rsvp := domain.NewRSVP(sub)
	if err := s.repo.Create(ctx, rsvp); err != nil {
		s.metrics.IncSubmission(metrics.ResultError)
		return nil, fmt.Errorf("failed to store rsvp: %w", err)
	}
	s.metrics.IncSubmission(metrics.ResultOK)
	return rsvp, nil
}

func (s *rsvpService) List(ctx context.Context, q domain.RSVPListQuery) ([]*domain.RSVP, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rsvps: %w", err)
	}
	out := FilterRSVPs(all, q.Search)
	SortRSVPs(out, q.SortBy, q.Desc)
	return out, nil
}

// FilterRSVPs keeps records whose name or email contains search, ignoring case.
func FilterRSVPs(list []*domain.RSVP, search string) []*domain.RSVP {
	term := strings.ToLower(strings.TrimSpace(search))
	out := make([]*domain.RSVP, 0, len(list))
	for _, r := range list {
		if term == "" ||
			strings.Contains(strings.ToLower(r.Name), term) ||
			strings.Contains(strings.ToLower(r.Email), term) {
			out = append(out, r)
		}
	}
	return out
}

// SortRSVPs orders list in place. Names are compared with Hungarian
// collation. Unknown fields fall back to submission time.
func SortRSVPs(list []*domain.RSVP, by domain.RSVPSortField, desc bool) {
	var cmp func(a, b *domain.RSVP) int
	switch by {
	case domain.SortByName:
		col := collate.New(language.Hungarian, collate.IgnoreCase)
		cmp = func(a, b *domain.RSVP) int { return col.CompareString(a.Name, b.Name) }
	case domain.SortByTotalGuests:
		cmp = func(a, b *domain.RSVP) int { return a.TotalGuests - b.TotalGuests }
	default:
		cmp = func(a, b *domain.RSVP) int { return a.SubmittedAt.Compare(b.SubmittedAt) }
	}
	slices.SortStableFunc(list, func(a, b *domain.RSVP) int {
		if desc {
			return cmp(b, a)
		}
		return cmp(a, b)
	})
}
