package controllers

import (
	"context"
	"io"
	"log/slog"

	"weddingrsvp/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

// fakeRSVPService implements domain.RSVPService for handler tests.
type fakeRSVPService struct {
	submitRSVP *domain.RSVP
	submitErr  error
	lastSubmit domain.RSVPSubmission

	listRSVPs []*domain.RSVP
	listErr   error
	lastQuery domain.RSVPListQuery
}

func (f *fakeRSVPService) Submit(ctx context.Context, in domain.RSVPSubmission) (*domain.RSVP, error) {
	f.lastSubmit = in
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	return f.submitRSVP, nil
}

func (f *fakeRSVPService) List(ctx context.Context, q domain.RSVPListQuery) ([]*domain.RSVP, error) {
	f.lastQuery = q
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listRSVPs, nil
}

// fakeAdminService implements domain.AdminService for handler tests.
type fakeAdminService struct {
	loginToken string
	loginUser  *domain.User
	loginErr   error
}

func (f *fakeAdminService) Authorize(ctx context.Context, credential string) (string, error) {
	return "", domain.ErrUnauthenticated
}

func (f *fakeAdminService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if f.loginErr != nil {
		return "", nil, f.loginErr
	}
	return f.loginToken, f.loginUser, nil
}

func (f *fakeAdminService) EnsureAdmin(ctx context.Context, email, password, name string) (*domain.User, bool, error) {
	return nil, false, nil
}

// fakeStatsService implements domain.StatsService for handler tests.
type fakeStatsService struct {
	stats          *domain.RSVPStats
	err            error
	lastCredential string
}

func (f *fakeStatsService) GetStats(ctx context.Context, credential string) (*domain.RSVPStats, error) {
	f.lastCredential = credential
	if f.err != nil {
		return nil, f.err
	}
	return f.stats, nil
}
