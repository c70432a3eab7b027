package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"weddingrsvp/internal/domain"
)

const minPasswordLen = 8

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type adminService struct {
	userRepo    domain.UserRepository
	adminRepo   domain.AdminRepository
	hasher      domain.PasswordHasher
	tokenIssuer domain.TokenIssuer
	verifier    domain.TokenVerifier
	tokenExpiry time.Duration
}

// NewAdminService creates an AdminService with the given repositories and auth ports.
func NewAdminService(userRepo domain.UserRepository, adminRepo domain.AdminRepository, hasher domain.PasswordHasher, tokenIssuer domain.TokenIssuer, verifier domain.TokenVerifier, tokenExpiry time.Duration) domain.AdminService {
	return &adminService{
		userRepo:    userRepo,
		adminRepo:   adminRepo,
		hasher:      hasher,
		tokenIssuer: tokenIssuer,
		verifier:    verifier,
		tokenExpiry: tokenExpiry,
	}
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}

func (s *adminService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user.PasswordHash == "" {
		return "", nil, domain.ErrInvalidCredentials
	}
	if err := s.hasher.Compare(user.PasswordHash, user.Salt, password); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	token, err := s.tokenIssuer.Issue(user.ID, user.Email, s.tokenExpiry)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return token, user, nil
}

func (s *adminService) Authorize(ctx context.Context, credential string) (string, error) {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return "", domain.ErrUnauthenticated
	}
	userID, err := s.verifier.Verify(credential)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUnauthenticated, err)
	}
	ok, err := s.adminRepo.IsAdmin(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to check admin: %w", err)
	}
	if !ok {
		return "", domain.ErrForbidden
	}
	return userID, nil
}

func (s *adminService) EnsureAdmin(ctx context.Context, email, password, name string) (*domain.User, bool, error) {
	email = normalizeEmail(email)
	if !emailRegexp.MatchString(email) {
		return nil, false, fmt.Errorf("invalid email format")
	}
	user, err := s.userRepo.GetByEmail(ctx, email)
	created := false
	switch {
	case errors.Is(err, domain.ErrNotFound):
		if len(password) < minPasswordLen {
			return nil, false, fmt.Errorf("password must be at least %d characters", minPasswordLen)
		}
		salt, err := s.hasher.GenerateSalt()
		if err != nil {
			return nil, false, fmt.Errorf("failed to generate salt: %w", err)
		}
		hash, err := s.hasher.Hash(salt, password)
		if err != nil {
			return nil, false, fmt.Errorf("failed to hash password: %w", err)
		}
		now := time.Now()
		user = domain.NewUser(email, strings.TrimSpace(name), hash, salt, now, now)
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, false, fmt.Errorf("failed to create user: %w", err)
		}
		created = true
	case err != nil:
		return nil, false, fmt.Errorf("failed to get user: %w", err)
	}
	if err := s.adminRepo.Add(ctx, user.ID); err != nil {
		return nil, false, fmt.Errorf("failed to add admin: %w", err)
	}
	return user, created, nil
}
