package domain

import (
	"context"
	"time"
)

// User is an identity that can sign in to the admin dashboard. Being a user
// does not grant admin access; that requires an entry in the admin allow-list.
// swagger:model User
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewUser returns a new User with the given fields. ID is typically set by the repository on create.
func NewUser(email, name, passwordHash, salt string, createdAt, updatedAt time.Time) *User {
	return &User{
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		Salt:         salt,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

// PasswordHasher handles salt generation, hashing, and verification.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated user.
type TokenIssuer interface {
	Issue(userID, email string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated user ID.
type TokenVerifier interface {
	Verify(token string) (userID string, err error)
}

// UserRepository defines the interface for identity storage.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
}

// AdminRepository is the administrator allow-list, keyed by user ID.
type AdminRepository interface {
	Add(ctx context.Context, userID string) error
	IsAdmin(ctx context.Context, userID string) (bool, error)
}

// AdminAuthorizer resolves a credential to an administrator's user ID.
type AdminAuthorizer interface {
	// Authorize returns ErrUnauthenticated for a missing or invalid credential
	// and ErrForbidden for a valid identity that is not an administrator.
	Authorize(ctx context.Context, credential string) (userID string, err error)
}

// AdminService covers admin sign-in and bootstrap.
type AdminService interface {
	AdminAuthorizer
	Login(ctx context.Context, email, password string) (token string, user *User, err error)
	// EnsureAdmin creates the user if needed and adds it to the allow-list.
	// created reports whether a new user was created.
	EnsureAdmin(ctx context.Context, email, password, name string) (user *User, created bool, err error)
}
