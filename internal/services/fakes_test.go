package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"weddingrsvp/internal/domain"
)

// fakePasswordHasher implements domain.PasswordHasher for tests.
type fakePasswordHasher struct {
	salt string
	hash string
}

func (f *fakePasswordHasher) GenerateSalt() (string, error) { return f.salt, nil }
func (f *fakePasswordHasher) Hash(salt, password string) (string, error) {
	if f.hash != "" {
		return f.hash, nil
	}
	return "hash-" + password, nil
}
func (f *fakePasswordHasher) Compare(hash, salt, password string) error {
	if hash != "hash-"+password && (f.hash == "" || hash != f.hash) {
		return errors.New("mismatch")
	}
	return nil
}

// fakeTokenIssuer implements domain.TokenIssuer for tests.
type fakeTokenIssuer struct {
	token string
	err   error
}

func (f *fakeTokenIssuer) Issue(userID, email string, expiry time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if f.token != "" {
		return f.token, nil
	}
	return "token-" + userID, nil
}

// fakeTokenVerifier implements domain.TokenVerifier for tests.
// Tokens of the form "token-<id>" verify to <id>.
type fakeTokenVerifier struct{}

func (fakeTokenVerifier) Verify(token string) (string, error) {
	const prefix = "token-"
	if len(token) <= len(prefix) || token[:len(prefix)] != prefix {
		return "", errors.New("invalid token")
	}
	return token[len(prefix):], nil
}

// fakeUserRepo implements domain.UserRepository for tests.
type fakeUserRepo struct {
	byID      map[string]*domain.User
	byEmail   map[string]*domain.User
	getErr    error
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[string]*domain.User),
		byEmail: make(map[string]*domain.User),
	}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	u.ID = "created-1"
	f.byID[u.ID] = u
	if u.Email != "" {
		f.byEmail[u.Email] = u
	}
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if u, ok := f.byID[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

// fakeAdminRepo implements domain.AdminRepository for tests.
type fakeAdminRepo struct {
	admins map[string]bool
	err    error
}

func newFakeAdminRepo(ids ...string) *fakeAdminRepo {
	f := &fakeAdminRepo{admins: make(map[string]bool)}
	for _, id := range ids {
		f.admins[id] = true
	}
	return f
}

func (f *fakeAdminRepo) Add(ctx context.Context, userID string) error {
	if f.err != nil {
		return f.err
	}
	f.admins[userID] = true
	return nil
}

func (f *fakeAdminRepo) IsAdmin(ctx context.Context, userID string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.admins[userID], nil
}

// fakeAuthorizer implements domain.AdminAuthorizer for tests.
type fakeAuthorizer struct {
	userID string
	err    error
}

func (f *fakeAuthorizer) Authorize(ctx context.Context, credential string) (string, error) {
	return f.userID, f.err
}

// fakeRSVPRepo implements domain.RSVPRepository for tests.
type fakeRSVPRepo struct {
	mu        sync.Mutex
	byID      map[string]*domain.RSVP
	order     []string
	nextID    int
	createErr error
	getErr    error
	listErr   error
	updateErr error
	updates   []domain.DeliveryStatus
}

func newFakeRSVPRepo() *fakeRSVPRepo {
	return &fakeRSVPRepo{byID: make(map[string]*domain.RSVP)}
}

func (f *fakeRSVPRepo) put(r *domain.RSVP) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID[r.ID] = r
	f.order = append(f.order, r.ID)
}

func (f *fakeRSVPRepo) Create(ctx context.Context, r *domain.RSVP) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.mu.Lock()
	f.nextID++
	r.ID = fmt.Sprintf("rsvp-%d", f.nextID)
	r.SubmittedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	f.mu.Unlock()
	cp := *r
	f.put(&cp)
	return nil
}

func (f *fakeRSVPRepo) GetByID(ctx context.Context, id string) (*domain.RSVP, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRSVPRepo) UpdateDeliveryStatus(ctx context.Context, id string, status domain.DeliveryStatus) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, status)
	if f.updateErr != nil {
		return false, f.updateErr
	}
	r, ok := f.byID[id]
	if !ok {
		return false, domain.ErrNotFound
	}
	if r.EmailSent != nil {
		return false, nil
	}
	sent := status.Sent
	r.EmailSent = &sent
	if status.Sent {
		at := status.SentAt
		r.EmailSentAt = &at
	} else {
		cause := status.Error
		r.EmailError = &cause
	}
	return true, nil
}

func (f *fakeRSVPRepo) ListAll(ctx context.Context) ([]*domain.RSVP, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*domain.RSVP, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.byID[id])
	}
	return out, nil
}

// fakeMailer implements domain.Mailer for tests.
type fakeMailer struct {
	mu    sync.Mutex
	err   error
	block bool
	sent  []sentMail
}

type sentMail struct {
	to, subject, html, text string
}

func (f *fakeMailer) Send(ctx context.Context, to, subject, html, text string) error {
	if f.block {
		<-ctx.Done()
		return ctx.Err()
	}
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentMail{to: to, subject: subject, html: html, text: text})
	return nil
}

// fakeRenderer implements domain.EmailTemplateRenderer for tests.
type fakeRenderer struct {
	err  error
	name string
	data any
}

func (f *fakeRenderer) Render(name string, data any) (string, string, string, error) {
	f.name = name
	f.data = data
	if f.err != nil {
		return "", "", "", f.err
	}
	return "subject", "<p>html</p>", "text", nil
}

// fakeEmailService implements domain.EmailService for tests.
type fakeEmailService struct {
	mu    sync.Mutex
	err   error
	block bool
	calls []*domain.RSVPConfirmationEmailData
}

func (f *fakeEmailService) SendRSVPConfirmation(ctx context.Context, data *domain.RSVPConfirmationEmailData) error {
	f.mu.Lock()
	f.calls = append(f.calls, data)
	f.mu.Unlock()
	if f.block {
		<-ctx.Done()
		return ctx.Err()
	}
	return f.err
}
