package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"weddingrsvp/internal/delivery/http/helpers"
	"weddingrsvp/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAuthorizer implements domain.AdminAuthorizer for tests.
type fakeAuthorizer struct {
	userID  string
	err     error
	gotCred string
}

func (f *fakeAuthorizer) Authorize(_ context.Context, credential string) (string, error) {
	f.gotCred = credential
	if f.err != nil {
		return "", f.err
	}
	return f.userID, nil
}

func TestRequireAdmin(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

	tests := []struct {
		name          string
		authHeader    string
		authorizer    *fakeAuthorizer
		wantStatus    int
		wantBodyCode  string
		nextCalled    bool
		wantContextID string
		wantCred      string
	}{
		{
			name:          "admin token sets context and calls next",
			authHeader:    "Bearer valid-token",
			authorizer:    &fakeAuthorizer{userID: "user-123"},
			wantStatus:    http.StatusOK,
			nextCalled:    true,
			wantContextID: "user-123",
			wantCred:      "valid-token",
		},
		{
			name:         "missing authorization header",
			authorizer:   &fakeAuthorizer{err: domain.ErrUnauthenticated},
			wantStatus:   http.StatusUnauthorized,
			wantBodyCode: helpers.ErrCodeUnauthenticated,
		},
		{
			name:         "non bearer scheme passes empty credential",
			authHeader:   "Basic abc",
			authorizer:   &fakeAuthorizer{err: domain.ErrUnauthenticated},
			wantStatus:   http.StatusUnauthorized,
			wantBodyCode: helpers.ErrCodeUnauthenticated,
			wantCred:     "",
		},
		{
			name:         "not an admin",
			authHeader:   "Bearer guest-token",
			authorizer:   &fakeAuthorizer{err: domain.ErrForbidden},
			wantStatus:   http.StatusForbidden,
			wantBodyCode: helpers.ErrCodeForbidden,
			wantCred:     "guest-token",
		},
		{
			name:         "authorizer failure",
			authHeader:   "Bearer valid-token",
			authorizer:   &fakeAuthorizer{err: errors.New("db down")},
			wantStatus:   http.StatusInternalServerError,
			wantBodyCode: helpers.ErrCodeInternalError,
			wantCred:     "valid-token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			var capturedUserID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				if id, ok := UserIDFromContext(r.Context()); ok {
					capturedUserID = id
				}
				w.WriteHeader(http.StatusOK)
			})
			handler := RequireAdmin(tt.authorizer, logger)(next)

			req := httptest.NewRequest(http.MethodGet, "http://test/admin/rsvps", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()

			handler(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			assert.Equal(t, tt.nextCalled, nextCalled, "next handler called")
			assert.Equal(t, tt.wantCred, tt.authorizer.gotCred)
			if tt.nextCalled {
				assert.Equal(t, tt.wantContextID, capturedUserID, "user ID in context")
			}
			if tt.wantBodyCode != "" {
				var envelope helpers.APIResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantBodyCode, envelope.Error.Code)
			}
		})
	}
}
