package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	h "weddingrsvp/internal/delivery/http/helpers"
	"weddingrsvp/internal/domain"
)

type contextKey string

const userIDKey contextKey = "userID"

// SetUserID returns a context with the user ID set. Used by auth middleware.
func SetUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the authenticated user ID from the context, if present.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

// RequireAdmin returns a wrapper that authorizes the Bearer token as an
// administrator and sets the user ID in the request context. A missing or
// invalid token is answered with 401, a non-admin identity with 403.
func RequireAdmin(authorizer domain.AdminAuthorizer, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			userID, err := authorizer.Authorize(r.Context(), h.BearerToken(r))
			switch {
			case err == nil:
				next(w, r.WithContext(SetUserID(r.Context(), userID)))
			case errors.Is(err, domain.ErrUnauthenticated):
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthenticated, "missing or invalid token")
			case errors.Is(err, domain.ErrForbidden):
				h.WriteJSONError(w, http.StatusForbidden, h.ErrCodeForbidden, "admin access required")
			default:
				logger.ErrorContext(r.Context(), "authorization failed", "path", r.URL.Path, "err", err)
				h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "internal server error")
			}
		}
	}
}
