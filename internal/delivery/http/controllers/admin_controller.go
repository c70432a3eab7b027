package controllers

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	h "weddingrsvp/internal/delivery/http/helpers"
	"weddingrsvp/internal/domain"
)

// LoginRequest is the request body for POST /admin/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate implements Validator.
func (l LoginRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(l.Email) == "" {
		errs = append(errs, "email is required")
	}
	if l.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// LoginResponse is the response body for POST /admin/login
type LoginResponse struct {
	Token     string       `json:"token"`
	TokenType string       `json:"token_type"`
	User      *domain.User `json:"user"`
}

// LoginSuccessResponse is the success response envelope for POST /admin/login (200).
type LoginSuccessResponse struct {
	Data  LoginResponse `json:"data"`
	Error *h.APIError   `json:"error"`
}

// StatsSuccessResponse is the success response envelope for GET /admin/stats (200).
type StatsSuccessResponse struct {
	Data  *domain.RSVPStats `json:"data"`
	Error *h.APIError       `json:"error"`
}

// RSVPListSuccessResponse is the success response envelope for GET /admin/rsvps (200).
type RSVPListSuccessResponse struct {
	Data  []*domain.RSVP `json:"data"`
	Error *h.APIError    `json:"error"`
}

// AdminController serves the hosts' dashboard: sign-in, totals, list and export.
// ListRSVPs and ExportRSVPs expect to be wrapped in middleware.RequireAdmin.
type AdminController struct {
	Logger   *slog.Logger
	Admin    domain.AdminService
	Stats    domain.StatsService
	RSVPs    domain.RSVPService
	Location *time.Location

	now func() time.Time
}

// NewAdminController creates an AdminController. loc is used for export
// timestamps; nil means UTC.
func NewAdminController(logger *slog.Logger, admin domain.AdminService, stats domain.StatsService, rsvps domain.RSVPService, loc *time.Location) *AdminController {
	if loc == nil {
		loc = time.UTC
	}
	return &AdminController{
		Logger:   logger,
		Admin:    admin,
		Stats:    stats,
		RSVPs:    rsvps,
		Location: loc,
		now:      time.Now,
	}
}

// Login godoc
// @Summary Admin log in
// @Description Authenticate with email and password. Returns a JWT to send as a Bearer token to the /admin endpoints. Admin rights are checked on each data request, not here.
// @Tags admin
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} controllers.LoginSuccessResponse "data contains token, token_type and user"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: invalid_credentials"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/login [post]
func (c *AdminController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	token, user, err := c.Admin.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeInvalidCredentials, "invalid email or password")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "internal server error")
		return
	}

	h.WriteJSONSuccess(w, http.StatusOK, LoginResponse{Token: token, TokenType: "Bearer", User: user})
}

// GetStats godoc
// @Summary RSVP statistics
// @Description Totals over all stored RSVPs. Requires an administrator's Bearer token.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.StatsSuccessResponse "data contains the totals"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthenticated"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/stats [get]
func (c *AdminController) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := c.Stats.GetStats(r.Context(), h.BearerToken(r))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthenticated):
			h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthenticated, "missing or invalid token")
		case errors.Is(err, domain.ErrForbidden):
			h.WriteJSONError(w, http.StatusForbidden, h.ErrCodeForbidden, "admin access required")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "internal server error")
		}
		return
	}

	h.WriteJSONSuccess(w, http.StatusOK, stats)
}

// ListRSVPs godoc
// @Summary List RSVPs
// @Description All stored RSVPs, optionally filtered by a name or email substring and sorted.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param q query string false "Case-insensitive name or email substring"
// @Param sort query string false "Sort field: name, submittedAt or totalGuests (default submittedAt)"
// @Param order query string false "asc or desc (default desc)"
// @Success 200 {object} controllers.RSVPListSuccessResponse "data contains the records"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthenticated"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/rsvps [get]
func (c *AdminController) ListRSVPs(w http.ResponseWriter, r *http.Request) {
	list, err := c.RSVPs.List(r.Context(), h.ParseRSVPListQuery(r))
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "internal server error")
		return
	}
	if list == nil {
		list = []*domain.RSVP{}
	}

	h.WriteJSONSuccess(w, http.StatusOK, list)
}

// ExportRSVPs godoc
// @Summary Export RSVPs as CSV
// @Description UTF-8 CSV (with BOM) of all RSVPs, honouring the same q, sort and order parameters as the list.
// @Tags admin
// @Produce text/csv
// @Security BearerAuth
// @Param q query string false "Case-insensitive name or email substring"
// @Param sort query string false "Sort field: name, submittedAt or totalGuests (default submittedAt)"
// @Param order query string false "asc or desc (default desc)"
// @Success 200 {file} file "rsvp-export-YYYY-MM-DD.csv"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthenticated"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/rsvps/export.csv [get]
func (c *AdminController) ExportRSVPs(w http.ResponseWriter, r *http.Request) {
	list, err := c.RSVPs.List(r.Context(), h.ParseRSVPListQuery(r))
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "internal server error")
		return
	}
	var buf bytes.Buffer
	if err := writeRSVPCSV(&buf, list, c.Location); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+exportFilename(c.now(), c.Location)+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
