package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	h "weddingrsvp/internal/delivery/http/helpers"
	"weddingrsvp/internal/domain"
)

// RSVPSuccessResponse is the success response envelope for POST /rsvps (201).
type RSVPSuccessResponse struct {
	Data  *domain.RSVP `json:"data"`
	Error *h.APIError  `json:"error"`
}

// RSVPController handles the guest-facing RSVP form.
type RSVPController struct {
	Logger  *slog.Logger
	Service domain.RSVPService
}

// NewRSVPController creates an RSVPController with the given logger and service.
func NewRSVPController(logger *slog.Logger, svc domain.RSVPService) *RSVPController {
	return &RSVPController{
		Logger:  logger,
		Service: svc,
	}
}

// Submit godoc
// @Summary Submit an RSVP
// @Description Validate and store a guest's response. Server-computed fields (id, totalGuests, submittedAt, delivery status) are ignored if sent. A confirmation email is sent asynchronously.
// @Tags rsvps
// @Accept json
// @Produce json
// @Param body body domain.RSVPSubmission true "RSVP form"
// @Success 201 {object} controllers.RSVPSuccessResponse "data contains the stored record"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or validation_error (details lists fields)"
// @Failure 409 {object} helpers.APIResponse "error.code: rsvp_closed"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /rsvps [post]
func (c *RSVPController) Submit(w http.ResponseWriter, r *http.Request) {
	var req domain.RSVPSubmission
	if !h.DecodeJSON(w, r, &req) {
		return
	}
	rsvp, err := c.Service.Submit(r.Context(), req)
	if err != nil {
		if verr, ok := domain.AsValidationError(err); ok {
			h.WriteJSONErrorDetails(w, http.StatusBadRequest, h.ErrCodeValidation, "invalid rsvp", verr.Fields)
			return
		}
		if errors.Is(err, domain.ErrRSVPClosed) {
			h.WriteJSONError(w, http.StatusConflict, h.ErrCodeRSVPClosed, "the rsvp deadline has passed")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "could not save rsvp")
		return
	}

	h.WriteJSONSuccess(w, http.StatusCreated, rsvp)
}
