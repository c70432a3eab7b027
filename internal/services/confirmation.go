package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"weddingrsvp/internal/domain"
	"weddingrsvp/internal/metrics"
)

// DefaultSendTimeout bounds a single confirmation send.
const DefaultSendTimeout = 10 * time.Second

type confirmationService struct {
	repo        domain.RSVPRepository
	email       domain.EmailService
	event       domain.EventDetails
	sendTimeout time.Duration
	metrics     *metrics.RSVPMetrics
	logger      *slog.Logger
	now         func() time.Time
}

// NewConfirmationService returns a ConfirmationService that emails the
// respondent of a new RSVP and records the outcome on the record.
func NewConfirmationService(repo domain.RSVPRepository, email domain.EmailService, event domain.EventDetails, sendTimeout time.Duration, m *metrics.RSVPMetrics, logger *slog.Logger) domain.ConfirmationService {
	if sendTimeout <= 0 {
		sendTimeout = DefaultSendTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &confirmationService{
		repo:        repo,
		email:       email,
		event:       event,
		sendTimeout: sendTimeout,
		metrics:     m,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *confirmationService) HandleCreated(ctx context.Context, rsvpID string) error {
	log := s.logger.With("rsvp_id", rsvpID)

	rsvp, err := s.repo.GetByID(ctx, rsvpID)
	if errors.Is(err, domain.ErrNotFound) {
		log.WarnContext(ctx, "rsvp not found, skipping confirmation")
		s.metrics.IncConfirmation(metrics.ResultNotFound)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load rsvp: %w", err)
	}
	if rsvp.Processed() {
		log.InfoContext(ctx, "confirmation already processed", "email_sent", *rsvp.EmailSent)
		s.metrics.IncConfirmation(metrics.ResultSkipped)
		return nil
	}
	if rsvp.Email == "" {
		log.ErrorContext(ctx, "no email found in rsvp")
		s.metrics.IncConfirmation(metrics.ResultSkipped)
		return nil
	}

	data := BuildConfirmationEmail(rsvp, s.event)
	sendCtx, cancel := context.WithTimeout(ctx, s.sendTimeout)
	start := time.Now()
	sendErr := s.email.SendRSVPConfirmation(sendCtx, data)
	elapsed := time.Since(start)
	cancel()

	// Shutting down mid-send is not a delivery outcome; leave the record for redelivery.
	if sendErr != nil && ctx.Err() != nil {
		return fmt.Errorf("confirmation interrupted: %w", ctx.Err())
	}

	var status domain.DeliveryStatus
	if sendErr != nil {
		cause := sendErr.Error()
		if errors.Is(sendErr, context.DeadlineExceeded) {
			cause = fmt.Sprintf("send timed out after %s", s.sendTimeout)
		}
		log.ErrorContext(ctx, "error sending confirmation email", "err", sendErr)
		s.metrics.ObserveSend(metrics.ResultFailed, elapsed)
		s.metrics.IncConfirmation(metrics.ResultFailed)
		status = domain.DeliveryFailed(cause)
	} else {
		log.InfoContext(ctx, "confirmation email sent", "duration_ms", elapsed.Milliseconds())
		s.metrics.ObserveSend(metrics.ResultSent, elapsed)
		s.metrics.IncConfirmation(metrics.ResultSent)
		status = domain.DeliverySucceeded(s.now().UTC())
	}

	applied, err := s.repo.UpdateDeliveryStatus(ctx, rsvpID, status)
	switch {
	case err != nil:
		log.ErrorContext(ctx, "failed to record delivery status", "email_sent", status.Sent, "err", err)
	case !applied:
		log.InfoContext(ctx, "delivery status already recorded", "email_sent", status.Sent)
	}
	return nil
}
