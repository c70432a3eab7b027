package domain

import (
	"context"
	"time"
)

// RSVPEventCreated is the type of the event appended when an RSVP is stored.
const RSVPEventCreated = "rsvp.created"

// RSVPEvent is one entry of the creation-event stream.
type RSVPEvent struct {
	ID        string
	RSVPID    string
	Type      string
	CreatedAt time.Time
	Attempts  int
}

// RSVPEventRepository is the consumer side of the creation-event stream.
// Delivery is at-least-once: a claimed event that is not marked dispatched
// becomes claimable again after its lease expires.
type RSVPEventRepository interface {
	ClaimPending(ctx context.Context, limit int, lease time.Duration, maxAttempts int) ([]*RSVPEvent, error)
	MarkDispatched(ctx context.Context, eventID string) error
	MarkFailed(ctx context.Context, eventID, cause string) error
}

// ConfirmationService reacts to a newly created RSVP by sending the
// confirmation email and recording its delivery status on the record.
type ConfirmationService interface {
	// HandleCreated returns nil once the record reached (or already was in) a
	// terminal state. A non-nil error means the event should be redelivered.
	HandleCreated(ctx context.Context, rsvpID string) error
}
