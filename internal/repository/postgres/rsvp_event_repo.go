package postgres

import (
	"context"
	"database/sql"
	"time"

	"weddingrsvp/internal/domain"
)

type rsvpEventRepository struct {
	DB *sql.DB
}

func NewRSVPEventRepository(db *sql.DB) domain.RSVPEventRepository {
	return &rsvpEventRepository{DB: db}
}

// ClaimPending leases up to limit undispatched events. An event is claimable
// when it was never claimed or its previous lease has expired.
func (r *rsvpEventRepository) ClaimPending(ctx context.Context, limit int, lease time.Duration, maxAttempts int) ([]*domain.RSVPEvent, error) {
	query := `
		UPDATE rsvp_events
		SET claimed_at = now(), attempts = attempts + 1
		WHERE id IN (
			SELECT id FROM rsvp_events
			WHERE dispatched_at IS NULL
				AND attempts < $3
				AND (claimed_at IS NULL OR claimed_at < now() - make_interval(secs => $2))
			ORDER BY created_at
			LIMIT $1
			FOR UPDATE SKIP LOCKED
		)
		RETURNING id, rsvp_id, event_type, created_at, attempts
	`
	rows, err := r.DB.QueryContext(ctx, query, limit, lease.Seconds(), maxAttempts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*domain.RSVPEvent
	for rows.Next() {
		e := &domain.RSVPEvent{}
		if err := rows.Scan(&e.ID, &e.RSVPID, &e.Type, &e.CreatedAt, &e.Attempts); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *rsvpEventRepository) MarkDispatched(ctx context.Context, eventID string) error {
	query := `
		UPDATE rsvp_events
		SET dispatched_at = now(), last_error = NULL
		WHERE id = $1
	`
	res, err := r.DB.ExecContext(ctx, query, eventID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// MarkFailed records the cause and keeps the event pending until its lease expires.
func (r *rsvpEventRepository) MarkFailed(ctx context.Context, eventID, cause string) error {
	query := `
		UPDATE rsvp_events
		SET last_error = $2
		WHERE id = $1
	`
	_, err := r.DB.ExecContext(ctx, query, eventID, cause)
	return err
}
