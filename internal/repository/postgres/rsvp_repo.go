package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"weddingrsvp/internal/domain"
)

const rsvpColumns = `id, name, email, dietary_restrictions, additional_guests, message,
		needs_accommodation, accommodation_nights, staying_for_pizza_party, total_guests,
		submitted_at, email_sent, email_sent_at, email_error`

type rsvpRepository struct {
	DB *sql.DB
}

func NewRSVPRepository(db *sql.DB) domain.RSVPRepository {
	return &rsvpRepository{DB: db}
}

// Create inserts the record and its creation event in one transaction.
func (r *rsvpRepository) Create(ctx context.Context, rsvp *domain.RSVP) error {
	guests := rsvp.AdditionalGuests
	if guests == nil {
		guests = []domain.Guest{}
	}
	guestsJSON, err := json.Marshal(guests)
	if err != nil {
		return fmt.Errorf("marshal guests: %w", err)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		INSERT INTO rsvps (name, email, dietary_restrictions, additional_guests, message,
			needs_accommodation, accommodation_nights, staying_for_pizza_party, total_guests)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, submitted_at
	`
	err = tx.QueryRowContext(ctx, query,
		rsvp.Name, rsvp.Email, rsvp.DietaryRestrictions, string(guestsJSON), rsvp.Message,
		rsvp.NeedsAccommodation, rsvp.AccommodationNights, rsvp.StayingForPizzaParty, rsvp.TotalGuests,
	).Scan(&rsvp.ID, &rsvp.SubmittedAt)
	if err != nil {
		return err
	}

	eventQuery := `
		INSERT INTO rsvp_events (id, rsvp_id, event_type)
		VALUES ($1, $2, $3)
	`
	if _, err := tx.ExecContext(ctx, eventQuery, uuid.NewString(), rsvp.ID, domain.RSVPEventCreated); err != nil {
		return fmt.Errorf("append rsvp event: %w", err)
	}
	return tx.Commit()
}

func (r *rsvpRepository) GetByID(ctx context.Context, id string) (*domain.RSVP, error) {
	query := `SELECT ` + rsvpColumns + ` FROM rsvps WHERE id = $1`
	rsvp, err := scanRSVP(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidText(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return rsvp, nil
}

// UpdateDeliveryStatus writes the full status triple only while no status is recorded.
func (r *rsvpRepository) UpdateDeliveryStatus(ctx context.Context, id string, status domain.DeliveryStatus) (bool, error) {
	var sentAt sql.NullTime
	var cause sql.NullString
	if status.Sent {
		sentAt = sql.NullTime{Time: status.SentAt, Valid: true}
	} else {
		cause = sql.NullString{String: status.Error, Valid: true}
	}
	query := `
		UPDATE rsvps
		SET email_sent = $1, email_sent_at = $2, email_error = $3
		WHERE id = $4 AND email_sent IS NULL
	`
	res, err := r.DB.ExecContext(ctx, query, status.Sent, sentAt, cause, id)
	if err != nil {
		if isInvalidText(err) {
			return false, domain.ErrNotFound
		}
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if n > 0 {
		return true, nil
	}
	var exists bool
	if err := r.DB.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM rsvps WHERE id = $1)`, id).Scan(&exists); err != nil {
		return false, err
	}
	if !exists {
		return false, domain.ErrNotFound
	}
	return false, nil
}

func (r *rsvpRepository) ListAll(ctx context.Context) ([]*domain.RSVP, error) {
	query := `SELECT ` + rsvpColumns + ` FROM rsvps ORDER BY submitted_at, id`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []*domain.RSVP{}
	for rows.Next() {
		rsvp, err := scanRSVP(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, rsvp)
	}
	return list, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRSVP(row rowScanner) (*domain.RSVP, error) {
	var (
		rsvp       domain.RSVP
		guestsJSON []byte
		sent       sql.NullBool
		sentAt     sql.NullTime
		cause      sql.NullString
	)
	err := row.Scan(
		&rsvp.ID, &rsvp.Name, &rsvp.Email, &rsvp.DietaryRestrictions, &guestsJSON, &rsvp.Message,
		&rsvp.NeedsAccommodation, &rsvp.AccommodationNights, &rsvp.StayingForPizzaParty, &rsvp.TotalGuests,
		&rsvp.SubmittedAt, &sent, &sentAt, &cause,
	)
	if err != nil {
		return nil, err
	}
	rsvp.AdditionalGuests = []domain.Guest{}
	if len(guestsJSON) > 0 {
		if err := json.Unmarshal(guestsJSON, &rsvp.AdditionalGuests); err != nil {
			return nil, fmt.Errorf("decode guests of rsvp %s: %w", rsvp.ID, err)
		}
	}
	if sent.Valid {
		v := sent.Bool
		rsvp.EmailSent = &v
	}
	if sentAt.Valid {
		t := sentAt.Time
		rsvp.EmailSentAt = &t
	}
	if cause.Valid {
		s := cause.String
		rsvp.EmailError = &s
	}
	return &rsvp, nil
}

// isInvalidText reports a malformed uuid literal.
func isInvalidText(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "22P02"
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
