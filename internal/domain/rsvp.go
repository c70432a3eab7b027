package domain

import (
	"context"
	"time"
)

// Form limits.
const (
	MaxAdditionalGuests    = 5
	MaxAccommodationNights = 3
)

// Guest is an additional person attending with the respondent.
// swagger:model Guest
type Guest struct {
	Name                string `json:"name" validate:"required,min=2"`
	DietaryRestrictions string `json:"dietaryRestrictions" validate:"max=500"`
}

// RSVPSubmission is the client-supplied part of an RSVP. Missing fields
// default to their zero values.
// swagger:model RSVPSubmission
type RSVPSubmission struct {
	Name                 string  `json:"name" validate:"required,min=2,max=100"`
	Email                string  `json:"email" validate:"required,email"`
	DietaryRestrictions  string  `json:"dietaryRestrictions" validate:"max=500"`
	AdditionalGuests     []Guest `json:"additionalGuests" validate:"max=5,dive"`
	Message              string  `json:"message" validate:"max=1000"`
	NeedsAccommodation   bool    `json:"needsAccommodation"`
	AccommodationNights  int     `json:"accommodationNights" validate:"min=0,max=3"`
	StayingForPizzaParty bool    `json:"stayingForPizzaParty"`
}

// RSVP is a persisted response to the invitation.
// swagger:model RSVP
type RSVP struct {
	ID                   string     `json:"id"`
	Name                 string     `json:"name"`
	Email                string     `json:"email"`
	DietaryRestrictions  string     `json:"dietaryRestrictions"`
	AdditionalGuests     []Guest    `json:"additionalGuests"`
	Message              string     `json:"message"`
	NeedsAccommodation   bool       `json:"needsAccommodation"`
	AccommodationNights  int        `json:"accommodationNights"`
	StayingForPizzaParty bool       `json:"stayingForPizzaParty"`
	TotalGuests          int        `json:"totalGuests"`
	SubmittedAt          time.Time  `json:"submittedAt"`
	EmailSent            *bool      `json:"emailSent,omitempty"`
	EmailSentAt          *time.Time `json:"emailSentAt,omitempty"`
	EmailError           *string    `json:"emailError,omitempty"`
}

// NewRSVP derives a record from a validated submission. TotalGuests is always
// computed here and AccommodationNights is forced to 0 without accommodation.
// ID and SubmittedAt are set by the repository on create.
func NewRSVP(sub *RSVPSubmission) *RSVP {
	guests := make([]Guest, len(sub.AdditionalGuests))
	copy(guests, sub.AdditionalGuests)
	nights := sub.AccommodationNights
	if !sub.NeedsAccommodation {
		nights = 0
	}
	return &RSVP{
		Name:                 sub.Name,
		Email:                sub.Email,
		DietaryRestrictions:  sub.DietaryRestrictions,
		AdditionalGuests:     guests,
		Message:              sub.Message,
		NeedsAccommodation:   sub.NeedsAccommodation,
		AccommodationNights:  nights,
		StayingForPizzaParty: sub.StayingForPizzaParty,
		TotalGuests:          1 + len(guests),
	}
}

// Processed reports whether the confirmation pipeline already recorded a delivery status.
func (r *RSVP) Processed() bool {
	return r.EmailSent != nil
}

// DeliveryStatus is the terminal outcome of a confirmation attempt.
type DeliveryStatus struct {
	Sent   bool
	SentAt time.Time
	Error  string
}

// DeliverySucceeded returns a successful status stamped at the given time.
func DeliverySucceeded(at time.Time) DeliveryStatus {
	return DeliveryStatus{Sent: true, SentAt: at}
}

// DeliveryFailed returns a failed status with a human-readable cause.
func DeliveryFailed(cause string) DeliveryStatus {
	if cause == "" {
		cause = "unknown error"
	}
	return DeliveryStatus{Sent: false, Error: cause}
}

// RSVPSortField names a column the admin list can be sorted by.
type RSVPSortField string

const (
	SortByName        RSVPSortField = "name"
	SortBySubmittedAt RSVPSortField = "submittedAt"
	SortByTotalGuests RSVPSortField = "totalGuests"
)

// RSVPListQuery filters and orders the admin RSVP list.
type RSVPListQuery struct {
	Search string
	SortBy RSVPSortField
	Desc   bool
}

// RSVPRepository stores RSVP records. Create also appends the creation event
// consumed by the confirmation pipeline, atomically with the record.
type RSVPRepository interface {
	Create(ctx context.Context, rsvp *RSVP) error
	GetByID(ctx context.Context, id string) (*RSVP, error)
	// UpdateDeliveryStatus writes the status only if none is recorded yet.
	// applied is false when the record was already processed.
	UpdateDeliveryStatus(ctx context.Context, id string, status DeliveryStatus) (applied bool, err error)
	ListAll(ctx context.Context) ([]*RSVP, error)
}

// RSVPService is the guest-facing submission surface plus the admin list.
type RSVPService interface {
	Submit(ctx context.Context, in RSVPSubmission) (*RSVP, error)
	List(ctx context.Context, q RSVPListQuery) ([]*RSVP, error)
}
