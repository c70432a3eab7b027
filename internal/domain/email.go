package domain

import (
	"context"
	"time"
)

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// EventDetails describes the wedding itself; it is substituted into emails.
type EventDetails struct {
	CoupleNames  string
	Date         time.Time
	VenueName    string
	VenueAddress string
}

// RSVPConfirmationEmailData holds the localized fields of the confirmation email.
type RSVPConfirmationEmailData struct {
	Email               string
	Name                string
	TotalGuests         int
	AccommodationText   string
	PizzaPartyText      string
	DietaryRestrictions string
	CoupleNames         string
	EventDateText       string
	VenueText           string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendRSVPConfirmation(ctx context.Context, data *RSVPConfirmationEmailData) error
}
