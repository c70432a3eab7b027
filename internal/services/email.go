package services

import (
	"context"
	"fmt"

	"weddingrsvp/internal/domain"
)

const rsvpConfirmationTemplate = "rsvp_confirmation"

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendRSVPConfirmation renders the "rsvp_confirmation" template and sends it to data.Email.
func (s *emailService) SendRSVPConfirmation(ctx context.Context, data *domain.RSVPConfirmationEmailData) error {
	if data == nil {
		return fmt.Errorf("rsvp confirmation data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render(rsvpConfirmationTemplate, data)
	if err != nil {
		return fmt.Errorf("failed to render %s template: %w", rsvpConfirmationTemplate, err)
	}
	if err := s.mailer.Send(ctx, data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}
	return nil
}
