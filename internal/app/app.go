// Package app wires configuration, storage and adapters into the services
// shared by the executables.
package app

import (
	"database/sql"
	"fmt"
	"log/slog"

	"weddingrsvp/config"
	"weddingrsvp/internal/adapters/auth"
	"weddingrsvp/internal/adapters/email"
	"weddingrsvp/internal/domain"
	"weddingrsvp/internal/metrics"
	"weddingrsvp/internal/repository/postgres"
	"weddingrsvp/internal/services"
	"weddingrsvp/internal/worker"
)

// Services holds the application services built from one database handle.
type Services struct {
	RSVP         domain.RSVPService
	Stats        domain.StatsService
	Admin        domain.AdminService
	Confirmation domain.ConfirmationService
	Events       domain.RSVPEventRepository
}

// EventDetails converts the event configuration for the email templates.
func EventDetails(c config.EventConfig) domain.EventDetails {
	return domain.EventDetails{
		CoupleNames:  c.CoupleNames,
		Date:         c.Date,
		VenueName:    c.VenueName,
		VenueAddress: c.VenueAddress,
	}
}

// MailerConfig maps the mail settings onto the email adapter's config.
func MailerConfig(c config.MailConfig) email.MailerConfig {
	return email.MailerConfig{
		Provider:    c.Provider,
		FromAddress: c.FromAddress,
		FromName:    c.FromName,
		SES: email.SESConfig{
			Region:             c.AWSRegion,
			AccessKeyID:        c.AWSAccessKeyID,
			SecretAccessKey:    c.AWSSecretAccessKey,
			InsecureSkipVerify: c.SESInsecureSkipVerify,
		},
	}
}

// NewServices builds every service on top of db. m may be nil.
func NewServices(cfg *config.Config, db *sql.DB, m *metrics.RSVPMetrics, logger *slog.Logger) (*Services, error) {
	mailer, err := email.NewMailer(MailerConfig(cfg.Mail), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build mailer: %w", err)
	}
	loc, err := cfg.Event.Location()
	if err != nil {
		return nil, err
	}
	event := EventDetails(cfg.Event)
	event.Date = event.Date.In(loc)

	rsvpRepo := postgres.NewRSVPRepository(db)
	userRepo := postgres.NewUserRepository(db)
	adminRepo := postgres.NewAdminRepository(db)

	admin := services.NewAdminService(
		userRepo,
		adminRepo,
		auth.NewBcryptHasher(cfg.Auth.BcryptCost),
		auth.NewJWTIssuer(cfg.Auth.JWTSecret),
		auth.NewJWTVerifier(cfg.Auth.JWTSecret),
		cfg.Auth.TokenExpiry,
	)
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())

	return &Services{
		RSVP:         services.NewRSVPService(rsvpRepo, cfg.Event.RSVPDeadline, m),
		Stats:        services.NewStatsService(admin, rsvpRepo),
		Admin:        admin,
		Confirmation: services.NewConfirmationService(rsvpRepo, emailService, event, cfg.Dispatch.SendTimeout, m, logger),
		Events:       postgres.NewRSVPEventRepository(db),
	}, nil
}

// NewDispatcher builds the confirmation dispatcher from the dispatch settings.
func NewDispatcher(cfg config.DispatchConfig, svc *Services, logger *slog.Logger) (*worker.Dispatcher, error) {
	return worker.NewDispatcher(svc.Events, svc.Confirmation, worker.Config{
		PollInterval: cfg.PollInterval,
		BatchSize:    cfg.BatchSize,
		Lease:        cfg.Lease,
		MaxAttempts:  cfg.MaxAttempts,
		Concurrency:  cfg.Concurrency,
	}, logger.With("component", "dispatcher"))
}
