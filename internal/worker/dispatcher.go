package worker

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"weddingrsvp/internal/domain"
)

const (
	defaultBatchSize    = 20
	defaultPollInterval = 2 * time.Second
	defaultLease        = time.Minute
	defaultMaxAttempts  = 10
	defaultConcurrency  = 4
	maxBackoff          = 30 * time.Second
)

// Config tunes the dispatcher. Zero values fall back to defaults.
type Config struct {
	PollInterval time.Duration
	BatchSize    int
	Lease        time.Duration
	MaxAttempts  int
	Concurrency  int
}

func (c Config) withDefaults() Config {
	if c.PollInterval <= 0 {
		c.PollInterval = defaultPollInterval
	}
	if c.BatchSize <= 0 {
		c.BatchSize = defaultBatchSize
	}
	if c.Lease <= 0 {
		c.Lease = defaultLease
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = defaultMaxAttempts
	}
	if c.Concurrency <= 0 {
		c.Concurrency = defaultConcurrency
	}
	return c
}

// Dispatcher consumes the RSVP creation-event stream and hands each event to
// the confirmation service. Delivery is at-least-once.
type Dispatcher struct {
	events  domain.RSVPEventRepository
	handler domain.ConfirmationService
	cfg     Config
	logger  *slog.Logger
	sleep   func(ctx context.Context, d time.Duration) error
}

// NewDispatcher wires a Dispatcher.
func NewDispatcher(events domain.RSVPEventRepository, handler domain.ConfirmationService, cfg Config, logger *slog.Logger) (*Dispatcher, error) {
	if events == nil {
		return nil, errors.New("event repository is required")
	}
	if handler == nil {
		return nil, errors.New("confirmation service is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		events:  events,
		handler: handler,
		cfg:     cfg.withDefaults(),
		logger:  logger,
		sleep:   sleepContext,
	}, nil
}

// Run polls until ctx is cancelled and then returns ctx.Err().
func (d *Dispatcher) Run(ctx context.Context) error {
	d.logger.InfoContext(ctx, "dispatcher started",
		"poll_interval", d.cfg.PollInterval.String(),
		"batch_size", d.cfg.BatchSize,
		"concurrency", d.cfg.Concurrency,
	)
	backoff := d.cfg.PollInterval
	for {
		if err := ctx.Err(); err != nil {
			d.logger.InfoContext(ctx, "dispatcher stopped")
			return err
		}

		n, err := d.ProcessBatch(ctx)
		if err != nil {
			if ctx.Err() != nil {
				continue
			}
			d.logger.ErrorContext(ctx, "dispatcher batch failed", "err", err)
			backoff = nextBackoff(backoff)
			_ = d.sleep(ctx, backoff)
			continue
		}
		backoff = d.cfg.PollInterval

		// A full batch suggests more work is waiting.
		if n >= d.cfg.BatchSize {
			continue
		}
		_ = d.sleep(ctx, d.cfg.PollInterval)
	}
}

// ProcessBatch claims one batch and handles it. It returns the number of
// events claimed.
func (d *Dispatcher) ProcessBatch(ctx context.Context) (int, error) {
	events, err := d.events.ClaimPending(ctx, d.cfg.BatchSize, d.cfg.Lease, d.cfg.MaxAttempts)
	if err != nil {
		return 0, err
	}
	if len(events) == 0 {
		return 0, nil
	}

	var g errgroup.Group
	g.SetLimit(d.cfg.Concurrency)
	for _, ev := range events {
		g.Go(func() error {
			d.dispatch(ctx, ev)
			return nil
		})
	}
	_ = g.Wait()
	return len(events), nil
}

func (d *Dispatcher) dispatch(ctx context.Context, ev *domain.RSVPEvent) {
	log := d.logger.With("event_id", ev.ID, "rsvp_id", ev.RSVPID, "event_type", ev.Type, "attempt", ev.Attempts)

	if ev.Type != domain.RSVPEventCreated {
		log.WarnContext(ctx, "unknown event type, dropping")
		d.markDispatched(ctx, log, ev)
		return
	}

	if err := d.handler.HandleCreated(ctx, ev.RSVPID); err != nil {
		log.WarnContext(ctx, "confirmation failed, event will be redelivered", "err", err)
		if markErr := d.events.MarkFailed(ctx, ev.ID, err.Error()); markErr != nil {
			log.ErrorContext(ctx, "failed to mark event failed", "err", markErr)
		}
		if ev.Attempts >= d.cfg.MaxAttempts {
			log.ErrorContext(ctx, "event reached max attempts and will not be redelivered")
		}
		return
	}
	d.markDispatched(ctx, log, ev)
}

func (d *Dispatcher) markDispatched(ctx context.Context, log *slog.Logger, ev *domain.RSVPEvent) {
	if err := d.events.MarkDispatched(ctx, ev.ID); err != nil {
		log.ErrorContext(ctx, "failed to mark event dispatched", "err", err)
		return
	}
	log.DebugContext(ctx, "event dispatched")
}

func nextBackoff(current time.Duration) time.Duration {
	next := current * 2
	if next > maxBackoff {
		return maxBackoff
	}
	return next
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
