// @title Wedding RSVP API
// @version 1.0
// @description Guest RSVP submission, confirmation emails and the hosts' admin dashboard.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the admin JWT.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"weddingrsvp/config"
	_ "weddingrsvp/docs"
	"weddingrsvp/internal/app"
	"weddingrsvp/internal/database"
	deliveryhttp "weddingrsvp/internal/delivery/http"
	"weddingrsvp/internal/delivery/http/controllers"
	"weddingrsvp/internal/metrics"
	"weddingrsvp/internal/migrate"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg.App)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server exited with error", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	db, err := database.Open(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("error closing database", "err", err)
		}
	}()

	if cfg.DB.AutoMigrate {
		if err := migrate.Run(ctx, db, "up"); err != nil {
			return err
		}
		logger.Info("migrations applied")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewRSVPMetrics(reg)

	svc, err := app.NewServices(cfg, db, m, logger)
	if err != nil {
		return err
	}
	loc, err := cfg.Event.Location()
	if err != nil {
		return err
	}

	router := deliveryhttp.NewRouter(deliveryhttp.RouterConfig{
		Logger:         logger,
		RSVP:           controllers.NewRSVPController(logger, svc.RSVP),
		Admin:          controllers.NewAdminController(logger, svc.Admin, svc.Stats, svc.RSVP, loc),
		Authorizer:     svc.Admin,
		Gatherer:       reg,
		AllowedOrigins: cfg.App.AllowedOrigins,
	})
	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	var wg sync.WaitGroup
	defer wg.Wait()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if cfg.Dispatch.InServer {
		dispatcher, err := app.NewDispatcher(cfg.Dispatch, svc, logger)
		if err != nil {
			return err
		}
		wg.Go(func() {
			if err := dispatcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("dispatcher stopped", "err", err)
			}
		})
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", cfg.App.Environment)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		logger.Info("shutting down")
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	return srv.Shutdown(shutdownCtx)
}
