package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"weddingrsvp/config"
	"weddingrsvp/internal/app"
	"weddingrsvp/internal/database"
)

func main() {
	email := flag.String("email", envOr("ADMIN_EMAIL", "admin@wedding.hu"), "admin email")
	password := flag.String("password", os.Getenv("ADMIN_PASSWORD"), "password, required when the user does not exist yet (min 8 characters)")
	name := flag.String("name", envOr("ADMIN_NAME", "Wedding Admin"), "display name for a new user")
	flag.Parse()

	if err := run(*email, *password, *name); err != nil {
		fmt.Fprintf(os.Stderr, "setup-admin failed: %v\n", err)
		os.Exit(1)
	}
}

func run(email, password, name string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := config.NewLogger(cfg.App).With("service", "setup-admin")

	ctx := context.Background()
	db, err := database.Open(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer db.Close()

	svc, err := app.NewServices(cfg, db, nil, logger)
	if err != nil {
		return err
	}
	user, created, err := svc.Admin.EnsureAdmin(ctx, email, password, name)
	if err != nil {
		return err
	}
	if created {
		logger.Info("created admin user", "user_id", user.ID, "email", user.Email)
	} else {
		logger.Info("existing user granted admin access", "user_id", user.ID, "email", user.Email)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
