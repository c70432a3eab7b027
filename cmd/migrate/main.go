package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"weddingrsvp/config"
	"weddingrsvp/internal/database"
	"weddingrsvp/internal/migrate"
)

func main() {
	cmd := flag.String("cmd", "up", "migration command: up|up-by-one|up-to|down|down-to|redo|reset|status|version")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg.App).With("service", "migrate", "cmd", *cmd)

	ctx := context.Background()
	db, err := database.Open(ctx, cfg.DB)
	if err != nil {
		logger.Error("resource not working: database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := migrate.Run(ctx, db, *cmd, flag.Args()...); err != nil {
		fmt.Fprintf(os.Stderr, "migrate failed: %v\n", err)
		_ = db.Close()
		os.Exit(1)
	}
	logger.Info("migrate finished")
}
