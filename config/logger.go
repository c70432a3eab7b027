package config

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// NewLogger returns a slog.Logger for the given environment and level.
// Production uses JSON handler; otherwise text handler.
func NewLogger(app AppConfig) *slog.Logger {
	return newLogger(os.Stdout, app)
}

func newLogger(w io.Writer, app AppConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(app.LogLevel)}
	if app.IsProduction() {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// ParseLevel maps debug, info, warn and error to a slog level (default: info).
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
