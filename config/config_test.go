package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	// production skips .env loading so tests only see t.Setenv values
	t.Setenv("GO_ENV", EnvProduction)
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.App.IsProduction())
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.App.AllowedOrigins)
	assert.Equal(t, "test-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, 12*time.Hour, cfg.Auth.TokenExpiry)
	assert.Equal(t, "noop", cfg.Mail.Provider)
	assert.Equal(t, "Vivien & Martin", cfg.Event.CoupleNames)
	assert.True(t, cfg.Event.RSVPDeadline.IsZero())
	assert.Equal(t, time.Date(2026, 5, 7, 13, 0, 0, 0, time.UTC), cfg.Event.Date.UTC())
	assert.True(t, cfg.Dispatch.InServer)
	assert.Equal(t, 2*time.Second, cfg.Dispatch.PollInterval)
	assert.Equal(t, 10*time.Second, cfg.Dispatch.SendTimeout)
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com,https://b.example.com")
	t.Setenv("RSVP_DEADLINE", "2026-04-07T23:59:59+02:00")
	t.Setenv("DISPATCH_IN_SERVER", "false")
	t.Setenv("DISPATCH_LEASE", "90s")
	t.Setenv("MAIL_PROVIDER", "ses")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.App.AllowedOrigins)
	assert.Equal(t, time.Date(2026, 4, 7, 21, 59, 59, 0, time.UTC), cfg.Event.RSVPDeadline.UTC())
	assert.False(t, cfg.Dispatch.InServer)
	assert.Equal(t, 90*time.Second, cfg.Dispatch.Lease)
	assert.Equal(t, "ses", cfg.Mail.Provider)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing jwt secret", env: map[string]string{"JWT_SECRET": ""}},
		{name: "bad timezone", env: map[string]string{"EVENT_TIMEZONE": "Mars/Olympus"}},
		{name: "bad duration", env: map[string]string{"DISPATCH_POLL_INTERVAL": "soon"}},
		{name: "bad deadline", env: map[string]string{"RSVP_DEADLINE": "2026-04-07"}},
		{name: "non-positive expiry", env: map[string]string{"JWT_EXPIRY": "0s"}},
		{name: "send timeout exceeds lease", env: map[string]string{"DISPATCH_SEND_TIMEOUT": "2m"}},
		{name: "send timeout equals lease", env: map[string]string{"DISPATCH_SEND_TIMEOUT": "30s", "DISPATCH_LEASE": "30s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
				if v == "" {
					require.NoError(t, os.Unsetenv(k))
				}
			}

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestEventConfig_Location(t *testing.T) {
	loc, err := EventConfig{Timezone: "Europe/Budapest"}.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Budapest", loc.String())
}

func TestNewLogger(t *testing.T) {
	t.Run("production writes json", func(t *testing.T) {
		var buf bytes.Buffer
		logger := newLogger(&buf, AppConfig{Environment: EnvProduction, LogLevel: "info"})
		logger.Info("hello", "k", "v")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "hello", entry["msg"])
		assert.Equal(t, "v", entry["k"])
	})

	t.Run("level filters", func(t *testing.T) {
		var buf bytes.Buffer
		logger := newLogger(&buf, AppConfig{Environment: EnvDevelopment, LogLevel: "warn"})
		logger.Info("dropped")
		logger.Warn("kept")

		assert.NotContains(t, buf.String(), "dropped")
		assert.Contains(t, buf.String(), "kept")
	})
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel(" WARN "))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}
