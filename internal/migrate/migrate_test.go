package migrate

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weddingrsvp/migrations"
)

func TestEmbeddedMigrationsAreGooseFiles(t *testing.T) {
	files, err := fs.Glob(migrations.FS, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, name := range files {
		body, err := fs.ReadFile(migrations.FS, name)
		require.NoError(t, err)
		text := string(body)
		assert.True(t, strings.HasPrefix(text, "-- +goose Up"), name)
		assert.Contains(t, text, "-- +goose Down", name)
	}
}

func TestEmbeddedMigrationsCreateTables(t *testing.T) {
	var all strings.Builder
	files, err := fs.Glob(migrations.FS, "*.sql")
	require.NoError(t, err)
	for _, name := range files {
		body, err := fs.ReadFile(migrations.FS, name)
		require.NoError(t, err)
		all.Write(body)
	}
	for _, table := range []string{"users", "admins", "rsvps", "rsvp_events"} {
		assert.Contains(t, all.String(), "CREATE TABLE IF NOT EXISTS "+table+" (")
	}
}

func TestRunRequiresDB(t *testing.T) {
	err := Run(context.Background(), nil, "up")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db is required")
}
