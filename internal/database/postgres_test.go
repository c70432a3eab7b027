package database

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weddingrsvp/config"
)

func TestOpen_RequiresURL(t *testing.T) {
	_, err := Open(context.Background(), config.DBConfig{})
	assert.Error(t, err)
}

func TestApplyPoolSettings(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	applyPoolSettings(db, config.DBConfig{MaxOpenConns: 7, MaxIdleConns: 3, ConnMaxLifetime: time.Minute})

	assert.Equal(t, 7, db.Stats().MaxOpenConnections)
}
