package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestConnectDatabaseSQLite(t *testing.T) {
	cfg := &Config{
		AppMode: "prod",
		Database: DatabaseConfig{
			Driver: DriverSQLite,
			DSN:    "file::memory:",
		},
	}

	db, err := ConnectDatabase(cfg, zap.NewNop())
	require.NoError(t, err)

	assert.NoError(t, db.HealthCheck(context.Background()))
	require.NoError(t, db.Close())
	assert.Error(t, db.HealthCheck(context.Background()))
}

func TestNilDatabase(t *testing.T) {
	var db *Database
	assert.NoError(t, db.Close())
	assert.Error(t, db.HealthCheck(context.Background()))
}

func TestConnectDatabaseUnknownDriver(t *testing.T) {
	_, err := ConnectDatabase(&Config{Database: DatabaseConfig{Driver: "oracle"}}, zap.NewNop())
	assert.Error(t, err)
}
