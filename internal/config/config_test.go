package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_MODE", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("TOKEN_TTL_DAYS", "")
	t.Setenv("BCRYPT_COST", "")
	t.Setenv("DB_PORT", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	cfg, _, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsDev())
	assert.Equal(t, DriverMySQL, cfg.Database.Driver)
	assert.Equal(t, "3306", cfg.Database.Port)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.TokenTTL)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, "*", cfg.GetAllowedOrigins())
}

func TestLoadPostgres(t *testing.T) {
	t.Setenv("APP_MODE", "dev")
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("DB_PORT", "")

	cfg, _, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "5432", cfg.Database.Port)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("APP_MODE", "staging")
	_, _, err := Load()
	assert.Error(t, err)

	t.Setenv("APP_MODE", "dev")
	t.Setenv("DB_DRIVER", "oracle")
	_, _, err = Load()
	assert.Error(t, err)

	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("TOKEN_TTL_DAYS", "0")
	_, _, err = Load()
	assert.Error(t, err)
}

func TestProdRequiresSecret(t *testing.T) {
	t.Setenv("APP_MODE", "prod")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("JWT_SECRET", "")
	_, _, err := Load()
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "real-secret")
	t.Setenv("ALLOWED_ORIGINS", "https://portal.example.org")
	cfg, _, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProd())
	assert.Equal(t, "https://portal.example.org", cfg.GetAllowedOrigins())
}

func TestBuildDSN(t *testing.T) {
	d := DatabaseConfig{Driver: DriverMySQL, Host: "h", Port: "1", User: "u", Password: "p", DBName: "n"}
	assert.Equal(t, "u:p@tcp(h:1)/n?charset=utf8mb4&parseTime=True&loc=UTC", buildDSN(d))

	d.Driver = DriverPostgres
	assert.Equal(t, "host=h port=1 user=u password=p dbname=n sslmode=disable TimeZone=UTC", buildDSN(d))

	d.Driver = DriverSQLite
	assert.Equal(t, "n.db", buildDSN(d))

	d.DSN = "override"
	assert.Equal(t, "override", buildDSN(d))
}
