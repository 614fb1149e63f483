package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppMode        string
	Port           string
	Database       DatabaseConfig
	JWT            JWTConfig
	BcryptCost     int
	AllowedOrigins string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver   string
	DSN      string
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// JWTConfig holds session token configuration
type JWTConfig struct {
	Secret   string
	Issuer   string
	TokenTTL time.Duration
}

const defaultJWTSecret = "your-secret-key-change-in-production"

// Supported database drivers
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Load reads configuration from .env file and environment variables.
// The returned bool reports whether a .env file was found.
func Load() (*Config, bool, error) {
	// .env is optional; production usually sets real environment variables
	envFileLoaded := godotenv.Load() == nil

	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, envFileLoaded, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	database, err := loadDatabaseConfig()
	if err != nil {
		return nil, envFileLoaded, err
	}

	jwtConfig, err := loadJWTConfig(appMode)
	if err != nil {
		return nil, envFileLoaded, err
	}

	cost, err := strconv.Atoi(getEnv("BCRYPT_COST", "12"))
	if err != nil {
		return nil, envFileLoaded, fmt.Errorf("invalid BCRYPT_COST: %w", err)
	}

	return &Config{
		AppMode:        appMode,
		Port:           getEnv("PORT", "8001"),
		Database:       database,
		JWT:            jwtConfig,
		BcryptCost:     cost,
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", ""),
	}, envFileLoaded, nil
}

// loadDatabaseConfig loads database config for the selected driver
func loadDatabaseConfig() (DatabaseConfig, error) {
	driver := strings.ToLower(getEnv("DB_DRIVER", DriverMySQL))

	defaultPort := "3306"
	switch driver {
	case DriverMySQL:
	case DriverPostgres:
		defaultPort = "5432"
	case DriverSQLite:
		defaultPort = ""
	default:
		return DatabaseConfig{}, fmt.Errorf("invalid DB_DRIVER: '%s' (must be mysql, postgres or sqlite)", driver)
	}

	return DatabaseConfig{
		Driver:   driver,
		DSN:      getEnv("DB_DSN", ""),
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", defaultPort),
		User:     getEnv("DB_USER", "root"),
		Password: getEnv("DB_PASS", ""),
		DBName:   getEnv("DB_NAME", "schoolconnect"),
	}, nil
}

// loadJWTConfig loads session token config; prod refuses the built-in secret
func loadJWTConfig(mode string) (JWTConfig, error) {
	days, err := strconv.Atoi(getEnv("TOKEN_TTL_DAYS", "7"))
	if err != nil || days < 1 {
		return JWTConfig{}, errors.New("invalid TOKEN_TTL_DAYS: must be a positive integer")
	}

	secret := getEnv("JWT_SECRET", defaultJWTSecret)
	if mode == "prod" && secret == defaultJWTSecret {
		return JWTConfig{}, errors.New("JWT_SECRET must be set in prod mode")
	}

	return JWTConfig{
		Secret:   secret,
		Issuer:   getEnv("JWT_ISSUER", "schoolconnect"),
		TokenTTL: time.Duration(days) * 24 * time.Hour,
	}, nil
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	if c.AllowedOrigins == "" {
		return "*"
	}
	return c.AllowedOrigins
}
