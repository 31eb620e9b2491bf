// Package config provides application configuration loaded from environment variables.
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	App      AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string
	ReadTimeout  int // seconds
	WriteTimeout int // seconds
	IdleTimeout  int // seconds
}

// DatabaseConfig holds the database connection string.
// A postgres:// URL or key=value DSN selects PostgreSQL; anything else is
// treated as a SQLite file path.
type DatabaseConfig struct {
	DSN string
}

// AuthConfig holds token signing settings.
// TokenSecret has no default: it must be supplied via AUTH_TOKEN_SECRET.
type AuthConfig struct {
	TokenSecret   string
	TokenTTLHours int
}

// AppConfig holds application-level settings.
type AppConfig struct {
	Dev        bool
	Migrations bool
}

// Postgres reports whether the DSN targets PostgreSQL.
func (d DatabaseConfig) Postgres() bool {
	lower := strings.ToLower(strings.TrimSpace(d.DSN))
	return strings.HasPrefix(lower, "postgres://") ||
		strings.HasPrefix(lower, "postgresql://") ||
		strings.Contains(lower, "host=")
}

// ErrMissingTokenSecret is returned by Load when AUTH_TOKEN_SECRET is unset.
var ErrMissingTokenSecret = errors.New("AUTH_TOKEN_SECRET is required and has no default")

// Load reads configuration from environment variables.
// The token secret is mandatory; everything else has a development default.
func Load() (*Config, error) {
	secret := os.Getenv("AUTH_TOKEN_SECRET")
	if secret == "" {
		return nil, ErrMissingTokenSecret
	}
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getEnvInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvInt("SERVER_WRITE_TIMEOUT", 15),
			IdleTimeout:  getEnvInt("SERVER_IDLE_TIMEOUT", 60),
		},
		Database: DatabaseConfig{
			DSN: getEnv("DATABASE_DSN", "invoicemaker.db"),
		},
		Auth: AuthConfig{
			TokenSecret:   secret,
			TokenTTLHours: getEnvInt("AUTH_TOKEN_TTL_HOURS", 24),
		},
		App: AppConfig{
			Dev:        getEnvBool("DEV", false),
			Migrations: getEnvBool("MIGRATIONS", false),
		},
	}, nil
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns the integer value of an environment variable or a default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

// getEnvBool returns the boolean value of an environment variable or a default.
// Accepts "1", "true", "yes" as true; everything else is false.
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "1" || value == "true" || value == "yes"
}
