package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"
)

// Config holds the application configuration.
type Config struct {
	ServerPort         int
	DatabasePath       string
	JWTSecret          string
	TokenTTL           time.Duration
	EventRetention     time.Duration
	EventPruneSchedule string
}

const devSecret = "dev-secret-change-me"

// Load loads configuration from environment variables or sets defaults.
func Load() (*Config, error) {
	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT %q: %w", portStr, err)
	}

	ttlStr := getEnv("TOKEN_TTL", "168h")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL %q: %w", ttlStr, err)
	}

	retentionStr := getEnv("EVENT_RETENTION", "720h")
	retention, err := time.ParseDuration(retentionStr)
	if err != nil {
		return nil, fmt.Errorf("invalid EVENT_RETENTION %q: %w", retentionStr, err)
	}

	pruneSchedule := getEnv("EVENT_PRUNE_SCHEDULE", "0 3 * * *")
	if _, err := cron.ParseStandard(pruneSchedule); err != nil {
		return nil, fmt.Errorf("invalid EVENT_PRUNE_SCHEDULE %q: %w", pruneSchedule, err)
	}

	secret := getEnv("JWT_SECRET", devSecret)
	if secret == devSecret && os.Getenv("APP_ENV") == "production" {
		return nil, fmt.Errorf("JWT_SECRET must be set in production")
	}

	return &Config{
		ServerPort:         port,
		DatabasePath:       getEnv("DATABASE_PATH", "./staffdesk.db"),
		JWTSecret:          secret,
		TokenTTL:           ttl,
		EventRetention:     retention,
		EventPruneSchedule: pruneSchedule,
	}, nil
}

// UsesDevSecret reports whether the signing secret is the insecure default.
func (c *Config) UsesDevSecret() bool {
	return c.JWTSecret == devSecret
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
