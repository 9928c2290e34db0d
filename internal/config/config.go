package config

import (
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Config holds the application configuration, loaded once at startup and
// passed explicitly to the components that need it.
type Config struct {
	ServerPort  int
	DatabaseDSN string
	JWTSecret   []byte
	TokenTTL    time.Duration
	StaticDir   string
}

// Load loads configuration from environment variables or sets defaults.
func Load() (*Config, error) {
	portStr := getEnv("PORT", "3000")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, err
	}

	// Without an explicit secret, sign with a random per-process key. Tokens
	// then stop verifying across restarts, which is acceptable for development.
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = uuid.NewString()
	}

	return &Config{
		ServerPort:  port,
		DatabaseDSN: getEnv("DATABASE_DSN", "file:auroramind?mode=memory&cache=shared&_pragma=foreign_keys(1)"),
		JWTSecret:   []byte(secret),
		TokenTTL:    24 * time.Hour,
		StaticDir:   getEnv("STATIC_DIR", "./web"),
	}, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
