package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration, sourced from the environment
// (with an optional .env file for local development).
type Config struct {
	Port          string
	DatabasePath  string
	SessionSecret string
	BcryptCost    int
	CookieSecure  bool
	Debug         bool
	ErrorLogPath  string
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:         envOrDefault("PORT", "8080"),
		DatabasePath: envOrDefault("DATABASE_PATH", "taskr.db"),
		ErrorLogPath: envOrDefault("ERROR_LOG_PATH", "error.log"),
		BcryptCost:   12,
	}

	cfg.SessionSecret = os.Getenv("SESSION_SECRET")
	if cfg.SessionSecret == "" {
		return nil, errors.New("SESSION_SECRET is not set")
	}
	if len(cfg.SessionSecret) < 32 {
		return nil, errors.New("SESSION_SECRET must be at least 32 characters for HMAC-SHA256 security")
	}

	// Default to secure cookies; disable only for local development.
	cfg.CookieSecure = os.Getenv("COOKIE_SECURE") != "false"
	cfg.Debug = os.Getenv("DEBUG") == "true"

	if v := os.Getenv("BCRYPT_COST"); v != "" {
		cost, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid BCRYPT_COST: %w", err)
		}
		if cost < 4 || cost > 14 {
			return nil, fmt.Errorf("BCRYPT_COST must be between 4 and 14, got %d", cost)
		}
		cfg.BcryptCost = cost
	}

	return cfg, nil
}

func envOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
