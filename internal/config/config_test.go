package config_test

import (
	"strings"
	"testing"

	"taskr/internal/config"
)

const validSecret = "0123456789abcdef0123456789abcdef"

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SESSION_SECRET", validSecret)
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("COOKIE_SECURE", "")
	t.Setenv("DEBUG", "")
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_PATH", "")
	t.Setenv("BCRYPT_COST", "")
	t.Setenv("ERROR_LOG_PATH", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.DatabasePath != "taskr.db" {
		t.Fatalf("expected default database path, got %s", cfg.DatabasePath)
	}
	if cfg.BcryptCost != 12 {
		t.Fatalf("expected default bcrypt cost 12, got %d", cfg.BcryptCost)
	}
	if !cfg.CookieSecure {
		t.Fatal("expected secure cookies by default")
	}
	if cfg.Debug {
		t.Fatal("expected debug off by default")
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")

	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for missing SESSION_SECRET")
	}
}

func TestLoad_ShortSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "too-short")

	_, err := config.Load()
	if err == nil {
		t.Fatal("expected error for short SESSION_SECRET")
	}
	if !strings.Contains(err.Error(), "32") {
		t.Fatalf("expected length requirement in error, got %v", err)
	}
}

func TestLoad_BcryptCostBounds(t *testing.T) {
	setRequiredEnv(t)

	t.Setenv("BCRYPT_COST", "3")
	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for cost below 4")
	}

	t.Setenv("BCRYPT_COST", "15")
	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for cost above 14")
	}

	t.Setenv("BCRYPT_COST", "not-a-number")
	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for non-numeric cost")
	}

	t.Setenv("BCRYPT_COST", "10")
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BcryptCost != 10 {
		t.Fatalf("expected cost 10, got %d", cfg.BcryptCost)
	}
}

func TestLoad_CookieSecureOptOut(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("COOKIE_SECURE", "false")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CookieSecure {
		t.Fatal("expected insecure cookies when COOKIE_SECURE=false")
	}
}
