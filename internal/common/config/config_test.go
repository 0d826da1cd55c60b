package config_test

import (
	"testing"
	"time"

	"github.com/mzaitsev/authd/internal/common/config"
	"github.com/mzaitsev/authd/internal/common/constants"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"AUTH_HTTP_PORT",
		"JWT_SECRET",
		"AUTH_TOKEN_TTL",
		"AUTH_BCRYPT_COST",
		"AUTH_PASSWORD_MIN_LENGTH",
		"AUTH_REQUEST_TIMEOUT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := config.Load()

	if cfg.HTTPPort != "3000" {
		t.Errorf("expected port 3000, got %s", cfg.HTTPPort)
	}
	if cfg.JWTSecret != constants.DefaultJWTSecret {
		t.Errorf("expected development default secret, got %q", cfg.JWTSecret)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("expected 24h token ttl, got %v", cfg.TokenTTL)
	}
	if cfg.BcryptCost != 10 {
		t.Errorf("expected bcrypt cost 10, got %d", cfg.BcryptCost)
	}
	if cfg.PasswordMinLength != 6 {
		t.Errorf("expected min password length 6, got %d", cfg.PasswordMinLength)
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("AUTH_HTTP_PORT", "8085")
	t.Setenv("JWT_SECRET", "prod-secret-0123456789-0123456789")
	t.Setenv("AUTH_TOKEN_TTL", "15m")
	t.Setenv("AUTH_BCRYPT_COST", "12")
	t.Setenv("AUTH_PASSWORD_MIN_LENGTH", "10")

	cfg := config.Load()

	if cfg.HTTPPort != "8085" {
		t.Errorf("expected port 8085, got %s", cfg.HTTPPort)
	}
	if cfg.JWTSecret != "prod-secret-0123456789-0123456789" {
		t.Errorf("unexpected secret: %q", cfg.JWTSecret)
	}
	if cfg.TokenTTL != 15*time.Minute {
		t.Errorf("expected 15m token ttl, got %v", cfg.TokenTTL)
	}
	if cfg.BcryptCost != 12 {
		t.Errorf("expected bcrypt cost 12, got %d", cfg.BcryptCost)
	}
	if cfg.PasswordMinLength != 10 {
		t.Errorf("expected min password length 10, got %d", cfg.PasswordMinLength)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("AUTH_TOKEN_TTL", "soon")
	t.Setenv("AUTH_BCRYPT_COST", "lots")

	cfg := config.Load()

	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("expected fallback token ttl, got %v", cfg.TokenTTL)
	}
	if cfg.BcryptCost != 10 {
		t.Errorf("expected fallback bcrypt cost, got %d", cfg.BcryptCost)
	}
}
