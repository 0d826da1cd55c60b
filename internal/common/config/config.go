package config

import (
	"os"
	"strconv"
	"time"

	"github.com/mzaitsev/authd/internal/common/constants"
)

// Config carries everything the service reads from the environment. Every
// knob has a working default so the binary runs with no configuration at all;
// JWT_SECRET must be overridden for anything beyond local development.
type Config struct {
	HTTPPort          string
	JWTSecret         string
	TokenTTL          time.Duration
	BcryptCost        int
	PasswordMinLength int
	RequestTimeout    time.Duration
}

func Load() Config {
	return Config{
		HTTPPort:          getEnv("AUTH_HTTP_PORT", constants.DefaultHTTPPort),
		JWTSecret:         getEnv("JWT_SECRET", constants.DefaultJWTSecret),
		TokenTTL:          getDurationEnv("AUTH_TOKEN_TTL", constants.DefaultTokenTTL),
		BcryptCost:        getIntEnv("AUTH_BCRYPT_COST", constants.DefaultBcryptCost),
		PasswordMinLength: getIntEnv("AUTH_PASSWORD_MIN_LENGTH", constants.DefaultPasswordMinLength),
		RequestTimeout:    getDurationEnv("AUTH_REQUEST_TIMEOUT", constants.DefaultRequestTimeout),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func getIntEnv(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return i
}
