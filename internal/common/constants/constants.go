package constants

import "time"

type ContextKey string

// TraceIDKey carries the request trace id between middleware and the logger.
const TraceIDKey ContextKey = "trace_id"

const (
	DefaultHTTPPort          = "3000"
	DefaultTokenTTL          = 24 * time.Hour
	DefaultBcryptCost        = 10
	DefaultPasswordMinLength = 6
	DefaultRequestTimeout    = 5 * time.Second

	// Development fallback only; real deployments override JWT_SECRET.
	DefaultJWTSecret = "dev-secret-change-me-before-deploying-anywhere"

	DefaultMaxRequestSize = 1 << 20

	ServerReadHeaderTimeout = 5 * time.Second
	ServerReadTimeout       = 15 * time.Second
	ServerWriteTimeout      = 15 * time.Second
	ServerIdleTimeout       = 60 * time.Second

	RateLimitRequestsPerSecond = 10.0
	RateLimitBurst             = 20
	RateLimitCleanupInterval   = 5 * time.Minute
)
