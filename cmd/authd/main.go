package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	authhttp "github.com/mzaitsev/authd/internal/auth/http"
	"github.com/mzaitsev/authd/internal/auth/service"
	"github.com/mzaitsev/authd/internal/common/clock"
	"github.com/mzaitsev/authd/internal/common/config"
	"github.com/mzaitsev/authd/internal/common/constants"
	commoncrypto "github.com/mzaitsev/authd/internal/common/crypto"
	commonhttp "github.com/mzaitsev/authd/internal/common/http"
	"github.com/mzaitsev/authd/internal/common/logger"
	srv "github.com/mzaitsev/authd/internal/common/server"
	userrepo "github.com/mzaitsev/authd/internal/user/repository"
)

func main() {
	log, err := logger.New(os.Getenv("LOG_DIR"), "authd", os.Getenv("LOG_LEVEL"))
	if err != nil {
		os.Stderr.WriteString(fmt.Sprintf("failed to initialize logger: %v\n", err))
		os.Exit(1)
	}

	cfg := config.Load()
	if cfg.JWTSecret == constants.DefaultJWTSecret {
		log.Warn("JWT_SECRET not set, using development default")
	}

	repo := userrepo.NewMemoryRepository()
	authService := service.NewAuthService(
		service.AuthServiceDeps{
			Repo:        repo,
			Hasher:      commoncrypto.NewBcryptHasher(cfg.BcryptCost),
			IDGenerator: commoncrypto.NewUUIDGenerator(),
			Clock:       clock.NewRealClock(),
			Log:         log,
		},
		service.AuthServiceConfig{
			JWTSecret:         cfg.JWTSecret,
			TokenTTL:          cfg.TokenTTL,
			PasswordMinLength: cfg.PasswordMinLength,
		},
	)

	handler := authhttp.NewHandler(authService, cfg, log)

	mux := http.NewServeMux()
	mux.Handle("/", handler)
	mux.Handle("/metrics", promhttp.Handler())

	rateLimiter := commonhttp.NewRateLimiter(
		constants.RateLimitRequestsPerSecond,
		constants.RateLimitBurst,
	)
	baseHandler := commonhttp.BuildBaseHandler(log, mux)

	limited := rateLimiter.Middleware()(baseHandler)
	finalHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" || r.URL.Path == "/metrics" {
			baseHandler.ServeHTTP(w, r)
			return
		}
		limited.ServeHTTP(w, r)
	})

	log.Infof("endpoints: POST /signup, POST /login, GET /profile (Bearer token required)")

	serverConfig := srv.DefaultServerConfig(cfg.HTTPPort)
	server := srv.NewServer(serverConfig, finalHandler)

	srv.StartWithGracefulShutdown(server, log, "authd")
}
