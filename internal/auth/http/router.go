package http

import (
	"context"
	"net/http"
	"time"

	"github.com/mzaitsev/authd/internal/auth/service"
	"github.com/mzaitsev/authd/internal/common/config"
	commonerrors "github.com/mzaitsev/authd/internal/common/errors"
	commonhttp "github.com/mzaitsev/authd/internal/common/http"
	"github.com/mzaitsev/authd/internal/common/jwtverify"
	"github.com/mzaitsev/authd/internal/common/logger"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authData struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Token string `json:"token"`
}

type profileData struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type Handler struct {
	auth           *service.AuthService
	requestTimeout time.Duration
	log            *logger.Logger
}

func NewHandler(auth *service.AuthService, cfg config.Config, log *logger.Logger) http.Handler {
	h := &Handler{
		auth:           auth,
		requestTimeout: cfg.RequestTimeout,
		log:            log,
	}

	verify := jwtverify.Middleware(cfg.JWTSecret, log)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", commonhttp.HealthHandler(log))
	mux.HandleFunc("/signup", h.signup)
	mux.HandleFunc("/login", h.login)
	mux.Handle("/profile", verify(http.HandlerFunc(h.profile)))
	return mux
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		commonhttp.WriteError(w, http.StatusMethodNotAllowed, commonhttp.CodeMethodNotAllowed, "Method not allowed")
		return
	}

	var req credentialsRequest
	if err := commonhttp.DecodeJSON(r, &req); err != nil {
		h.log.Warnf("signup failed: invalid json: %v", err)
		commonhttp.WriteError(w, http.StatusBadRequest, commonhttp.CodeInvalidJSON, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	result, err := h.auth.Signup(ctx, service.SignupInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	commonhttp.WriteSuccess(w, http.StatusCreated, "User created successfully", authData{
		ID:    result.UserID,
		Email: result.Email,
		Token: result.Token,
	})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		commonhttp.WriteError(w, http.StatusMethodNotAllowed, commonhttp.CodeMethodNotAllowed, "Method not allowed")
		return
	}

	var req credentialsRequest
	if err := commonhttp.DecodeJSON(r, &req); err != nil {
		h.log.Warnf("login failed: invalid json: %v", err)
		commonhttp.WriteError(w, http.StatusBadRequest, commonhttp.CodeInvalidJSON, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	result, err := h.auth.Login(ctx, service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	commonhttp.WriteSuccess(w, http.StatusOK, "Login successful", authData{
		ID:    result.UserID,
		Email: result.Email,
		Token: result.Token,
	})
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		commonhttp.WriteError(w, http.StatusMethodNotAllowed, commonhttp.CodeMethodNotAllowed, "Method not allowed")
		return
	}

	claims, ok := jwtverify.FromContext(r.Context())
	if !ok {
		commonhttp.WriteDomainError(w, jwtverify.ErrInvalidToken)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	user, err := h.auth.Profile(ctx, claims.Email)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	commonhttp.WriteSuccess(w, http.StatusOK, "Profile retrieved successfully", profileData{
		ID:        string(user.ID),
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	})
}

// writeError maps service failures onto the wire envelope. Anything outside
// the domain taxonomy is logged and collapsed to an opaque 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	de, ok := commonerrors.AsDomainError(err)
	if !ok || de.Category() == commonerrors.CategoryInternal {
		h.log.WithFields(r.Context(), logger.Fields{
			"path":   r.URL.Path,
			"action": "internal_error",
		}).Errorf("request failed: %v", err)
	}
	commonhttp.WriteDomainError(w, err)
}
