package service

import (
	"context"
	"errors"
	"time"

	"github.com/mzaitsev/authd/internal/common/clock"
	commoncrypto "github.com/mzaitsev/authd/internal/common/crypto"
	commonerrors "github.com/mzaitsev/authd/internal/common/errors"
	"github.com/mzaitsev/authd/internal/common/logger"
	userdomain "github.com/mzaitsev/authd/internal/user/domain"
	userrepo "github.com/mzaitsev/authd/internal/user/repository"
)

// AuthService sequences validation, hashing and store access for signup and
// login, and issues session tokens on success.
type AuthService struct {
	repo      userrepo.Repository
	hasher    commoncrypto.PasswordHasher
	idGen     commoncrypto.IDGenerator
	validator CredentialValidator
	issuer    *TokenIssuer
	clock     clock.Clock
	log       *logger.Logger
}

type AuthServiceDeps struct {
	Repo        userrepo.Repository
	Hasher      commoncrypto.PasswordHasher
	IDGenerator commoncrypto.IDGenerator
	Clock       clock.Clock
	Log         *logger.Logger
}

type AuthServiceConfig struct {
	JWTSecret         string
	TokenTTL          time.Duration
	PasswordMinLength int
}

func NewAuthService(deps AuthServiceDeps, cfg AuthServiceConfig) *AuthService {
	return &AuthService{
		repo:      deps.Repo,
		hasher:    deps.Hasher,
		idGen:     deps.IDGenerator,
		validator: NewCredentialValidator(cfg.PasswordMinLength),
		issuer:    NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL, deps.Clock),
		clock:     deps.Clock,
		log:       deps.Log,
	}
}

type SignupInput struct {
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthResult struct {
	UserID string
	Email  string
	Token  string
}

func (s *AuthService) Signup(ctx context.Context, input SignupInput) (AuthResult, error) {
	s.log.WithFields(ctx, logger.Fields{
		"email":  input.Email,
		"action": "signup_attempt",
	}).Info("signup attempt")

	if err := s.validator.ValidateSignup(input.Email, input.Password); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"email":  input.Email,
			"action": "signup_validation_failed",
		}).Warnf("signup validation failed: %v", err)
		incrementSignups("validation_failed")
		return AuthResult{}, err
	}

	// Known duplicates are rejected before hashing. Create below still
	// closes the race window between two concurrent signups.
	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		s.log.WithFields(ctx, logger.Fields{
			"email":  input.Email,
			"action": "signup_duplicate",
		}).Warn("signup failed: already exists")
		incrementSignups("duplicate")
		return AuthResult{}, ErrDuplicateAccount
	} else if !errors.Is(err, userrepo.ErrUserNotFound) {
		s.log.WithFields(ctx, logger.Fields{
			"email":  input.Email,
			"action": "signup_lookup_failed",
		}).Errorf("signup failed: %v", err)
		incrementSignups("error")
		return AuthResult{}, newInternalError("STORE_ERROR", "Failed to check existing user", err)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"email":  input.Email,
			"action": "signup_hash_failed",
		}).Errorf("signup failed: password hash error: %v", err)
		incrementSignups("error")
		return AuthResult{}, newInternalError("HASH_ERROR", "Failed to process credentials", err)
	}

	id, err := s.idGen.NewID()
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"email":  input.Email,
			"action": "signup_id_generation_failed",
		}).Errorf("signup failed: id generation error: %v", err)
		incrementSignups("error")
		return AuthResult{}, newInternalError("ID_ERROR", "Failed to allocate user id", err)
	}

	user := userdomain.User{
		ID:           userdomain.ID(id),
		Email:        input.Email,
		PasswordHash: hash,
		CreatedAt:    s.clock.Now(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, userrepo.ErrEmailAlreadyExists) {
			s.log.WithFields(ctx, logger.Fields{
				"email":  input.Email,
				"action": "signup_duplicate",
			}).Warn("signup failed: concurrent registration landed first")
			incrementSignups("duplicate")
			return AuthResult{}, ErrDuplicateAccount
		}
		s.log.WithFields(ctx, logger.Fields{
			"email":  input.Email,
			"action": "signup_create_failed",
		}).Errorf("signup failed: %v", err)
		incrementSignups("error")
		return AuthResult{}, newInternalError("STORE_ERROR", "Failed to create user", err)
	}

	token, err := s.issuer.Issue(user)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"email":   input.Email,
			"user_id": string(user.ID),
			"action":  "signup_token_issue_failed",
		}).Errorf("signup failed: token issue error: %v", err)
		incrementSignups("error")
		return AuthResult{}, newInternalError("TOKEN_ERROR", "Failed to issue token", err)
	}

	s.log.WithFields(ctx, logger.Fields{
		"email":   user.Email,
		"user_id": string(user.ID),
		"action":  "signup_success",
	}).Info("signup success")
	incrementSignups("success")

	return AuthResult{
		UserID: string(user.ID),
		Email:  user.Email,
		Token:  token,
	}, nil
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (AuthResult, error) {
	s.log.WithFields(ctx, logger.Fields{
		"email":  input.Email,
		"action": "login_attempt",
	}).Info("login attempt")

	if err := s.validator.ValidateLogin(input.Email, input.Password); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"email":  input.Email,
			"action": "login_validation_failed",
		}).Warnf("login validation failed: %v", err)
		incrementLogins("validation_failed")
		return AuthResult{}, err
	}

	user, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, userrepo.ErrUserNotFound) {
			s.log.WithFields(ctx, logger.Fields{
				"email":  input.Email,
				"action": "login_user_not_found",
			}).Warn("login failed: not found")
			incrementLogins("invalid_credentials")
			return AuthResult{}, ErrInvalidCredentials
		}
		s.log.WithFields(ctx, logger.Fields{
			"email":  input.Email,
			"action": "login_fetch_failed",
		}).Errorf("login failed: %v", err)
		incrementLogins("error")
		return AuthResult{}, newInternalError("STORE_ERROR", "Failed to fetch user", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, input.Password); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"email":  input.Email,
			"action": "login_invalid_password",
		}).Warn("login failed: invalid password")
		incrementLogins("invalid_credentials")
		return AuthResult{}, ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"email":   input.Email,
			"user_id": string(user.ID),
			"action":  "login_token_issue_failed",
		}).Errorf("login failed: token issue error: %v", err)
		incrementLogins("error")
		return AuthResult{}, newInternalError("TOKEN_ERROR", "Failed to issue token", err)
	}

	s.log.WithFields(ctx, logger.Fields{
		"email":   user.Email,
		"user_id": string(user.ID),
		"action":  "login_success",
	}).Info("login success")
	incrementLogins("success")

	return AuthResult{
		UserID: string(user.ID),
		Email:  user.Email,
		Token:  token,
	}, nil
}

// Profile resolves the authenticated identity back to the stored record.
// The account may have disappeared via a store reset since the token was
// issued; that surfaces as ErrUserNotFound.
func (s *AuthService) Profile(ctx context.Context, email string) (userdomain.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userrepo.ErrUserNotFound) {
			return userdomain.User{}, commonerrors.ErrUserNotFound
		}
		return userdomain.User{}, newInternalError("STORE_ERROR", "Failed to fetch user", err)
	}
	return user, nil
}
