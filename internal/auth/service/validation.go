package service

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	commonerrors "github.com/mzaitsev/authd/internal/common/errors"
)

// Local-part@domain with a dotted domain. Kept loose on purpose: accounts
// created under this rule must keep logging in unchanged.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// CredentialValidator rejects malformed signup/login input before any store
// access or hashing happens.
type CredentialValidator struct {
	validate            *validator.Validate
	minPasswordLength   int
	errPasswordTooShort commonerrors.DomainError
}

func NewCredentialValidator(minPasswordLength int) CredentialValidator {
	v := validator.New()
	_ = v.RegisterValidation("account_email", func(fl validator.FieldLevel) bool {
		return emailRegex.MatchString(fl.Field().String())
	})

	return CredentialValidator{
		validate:            v,
		minPasswordLength:   minPasswordLength,
		errPasswordTooShort: newPasswordTooShortError(minPasswordLength),
	}
}

func (cv CredentialValidator) ValidateSignup(email, password string) error {
	if email == "" || password == "" {
		return ErrMissingCredentials
	}

	if err := cv.validate.Var(email, "account_email"); err != nil {
		return ErrInvalidEmailFormat
	}

	if len(password) < cv.minPasswordLength {
		return cv.errPasswordTooShort
	}

	return nil
}

// ValidateLogin checks presence only. Format and length are deliberately not
// re-validated: accounts created under looser historical rules must still be
// able to log in.
func (cv CredentialValidator) ValidateLogin(email, password string) error {
	if email == "" || password == "" {
		return ErrMissingCredentials
	}
	return nil
}
