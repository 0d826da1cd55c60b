package service

import (
	"fmt"
	"net/http"

	commonerrors "github.com/mzaitsev/authd/internal/common/errors"
)

var (
	ErrMissingCredentials = commonerrors.NewDomainError(
		"MISSING_CREDENTIALS",
		commonerrors.CategoryValidation,
		http.StatusBadRequest,
		"Email and password are required",
	)

	ErrInvalidEmailFormat = commonerrors.NewDomainError(
		"INVALID_EMAIL_FORMAT",
		commonerrors.CategoryValidation,
		http.StatusBadRequest,
		"Invalid email format",
	)

	// The message never reveals whether the email exists.
	ErrInvalidCredentials = commonerrors.NewDomainError(
		"INVALID_CREDENTIALS",
		commonerrors.CategoryUnauthorized,
		http.StatusUnauthorized,
		"Invalid email or password",
	)

	ErrDuplicateAccount = commonerrors.NewDomainError(
		"DUPLICATE_ACCOUNT",
		commonerrors.CategoryConflict,
		http.StatusConflict,
		"User already exists",
	)
)

func newPasswordTooShortError(minLength int) commonerrors.DomainError {
	return commonerrors.NewDomainError(
		"PASSWORD_TOO_SHORT",
		commonerrors.CategoryValidation,
		http.StatusBadRequest,
		fmt.Sprintf("Password must be at least %d characters long", minLength),
	)
}

func newInternalError(code, message string, cause error) commonerrors.DomainError {
	err := commonerrors.NewDomainError(
		code,
		commonerrors.CategoryInternal,
		http.StatusInternalServerError,
		message,
	)
	if cause != nil {
		err = err.WithCause(cause)
	}
	return err
}
