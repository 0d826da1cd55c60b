package service_test

import (
	"errors"
	"testing"

	"github.com/mzaitsev/authd/internal/auth/service"
)

func TestCredentialValidator_ValidateSignup_Success(t *testing.T) {
	validator := service.NewCredentialValidator(6)

	testCases := []struct {
		name     string
		email    string
		password string
	}{
		{"simple address", "a@b.com", "secret1"},
		{"plus tag", "user+tag@example.org", "password123"},
		{"subdomain", "user@mail.example.com", "hunter22"},
		{"minimum length password", "a@b.com", "123456"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if err := validator.ValidateSignup(tc.email, tc.password); err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestCredentialValidator_ValidateSignup_MissingFields(t *testing.T) {
	validator := service.NewCredentialValidator(6)

	testCases := []struct {
		name     string
		email    string
		password string
	}{
		{"missing email", "", "secret1"},
		{"missing password", "a@b.com", ""},
		{"missing both", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validator.ValidateSignup(tc.email, tc.password)
			if !errors.Is(err, service.ErrMissingCredentials) {
				t.Errorf("expected ErrMissingCredentials, got %v", err)
			}
		})
	}
}

func TestCredentialValidator_ValidateSignup_EmailFormat(t *testing.T) {
	validator := service.NewCredentialValidator(6)

	testCases := []struct {
		name  string
		email string
	}{
		{"no at sign", "plainaddress"},
		{"no domain dot", "a@b"},
		{"empty local part", "@b.com"},
		{"empty domain", "a@.com"},
		{"space in address", "a b@c.com"},
		{"trailing spaces", "a@b.com "},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validator.ValidateSignup(tc.email, "secret1")
			if !errors.Is(err, service.ErrInvalidEmailFormat) {
				t.Errorf("expected ErrInvalidEmailFormat for %q, got %v", tc.email, err)
			}
		})
	}
}

func TestCredentialValidator_ValidateSignup_PasswordLength(t *testing.T) {
	validator := service.NewCredentialValidator(6)

	err := validator.ValidateSignup("a@b.com", "12345")
	if err == nil {
		t.Fatal("expected validation error for 5-char password")
	}
	if errors.Is(err, service.ErrMissingCredentials) || errors.Is(err, service.ErrInvalidEmailFormat) {
		t.Fatalf("expected password-too-short error, got %v", err)
	}

	if err := validator.ValidateSignup("a@b.com", "123456"); err != nil {
		t.Errorf("expected 6-char password to pass, got %v", err)
	}
}

func TestCredentialValidator_ValidateSignup_ConfiguredMinimum(t *testing.T) {
	validator := service.NewCredentialValidator(10)

	if err := validator.ValidateSignup("a@b.com", "123456789"); err == nil {
		t.Error("expected 9-char password to fail with minimum 10")
	}
	if err := validator.ValidateSignup("a@b.com", "1234567890"); err != nil {
		t.Errorf("expected 10-char password to pass, got %v", err)
	}
}

func TestCredentialValidator_ValidateLogin(t *testing.T) {
	validator := service.NewCredentialValidator(6)

	if err := validator.ValidateLogin("", "secret1"); !errors.Is(err, service.ErrMissingCredentials) {
		t.Errorf("expected ErrMissingCredentials, got %v", err)
	}
	if err := validator.ValidateLogin("a@b.com", ""); !errors.Is(err, service.ErrMissingCredentials) {
		t.Errorf("expected ErrMissingCredentials, got %v", err)
	}

	// Login never re-validates format or length: legacy accounts created
	// under looser rules must still be able to authenticate.
	if err := validator.ValidateLogin("not-an-email", "x"); err != nil {
		t.Errorf("expected no error for legacy-format login input, got %v", err)
	}
}
