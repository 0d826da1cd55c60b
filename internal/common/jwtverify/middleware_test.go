package jwtverify_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mzaitsev/authd/internal/common/jwtverify"
	"github.com/mzaitsev/authd/internal/common/logger"
)

const testSecret = "test-secret-0123456789-0123456789"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"sub":   "user-123",
		"email": "a@b.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
		"iat":   time.Now().Unix(),
	}
}

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

func protect(t *testing.T, next http.HandlerFunc) http.Handler {
	t.Helper()
	log, err := logger.New("", "test", "error")
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	return jwtverify.Middleware(testSecret, log)(next)
}

func TestMiddleware_Success(t *testing.T) {
	var gotClaims jwtverify.Claims
	handler := protect(t, func(w http.ResponseWriter, r *http.Request) {
		claims, ok := jwtverify.FromContext(r.Context())
		if !ok {
			t.Fatal("expected claims in context")
		}
		gotClaims = claims
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, validClaims()))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if gotClaims.UserID != "user-123" || gotClaims.Email != "a@b.com" {
		t.Errorf("unexpected claims: %+v", gotClaims)
	}
}

func TestMiddleware_RejectionClassification(t *testing.T) {
	expired := validClaims()
	expired["exp"] = time.Now().Add(-time.Hour).Unix()

	testCases := []struct {
		name     string
		header   string
		wantCode string
	}{
		{"no header", "", "MISSING_AUTH_HEADER"},
		{"wrong scheme", "Token abc", "MALFORMED_AUTH_HEADER"},
		{"scheme glued to token", "Bearerabc", "MALFORMED_AUTH_HEADER"},
		{"bare scheme", "Bearer", "MISSING_TOKEN"},
		{"empty token", "Bearer ", "MISSING_TOKEN"},
		{"garbage token", "Bearer not.a.jwt", "INVALID_TOKEN"},
		{"wrong secret", "Bearer " + mustSign(validClaims(), "wrong-secret-wrong-secret-123456"), "INVALID_TOKEN"},
		{"expired token", "Bearer " + mustSign(expired, testSecret), "TOKEN_EXPIRED"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := protect(t, func(w http.ResponseWriter, r *http.Request) {
				t.Error("protected handler must not run on rejection")
			})

			req := httptest.NewRequest(http.MethodGet, "/profile", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("expected status 401, got %d", rec.Code)
			}

			var env envelope
			if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if env.Success {
				t.Error("expected success=false")
			}
			if env.Code != tc.wantCode {
				t.Errorf("expected code %s, got %s", tc.wantCode, env.Code)
			}
			if env.Message == "" {
				t.Error("expected human-readable message")
			}
		})
	}
}

func TestMiddleware_MissingIdentityClaims(t *testing.T) {
	claims := validClaims()
	delete(claims, "email")

	handler := protect(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("protected handler must not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, claims))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rec.Code)
	}
	var env envelope
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if env.Code != "INVALID_TOKEN" {
		t.Errorf("expected code INVALID_TOKEN, got %s", env.Code)
	}
}

func mustSign(claims jwt.MapClaims, secret string) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		panic(err)
	}
	return token
}
