package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	commonerrors "github.com/mzaitsev/authd/internal/common/errors"
	commonhttp "github.com/mzaitsev/authd/internal/common/http"
)

func TestWriteSuccess(t *testing.T) {
	rec := httptest.NewRecorder()

	commonhttp.WriteSuccess(rec, http.StatusCreated, "User created successfully", map[string]string{"id": "user-1"})

	if rec.Code != http.StatusCreated {
		t.Errorf("expected status 201, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %s", ct)
	}

	var env struct {
		Success bool              `json:"success"`
		Message string            `json:"message"`
		Code    string            `json:"code"`
		Data    map[string]string `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !env.Success {
		t.Error("expected success=true")
	}
	if env.Code != "" {
		t.Errorf("success responses carry no code, got %q", env.Code)
	}
	if env.Data["id"] != "user-1" {
		t.Errorf("unexpected data: %+v", env.Data)
	}
}

func TestWriteDomainError(t *testing.T) {
	rec := httptest.NewRecorder()

	commonhttp.WriteDomainError(rec, commonerrors.ErrUserNotFound)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}

	var env struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Code    string `json:"code"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if env.Success {
		t.Error("expected success=false")
	}
	if env.Code != "USER_NOT_FOUND" {
		t.Errorf("expected code USER_NOT_FOUND, got %s", env.Code)
	}
	if env.Message != "User not found" {
		t.Errorf("unexpected message: %q", env.Message)
	}
}

func TestWriteDomainError_UnknownErrorCollapsesTo500(t *testing.T) {
	rec := httptest.NewRecorder()

	commonhttp.WriteDomainError(rec, http.ErrBodyNotAllowed)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", rec.Code)
	}
}
