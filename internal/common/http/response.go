package http

import (
	"encoding/json"
	"net/http"
	"strings"

	commonerrors "github.com/mzaitsev/authd/internal/common/errors"
)

// Envelope is the wire shape of every response: success and message are
// always present, data only on success, code only on failure.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteSuccess(w http.ResponseWriter, status int, message string, data any) {
	WriteJSON(w, status, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func WriteError(w http.ResponseWriter, status int, code, message string) {
	WriteJSON(w, status, Envelope{
		Success: false,
		Message: message,
		Code:    code,
	})
}

// WriteDomainError maps a DomainError onto the envelope; anything else
// becomes an opaque 500.
func WriteDomainError(w http.ResponseWriter, err error) {
	if de, ok := commonerrors.AsDomainError(err); ok {
		WriteError(w, de.HTTPStatus(), de.Code(), de.Message())
		return
	}
	WriteError(w, http.StatusInternalServerError, CodeInternalError, "Internal server error")
}

func DecodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func GetClientIP(r *http.Request) string {
	ip := r.Header.Get("X-Real-IP")
	if ip == "" {
		ip = r.Header.Get("X-Forwarded-For")
		if idx := strings.Index(ip, ","); idx != -1 {
			ip = strings.TrimSpace(ip[:idx])
		}
	}
	if ip == "" {
		ip = r.RemoteAddr
		if idx := strings.LastIndex(ip, ":"); idx != -1 {
			ip = ip[:idx]
		}
	}
	return ip
}
