package http

import (
	"net/http"

	"github.com/mzaitsev/authd/internal/common/constants"
	"github.com/mzaitsev/authd/internal/common/httpmetrics"
	"github.com/mzaitsev/authd/internal/common/logger"
)

// BuildBaseHandler wraps the app handler with the ambient middleware chain:
// security headers -> recovery -> trace id -> body size cap -> metrics.
func BuildBaseHandler(log *logger.Logger, handler http.Handler) http.Handler {
	metrics := httpmetrics.New()
	recovery := RecoveryMiddleware(log)
	maxRequestSize := MaxRequestSizeMiddleware(constants.DefaultMaxRequestSize)

	return SecurityHeadersMiddleware(recovery(TraceIDMiddleware(maxRequestSize(metrics.Wrap(handler)))))
}
