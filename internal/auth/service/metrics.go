package service

import (
	"github.com/mzaitsev/authd/internal/observability/metrics"
)

func incrementSignups(result string) {
	metrics.SignupsTotal.WithLabelValues(result).Inc()
}

func incrementLogins(result string) {
	metrics.LoginsTotal.WithLabelValues(result).Inc()
}

func incrementSessionTokensIssued() {
	metrics.SessionTokensIssued.Inc()
}
