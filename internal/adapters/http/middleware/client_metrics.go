package middleware

import (
	"net/http"

	"github.com/librevault/discovery/internal/platform/metrics"
)

// ClientMetrics returns middleware that counts requests per client
// User-Agent. Librevault clients send a version-carrying UA, so the counter
// doubles as a version adoption breakdown.
func ClientMetrics() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			metrics.RecordClientRequest(r.UserAgent())
			next.ServeHTTP(w, r)
		})
	}
}
