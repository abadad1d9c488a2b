package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// RateLimit returns middleware that limits each client IP to requestLimit
// requests per window. Over-limit requests receive 429 Too Many Requests.
// When enabled is false the middleware is a no-op.
//
// The limiter keys on r.RemoteAddr, so this must run after RealIP when the
// tracker sits behind a reverse proxy.
func RateLimit(enabled bool, requestLimit int, window time.Duration) func(http.Handler) http.Handler {
	if !enabled {
		return func(next http.Handler) http.Handler {
			return next
		}
	}
	return httprate.Limit(requestLimit, window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
	)
}
