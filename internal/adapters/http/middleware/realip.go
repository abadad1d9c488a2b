package middleware

import (
	"net/http"
	"net/netip"
	"strings"
)

const (
	headerForwardedFor = "X-Forwarded-For"
	headerRealIP       = "X-Real-IP"
)

// RealIP returns middleware that rewrites r.RemoteAddr from proxy headers.
// When trustProxy is false the middleware is a no-op: the headers are
// client-controlled, so honoring them without a trusted reverse proxy in
// front would let peers announce arbitrary addresses.
//
// X-Forwarded-For takes precedence over X-Real-IP; only the first
// (client-most) entry is used. Entries that do not parse as an IP address
// leave RemoteAddr untouched.
func RealIP(trustProxy bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !trustProxy {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ip := proxyClientIP(r); ip != "" {
				r.RemoteAddr = ip
			}
			next.ServeHTTP(w, r)
		})
	}
}

// proxyClientIP extracts the client IP from proxy headers, returning an
// empty string when no valid address is present.
func proxyClientIP(r *http.Request) string {
	if fwd := r.Header.Get(headerForwardedFor); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		first = strings.TrimSpace(first)
		if addr, err := netip.ParseAddr(first); err == nil {
			return addr.String()
		}
	}
	if real := strings.TrimSpace(r.Header.Get(headerRealIP)); real != "" {
		if addr, err := netip.ParseAddr(real); err == nil {
			return addr.String()
		}
	}
	return ""
}
