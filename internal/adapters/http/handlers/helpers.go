package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/netip"

	"github.com/librevault/discovery/internal/adapters/http/dto"
	"github.com/librevault/discovery/internal/domain"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (64 KB).
// Announce bodies are tiny; anything larger is abuse.
const maxJSONBodyBytes = 64 << 10

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes to prevent resource exhaustion. On failure,
// it writes a 400 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid JSON"},
		})
		return false
	}
	return true
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}

// clientAddr resolves the announcing peer's IP address from the request.
// RemoteAddr normally carries host:port, but the RealIP middleware may have
// rewritten it to a bare address.
func clientAddr(r *http.Request) (netip.Addr, error) {
	if ap, err := netip.ParseAddrPort(r.RemoteAddr); err == nil {
		return ap.Addr(), nil
	}
	addr, err := netip.ParseAddr(r.RemoteAddr)
	if err != nil {
		return netip.Addr{}, &domain.ValidationError{
			Fields: map[string]string{"addr": "cannot determine client address"},
		}
	}
	return addr, nil
}
