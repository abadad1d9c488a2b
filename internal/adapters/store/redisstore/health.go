package redisstore

import (
	"context"

	"github.com/librevault/discovery/internal/ports"
)

// Compile-time check that HealthChecker implements ports.HealthChecker.
var _ ports.HealthChecker = (*HealthChecker)(nil)

// HealthChecker reports Redis connectivity for the readiness endpoint.
type HealthChecker struct {
	store *Store
}

// NewHealthChecker creates a HealthChecker for the given store.
func NewHealthChecker(store *Store) *HealthChecker {
	return &HealthChecker{store: store}
}

// Name identifies this component in readiness responses.
func (h *HealthChecker) Name() string { return "redis" }

// HealthCheck pings Redis, respecting the context deadline.
func (h *HealthChecker) HealthCheck(ctx context.Context) error {
	return h.store.Ping(ctx)
}
