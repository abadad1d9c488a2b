package ports

import (
	"context"
	"time"

	"github.com/librevault/discovery/internal/domain/peer"
)

// Discovery defines the service port for tracker operations.
// Implemented by the application layer; called by inbound adapters (handlers).
type Discovery interface {
	// Announce registers the announcing peer in its community and returns
	// the community's current peer list (excluding the announcer) plus the
	// TTL within which the peer must re-announce to stay listed.
	// Returns domain.ErrValidation if the announce fails validation and
	// domain.ErrUnavailable if the peer store cannot be reached.
	Announce(ctx context.Context, ann *peer.Announce) (*AnnounceResult, error)

	// Deannounce drops the peer's announce record immediately instead of
	// waiting for its TTL to lapse. Idempotent.
	Deannounce(ctx context.Context, dea *peer.Deannounce) error
}

// AnnounceResult holds the outcome of a successful announce.
type AnnounceResult struct {
	TTL   time.Duration
	Peers []peer.Peer
}
