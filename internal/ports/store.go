package ports

import (
	"context"
	"time"

	"github.com/librevault/discovery/internal/domain/peer"
)

// PeerStore defines the outbound port for announce persistence. Implemented
// by the Redis adapter; called by the application layer. Records are
// ephemeral: each Put refreshes the record's TTL and records that are not
// refreshed expire on their own.
type PeerStore interface {
	// Put stores or refreshes the announce record for a peer within a
	// community. The record expires after ttl.
	Put(ctx context.Context, communityID peer.ID, p peer.Peer, ttl time.Duration) error

	// List returns peers of the community, excluding the peer identified by
	// exclude, capped at limit entries. Records expiring mid-listing are
	// silently skipped. The order of returned peers is unspecified.
	List(ctx context.Context, communityID, exclude peer.ID, limit int) ([]peer.Peer, error)

	// Delete removes a peer's announce record immediately. Deleting a
	// missing record is not an error.
	Delete(ctx context.Context, communityID, peerID peer.ID) error

	// AddCommunity records the community in the unique-communities
	// statistics set. Returns whether the community was newly seen and, if
	// so, the new set cardinality.
	AddCommunity(ctx context.Context, communityID peer.ID) (newlySeen bool, total int64, err error)
}
