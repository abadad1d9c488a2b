// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/librevault/discovery/internal/domain/peer"
	"github.com/librevault/discovery/internal/platform/metrics"
	"github.com/librevault/discovery/internal/ports"
)

// Compile-time check that DiscoveryService implements ports.Discovery.
var _ ports.Discovery = (*DiscoveryService)(nil)

// DiscoveryService implements ports.Discovery by coordinating announce
// validation, peer store access, and statistics updates. The store port
// hides whether records live in Redis or elsewhere.
type DiscoveryService struct {
	store       ports.PeerStore
	logger      *slog.Logger
	announceTTL time.Duration
	peerLimit   int
}

// NewDiscoveryService creates a DiscoveryService. announceTTL is the lifetime
// of each announce record and is returned to clients as their re-announce
// deadline. peerLimit caps the number of peers in an announce response.
func NewDiscoveryService(store ports.PeerStore, logger *slog.Logger, announceTTL time.Duration, peerLimit int) *DiscoveryService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &DiscoveryService{
		store:       store,
		logger:      logger,
		announceTTL: announceTTL,
		peerLimit:   peerLimit,
	}
}

// Announce registers the announcing peer and returns the community's current
// peer list, excluding the announcer and capped at the configured peer limit.
func (s *DiscoveryService) Announce(ctx context.Context, ann *peer.Announce) (*ports.AnnounceResult, error) {
	start := time.Now()

	if err := ann.Validate(); err != nil {
		return nil, err
	}

	s.logger.DebugContext(ctx, "announce received",
		slog.String("community_id", ann.CommunityID.String()),
		slog.String("peer_id", ann.PeerID.String()),
	)

	if err := s.store.Put(ctx, ann.CommunityID, ann.Record(), s.announceTTL); err != nil {
		s.logger.ErrorContext(ctx, "failed to store announce",
			slog.String("operation", "Announce"),
			slog.String("community_id", ann.CommunityID.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	peers, err := s.store.List(ctx, ann.CommunityID, ann.PeerID, s.peerLimit)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list community peers",
			slog.String("operation", "Announce"),
			slog.String("community_id", ann.CommunityID.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.updateStatistics(ctx, ann.CommunityID)

	metrics.RecordAnnounce(time.Since(start), len(peers))

	return &ports.AnnounceResult{
		TTL:   s.announceTTL,
		Peers: peers,
	}, nil
}

// Deannounce drops the peer's announce record immediately. Idempotent:
// deannouncing an unknown peer succeeds.
func (s *DiscoveryService) Deannounce(ctx context.Context, dea *peer.Deannounce) error {
	s.logger.DebugContext(ctx, "deannounce received",
		slog.String("community_id", dea.CommunityID.String()),
		slog.String("peer_id", dea.PeerID.String()),
	)

	if err := s.store.Delete(ctx, dea.CommunityID, dea.PeerID); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete announce record",
			slog.String("operation", "Deannounce"),
			slog.String("community_id", dea.CommunityID.String()),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// updateStatistics records the community in the unique-communities set and
// refreshes the gauge when the community is new. Statistics failures never
// fail the announce that triggered them.
func (s *DiscoveryService) updateStatistics(ctx context.Context, communityID peer.ID) {
	newlySeen, total, err := s.store.AddCommunity(ctx, communityID)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to update community statistics",
			slog.String("community_id", communityID.String()),
			slog.Any("error", err),
		)
		return
	}
	if newlySeen {
		metrics.SetUniqueCommunities(total)
	}
}
