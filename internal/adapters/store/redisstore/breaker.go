package redisstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/librevault/discovery/internal/domain"
	"github.com/librevault/discovery/internal/domain/peer"
	"github.com/librevault/discovery/internal/ports"
)

// Compile-time check that BreakerStore implements ports.PeerStore.
var _ ports.PeerStore = (*BreakerStore)(nil)

// BreakerConfig holds circuit breaker settings for the peer store.
type BreakerConfig struct {
	MaxFailures   int
	Timeout       time.Duration
	HalfOpenLimit int
}

// BreakerStore wraps a PeerStore with a sony/gobreaker circuit breaker so a
// dead Redis fails fast instead of stacking up timed-out announce requests.
// While the circuit is open, all operations fail with domain.ErrUnavailable.
type BreakerStore struct {
	inner ports.PeerStore
	cb    *gobreaker.CircuitBreaker[any]
}

// NewBreakerStore wraps inner with a circuit breaker. The breaker trips after
// cfg.MaxFailures consecutive failures and probes again after cfg.Timeout,
// admitting at most cfg.HalfOpenLimit trial requests.
func NewBreakerStore(inner ports.PeerStore, cfg BreakerConfig, logger *slog.Logger) *BreakerStore {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        "peer-store",
		MaxRequests: toUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		// A client-aborted request says nothing about Redis health, so
		// cancellations do not count toward tripping the breaker.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &BreakerStore{inner: inner, cb: cb}
}

func (b *BreakerStore) Put(ctx context.Context, communityID peer.ID, p peer.Peer, ttl time.Duration) error {
	_, err := b.cb.Execute(func() (any, error) {
		return nil, b.inner.Put(ctx, communityID, p, ttl)
	})
	return mapBreakerErr(err)
}

func (b *BreakerStore) List(ctx context.Context, communityID, exclude peer.ID, limit int) ([]peer.Peer, error) {
	v, err := b.cb.Execute(func() (any, error) {
		return b.inner.List(ctx, communityID, exclude, limit)
	})
	if err != nil {
		return nil, mapBreakerErr(err)
	}
	return v.([]peer.Peer), nil
}

func (b *BreakerStore) Delete(ctx context.Context, communityID, peerID peer.ID) error {
	_, err := b.cb.Execute(func() (any, error) {
		return nil, b.inner.Delete(ctx, communityID, peerID)
	})
	return mapBreakerErr(err)
}

// addResult carries AddCommunity's multi-value result through the breaker.
type addResult struct {
	newlySeen bool
	total     int64
}

func (b *BreakerStore) AddCommunity(ctx context.Context, communityID peer.ID) (bool, int64, error) {
	v, err := b.cb.Execute(func() (any, error) {
		newlySeen, total, err := b.inner.AddCommunity(ctx, communityID)
		return addResult{newlySeen: newlySeen, total: total}, err
	})
	if err != nil {
		return false, 0, mapBreakerErr(err)
	}
	res := v.(addResult)
	return res.newlySeen, res.total, nil
}

// mapBreakerErr translates gobreaker rejection errors into the domain
// unavailability sentinel. Errors from the inner store pass through.
func mapBreakerErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("peer store circuit open: %w: %w", domain.ErrUnavailable, err)
	}
	return err
}

func toUint32(n int) uint32 {
	if n < 0 {
		return 0
	}
	return uint32(n)
}
