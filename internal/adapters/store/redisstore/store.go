// Package redisstore implements the PeerStore port on Redis using
// redis/go-redis. Announce records are JSON values under
// "<prefix>community:<community_id>:<peer_id>" with a per-record TTL, so
// expiry is handled entirely by Redis. The unique-communities statistic is a
// Redis set of raw community-ID bytes.
package redisstore

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/netip"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/librevault/discovery/internal/domain"
	"github.com/librevault/discovery/internal/domain/peer"
	"github.com/librevault/discovery/internal/platform/fanout"
	"github.com/librevault/discovery/internal/platform/metrics"
	"github.com/librevault/discovery/internal/ports"
)

// Compile-time check that Store implements ports.PeerStore.
var _ ports.PeerStore = (*Store)(nil)

const (
	communitySegment  = "community:"
	statisticsSegment = "statistics:unique_communities"
)

// Config holds Redis connection and store behavior settings.
type Config struct {
	Addr         string
	Password     string
	DB           int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolSize     int
	MinIdleConns int

	// KeyPrefix namespaces all tracker keys (e.g. "lvdiscovery1:").
	KeyPrefix string
	// MGetWorkers bounds the number of concurrent MGET calls while listing
	// a community's peers.
	MGetWorkers int
	// ScanCount is the COUNT hint passed to SCAN.
	ScanCount int
}

// Store is a Redis-backed implementation of ports.PeerStore.
type Store struct {
	client      *redis.Client
	logger      *slog.Logger
	prefix      string
	mgetWorkers int
	scanCount   int
}

// New connects to Redis and returns a Store. The connection is verified with
// a ping before returning.
func New(cfg Config, logger *slog.Logger) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
	})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DialTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	logger.Info("connected to Redis",
		slog.String("addr", cfg.Addr),
		slog.Int("db", cfg.DB),
	)

	return NewWithClient(client, cfg, logger), nil
}

// NewWithClient wraps an existing Redis client. Used by tests running
// against miniredis.
func NewWithClient(client *redis.Client, cfg Config, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	workers := cfg.MGetWorkers
	if workers < 1 {
		workers = 1
	}
	scanCount := cfg.ScanCount
	if scanCount < 1 {
		scanCount = 64
	}
	return &Store{
		client:      client,
		logger:      logger,
		prefix:      cfg.KeyPrefix,
		mgetWorkers: workers,
		scanCount:   scanCount,
	}
}

// record is the wire format of an announce record, shared with earlier
// tracker deployments: {"ip": "...", "port": n, "peer_id": "..."}.
type record struct {
	IP     string `json:"ip"`
	Port   int    `json:"port"`
	PeerID string `json:"peer_id"`
}

func (s *Store) communityPrefix(communityID peer.ID) string {
	return s.prefix + communitySegment + communityID.String() + ":"
}

func (s *Store) peerKey(communityID, peerID peer.ID) string {
	return s.communityPrefix(communityID) + peerID.String()
}

func (s *Store) statisticsKey() string {
	return s.prefix + statisticsSegment
}

// Put stores or refreshes the announce record for a peer with the given TTL.
func (s *Store) Put(ctx context.Context, communityID peer.ID, p peer.Peer, ttl time.Duration) error {
	data, err := json.Marshal(record{
		IP:     p.Addr.String(),
		Port:   p.Port,
		PeerID: p.PeerID.String(),
	})
	if err != nil {
		return fmt.Errorf("marshal announce record: %w", err)
	}

	key := s.peerKey(communityID, p.PeerID)
	if err := s.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return s.unavailable("put", err)
	}
	return nil
}

// List returns the community's peers, excluding the given peer ID and capped
// at limit. SCAN collects key pages first; the pages are then fetched with
// bounded-concurrency MGETs. Records expiring between SCAN and MGET are
// skipped.
func (s *Store) List(ctx context.Context, communityID, exclude peer.ID, limit int) ([]peer.Peer, error) {
	match := s.communityPrefix(communityID) + "*"

	var pages [][]string
	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, match, int64(s.scanCount)).Result()
		if err != nil {
			return nil, s.unavailable("scan", err)
		}
		if len(keys) > 0 {
			pages = append(pages, keys)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}

	results := fanout.Run(ctx, s.mgetWorkers, pages, func(ctx context.Context, keys []string) ([]peer.Peer, error) {
		return s.fetchPage(ctx, keys, exclude)
	})

	peers := make([]peer.Peer, 0, limit)
	for _, r := range results {
		if r.Err != nil {
			return nil, r.Err
		}
		peers = append(peers, r.Value...)
	}
	if len(peers) > limit {
		peers = peers[:limit]
	}
	return peers, nil
}

// fetchPage MGETs one page of scan keys and decodes the surviving records.
func (s *Store) fetchPage(ctx context.Context, keys []string, exclude peer.ID) ([]peer.Peer, error) {
	vals, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, s.unavailable("mget", err)
	}

	peers := make([]peer.Peer, 0, len(vals))
	for i, v := range vals {
		raw, ok := v.(string)
		if !ok {
			// Key expired between SCAN and MGET.
			continue
		}

		var rec record
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			s.logger.WarnContext(ctx, "skipping malformed announce record",
				slog.String("key", keys[i]),
				slog.Any("error", err),
			)
			continue
		}
		if rec.PeerID == exclude.String() {
			continue
		}

		addr, err := netip.ParseAddr(rec.IP)
		if err != nil {
			s.logger.WarnContext(ctx, "skipping announce record with bad address",
				slog.String("key", keys[i]),
				slog.Any("error", err),
			)
			continue
		}

		peers = append(peers, peer.Peer{
			Addr:   peer.NormalizeAddr(addr),
			Port:   rec.Port,
			PeerID: peer.ID(rec.PeerID),
		})
	}
	return peers, nil
}

// Delete removes a peer's announce record. Missing records are not an error.
func (s *Store) Delete(ctx context.Context, communityID, peerID peer.ID) error {
	if err := s.client.Del(ctx, s.peerKey(communityID, peerID)).Err(); err != nil {
		return s.unavailable("delete", err)
	}
	return nil
}

// AddCommunity adds the community's raw ID bytes to the statistics set.
// The set cardinality is fetched only when the community is newly seen.
func (s *Store) AddCommunity(ctx context.Context, communityID peer.ID) (bool, int64, error) {
	added, err := s.client.SAdd(ctx, s.statisticsKey(), communityID.Bytes()).Result()
	if err != nil {
		return false, 0, s.unavailable("sadd", err)
	}
	if added == 0 {
		return false, 0, nil
	}

	total, err := s.client.SCard(ctx, s.statisticsKey()).Result()
	if err != nil {
		return false, 0, s.unavailable("scard", err)
	}
	return true, total, nil
}

// Ping verifies Redis connectivity. Used by the health checker.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the underlying Redis connection pool.
func (s *Store) Close() error {
	return s.client.Close()
}

// unavailable wraps a Redis failure so callers can match domain.ErrUnavailable,
// and counts it in the store error metric.
func (s *Store) unavailable(op string, err error) error {
	metrics.RecordStoreError(op)
	return fmt.Errorf("redis %s: %w: %w", op, domain.ErrUnavailable, err)
}
