// Package metrics exposes the tracker's Prometheus instruments and the
// /metrics handler. Generic HTTP server telemetry is handled separately by
// the OpenTelemetry middleware; this package covers discovery-domain metrics.
package metrics

import (
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// maxUALabelLen bounds the user-agent label to keep cardinality and scrape
// size in check. Librevault clients send short, stable agent strings.
const maxUALabelLen = 64

var (
	uniqueCommunities = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "lvdiscovery_unique_communities",
		Help: "Unique Librevault communities count, seen on this tracker",
	})

	requestsByClient = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lvdiscovery_requests_by_client_total",
		Help: "User-Agent breakdown of incoming requests",
	}, []string{"ua"})

	announceDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "lvdiscovery_announce_duration_seconds",
		Help:    "Duration of announce handling in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2.0, 12), // 1ms .. ~2s
	})

	peersReturned = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "lvdiscovery_peers_returned",
		Help:    "Number of peers returned per announce response",
		Buckets: prometheus.LinearBuckets(0, 5, 11), // 0 .. 50
	})

	storeErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lvdiscovery_store_errors_total",
		Help: "Peer store operation failures",
	}, []string{"op"})
)

// Handler returns the Prometheus exposition handler for GET /metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}

// SetUniqueCommunities updates the unique-communities gauge.
func SetUniqueCommunities(n int64) {
	uniqueCommunities.Set(float64(n))
}

// RecordClientRequest counts a request by its User-Agent header value.
// Header values are arbitrary octets while Prometheus label values must be
// valid UTF-8, so the value is truncated first and then any invalid byte
// runs (including a rune split by the cut) are replaced.
func RecordClientRequest(ua string) {
	if ua == "" {
		ua = "unknown"
	}
	if len(ua) > maxUALabelLen {
		ua = ua[:maxUALabelLen]
	}
	ua = strings.ToValidUTF8(ua, "�")
	requestsByClient.WithLabelValues(ua).Inc()
}

// RecordAnnounce observes a completed announce: handling duration and the
// number of peers returned.
func RecordAnnounce(duration time.Duration, peers int) {
	announceDuration.Observe(duration.Seconds())
	peersReturned.Observe(float64(peers))
}

// RecordStoreError counts a failed peer store operation by name.
func RecordStoreError(op string) {
	storeErrorsTotal.WithLabelValues(op).Inc()
}
