package config

const (
	defaultServerPort = 8080

	defaultPeerLimit   = 50
	defaultKeyPrefix   = "lvdiscovery1:"
	defaultMGetWorkers = 4

	defaultRateLimitRequests = 60

	defaultBreakerMaxFailures = 5
	defaultBreakerHalfOpen    = 1
)

// defaults returns the default configuration values. These form the lowest
// layer and are overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"redis.addr":           "localhost:6379",
		"redis.password":       "",
		"redis.db":             0,
		"redis.dial_timeout":   "5s",
		"redis.read_timeout":   "3s",
		"redis.write_timeout":  "3s",
		"redis.pool_size":      10,
		"redis.min_idle_conns": 5,

		"tracker.announce_ttl":        "15s",
		"tracker.peer_limit":          defaultPeerLimit,
		"tracker.key_prefix":          defaultKeyPrefix,
		"tracker.mget_workers":        defaultMGetWorkers,
		"tracker.trust_proxy_headers": false,

		"ratelimit.enabled":       true,
		"ratelimit.request_limit": defaultRateLimitRequests,
		"ratelimit.window":        "1m",

		"breaker.max_failures":    defaultBreakerMaxFailures,
		"breaker.timeout":         "30s",
		"breaker.half_open_limit": defaultBreakerHalfOpen,

		"telemetry.enabled":  false,
		"telemetry.exporter": "stdout",
		"telemetry.endpoint": "",
	}
}
