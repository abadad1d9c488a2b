// Package config provides configuration loading and validation for the
// tracker. Configuration is loaded from YAML files with environment variable
// overrides using a layered system:
// defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the tracker.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Redis     RedisConfig     `koanf:"redis"`
	Tracker   TrackerConfig   `koanf:"tracker"`
	RateLimit RateLimitConfig `koanf:"ratelimit"`
	Breaker   BreakerConfig   `koanf:"breaker"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// RedisConfig holds Redis connection settings for the peer store.
type RedisConfig struct {
	Addr         string        `koanf:"addr"`
	Password     string        `koanf:"password"`
	DB           int           `koanf:"db"`
	DialTimeout  time.Duration `koanf:"dial_timeout"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	PoolSize     int           `koanf:"pool_size"`
	MinIdleConns int           `koanf:"min_idle_conns"`
}

// TrackerConfig holds discovery behavior settings.
type TrackerConfig struct {
	// AnnounceTTL is the lifetime of an announce record and the
	// re-announce deadline returned to clients.
	AnnounceTTL time.Duration `koanf:"announce_ttl"`
	// PeerLimit caps the number of peers in an announce response.
	PeerLimit int `koanf:"peer_limit"`
	// KeyPrefix namespaces all tracker keys in Redis.
	KeyPrefix string `koanf:"key_prefix"`
	// MGetWorkers bounds concurrent MGET calls while listing peers.
	MGetWorkers int `koanf:"mget_workers"`
	// TrustProxyHeaders enables client IP extraction from X-Forwarded-For
	// and X-Real-IP. Enable only behind a trusted reverse proxy.
	TrustProxyHeaders bool `koanf:"trust_proxy_headers"`
}

// RateLimitConfig holds per-IP rate limiting settings for announce endpoints.
type RateLimitConfig struct {
	Enabled      bool          `koanf:"enabled"`
	RequestLimit int           `koanf:"request_limit"`
	Window       time.Duration `koanf:"window"`
}

// BreakerConfig holds circuit breaker settings for the peer store.
type BreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
