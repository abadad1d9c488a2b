package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Redis.validate(),
		c.Tracker.validate(),
		c.RateLimit.validate(),
		c.Breaker.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (r *RedisConfig) validate() error {
	var errs []error

	if r.Addr == "" {
		errs = append(errs, errors.New("redis.addr must not be empty"))
	}
	if r.DialTimeout <= 0 {
		errs = append(errs, errors.New("redis.dial_timeout must be positive"))
	}
	if r.PoolSize < 1 {
		errs = append(errs, fmt.Errorf("redis.pool_size must be >= 1, got %d", r.PoolSize))
	}

	return errors.Join(errs...)
}

func (t *TrackerConfig) validate() error {
	var errs []error

	if t.AnnounceTTL <= 0 {
		errs = append(errs, errors.New("tracker.announce_ttl must be positive"))
	}
	if t.PeerLimit < 1 {
		errs = append(errs, fmt.Errorf("tracker.peer_limit must be >= 1, got %d", t.PeerLimit))
	}
	if strings.TrimSpace(t.KeyPrefix) == "" {
		errs = append(errs, errors.New("tracker.key_prefix must not be empty"))
	}
	if t.MGetWorkers < 1 {
		errs = append(errs, fmt.Errorf("tracker.mget_workers must be >= 1, got %d", t.MGetWorkers))
	}

	return errors.Join(errs...)
}

func (r *RateLimitConfig) validate() error {
	if !r.Enabled {
		return nil
	}

	var errs []error

	if r.RequestLimit < 1 {
		errs = append(errs, fmt.Errorf("ratelimit.request_limit must be >= 1, got %d", r.RequestLimit))
	}
	if r.Window <= 0 {
		errs = append(errs, errors.New("ratelimit.window must be positive"))
	}

	return errors.Join(errs...)
}

func (b *BreakerConfig) validate() error {
	var errs []error

	if b.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("breaker.max_failures must be >= 1, got %d", b.MaxFailures))
	}
	if b.HalfOpenLimit < 1 {
		errs = append(errs, fmt.Errorf("breaker.half_open_limit must be >= 1, got %d", b.HalfOpenLimit))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}
