// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) to build a Config with defaults.
// - Load layers defaults, an optional YAML file, and environment variables.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"context"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// UpstreamBaseURL is the root of the live scoring provider API.
	UpstreamBaseURL string `koanf:"upstream_base_url"`

	// UpstreamTimeoutMS bounds a single upstream fetch.
	UpstreamTimeoutMS int `koanf:"upstream_timeout_ms"`

	// Provider names the scoring provider in route paths and store keys.
	Provider string `koanf:"provider"`

	// StoreBackend selects the key-value backend: "memory" or "redis".
	StoreBackend string `koanf:"store_backend"`

	// Redis connection settings, used when StoreBackend is "redis".
	RedisAddr     string `koanf:"redis_addr"`
	RedisPassword string `koanf:"redis_password"`
	RedisDB       int    `koanf:"redis_db"`

	// EventTTLSeconds is how long a triggered overlay event stays readable.
	EventTTLSeconds int `koanf:"event_ttl_seconds"`

	// TriggerRatePerSecond and TriggerBurst throttle operator POSTs per client.
	TriggerRatePerSecond float64 `koanf:"trigger_rate_per_second"`
	TriggerBurst         int     `koanf:"trigger_burst"`

	// MaxBodyBytes caps operator request bodies.
	MaxBodyBytes int64 `koanf:"max_body_bytes"`
}

// New creates a Config with defaults. Context is accepted first to satisfy
// the project-wide convention; it is reserved for future use.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:             "info",
		Addr:                 ":9080",
		UpstreamBaseURL:      "https://live.rankedin.com/api/v1",
		UpstreamTimeoutMS:    6000,
		Provider:             "rankedin",
		StoreBackend:         "memory",
		RedisAddr:            "localhost:6379",
		RedisPassword:        "",
		RedisDB:              0,
		EventTTLSeconds:      30,
		TriggerRatePerSecond: 2,
		TriggerBurst:         5,
		MaxBodyBytes:         1 << 16,
	}
}
