package config

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New(ctx))
//  2. file (YAML) if COURTSIDE_CONFIG is set
//  3. env (prefix COURTSIDE_)
func Load(ctx context.Context) (*Config, error) {
	base := New(ctx)

	k := koanf.New(".")

	if path := os.Getenv("COURTSIDE_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Environment variables: COURTSIDE_ADDR, COURTSIDE_UPSTREAM_BASE_URL, ...
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("COURTSIDE_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "courtside_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.Addr == "" {
		return nil, errors.New("addr must not be empty")
	}
	if cfg.UpstreamBaseURL == "" {
		return nil, errors.New("upstream_base_url must not be empty")
	}
	switch cfg.StoreBackend {
	case "memory", "redis":
	default:
		return nil, errors.New("store_backend must be memory or redis")
	}
	if cfg.EventTTLSeconds <= 0 {
		return nil, errors.New("event_ttl_seconds must be positive")
	}
	return &cfg, nil
}
