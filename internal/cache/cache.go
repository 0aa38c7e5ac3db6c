// Package cache holds the TTL caches injected into the provider layer.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss is returned by Get when the key is absent or expired.
var ErrMiss = errors.New("cache: miss")

// Cache is a byte-oriented key/value store with per-entry expiry.
// A ttl of zero keeps the entry until it is invalidated.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Invalidate(ctx context.Context, key string) error
	Close() error
}

// Backend names accepted by New.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Config selects and configures a backend.
type Config struct {
	Backend  string
	RedisURL string
	Prefix   string
	Timeout  time.Duration
}

// New builds the configured backend. Unknown backends fall back to memory.
func New(cfg Config) (Cache, error) {
	switch cfg.Backend {
	case BackendRedis:
		return NewRedis(RedisConfig{URL: cfg.RedisURL, Prefix: cfg.Prefix, Timeout: cfg.Timeout})
	default:
		return NewMemory(), nil
	}
}
