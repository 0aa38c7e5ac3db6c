package server

import (
	"log/slog"

	"github.com/preston-bernstein/nba-standings-service/internal/cache"
	"github.com/preston-bernstein/nba-standings-service/internal/config"
	"github.com/preston-bernstein/nba-standings-service/internal/logging"
	"github.com/preston-bernstein/nba-standings-service/internal/metrics"
	"github.com/preston-bernstein/nba-standings-service/internal/providers"
)

// providerFactory assembles the provider with shared wrappers (rate limit + retry + cache).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
	cache   cache.Cache
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder, c cache.Cache) providerFactory {
	return providerFactory{logger: logger, metrics: metrics, cache: c}
}

func (f providerFactory) build(cfg config.Config) providers.GameProvider {
	base := selectProvider(cfg, f.logger)
	limited := providers.NewRateLimitedProvider(base, cfg.Feed.MinInterval, f.logger)
	retrying := providers.NewRetryingProvider(limited, f.logger, f.metrics, normalizeProviderName(cfg.Provider, base), cfg.Feed.MaxAttempts, cfg.Feed.RetryInitial)
	if f.cache == nil {
		return retrying
	}
	return providers.NewCachingProvider(retrying, f.cache, cfg.Cache.TTL, f.logger, f.metrics)
}

// buildCache opens the configured schedule cache. A backend that cannot be opened degrades to memory.
func buildCache(cfg config.Config, logger *slog.Logger) cache.Cache {
	c, err := cache.New(cache.Config{
		Backend:  cfg.Cache.Backend,
		RedisURL: cfg.Cache.RedisURL,
		Prefix:   cfg.Cache.Prefix,
		Timeout:  cfg.Feed.Timeout,
	})
	if err != nil {
		logging.Warn(logger, "cache setup failed, using memory cache", logging.FieldError, err)
		return cache.NewMemory()
	}
	return c
}
