package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/preston-bernstein/nba-standings-service/internal/cache"
	"github.com/preston-bernstein/nba-standings-service/internal/domain/games"
	"github.com/preston-bernstein/nba-standings-service/internal/logging"
	"github.com/preston-bernstein/nba-standings-service/internal/metrics"
)

const (
	scheduleKey = "schedule"
	seasonKey   = "season"
	cachedName  = "cached"

	defaultScheduleTTL = 5 * time.Minute
)

// cachingProvider serves the schedule from an injected cache and collapses concurrent
// misses into one upstream fetch. It also remembers the last season the feed reported so a
// payload without a season year can still be labelled.
type cachingProvider struct {
	next    GameProvider
	cache   cache.Cache
	ttl     time.Duration
	group   singleflight.Group
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewCachingProvider wraps next with the given cache. A ttl <= 0 uses five minutes.
func NewCachingProvider(next GameProvider, c cache.Cache, ttl time.Duration, logger *slog.Logger, recorder *metrics.Recorder) GameProvider {
	if ttl <= 0 {
		ttl = defaultScheduleTTL
	}
	return &cachingProvider{next: next, cache: c, ttl: ttl, logger: logger, metrics: recorder}
}

func (p *cachingProvider) FetchSchedule(ctx context.Context) (games.Ledger, error) {
	if p.next == nil {
		return games.Ledger{}, ErrProviderUnavailable
	}
	ledger, ok := p.cached(ctx)
	if p.metrics != nil {
		p.metrics.RecordCacheLookup(ok)
	}
	if ok {
		return ledger, nil
	}

	v, err, shared := p.group.Do(scheduleKey, func() (any, error) {
		ledger, err := p.next.FetchSchedule(ctx)
		if err != nil {
			return games.Ledger{}, err
		}
		return p.store(ctx, ledger), nil
	})
	if err != nil {
		return games.Ledger{}, err
	}
	if shared {
		logWithProvider(ctx, p.logger, slog.LevelDebug, cachedName, "schedule fetch shared")
	}
	return v.(games.Ledger), nil
}

// Invalidate drops the cached schedule so the next fetch goes upstream.
func (p *cachingProvider) Invalidate(ctx context.Context) error {
	return p.cache.Invalidate(ctx, scheduleKey)
}

func (p *cachingProvider) cached(ctx context.Context) (games.Ledger, bool) {
	raw, err := p.cache.Get(ctx, scheduleKey)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			logWithProvider(ctx, p.logger, slog.LevelWarn, cachedName, "schedule cache read failed", logging.FieldError, err)
		}
		return games.Ledger{}, false
	}
	var ledger games.Ledger
	if err := json.Unmarshal(raw, &ledger); err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, cachedName, "schedule cache entry corrupt", logging.FieldError, err)
		_ = p.cache.Invalidate(ctx, scheduleKey)
		return games.Ledger{}, false
	}
	return ledger, true
}

// store fills a missing season from the last known one, then writes both entries. Cache write
// failures are logged; the fetched ledger is still returned.
func (p *cachingProvider) store(ctx context.Context, ledger games.Ledger) games.Ledger {
	if ledger.Season == "" {
		if raw, err := p.cache.Get(ctx, seasonKey); err == nil {
			ledger.Season = string(raw)
		}
	} else if err := p.cache.Set(ctx, seasonKey, []byte(ledger.Season), 0); err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, cachedName, "season cache write failed", logging.FieldError, err)
	}

	raw, err := json.Marshal(ledger)
	if err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, cachedName, "schedule encode failed", logging.FieldError, fmt.Errorf("encode ledger: %w", err))
		return ledger
	}
	if err := p.cache.Set(ctx, scheduleKey, raw, p.ttl); err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, cachedName, "schedule cache write failed", logging.FieldError, err)
	}
	return ledger
}
