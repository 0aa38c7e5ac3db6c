package server

import (
	"context"
	"strings"
	"testing"

	"github.com/preston-bernstein/nba-standings-service/internal/cache"
	"github.com/preston-bernstein/nba-standings-service/internal/config"
	"github.com/preston-bernstein/nba-standings-service/internal/metrics"
	"github.com/preston-bernstein/nba-standings-service/internal/testutil"
)

func TestProviderFactoryBuildsWithDefaultInterval(t *testing.T) {
	factory := newProviderFactory(nil, nil, nil)
	prov := factory.build(config.Config{Provider: "fixture"})
	if prov == nil {
		t.Fatalf("expected provider")
	}
}

func TestProviderFactoryCachesSchedule(t *testing.T) {
	rec := metrics.NewRecorder()
	factory := newProviderFactory(nil, rec, cache.NewMemory())
	prov := factory.build(config.Default())

	first, err := prov.FetchSchedule(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := prov.FetchSchedule(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first.Games) == 0 || len(first.Games) != len(second.Games) {
		t.Fatalf("expected identical cached ledgers, got %d and %d", len(first.Games), len(second.Games))
	}
	if rec.CacheLookups(metrics.OutcomeHit) != 1 {
		t.Fatalf("expected one cache hit, got %d", rec.CacheLookups(metrics.OutcomeHit))
	}
}

func TestBuildCacheFallsBackToMemory(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	cfg := config.Config{Cache: config.CacheConfig{Backend: cache.BackendRedis, RedisURL: "not-a-url"}}

	c := buildCache(cfg, logger)
	if _, ok := c.(*cache.Memory); !ok {
		t.Fatalf("expected memory fallback, got %T", c)
	}
	if !strings.Contains(buf.String(), "cache setup failed") {
		t.Fatalf("expected warning, got %s", buf.String())
	}
}
