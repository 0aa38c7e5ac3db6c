package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nba-standings-service/internal/domain/games"
)

const rateLimitedName = "rate-limited"

// rateLimitedProvider wraps a GameProvider and enforces a minimum interval between calls.
type rateLimitedProvider struct {
	next     GameProvider
	interval time.Duration
	tokens   chan struct{}
	logger   *slog.Logger
}

// NewRateLimitedProvider returns a GameProvider that limits calls to the given interval.
// The first call goes through immediately; later calls block until the interval elapses.
func NewRateLimitedProvider(next GameProvider, interval time.Duration, logger *slog.Logger) GameProvider {
	if interval <= 0 {
		interval = time.Minute
	}
	p := &rateLimitedProvider{
		next:     next,
		interval: interval,
		tokens:   make(chan struct{}, 1),
		logger:   logger,
	}
	p.tokens <- struct{}{}
	return p
}

func (p *rateLimitedProvider) FetchSchedule(ctx context.Context) (games.Ledger, error) {
	if p == nil || p.next == nil {
		return games.Ledger{}, ErrProviderUnavailable
	}
	select {
	case <-ctx.Done():
		logWithProvider(ctx, p.logger, slog.LevelWarn, rateLimitedName, "rate-limited fetch canceled")
		return games.Ledger{}, ctx.Err()
	case <-p.tokens:
	}
	time.AfterFunc(p.interval, func() { p.tokens <- struct{}{} })

	logWithProvider(ctx, p.logger, slog.LevelDebug, rateLimitedName, "rate-limited provider fetch")
	return p.next.FetchSchedule(ctx)
}
