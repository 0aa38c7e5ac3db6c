package providers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/preston-bernstein/nba-standings-service/internal/domain/games"
	"github.com/preston-bernstein/nba-standings-service/internal/logging"
	"github.com/preston-bernstein/nba-standings-service/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
	maxBackoff           = 10 * time.Second
)

// retryingProvider wraps a GameProvider with exponential backoff and records every attempt.
type retryingProvider struct {
	inner        GameProvider
	logger       *slog.Logger
	metrics      *metrics.Recorder
	providerName string
	maxAttempts  int
	newBackOff   func() backoff.BackOff
	sleep        func(ctx context.Context, d time.Duration)
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingProvider(inner GameProvider, logger *slog.Logger, recorder *metrics.Recorder, providerName string, maxAttempts int, initial time.Duration) GameProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if initial <= 0 {
		initial = defaultBackoff
	}
	return &retryingProvider{
		inner:        inner,
		logger:       logger,
		metrics:      recorder,
		providerName: providerName,
		maxAttempts:  maxAttempts,
		sleep:        sleepContext,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = initial
			b.MaxInterval = maxBackoff
			b.MaxElapsedTime = 0
			return b
		},
	}
}

func (r *retryingProvider) FetchSchedule(ctx context.Context) (games.Ledger, error) {
	attempt := 0
	policy := backoff.WithContext(
		backoff.WithMaxRetries(r.newBackOff(), uint64(r.maxAttempts-1)),
		ctx,
	)

	op := func() (games.Ledger, error) {
		attempt++
		start := time.Now()
		ledger, err := r.inner.FetchSchedule(ctx)
		r.metrics.RecordProviderAttempt(r.providerName, time.Since(start), err)
		if err == nil {
			return ledger, nil
		}
		if errors.Is(err, ErrProviderUnavailable) || errors.Is(err, context.Canceled) {
			return games.Ledger{}, backoff.Permanent(err)
		}
		if rl, ok := AsRateLimitError(err); ok {
			r.metrics.RecordRateLimit(r.providerName, rl.RetryAfter)
			if rl.RetryAfter > 0 && attempt < r.maxAttempts {
				// Honor the upstream's hint on top of the backoff delay.
				r.sleep(ctx, min(rl.RetryAfter, maxBackoff))
			}
		}
		return games.Ledger{}, err
	}
	notify := func(err error, delay time.Duration) {
		r.logWarn(ctx, "provider fetch retry",
			logging.FieldProvider, r.providerName,
			"attempt", attempt,
			"max_attempts", r.maxAttempts,
			"delay", delay,
			logging.FieldError, err,
		)
	}

	ledger, err := backoff.RetryNotifyWithData(op, policy, notify)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return games.Ledger{}, ctxErr
		}
		r.logWarn(ctx, "provider fetch failed", logging.FieldProvider, r.providerName, "attempts", attempt, logging.FieldError, err)
		return games.Ledger{}, err
	}
	return ledger, nil
}

func (r *retryingProvider) logWarn(ctx context.Context, msg string, args ...any) {
	logger := logging.FromContext(ctx, r.logger)
	if logger != nil {
		logger.Warn(msg, args...)
	}
}

func sleepContext(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
