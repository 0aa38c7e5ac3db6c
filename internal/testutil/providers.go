package testutil

import (
	"context"

	"github.com/preston-bernstein/nba-standings-service/internal/domain/games"
	"github.com/preston-bernstein/nba-standings-service/internal/providers"
)

// GoodProvider returns the provided ledger with no error.
type GoodProvider struct {
	Ledger games.Ledger
}

func (p GoodProvider) FetchSchedule(ctx context.Context) (games.Ledger, error) {
	_ = ctx
	return p.Ledger, nil
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchSchedule(ctx context.Context) (games.Ledger, error) {
	_ = ctx
	return games.Ledger{}, p.Err
}

// UnavailableProvider returns ErrProviderUnavailable.
type UnavailableProvider struct{}

func (UnavailableProvider) FetchSchedule(ctx context.Context) (games.Ledger, error) {
	_ = ctx
	return games.Ledger{}, providers.ErrProviderUnavailable
}

// NotifyingProvider returns the ledger and closes Notify on first fetch.
type NotifyingProvider struct {
	Ledger games.Ledger
	Notify chan struct{}
}

func (p *NotifyingProvider) FetchSchedule(ctx context.Context) (games.Ledger, error) {
	_ = ctx
	if p.Notify != nil {
		select {
		case <-p.Notify:
		default:
			close(p.Notify)
		}
	}
	return p.Ledger, nil
}
