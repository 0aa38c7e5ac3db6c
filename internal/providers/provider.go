package providers

import (
	"context"

	"github.com/preston-bernstein/nba-standings-service/internal/domain/games"
)

// GameProvider fetches the full season schedule and normalizes it into a ledger.
// Implementations return every game of the season regardless of status; callers decide
// what counts.
type GameProvider interface {
	FetchSchedule(ctx context.Context) (games.Ledger, error)
}

// ProviderFunc adapts a function into a GameProvider.
type ProviderFunc func(ctx context.Context) (games.Ledger, error)

// FetchSchedule calls f.
func (f ProviderFunc) FetchSchedule(ctx context.Context) (games.Ledger, error) {
	return f(ctx)
}
