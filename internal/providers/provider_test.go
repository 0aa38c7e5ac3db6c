package providers

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/preston-bernstein/nba-standings-service/internal/domain/games"
)

// scriptedProvider fails the first `failures` calls with err, then returns ledger.
type scriptedProvider struct {
	mu       sync.Mutex
	failures int
	err      error
	ledger   games.Ledger
	calls    int
}

func (s *scriptedProvider) FetchSchedule(ctx context.Context) (games.Ledger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.calls <= s.failures {
		if s.err != nil {
			return games.Ledger{}, s.err
		}
		return games.Ledger{}, errors.New("boom")
	}
	return s.ledger, nil
}

func (s *scriptedProvider) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func okLedger() games.Ledger {
	return games.NewLedger("2024-25", []games.Game{{ID: "ok"}})
}

func TestGameProviderInterfaceImplemented(t *testing.T) {
	var _ GameProvider = (*scriptedProvider)(nil)
	var _ GameProvider = ProviderFunc(nil)
}

func TestProviderFuncDelegates(t *testing.T) {
	p := ProviderFunc(func(ctx context.Context) (games.Ledger, error) {
		return okLedger(), nil
	})
	ledger, err := p.FetchSchedule(context.Background())
	if err != nil || ledger.Season != "2024-25" {
		t.Fatalf("unexpected result %+v %v", ledger, err)
	}
}
