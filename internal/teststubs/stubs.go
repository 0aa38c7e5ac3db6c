package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/nba-standings-service/internal/domain/games"
)

// StubProvider is a test double for providers.GameProvider.
type StubProvider struct {
	mu     sync.Mutex
	Ledger games.Ledger
	Err    error
	Calls  atomic.Int32
	Notify chan struct{}
}

// FetchSchedule returns the configured ledger and error while tracking calls. The first call
// closes Notify when set.
func (s *StubProvider) FetchSchedule(ctx context.Context) (games.Ledger, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	return s.Ledger, s.Err
}

// Set swaps the configured response; safe while a poller is running.
func (s *StubProvider) Set(ledger games.Ledger, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Ledger = ledger
	s.Err = err
}

// StubLedgerWriter is a test double for poller.LedgerWriter.
type StubLedgerWriter struct {
	mu      sync.Mutex
	Written []games.Ledger
}

// SetLedger records the ledger for verification in tests.
func (w *StubLedgerWriter) SetLedger(ledger games.Ledger) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.Written = append(w.Written, ledger)
}

// Last returns the most recently written ledger.
func (w *StubLedgerWriter) Last() (games.Ledger, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.Written) == 0 {
		return games.Ledger{}, false
	}
	return w.Written[len(w.Written)-1], true
}
