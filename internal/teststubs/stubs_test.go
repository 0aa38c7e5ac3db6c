package teststubs

import (
	"context"
	"errors"
	"testing"

	"github.com/preston-bernstein/nba-standings-service/internal/domain/games"
)

func TestStubProviderTracksCalls(t *testing.T) {
	err := errors.New("boom")
	p := &StubProvider{Ledger: games.NewLedger("2024-25", []games.Game{{ID: "g1"}}), Err: err}
	if _, got := p.FetchSchedule(context.Background()); !errors.Is(got, err) {
		t.Fatalf("expected error passthrough, got %v", got)
	}
	if p.Calls.Load() != 1 {
		t.Fatalf("expected call count 1, got %d", p.Calls.Load())
	}

	p.Set(games.NewLedger("2025-26", nil), nil)
	ledger, got := p.FetchSchedule(context.Background())
	if got != nil || ledger.Season != "2025-26" {
		t.Fatalf("expected swapped response, got %+v %v", ledger, got)
	}
}

func TestStubProviderClosesNotifyOnce(t *testing.T) {
	p := &StubProvider{Notify: make(chan struct{})}
	_, _ = p.FetchSchedule(context.Background())
	_, _ = p.FetchSchedule(context.Background())
	select {
	case <-p.Notify:
	default:
		t.Fatalf("expected notify closed")
	}
}

func TestStubLedgerWriter(t *testing.T) {
	w := &StubLedgerWriter{}
	if _, ok := w.Last(); ok {
		t.Fatalf("expected nothing written")
	}
	w.SetLedger(games.NewLedger("a", nil))
	w.SetLedger(games.NewLedger("b", nil))
	last, ok := w.Last()
	if !ok || last.Season != "b" || len(w.Written) != 2 {
		t.Fatalf("unexpected writes %+v", w.Written)
	}
}
