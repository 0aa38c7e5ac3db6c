package store

import (
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/preston-bernstein/nba-standings-service/internal/domain/games"
)

// MemoryStore keeps a thread-safe snapshot of the season ledger in memory. Readers always
// get a consistent copy; a new snapshot replaces the old one wholesale.
type MemoryStore struct {
	mu        sync.RWMutex
	season    string
	games     []games.Game
	byID      map[string]int
	version   uint64
	updatedAt time.Time
	now       func() time.Time
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID: make(map[string]int),
		now:  time.Now,
	}
}

// SetLedger replaces the stored snapshot. Games are kept in start-time order and duplicate
// IDs collapse to the last occurrence.
func (s *MemoryStore) SetLedger(ledger games.Ledger) {
	seen := make(map[string]int, len(ledger.Games))
	list := make([]games.Game, 0, len(ledger.Games))
	for _, g := range ledger.Games {
		if i, ok := seen[g.ID]; ok {
			list[i] = g
			continue
		}
		seen[g.ID] = len(list)
		list = append(list, g)
	}
	slices.SortStableFunc(list, func(a, b games.Game) int {
		if c := a.StartTime.Compare(b.StartTime); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	byID := make(map[string]int, len(list))
	for i, g := range list {
		byID[g.ID] = i
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.season = ledger.Season
	s.games = list
	s.byID = byID
	s.version++
	s.updatedAt = s.now()
}

// Ledger returns a copy of the current snapshot.
func (s *MemoryStore) Ledger() games.Ledger {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return games.NewLedger(s.season, slices.Clone(s.games))
}

// ListGames returns a copy of the current games slice.
func (s *MemoryStore) ListGames() []games.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.games)
}

// GetGame retrieves a game by ID.
func (s *MemoryStore) GetGame(id string) (games.Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byID[id]
	if !ok {
		return games.Game{}, false
	}
	return s.games[i], true
}

// Version increments on every SetLedger; zero means nothing has been stored yet.
func (s *MemoryStore) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// UpdatedAt reports when the current snapshot was stored.
func (s *MemoryStore) UpdatedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updatedAt
}
