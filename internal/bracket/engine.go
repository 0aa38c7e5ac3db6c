package bracket

import (
	"fmt"
	"slices"
	"strings"

	"github.com/preston-bernstein/nba-standings-service/internal/domain/games"
)

// OrientFunc may reorder or re-seed a matchup right after it is seated from its feeds.
type OrientFunc func(m *Matchup)

// Engine advances a fixed bracket layout. It keeps no state beyond its nodes, so a fresh
// engine over the same layout and pool always yields the same bracket.
type Engine struct {
	format Format
	names  []string
	rounds [][]*Matchup
	byID   map[string]*Matchup
	orient OrientFunc
}

// NewEngine validates the layout: IDs are unique and every feed names a node of an
// earlier round.
func NewEngine(format Format, names []string, rounds [][]*Matchup) (*Engine, error) {
	e := &Engine{
		format: format,
		names:  names,
		rounds: rounds,
		byID:   make(map[string]*Matchup),
	}
	for i, round := range rounds {
		for _, m := range round {
			if _, dup := e.byID[m.ID]; dup {
				return nil, fmt.Errorf("bracket: duplicate matchup %q", m.ID)
			}
			if len(m.Feeds) != 0 && len(m.Feeds) != 2 {
				return nil, fmt.Errorf("bracket: matchup %q needs two feeds, has %d", m.ID, len(m.Feeds))
			}
			for _, feed := range m.Feeds {
				src, ok := e.byID[feed]
				if !ok || src.Round >= i+1 {
					return nil, fmt.Errorf("bracket: matchup %q fed by unknown or later node %q", m.ID, feed)
				}
			}
			m.Round = i + 1
			if m.Series == "" {
				m.Series = "0-0"
			}
			e.byID[m.ID] = m
		}
	}
	return e, nil
}

// WithOrient installs a hook run whenever a later-round node is seated.
func (e *Engine) WithOrient(fn OrientFunc) *Engine {
	e.orient = fn
	return e
}

// Advance walks the rounds in order. Each open node consumes, oldest first, the games
// between its two teams until it resolves; consumed games leave the pool so a rematch in a
// later round is never credited to an earlier one. Only completed games are consumed; live,
// scheduled and postponed games stay in the pool. The unconsumed games are returned.
func (e *Engine) Advance(pool []games.Game) []games.Game {
	remaining := chronological(pool)
	for _, round := range e.rounds {
		for _, m := range round {
			if m.State == Unseeded {
				e.seatFromFeeds(m)
			}
			if m.State == Seeded || m.State == InProgress {
				remaining = e.consume(m, remaining)
			}
		}
	}
	return remaining
}

// Bracket snapshots the nodes for display.
func (e *Engine) Bracket() Bracket {
	out := Bracket{Format: e.format, Rounds: make([]Round, len(e.rounds))}
	for i, round := range e.rounds {
		r := Round{Number: i + 1, Matchups: make([]Matchup, len(round))}
		if i < len(e.names) {
			r.Name = e.names[i]
		}
		for j, m := range round {
			r.Matchups[j] = clone(m)
		}
		out.Rounds[i] = r
	}
	if n := len(e.rounds); n > 0 && len(e.rounds[n-1]) == 1 {
		if champ, ok := e.rounds[n-1][0].Winner(); ok {
			out.Champion = &champ
		}
	}
	return out
}

func (e *Engine) seatFromFeeds(m *Matchup) {
	if len(m.Feeds) != 2 {
		return
	}
	a, okA := e.byID[m.Feeds[0]].Winner()
	b, okB := e.byID[m.Feeds[1]].Winner()
	if !okA || !okB {
		return
	}
	m.seat(a, b)
	if e.orient != nil {
		e.orient(m)
	}
}

func (e *Engine) consume(m *Matchup, pool []games.Game) []games.Game {
	kept := make([]games.Game, 0, len(pool))
	counted := [2]int{m.WinsA, m.WinsB}
	for _, g := range pool {
		if m.State == Resolved || !g.Involves(m.TeamA.Tricode, m.TeamB.Tricode) {
			kept = append(kept, g)
			continue
		}
		winner, _, ok := g.Result()
		if !ok || !g.IsFinal() {
			kept = append(kept, g)
			continue
		}
		if winner.Tricode == m.TeamA.Tricode {
			counted[0]++
		} else {
			counted[1]++
		}
		m.Games = append(m.Games, g.ID)

		winsA, winsB := counted[0], counted[1]
		if a, b, ok := NormalizeSeries(g.SeriesText, m.TeamA.Tricode, m.TeamB.Tricode); ok {
			winsA, winsB = a, b
		}
		m.setScore(winsA, winsB, e.format)
	}
	return kept
}

func chronological(pool []games.Game) []games.Game {
	out := slices.Clone(pool)
	slices.SortStableFunc(out, func(a, b games.Game) int {
		if c := a.StartTime.Compare(b.StartTime); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

func clone(m *Matchup) Matchup {
	out := *m
	out.Feeds = slices.Clone(m.Feeds)
	out.Games = slices.Clone(m.Games)
	if m.Leader != nil {
		lead := *m.Leader
		out.Leader = &lead
	}
	return out
}
