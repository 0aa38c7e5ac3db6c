// Package bracket advances single-elimination brackets (best-of-seven playoffs and the
// single-game cup) from a pool of completed games.
package bracket

import (
	"errors"
	"fmt"

	"github.com/preston-bernstein/nba-standings-service/internal/domain/teams"
)

var (
	// ErrIncomplete means not enough teams are seeded to build the bracket.
	ErrIncomplete = errors.New("bracket: incomplete")
	// ErrStale means the bracket belongs to a tournament that finished too long ago to show.
	ErrStale = errors.New("bracket: stale")
)

// State tracks a matchup through its lifecycle.
type State int

const (
	Unseeded State = iota
	Seeded
	InProgress
	Resolved
)

var stateNames = [...]string{"unseeded", "seeded", "in_progress", "resolved"}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// MarshalText renders the state name in JSON payloads.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Format says how many wins close a matchup.
type Format struct {
	WinsNeeded int `json:"winsNeeded"`
}

var (
	BestOfSeven = Format{WinsNeeded: 4}
	SingleGame  = Format{WinsNeeded: 1}
)

// Slot is one side of a matchup.
type Slot struct {
	Tricode string `json:"tricode" koanf:"tricode"`
	Seed    int    `json:"seed" koanf:"seed"`
}

// Empty reports whether no team occupies the slot.
func (s Slot) Empty() bool {
	return s.Tricode == ""
}

// Matchup is one bracket node. Feeds names the two prior-round nodes whose winners fill
// TeamA and TeamB, in that order; first-round nodes have no feeds.
type Matchup struct {
	ID         string           `json:"id"`
	Round      int              `json:"round"`
	Conference teams.Conference `json:"conference,omitempty"`
	TeamA      Slot             `json:"teamA"`
	TeamB      Slot             `json:"teamB"`
	WinsA      int              `json:"winsA"`
	WinsB      int              `json:"winsB"`
	Series     string           `json:"series"`
	Leader     *Slot            `json:"leader,omitempty"`
	State      State            `json:"state"`
	Feeds      []string         `json:"feeds,omitempty"`
	Games      []string         `json:"games,omitempty"`
}

// Winner returns the side that closed the matchup.
func (m *Matchup) Winner() (Slot, bool) {
	if m.State != Resolved || m.Leader == nil {
		return Slot{}, false
	}
	return *m.Leader, true
}

// seat fills both sides and opens the matchup.
func (m *Matchup) seat(a, b Slot) {
	m.TeamA, m.TeamB = a, b
	m.State = Seeded
	m.setScore(0, 0, Format{})
}

func (m *Matchup) setScore(winsA, winsB int, format Format) {
	m.WinsA, m.WinsB = winsA, winsB
	m.Series = fmt.Sprintf("%d-%d", winsA, winsB)
	switch {
	case winsA > winsB:
		lead := m.TeamA
		m.Leader = &lead
	case winsB > winsA:
		lead := m.TeamB
		m.Leader = &lead
	default:
		m.Leader = nil
	}
	switch {
	case format.WinsNeeded > 0 && max(winsA, winsB) >= format.WinsNeeded:
		m.State = Resolved
	case winsA+winsB > 0:
		m.State = InProgress
	}
}

// Round is one column of the bracket.
type Round struct {
	Number   int       `json:"number"`
	Name     string    `json:"name"`
	Matchups []Matchup `json:"matchups"`
}

// Bracket is a display-ready snapshot of an advanced bracket.
type Bracket struct {
	Format   Format  `json:"format"`
	Rounds   []Round `json:"rounds"`
	Champion *Slot   `json:"champion,omitempty"`
}

// Matchup looks a node up by ID.
func (b Bracket) Matchup(id string) (Matchup, bool) {
	for _, r := range b.Rounds {
		for _, m := range r.Matchups {
			if m.ID == id {
				return m, true
			}
		}
	}
	return Matchup{}, false
}
