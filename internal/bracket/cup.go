package bracket

import (
	"fmt"
	"strings"
	"time"

	"github.com/preston-bernstein/nba-standings-service/internal/domain/games"
	"github.com/preston-bernstein/nba-standings-service/internal/domain/teams"
)

// DefaultCupStaleAfter hides a finished cup bracket this long after its championship game.
const DefaultCupStaleAfter = 8 * 24 * time.Hour

// Cup node IDs. The external seed feed refers to matchups by these names.
const (
	CupFinalID = "final"
)

var (
	cupQuarterfinals = []string{"qf1", "qf2", "qf3", "qf4"}
	cupSemifinals    = []string{"sf1", "sf2"}
	cupRoundNames    = []string{"Quarterfinals", "Semifinals", "Championship"}
)

// CupSeed is one matchup entry of the externally supplied cup layout: who the high and low
// seeds are and which display slot ("A" or "B") the high seed occupies.
type CupSeed struct {
	Matchup    string           `json:"matchup" koanf:"matchup"`
	Conference teams.Conference `json:"conference,omitempty" koanf:"conference"`
	High       Slot             `json:"high" koanf:"high"`
	Low        Slot             `json:"low" koanf:"low"`
	HighSlot   string           `json:"highSlot" koanf:"highSlot"`
}

// place orders the two seeds into display slots.
func (c CupSeed) place() (Slot, Slot) {
	if strings.EqualFold(strings.TrimSpace(c.HighSlot), "B") {
		return c.Low, c.High
	}
	return c.High, c.Low
}

// Cup builds the single-game cup bracket from the seed feed and advances it over the
// ledger's cup knockout games. staleAfter <= 0 uses DefaultCupStaleAfter.
func Cup(feed []CupSeed, ledger []games.Game, now time.Time, staleAfter time.Duration) (Bracket, error) {
	if staleAfter <= 0 {
		staleAfter = DefaultCupStaleAfter
	}
	entries := make(map[string]CupSeed, len(feed))
	for _, s := range feed {
		entries[s.Matchup] = s
	}

	qf := make([]*Matchup, 0, len(cupQuarterfinals))
	for _, id := range cupQuarterfinals {
		s, ok := entries[id]
		if !ok || s.High.Empty() || s.Low.Empty() {
			return Bracket{}, fmt.Errorf("%w: cup quarterfinal %s not seeded", ErrIncomplete, id)
		}
		m := &Matchup{ID: id, Conference: s.Conference}
		m.seat(s.place())
		qf = append(qf, m)
	}

	pool := cupGames(ledger)
	for _, g := range pool {
		if g.CupStage() == games.CupChampionship && now.Sub(g.StartTime) > staleAfter {
			return Bracket{}, ErrStale
		}
	}

	rounds := [][]*Matchup{
		qf,
		{
			{ID: cupSemifinals[0], Feeds: []string{"qf1", "qf2"}},
			{ID: cupSemifinals[1], Feeds: []string{"qf3", "qf4"}},
		},
		{{ID: CupFinalID, Feeds: cupSemifinals}},
	}
	engine, err := NewEngine(SingleGame, cupRoundNames, rounds)
	if err != nil {
		return Bracket{}, err
	}
	engine.WithOrient(func(m *Matchup) { orientCup(m, entries[m.ID]) })
	engine.Advance(pool)
	return engine.Bracket(), nil
}

// orientCup applies the feed's slot assignment once the node's two teams are known. Entries
// that do not name the same two teams are ignored.
func orientCup(m *Matchup, s CupSeed) {
	if s.High.Empty() || s.Low.Empty() {
		return
	}
	same := (s.High.Tricode == m.TeamA.Tricode && s.Low.Tricode == m.TeamB.Tricode) ||
		(s.High.Tricode == m.TeamB.Tricode && s.Low.Tricode == m.TeamA.Tricode)
	if !same {
		return
	}
	if s.Conference != "" {
		m.Conference = s.Conference
	}
	m.seat(s.place())
}

func cupGames(ledger []games.Game) []games.Game {
	out := make([]games.Game, 0)
	for _, g := range ledger {
		if g.CupStage() != games.CupNone {
			out = append(out, g)
		}
	}
	return out
}
