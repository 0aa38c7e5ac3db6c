package bracket

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/nba-standings-service/internal/domain/games"
	"github.com/preston-bernstein/nba-standings-service/internal/domain/teams"
)

// SeedsPerConference is the playoff field size of each conference.
const SeedsPerConference = 8

// FinalsID names the championship series node.
const FinalsID = "finals"

var playoffRoundNames = []string{"First Round", "Conference Semifinals", "Conference Finals", "Finals"}

// first-round pairings by seed, top to bottom; adjacent pairs feed the same semifinal.
var firstRound = [4][2]int{{1, 8}, {4, 5}, {3, 6}, {2, 7}}

// Playoffs builds the best-of-seven bracket from eight seeds per conference and advances it
// over the ledger's series games. seeds[conf][i] holds seed i+1.
func Playoffs(seeds map[teams.Conference][]Slot, ledger []games.Game) (Bracket, error) {
	for _, conf := range teams.Conferences {
		if len(seeds[conf]) < SeedsPerConference {
			return Bracket{}, fmt.Errorf("%w: %s has %d seeds", ErrIncomplete, conf, len(seeds[conf]))
		}
	}

	rounds := make([][]*Matchup, 4)
	for _, conf := range teams.Conferences {
		prefix := strings.ToLower(string(conf))
		list := seeds[conf]
		for _, pair := range firstRound {
			a, b := list[pair[0]-1], list[pair[1]-1]
			a.Seed, b.Seed = pair[0], pair[1]
			m := &Matchup{ID: fmt.Sprintf("%s-r1-%dv%d", prefix, pair[0], pair[1]), Conference: conf}
			m.seat(a, b)
			rounds[0] = append(rounds[0], m)
		}
		r1 := rounds[0][len(rounds[0])-4:]
		rounds[1] = append(rounds[1],
			&Matchup{ID: prefix + "-r2-top", Conference: conf, Feeds: []string{r1[0].ID, r1[1].ID}},
			&Matchup{ID: prefix + "-r2-bottom", Conference: conf, Feeds: []string{r1[2].ID, r1[3].ID}},
		)
		rounds[2] = append(rounds[2], &Matchup{
			ID:         prefix + "-finals",
			Conference: conf,
			Feeds:      []string{prefix + "-r2-top", prefix + "-r2-bottom"},
		})
	}
	// East champion takes slot A.
	rounds[3] = []*Matchup{{ID: FinalsID, Feeds: []string{"east-finals", "west-finals"}}}

	engine, err := NewEngine(BestOfSeven, playoffRoundNames, rounds)
	if err != nil {
		return Bracket{}, err
	}
	engine.Advance(seriesGames(ledger))
	return engine.Bracket(), nil
}

// seriesGames keeps the elimination-series games; regular-season meetings never count.
func seriesGames(ledger []games.Game) []games.Game {
	out := make([]games.Game, 0)
	for _, g := range ledger {
		if g.IsSeries() && !g.IsPreseason() {
			out = append(out, g)
		}
	}
	return out
}
