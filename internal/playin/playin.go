// Package playin resolves the 7th and 8th playoff seeds of a conference from the three play-in
// games that follow the regular season.
package playin

import (
	"errors"
	"slices"
	"strings"
	"time"
	_ "time/tzdata" // calendar bucketing must work on images without zoneinfo

	"github.com/preston-bernstein/nba-standings-service/internal/domain/games"
	"github.com/preston-bernstein/nba-standings-service/internal/standings"
	"github.com/preston-bernstein/nba-standings-service/internal/timeutil"
)

// ErrIncomplete means the play-in cannot be resolved yet. No partial result is returned.
var ErrIncomplete = errors.New("playin: incomplete")

const (
	// DefaultRegularSeasonGameCount is the number of games on the final day of the regular
	// season, when every team plays.
	DefaultRegularSeasonGameCount = 15
	// DefaultTimeZone buckets game start times into league calendar days.
	DefaultTimeZone = "America/New_York"

	teamsNeeded = 10
)

// Options tunes how the end of the regular season is detected.
type Options struct {
	RegularSeasonGameCount int
	Location               *time.Location
}

// DefaultOptions returns the standard league settings.
func DefaultOptions() Options {
	return Options{
		RegularSeasonGameCount: DefaultRegularSeasonGameCount,
		Location:               timeutil.ResolveLocation(DefaultTimeZone, time.UTC),
	}
}

func (o Options) withDefaults() Options {
	if o.RegularSeasonGameCount <= 0 {
		o.RegularSeasonGameCount = DefaultRegularSeasonGameCount
	}
	if o.Location == nil {
		o.Location = timeutil.ResolveLocation(DefaultTimeZone, time.UTC)
	}
	return o
}

// Result is a resolved play-in tournament for one conference.
type Result struct {
	Seed7  standings.Standing `json:"seed7"`
	Seed8  standings.Standing `json:"seed8"`
	Games  []games.Game       `json:"games"`
	EndDay string             `json:"regularSeasonEnd"`
}

// Resolve plays out the conference's play-in from the ledger. ranked must be the conference
// standings best-first.
//
// Game 1 pairs ranks 7 and 8 and its winner is seed 7. Game 2 pairs ranks 9 and 10. Game 3 pairs
// the game 1 loser with the game 2 winner and its winner is seed 8.
func Resolve(ranked []standings.Standing, ledger []games.Game, opts Options) (Result, error) {
	if len(ranked) < teamsNeeded {
		return Result{}, ErrIncomplete
	}
	opts = opts.withDefaults()

	endDay, ok := RegularSeasonEnd(ledger, opts)
	if !ok {
		return Result{}, ErrIncomplete
	}
	pool := candidates(ledger, endDay, opts.Location)

	byCode := make(map[string]standings.Standing, len(ranked))
	for _, row := range ranked {
		byCode[row.Tricode] = row
	}

	g1, w1, l1, ok := decide(pool, ranked[6].Tricode, ranked[7].Tricode)
	if !ok {
		return Result{}, ErrIncomplete
	}
	g2, w2, _, ok := decide(pool, ranked[8].Tricode, ranked[9].Tricode)
	if !ok {
		return Result{}, ErrIncomplete
	}
	g3, w3, _, ok := decide(pool, l1, w2)
	if !ok {
		return Result{}, ErrIncomplete
	}

	seed7, seed8 := byCode[w1], byCode[w3]
	seed7.Seed, seed8.Seed = 7, 8
	return Result{
		Seed7:  seed7,
		Seed8:  seed8,
		Games:  []games.Game{g1, g2, g3},
		EndDay: endDay,
	}, nil
}

// Seeds returns the conference's eight playoff seeds: 1-6 from the standings, 7 and 8 from the
// play-in.
func Seeds(ranked []standings.Standing, result Result) []standings.Standing {
	n := min(6, len(ranked))
	out := make([]standings.Standing, 0, 8)
	out = append(out, ranked[:n]...)
	return append(out, result.Seed7, result.Seed8)
}

// RegularSeasonEnd returns the last calendar day holding exactly the configured number of
// non-exhibition games.
func RegularSeasonEnd(ledger []games.Game, opts Options) (string, bool) {
	opts = opts.withDefaults()
	perDay := make(map[string]int)
	for _, g := range ledger {
		if g.IsPreseason() {
			continue
		}
		perDay[timeutil.DayKey(g.StartTime, opts.Location)]++
	}
	last := ""
	for day, n := range perDay {
		if n == opts.RegularSeasonGameCount && day > last {
			last = day
		}
	}
	return last, last != ""
}

// RegularSeason returns the ledger's games dated on or before the regular-season end day, so
// seeding is not disturbed by postseason results. ok is false when no end day is found yet.
func RegularSeason(ledger []games.Game, opts Options) ([]games.Game, bool) {
	opts = opts.withDefaults()
	endDay, ok := RegularSeasonEnd(ledger, opts)
	if !ok {
		return ledger, false
	}
	out := make([]games.Game, 0, len(ledger))
	for _, g := range ledger {
		if timeutil.DayKey(g.StartTime, opts.Location) <= endDay {
			out = append(out, g)
		}
	}
	return out, true
}

func candidates(ledger []games.Game, endDay string, loc *time.Location) []games.Game {
	var out []games.Game
	for _, g := range ledger {
		if !g.IsFinal() || g.IsSeries() || g.IsPreseason() {
			continue
		}
		if timeutil.DayKey(g.StartTime, loc) <= endDay {
			continue
		}
		out = append(out, g)
	}
	slices.SortStableFunc(out, func(a, b games.Game) int {
		if c := a.StartTime.Compare(b.StartTime); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

// decide finds the first game between a and b and returns its winner and loser tricodes.
func decide(pool []games.Game, a, b string) (games.Game, string, string, bool) {
	for _, g := range pool {
		if !g.Involves(a, b) {
			continue
		}
		w, l, ok := g.Result()
		if !ok {
			return games.Game{}, "", "", false
		}
		return g, w.Tricode, l.Tricode, true
	}
	return games.Game{}, "", "", false
}
