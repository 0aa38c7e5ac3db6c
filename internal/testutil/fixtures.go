package testutil

import (
	"fmt"
	"time"

	"github.com/preston-bernstein/nba-standings-service/internal/domain/games"
)

// SeasonStart is the reference tip-off used by fixtures.
var SeasonStart = time.Date(2024, 10, 22, 23, 30, 0, 0, time.UTC)

// Day returns SeasonStart shifted by n days.
func Day(n int) time.Time {
	return SeasonStart.AddDate(0, 0, n)
}

// Team builds a team reference with a score.
func Team(tricode string, score int) games.TeamRef {
	return games.TeamRef{Tricode: tricode, Score: games.IntPtr(score)}
}

// FinalGame builds a completed regular-season game.
func FinalGame(id string, at time.Time, home string, homeScore int, away string, awayScore int) games.Game {
	return games.Game{
		ID:        id,
		Code:      fmt.Sprintf("%s/%s%s", at.Format("20060102"), away, home),
		StartTime: at,
		Status:    games.StatusFinal,
		HomeTeam:  Team(home, homeScore),
		AwayTeam:  Team(away, awayScore),
	}
}

// ScheduledGame builds a game that has not been played yet.
func ScheduledGame(id string, at time.Time, home, away string) games.Game {
	return games.Game{
		ID:        id,
		Code:      fmt.Sprintf("%s/%s%s", at.Format("20060102"), away, home),
		StartTime: at,
		Status:    games.StatusScheduled,
		HomeTeam:  games.TeamRef{Tricode: home},
		AwayTeam:  games.TeamRef{Tricode: away},
	}
}

// SeriesGame builds a completed playoff game carrying the feed's series text.
func SeriesGame(id string, at time.Time, home string, homeScore int, away string, awayScore int, series string) games.Game {
	g := FinalGame(id, at, home, homeScore, away, awayScore)
	g.SeriesText = series
	g.Label = "East First Round"
	return g
}

// SampleLedger returns a tiny ledger with one final and one scheduled game.
func SampleLedger() games.Ledger {
	return games.NewLedger("2024-25", []games.Game{
		FinalGame("g1", Day(0), "BOS", 110, "NYK", 101),
		ScheduledGame("g2", Day(1), "LAL", "MIN"),
	})
}
