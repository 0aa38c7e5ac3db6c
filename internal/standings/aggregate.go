package standings

import (
	"sort"

	"github.com/preston-bernstein/nba-standings-service/internal/domain/games"
	"github.com/preston-bernstein/nba-standings-service/internal/domain/teams"
)

// Counts reports whether a game contributes to standings: final, not an exhibition,
// and not the cup championship.
func Counts(g games.Game) bool {
	return g.IsFinal() && !g.IsPreseason() && !g.IsCupChampionship()
}

// Aggregate rebuilds every team's record from the ledger. It never mutates the ledger and
// never fails: games with a missing team or score are skipped.
func Aggregate(ledger []games.Game, table teams.Table) map[string]Record {
	index := make(map[string]*Record)

	// Seed every team seen in any game so 0-0 teams show up from day one.
	for _, g := range ledger {
		seed(index, g.HomeTeam, table)
		seed(index, g.AwayTeam, table)
	}

	counted := make([]games.Game, 0, len(ledger))
	for _, g := range ledger {
		if Counts(g) {
			counted = append(counted, g)
		}
	}
	sort.SliceStable(counted, func(i, j int) bool {
		if !counted[i].StartTime.Equal(counted[j].StartTime) {
			return counted[i].StartTime.Before(counted[j].StartTime)
		}
		return counted[i].ID < counted[j].ID
	})

	for _, g := range counted {
		apply(index, g)
	}

	out := make(map[string]Record, len(index))
	for code, rec := range index {
		out[code] = *rec
	}
	return out
}

func seed(index map[string]*Record, ref games.TeamRef, table teams.Table) {
	if ref.Tricode == "" {
		return
	}
	if _, ok := index[ref.Tricode]; ok {
		return
	}
	rec := &Record{
		Tricode:    ref.Tricode,
		TeamID:     ref.ID,
		City:       ref.City,
		Name:       ref.Name,
		HeadToHead: make(map[string]WinLoss),
	}
	if team, ok := table.Lookup(ref.Tricode); ok {
		rec.Conference = team.Conference
		rec.Division = team.Division
		if rec.City == "" {
			rec.City = team.City
		}
		if rec.Name == "" {
			rec.Name = team.Name
		}
		if rec.TeamID == 0 {
			rec.TeamID = team.ID
		}
	}
	index[ref.Tricode] = rec
}

func apply(index map[string]*Record, g games.Game) {
	if !g.HasTeams() {
		return
	}
	winnerRef, loserRef, ok := g.Result()
	if !ok {
		return
	}
	winner, loser := index[winnerRef.Tricode], index[loserRef.Tricode]
	if winner == nil || loser == nil {
		return
	}
	winnerHome := winnerRef.Tricode == g.HomeTeam.Tricode

	winner.Overall.Wins++
	loser.Overall.Losses++

	switch {
	case g.IsNeutral:
		winner.Neutral.Wins++
		loser.Neutral.Losses++
	case winnerHome:
		winner.Home.Wins++
		loser.Away.Losses++
	default:
		winner.Away.Wins++
		loser.Home.Losses++
	}

	if winner.Conference != "" && winner.Conference == loser.Conference {
		winner.Conf.Wins++
		loser.Conf.Losses++
	}
	if winner.Division != "" && winner.Division == loser.Division {
		winner.Div.Wins++
		loser.Div.Losses++
	}

	wh := winner.HeadToHead[loser.Tricode]
	wh.Wins++
	winner.HeadToHead[loser.Tricode] = wh
	lh := loser.HeadToHead[winner.Tricode]
	lh.Losses++
	loser.HeadToHead[winner.Tricode] = lh

	winPts, losePts := *winnerRef.Score, *loserRef.Score
	winner.PointsFor += winPts
	winner.PointsAgainst += losePts
	loser.PointsFor += losePts
	loser.PointsAgainst += winPts

	winner.Results = append(winner.Results, Win)
	loser.Results = append(loser.Results, Loss)
	winner.LastGame = g.StartTime
	loser.LastGame = g.StartTime
}
