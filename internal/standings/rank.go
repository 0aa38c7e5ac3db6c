package standings

import (
	"slices"
	"strings"

	"github.com/preston-bernstein/nba-standings-service/internal/domain/games"
	"github.com/preston-bernstein/nba-standings-service/internal/domain/teams"
)

// Standing is a ranked, display-ready row. List position i holds seed i+1.
type Standing struct {
	Seed           int              `json:"seed"`
	Tricode        string           `json:"tricode"`
	TeamID         int              `json:"teamId"`
	City           string           `json:"city"`
	Name           string           `json:"name"`
	Conference     teams.Conference `json:"conference"`
	Division       string           `json:"division"`
	Wins           int              `json:"wins"`
	Losses         int              `json:"losses"`
	WinPct         float64          `json:"winPct"`
	GamesBehind    float64          `json:"gamesBehind"`
	Streak         string           `json:"streak"`
	LastTen        string           `json:"lastTen"`
	Home           string           `json:"home"`
	Away           string           `json:"away"`
	Neutral        string           `json:"neutral"`
	ConfRecord     string           `json:"conferenceRecord"`
	DivRecord      string           `json:"divisionRecord"`
	PointsFor      int              `json:"pointsFor"`
	PointsAgainst  int              `json:"pointsAgainst"`
	PointDiff      int              `json:"pointDiff"`
	DivisionLeader bool             `json:"divisionLeader"`

	Record Record `json:"-"`
}

// Conferences holds both ranked conference lists.
type Conferences map[teams.Conference][]Standing

// Rank returns the conference's teams best-first.
func Rank(records map[string]Record, conf teams.Conference) []Standing {
	list := make([]Record, 0, len(records)/2)
	for _, rec := range records {
		if rec.Conference == conf {
			list = append(list, rec)
		}
	}
	// Fix the input order so the sort is reproducible.
	slices.SortFunc(list, func(a, b Record) int { return strings.Compare(a.Tricode, b.Tricode) })

	leaders := DivisionLeaders(list)
	slices.SortStableFunc(list, func(a, b Record) int { return Compare(a, b, leaders) })

	out := make([]Standing, len(list))
	for i, rec := range list {
		out[i] = newStanding(i+1, rec, leaders[rec.Tricode])
	}
	if len(out) > 0 {
		leader := out[0]
		for i := range out {
			out[i].GamesBehind = gamesBehind(leader.Wins, leader.Losses, out[i].Wins, out[i].Losses)
		}
	}
	return out
}

// RankAll aggregates the ledger and ranks both conferences.
func RankAll(ledger []games.Game, table teams.Table) Conferences {
	records := Aggregate(ledger, table)
	out := make(Conferences, len(teams.Conferences))
	for _, conf := range teams.Conferences {
		out[conf] = Rank(records, conf)
	}
	return out
}

func gamesBehind(leaderWins, leaderLosses, wins, losses int) float64 {
	return float64((leaderWins-wins)+(losses-leaderLosses)) / 2
}

func newStanding(seed int, rec Record, leader bool) Standing {
	return Standing{
		Seed:           seed,
		Tricode:        rec.Tricode,
		TeamID:         rec.TeamID,
		City:           rec.City,
		Name:           rec.Name,
		Conference:     rec.Conference,
		Division:       rec.Division,
		Wins:           rec.Wins(),
		Losses:         rec.Losses(),
		WinPct:         rec.WinPct(),
		Streak:         rec.Streak(),
		LastTen:        rec.LastTen().String(),
		Home:           rec.Home.String(),
		Away:           rec.Away.String(),
		Neutral:        rec.Neutral.String(),
		ConfRecord:     rec.Conf.String(),
		DivRecord:      rec.Div.String(),
		PointsFor:      rec.PointsFor,
		PointsAgainst:  rec.PointsAgainst,
		PointDiff:      rec.PointDiff(),
		DivisionLeader: leader,
		Record:         rec,
	}
}
