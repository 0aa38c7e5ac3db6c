// Package standings folds completed games into per-team records and ranks them
// within a conference.
package standings

import (
	"fmt"
	"time"

	"github.com/preston-bernstein/nba-standings-service/internal/domain/teams"
)

// Outcome is a single entry in a team's result history.
type Outcome string

const (
	Win  Outcome = "W"
	Loss Outcome = "L"
)

const lastTenWindow = 10

// WinLoss is a won-lost split.
type WinLoss struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
}

// Games returns the number of games in the split.
func (wl WinLoss) Games() int {
	return wl.Wins + wl.Losses
}

// Pct returns the winning percentage, or 0 when no games were played.
func (wl WinLoss) Pct() float64 {
	if wl.Games() == 0 {
		return 0
	}
	return float64(wl.Wins) / float64(wl.Games())
}

func (wl WinLoss) String() string {
	return fmt.Sprintf("%d-%d", wl.Wins, wl.Losses)
}

// Record is one team's cumulative season record.
type Record struct {
	Tricode    string
	TeamID     int
	City       string
	Name       string
	Conference teams.Conference
	Division   string

	Overall    WinLoss
	Home       WinLoss
	Away       WinLoss
	Neutral    WinLoss
	Conf       WinLoss
	Div        WinLoss
	HeadToHead map[string]WinLoss

	PointsFor     int
	PointsAgainst int
	Results       []Outcome
	LastGame      time.Time
}

// Wins is shorthand for the overall win count.
func (r Record) Wins() int { return r.Overall.Wins }

// Losses is shorthand for the overall loss count.
func (r Record) Losses() int { return r.Overall.Losses }

// GamesPlayed counts counted games the team appeared in.
func (r Record) GamesPlayed() int { return r.Overall.Games() }

// WinPct returns the overall winning percentage (0 when winless).
func (r Record) WinPct() float64 { return r.Overall.Pct() }

// PointDiff returns points scored minus points allowed.
func (r Record) PointDiff() int {
	return r.PointsFor - r.PointsAgainst
}

// Streak formats the trailing run of identical results, e.g. "W 3", or "-" before any game.
func (r Record) Streak() string {
	n := len(r.Results)
	if n == 0 {
		return "-"
	}
	last := r.Results[n-1]
	count := 0
	for i := n - 1; i >= 0 && r.Results[i] == last; i-- {
		count++
	}
	return fmt.Sprintf("%s %d", last, count)
}

// LastTen returns the won-lost split over the most recent ten results.
func (r Record) LastTen() WinLoss {
	start := len(r.Results) - lastTenWindow
	if start < 0 {
		start = 0
	}
	var wl WinLoss
	for _, o := range r.Results[start:] {
		if o == Win {
			wl.Wins++
		} else {
			wl.Losses++
		}
	}
	return wl
}
