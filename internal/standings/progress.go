package standings

import "github.com/preston-bernstein/nba-standings-service/internal/domain/games"

// Progress counts regular-season games: how many are final out of how many are scheduled.
type Progress struct {
	Completed int     `json:"completed"`
	Total     int     `json:"total"`
	Percent   float64 `json:"percent"`
}

// SeasonProgress reports how far the regular season has advanced.
func SeasonProgress(ledger []games.Game) Progress {
	var p Progress
	for _, g := range ledger {
		if g.IsPreseason() || g.IsSeries() || g.IsPlayIn() || g.IsCupChampionship() {
			continue
		}
		p.Total++
		if g.IsFinal() {
			p.Completed++
		}
	}
	if p.Total > 0 {
		p.Percent = float64(p.Completed) * 100 / float64(p.Total)
	}
	return p
}
