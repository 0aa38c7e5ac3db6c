package nbacdn

import (
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/nba-standings-service/internal/domain/games"
)

func mapSchedule(resp scheduleResponse) games.Ledger {
	season := strings.TrimSpace(resp.LeagueSchedule.SeasonYear)
	out := make([]games.Game, 0)
	for _, day := range resp.LeagueSchedule.GameDates {
		for _, g := range day.Games {
			mapped, ok := mapGame(g)
			if !ok {
				continue
			}
			mapped.Season = season
			out = append(out, mapped)
		}
	}
	return games.NewLedger(season, out)
}

// mapGame returns ok=false for records without a usable id or start time.
func mapGame(g gameResp) (games.Game, bool) {
	if strings.TrimSpace(g.GameID) == "" {
		return games.Game{}, false
	}
	start, err := time.Parse(time.RFC3339, g.GameDateTimeUTC)
	if err != nil {
		return games.Game{}, false
	}
	status := mapStatus(g.GameStatus, g.GameStatusText)
	return games.Game{
		ID:         g.GameID,
		Code:       strings.TrimSpace(g.GameCode),
		StartTime:  start.UTC(),
		Status:     status,
		HomeTeam:   mapTeam(g.HomeTeam, status),
		AwayTeam:   mapTeam(g.AwayTeam, status),
		Label:      strings.TrimSpace(g.GameLabel),
		SubLabel:   strings.TrimSpace(g.GameSubLabel),
		SeriesText: strings.TrimSpace(g.SeriesText),
		IsNeutral:  g.IsNeutral,
	}, true
}

func mapTeam(t teamResp, status games.GameStatus) games.TeamRef {
	ref := games.TeamRef{
		ID:      t.TeamID,
		Tricode: strings.ToUpper(strings.TrimSpace(t.TeamTricode)),
		City:    t.TeamCity,
		Name:    t.TeamName,
		Wins:    t.Wins,
		Losses:  t.Losses,
	}
	// Unplayed games report 0-0; only started games carry a meaningful score.
	if status == games.StatusFinal || status == games.StatusLive {
		if score, ok := parseScore(t.Score); ok {
			ref.Score = &score
		}
	}
	return ref
}

func mapStatus(code int, text string) games.GameStatus {
	if strings.EqualFold(strings.TrimSpace(text), postponedText) {
		return games.StatusPostponed
	}
	switch code {
	case statusFinal:
		return games.StatusFinal
	case statusLive:
		return games.StatusLive
	default:
		return games.StatusScheduled
	}
}

func parseScore(v any) (int, bool) {
	switch s := v.(type) {
	case float64:
		if s < 0 || s != float64(int(s)) {
			return 0, false
		}
		return int(s), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil || n < 0 {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
