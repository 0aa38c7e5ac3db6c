package games

import "strings"

const (
	preseasonLabel = "preseason"
	playInMarker   = "play-in"
	cupMarker      = "cup"
)

// CupStage identifies a knockout round of the in-season cup.
type CupStage int

const (
	CupNone CupStage = iota
	CupQuarterfinal
	CupSemifinal
	CupChampionship
)

// IsFinal reports whether the game has a final result.
func (g Game) IsFinal() bool {
	return g.Status == StatusFinal
}

// IsPreseason reports whether the feed labels the game as an exhibition.
func (g Game) IsPreseason() bool {
	return strings.EqualFold(strings.TrimSpace(g.Label), preseasonLabel)
}

// IsSeries reports whether the game belongs to an elimination series.
func (g Game) IsSeries() bool {
	return strings.TrimSpace(g.SeriesText) != ""
}

// IsPlayIn reports whether the feed labels the game as a play-in game.
func (g Game) IsPlayIn() bool {
	return strings.Contains(strings.ToLower(g.Label), playInMarker) ||
		strings.Contains(strings.ToLower(g.SubLabel), playInMarker)
}

// CupStage returns the cup knockout round this game belongs to, or CupNone.
func (g Game) CupStage() CupStage {
	if !strings.Contains(strings.ToLower(g.Label), cupMarker) {
		return CupNone
	}
	sub := strings.ToLower(g.SubLabel)
	switch {
	case strings.Contains(sub, "quarter"):
		return CupQuarterfinal
	case strings.Contains(sub, "semi"):
		return CupSemifinal
	case strings.Contains(sub, "championship"), strings.Contains(sub, "final"):
		return CupChampionship
	default:
		return CupNone
	}
}

// IsCupChampionship reports whether this is the cup final, which does not count in standings.
func (g Game) IsCupChampionship() bool {
	return g.CupStage() == CupChampionship
}

// Teams returns the two tricodes taken from the compact game code ("20250420/MIABOS"),
// falling back to the away/home tricodes when the code is absent or malformed.
func (g Game) Teams() (string, string) {
	if idx := strings.LastIndex(g.Code, "/"); idx >= 0 {
		pair := g.Code[idx+1:]
		if len(pair) == 6 {
			return pair[:3], pair[3:]
		}
	}
	return g.AwayTeam.Tricode, g.HomeTeam.Tricode
}

// Involves reports whether the game's team pair is exactly {a, b} in either order.
func (g Game) Involves(a, b string) bool {
	x, y := g.Teams()
	if x == "" || y == "" {
		return false
	}
	return (x == a && y == b) || (x == b && y == a)
}

// Winner returns the side with the strictly higher score.
// ok is false when a score is missing or the scores are level.
func (g Game) Winner() (TeamRef, bool) {
	w, _, ok := g.Result()
	return w, ok
}

// Loser returns the side with the strictly lower score.
func (g Game) Loser() (TeamRef, bool) {
	_, l, ok := g.Result()
	return l, ok
}

// Result returns winner and loser when both scores are present and differ.
func (g Game) Result() (winner, loser TeamRef, ok bool) {
	if g.HomeTeam.Score == nil || g.AwayTeam.Score == nil {
		return TeamRef{}, TeamRef{}, false
	}
	home, away := *g.HomeTeam.Score, *g.AwayTeam.Score
	switch {
	case home > away:
		return g.HomeTeam, g.AwayTeam, true
	case away > home:
		return g.AwayTeam, g.HomeTeam, true
	default:
		return TeamRef{}, TeamRef{}, false
	}
}

// HasTeams reports whether both sides carry a tricode.
func (g Game) HasTeams() bool {
	return g.HomeTeam.Tricode != "" && g.AwayTeam.Tricode != ""
}
