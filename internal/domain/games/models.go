package games

import "time"

// GameStatus mirrors the shared contract for game lifecycle states.
type GameStatus string

const (
	StatusScheduled GameStatus = "SCHEDULED"
	StatusLive      GameStatus = "LIVE"
	StatusFinal     GameStatus = "FINAL"
	StatusPostponed GameStatus = "POSTPONED"
)

// TeamRef is one side of a game as reported by the schedule feed.
// Score is nil when the feed carried no usable number.
type TeamRef struct {
	ID      int    `json:"id"`
	Tricode string `json:"tricode"`
	City    string `json:"city"`
	Name    string `json:"name"`
	Wins    int    `json:"wins"`
	Losses  int    `json:"losses"`
	Score   *int   `json:"score,omitempty"`
}

// Game is the canonical ledger record. It is never mutated after ingestion.
type Game struct {
	ID         string     `json:"id"`
	Code       string     `json:"code"`
	Season     string     `json:"season,omitempty"`
	StartTime  time.Time  `json:"startTime"`
	Status     GameStatus `json:"status"`
	HomeTeam   TeamRef    `json:"homeTeam"`
	AwayTeam   TeamRef    `json:"awayTeam"`
	Label      string     `json:"label,omitempty"`
	SubLabel   string     `json:"subLabel,omitempty"`
	SeriesText string     `json:"seriesText,omitempty"`
	IsNeutral  bool       `json:"isNeutral"`
}

// Ledger is a season's worth of games plus the season they belong to.
type Ledger struct {
	Season string `json:"season"`
	Games  []Game `json:"games"`
}

// NewLedger builds a Ledger payload.
func NewLedger(season string, games []Game) Ledger {
	return Ledger{
		Season: season,
		Games:  games,
	}
}

// IntPtr is a small helper for building scores.
func IntPtr(v int) *int {
	return &v
}
