package league

import (
	"errors"
	"fmt"

	"github.com/preston-bernstein/nba-standings-service/internal/bracket"
	"github.com/preston-bernstein/nba-standings-service/internal/domain/teams"
	"github.com/preston-bernstein/nba-standings-service/internal/metrics"
	"github.com/preston-bernstein/nba-standings-service/internal/playin"
	"github.com/preston-bernstein/nba-standings-service/internal/standings"
)

// Status tells clients whether a view is ready to display.
type Status string

const (
	StatusOK         Status = "ok"
	StatusIncomplete Status = "incomplete"
	StatusStale      Status = "stale"
	StatusError      Status = "error"
)

func statusOf(err error) Status {
	switch outcomeOf(err) {
	case metrics.OutcomeOK:
		return StatusOK
	case metrics.OutcomeIncomplete:
		return StatusIncomplete
	case metrics.OutcomeStale:
		return StatusStale
	default:
		return StatusError
	}
}

// StandingsView is the standings payload.
type StandingsView struct {
	Season      string                `json:"season"`
	Progress    standings.Progress    `json:"progress"`
	Conferences standings.Conferences `json:"conferences"`
}

// ConferencePlayIn is one conference's play-in outcome.
type ConferencePlayIn struct {
	Status Status               `json:"status"`
	Result *playin.Result       `json:"result,omitempty"`
	Seeds  []standings.Standing `json:"seeds,omitempty"`
}

// PlayInView holds both conferences' play-in outcomes.
type PlayInView struct {
	Conferences map[teams.Conference]ConferencePlayIn `json:"conferences"`
}

func (v PlayInView) err() error {
	for conf, entry := range v.Conferences {
		if entry.Status != StatusOK {
			return fmt.Errorf("%w: %s", playin.ErrIncomplete, conf)
		}
	}
	return nil
}

// BracketView wraps a bracket with its readiness status.
type BracketView struct {
	Status  Status           `json:"status"`
	Bracket *bracket.Bracket `json:"bracket,omitempty"`
}

// NewBracketView pairs a bracket computation with the status clients should show.
func NewBracketView(b bracket.Bracket, err error) BracketView {
	if err != nil {
		return BracketView{Status: statusOf(err)}
	}
	return BracketView{Status: StatusOK, Bracket: &b}
}

// Overview bundles every league view computed from one snapshot.
type Overview struct {
	Season    string        `json:"season"`
	Standings StandingsView `json:"standings"`
	PlayIn    PlayInView    `json:"playIn"`
	Playoffs  BracketView   `json:"playoffs"`
	Cup       BracketView   `json:"cup"`
}

// IsNotReady reports whether err only means the data is not there yet.
func IsNotReady(err error) bool {
	return errors.Is(err, playin.ErrIncomplete) || errors.Is(err, bracket.ErrIncomplete) || errors.Is(err, bracket.ErrStale)
}
