package league

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/nba-standings-service/internal/bracket"
	"github.com/preston-bernstein/nba-standings-service/internal/domain/games"
	"github.com/preston-bernstein/nba-standings-service/internal/domain/teams"
	"github.com/preston-bernstein/nba-standings-service/internal/logging"
	"github.com/preston-bernstein/nba-standings-service/internal/metrics"
	"github.com/preston-bernstein/nba-standings-service/internal/playin"
	"github.com/preston-bernstein/nba-standings-service/internal/standings"
)

// ErrUnknownConference is returned for a conference name outside the league table.
var ErrUnknownConference = errors.New("unknown conference")

// Computation kinds reported to metrics.
const (
	KindStandings = "standings"
	KindPlayIn    = "playin"
	KindPlayoffs  = "playoffs"
	KindCup       = "cup"
)

// Store is the read side of the ledger store.
type Store interface {
	Ledger() games.Ledger
}

// Options wires the league rules and collaborators into a Service.
type Options struct {
	Teams         teams.Table
	CupSeeds      []bracket.CupSeed
	PlayIn        playin.Options
	CupStaleAfter time.Duration
	Logger        *slog.Logger
	Metrics       *metrics.Recorder
	Now           func() time.Time
}

// Service derives standings, play-in, playoff and cup views from the current ledger snapshot.
// Every call works on its own copy of the ledger, so concurrent callers never share state.
type Service struct {
	store         Store
	table         teams.Table
	cupSeeds      []bracket.CupSeed
	playIn        playin.Options
	cupStaleAfter time.Duration
	logger        *slog.Logger
	metrics       *metrics.Recorder
	now           func() time.Time
}

// NewService constructs a Service over the store. A zero Teams table uses the embedded default.
func NewService(store Store, opts Options) *Service {
	table := opts.Teams
	if table.Len() == 0 {
		table = teams.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		store:         store,
		table:         table,
		cupSeeds:      opts.CupSeeds,
		playIn:        opts.PlayIn,
		cupStaleAfter: opts.CupStaleAfter,
		logger:        opts.Logger,
		metrics:       opts.Metrics,
		now:           now,
	}
}

// Games returns the current ledger snapshot.
func (s *Service) Games() games.Ledger {
	return s.store.Ledger()
}

// GameByID looks a game up in the current snapshot.
func (s *Service) GameByID(id string) (games.Game, bool) {
	for _, g := range s.store.Ledger().Games {
		if g.ID == id {
			return g, true
		}
	}
	return games.Game{}, false
}

// Standings ranks both conferences.
func (s *Service) Standings() StandingsView {
	start := time.Now()
	ledger := s.store.Ledger()
	view := s.standings(ledger)
	s.observe(KindStandings, start, nil)
	return view
}

// Conference returns one conference's ranked list. name is matched case-insensitively.
func (s *Service) Conference(name string) ([]standings.Standing, error) {
	conf, err := ParseConference(name)
	if err != nil {
		return nil, err
	}
	return s.Standings().Conferences[conf], nil
}

// PlayIn resolves the play-in for both conferences. A conference without a complete play-in
// reports StatusIncomplete.
func (s *Service) PlayIn() PlayInView {
	start := time.Now()
	ledger := s.store.Ledger()
	view := s.playInFor(ledger)
	s.observe(KindPlayIn, start, view.err())
	return view
}

// Playoffs builds the playoff bracket. It returns bracket.ErrIncomplete until both
// conferences have eight seeds.
func (s *Service) Playoffs() (bracket.Bracket, error) {
	start := time.Now()
	ledger := s.store.Ledger()
	b, err := s.playoffsFor(ledger, s.playInFor(ledger))
	s.observe(KindPlayoffs, start, err)
	return b, err
}

// Cup builds the in-season cup bracket from the configured seed feed.
func (s *Service) Cup() (bracket.Bracket, error) {
	start := time.Now()
	b, err := bracket.Cup(s.cupSeeds, s.store.Ledger().Games, s.now(), s.cupStaleAfter)
	s.observe(KindCup, start, err)
	return b, err
}

// Overview computes every view from a single snapshot. The play-in and cup are resolved
// concurrently; the playoffs wait on the play-in.
func (s *Service) Overview(ctx context.Context) (Overview, error) {
	start := time.Now()
	ledger := s.store.Ledger()
	out := Overview{Season: ledger.Season}
	out.Standings = s.standings(ledger)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := gCtx.Err(); err != nil {
			return err
		}
		out.PlayIn = s.playInFor(ledger)
		b, err := s.playoffsFor(ledger, out.PlayIn)
		out.Playoffs = NewBracketView(b, err)
		return nil
	})
	g.Go(func() error {
		if err := gCtx.Err(); err != nil {
			return err
		}
		b, err := bracket.Cup(s.cupSeeds, ledger.Games, s.now(), s.cupStaleAfter)
		out.Cup = NewBracketView(b, err)
		return nil
	})
	if err := g.Wait(); err != nil {
		return Overview{}, fmt.Errorf("league overview: %w", err)
	}
	logging.Info(s.logger, "league overview computed",
		logging.FieldSeason, ledger.Season,
		logging.FieldCount, len(ledger.Games),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return out, nil
}

func (s *Service) standings(ledger games.Ledger) StandingsView {
	return StandingsView{
		Season:      ledger.Season,
		Progress:    standings.SeasonProgress(ledger.Games),
		Conferences: standings.RankAll(ledger.Games, s.table),
	}
}

// playInFor seeds from regular-season games only; play-in and playoff results still count
// toward the displayed standings.
func (s *Service) playInFor(ledger games.Ledger) PlayInView {
	regular, _ := playin.RegularSeason(ledger.Games, s.playIn)
	ranked := standings.RankAll(regular, s.table)
	view := PlayInView{Conferences: make(map[teams.Conference]ConferencePlayIn, len(teams.Conferences))}
	for _, conf := range teams.Conferences {
		res, err := playin.Resolve(ranked[conf], ledger.Games, s.playIn)
		entry := ConferencePlayIn{Status: statusOf(err)}
		if err == nil {
			entry.Result = &res
			entry.Seeds = playin.Seeds(ranked[conf], res)
		}
		view.Conferences[conf] = entry
	}
	return view
}

func (s *Service) playoffsFor(ledger games.Ledger, pi PlayInView) (bracket.Bracket, error) {
	seeds := make(map[teams.Conference][]bracket.Slot, len(teams.Conferences))
	for _, conf := range teams.Conferences {
		entry := pi.Conferences[conf]
		if entry.Status != StatusOK {
			return bracket.Bracket{}, fmt.Errorf("%w: %s play-in unresolved", bracket.ErrIncomplete, conf)
		}
		slots := make([]bracket.Slot, 0, len(entry.Seeds))
		for _, row := range entry.Seeds {
			slots = append(slots, bracket.Slot{Tricode: row.Tricode, Seed: row.Seed})
		}
		seeds[conf] = slots
	}
	return bracket.Playoffs(seeds, ledger.Games)
}

func (s *Service) observe(kind string, start time.Time, err error) {
	outcome := outcomeOf(err)
	if s.metrics != nil {
		s.metrics.RecordComputation(kind, outcome, time.Since(start))
	}
	if outcome == metrics.OutcomeError {
		logging.Error(s.logger, "league computation failed", err, logging.FieldKind, kind)
	}
}

// ParseConference maps "east"/"west" (any case) to a conference.
func ParseConference(name string) (teams.Conference, error) {
	for _, conf := range teams.Conferences {
		if strings.EqualFold(string(conf), strings.TrimSpace(name)) {
			return conf, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownConference, name)
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, playin.ErrIncomplete), errors.Is(err, bracket.ErrIncomplete):
		return metrics.OutcomeIncomplete
	case errors.Is(err, bracket.ErrStale):
		return metrics.OutcomeStale
	default:
		return metrics.OutcomeError
	}
}
