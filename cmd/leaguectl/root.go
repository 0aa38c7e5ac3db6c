package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/nba-standings-service/internal/app/league"
	"github.com/preston-bernstein/nba-standings-service/internal/bracket"
	"github.com/preston-bernstein/nba-standings-service/internal/config"
	"github.com/preston-bernstein/nba-standings-service/internal/domain/games"
	"github.com/preston-bernstein/nba-standings-service/internal/domain/teams"
	"github.com/preston-bernstein/nba-standings-service/internal/logging"
	"github.com/preston-bernstein/nba-standings-service/internal/playin"
	"github.com/preston-bernstein/nba-standings-service/internal/providers/nbacdn"
	"github.com/preston-bernstein/nba-standings-service/internal/store"
	"github.com/preston-bernstein/nba-standings-service/internal/timeutil"
)

const (
	appName    = "leaguectl"
	appVersion = "dev"
)

// options holds the persistent flags shared by every subcommand.
type options struct {
	schedule    string
	cupSeeds    string
	teamsFile   string
	timezone    string
	seasonGames int
	staleAfter  time.Duration
	now         string
	timeout     time.Duration
	logLevel    string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           appName,
		Short:         "Compute NBA standings, play-in and brackets from a schedule feed",
		Version:       appVersion,
		SilenceUsage: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.schedule, "schedule", "s", "", "schedule JSON file or http(s) URL (default: league CDN)")
	flags.StringVar(&opts.cupSeeds, "cup-seeds", "", "cup seed file (YAML or JSON)")
	flags.StringVar(&opts.teamsFile, "teams", "", "team table override (YAML)")
	flags.StringVar(&opts.timezone, "timezone", playin.DefaultTimeZone, "calendar time zone for regular-season day bucketing")
	flags.IntVar(&opts.seasonGames, "season-games", playin.DefaultRegularSeasonGameCount, "games on the final regular-season day")
	flags.DurationVar(&opts.staleAfter, "cup-stale-after", bracket.DefaultCupStaleAfter, "hide the cup bracket this long after the final")
	flags.StringVar(&opts.now, "now", "", "evaluate staleness at this RFC3339 time instead of the clock")
	flags.DurationVar(&opts.timeout, "timeout", 15*time.Second, "schedule download timeout")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level written to stderr")

	root.AddCommand(
		newStandingsCmd(opts),
		newPlayInCmd(opts),
		newPlayoffsCmd(opts),
		newCupCmd(opts),
		newOverviewCmd(opts),
	)
	return root
}

// service loads the schedule and builds a league service over it.
func (o *options) service(cmd *cobra.Command) (*league.Service, error) {
	logger := logging.NewLogger(logging.Config{
		Level:   o.logLevel,
		Service: appName,
		Version: appVersion,
		Output:  cmd.ErrOrStderr(),
	})

	ledger, err := o.loadSchedule(cmd.Context())
	if err != nil {
		return nil, err
	}

	table := teams.Default()
	if o.teamsFile != "" {
		if table, err = teams.LoadFile(o.teamsFile); err != nil {
			return nil, fmt.Errorf("load teams: %w", err)
		}
	}

	var seeds []bracket.CupSeed
	if o.cupSeeds != "" {
		if seeds, err = config.LoadCupSeeds(o.cupSeeds); err != nil {
			return nil, err
		}
	}

	now := time.Now
	if o.now != "" {
		at, err := time.Parse(time.RFC3339, o.now)
		if err != nil {
			return nil, fmt.Errorf("parse --now: %w", err)
		}
		now = func() time.Time { return at }
	}

	ledgers := store.NewMemoryStore()
	ledgers.SetLedger(ledger)
	logging.Info(logger, "schedule loaded", logging.FieldSeason, ledger.Season, logging.FieldCount, len(ledger.Games))

	return league.NewService(ledgers, league.Options{
		Teams:    table,
		CupSeeds: seeds,
		PlayIn: playin.Options{
			RegularSeasonGameCount: o.seasonGames,
			Location:               timeutil.ResolveLocation(o.timezone, nil),
		},
		CupStaleAfter: o.staleAfter,
		Logger:        logger,
		Now:           now,
	}), nil
}

func (o *options) loadSchedule(ctx context.Context) (games.Ledger, error) {
	if o.schedule == "" || strings.HasPrefix(o.schedule, "http://") || strings.HasPrefix(o.schedule, "https://") {
		client := nbacdn.NewClient(nbacdn.Config{
			ScheduleURL: o.schedule,
			HTTPClient:  &http.Client{Timeout: o.timeout},
		})
		return client.FetchSchedule(ctx)
	}

	f, err := os.Open(o.schedule)
	if err != nil {
		return games.Ledger{}, fmt.Errorf("open schedule: %w", err)
	}
	defer f.Close()
	return nbacdn.Decode(f)
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
