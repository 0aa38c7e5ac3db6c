package main

import (
	"github.com/spf13/cobra"

	"github.com/preston-bernstein/nba-standings-service/internal/app/league"
	"github.com/preston-bernstein/nba-standings-service/internal/bracket"
)

func newStandingsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "standings [east|west]",
		Short: "Print ranked standings for both conferences or one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.service(cmd)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				return printJSON(cmd, svc.Standings())
			}
			rows, err := svc.Conference(args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, rows)
		},
	}
}

func newPlayInCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "playin",
		Short: "Print each conference's play-in outcome",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.service(cmd)
			if err != nil {
				return err
			}
			return printJSON(cmd, svc.PlayIn())
		},
	}
}

func newPlayoffsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "playoffs",
		Short: "Print the playoff bracket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.service(cmd)
			if err != nil {
				return err
			}
			b, err := svc.Playoffs()
			return printBracket(cmd, b, err)
		},
	}
}

func newCupCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "cup",
		Short: "Print the in-season cup knockout bracket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.service(cmd)
			if err != nil {
				return err
			}
			b, err := svc.Cup()
			return printBracket(cmd, b, err)
		},
	}
}

func newOverviewCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Print standings, play-in and both brackets from one snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.service(cmd)
			if err != nil {
				return err
			}
			out, err := svc.Overview(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, out)
		},
	}
}

// printBracket prints the bracket or its not-ready status. Other errors fail the command.
func printBracket(cmd *cobra.Command, b bracket.Bracket, err error) error {
	if err != nil && !league.IsNotReady(err) {
		return err
	}
	return printJSON(cmd, league.NewBracketView(b, err))
}
