package standings

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/preston-bernstein/nba-standings-service/internal/domain/games"
	"github.com/preston-bernstein/nba-standings-service/internal/domain/teams"
	"github.com/preston-bernstein/nba-standings-service/internal/testutil"
)

// randomLedger plays n games between random pairs of the conference's teams.
func randomLedger(seed int64, n int) []games.Game {
	table := teams.Default()
	codes := append(table.InConference(teams.East), table.InConference(teams.West)...)
	r := rand.New(rand.NewSource(seed))
	out := make([]games.Game, 0, n)
	for i := 0; i < n; i++ {
		home := codes[r.Intn(len(codes))]
		away := codes[r.Intn(len(codes))]
		for away == home {
			away = codes[r.Intn(len(codes))]
		}
		hs := 90 + r.Intn(40)
		as := 90 + r.Intn(40)
		if hs == as {
			hs++
		}
		out = append(out, testutil.FinalGame(fmt.Sprintf("g%04d", i), testutil.Day(i/8), home, hs, away, as))
	}
	return out
}

func TestAggregateTotalsBalance(t *testing.T) {
	ledger := randomLedger(7, 400)
	records := Aggregate(ledger, teams.Default())

	appearances := map[string]int{}
	for _, g := range ledger {
		appearances[g.HomeTeam.Tricode]++
		appearances[g.AwayTeam.Tricode]++
	}

	var wins, losses int
	for code, rec := range records {
		wins += rec.Wins()
		losses += rec.Losses()
		if rec.Overall.Games() != appearances[code] {
			t.Fatalf("%s played %d, record shows %d", code, appearances[code], rec.Overall.Games())
		}
		if got := rec.Home.Games() + rec.Away.Games() + rec.Neutral.Games(); got != rec.Overall.Games() {
			t.Fatalf("%s splits sum to %d, want %d", code, got, rec.Overall.Games())
		}
		if len(rec.Results) != rec.Overall.Games() {
			t.Fatalf("%s history length %d, want %d", code, len(rec.Results), rec.Overall.Games())
		}
	}
	if wins != len(ledger) || losses != len(ledger) {
		t.Fatalf("expected %d wins and losses, got %d/%d", len(ledger), wins, losses)
	}
}

func TestAggregateSeedsTeamsWithoutResults(t *testing.T) {
	ledger := []games.Game{
		testutil.ScheduledGame("s1", testutil.Day(0), "LAL", "MIN"),
		testutil.FinalGame("f1", testutil.Day(0), "BOS", 100, "NYK", 90),
	}
	records := Aggregate(ledger, teams.Default())
	if len(records) != 4 {
		t.Fatalf("expected 4 seeded teams, got %d", len(records))
	}
	lal := records["LAL"]
	if lal.Wins() != 0 || lal.Losses() != 0 || lal.WinPct() != 0 {
		t.Fatalf("expected 0-0 for LAL, got %+v", lal.Overall)
	}
	if lal.Conference != teams.West || lal.Division != "Pacific" {
		t.Fatalf("expected table alignment for LAL, got %s/%s", lal.Conference, lal.Division)
	}
	if lal.Streak() != "-" {
		t.Fatalf("expected empty streak, got %q", lal.Streak())
	}
}

func TestAggregateSkipsUncountedAndMalformedGames(t *testing.T) {
	pre := testutil.FinalGame("p1", testutil.Day(-10), "BOS", 120, "NYK", 80)
	pre.Label = "Preseason"

	cupFinal := testutil.FinalGame("c1", testutil.Day(50), "MIL", 97, "OKC", 81)
	cupFinal.Label = "Emirates NBA Cup"
	cupFinal.SubLabel = "Championship"
	cupFinal.IsNeutral = true

	noScore := testutil.FinalGame("n1", testutil.Day(1), "BOS", 100, "NYK", 90)
	noScore.AwayTeam.Score = nil

	level := testutil.FinalGame("t1", testutil.Day(2), "BOS", 100, "NYK", 100)

	noTeam := testutil.FinalGame("m1", testutil.Day(3), "BOS", 100, "", 90)

	live := testutil.FinalGame("l1", testutil.Day(4), "BOS", 50, "NYK", 40)
	live.Status = games.StatusLive

	ledger := []games.Game{pre, cupFinal, noScore, level, noTeam, live}
	records := Aggregate(ledger, teams.Default())
	for code, rec := range records {
		if rec.Overall.Games() != 0 {
			t.Fatalf("expected no counted games for %s, got %s", code, rec.Overall)
		}
	}
	if _, ok := records["MIL"]; !ok {
		t.Fatalf("expected cup finalists to be seeded")
	}
}

func TestAggregateSplits(t *testing.T) {
	neutral := testutil.FinalGame("g3", testutil.Day(2), "BOS", 99, "LAL", 101)
	neutral.IsNeutral = true
	ledger := []games.Game{
		testutil.FinalGame("g1", testutil.Day(0), "BOS", 110, "NYK", 100), // division
		testutil.FinalGame("g2", testutil.Day(1), "MIA", 100, "BOS", 105), // conference
		neutral, // inter-conference, neutral site
	}
	rec := Aggregate(ledger, teams.Default())["BOS"]

	checks := map[string]WinLoss{
		"overall": rec.Overall,
		"home":    rec.Home,
		"away":    rec.Away,
		"neutral": rec.Neutral,
		"conf":    rec.Conf,
		"div":     rec.Div,
	}
	want := map[string]WinLoss{
		"overall": {2, 1},
		"home":    {1, 0},
		"away":    {1, 0},
		"neutral": {0, 1},
		"conf":    {2, 0},
		"div":     {1, 0},
	}
	for k, w := range want {
		if checks[k] != w {
			t.Fatalf("%s split: want %s got %s", k, w, checks[k])
		}
	}
	if rec.HeadToHead["LAL"] != (WinLoss{0, 1}) {
		t.Fatalf("unexpected head-to-head vs LAL: %s", rec.HeadToHead["LAL"])
	}
	if rec.PointsFor != 314 || rec.PointsAgainst != 301 || rec.PointDiff() != 13 {
		t.Fatalf("unexpected points %d/%d", rec.PointsFor, rec.PointsAgainst)
	}
	if rec.Streak() != "L 1" {
		t.Fatalf("expected L 1, got %q", rec.Streak())
	}
	if !rec.LastGame.Equal(testutil.Day(2)) {
		t.Fatalf("unexpected last game time %v", rec.LastGame)
	}
}

func TestAggregateFoldsInChronologicalOrder(t *testing.T) {
	// Listed out of order: the loss happened last.
	ledger := []games.Game{
		testutil.FinalGame("g3", testutil.Day(2), "BOS", 90, "NYK", 100),
		testutil.FinalGame("g1", testutil.Day(0), "BOS", 110, "NYK", 100),
		testutil.FinalGame("g2", testutil.Day(1), "BOS", 110, "NYK", 100),
	}
	rec := Aggregate(ledger, teams.Default())["BOS"]
	if rec.Streak() != "L 1" {
		t.Fatalf("expected L 1, got %q", rec.Streak())
	}
	if got := Aggregate(ledger, teams.Default())["NYK"].Streak(); got != "W 1" {
		t.Fatalf("expected W 1 for NYK, got %q", got)
	}
}

func TestLastTenUsesMostRecentResults(t *testing.T) {
	rec := Record{}
	for i := 0; i < 5; i++ {
		rec.Results = append(rec.Results, Loss)
	}
	for i := 0; i < 8; i++ {
		rec.Results = append(rec.Results, Win)
	}
	if got := rec.LastTen(); got != (WinLoss{8, 2}) {
		t.Fatalf("expected 8-2, got %s", got)
	}
	if rec.Streak() != "W 8" {
		t.Fatalf("expected W 8, got %q", rec.Streak())
	}
}

func TestAggregateDoesNotMutateLedger(t *testing.T) {
	ledger := randomLedger(3, 20)
	first := ledger[0].ID
	Aggregate(ledger, teams.Default())
	if ledger[0].ID != first {
		t.Fatalf("ledger order changed")
	}
}
