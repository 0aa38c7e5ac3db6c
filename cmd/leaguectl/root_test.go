package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/preston-bernstein/nba-standings-service/internal/app/league"
	"github.com/preston-bernstein/nba-standings-service/internal/domain/teams"
	"github.com/preston-bernstein/nba-standings-service/internal/standings"
)

const schedulePath = "testdata/schedule.json"

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestStandingsFromFile(t *testing.T) {
	out, _, err := execute(t, "standings", "--schedule", schedulePath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var view league.StandingsView
	if err := json.Unmarshal([]byte(out), &view); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if view.Season != "2024-25" {
		t.Fatalf("expected season 2024-25, got %q", view.Season)
	}
	if len(view.Conferences[teams.East]) == 0 || len(view.Conferences[teams.West]) == 0 {
		t.Fatalf("expected both conferences, got %+v", view.Conferences)
	}
}

func TestConferenceStandings(t *testing.T) {
	out, _, err := execute(t, "standings", "West", "--schedule", schedulePath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var rows []standings.Standing
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	for _, row := range rows {
		if row.Conference != teams.West {
			t.Fatalf("unexpected row %+v", row)
		}
	}

	if _, _, err := execute(t, "standings", "north", "--schedule", schedulePath); err == nil {
		t.Fatalf("expected unknown conference error")
	}
}

func TestBracketsReportIncomplete(t *testing.T) {
	for _, name := range []string{"playoffs", "cup"} {
		out, _, err := execute(t, name, "--schedule", schedulePath)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		var view league.BracketView
		if err := json.Unmarshal([]byte(out), &view); err != nil {
			t.Fatalf("%s: decode output: %v", name, err)
		}
		if view.Status != league.StatusIncomplete {
			t.Fatalf("%s: expected incomplete, got %s", name, view.Status)
		}
	}
}

func TestPlayInAndOverview(t *testing.T) {
	out, _, err := execute(t, "playin", "--schedule", schedulePath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `"status": "incomplete"`) {
		t.Fatalf("expected incomplete play-in, got %s", out)
	}

	out, _, err = execute(t, "overview", "--schedule", schedulePath, "--now", "2025-05-10T00:00:00Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var overview league.Overview
	if err := json.Unmarshal([]byte(out), &overview); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if overview.Season != "2024-25" {
		t.Fatalf("unexpected overview %+v", overview)
	}
}

func TestScheduleFromURL(t *testing.T) {
	body, err := os.ReadFile(schedulePath)
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	out, stderr, err := execute(t, "standings", "--schedule", srv.URL, "--log-level", "info")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `"season": "2024-25"`) {
		t.Fatalf("unexpected output %s", out)
	}
	if !strings.Contains(stderr, "schedule loaded") {
		t.Fatalf("expected load log on stderr, got %s", stderr)
	}
}

func TestInvalidInputs(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.json")
	cases := [][]string{
		{"standings", "--schedule", missing},
		{"standings", "--schedule", schedulePath, "--teams", missing},
		{"cup", "--schedule", schedulePath, "--cup-seeds", missing},
		{"cup", "--schedule", schedulePath, "--now", "yesterday"},
		{"playin", "extra", "--schedule", schedulePath},
	}
	for _, args := range cases {
		if _, _, err := execute(t, args...); err == nil {
			t.Fatalf("expected error for %v", args)
		}
	}
}
