package teams

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultTableHasThirtyTeamsInSixDivisions(t *testing.T) {
	table := Default()
	if table.Len() != 30 {
		t.Fatalf("expected 30 teams, got %d", table.Len())
	}

	divisions := map[string]int{}
	for _, conf := range Conferences {
		codes := table.InConference(conf)
		if len(codes) != 15 {
			t.Fatalf("expected 15 teams in %s, got %d", conf, len(codes))
		}
		for _, code := range codes {
			team, _ := table.Lookup(code)
			divisions[team.Division]++
		}
	}
	if len(divisions) != 6 {
		t.Fatalf("expected 6 divisions, got %d", len(divisions))
	}
	for div, n := range divisions {
		if n != 5 {
			t.Fatalf("division %s expected 5 teams, got %d", div, n)
		}
	}
}

func TestLookup(t *testing.T) {
	team, ok := Default().Lookup("BOS")
	if !ok || team.Conference != East || team.Division != "Atlantic" {
		t.Fatalf("unexpected BOS row %+v", team)
	}
	if _, ok := Default().Lookup("XXX"); ok {
		t.Fatalf("expected unknown tricode to miss")
	}
}

func TestParseRejectsUnknownConference(t *testing.T) {
	doc := []byte("teams:\n  - {tricode: AAA, conference: North, division: X}\n")
	if _, err := Parse(doc); err == nil {
		t.Fatal("expected error for unknown conference")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teams.yaml")
	doc := "teams:\n  - {tricode: aaa, conference: East, division: Atlantic}\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	table, err := LoadFile(path)
	if err != nil {
		t.Fatalf("expected load to succeed, got %v", err)
	}
	if _, ok := table.Lookup("AAA"); !ok {
		t.Fatalf("expected tricode to be upper-cased")
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
