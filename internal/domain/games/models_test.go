package games

import (
	"reflect"
	"testing"
)

func TestGameStatusValues(t *testing.T) {
	expected := map[GameStatus]string{
		StatusScheduled: "SCHEDULED",
		StatusLive:      "LIVE",
		StatusFinal:     "FINAL",
		StatusPostponed: "POSTPONED",
	}

	for status, want := range expected {
		if string(status) != want {
			t.Fatalf("expected %q got %q", want, status)
		}
	}
}

func TestGameJSONTags(t *testing.T) {
	type fieldCheck struct {
		name string
		tag  string
	}

	gameType := reflect.TypeOf(Game{})
	fields := []fieldCheck{
		{"ID", "id"},
		{"Code", "code"},
		{"StartTime", "startTime"},
		{"Status", "status"},
		{"HomeTeam", "homeTeam"},
		{"AwayTeam", "awayTeam"},
		{"SeriesText", "seriesText,omitempty"},
		{"IsNeutral", "isNeutral"},
	}

	for _, fc := range fields {
		field, ok := gameType.FieldByName(fc.name)
		if !ok {
			t.Fatalf("missing field %s", fc.name)
		}
		if jsonTag := field.Tag.Get("json"); jsonTag != fc.tag {
			t.Fatalf("field %s expected json tag %s, got %s", fc.name, fc.tag, jsonTag)
		}
	}
}

func TestNewLedger(t *testing.T) {
	l := NewLedger("2024-25", []Game{{ID: "1"}})
	if l.Season != "2024-25" || len(l.Games) != 1 {
		t.Fatalf("unexpected ledger %+v", l)
	}
}
