package teams

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed teams.yaml
var defaultTable []byte

// Table is a read-only tricode -> Team lookup. It only changes on realignment.
type Table struct {
	byTricode map[string]Team
}

type tableFile struct {
	Teams []Team `yaml:"teams"`
}

// NewTable builds a Table from rows; later duplicates win.
func NewTable(rows []Team) Table {
	t := Table{byTricode: make(map[string]Team, len(rows))}
	for _, row := range rows {
		code := strings.ToUpper(strings.TrimSpace(row.Tricode))
		if code == "" {
			continue
		}
		row.Tricode = code
		t.byTricode[code] = row
	}
	return t
}

// Default returns the embedded current-season alignment.
func Default() Table {
	t, err := Parse(defaultTable)
	if err != nil {
		panic(fmt.Sprintf("teams: embedded table invalid: %v", err))
	}
	return t
}

// LoadFile reads a YAML table from disk.
func LoadFile(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("teams: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML table document.
func Parse(data []byte) (Table, error) {
	var doc tableFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Table{}, fmt.Errorf("teams: decode table: %w", err)
	}
	for _, row := range doc.Teams {
		if row.Conference != East && row.Conference != West {
			return Table{}, fmt.Errorf("teams: %s has unknown conference %q", row.Tricode, row.Conference)
		}
		if row.Division == "" {
			return Table{}, fmt.Errorf("teams: %s has no division", row.Tricode)
		}
	}
	return NewTable(doc.Teams), nil
}

// Lookup returns the table row for a tricode.
func (t Table) Lookup(tricode string) (Team, bool) {
	team, ok := t.byTricode[tricode]
	return team, ok
}

// Len returns the number of teams in the table.
func (t Table) Len() int {
	return len(t.byTricode)
}

// InConference returns the conference's tricodes sorted alphabetically.
func (t Table) InConference(conf Conference) []string {
	var out []string
	for code, team := range t.byTricode {
		if team.Conference == conf {
			out = append(out, code)
		}
	}
	sort.Strings(out)
	return out
}
