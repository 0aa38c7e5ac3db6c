package main

import (
	"path/filepath"
	"testing"
)

// Smoke test to ensure main honors SKIP_SERVER_RUN and does not block test runs.
func TestMainSkipsWhenEnvSet(t *testing.T) {
	t.Setenv("SKIP_SERVER_RUN", "1")
	main()
}

func TestRunFailsOnMissingConfigFile(t *testing.T) {
	t.Setenv("STANDINGS_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	if err := run(); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestRunFailsOnMissingTeamsFile(t *testing.T) {
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("TEAMS_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	if err := run(); err == nil {
		t.Fatalf("expected error for missing teams file")
	}
}
