package nbacdn

import (
	"net/http"
	"testing"
	"time"
)

func TestResolveURLDefaults(t *testing.T) {
	if got := resolveURL("  "); got != defaultScheduleURL {
		t.Fatalf("expected default url, got %s", got)
	}
	if got := resolveURL("https://mirror.test/s.json"); got != "https://mirror.test/s.json" {
		t.Fatalf("expected override, got %s", got)
	}
}

func TestResolveHTTPClientUsesProvidedClient(t *testing.T) {
	custom := &http.Client{Timeout: 5 * time.Second}
	if resolveHTTPClient(custom) != custom {
		t.Fatalf("expected provided client to be used")
	}
}

func TestParseRetryAfter(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	if got := parseRetryAfter("30", now); got != 30*time.Second {
		t.Fatalf("expected 30s, got %s", got)
	}
	date := now.Add(time.Minute).Format(http.TimeFormat)
	if got := parseRetryAfter(date, now); got != time.Minute {
		t.Fatalf("expected 1m, got %s", got)
	}
	if got := parseRetryAfter("soon", now); got != 0 {
		t.Fatalf("expected 0, got %s", got)
	}
}
