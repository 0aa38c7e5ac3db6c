package nbacdn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/preston-bernstein/nba-standings-service/internal/domain/games"
	"github.com/preston-bernstein/nba-standings-service/internal/providers"
)

// Config controls how the client reaches the league's static schedule file.
type Config struct {
	ScheduleURL string
	UserAgent   string
	HTTPClient  *http.Client
}

// Client fetches the full-season schedule from the league CDN and maps it to a ledger.
type Client struct {
	url        string
	userAgent  string
	httpClient httpDoer
	now        func() time.Time
}

// NewClient constructs a schedule client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		url:        resolveURL(cfg.ScheduleURL),
		userAgent:  resolveUserAgent(cfg.UserAgent),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		now:        time.Now,
	}
}

// FetchSchedule downloads and normalizes the season schedule.
func (c *Client) FetchSchedule(ctx context.Context) (games.Ledger, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return games.Ledger{}, fmt.Errorf("nbacdn: build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return games.Ledger{}, fmt.Errorf("nbacdn: fetch schedule: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return games.Ledger{}, &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), c.now()),
			Message:    "nbacdn: rate limited",
		}
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return games.Ledger{}, fmt.Errorf("nbacdn: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return Decode(resp.Body)
}

// Decode parses a schedule document, e.g. a saved copy of the feed.
func Decode(r io.Reader) (games.Ledger, error) {
	var payload scheduleResponse
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return games.Ledger{}, fmt.Errorf("nbacdn: decode schedule: %w", err)
	}
	return mapSchedule(payload), nil
}
