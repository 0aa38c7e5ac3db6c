package nbacdn

import "time"

const (
	providerName       = "nbacdn"
	defaultScheduleURL = "https://cdn.nba.com/static/json/staticData/scheduleLeagueV2_1.json"
	defaultHTTPTimeout = 15 * time.Second
	defaultUserAgent   = "Mozilla/5.0 (compatible; nba-standings-service)"
	maxErrorBody       = 512
)

// Feed status codes.
const (
	statusScheduled = 1
	statusLive      = 2
	statusFinal     = 3
)

const postponedText = "PPD"
