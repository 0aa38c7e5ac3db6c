package config

import "time"

const (
	envConfigFile   = "STANDINGS_CONFIG"
	envPort         = "PORT"
	envPollInterval = "POLL_INTERVAL"
	envProvider     = "PROVIDER"
	envLogLevel     = "LOG_LEVEL"
	envLogFormat    = "LOG_FORMAT"
	envLogFile      = "LOG_FILE"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	envScheduleURL  = "SCHEDULE_URL"
	envFeedTimeout  = "FEED_TIMEOUT"
	envFeedAttempts = "FEED_MAX_ATTEMPTS"
	envFeedBackoff  = "FEED_RETRY_INITIAL"
	envFeedMinGap   = "FEED_MIN_INTERVAL"

	envCacheBackend = "CACHE_BACKEND"
	envRedisURL     = "REDIS_URL"
	envCachePrefix  = "CACHE_PREFIX"
	envCacheTTL     = "CACHE_TTL"

	envSeasonGames   = "REGULAR_SEASON_GAME_COUNT"
	envLeagueTZ      = "LEAGUE_TIMEZONE"
	envCupStaleAfter = "CUP_STALE_AFTER"
	envCupSeedsFile  = "CUP_SEEDS_FILE"
	envTeamsFile     = "TEAMS_FILE"

	defaultPort = "4000"
	// The schedule feed is a single large document; refreshing it every few minutes is plenty.
	defaultPollInterval = 5 * Duration(time.Minute)
	defaultProvider     = "fixture"
	defaultMetricsPort  = "9090"
	defaultServiceName  = "nba-standings-service"

	defaultScheduleURL  = "https://cdn.nba.com/static/json/staticData/scheduleLeagueV2_1.json"
	defaultFeedTimeout  = 15 * Duration(time.Second)
	defaultFeedAttempts = 3
	defaultFeedBackoff  = 500 * Duration(time.Millisecond)
	defaultFeedMinGap   = 10 * Duration(time.Second)

	defaultCacheBackend = "memory"
	defaultCachePrefix  = "standings:"
	defaultCacheTTL     = 2 * Duration(time.Minute)

	defaultSeasonGames   = 15
	defaultLeagueTZ      = "America/New_York"
	defaultCupStaleAfter = 8 * 24 * Duration(time.Hour)
)
