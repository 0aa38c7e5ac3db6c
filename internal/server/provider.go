package server

import (
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/nba-standings-service/internal/config"
	"github.com/preston-bernstein/nba-standings-service/internal/logging"
	"github.com/preston-bernstein/nba-standings-service/internal/providers"
	"github.com/preston-bernstein/nba-standings-service/internal/providers/fixture"
	"github.com/preston-bernstein/nba-standings-service/internal/providers/nbacdn"
)

const (
	providerFixture = "fixture"
	providerNBACDN  = "nbacdn"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.GameProvider {
	switch cfg.Provider {
	case providerFixture, "":
		return fixture.New()
	case providerNBACDN:
		return nbacdn.NewClient(nbacdn.Config{
			ScheduleURL: cfg.Feed.ScheduleURL,
			HTTPClient:  &http.Client{Timeout: cfg.Feed.Timeout},
		})
	default:
		logging.Warn(logger, "unknown provider, falling back to fixture", logging.FieldProvider, cfg.Provider)
		return fixture.New()
	}
}
