package config

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/preston-bernstein/nba-standings-service/internal/bracket"
)

// LeagueConfig carries the knobs the standings and bracket engines need.
// RegularSeasonGameCount is the number of games on the final regular-season day.
type LeagueConfig struct {
	RegularSeasonGameCount int      `koanf:"regular_season_game_count"`
	TimeZone               string   `koanf:"timezone"`
	CupStaleAfter          Duration `koanf:"cup_stale_after"`
	CupSeedsFile           string   `koanf:"cup_seeds_file"`
	TeamsFile              string   `koanf:"teams_file"`
}

func defaultLeague() LeagueConfig {
	return LeagueConfig{
		RegularSeasonGameCount: defaultSeasonGames,
		TimeZone:               defaultLeagueTZ,
		CupStaleAfter:          defaultCupStaleAfter,
	}
}

func loadLeague(base LeagueConfig) LeagueConfig {
	return LeagueConfig{
		RegularSeasonGameCount: intEnvOrDefault(envSeasonGames, base.RegularSeasonGameCount),
		TimeZone:               envOrDefault(envLeagueTZ, base.TimeZone),
		CupStaleAfter:          durationEnvOrDefault(envCupStaleAfter, base.CupStaleAfter),
		CupSeedsFile:           envOrDefault(envCupSeedsFile, base.CupSeedsFile),
		TeamsFile:              envOrDefault(envTeamsFile, base.TeamsFile),
	}
}

// LoadCupSeeds reads the cup seed feed from a YAML (or JSON) file holding a top-level
// "seeds" list.
func LoadCupSeeds(path string) ([]bracket.CupSeed, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("load cup seeds %s: %w", path, err)
	}
	var seeds []bracket.CupSeed
	if err := k.UnmarshalWithConf("seeds", &seeds, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("decode cup seeds %s: %w", path, err)
	}
	return seeds, nil
}
