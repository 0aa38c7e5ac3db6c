package config

import (
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port         string        `koanf:"port"`
	PollInterval Duration      `koanf:"poll_interval"`
	Provider     string        `koanf:"provider"`
	Log          LogConfig     `koanf:"log"`
	Feed         FeedConfig    `koanf:"feed"`
	Cache        CacheConfig   `koanf:"cache"`
	League       LeagueConfig  `koanf:"league"`
	Metrics      MetricsConfig `koanf:"metrics"`
}

// LogConfig selects the slog handler and optional rotated log file.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	File   string `koanf:"file"`
}

// Default returns the built-in configuration before any file or env overrides.
func Default() Config {
	return Config{
		Port:         defaultPort,
		PollInterval: defaultPollInterval,
		Provider:     defaultProvider,
		Feed:         defaultFeed(),
		Cache:        defaultCache(),
		League:       defaultLeague(),
		Metrics:      defaultMetrics(),
	}
}

// Load builds a Config by layering defaults, the optional YAML file named by
// STANDINGS_CONFIG, and environment variables (highest precedence).
func Load() (Config, error) {
	cfg := Default()
	if path := os.Getenv(envConfigFile); path != "" {
		fromFile, err := loadFile(path, cfg)
		if err != nil {
			return Config{}, err
		}
		cfg = fromFile
	}
	return applyEnv(cfg), nil
}

func loadFile(path string, base Config) (Config, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return Config{}, fmt.Errorf("load config file %s: %w", path, err)
	}
	cfg := base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Config{}, fmt.Errorf("decode config file %s: %w", path, err)
	}
	return cfg, nil
}

func applyEnv(cfg Config) Config {
	cfg.Port = envOrDefault(envPort, cfg.Port)
	cfg.PollInterval = durationEnvOrDefault(envPollInterval, cfg.PollInterval)
	cfg.Provider = envOrDefault(envProvider, cfg.Provider)
	cfg.Log = LogConfig{
		Level:  envOrDefault(envLogLevel, cfg.Log.Level),
		Format: envOrDefault(envLogFormat, cfg.Log.Format),
		File:   envOrDefault(envLogFile, cfg.Log.File),
	}
	cfg.Feed = loadFeed(cfg.Feed)
	cfg.Cache = loadCache(cfg.Cache)
	cfg.League = loadLeague(cfg.League)
	cfg.Metrics = loadMetrics(cfg.Metrics)
	return cfg
}
