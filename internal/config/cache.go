package config

// CacheConfig selects the schedule cache backend.
type CacheConfig struct {
	Backend  string   `koanf:"backend"`
	RedisURL string   `koanf:"redis_url"`
	Prefix   string   `koanf:"prefix"`
	TTL      Duration `koanf:"ttl"`
}

func defaultCache() CacheConfig {
	return CacheConfig{
		Backend: defaultCacheBackend,
		Prefix:  defaultCachePrefix,
		TTL:     defaultCacheTTL,
	}
}

func loadCache(base CacheConfig) CacheConfig {
	return CacheConfig{
		Backend:  envOrDefault(envCacheBackend, base.Backend),
		RedisURL: envOrDefault(envRedisURL, base.RedisURL),
		Prefix:   envOrDefault(envCachePrefix, base.Prefix),
		TTL:      durationEnvOrDefault(envCacheTTL, base.TTL),
	}
}
