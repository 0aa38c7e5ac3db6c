package config

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool   `koanf:"enabled"`
	Port         string `koanf:"port"`
	OtlpEndpoint string `koanf:"otlp_endpoint"`
	ServiceName  string `koanf:"service_name"`
	OtlpInsecure bool   `koanf:"otlp_insecure"`
}

func defaultMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:      true,
		Port:         defaultMetricsPort,
		ServiceName:  defaultServiceName,
		OtlpInsecure: true,
	}
}

func loadMetrics(base MetricsConfig) MetricsConfig {
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, base.Enabled),
		Port:         envOrDefault(envMetricsPort, base.Port),
		OtlpEndpoint: envOrDefault(envOtelEndpoint, base.OtlpEndpoint),
		ServiceName:  envOrDefault(envOtelService, base.ServiceName),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, base.OtlpInsecure),
	}
}
