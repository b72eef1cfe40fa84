package config

// Config holds runtime configuration for the server.
type Config struct {
	Port         string
	SettingsPath string
	Provider     string
	Autostart    bool
	Logging      LoggingConfig
	StatsAPI     StatsAPIConfig
	Metrics      MetricsConfig
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		SettingsPath: envOrDefault(envSettingsPath, defaultSettingsPath),
		Provider:     envOrDefault(envProvider, defaultProvider),
		Autostart:    boolEnvOrDefault(envAutostart, defaultAutostart),
		Logging: LoggingConfig{
			Level:  envOrDefault(envLogLevel, defaultLogLevel),
			Format: envOrDefault(envLogFormat, defaultLogFormat),
		},
		StatsAPI: loadStatsAPI(),
		Metrics:  loadMetrics(),
	}
}
