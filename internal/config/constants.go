package config

const (
	envPort         = "PORT"
	envSettingsPath = "SETTINGS_PATH"
	envProvider     = "PROVIDER"
	envAutostart    = "WATCHER_AUTOSTART"
	envLogLevel     = "LOG_LEVEL"
	envLogFormat    = "LOG_FORMAT"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort         = "4000"
	defaultSettingsPath = "data/settings.yaml"
	defaultProvider     = "statsapi"
	// Resume polling on boot when the persisted settings have teams.
	defaultAutostart   = true
	defaultLogLevel    = "info"
	defaultLogFormat   = "text"
	defaultMetricsPort = "9090"
)
