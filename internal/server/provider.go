package server

import (
	"log/slog"
	"strings"

	"mlb-score-watcher/internal/config"
	"mlb-score-watcher/internal/logging"
	"mlb-score-watcher/internal/metrics"
	"mlb-score-watcher/internal/providers"
	"mlb-score-watcher/internal/providers/fixture"
	"mlb-score-watcher/internal/providers/statsapi"
)

// selectProvider builds the configured feed provider wrapped with metrics
// instrumentation.
func selectProvider(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) providers.FeedProvider {
	var provider providers.FeedProvider
	name := strings.ToLower(cfg.Provider)

	switch name {
	case "statsapi", "":
		name = "statsapi"
		provider = statsapi.NewClient(statsapi.Config{
			BaseURL:     cfg.StatsAPI.BaseURL,
			FeedBaseURL: cfg.StatsAPI.FeedBaseURL,
			Logger:      logger,
		})
	case "fixture":
		provider = fixture.Default()
	default:
		logging.Warn(logger, "unknown provider, falling back to statsapi",
			logging.FieldProvider, cfg.Provider,
		)
		name = "statsapi"
		provider = statsapi.NewClient(statsapi.Config{
			BaseURL:     cfg.StatsAPI.BaseURL,
			FeedBaseURL: cfg.StatsAPI.FeedBaseURL,
			Logger:      logger,
		})
	}

	return providers.NewInstrumentedProvider(provider, recorder, name)
}
