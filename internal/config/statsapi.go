package config

const (
	envStatsBaseURL     = "STATSAPI_BASE_URL"
	envStatsFeedBaseURL = "STATSAPI_FEED_BASE_URL"
)

// StatsAPIConfig controls how we talk to the MLB Stats API. Empty values use
// the provider's built-in endpoints.
type StatsAPIConfig struct {
	BaseURL     string
	FeedBaseURL string
}

func loadStatsAPI() StatsAPIConfig {
	return StatsAPIConfig{
		BaseURL:     envOrDefault(envStatsBaseURL, ""),
		FeedBaseURL: envOrDefault(envStatsFeedBaseURL, ""),
	}
}
