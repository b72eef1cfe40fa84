package statsapi

import "time"

const (
	defaultBaseURL     = "https://statsapi.mlb.com/api/v1"
	defaultFeedBaseURL = "https://statsapi.mlb.com/api/v1.1"
	defaultHTTPTimeout = 8 * time.Second
	defaultUserAgent   = "mlb-score-watcher"

	// The Stats API serves every sport; baseball is sport 1.
	sportID = 1

	// Team directory refresh cadence. The list changes about once a decade,
	// so a short TTL only exists to pick up renames without a restart.
	teamCacheTTL = 15 * time.Minute

	teamFetchMaxRetries = 2
)
