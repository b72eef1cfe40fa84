package statsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"

	"mlb-score-watcher/internal/domain"
	"mlb-score-watcher/internal/logging"
	"mlb-score-watcher/internal/providers"
)

// Config controls how the client reaches the MLB Stats API.
type Config struct {
	BaseURL     string
	FeedBaseURL string
	HTTPClient  *http.Client
	Logger      *slog.Logger
}

// Client fetches schedules, live linescores, and the team directory from the
// MLB Stats API and maps them to domain models.
type Client struct {
	baseURL     string
	feedBaseURL string
	httpClient  httpDoer
	logger      *slog.Logger
	now         func() time.Time

	teamsMu      sync.Mutex
	cachedTeams  []domain.TeamSearchResult
	teamsFetched time.Time
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:     normalizeBaseURL(cfg.BaseURL, defaultBaseURL),
		feedBaseURL: normalizeBaseURL(cfg.FeedBaseURL, defaultFeedBaseURL),
		httpClient:  resolveHTTPClient(cfg.HTTPClient),
		logger:      cfg.Logger,
		now:         time.Now,
	}
}

// TeamSchedule retrieves a team's games for the given date.
func (c *Client) TeamSchedule(ctx context.Context, teamID int, date string) ([]domain.ScheduleGame, error) {
	url := fmt.Sprintf("%s/schedule?sportId=%d&teamId=%d&date=%s", c.baseURL, sportID, teamID, date)

	var payload scheduleResponse
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return nil, err
	}

	games := make([]domain.ScheduleGame, 0)
	for _, d := range payload.Dates {
		for _, g := range d.Games {
			games = append(games, mapScheduleGame(g))
		}
	}
	return games, nil
}

// GameLinescore retrieves the live linescore snapshot for a game. Returns
// (nil, nil) when the feed carries no linescore yet; that is data absence,
// not a failure.
func (c *Client) GameLinescore(ctx context.Context, gamePk int) (*domain.Linescore, error) {
	url := fmt.Sprintf("%s/game/%d/feed/live", c.feedBaseURL, gamePk)

	var payload feedResponse
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return nil, err
	}
	return mapLinescore(payload), nil
}

// SearchTeams filters the team directory by keyword. The directory is cached
// for 15 minutes; on refresh failure it degrades to the last-known-good list,
// then to the hardcoded fallback. It never fails outright.
func (c *Client) SearchTeams(ctx context.Context, keyword string) ([]domain.TeamSearchResult, error) {
	teams := c.allTeams(ctx)

	trimmed := strings.ToLower(strings.TrimSpace(keyword))
	if trimmed == "" {
		return teams, nil
	}

	matched := make([]domain.TeamSearchResult, 0, len(teams))
	for _, team := range teams {
		if containsFold(team.Name, trimmed) ||
			containsFold(team.Abbreviation, trimmed) ||
			containsFold(team.LocationName, trimmed) {
			matched = append(matched, team)
		}
	}
	return matched, nil
}

func containsFold(haystack, loweredNeedle string) bool {
	return haystack != "" && strings.Contains(strings.ToLower(haystack), loweredNeedle)
}

func (c *Client) allTeams(ctx context.Context) []domain.TeamSearchResult {
	c.teamsMu.Lock()
	defer c.teamsMu.Unlock()

	if c.cachedTeams != nil && c.now().Sub(c.teamsFetched) < teamCacheTTL {
		return c.cachedTeams
	}

	teams, err := c.fetchTeams(ctx)
	if err != nil {
		if c.cachedTeams != nil {
			logging.Warn(c.logger, "team directory refresh failed, serving cached list", "error", err)
			return c.cachedTeams
		}
		logging.Error(c.logger, "team directory fetch failed, serving fallback list", err)
		c.cachedTeams = fallbackTeams()
		c.teamsFetched = c.now()
		return c.cachedTeams
	}

	c.cachedTeams = teams
	c.teamsFetched = c.now()
	return teams
}

func (c *Client) fetchTeams(ctx context.Context) ([]domain.TeamSearchResult, error) {
	url := c.baseURL + "/teams?sportId=" + strconv.Itoa(sportID)

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), teamFetchMaxRetries), ctx)

	var payload teamsResponse
	operation := func() error {
		return c.getJSON(ctx, url, &payload)
	}
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}

	teams := make([]domain.TeamSearchResult, 0, len(payload.Teams))
	for _, t := range payload.Teams {
		teams = append(teams, mapDirectoryTeam(t))
	}
	return teams, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	reqCtx, cancel := context.WithTimeout(ctx, defaultHTTPTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", defaultUserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &providers.HTTPError{
			StatusCode: resp.StatusCode,
			Status:     http.StatusText(resp.StatusCode),
			URL:        url,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
