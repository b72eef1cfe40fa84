package providers

import (
	"context"

	"mlb-score-watcher/internal/domain"
)

// FeedProvider defines how upstream schedule and score data is fetched and
// normalized. Dates are YYYY-MM-DD strings in the feed source's own calendar.
type FeedProvider interface {
	// TeamSchedule returns the games a team plays on the given date.
	TeamSchedule(ctx context.Context, teamID int, date string) ([]domain.ScheduleGame, error)

	// GameLinescore returns the live linescore snapshot for a game, or
	// (nil, nil) when the feed has no linescore yet. Errors are reserved for
	// transport failures.
	GameLinescore(ctx context.Context, gamePk int) (*domain.Linescore, error)

	// SearchTeams filters the team directory by keyword. Implementations
	// degrade to cached or fallback data rather than failing.
	SearchTeams(ctx context.Context, keyword string) ([]domain.TeamSearchResult, error)
}
