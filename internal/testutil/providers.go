package testutil

import (
	"context"

	"mlb-score-watcher/internal/domain"
	"mlb-score-watcher/internal/providers"
)

// StaticFeed serves fixed schedule and linescore data with no errors.
type StaticFeed struct {
	Games      []domain.ScheduleGame
	Linescores map[int]*domain.Linescore
	Teams      []domain.TeamSearchResult
}

func (f StaticFeed) TeamSchedule(ctx context.Context, teamID int, date string) ([]domain.ScheduleGame, error) {
	_ = ctx
	_ = teamID
	_ = date
	return f.Games, nil
}

func (f StaticFeed) GameLinescore(ctx context.Context, gamePk int) (*domain.Linescore, error) {
	_ = ctx
	return f.Linescores[gamePk], nil
}

func (f StaticFeed) SearchTeams(ctx context.Context, keyword string) ([]domain.TeamSearchResult, error) {
	_ = ctx
	_ = keyword
	return f.Teams, nil
}

// ErrFeed always fails with the provided error.
type ErrFeed struct {
	Err error
}

func (f ErrFeed) TeamSchedule(ctx context.Context, teamID int, date string) ([]domain.ScheduleGame, error) {
	return nil, f.Err
}

func (f ErrFeed) GameLinescore(ctx context.Context, gamePk int) (*domain.Linescore, error) {
	return nil, f.Err
}

func (f ErrFeed) SearchTeams(ctx context.Context, keyword string) ([]domain.TeamSearchResult, error) {
	return nil, f.Err
}

var (
	_ providers.FeedProvider = StaticFeed{}
	_ providers.FeedProvider = ErrFeed{}
)
