package providers

import (
	"context"
	"time"

	"mlb-score-watcher/internal/domain"
	"mlb-score-watcher/internal/metrics"
)

// instrumentedProvider wraps a FeedProvider and records per-call metrics.
type instrumentedProvider struct {
	inner    FeedProvider
	recorder *metrics.Recorder
	name     string
}

// NewInstrumentedProvider records attempt counts and latencies for every feed
// call. A nil recorder disables recording without changing behavior.
func NewInstrumentedProvider(inner FeedProvider, recorder *metrics.Recorder, name string) FeedProvider {
	return &instrumentedProvider{inner: inner, recorder: recorder, name: name}
}

func (p *instrumentedProvider) TeamSchedule(ctx context.Context, teamID int, date string) ([]domain.ScheduleGame, error) {
	if p.inner == nil {
		return nil, ErrProviderUnavailable
	}
	start := time.Now()
	games, err := p.inner.TeamSchedule(ctx, teamID, date)
	p.recorder.RecordProviderAttempt(p.name, time.Since(start), err)
	return games, err
}

func (p *instrumentedProvider) GameLinescore(ctx context.Context, gamePk int) (*domain.Linescore, error) {
	if p.inner == nil {
		return nil, ErrProviderUnavailable
	}
	start := time.Now()
	ls, err := p.inner.GameLinescore(ctx, gamePk)
	p.recorder.RecordProviderAttempt(p.name, time.Since(start), err)
	return ls, err
}

func (p *instrumentedProvider) SearchTeams(ctx context.Context, keyword string) ([]domain.TeamSearchResult, error) {
	if p.inner == nil {
		return nil, ErrProviderUnavailable
	}
	start := time.Now()
	teams, err := p.inner.SearchTeams(ctx, keyword)
	p.recorder.RecordProviderAttempt(p.name, time.Since(start), err)
	return teams, err
}
