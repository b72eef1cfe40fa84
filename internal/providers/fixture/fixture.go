package fixture

import (
	"context"
	"sync"

	"mlb-score-watcher/internal/domain"
)

// Frame is one scripted observation of a team's day: the schedule the feed
// would return plus the linescore for each live game.
type Frame struct {
	Games      []domain.ScheduleGame
	Linescores map[int]*domain.Linescore
}

// Provider replays a scripted sequence of frames per team. Useful for local
// runs and demos without network access: each schedule fetch for a team
// advances that team's script, and the final frame repeats.
type Provider struct {
	mu      sync.Mutex
	scripts map[int][]Frame
	cursor  map[int]int
	current map[int]Frame
}

// New creates a provider from per-team scripts.
func New(scripts map[int][]Frame) *Provider {
	return &Provider{
		scripts: scripts,
		cursor:  make(map[int]int),
		current: make(map[int]Frame),
	}
}

// Default returns a script where the Yankees' home game goes live and the
// score moves 0 to 3, which exercises the full baseline-then-notify path.
func Default() *Provider {
	home := domain.TeamInfo{ID: 147, Name: "New York Yankees", Abbreviation: "NYY"}
	away := domain.TeamInfo{ID: 111, Name: "Boston Red Sox", Abbreviation: "BOS"}
	game := domain.ScheduleGame{
		GamePk:        1001,
		StartTime:     "2025-06-01T23:05:00Z",
		AbstractState: domain.AbstractLive,
		HomeTeam:      home,
		AwayTeam:      away,
	}
	linescore := func(homeRuns, awayRuns int) *domain.Linescore {
		return &domain.Linescore{
			Home: domain.TeamScore{Team: home, Runs: domain.IntPtr(homeRuns)},
			Away: domain.TeamScore{Team: away, Runs: domain.IntPtr(awayRuns)},
		}
	}
	return New(map[int][]Frame{
		147: {
			{Games: []domain.ScheduleGame{game}, Linescores: map[int]*domain.Linescore{1001: linescore(0, 0)}},
			{Games: []domain.ScheduleGame{game}, Linescores: map[int]*domain.Linescore{1001: linescore(3, 0)}},
		},
	})
}

// TeamSchedule returns the team's current frame and advances its script.
func (p *Provider) TeamSchedule(ctx context.Context, teamID int, date string) ([]domain.ScheduleGame, error) {
	_ = ctx
	_ = date

	p.mu.Lock()
	defer p.mu.Unlock()

	script, ok := p.scripts[teamID]
	if !ok || len(script) == 0 {
		p.current[teamID] = Frame{}
		return []domain.ScheduleGame{}, nil
	}

	idx := p.cursor[teamID]
	if idx >= len(script) {
		idx = len(script) - 1
	}
	frame := script[idx]
	p.cursor[teamID] = idx + 1
	p.current[teamID] = frame

	return frame.Games, nil
}

// GameLinescore serves the linescore from the most recently fetched frame of
// whichever team's script contains the game.
func (p *Provider) GameLinescore(ctx context.Context, gamePk int) (*domain.Linescore, error) {
	_ = ctx

	p.mu.Lock()
	defer p.mu.Unlock()

	for _, frame := range p.current {
		if ls, ok := frame.Linescores[gamePk]; ok {
			return ls, nil
		}
	}
	return nil, nil
}

// SearchTeams returns the teams named in the scripts.
func (p *Provider) SearchTeams(ctx context.Context, keyword string) ([]domain.TeamSearchResult, error) {
	_ = ctx
	_ = keyword

	p.mu.Lock()
	defer p.mu.Unlock()

	seen := make(map[int]bool)
	results := make([]domain.TeamSearchResult, 0)
	for _, script := range p.scripts {
		for _, frame := range script {
			for _, g := range frame.Games {
				for _, team := range []domain.TeamInfo{g.HomeTeam, g.AwayTeam} {
					if seen[team.ID] {
						continue
					}
					seen[team.ID] = true
					results = append(results, domain.TeamSearchResult{
						ID:           team.ID,
						Name:         team.Name,
						Abbreviation: team.Abbreviation,
					})
				}
			}
		}
	}
	return results, nil
}
