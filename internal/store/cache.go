package store

import (
	"sync"

	"mlb-score-watcher/internal/domain"
)

type cacheKey struct {
	TeamID int
	GamePk int
}

// ChangeCache keeps the last observed linescore per (team, game) pair. It
// exists solely so score deltas can be detected across ticks.
type ChangeCache struct {
	mu      sync.RWMutex
	entries map[cacheKey]*domain.Linescore
}

// NewChangeCache constructs an empty ChangeCache.
func NewChangeCache() *ChangeCache {
	return &ChangeCache{
		entries: make(map[cacheKey]*domain.Linescore),
	}
}

// Get retrieves the cached linescore for a team's game.
func (c *ChangeCache) Get(teamID, gamePk int) (*domain.Linescore, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ls, ok := c.entries[cacheKey{TeamID: teamID, GamePk: gamePk}]
	return ls, ok
}

// Put stores the linescore for a team's game, replacing any prior entry.
func (c *ChangeCache) Put(teamID, gamePk int, ls *domain.Linescore) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[cacheKey{TeamID: teamID, GamePk: gamePk}] = ls
}

// EvictTeam removes every entry for a team. Called whenever the team has no
// live games in a tick so a stale score cannot leak into a future game.
func (c *ChangeCache) EvictTeam(teamID int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.entries {
		if key.TeamID == teamID {
			delete(c.entries, key)
		}
	}
}

// LatestForTeam returns any cached linescore for the team, or nil. Used to
// carry the last known score onto a final status before eviction.
func (c *ChangeCache) LatestForTeam(teamID int) *domain.Linescore {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for key, ls := range c.entries {
		if key.TeamID == teamID {
			return ls
		}
	}
	return nil
}

// Len returns the number of cached entries.
func (c *ChangeCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Clear removes all entries.
func (c *ChangeCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[cacheKey]*domain.Linescore)
}
