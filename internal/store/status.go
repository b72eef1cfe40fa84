package store

import (
	"sort"
	"sync"

	"mlb-score-watcher/internal/domain"
)

// StatusStore keeps the most recently emitted status per monitored team.
type StatusStore struct {
	mu     sync.RWMutex
	byTeam map[int]domain.GameStatus
}

// NewStatusStore constructs an empty StatusStore.
func NewStatusStore() *StatusStore {
	return &StatusStore{
		byTeam: make(map[int]domain.GameStatus),
	}
}

// Set overwrites the status for a team.
func (s *StatusStore) Set(status domain.GameStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byTeam[status.TeamID] = status
}

// All returns every current status sorted by team name ascending.
func (s *StatusStore) All() []domain.GameStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	statuses := make([]domain.GameStatus, 0, len(s.byTeam))
	for _, status := range s.byTeam {
		statuses = append(statuses, status)
	}
	sort.Slice(statuses, func(i, j int) bool {
		return statuses[i].TeamName < statuses[j].TeamName
	})
	return statuses
}

// ForTeam returns a list of zero or one statuses for the team.
func (s *StatusStore) ForTeam(teamID int) []domain.GameStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if status, ok := s.byTeam[teamID]; ok {
		return []domain.GameStatus{status}
	}
	return []domain.GameStatus{}
}

// Len returns the number of teams with a status.
func (s *StatusStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byTeam)
}

// Clear removes all statuses.
func (s *StatusStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byTeam = make(map[int]domain.GameStatus)
}
