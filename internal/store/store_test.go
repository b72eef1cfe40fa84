package store

import (
	"fmt"
	"testing"

	"mlb-score-watcher/internal/domain"
)

func linescore(homeID, homeRuns, awayID, awayRuns int) *domain.Linescore {
	return &domain.Linescore{
		Home: domain.TeamScore{Team: domain.TeamInfo{ID: homeID}, Runs: domain.IntPtr(homeRuns)},
		Away: domain.TeamScore{Team: domain.TeamInfo{ID: awayID}, Runs: domain.IntPtr(awayRuns)},
	}
}

func TestChangeCachePutGetEvict(t *testing.T) {
	c := NewChangeCache()

	if _, ok := c.Get(147, 1001); ok {
		t.Fatal("expected miss on empty cache")
	}

	c.Put(147, 1001, linescore(147, 1, 111, 0))
	c.Put(147, 1002, linescore(147, 0, 111, 0))
	c.Put(111, 2001, linescore(111, 2, 112, 2))

	if c.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", c.Len())
	}

	ls, ok := c.Get(147, 1001)
	if !ok || ls.Home.RunsOrZero() != 1 {
		t.Fatalf("unexpected entry: %+v", ls)
	}

	// Upsert is idempotent on the key.
	c.Put(147, 1001, linescore(147, 2, 111, 0))
	if c.Len() != 3 {
		t.Fatalf("expected 3 entries after upsert, got %d", c.Len())
	}

	c.EvictTeam(147)
	if c.Len() != 1 {
		t.Fatalf("expected only the other team's entry, got %d", c.Len())
	}
	if _, ok := c.Get(111, 2001); !ok {
		t.Fatal("eviction must not touch other teams")
	}

	c.Clear()
	if c.Len() != 0 {
		t.Fatalf("expected empty cache after clear, got %d", c.Len())
	}
}

func TestChangeCacheLatestForTeam(t *testing.T) {
	c := NewChangeCache()
	if got := c.LatestForTeam(147); got != nil {
		t.Fatalf("expected nil for unknown team, got %+v", got)
	}

	c.Put(147, 1001, linescore(147, 4, 111, 2))
	got := c.LatestForTeam(147)
	if got == nil || got.Home.RunsOrZero() != 4 {
		t.Fatalf("unexpected latest: %+v", got)
	}
}

func TestStatusStoreSortsByTeamName(t *testing.T) {
	s := NewStatusStore()
	s.Set(domain.GameStatus{TeamID: 147, TeamName: "New York Yankees", State: domain.StateLive})
	s.Set(domain.GameStatus{TeamID: 111, TeamName: "Boston Red Sox", State: domain.StateIdle})
	s.Set(domain.GameStatus{TeamID: 109, TeamName: "Arizona Diamondbacks", State: domain.StateFinal})

	all := s.All()
	if len(all) != 3 {
		t.Fatalf("expected 3 statuses, got %d", len(all))
	}
	if all[0].TeamName != "Arizona Diamondbacks" || all[2].TeamName != "New York Yankees" {
		t.Fatalf("unexpected order: %+v", all)
	}
}

func TestStatusStoreOverwritesPerTeam(t *testing.T) {
	s := NewStatusStore()
	s.Set(domain.GameStatus{TeamID: 147, TeamName: "New York Yankees", State: domain.StateScheduled})
	s.Set(domain.GameStatus{TeamID: 147, TeamName: "New York Yankees", State: domain.StateLive})

	if s.Len() != 1 {
		t.Fatalf("expected one status per team, got %d", s.Len())
	}
	got := s.ForTeam(147)
	if len(got) != 1 || got[0].State != domain.StateLive {
		t.Fatalf("expected latest status, got %+v", got)
	}
	if got := s.ForTeam(999); len(got) != 0 {
		t.Fatalf("expected empty list for unknown team, got %+v", got)
	}
}

func TestNotificationLogCapsAtCapacityNewestFirst(t *testing.T) {
	l := NewNotificationLog(50)
	for i := 0; i < 60; i++ {
		l.Append(domain.NotificationEntry{GamePk: i, Title: fmt.Sprintf("entry %d", i)})
	}

	if l.Len() != 50 {
		t.Fatalf("expected capacity cap 50, got %d", l.Len())
	}
	all := l.All()
	if all[0].GamePk != 59 {
		t.Fatalf("expected newest first, got %+v", all[0])
	}
	if all[49].GamePk != 10 {
		t.Fatalf("expected oldest retained entry 10, got %+v", all[49])
	}
}

func TestNotificationLogReturnsDefensiveCopy(t *testing.T) {
	l := NewNotificationLog(0)
	l.Append(domain.NotificationEntry{Title: "original"})

	view := l.All()
	view[0].Title = "mutated"

	if got := l.All()[0].Title; got != "original" {
		t.Fatalf("log mutated through returned slice: %s", got)
	}
}
