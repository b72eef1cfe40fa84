package domain

import "testing"

func TestRunsOrZeroDefaultsMissingRuns(t *testing.T) {
	var s TeamScore
	if got := s.RunsOrZero(); got != 0 {
		t.Fatalf("expected 0 for missing runs, got %d", got)
	}

	s.Runs = IntPtr(4)
	if got := s.RunsOrZero(); got != 4 {
		t.Fatalf("expected 4, got %d", got)
	}
}

func TestRunsForMatchesByTeamID(t *testing.T) {
	ls := Linescore{
		Home: TeamScore{Team: TeamInfo{ID: 147}, Runs: IntPtr(3)},
		Away: TeamScore{Team: TeamInfo{ID: 111}, Runs: IntPtr(1)},
	}

	if got := ls.RunsFor(147); got != 3 {
		t.Fatalf("expected home runs 3, got %d", got)
	}
	if got := ls.RunsFor(111); got != 1 {
		t.Fatalf("expected away runs 1, got %d", got)
	}
	// Unknown team falls through to the away side.
	if got := ls.RunsFor(999); got != 1 {
		t.Fatalf("expected away fallback 1, got %d", got)
	}
}

func TestOpponentResolvesOtherSide(t *testing.T) {
	g := ScheduleGame{
		HomeTeam: TeamInfo{ID: 147, Name: "New York Yankees"},
		AwayTeam: TeamInfo{ID: 111, Name: "Boston Red Sox"},
	}

	if got := g.Opponent(147); got.ID != 111 {
		t.Fatalf("expected away opponent for home team, got %+v", got)
	}
	if got := g.Opponent(111); got.ID != 147 {
		t.Fatalf("expected home opponent for away team, got %+v", got)
	}
}

func TestAbstractStateIsUpcoming(t *testing.T) {
	cases := []struct {
		state AbstractState
		want  bool
	}{
		{AbstractPreview, true},
		{AbstractPreGame, true},
		{AbstractLive, false},
		{AbstractFinal, false},
	}
	for _, tc := range cases {
		if got := tc.state.IsUpcoming(); got != tc.want {
			t.Fatalf("IsUpcoming(%s) = %v, want %v", tc.state, got, tc.want)
		}
	}
}
