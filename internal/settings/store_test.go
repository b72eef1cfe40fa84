package settings

import (
	"os"
	"path/filepath"
	"testing"

	"mlb-score-watcher/internal/domain"
)

func tempPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "settings.yaml")
}

func TestLoadCreatesDefaultsWhenFileMissing(t *testing.T) {
	path := tempPath(t)

	store, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := store.Settings()
	want := domain.DefaultSettings()
	if got.PollingIntervalSec != want.PollingIntervalSec {
		t.Fatalf("expected default interval %d, got %d", want.PollingIntervalSec, got.PollingIntervalSec)
	}
	if !got.NotificationsEnabled || got.SoundEnabled {
		t.Fatalf("unexpected defaults: %+v", got)
	}
	if len(got.Teams) != 0 {
		t.Fatalf("expected no teams, got %+v", got.Teams)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected settings file to be created: %v", err)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := tempPath(t)
	if err := os.WriteFile(path, []byte("teams: [not: closed"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error for malformed settings file")
	}
}

func TestApplyMergesAndRoundTrips(t *testing.T) {
	path := tempPath(t)
	store, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	interval := 45
	sound := true
	got, err := store.Apply(Patch{PollingIntervalSec: &interval, SoundEnabled: &sound})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.PollingIntervalSec != 45 || !got.SoundEnabled || !got.NotificationsEnabled {
		t.Fatalf("unexpected merged settings: %+v", got)
	}

	// A fresh load observes the persisted document.
	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s := reloaded.Settings(); s.PollingIntervalSec != 45 || !s.SoundEnabled {
		t.Fatalf("settings did not round-trip: %+v", s)
	}
}

func TestApplyRejectsNonPositiveInterval(t *testing.T) {
	store, err := Load(tempPath(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	zero := 0
	if _, err := store.Apply(Patch{PollingIntervalSec: &zero}); err == nil {
		t.Fatal("expected validation error for zero interval")
	}
	if got := store.Settings().PollingIntervalSec; got != domain.DefaultSettings().PollingIntervalSec {
		t.Fatalf("failed update must not change the document, got %d", got)
	}
}

func TestAddTeamDedupesByID(t *testing.T) {
	path := tempPath(t)
	store, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	yankees := domain.TeamSelection{TeamID: 147, TeamName: "New York Yankees", Abbreviation: "NYY", AddedAt: "2025-06-01T12:00:00Z"}
	if _, added, err := store.AddTeam(yankees); err != nil || !added {
		t.Fatalf("expected first add to succeed: added=%v err=%v", added, err)
	}
	if _, added, err := store.AddTeam(yankees); err != nil || added {
		t.Fatalf("expected duplicate add to be a no-op: added=%v err=%v", added, err)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	teams := reloaded.Settings().Teams
	if len(teams) != 1 || teams[0].TeamID != 147 || teams[0].Abbreviation != "NYY" {
		t.Fatalf("unexpected persisted teams: %+v", teams)
	}
}

func TestRemoveTeam(t *testing.T) {
	store, err := Load(tempPath(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, _, err := store.AddTeam(domain.TeamSelection{TeamID: 147, TeamName: "New York Yankees"}); err != nil {
		t.Fatal(err)
	}
	if _, _, err := store.AddTeam(domain.TeamSelection{TeamID: 111, TeamName: "Boston Red Sox"}); err != nil {
		t.Fatal(err)
	}

	got, removed, err := store.RemoveTeam(147)
	if err != nil || !removed {
		t.Fatalf("expected removal: removed=%v err=%v", removed, err)
	}
	if len(got.Teams) != 1 || got.Teams[0].TeamID != 111 {
		t.Fatalf("unexpected remaining teams: %+v", got.Teams)
	}

	if _, removed, err := store.RemoveTeam(999); err != nil || removed {
		t.Fatalf("expected miss for unknown team: removed=%v err=%v", removed, err)
	}
}
