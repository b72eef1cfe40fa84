package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/viper"

	"mlb-score-watcher/internal/domain"
)

// Patch is a partial settings update. Nil fields are left unchanged.
type Patch struct {
	PollingIntervalSec   *int  `json:"pollingIntervalSec"`
	NotificationsEnabled *bool `json:"notificationsEnabled"`
	SoundEnabled         *bool `json:"soundEnabled"`
}

// Store persists the user settings document to a YAML file and serves the
// current snapshot to the rest of the process. All mutations write through
// to disk before they are visible to readers.
type Store struct {
	mu      sync.RWMutex
	path    string
	current domain.Settings
}

type fileTeam struct {
	TeamID       int    `mapstructure:"teamId"`
	TeamName     string `mapstructure:"teamName"`
	Abbreviation string `mapstructure:"abbreviation"`
	AddedAt      string `mapstructure:"addedAtIso"`
}

type fileSettings struct {
	Teams                []fileTeam `mapstructure:"teams"`
	PollingIntervalSec   int        `mapstructure:"pollingIntervalSec"`
	NotificationsEnabled bool       `mapstructure:"notificationsEnabled"`
	SoundEnabled         bool       `mapstructure:"soundEnabled"`
}

// Load reads the settings file at path, creating it with defaults when it
// does not exist. A file that exists but cannot be parsed is an error; the
// caller is expected to treat that as fatal rather than silently resetting
// the user's configuration.
func Load(path string) (*Store, error) {
	s := &Store{path: path, current: domain.DefaultSettings()}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			if err := s.persist(s.current); err != nil {
				return nil, fmt.Errorf("write default settings: %w", err)
			}
			return s, nil
		}
		return nil, fmt.Errorf("read settings file: %w", err)
	}

	var fs fileSettings
	if err := v.Unmarshal(&fs); err != nil {
		return nil, fmt.Errorf("parse settings file: %w", err)
	}

	loaded := domain.Settings{
		Teams:                make([]domain.TeamSelection, 0, len(fs.Teams)),
		PollingIntervalSec:   fs.PollingIntervalSec,
		NotificationsEnabled: fs.NotificationsEnabled,
		SoundEnabled:         fs.SoundEnabled,
	}
	for _, t := range fs.Teams {
		loaded.Teams = append(loaded.Teams, domain.TeamSelection{
			TeamID:       t.TeamID,
			TeamName:     t.TeamName,
			Abbreviation: t.Abbreviation,
			AddedAt:      t.AddedAt,
		})
	}
	if loaded.PollingIntervalSec <= 0 {
		return nil, fmt.Errorf("settings: pollingIntervalSec must be positive, got %d", loaded.PollingIntervalSec)
	}

	s.current = loaded
	return s, nil
}

func setDefaults(v *viper.Viper) {
	def := domain.DefaultSettings()
	v.SetDefault("teams", []fileTeam{})
	v.SetDefault("pollingIntervalSec", def.PollingIntervalSec)
	v.SetDefault("notificationsEnabled", def.NotificationsEnabled)
	v.SetDefault("soundEnabled", def.SoundEnabled)
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Settings returns a copy of the current document.
func (s *Store) Settings() domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySettings(s.current)
}

// Apply merges a partial update into the document and persists it.
func (s *Store) Apply(patch Patch) (domain.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := copySettings(s.current)
	if patch.PollingIntervalSec != nil {
		if *patch.PollingIntervalSec <= 0 {
			return domain.Settings{}, fmt.Errorf("settings: pollingIntervalSec must be positive, got %d", *patch.PollingIntervalSec)
		}
		next.PollingIntervalSec = *patch.PollingIntervalSec
	}
	if patch.NotificationsEnabled != nil {
		next.NotificationsEnabled = *patch.NotificationsEnabled
	}
	if patch.SoundEnabled != nil {
		next.SoundEnabled = *patch.SoundEnabled
	}

	if err := s.persist(next); err != nil {
		return domain.Settings{}, err
	}
	s.current = next
	return copySettings(next), nil
}

// AddTeam appends a team to the monitored set. Adding a team that is already
// present is a no-op and reports false.
func (s *Store) AddTeam(sel domain.TeamSelection) (domain.Settings, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.current.Teams {
		if existing.TeamID == sel.TeamID {
			return copySettings(s.current), false, nil
		}
	}

	next := copySettings(s.current)
	next.Teams = append(next.Teams, sel)
	if err := s.persist(next); err != nil {
		return domain.Settings{}, false, err
	}
	s.current = next
	return copySettings(next), true, nil
}

// RemoveTeam deletes a team from the monitored set, reporting whether it was
// present.
func (s *Store) RemoveTeam(teamID int) (domain.Settings, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := copySettings(s.current)
	kept := next.Teams[:0]
	found := false
	for _, t := range next.Teams {
		if t.TeamID == teamID {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	if !found {
		return copySettings(s.current), false, nil
	}
	next.Teams = kept

	if err := s.persist(next); err != nil {
		return domain.Settings{}, false, err
	}
	s.current = next
	return copySettings(next), true, nil
}

func (s *Store) persist(doc domain.Settings) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create settings directory: %w", err)
		}
	}

	v := viper.New()
	v.SetConfigType("yaml")

	teams := make([]map[string]any, 0, len(doc.Teams))
	for _, t := range doc.Teams {
		teams = append(teams, map[string]any{
			"teamId":       t.TeamID,
			"teamName":     t.TeamName,
			"abbreviation": t.Abbreviation,
			"addedAtIso":   t.AddedAt,
		})
	}
	v.Set("teams", teams)
	v.Set("pollingIntervalSec", doc.PollingIntervalSec)
	v.Set("notificationsEnabled", doc.NotificationsEnabled)
	v.Set("soundEnabled", doc.SoundEnabled)

	if err := v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}

func copySettings(doc domain.Settings) domain.Settings {
	out := doc
	out.Teams = make([]domain.TeamSelection, len(doc.Teams))
	copy(out.Teams, doc.Teams)
	return out
}
