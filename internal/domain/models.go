package domain

// GameState is the per-team status derived by the watcher. It is recomputed
// from scratch every tick rather than transitioned incrementally.
type GameState string

const (
	StateIdle      GameState = "idle"
	StateScheduled GameState = "scheduled"
	StateLive      GameState = "live"
	StateFinal     GameState = "final"
	StateError     GameState = "error"
)

// AbstractState is the coarse lifecycle phase of a game as reported by the
// feed source, independent of the watcher's derived per-team state.
type AbstractState string

const (
	AbstractPreview AbstractState = "Preview"
	AbstractPreGame AbstractState = "Pre-Game"
	AbstractLive    AbstractState = "Live"
	AbstractFinal   AbstractState = "Final"
)

// IsUpcoming reports whether a game has not started yet.
func (s AbstractState) IsUpcoming() bool {
	return s == AbstractPreview || s == AbstractPreGame
}

// TeamInfo identifies one side of a matchup.
type TeamInfo struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	Venue        string `json:"venue,omitempty"`
}

// TeamSelection is a team the user chose to monitor. Immutable once created;
// removal deletes it.
type TeamSelection struct {
	TeamID       int    `json:"teamId"`
	TeamName     string `json:"teamName"`
	Abbreviation string `json:"abbreviation"`
	AddedAt      string `json:"addedAtIso"`
}

// Settings is the persisted user configuration document.
type Settings struct {
	Teams                []TeamSelection `json:"teams"`
	PollingIntervalSec   int             `json:"pollingIntervalSec"`
	NotificationsEnabled bool            `json:"notificationsEnabled"`
	SoundEnabled         bool            `json:"soundEnabled"`
}

// DefaultSettings returns the settings used before the user configures anything.
func DefaultSettings() Settings {
	return Settings{
		Teams:                []TeamSelection{},
		PollingIntervalSec:   30,
		NotificationsEnabled: true,
		SoundEnabled:         false,
	}
}

// ScheduleGame is one entry from a team's schedule for a day. Fetched fresh
// every tick, never persisted.
type ScheduleGame struct {
	GamePk        int           `json:"gamePk"`
	StartTime     string        `json:"startTime"`
	DetailedState string        `json:"detailedState"`
	AbstractState AbstractState `json:"abstractState"`
	HomeTeam      TeamInfo      `json:"homeTeam"`
	AwayTeam      TeamInfo      `json:"awayTeam"`
}

// Opponent returns the side of the matchup that is not the given team.
func (g ScheduleGame) Opponent(teamID int) TeamInfo {
	if g.AwayTeam.ID == teamID {
		return g.HomeTeam
	}
	return g.AwayTeam
}

// TeamScore is one side of a linescore.
type TeamScore struct {
	Team   TeamInfo `json:"team"`
	Runs   *int     `json:"runs"`
	Hits   *int     `json:"hits,omitempty"`
	Errors *int     `json:"errors,omitempty"`
}

// RunsOrZero treats a missing run value as zero to guard against partial
// upstream data.
func (s TeamScore) RunsOrZero() int {
	if s.Runs == nil {
		return 0
	}
	return *s.Runs
}

// Linescore is a snapshot of the current score and inning state for one game.
type Linescore struct {
	Home        TeamScore `json:"home"`
	Away        TeamScore `json:"away"`
	Inning      *int      `json:"inning,omitempty"`
	InningState string    `json:"inningState,omitempty"`
}

// RunsFor returns the run total for the side whose team matches teamID.
// Sides are matched by identifier, never by position.
func (l Linescore) RunsFor(teamID int) int {
	if l.Home.Team.ID == teamID {
		return l.Home.RunsOrZero()
	}
	return l.Away.RunsOrZero()
}

// GameStatus is the watcher's current view of one monitored team. At most one
// exists per team and it is overwritten every tick.
type GameStatus struct {
	TeamID      int        `json:"teamId"`
	TeamName    string     `json:"teamName"`
	State       GameState  `json:"state"`
	LastUpdated string     `json:"lastUpdatedIso"`
	Linescore   *Linescore `json:"linescore,omitempty"`
	Message     string     `json:"message,omitempty"`
}

// NotificationEntry records one score-change notification.
type NotificationEntry struct {
	ID        string `json:"id"`
	TeamID    int    `json:"teamId"`
	TeamName  string `json:"teamName"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Timestamp string `json:"timestampIso"`
	GamePk    int    `json:"gamePk"`
}

// TeamSearchResult is one entry from the team directory.
type TeamSearchResult struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	LocationName string `json:"locationName,omitempty"`
	VenueName    string `json:"venueName,omitempty"`
}

// IntPtr is a convenience for building optional score fields.
func IntPtr(v int) *int {
	return &v
}
