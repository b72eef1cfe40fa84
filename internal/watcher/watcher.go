package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"mlb-score-watcher/internal/domain"
	"mlb-score-watcher/internal/events"
	"mlb-score-watcher/internal/logging"
	"mlb-score-watcher/internal/metrics"
	"mlb-score-watcher/internal/providers"
	"mlb-score-watcher/internal/store"
	"mlb-score-watcher/internal/timeutil"
)

const (
	// minInterval is the floor applied to the configured polling cadence.
	minInterval = 10 * time.Second

	// fetchTimeout bounds each schedule or linescore fetch within a tick.
	fetchTimeout = 8 * time.Second

	// teamWorkers caps concurrent per-team pipelines per tick, protecting the
	// upstream API from bursty load regardless of how many teams are monitored.
	teamWorkers = 2
)

// State is the watcher's lifecycle state.
type State string

const (
	StateIdle    State = "idle"
	StateRunning State = "running"
)

// Watcher polls the feed for every monitored team on a fixed cadence, diffs
// linescores against the change cache, and publishes status and notification
// events. All tick processing is serialized; ticks that would overlap are
// skipped rather than queued.
type Watcher struct {
	feed    providers.FeedProvider
	bus     *events.Bus
	logger  *slog.Logger
	metrics *metrics.Recorder

	cache    *store.ChangeCache
	statuses *store.StatusStore
	log      *store.NotificationLog

	now func() time.Time

	// startMu serializes Start and Stop so a concurrent restart cannot
	// orphan a cadence goroutine between the stop and the new start.
	startMu sync.Mutex

	mu         sync.Mutex
	settings   domain.Settings
	state      State
	done       chan struct{}
	generation uint64

	tickMu sync.Mutex
}

// New constructs a stopped Watcher.
func New(feed providers.FeedProvider, bus *events.Bus, logger *slog.Logger, recorder *metrics.Recorder) *Watcher {
	return &Watcher{
		feed:     feed,
		bus:      bus,
		logger:   logger,
		metrics:  recorder,
		cache:    store.NewChangeCache(),
		statuses: store.NewStatusStore(),
		log:      store.NewNotificationLog(store.DefaultNotificationCapacity),
		now:      time.Now,
		settings: domain.DefaultSettings(),
		state:    StateIdle,
	}
}

// Start replaces the monitored team set and begins polling. Any previous
// cadence is stopped first, so Start doubles as restart after a settings
// change. With no teams configured the watcher stays idle and does no work.
func (w *Watcher) Start(settings domain.Settings) {
	w.startMu.Lock()
	defer w.startMu.Unlock()
	w.stop()

	w.mu.Lock()
	w.settings = copySettings(settings)
	if len(settings.Teams) == 0 {
		w.mu.Unlock()
		logging.Info(w.logger, "no teams configured for monitoring")
		return
	}

	w.generation++
	gen := w.generation
	done := make(chan struct{})
	w.done = done
	w.state = StateRunning
	interval := EffectiveInterval(settings.PollingIntervalSec)
	w.mu.Unlock()

	logging.Info(w.logger, "starting game watcher",
		logging.FieldCount, len(settings.Teams),
		logging.FieldDurationMS, interval.Milliseconds(),
	)
	go w.run(gen, interval, done)
}

// Stop disarms the cadence and clears the change cache and status store.
// The notification log survives so history stays visible while idle. Safe to
// call when already idle; results from ticks in flight at the time of the
// call are discarded on arrival.
func (w *Watcher) Stop() {
	w.startMu.Lock()
	defer w.startMu.Unlock()
	w.stop()
}

func (w *Watcher) stop() {
	w.mu.Lock()
	if w.done != nil {
		close(w.done)
		w.done = nil
	}
	w.generation++
	w.state = StateIdle
	w.cache.Clear()
	w.statuses.Clear()
	w.mu.Unlock()
}

// State reports whether the watcher is idle or running.
func (w *Watcher) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Statuses returns every team's current status sorted by team name.
func (w *Watcher) Statuses() []domain.GameStatus {
	return w.statuses.All()
}

// StatusForTeam returns a list of zero or one statuses for the team.
func (w *Watcher) StatusForTeam(teamID int) []domain.GameStatus {
	return w.statuses.ForTeam(teamID)
}

// Notifications returns a copy of the notification history, newest first.
func (w *Watcher) Notifications() []domain.NotificationEntry {
	return w.log.All()
}

// EffectiveInterval converts a configured interval to the cadence actually
// used, applying the floor.
func EffectiveInterval(seconds int) time.Duration {
	interval := time.Duration(seconds) * time.Second
	if interval < minInterval {
		interval = minInterval
	}
	return interval
}

func (w *Watcher) run(gen uint64, interval time.Duration, done chan struct{}) {
	w.tickNow(gen)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			logging.Info(w.logger, "game watcher stopped")
			return
		case <-ticker.C:
			w.tick(gen)
		}
	}
}

// tick runs one full polling pass. A tick that would overlap a still-running
// one is skipped; the cadence retries naturally.
func (w *Watcher) tick(gen uint64) {
	if !w.tickMu.TryLock() {
		logging.Warn(w.logger, "tick skipped, previous tick still running")
		return
	}
	defer w.tickMu.Unlock()
	w.runTick(gen)
}

// tickNow is the first pass after Start. It waits for any lingering tick from
// a previous generation instead of skipping, so a restart polls immediately
// rather than a full interval later. The generation check makes waiting safe.
func (w *Watcher) tickNow(gen uint64) {
	w.tickMu.Lock()
	defer w.tickMu.Unlock()
	w.runTick(gen)
}

func (w *Watcher) runTick(gen uint64) {
	start := time.Now()
	var tickErr error
	defer func() {
		if r := recover(); r != nil {
			tickErr = fmt.Errorf("tick panic: %v", r)
			logging.Error(w.logger, "watcher tick failed", tickErr)
		}
		w.metrics.RecordTickCycle(time.Since(start), tickErr)
	}()

	w.mu.Lock()
	if gen != w.generation {
		w.mu.Unlock()
		return
	}
	teams := make([]domain.TeamSelection, len(w.settings.Teams))
	copy(teams, w.settings.Teams)
	w.mu.Unlock()

	date := timeutil.SportingDay(w.now())
	logging.Debug(w.logger, "watcher tick", logging.FieldDate, date, logging.FieldCount, len(teams))

	queue := make(chan domain.TeamSelection, len(teams))
	for _, team := range teams {
		queue <- team
	}
	close(queue)

	workers := teamWorkers
	if len(teams) < workers {
		workers = len(teams)
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for team := range queue {
				w.processTeam(gen, team, date)
			}
		}()
	}
	wg.Wait()
}

// processTeam classifies one team's games for the day and updates status and
// cache. Failures are contained: the team is marked error and the tick moves
// on.
func (w *Watcher) processTeam(gen uint64, team domain.TeamSelection, date string) {
	games, err := w.fetchScheduleWithFallback(team.TeamID, date)
	if err != nil {
		logging.Error(w.logger, "failed to process team schedule", err,
			logging.FieldTeam, team.TeamName,
			logging.FieldTeamID, team.TeamID,
		)
		w.commitStatus(gen, domain.GameStatus{
			TeamID:      team.TeamID,
			TeamName:    team.TeamName,
			State:       domain.StateError,
			LastUpdated: w.nowISO(),
			Message:     "Failed to load schedule",
		})
		return
	}

	var live, upcoming, finals []domain.ScheduleGame
	for _, game := range games {
		switch {
		case game.AbstractState == domain.AbstractLive:
			live = append(live, game)
		case game.AbstractState.IsUpcoming():
			upcoming = append(upcoming, game)
		case game.AbstractState == domain.AbstractFinal:
			finals = append(finals, game)
		}
	}

	if len(live) == 0 {
		// Carry the last seen score onto the status before clearing, so a
		// just-finished game still shows its final linescore.
		previous := w.cache.LatestForTeam(team.TeamID)
		w.evictTeam(gen, team.TeamID)

		state := domain.StateIdle
		message := "No active game today"
		switch {
		case len(upcoming) > 0:
			state = domain.StateScheduled
			message = "Next game vs " + upcoming[0].Opponent(team.TeamID).Name
		case len(finals) > 0:
			state = domain.StateFinal
		}

		w.commitStatus(gen, domain.GameStatus{
			TeamID:      team.TeamID,
			TeamName:    team.TeamName,
			State:       state,
			LastUpdated: w.nowISO(),
			Linescore:   previous,
			Message:     message,
		})
		return
	}

	for _, game := range live {
		if err := w.processLiveGame(gen, team, game.GamePk); err != nil {
			logging.Error(w.logger, "failed to process live game", err,
				logging.FieldTeam, team.TeamName,
				logging.FieldGamePk, game.GamePk,
			)
			w.commitStatus(gen, domain.GameStatus{
				TeamID:      team.TeamID,
				TeamName:    team.TeamName,
				State:       domain.StateError,
				LastUpdated: w.nowISO(),
				Message:     "Failed to load schedule",
			})
			return
		}
	}
}

// fetchScheduleWithFallback fetches the day's schedule, retrying once with
// the previous calendar day when the primary date has no games. A 404 means
// "no games," not failure; it can still fall through to the fallback day.
func (w *Watcher) fetchScheduleWithFallback(teamID int, date string) ([]domain.ScheduleGame, error) {
	games, err := w.fetchSchedule(teamID, date)
	if err != nil {
		if !providers.IsNotFound(err) {
			return nil, err
		}
		games = nil
	}
	if len(games) > 0 {
		return games, nil
	}

	previous, err := timeutil.PreviousDay(date)
	if err != nil {
		return []domain.ScheduleGame{}, nil
	}

	fallback, err := w.fetchSchedule(teamID, previous)
	if err != nil {
		if providers.IsNotFound(err) {
			return []domain.ScheduleGame{}, nil
		}
		return nil, err
	}
	return fallback, nil
}

func (w *Watcher) fetchSchedule(teamID int, date string) ([]domain.ScheduleGame, error) {
	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()
	return w.feed.TeamSchedule(ctx, teamID, date)
}

// processLiveGame fetches one live game's linescore and decides whether a
// notification fires. The first observation of a (team, game) pair is a
// baseline and never notifies.
func (w *Watcher) processLiveGame(gen uint64, team domain.TeamSelection, gamePk int) error {
	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	fresh, err := w.feed.GameLinescore(ctx, gamePk)
	if err != nil {
		return err
	}
	if fresh == nil {
		// No linescore yet. Not an error, just insufficient data this tick.
		return nil
	}

	status := domain.GameStatus{
		TeamID:      team.TeamID,
		TeamName:    team.TeamName,
		State:       domain.StateLive,
		LastUpdated: w.nowISO(),
		Linescore:   fresh,
	}

	cached, ok := w.cache.Get(team.TeamID, gamePk)
	if !ok {
		w.putCache(gen, team.TeamID, gamePk, fresh)
		w.commitStatus(gen, status)
		return nil
	}

	if cached.RunsFor(team.TeamID) == fresh.RunsFor(team.TeamID) {
		// Same score; refresh cached metadata such as inning state.
		w.putCache(gen, team.TeamID, gamePk, fresh)
		w.commitStatus(gen, status)
		return nil
	}

	body := fmt.Sprintf("Updated score: %s %d - %d %s",
		fresh.Home.Team.Abbreviation, fresh.Home.RunsOrZero(),
		fresh.Away.RunsOrZero(), fresh.Away.Team.Abbreviation)
	entry := domain.NotificationEntry{
		ID:        uuid.NewString(),
		TeamID:    team.TeamID,
		TeamName:  team.TeamName,
		Title:     team.TeamName + " scored!",
		Body:      body,
		Timestamp: w.nowISO(),
		GamePk:    gamePk,
	}
	w.commitNotification(gen, entry)
	w.putCache(gen, team.TeamID, gamePk, fresh)
	w.commitStatus(gen, status)
	return nil
}

// commitStatus writes a status and publishes it, unless the watcher has been
// stopped or restarted since the tick began.
func (w *Watcher) commitStatus(gen uint64, status domain.GameStatus) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if gen != w.generation {
		return
	}
	w.statuses.Set(status)
	w.bus.PublishStatus(status)
}

func (w *Watcher) commitNotification(gen uint64, entry domain.NotificationEntry) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if gen != w.generation {
		return
	}
	w.log.Append(entry)
	w.metrics.RecordNotification(entry.TeamName)
	w.bus.PublishNotification(entry)
	logging.Info(w.logger, "score change detected",
		logging.FieldTeam, entry.TeamName,
		logging.FieldGamePk, entry.GamePk,
	)
}

func (w *Watcher) putCache(gen uint64, teamID, gamePk int, ls *domain.Linescore) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if gen != w.generation {
		return
	}
	w.cache.Put(teamID, gamePk, ls)
}

func (w *Watcher) evictTeam(gen uint64, teamID int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if gen != w.generation {
		return
	}
	w.cache.EvictTeam(teamID)
}

func (w *Watcher) nowISO() string {
	return w.now().UTC().Format(time.RFC3339)
}

func copySettings(settings domain.Settings) domain.Settings {
	out := settings
	out.Teams = make([]domain.TeamSelection, len(settings.Teams))
	copy(out.Teams, settings.Teams)
	return out
}
