package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"mlb-score-watcher/internal/domain"
	"mlb-score-watcher/internal/events"
	"mlb-score-watcher/internal/providers"
	"mlb-score-watcher/internal/settings"
	"mlb-score-watcher/internal/watcher"
)

type nowFunc func() time.Time

// Handler wires HTTP routes to the watcher, settings store and feed.
type Handler struct {
	watcher  *watcher.Watcher
	settings *settings.Store
	feed     providers.FeedProvider
	bus      *events.Bus
	logger   *slog.Logger
	now      nowFunc
}

// NewHandler constructs a Handler with defaults.
func NewHandler(w *watcher.Watcher, st *settings.Store, feed providers.FeedProvider, bus *events.Bus, logger *slog.Logger) *Handler {
	return &Handler{
		watcher:  w,
		settings: st,
		feed:     feed,
		bus:      bus,
		logger:   logger,
		now:      time.Now,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic. The service is ready once constructed;
// the watcher state is included so probes can distinguish idle from running.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ready",
		"watcher": string(h.watcher.State()),
	}, h.logger)
}

// Status returns every monitored team's current status, optionally filtered
// by the teamId query parameter.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}

	var statuses []domain.GameStatus
	if raw := r.URL.Query().Get("teamId"); raw != "" {
		teamID, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid teamId", h.logger)
			return
		}
		statuses = h.watcher.StatusForTeam(teamID)
	} else {
		statuses = h.watcher.Statuses()
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"watcherState": h.watcher.State(),
		"statuses":     statuses,
	}, h.logger)
}

// Notifications returns the recent notification history, newest first.
func (h *Handler) Notifications(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"notifications": h.watcher.Notifications(),
	}, h.logger)
}
