package handlers

import (
	"net/http"

	"mlb-score-watcher/internal/logging"
)

// StartWatcher starts polling with the currently persisted settings.
func (h *Handler) StartWatcher(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)

	current := h.settings.Settings()
	h.watcher.Start(current)

	logging.Info(logger, "watcher start requested", logging.FieldCount, len(current.Teams))
	writeJSON(w, http.StatusOK, map[string]string{
		"watcher": string(h.watcher.State()),
	}, logger)
}

// StopWatcher stops polling and clears derived state.
func (h *Handler) StopWatcher(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)

	h.watcher.Stop()

	logging.Info(logger, "watcher stop requested")
	writeJSON(w, http.StatusOK, map[string]string{
		"watcher": string(h.watcher.State()),
	}, logger)
}
