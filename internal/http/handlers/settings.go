package handlers

import (
	"encoding/json"
	"net/http"

	"mlb-score-watcher/internal/logging"
	"mlb-score-watcher/internal/settings"
	"mlb-score-watcher/internal/watcher"
)

// Settings serves and updates the persisted settings document.
func (h *Handler) Settings(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.settings.Settings(), h.logger)
	case http.MethodPatch:
		h.updateSettings(w, r)
	default:
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}

func (h *Handler) updateSettings(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)

	var patch settings.Patch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid settings payload", logger)
		return
	}

	updated, err := h.settings.Apply(patch)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), logger)
		return
	}

	// A new polling interval only takes effect on restart.
	if patch.PollingIntervalSec != nil && h.watcher.State() == watcher.StateRunning {
		logging.Info(logger, "restarting watcher for new polling interval",
			logging.FieldCount, updated.PollingIntervalSec,
		)
		h.watcher.Start(updated)
	}

	writeJSON(w, http.StatusOK, updated, logger)
}
