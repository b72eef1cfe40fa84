package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"mlb-score-watcher/internal/domain"
	"mlb-score-watcher/internal/logging"
	"mlb-score-watcher/internal/watcher"
)

// Teams lists and adds monitored teams.
func (h *Handler) Teams(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, map[string]any{
			"teams": h.settings.Settings().Teams,
		}, h.logger)
	case http.MethodPost:
		h.addTeam(w, r)
	default:
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}

type addTeamRequest struct {
	TeamID       int    `json:"teamId"`
	TeamName     string `json:"teamName"`
	Abbreviation string `json:"abbreviation"`
}

func (h *Handler) addTeam(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)

	var req addTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid team payload", logger)
		return
	}
	if req.TeamID <= 0 || strings.TrimSpace(req.TeamName) == "" {
		writeError(w, r, http.StatusBadRequest, "teamId and teamName are required", logger)
		return
	}

	selection := domain.TeamSelection{
		TeamID:       req.TeamID,
		TeamName:     req.TeamName,
		Abbreviation: req.Abbreviation,
		AddedAt:      h.now().UTC().Format(time.RFC3339),
	}

	updated, added, err := h.settings.AddTeam(selection)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "failed to persist team", logger)
		return
	}
	if !added {
		writeJSON(w, http.StatusOK, map[string]any{
			"teams": updated.Teams,
			"added": false,
		}, logger)
		return
	}

	h.restartIfRunning(updated)
	logging.Info(logger, "team added",
		logging.FieldTeam, selection.TeamName,
		logging.FieldTeamID, selection.TeamID,
	)
	writeJSON(w, http.StatusCreated, map[string]any{
		"teams": updated.Teams,
		"added": true,
	}, logger)
}

// TeamByID removes a monitored team. Path: /teams/{id}.
func (h *Handler) TeamByID(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodDelete, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)

	raw := strings.TrimPrefix(r.URL.Path, "/teams/")
	teamID, err := strconv.Atoi(raw)
	if err != nil || teamID <= 0 {
		writeError(w, r, http.StatusBadRequest, "invalid team id", logger)
		return
	}

	updated, removed, err := h.settings.RemoveTeam(teamID)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "failed to persist team removal", logger)
		return
	}
	if !removed {
		writeError(w, r, http.StatusNotFound, "team not monitored", logger)
		return
	}

	h.restartIfRunning(updated)
	logging.Info(logger, "team removed", logging.FieldTeamID, teamID)
	writeJSON(w, http.StatusOK, map[string]any{"teams": updated.Teams}, logger)
}

// SearchTeams proxies keyword search to the team directory.
func (h *Handler) SearchTeams(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)

	keyword := strings.TrimSpace(r.URL.Query().Get("q"))
	results, err := h.feed.SearchTeams(r.Context(), keyword)
	if err != nil {
		writeError(w, r, http.StatusBadGateway, "team search unavailable", logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"results": results}, logger)
}

// restartIfRunning applies a changed team set to a running watcher. An idle
// watcher stays idle until explicitly started.
func (h *Handler) restartIfRunning(updated domain.Settings) {
	if h.watcher.State() == watcher.StateRunning {
		h.watcher.Start(updated)
	}
}
