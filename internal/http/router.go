package http

import (
	nethttp "net/http"

	"mlb-score-watcher/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/status", handler.Status)
	mux.HandleFunc("/notifications", handler.Notifications)
	mux.HandleFunc("/settings", handler.Settings)
	mux.HandleFunc("/teams", handler.Teams)
	mux.HandleFunc("/teams/search", handler.SearchTeams)
	mux.HandleFunc("/teams/", handler.TeamByID)
	mux.HandleFunc("/watcher/start", handler.StartWatcher)
	mux.HandleFunc("/watcher/stop", handler.StopWatcher)
	mux.HandleFunc("/events", handler.Events)
	return mux
}
