package http

import (
	nethttp "net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"mlb-score-watcher/internal/domain"
	"mlb-score-watcher/internal/events"
	"mlb-score-watcher/internal/http/handlers"
	"mlb-score-watcher/internal/http/middleware"
	"mlb-score-watcher/internal/metrics"
	"mlb-score-watcher/internal/settings"
	"mlb-score-watcher/internal/testutil"
	"mlb-score-watcher/internal/watcher"
)

func newTestRouter(t *testing.T) nethttp.Handler {
	t.Helper()

	store, err := settings.Load(filepath.Join(t.TempDir(), "settings.yaml"))
	if err != nil {
		t.Fatalf("failed to load settings: %v", err)
	}
	feed := testutil.StaticFeed{
		Teams: []domain.TeamSearchResult{{ID: 147, Name: "New York Yankees", Abbreviation: "NYY"}},
	}
	bus := events.NewBus()
	w := watcher.New(feed, bus, nil, metrics.NewRecorder())
	t.Cleanup(w.Stop)

	return NewRouter(handlers.NewHandler(w, store, feed, bus, nil))
}

func TestRouterRoutes(t *testing.T) {
	router := newTestRouter(t)

	cases := []struct {
		method string
		path   string
		status int
	}{
		{nethttp.MethodGet, "/health", nethttp.StatusOK},
		{nethttp.MethodGet, "/ready", nethttp.StatusOK},
		{nethttp.MethodGet, "/status", nethttp.StatusOK},
		{nethttp.MethodGet, "/notifications", nethttp.StatusOK},
		{nethttp.MethodGet, "/settings", nethttp.StatusOK},
		{nethttp.MethodGet, "/teams", nethttp.StatusOK},
		{nethttp.MethodGet, "/teams/search?q=yankees", nethttp.StatusOK},
		{nethttp.MethodPost, "/watcher/stop", nethttp.StatusOK},
		{nethttp.MethodGet, "/nope", nethttp.StatusNotFound},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
		if rec.Code != tc.status {
			t.Fatalf("%s %s: expected %d, got %d (%s)", tc.method, tc.path, tc.status, rec.Code, rec.Body.String())
		}
	}
}

// The production server routes every request, /events included, through the
// logging middleware. The upgrade must survive the wrapped response writer.
func TestEventsUpgradeThroughLoggingMiddleware(t *testing.T) {
	store, err := settings.Load(filepath.Join(t.TempDir(), "settings.yaml"))
	if err != nil {
		t.Fatalf("failed to load settings: %v", err)
	}
	feed := testutil.StaticFeed{}
	bus := events.NewBus()
	w := watcher.New(feed, bus, nil, metrics.NewRecorder())
	t.Cleanup(w.Stop)

	router := NewRouter(handlers.NewHandler(w, store, feed, bus, nil))
	srv := httptest.NewServer(middleware.LoggingMiddleware(nil, metrics.NewRecorder(), router))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/events"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		status := 0
		if resp != nil {
			status = resp.StatusCode
		}
		t.Fatalf("failed to dial through middleware (status %d): %v", status, err)
	}
	defer conn.Close()

	bus.PublishStatus(domain.GameStatus{TeamID: 147, TeamName: "New York Yankees", State: domain.StateLive})

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var ev events.Event
	if err := conn.ReadJSON(&ev); err != nil {
		t.Fatalf("failed to read event: %v", err)
	}
	if ev.Stream != events.StreamStatus || ev.Status == nil || ev.Status.TeamID != 147 {
		t.Fatalf("unexpected event: %+v", ev)
	}
}
