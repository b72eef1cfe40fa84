package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"mlb-score-watcher/internal/domain"
	"mlb-score-watcher/internal/events"
)

func TestEventsStreamsStatusAndNotification(t *testing.T) {
	h := newTestHandler(t)

	srv := httptest.NewServer(http.HandlerFunc(h.Events))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/events"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("failed to dial: %v", err)
	}
	defer conn.Close()

	// Subscriptions are registered before Upgrade returns, so publishing
	// right after a successful dial is safe.
	h.bus.PublishStatus(domain.GameStatus{TeamID: 147, TeamName: "New York Yankees", State: domain.StateLive})
	h.bus.PublishNotification(domain.NotificationEntry{GamePk: 1001, Title: "New York Yankees scored!"})

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	seen := map[string]bool{}
	for i := 0; i < 2; i++ {
		var ev events.Event
		if err := conn.ReadJSON(&ev); err != nil {
			t.Fatalf("failed to read event %d: %v", i, err)
		}
		seen[ev.Stream] = true
		switch ev.Stream {
		case events.StreamStatus:
			if ev.Status == nil || ev.Status.TeamID != 147 {
				t.Fatalf("unexpected status event: %+v", ev)
			}
		case events.StreamNotification:
			if ev.Notification == nil || ev.Notification.GamePk != 1001 {
				t.Fatalf("unexpected notification event: %+v", ev)
			}
		default:
			t.Fatalf("unexpected stream: %q", ev.Stream)
		}
	}
	if !seen[events.StreamStatus] || !seen[events.StreamNotification] {
		t.Fatalf("expected both streams, saw %v", seen)
	}
}

func TestEventsRejectsPlainHTTP(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.Events(rec, httptest.NewRequest(http.MethodGet, "/events", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-websocket request, got %d", rec.Code)
	}
}
