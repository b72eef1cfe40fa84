package notify

import (
	"context"
	"sync"
	"testing"
	"time"

	"mlb-score-watcher/internal/domain"
	"mlb-score-watcher/internal/events"
)

type chanNotifier struct {
	ch chan domain.NotificationEntry
}

func newChanNotifier() *chanNotifier {
	return &chanNotifier{ch: make(chan domain.NotificationEntry, 8)}
}

func (n *chanNotifier) Notify(entry domain.NotificationEntry) {
	n.ch <- entry
}

func receive(t *testing.T, ch chan domain.NotificationEntry) domain.NotificationEntry {
	t.Helper()
	select {
	case entry := <-ch:
		return entry
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for notification")
		return domain.NotificationEntry{}
	}
}

func TestHubFansOutToAllSinks(t *testing.T) {
	a := newChanNotifier()
	b := newChanNotifier()
	hub := NewHub(a, b)

	hub.Notify(domain.NotificationEntry{Title: "New York Yankees scored!"})

	for _, sink := range []*chanNotifier{a, b} {
		if got := receive(t, sink.ch); got.Title != "New York Yankees scored!" {
			t.Fatalf("unexpected entry: %+v", got)
		}
	}
}

func TestCommandNotifierSkipsWhenDisabled(t *testing.T) {
	var mu sync.Mutex
	var calls [][]string
	runner := func(name string, args ...string) error {
		mu.Lock()
		defer mu.Unlock()
		calls = append(calls, append([]string{name}, args...))
		return nil
	}

	prefs := domain.DefaultSettings()
	prefs.NotificationsEnabled = false
	n := NewCommandNotifier(func() domain.Settings { return prefs }, runner, nil)

	n.Notify(domain.NotificationEntry{Title: "t", Body: "b"})

	mu.Lock()
	defer mu.Unlock()
	if len(calls) != 0 {
		t.Fatalf("expected no command invocation, got %v", calls)
	}
}

func TestCommandNotifierPassesTitleBodyAndSoundHint(t *testing.T) {
	var mu sync.Mutex
	var calls [][]string
	runner := func(name string, args ...string) error {
		mu.Lock()
		defer mu.Unlock()
		calls = append(calls, append([]string{name}, args...))
		return nil
	}

	prefs := domain.DefaultSettings()
	prefs.SoundEnabled = true
	n := NewCommandNotifier(func() domain.Settings { return prefs }, runner, nil)

	n.Notify(domain.NotificationEntry{Title: "New York Yankees scored!", Body: "Updated score: NYY 3 - 1 BOS"})

	mu.Lock()
	defer mu.Unlock()
	if len(calls) != 1 {
		t.Fatalf("expected one invocation, got %d", len(calls))
	}
	call := calls[0]
	if call[0] != notifyCommand {
		t.Fatalf("unexpected command: %s", call[0])
	}
	joined := make(map[string]bool, len(call))
	for _, arg := range call {
		joined[arg] = true
	}
	if !joined["New York Yankees scored!"] || !joined["Updated score: NYY 3 - 1 BOS"] {
		t.Fatalf("title/body missing from args: %v", call)
	}
	if !joined["string:sound-name:message-new-instant"] {
		t.Fatalf("expected sound hint when soundEnabled, got %v", call)
	}
}

func TestPumpDeliversBusEventsToHub(t *testing.T) {
	bus := events.NewBus()
	sink := newChanNotifier()
	pump := NewPump(bus, NewHub(sink), nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		pump.Run(ctx)
		close(done)
	}()

	// The pump subscribes asynchronously; wait for it before publishing.
	deadline := time.Now().Add(2 * time.Second)
	for {
		bus.PublishNotification(domain.NotificationEntry{GamePk: 1001, Title: "scored"})
		select {
		case entry := <-sink.ch:
			if entry.GamePk != 1001 {
				t.Fatalf("unexpected entry: %+v", entry)
			}
			cancel()
			<-done
			return
		case <-time.After(50 * time.Millisecond):
			if time.Now().After(deadline) {
				t.Fatal("pump never delivered the notification")
			}
		}
	}
}
