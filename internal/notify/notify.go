package notify

import (
	"mlb-score-watcher/internal/domain"
)

// Notifier delivers one score-change notification to the user.
type Notifier interface {
	Notify(entry domain.NotificationEntry)
}

// Hub dispatches notifications to multiple sinks.
type Hub struct {
	notifiers []Notifier
}

// NewHub creates a Hub with the given sinks.
func NewHub(notifiers ...Notifier) *Hub {
	return &Hub{notifiers: notifiers}
}

// Notify sends an entry to all registered sinks. Slow sinks do not block
// each other or the caller.
func (h *Hub) Notify(entry domain.NotificationEntry) {
	for _, n := range h.notifiers {
		go n.Notify(entry)
	}
}
