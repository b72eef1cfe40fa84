package store

import (
	"sync"

	"mlb-score-watcher/internal/domain"
)

// DefaultNotificationCapacity bounds the in-memory notification history.
const DefaultNotificationCapacity = 50

// NotificationLog is a bounded ring of recent notifications, newest first.
// Eviction is by recency across all games, not per game.
type NotificationLog struct {
	mu       sync.RWMutex
	entries  []domain.NotificationEntry
	capacity int
}

// NewNotificationLog constructs a log with the given capacity; values <= 0
// use the default of 50.
func NewNotificationLog(capacity int) *NotificationLog {
	if capacity <= 0 {
		capacity = DefaultNotificationCapacity
	}
	return &NotificationLog{
		entries:  make([]domain.NotificationEntry, 0, capacity),
		capacity: capacity,
	}
}

// Append prepends an entry, evicting the oldest when over capacity.
func (l *NotificationLog) Append(entry domain.NotificationEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append([]domain.NotificationEntry{entry}, l.entries...)
	if len(l.entries) > l.capacity {
		l.entries = l.entries[:l.capacity]
	}
}

// All returns a defensive copy of the log, newest first.
func (l *NotificationLog) All() []domain.NotificationEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.NotificationEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of retained entries.
func (l *NotificationLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
