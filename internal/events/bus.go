package events

import (
	"sync"

	"github.com/google/uuid"

	"mlb-score-watcher/internal/domain"
)

// Stream names published by the watcher.
const (
	StreamStatus       = "status"
	StreamNotification = "notification"
)

// Event is one message on a stream. Exactly one payload field is set,
// matching the stream it was published on.
type Event struct {
	Stream       string                    `json:"stream"`
	Status       *domain.GameStatus        `json:"status,omitempty"`
	Notification *domain.NotificationEntry `json:"notification,omitempty"`
}

// Subscription is a handle for one subscriber on one stream.
type Subscription struct {
	ID     string
	Stream string
	C      <-chan Event

	ch chan Event
}

// Bus fans events out to any number of subscribers per named stream.
// Publishing never blocks: a subscriber that cannot keep up has events
// dropped rather than stalling the watcher.
type Bus struct {
	mu     sync.RWMutex
	subs   map[string]map[string]*Subscription
	closed bool
}

// NewBus constructs an empty Bus.
func NewBus() *Bus {
	return &Bus{
		subs: make(map[string]map[string]*Subscription),
	}
}

// Subscribe registers a subscriber on a stream with the given channel buffer.
func (b *Bus) Subscribe(stream string, buffer int) *Subscription {
	if buffer <= 0 {
		buffer = 16
	}
	ch := make(chan Event, buffer)
	sub := &Subscription{
		ID:     uuid.NewString(),
		Stream: stream,
		C:      ch,
		ch:     ch,
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		close(ch)
		return sub
	}
	if b.subs[stream] == nil {
		b.subs[stream] = make(map[string]*Subscription)
	}
	b.subs[stream][sub.ID] = sub
	return sub
}

// Unsubscribe removes a subscriber and closes its channel.
func (b *Bus) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	streamSubs, ok := b.subs[sub.Stream]
	if !ok {
		return
	}
	if _, ok := streamSubs[sub.ID]; !ok {
		return
	}
	delete(streamSubs, sub.ID)
	close(sub.ch)
}

// PublishStatus emits a status event.
func (b *Bus) PublishStatus(status domain.GameStatus) {
	b.publish(Event{Stream: StreamStatus, Status: &status})
}

// PublishNotification emits a notification event.
func (b *Bus) PublishNotification(entry domain.NotificationEntry) {
	b.publish(Event{Stream: StreamNotification, Notification: &entry})
}

func (b *Bus) publish(event Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}
	for _, sub := range b.subs[event.Stream] {
		select {
		case sub.ch <- event:
		default:
			// Subscriber buffer full; drop rather than block the publisher.
		}
	}
}

// Close shuts down the bus and closes all subscriber channels.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for _, streamSubs := range b.subs {
		for _, sub := range streamSubs {
			close(sub.ch)
		}
	}
	b.subs = make(map[string]map[string]*Subscription)
}
