package notify

import (
	"context"
	"log/slog"

	"mlb-score-watcher/internal/events"
	"mlb-score-watcher/internal/logging"
)

// Pump bridges the notification stream on the event bus to the sinks. The
// watcher publishes to the bus and never talks to sinks directly.
type Pump struct {
	bus    *events.Bus
	hub    *Hub
	logger *slog.Logger
}

// NewPump wires a bus to a hub.
func NewPump(bus *events.Bus, hub *Hub, logger *slog.Logger) *Pump {
	return &Pump{bus: bus, hub: hub, logger: logger}
}

// Run consumes notification events until the context is cancelled or the bus
// closes. Blocking; callers run it in a goroutine.
func (p *Pump) Run(ctx context.Context) {
	sub := p.bus.Subscribe(events.StreamNotification, 32)
	defer p.bus.Unsubscribe(sub)

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-sub.C:
			if !ok {
				return
			}
			if ev.Notification == nil {
				logging.Warn(p.logger, "notification event without payload")
				continue
			}
			p.hub.Notify(*ev.Notification)
		}
	}
}
