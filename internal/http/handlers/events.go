package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"mlb-score-watcher/internal/events"
	"mlb-score-watcher/internal/logging"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait).
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize  = 512
	eventBufferSize = 64
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The UI bridge connects from a local renderer; origin checks add nothing.
	CheckOrigin: func(*http.Request) bool { return true },
}

// Events upgrades the connection to a WebSocket and streams status and
// notification events until the client disconnects.
func (h *Handler) Events(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Warn(logger, "websocket upgrade failed", "err", err)
		return
	}

	clientID := uuid.NewString()
	statusSub := h.bus.Subscribe(events.StreamStatus, eventBufferSize)
	notifSub := h.bus.Subscribe(events.StreamNotification, eventBufferSize)
	logging.Info(logger, "event stream client connected", "client_id", clientID)

	go h.writePump(conn, clientID, statusSub, notifSub, logger)
	go h.readPump(conn, clientID, statusSub, notifSub, logger)
}

// readPump drains client frames so pings and close messages are processed.
// On disconnect it unsubscribes, which ends the write pump.
func (h *Handler) readPump(conn *websocket.Conn, clientID string, statusSub, notifSub *events.Subscription, logger *slog.Logger) {
	defer func() {
		h.bus.Unsubscribe(statusSub)
		h.bus.Unsubscribe(notifSub)
		conn.Close()
		logging.Info(logger, "event stream client disconnected", "client_id", clientID)
	}()

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logging.Warn(logger, "event stream client closed unexpectedly", "client_id", clientID, "err", err)
			}
			return
		}
	}
}

func (h *Handler) writePump(conn *websocket.Conn, clientID string, statusSub, notifSub *events.Subscription, logger *slog.Logger) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	write := func(ev events.Event) bool {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(ev); err != nil {
			logging.Warn(logger, "event stream write failed", "client_id", clientID, "err", err)
			return false
		}
		return true
	}

	for {
		select {
		case ev, ok := <-statusSub.C:
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if !write(ev) {
				return
			}
		case ev, ok := <-notifSub.C:
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if !write(ev) {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
