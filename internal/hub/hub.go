// Package hub fans the resolved now-playing payload out to the viewer
// channel over a websocket endpoint.
package hub

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/deckwatch/deckwatch/internal/config"
	"github.com/deckwatch/deckwatch/internal/domain"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// pingMessage is the keepalive literal viewers send on the heartbeat
// interval. It is filtered, never re-broadcast.
const pingMessage = `{"event":"ping"}`

const writeWait = 5 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub owns the single active viewer channel. The most recently
// connected viewer replaces the previous one; stale connections are
// closed, not accumulated. Delivery is best effort: with no open
// channel a payload is dropped, there is no queueing or retry.
type Hub struct {
	logger *zap.Logger
	cfg    *config.Config
	server *http.Server

	mu     sync.Mutex
	conn   *websocket.Conn
	connID string

	// writeMu serializes writes; gorilla connections allow only one
	// concurrent writer and both Publish and the echo path write.
	writeMu sync.Mutex
}

// New creates a hub serving the websocket endpoint from the configured
// listen address and path.
func New(logger *zap.Logger, cfg *config.Config) *Hub {
	h := &Hub{logger: logger, cfg: cfg}

	mux := http.NewServeMux()
	mux.HandleFunc(cfg.Network.WSPath, h.handleWebSocket)
	h.server = &http.Server{
		Addr:    cfg.Network.Listen,
		Handler: mux,
	}

	return h
}

// Start begins serving viewer connections in the background.
func (h *Hub) Start() error {
	go func() {
		if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			h.logger.Error("Viewer endpoint failed", zap.Error(err))
		}
	}()
	h.logger.Info("Viewer endpoint listening",
		zap.String("addr", h.cfg.Network.Listen),
		zap.String("path", h.cfg.Network.WSPath))
	return nil
}

// Stop shuts the endpoint down and closes the active viewer channel.
func (h *Hub) Stop(ctx context.Context) error {
	h.mu.Lock()
	if h.conn != nil {
		h.conn.Close()
		h.conn = nil
	}
	h.mu.Unlock()
	return h.server.Shutdown(ctx)
}

func (h *Hub) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("Failed to upgrade viewer connection", zap.Error(err))
		return
	}
	h.register(conn)
}

// register installs conn as the active viewer channel, replacing and
// closing any previous one.
func (h *Hub) register(conn *websocket.Conn) {
	id := uuid.NewString()

	h.mu.Lock()
	if h.conn != nil {
		h.logger.Info("Replacing viewer connection", zap.String("old", h.connID))
		h.conn.Close()
	}
	h.conn = conn
	h.connID = id
	h.mu.Unlock()

	h.logger.Info("Viewer connected", zap.String("conn", id))
	go h.readLoop(conn, id)
}

// readLoop consumes viewer messages: heartbeat pings are filtered,
// anything else is echoed back unchanged for framework-level tooling.
// The read deadline is refreshed on every message and sized to tolerate
// two missed heartbeats.
func (h *Hub) readLoop(conn *websocket.Conn, id string) {
	deadline := 2*h.cfg.HeartbeatInterval() + writeWait

	for {
		conn.SetReadDeadline(time.Now().Add(deadline))
		msgType, msg, err := conn.ReadMessage()
		if err != nil {
			h.drop(conn, id, err)
			return
		}

		if string(msg) == pingMessage {
			continue
		}

		h.writeMu.Lock()
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		err = conn.WriteMessage(msgType, msg)
		h.writeMu.Unlock()
		if err != nil {
			h.drop(conn, id, err)
			return
		}
	}
}

// drop closes a connection and, if it is still the active one,
// deregisters it.
func (h *Hub) drop(conn *websocket.Conn, id string, err error) {
	conn.Close()

	h.mu.Lock()
	if h.conn == conn {
		h.conn = nil
		h.connID = ""
	}
	h.mu.Unlock()

	h.logger.Info("Viewer disconnected", zap.String("conn", id), zap.Error(err))
}

// Publish attempts delivery of the payload to the active viewer
// channel. With no viewer connected this is a no-op. A failed write
// drops the connection; the client reconnects on its own.
func (h *Hub) Publish(payload domain.NowPlayingPayload) {
	data, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("Failed to encode payload", zap.Error(err))
		return
	}

	h.mu.Lock()
	conn := h.conn
	id := h.connID
	h.mu.Unlock()

	if conn == nil {
		h.logger.Debug("No viewer connected, payload dropped")
		return
	}

	h.writeMu.Lock()
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	err = conn.WriteMessage(websocket.TextMessage, data)
	h.writeMu.Unlock()
	if err != nil {
		h.drop(conn, id, err)
	}
}
