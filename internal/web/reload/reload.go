// Package reload pushes regenerated Lua code to connected editor clients
// over WebSocket, so an open editor sees new output as soon as the saved
// program changes.
package reload

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Message is one push to connected clients.
type Message struct {
	Type      string `json:"type"` // "generated", "error"
	Code      string `json:"code,omitempty"`
	Error     string `json:"error,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// Hub manages WebSocket connections and broadcasts messages to all of them.
type Hub struct {
	connections map[*websocket.Conn]bool
	broadcast   chan *Message
	register    chan *websocket.Conn
	unregister  chan *websocket.Conn
	done        chan struct{}
	closeOnce   sync.Once
	mu          sync.RWMutex
	upgrader    websocket.Upgrader
	logger      *zap.Logger
}

// NewHub creates a hub and starts its connection loop. A nil logger disables
// logging.
func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &Hub{
		connections: make(map[*websocket.Conn]bool),
		broadcast:   make(chan *Message, 64),
		register:    make(chan *websocket.Conn),
		unregister:  make(chan *websocket.Conn),
		done:        make(chan struct{}),
		logger:      logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				// Local editors only.
				return strings.HasPrefix(origin, "http://localhost") ||
					strings.HasPrefix(origin, "http://127.0.0.1")
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case <-h.done:
			h.logger.Debug("reload hub shutting down")
			return

		case conn := <-h.register:
			h.mu.Lock()
			h.connections[conn] = true
			count := len(h.connections)
			h.mu.Unlock()
			h.logger.Debug("client connected", zap.Int("total", count))

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.connections[conn]; ok {
				delete(h.connections, conn)
				conn.Close()
			}
			count := len(h.connections)
			h.mu.Unlock()
			h.logger.Debug("client disconnected", zap.Int("total", count))

		case msg := <-h.broadcast:
			h.sendToAll(msg)
		}
	}
}

func (h *Hub) sendToAll(msg *Message) {
	payload, err := json.Marshal(msg)
	if err != nil {
		h.logger.Warn("failed to marshal reload message", zap.Error(err))
		return
	}

	h.mu.RLock()
	var failed []*websocket.Conn
	for conn := range h.connections {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			h.logger.Warn("failed to send reload message", zap.Error(err))
			failed = append(failed, conn)
		}
	}
	h.mu.RUnlock()

	if len(failed) > 0 {
		h.mu.Lock()
		for _, conn := range failed {
			if _, ok := h.connections[conn]; ok {
				conn.Close()
				delete(h.connections, conn)
			}
		}
		h.mu.Unlock()
	}
}

// BroadcastGenerated pushes freshly generated code to all clients.
func (h *Hub) BroadcastGenerated(code string) {
	h.send(&Message{
		Type:      "generated",
		Code:      code,
		Timestamp: time.Now().Unix(),
	})
}

// BroadcastError pushes a generation failure to all clients.
func (h *Hub) BroadcastError(err error) {
	h.send(&Message{
		Type:      "error",
		Error:     err.Error(),
		Timestamp: time.Now().Unix(),
	})
}

// send hands a message to the run loop, dropping it once the hub is closed
// so callers never block on a loop that has exited.
func (h *Hub) send(msg *Message) {
	select {
	case h.broadcast <- msg:
	case <-h.done:
	}
}

// Handler upgrades HTTP connections to WebSocket and registers them.
func (h *Hub) Handler(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	select {
	case h.register <- conn:
	case <-h.done:
		conn.Close()
		return
	}

	// Drain the connection; clients only listen, but reads surface
	// disconnects.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				select {
				case h.unregister <- conn:
				case <-h.done:
					conn.Close()
				}
				return
			}
		}
	}()
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections)
}

// Close shuts the hub down and closes all connections.
func (h *Hub) Close() {
	h.closeOnce.Do(func() {
		close(h.done)
		h.mu.Lock()
		for conn := range h.connections {
			conn.Close()
		}
		h.connections = make(map[*websocket.Conn]bool)
		h.mu.Unlock()
	})
}
