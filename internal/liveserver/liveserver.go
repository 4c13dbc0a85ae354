// Package liveserver broadcasts a "reload" notification to connected
// browsers over a websocket whenever the watched template set changes,
// letting tmplrun's render preview refresh without a manual browser
// reload. It is a dev-loop convenience, not part of the execution engine
// itself.
package liveserver

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Hub tracks connected browser sessions and fans a reload notice out to
// all of them. The zero Hub is not usable; build one with NewHub.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
	logger  *log.Logger
}

// NewHub returns an empty Hub. A nil logger falls back to log.Default().
func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.Default()
	}
	return &Hub{clients: make(map[*websocket.Conn]struct{}), logger: logger}
}

// ServeHTTP upgrades the request to a websocket and registers the
// connection until it closes or the Hub is asked to drop it.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Printf("liveserver: upgrade failed: %v", err)
		return
	}
	h.register(conn)

	// Drain and discard inbound frames; this hub only pushes reload
	// notices, but the read loop must run so gorilla/websocket can
	// service control frames (ping/pong/close) and detect disconnects.
	go func() {
		defer h.unregister(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (h *Hub) register(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = struct{}{}
}

func (h *Hub) unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		conn.Close()
	}
}

// Broadcast sends a "reload" text frame to every connected client,
// dropping any connection that fails to accept it.
func (h *Hub) Broadcast() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, []byte("reload")); err != nil {
			h.logger.Printf("liveserver: dropping client after write error: %v", err)
			delete(h.clients, conn)
			conn.Close()
		}
	}
}

// ClientCount reports the number of currently connected clients, mainly
// for tests and diagnostics.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
