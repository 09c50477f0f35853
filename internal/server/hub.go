package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rafters-ui/rafters/internal/logging"
	"go.uber.org/zap"
)

const (
	// Time allowed to write a message to a browser
	writeWait = 10 * time.Second

	// reloadMessage is the text frame sent to trigger a page reload
	reloadMessage = "reload"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The dev server is local-only; cross-origin checks just get in the way
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub tracks connected live-reload clients and broadcasts reload events.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]struct{})}
}

// HandleWebSocket upgrades an HTTP request to a WebSocket connection and
// registers it with the hub. The connection is held open until the browser
// navigates away or the server shuts down; incoming messages are drained
// and discarded.
func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Warn("WebSocket upgrade failed",
			zap.String("remote_addr", r.RemoteAddr),
			zap.Error(err),
		)
		return
	}

	h.add(conn)
	logging.Debug("Live-reload client connected",
		zap.String("remote_addr", r.RemoteAddr),
		zap.Int("clients", h.Count()),
	)

	go func() {
		defer func() {
			h.remove(conn)
			_ = conn.Close()
			logging.Debug("Live-reload client disconnected",
				zap.String("remote_addr", r.RemoteAddr),
			)
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// Broadcast sends a reload message to every connected client. Clients that
// fail to accept the write are dropped.
func (h *Hub) Broadcast(changedPath string) {
	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.clients))
	for conn := range h.clients {
		conns = append(conns, conn)
	}
	h.mu.Unlock()

	for _, conn := range conns {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, []byte(reloadMessage)); err != nil {
			h.remove(conn)
			_ = conn.Close()
		}
	}

	logging.LogReload(changedPath, len(conns))
}

// Close disconnects every client. Used during server shutdown.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(writeWait))
		_ = conn.Close()
	}
	h.clients = make(map[*websocket.Conn]struct{})
}

// Count returns the number of connected clients.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) add(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = struct{}{}
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, conn)
}
