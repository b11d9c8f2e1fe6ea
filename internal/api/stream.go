// Realtime state stream over websocket. The tick loop pushes the status
// view after every tick; clients that fall behind are dropped rather than
// allowed to stall the broadcast.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	maxStreamConns  = 16
	clientSendQueue = 8
	writeTimeout    = 5 * time.Second
)

// Hub fans tick updates out to connected websocket clients.
type Hub struct {
	mu       sync.Mutex
	clients  map[*streamClient]bool
	upgrader websocket.Upgrader
}

type streamClient struct {
	conn *websocket.Conn
	send chan []byte
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	allowed := allowedOrigins()
	return &Hub{
		clients: make(map[*streamClient]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || allowed[origin]
			},
		},
	}
}

// HandleStream upgrades the request and registers the client.
func (h *Hub) HandleStream(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	n := len(h.clients)
	h.mu.Unlock()
	if n >= maxStreamConns {
		http.Error(w, "too many stream connections", http.StatusServiceUnavailable)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "error", err)
		return
	}

	c := &streamClient{conn: conn, send: make(chan []byte, clientSendQueue)}
	h.mu.Lock()
	h.clients[c] = true
	h.mu.Unlock()
	slog.Info("stream client connected", "remote", conn.RemoteAddr().String())

	go h.writeLoop(c)
	go h.readLoop(c)
}

// Broadcast marshals the payload once and queues it to every client.
// Clients with a full queue are disconnected.
func (h *Hub) Broadcast(payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		slog.Error("stream marshal failed", "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			delete(h.clients, c)
			close(c.send)
		}
	}
}

func (h *Hub) writeLoop(c *streamClient) {
	defer c.conn.Close()
	for data := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.drop(c)
			return
		}
	}
}

// readLoop drains client frames so pings are answered, and detects close.
func (h *Hub) readLoop(c *streamClient) {
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			h.drop(c)
			c.conn.Close()
			return
		}
	}
}

func (h *Hub) drop(c *streamClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[c] {
		delete(h.clients, c)
		close(c.send)
	}
}
