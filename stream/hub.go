package stream

import (
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// client serialises writes to one connection; gorilla allows one concurrent writer
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) writeJSON(v any, timeout time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if timeout > 0 {
		_ = c.conn.SetWriteDeadline(time.Now().Add(timeout))
	}
	return c.conn.WriteJSON(v)
}

func (c *client) close(code int, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, text), time.Now().Add(time.Second))
	_ = c.conn.Close()
}

// Hub fans frames out to every connected websocket client
// Clients are view-only: anything they send is read and discarded
type Hub struct {
	cfg      Config
	upgrader websocket.Upgrader
	logger   *log.Logger

	mu      sync.Mutex
	clients map[*client]struct{}
	closed  bool
}

// NewHub returns a hub with the given limits; logger may be nil
func NewHub(cfg Config, logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Hub{
		cfg: cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		logger:  logger,
		clients: make(map[*client]struct{}),
	}
}

// ServeHTTP upgrades the request and registers the client until it disconnects
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Printf("websocket upgrade error: %v", err)
		return
	}
	c := &client{conn: conn}

	h.mu.Lock()
	switch {
	case h.closed:
		h.mu.Unlock()
		c.close(websocket.CloseGoingAway, "shutting down")
		return
	case h.cfg.MaxClients > 0 && len(h.clients) >= h.cfg.MaxClients:
		h.mu.Unlock()
		h.logger.Printf("websocket client %s refused: %d clients", r.RemoteAddr, h.cfg.MaxClients)
		c.close(websocket.CloseTryAgainLater, "too many clients")
		return
	}
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	h.logger.Printf("websocket client %s connected", r.RemoteAddr)

	go h.readLoop(c, r.RemoteAddr)
}

// readLoop drains client messages so control frames are processed, and unregisters on error
func (h *Hub) readLoop(c *client, addr string) {
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if h.remove(c) {
				h.logger.Printf("websocket client %s disconnected: %v", addr, err)
				_ = c.conn.Close()
			}
			return
		}
	}
}

// remove reports whether c was still registered
func (h *Hub) remove(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; !ok {
		return false
	}
	delete(h.clients, c)
	return true
}

// Broadcast writes f to every client and returns how many received it
// Clients whose write fails are dropped
func (h *Hub) Broadcast(f Frame) int {
	h.mu.Lock()
	targets := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		targets = append(targets, c)
	}
	h.mu.Unlock()

	sent := 0
	for _, c := range targets {
		if err := c.writeJSON(f, h.cfg.WriteTimeout); err != nil {
			if h.remove(c) {
				h.logger.Printf("websocket client dropped: %v", err)
				_ = c.conn.Close()
			}
			continue
		}
		sent++
	}
	return sent
}

// Len returns the number of connected clients
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects every client and refuses new ones
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	clients := h.clients
	h.clients = make(map[*client]struct{})
	h.mu.Unlock()

	for c := range clients {
		c.close(websocket.CloseGoingAway, "shutting down")
	}
}
