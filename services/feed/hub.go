package feed

import (
	"sync"
	"time"

	"sanocare/utils"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
)

// Client is one connected operations console.
type Client struct {
	ID   string
	Conn *websocket.Conn
	Send chan []byte
}

// Hub fans booking feed events out to connected consoles.
type Hub struct {
	clients map[string]*Client
	mu      sync.RWMutex
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[string]*Client)}
}

// AddClient registers a console and starts its write pump.
func (h *Hub) AddClient(c *Client) {
	h.mu.Lock()
	h.clients[c.ID] = c
	h.mu.Unlock()
	go h.writePump(c)
}

// RemoveClient drops a console and closes its connection.
func (h *Hub) RemoveClient(id string) {
	h.mu.Lock()
	client, ok := h.clients[id]
	if ok {
		delete(h.clients, id)
	}
	h.mu.Unlock()
	if ok {
		close(client.Send)
		client.Conn.Close()
	}
}

// Broadcast queues a message for every console. A console that cannot keep
// up is dropped rather than blocking the feed.
func (h *Hub) Broadcast(message []byte) {
	h.mu.RLock()
	var stale []string
	for _, client := range h.clients {
		select {
		case client.Send <- message:
		default:
			stale = append(stale, client.ID)
		}
	}
	h.mu.RUnlock()
	for _, id := range stale {
		h.RemoveClient(id)
	}
}

func (h *Hub) writePump(c *Client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		h.RemoveClient(c.ID)
	}()

	for {
		select {
		case message, ok := <-c.Send:
			if !ok {
				return
			}
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				utils.GetLogger().Debug("feed client write failed", zap.String("client", c.ID), zap.Error(err))
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
