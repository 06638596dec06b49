package events

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Event types broadcast to connected admin consoles.
const (
	JournalCreated = "journal_created"
	JournalUpdated = "journal_updated"
	JournalDeleted = "journal_deleted"
	ArticleCreated = "article_created"
	ArticleUpdated = "article_updated"
	ArticleDeleted = "article_deleted"
	BoardChanged   = "board_changed"
)

type Event struct {
	Type string `json:"type"`
	ID   int64  `json:"id,omitempty"`
	At   string `json:"at"`
}

// Hub fans content-change events out to admin-console websockets.
// Delivery is best-effort; a socket that errors on write is dropped.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]struct{})}
}

func (h *Hub) Add(ws *websocket.Conn) {
	h.mu.Lock()
	h.clients[ws] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) Remove(ws *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, ws)
	h.mu.Unlock()
	_ = ws.Close()
}

func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Publish broadcasts one event. Safe to call from any request goroutine.
func (h *Hub) Publish(eventType string, id int64) {
	b, err := json.Marshal(Event{
		Type: eventType,
		ID:   id,
		At:   time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for ws := range h.clients {
		_ = ws.SetWriteDeadline(time.Now().Add(2 * time.Second))
		if err := ws.WriteMessage(websocket.TextMessage, b); err != nil {
			_ = ws.Close()
			delete(h.clients, ws)
		}
	}
}
