package api

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/mfreeman451/portscan/pkg/models"
)

var upgrader = websocket.Upgrader{
	// The API is already wide open via CORS; the event stream follows.
	CheckOrigin: func(*http.Request) bool { return true },
}

// eventHub fans progress events out to websocket subscribers.
type eventHub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

func newEventHub() *eventHub {
	return &eventHub{
		clients: make(map[*websocket.Conn]struct{}),
	}
}

func (h *eventHub) add(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[conn] = struct{}{}
}

func (h *eventHub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.clients, conn)
}

// broadcast writes the event to every subscriber, dropping connections
// that fail.
func (h *eventHub) broadcast(ev models.ProgressEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		if err := conn.WriteJSON(ev); err != nil {
			log.Printf("Dropping event subscriber: %v", err)

			if err := conn.Close(); err != nil {
				log.Printf("Error closing websocket connection: %v", err)
			}

			delete(h.clients, conn)
		}
	}
}

func (s *APIServer) streamEvents(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Websocket upgrade failed: %v", err)
		return
	}

	s.hub.add(conn)

	// Subscribers only receive; the read loop exists to observe close.
	go func() {
		defer func() {
			s.hub.remove(conn)

			if err := conn.Close(); err != nil {
				log.Printf("Error closing websocket connection: %v", err)
			}
		}()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
