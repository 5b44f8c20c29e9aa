package feed

import (
	"sync"

	"github.com/gorilla/websocket"
)

// subscriber wraps a connection with its write lock: gorilla/websocket
// allows at most one concurrent writer per connection.
type subscriber struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

func (s *subscriber) write(event interface{}) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	return s.conn.WriteJSON(event)
}

// Hub fans newly created reviews out to every connected subscriber.
type Hub struct {
	subscribers map[*websocket.Conn]*subscriber
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[*websocket.Conn]*subscriber),
	}
}

func (h *Hub) Subscribe(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.subscribers[conn] = &subscriber{conn: conn}
}

func (h *Hub) Unsubscribe(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if _, exists := h.subscribers[conn]; exists {
		_ = conn.Close()
		delete(h.subscribers, conn)
	}
}

// Broadcast writes the event to every subscriber, dropping connections
// that fail to accept the write. Concurrent broadcasts serialize on each
// subscriber's write lock.
func (h *Hub) Broadcast(event interface{}) {
	h.mutex.RLock()
	subs := make([]*subscriber, 0, len(h.subscribers))
	for _, sub := range h.subscribers {
		subs = append(subs, sub)
	}
	h.mutex.RUnlock()

	for _, sub := range subs {
		if err := sub.write(event); err != nil {
			h.Unsubscribe(sub.conn)
		}
	}
}

func (h *Hub) SubscriberCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.subscribers)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for conn := range h.subscribers {
		_ = conn.Close()
		delete(h.subscribers, conn)
	}
}
