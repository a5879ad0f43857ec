package realtime

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	EventCartUpdated     = "cart.updated"
	EventWishlistUpdated = "wishlist.updated"
	EventFollowsUpdated  = "follows.updated"
)

// Event is pushed to every socket of the session that changed.
type Event struct {
	Type      string    `json:"type"`
	SessionID string    `json:"sessionId"`
	At        time.Time `json:"at"`
}

type client struct {
	conn *websocket.Conn
	// gorilla allows one concurrent writer per connection
	writeMu sync.Mutex
}

func (c *client) write(v interface{}, timeout time.Duration) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(timeout))
	return c.conn.WriteJSON(v)
}

// Hub keeps open sockets per session. A session may have many tabs open.
type Hub struct {
	connections map[string]map[*client]struct{}
	mutex       sync.RWMutex

	writeTimeout time.Duration
	now          func() time.Time
	log          *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	if log == nil {
		log = zap.NewNop()
	}
	return &Hub{
		connections:  make(map[string]map[*client]struct{}),
		writeTimeout: 5 * time.Second,
		now:          time.Now,
		log:          log,
	}
}

func (h *Hub) register(sessionID string, conn *websocket.Conn) *client {
	c := &client{conn: conn}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	set, ok := h.connections[sessionID]
	if !ok {
		set = make(map[*client]struct{})
		h.connections[sessionID] = set
	}
	set[c] = struct{}{}
	return c
}

func (h *Hub) unregister(sessionID string, c *client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	set, ok := h.connections[sessionID]
	if !ok {
		return
	}
	if _, exists := set[c]; exists {
		_ = c.conn.Close()
		delete(set, c)
	}
	if len(set) == 0 {
		delete(h.connections, sessionID)
	}
}

// Publish sends an event of the given type to all sockets of the session.
// It returns the number of sockets reached.
func (h *Hub) Publish(sessionID, eventType string) int {
	h.mutex.RLock()
	targets := make([]*client, 0, len(h.connections[sessionID]))
	for c := range h.connections[sessionID] {
		targets = append(targets, c)
	}
	h.mutex.RUnlock()

	if len(targets) == 0 {
		return 0
	}

	ev := Event{Type: eventType, SessionID: sessionID, At: h.now().UTC()}
	sent := 0
	for _, c := range targets {
		if err := c.write(ev, h.writeTimeout); err != nil {
			h.log.Debug("drop realtime client", zap.String("session_id", sessionID), zap.Error(err))
			h.unregister(sessionID, c)
			continue
		}
		sent++
	}
	return sent
}

func (h *Hub) IsOnline(sessionID string) bool {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.connections[sessionID]) > 0
}

// ConnectionCount returns the number of open sockets across all sessions.
func (h *Hub) ConnectionCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	n := 0
	for _, set := range h.connections {
		n += len(set)
	}
	return n
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for sessionID, set := range h.connections {
		for c := range set {
			_ = c.conn.Close()
		}
		delete(h.connections, sessionID)
	}
}
