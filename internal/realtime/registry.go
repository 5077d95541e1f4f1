// Package realtime keeps track of live websocket connections per user and
// pushes JSON messages to them.
package realtime

import (
	"encoding/json"
	"sync"
)

// Client is one live connection. A user may hold several.
type Client struct {
	UserID string
	Send   chan []byte

	registry *Registry
	mu       sync.Mutex
	closed   bool
}

// NewClient creates a client with a send buffer of the given size.
func NewClient(userID string, buffer int) *Client {
	return &Client{UserID: userID, Send: make(chan []byte, buffer)}
}

// Close deregisters the client and closes its send channel. Safe to call twice.
func (c *Client) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	close(c.Send)
	reg := c.registry
	c.mu.Unlock()

	if reg != nil {
		reg.Deregister(c)
	}
}

// offer queues data without blocking; a full or closed client drops it.
func (c *Client) offer(data []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.Send <- data:
		return true
	default:
		return false
	}
}

// Registry maps user ids to their live connections on this instance.
type Registry struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
	byUser  map[string]map[*Client]struct{}
}

func NewRegistry() *Registry {
	return &Registry{
		clients: make(map[*Client]struct{}),
		byUser:  make(map[string]map[*Client]struct{}),
	}
}

func (r *Registry) Register(c *Client) {
	c.mu.Lock()
	c.registry = r
	c.mu.Unlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients[c] = struct{}{}
	if r.byUser[c.UserID] == nil {
		r.byUser[c.UserID] = make(map[*Client]struct{})
	}
	r.byUser[c.UserID][c] = struct{}{}
}

// Deregister forgets c. Unknown clients are ignored.
func (r *Registry) Deregister(c *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.clients, c)
	if m := r.byUser[c.UserID]; m != nil {
		delete(m, c)
		if len(m) == 0 {
			delete(r.byUser, c.UserID)
		}
	}
}

// SendToUser marshals payload once and offers it to every connection of
// userID. It returns how many connections accepted the message; slow
// connections with a full buffer are skipped.
func (r *Registry) SendToUser(userID string, payload any) (int, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return 0, err
	}

	r.mu.RLock()
	m := r.byUser[userID]
	clients := make([]*Client, 0, len(m))
	for c := range m {
		clients = append(clients, c)
	}
	r.mu.RUnlock()

	delivered := 0
	for _, c := range clients {
		if c.offer(data) {
			delivered++
		}
	}
	return delivered, nil
}

// Count returns the number of live connections.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.clients)
}

func (r *Registry) IsConnected(userID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byUser[userID]) > 0
}
