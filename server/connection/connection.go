package connection

import (
	"context"
	"sync"

	"github.com/gorilla/websocket"
)

// Client represents a connected websocket peer
type Client struct {
	ID        string
	SessionID string // session whose events the client receives, may be empty
	Conn      *websocket.Conn
	Send      chan []byte
}

// Manager handles all client connections
type Manager struct {
	clients    map[string]*Client            // Map connection IDs to clients
	sessions   map[string]map[string]*Client // Map session IDs to watching clients
	Register   chan *Client
	Unregister chan *Client
	mutex      sync.RWMutex

	onChange func(connected int)
}

// NewManager creates a new connection manager. onChange, when not nil, is
// called with the number of connected clients after every change.
func NewManager(onChange func(connected int)) *Manager {
	return &Manager{
		clients:    make(map[string]*Client),
		sessions:   make(map[string]map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		onChange:   onChange,
	}
}

// Start processes connection events until ctx is done, then closes every client.
func (m *Manager) Start(ctx context.Context) {
	for {
		select {
		case client := <-m.Register:
			m.mutex.Lock()
			m.clients[client.ID] = client
			if client.SessionID != "" {
				m.watch(client, client.SessionID)
			}
			m.changed()
			m.mutex.Unlock()
		case client := <-m.Unregister:
			m.mutex.Lock()
			if _, ok := m.clients[client.ID]; ok {
				m.unwatch(client)
				delete(m.clients, client.ID)
				close(client.Send)
			}
			m.changed()
			m.mutex.Unlock()
		case <-ctx.Done():
			m.mutex.Lock()
			for id, client := range m.clients {
				m.unwatch(client)
				delete(m.clients, id)
				close(client.Send)
			}
			m.changed()
			m.mutex.Unlock()
			return
		}
	}
}

// SendToClient queues a message for one client. It returns false when the
// client is unknown or its queue is full.
func (m *Manager) SendToClient(clientID string, message []byte) bool {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if client, ok := m.clients[clientID]; ok {
		return trySend(client, message)
	}
	return false
}

// SendToSession queues a message for every client watching a session and
// returns how many clients it reached.
func (m *Manager) SendToSession(sessionID string, message []byte) int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	sent := 0
	for _, client := range m.sessions[sessionID] {
		if trySend(client, message) {
			sent++
		}
	}
	return sent
}

// WatchSession moves a client to a session. A client watches at most one session.
func (m *Manager) WatchSession(clientID, sessionID string) bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	client, ok := m.clients[clientID]
	if !ok {
		return false
	}

	m.unwatch(client)
	client.SessionID = sessionID
	if sessionID != "" {
		m.watch(client, sessionID)
	}
	return true
}

// SessionOf returns the session a client watches
func (m *Manager) SessionOf(clientID string) string {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if client, ok := m.clients[clientID]; ok {
		return client.SessionID
	}
	return ""
}

// Count returns the number of connected clients
func (m *Manager) Count() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.clients)
}

func (m *Manager) watch(client *Client, sessionID string) {
	watchers, ok := m.sessions[sessionID]
	if !ok {
		watchers = make(map[string]*Client)
		m.sessions[sessionID] = watchers
	}
	watchers[client.ID] = client
}

func (m *Manager) unwatch(client *Client) {
	watchers, ok := m.sessions[client.SessionID]
	if !ok {
		return
	}
	delete(watchers, client.ID)
	if len(watchers) == 0 {
		delete(m.sessions, client.SessionID)
	}
}

func (m *Manager) changed() {
	if m.onChange != nil {
		m.onChange(len(m.clients))
	}
}

// trySend never blocks; a slow client loses messages rather than stalling the manager
func trySend(client *Client, message []byte) bool {
	select {
	case client.Send <- message:
		return true
	default:
		return false
	}
}
