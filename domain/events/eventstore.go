package events

import (
	"errors"
	"sync"
)

var ErrNoSessionID = errors.New("event has no session id")

// EventStore is the interface for storing and retrieving events.
type EventStore interface {
	Append(event Event) error
	LoadEvents(sessionID string) ([]Event, error)
}

// InMemoryEventStore keeps the most recent events of each session in memory.
type InMemoryEventStore struct {
	events   map[string][]Event
	limit    int
	handlers []EventHandler
	mutex    sync.RWMutex
}

// NewInMemoryEventStore creates a store that keeps at most limit events per
// session, dropping the oldest first. A limit of zero or less keeps everything.
func NewInMemoryEventStore(limit int) *InMemoryEventStore {
	return &InMemoryEventStore{
		events: make(map[string][]Event),
		limit:  limit,
	}
}

// Append adds a new event to the store.
func (s *InMemoryEventStore) Append(event Event) error {
	sessionID := ExtractSessionID(event)
	if sessionID == "" {
		return ErrNoSessionID
	}

	s.mutex.Lock()
	stored := append(s.events[sessionID], event)
	if s.limit > 0 && len(stored) > s.limit {
		stored = append([]Event(nil), stored[len(stored)-s.limit:]...)
	}
	s.events[sessionID] = stored
	handlers := s.handlers
	s.mutex.Unlock()

	// handlers run outside the lock so they may read the store
	for _, handler := range handlers {
		handler(event)
	}
	return nil
}

// AddEventHandler registers a handler called after every successful Append.
func (s *InMemoryEventStore) AddEventHandler(handler EventHandler) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.handlers = append(s.handlers, handler)
}

// LoadEvents retrieves all events for the given session, oldest first.
func (s *InMemoryEventStore) LoadEvents(sessionID string) ([]Event, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if events, exists := s.events[sessionID]; exists {
		// Make a copy to avoid potential race conditions
		result := make([]Event, len(events))
		copy(result, events)
		return result, nil
	}

	return []Event{}, nil
}

// Sessions returns the number of sessions with recorded events
func (s *InMemoryEventStore) Sessions() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.events)
}
