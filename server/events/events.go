package events

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/sandeepkvelagam/oddside/domain/events"
	"github.com/sandeepkvelagam/oddside/server/connection"
)

// EventEnvelope wraps an event or a reply with its name for client consumption
type EventEnvelope struct {
	Name    string          `json:"name"`
	Payload json.RawMessage `json:"payload"`
}

// Encode builds the wire form of an envelope
func Encode(name string, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", name, err)
	}

	data, err := json.Marshal(EventEnvelope{Name: name, Payload: raw})
	if err != nil {
		return nil, fmt.Errorf("marshal %s envelope: %w", name, err)
	}
	return data, nil
}

// Dispatcher forwards recorded session events to the clients watching that session
type Dispatcher struct {
	connMgr *connection.Manager
	logger  *log.Logger
}

// NewDispatcher creates a new event dispatcher
func NewDispatcher(connMgr *connection.Manager, logger *log.Logger) *Dispatcher {
	return &Dispatcher{
		connMgr: connMgr,
		logger:  logger,
	}
}

// HandleEvent sends a domain event to every client watching its session
func (d *Dispatcher) HandleEvent(event events.Event) {
	sessionID := events.ExtractSessionID(event)
	if sessionID == "" {
		return
	}

	data, err := Encode(event.Name(), event)
	if err != nil {
		d.logger.Error("failed to encode event", "event", event.Name(), "err", err)
		return
	}

	sent := d.connMgr.SendToSession(sessionID, data)
	d.logger.Debug("dispatched event", "event", event.Name(), "session", sessionID, "clients", sent)
}

// HistoryEntry is one recorded event as served to clients
type HistoryEntry struct {
	Name  string       `json:"name"`
	Event events.Event `json:"event"`
}

// NewHistory pairs each event with its name, oldest first
func NewHistory(recorded []events.Event) []HistoryEntry {
	entries := make([]HistoryEntry, len(recorded))
	for i, event := range recorded {
		entries[i] = HistoryEntry{Name: event.Name(), Event: event}
	}
	return entries
}
