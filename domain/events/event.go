package events

import "time"

// Event is the interface that all domain events must implement.
type Event interface {
	Name() string // Returns a unique name for the event type
	Timestamp() time.Time
}

type EventHandler func(event Event)
