package overlay

import (
	"time"
)

// EventType names an operator-triggered overlay animation.
type EventType string

// Supported event types.
const (
	EventFlash EventType = "flash"
	EventSlide EventType = "slide"
)

// DefaultTarget is the animation target when the operator names none.
const DefaultTarget = "score"

// Event is a one-shot animation cue. It is stored with a short TTL and
// deleted after the aggregator includes it in a response; clients dedupe on
// the At timestamp.
type Event struct {
	Type   EventType `json:"type"`
	Target string    `json:"target"`
	At     int64     `json:"at"` // unix milliseconds
}

// ValidEventType reports whether s names a supported event type.
func ValidEventType(s string) bool {
	switch EventType(s) {
	case EventFlash, EventSlide:
		return true
	default:
		return false
	}
}

// NewEvent builds an event stamped with now.
func NewEvent(t EventType, target string, now time.Time) Event {
	if target == "" {
		target = DefaultTarget
	}
	return Event{
		Type:   t,
		Target: target,
		At:     now.UnixMilli(),
	}
}
