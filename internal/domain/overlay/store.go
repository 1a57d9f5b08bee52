package overlay

import (
	"context"
	"time"
)

// SettingsStore persists per-court display settings. Load returns the
// documented defaults when nothing is stored.
type SettingsStore interface {
	Load(ctx context.Context, courtID string) (Settings, error)
	Save(ctx context.Context, courtID string, s Settings) error
}

// EventStore is an at-most-once queue of depth one per court.
//
// Peek and Consume are deliberately separate so the delete-after-read step
// can fail independently of the read: a consume failure must not lose the
// event already included in a response.
type EventStore interface {
	// Publish stores the latest event under the court key with a TTL.
	Publish(ctx context.Context, courtID string, e Event, ttl time.Duration) error

	// Peek returns the pending event without removing it.
	Peek(ctx context.Context, courtID string) (Event, bool, error)

	// Consume removes the pending event.
	Consume(ctx context.Context, courtID string) error
}
