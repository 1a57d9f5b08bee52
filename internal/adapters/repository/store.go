// Package repository provides the key-value capability behind the overlay
// settings and event stores, with in-memory and redis backends.
package repository

import (
	"context"
	"time"
)

// KV is the minimal key-value capability the overlay stores need. A zero
// ttl on Set means the value never expires.
type KV interface {
	// Get returns the value at key. The boolean reports presence; expired
	// and missing keys look identical.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores the value at key, expiring it after ttl when ttl > 0.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes the key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
