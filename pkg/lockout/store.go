package lockout

import (
	"context"
	"time"
)

// Record is the per-identifier failure state.
type Record struct {
	Count       int       `json:"count"`
	LockedUntil time.Time `json:"locked_until,omitzero"`
}

// LockedAt reports whether the record represents an active lock at the given time.
func (r Record) LockedAt(now time.Time) bool {
	return !r.LockedUntil.IsZero() && r.LockedUntil.After(now)
}

// Store defines the interface for lockout record persistence.
type Store interface {
	// Get retrieves the record for a key. The bool reports whether it exists.
	Get(ctx context.Context, key string) (Record, bool, error)

	// Put stores a record with the given TTL, replacing any existing one.
	Put(ctx context.Context, key string, rec Record, ttl time.Duration) error

	// Delete removes the record for a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
