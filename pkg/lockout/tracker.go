package lockout

import (
	"context"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
)

// Tracker counts consecutive login failures per identifier and enforces the
// lockout window.
type Tracker struct {
	store  Store
	config Config
	clock  clockwork.Clock
}

// Option is a functional option for configuring the Tracker.
type Option func(*Tracker)

// WithConfig sets custom lockout policy.
func WithConfig(config Config) Option {
	return func(t *Tracker) {
		t.config = config
	}
}

// WithClock sets the clock used for lock decisions. Defaults to the real clock.
func WithClock(clock clockwork.Clock) Option {
	return func(t *Tracker) {
		t.clock = clock
	}
}

// NewTracker creates a tracker over the given store.
func NewTracker(store Store, opts ...Option) *Tracker {
	t := &Tracker{
		store:  store,
		config: DefaultConfig(),
		clock:  clockwork.NewRealClock(),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// RecordFailure increments the failure counter for an identifier. Reaching the
// attempt limit sets the lock; the record's TTL clears it automatically once
// the lockout window elapses.
func (t *Tracker) RecordFailure(ctx context.Context, identifier string) error {
	key := NormalizeKey(identifier)
	if key == "" {
		return ErrEmptyIdentifier
	}

	rec, _, err := t.store.Get(ctx, key)
	if err != nil {
		return err
	}

	rec.Count++
	if rec.Count >= t.config.MaxAttempts {
		rec.LockedUntil = t.clock.Now().Add(t.config.LockoutDuration)
	}

	return t.store.Put(ctx, key, rec, t.config.LockoutDuration)
}

// RecordSuccess clears the failure record for an identifier.
func (t *Tracker) RecordSuccess(ctx context.Context, identifier string) error {
	key := NormalizeKey(identifier)
	if key == "" {
		return ErrEmptyIdentifier
	}
	return t.store.Delete(ctx, key)
}

// IsLocked reports whether the identifier is currently locked out.
func (t *Tracker) IsLocked(ctx context.Context, identifier string) (bool, error) {
	rec, ok, err := t.Status(ctx, identifier)
	if err != nil || !ok {
		return false, err
	}
	return rec.LockedAt(t.clock.Now()), nil
}

// Status returns the current record for an identifier without modifying it.
func (t *Tracker) Status(ctx context.Context, identifier string) (Record, bool, error) {
	key := NormalizeKey(identifier)
	if key == "" {
		return Record{}, false, ErrEmptyIdentifier
	}
	return t.store.Get(ctx, key)
}

// RetryAfter returns how long until the identifier unlocks. Zero when it is
// not locked.
func (t *Tracker) RetryAfter(ctx context.Context, identifier string) (time.Duration, error) {
	rec, ok, err := t.Status(ctx, identifier)
	if err != nil || !ok {
		return 0, err
	}

	now := t.clock.Now()
	if !rec.LockedAt(now) {
		return 0, nil
	}
	return rec.LockedUntil.Sub(now), nil
}

// NormalizeKey canonicalizes an identifier for use as a store key.
func NormalizeKey(identifier string) string {
	return strings.ToLower(strings.TrimSpace(identifier))
}
