package authstate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jonboulle/clockwork"

	"github.com/dmitrymomot/authkit/pkg/audit"
	"github.com/dmitrymomot/authkit/pkg/claims"
)

// Store is the sole owner and writer of the current State.
type Store struct {
	mu    sync.RWMutex
	state State

	storage   Storage
	validator *claims.Validator
	sink      audit.Sink
	clock     clockwork.Clock
	log       *slog.Logger

	subMu   sync.RWMutex
	subs    map[*subscriber]struct{}
	subBuf  int
	closed  bool
	done    chan struct{}
	cleanup sync.WaitGroup
}

// Option is a functional option for configuring the Store.
type Option func(*Store)

// WithStorage sets the snapshot storage backend. Defaults to MemoryStorage.
func WithStorage(storage Storage) Option {
	return func(s *Store) {
		s.storage = storage
	}
}

// WithValidator sets the claims validator used to vet restored tokens.
// Without one, snapshots carrying tokens are rejected on restore.
func WithValidator(v *claims.Validator) Option {
	return func(s *Store) {
		s.validator = v
	}
}

// WithAuditSink sets the security event sink. Defaults to audit.Discard.
func WithAuditSink(sink audit.Sink) Option {
	return func(s *Store) {
		if sink != nil {
			s.sink = sink
		}
	}
}

// WithClock sets the clock used for activity timestamps.
func WithClock(clock clockwork.Clock) Option {
	return func(s *Store) {
		s.clock = clock
	}
}

// WithSlog sets the logger for non-propagated persistence failures.
func WithSlog(log *slog.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// WithSubscriberBuffer sets the per-subscriber channel buffer (default 8).
func WithSubscriberBuffer(size int) Option {
	return func(s *Store) {
		if size > 0 {
			s.subBuf = size
		}
	}
}

// New creates a store holding the initial unauthenticated state.
func New(opts ...Option) *Store {
	s := &Store{
		state:  Initial(),
		sink:   audit.Discard,
		clock:  clockwork.NewRealClock(),
		log:    slog.Default(),
		subs:   make(map[*subscriber]struct{}),
		subBuf: 8,
		done:   make(chan struct{}),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.storage == nil {
		s.storage = NewMemoryStorage()
	}

	return s
}

// Current returns a copy of the current state.
func (s *Store) Current() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Update atomically replaces the whole state. The replacement must satisfy
// the structural invariants and the transition table. The new state is
// persisted (best-effort) and published to subscribers.
func (s *Store) Update(ctx context.Context, next State) error {
	if s.isClosed() {
		return ErrStoreClosed
	}
	if err := next.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	if !CanTransition(s.state.Status, next.Status) {
		from, to := s.state.Status, next.Status
		s.mu.Unlock()
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	s.state = next.Clone()
	current := s.state.Clone()
	s.mu.Unlock()

	s.persistBestEffort(ctx)
	s.notify(current)
	return nil
}

// Reset returns the store to the unauthenticated state and discards the
// persisted snapshot. Used for logout and teardown; legal from every status.
func (s *Store) Reset(ctx context.Context) error {
	if s.isClosed() {
		return ErrStoreClosed
	}

	s.mu.Lock()
	s.state = Initial()
	current := s.state
	s.mu.Unlock()

	if err := s.storage.Delete(ctx); err != nil {
		s.log.Warn("authstate: snapshot delete failed", slog.Any("error", err))
	}

	s.notify(current)
	return nil
}

// Touch bumps the last-activity timestamp. Called by the application on
// user-observable activity; a pure activity bump is not published to
// subscribers.
func (s *Store) Touch(ctx context.Context) {
	s.mu.Lock()
	if !s.state.IsAuthenticated {
		s.mu.Unlock()
		return
	}
	s.state.LastActivity = s.clock.Now()
	s.mu.Unlock()

	s.persistBestEffort(ctx)
}

// Persist writes the current state snapshot to storage.
func (s *Store) Persist(ctx context.Context) error {
	data, err := marshalState(s.Current())
	if err != nil {
		return err
	}
	return s.storage.Save(ctx, data)
}

// Restore loads the persisted snapshot on startup. A snapshot is adopted only
// when its tokens still pass claims validation; otherwise the blob is deleted
// and the store stays unauthenticated, returning ErrSnapshotRejected. A
// missing snapshot is not an error.
func (s *Store) Restore(ctx context.Context) error {
	if s.isClosed() {
		return ErrStoreClosed
	}

	data, err := s.storage.Load(ctx)
	if errors.Is(err, ErrNoSnapshot) {
		return nil
	}
	if err != nil {
		return err
	}

	state, err := unmarshalState(data)
	if err != nil {
		return s.rejectSnapshot(ctx, err)
	}
	if err := state.Validate(); err != nil {
		return s.rejectSnapshot(ctx, err)
	}

	if state.Tokens != nil {
		if s.validator == nil {
			return s.rejectSnapshot(ctx, errors.New("no claims validator configured"))
		}
		if err := s.validator.Validate(*state.Tokens); err != nil {
			return s.rejectSnapshot(ctx, err)
		}
	}

	s.mu.Lock()
	s.state = state
	current := s.state.Clone()
	s.mu.Unlock()

	meta := map[string]any{"status": string(current.Status)}
	if current.User != nil {
		meta["user_id"] = current.User.ID
	}
	s.sink.LogEvent(ctx, audit.EventSessionRestored, meta)

	s.notify(current)
	return nil
}

// Close shuts down all subscriptions; later Update, Reset and Restore calls
// fail with ErrStoreClosed. Safe to call multiple times.
func (s *Store) Close() error {
	s.subMu.Lock()
	if s.closed {
		s.subMu.Unlock()
		return nil
	}
	s.closed = true
	close(s.done)
	for sub := range s.subs {
		_ = sub.close()
	}
	clear(s.subs)
	s.subMu.Unlock()

	s.cleanup.Wait()
	return nil
}

func (s *Store) isClosed() bool {
	s.subMu.RLock()
	defer s.subMu.RUnlock()
	return s.closed
}

func (s *Store) rejectSnapshot(ctx context.Context, cause error) error {
	if err := s.storage.Delete(ctx); err != nil {
		s.log.Warn("authstate: rejected snapshot delete failed", slog.Any("error", err))
	}
	return errors.Join(ErrSnapshotRejected, cause)
}

// Persistence failures must not block the auth flow; they are logged only.
func (s *Store) persistBestEffort(ctx context.Context) {
	if err := s.Persist(ctx); err != nil {
		s.log.Warn("authstate: snapshot persist failed", slog.Any("error", err))
	}
}
