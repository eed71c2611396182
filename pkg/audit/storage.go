package audit

import (
	"context"
	"log/slog"
	"sync"
)

// MemoryStorage keeps events in memory. Intended for tests and local capture.
type MemoryStorage struct {
	mu     sync.RWMutex
	events []Event
}

// NewMemoryStorage creates an in-memory audit storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// Store appends the event.
func (m *MemoryStorage) Store(ctx context.Context, event Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.events = append(m.events, event)
	return nil
}

// Events returns a copy of all stored events in arrival order.
func (m *MemoryStorage) Events() []Event {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Event, len(m.events))
	copy(out, m.events)
	return out
}

// SlogStorage writes audit events to a structured logger.
type SlogStorage struct {
	log *slog.Logger
}

// NewSlogStorage creates a storage that records events via slog. A nil logger
// falls back to slog.Default().
func NewSlogStorage(log *slog.Logger) *SlogStorage {
	if log == nil {
		log = slog.Default()
	}
	return &SlogStorage{log: log}
}

// Store logs the event at info level.
func (s *SlogStorage) Store(ctx context.Context, event Event) error {
	s.log.InfoContext(ctx, "security event",
		slog.String("event_id", event.ID),
		slog.String("event_type", event.Type),
		slog.Time("created_at", event.CreatedAt),
		slog.Any("metadata", event.Metadata),
	)
	return nil
}
