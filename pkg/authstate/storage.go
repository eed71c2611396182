package authstate

import (
	"context"
	"sync"
)

// Storage persists the single serialized state snapshot. Implementations hold
// exactly one blob; writes always replace it whole.
type Storage interface {
	// Load returns the stored blob, or ErrNoSnapshot when none exists.
	Load(ctx context.Context) ([]byte, error)

	// Save replaces the stored blob.
	Save(ctx context.Context, data []byte) error

	// Delete removes the stored blob. Deleting a missing blob is not an error.
	Delete(ctx context.Context) error
}

// MemoryStorage implements Storage in memory.
type MemoryStorage struct {
	mu   sync.RWMutex
	data []byte
}

// NewMemoryStorage creates an empty in-memory storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// Load returns the stored blob.
func (m *MemoryStorage) Load(ctx context.Context) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.data == nil {
		return nil, ErrNoSnapshot
	}

	out := make([]byte, len(m.data))
	copy(out, m.data)
	return out, nil
}

// Save replaces the stored blob.
func (m *MemoryStorage) Save(ctx context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data = make([]byte, len(data))
	copy(m.data, data)
	return nil
}

// Delete removes the stored blob.
func (m *MemoryStorage) Delete(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data = nil
	return nil
}
