package store

import (
	"context"
	"sync"

	"study-planner/internal/errors"
)

// MemoryStore implements Store in process memory. It backs tests and the
// "memory" backend; contents vanish on Close.
type MemoryStore struct {
	mu   sync.Mutex
	data map[Collection][]byte

	// SetErr, when non-nil, is returned by every Set. Tests use it to
	// exercise persistence-failure paths.
	SetErr error
}

// NewMemory creates an empty in-memory store.
func NewMemory() *MemoryStore {
	return &MemoryStore{data: make(map[Collection][]byte)}
}

// Get retrieves a collection's payload
func (m *MemoryStore) Get(ctx context.Context, collection Collection) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	payload, ok := m.data[collection]
	if !ok {
		return nil, errors.NewNotFoundError("collection", string(collection))
	}
	out := make([]byte, len(payload))
	copy(out, payload)
	return out, nil
}

// Set writes a collection's payload wholesale
func (m *MemoryStore) Set(ctx context.Context, collection Collection, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.SetErr != nil {
		return m.SetErr
	}

	stored := make([]byte, len(payload))
	copy(stored, payload)
	m.data[collection] = stored
	return nil
}

// Seed writes a payload directly, bypassing SetErr. Test setup helper.
func (m *MemoryStore) Seed(collection Collection, payload []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[collection] = append([]byte(nil), payload...)
}

// Raw returns the stored payload for assertions, or nil.
func (m *MemoryStore) Raw(collection Collection) []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]byte(nil), m.data[collection]...)
}

// Close implements Store
func (m *MemoryStore) Close() error {
	return nil
}
