package storage

import (
	"context"
	"sync"

	libraryapp "github.com/bookshelf/backend/internal/application/library"
)

var _ libraryapp.ObjectStorage = (*MemoryStorage)(nil)

// MemoryStorage keeps objects in memory. Useful for tests and local runs
// without a blob store.
type MemoryStorage struct {
	mu      sync.RWMutex
	objects map[string][]byte
	base    string
}

// NewMemoryStorage creates an empty MemoryStorage
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		objects: make(map[string][]byte),
		base:    "memory://",
	}
}

// Upload stores data under the key and returns a synthetic URL
func (m *MemoryStorage) Upload(_ context.Context, key string, data []byte, _ string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	m.objects[key] = stored
	return m.base + key, nil
}

// DeleteObject removes the object if present
func (m *MemoryStorage) DeleteObject(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	return nil
}

// Get returns a stored object and whether it exists
func (m *MemoryStorage) Get(key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.objects[key]
	return data, ok
}

// Len returns the number of stored objects
func (m *MemoryStorage) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.objects)
}
