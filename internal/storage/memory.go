package storage

import (
	"sync"
)

// MemoryRepository implements Repository using in-memory storage for tests
type MemoryRepository struct {
	blobs map[string][]byte
	mu    sync.RWMutex
}

// NewMemoryRepository creates a new in-memory storage repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		blobs: make(map[string][]byte),
	}
}

// Get returns a copy of the blob stored under key
func (m *MemoryRepository) Get(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	blob, ok := m.blobs[key]
	if !ok {
		return nil, false, nil
	}

	// Return a copy to prevent external modification
	out := make([]byte, len(blob))
	copy(out, blob)
	return out, true, nil
}

// Set stores a copy of blob under key
func (m *MemoryRepository) Set(key string, blob []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(blob))
	copy(stored, blob)
	m.blobs[key] = stored
	return nil
}

// Delete removes key from memory
func (m *MemoryRepository) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.blobs, key)
	return nil
}

// Keys returns the stored keys in no particular order
func (m *MemoryRepository) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.blobs))
	for k := range m.blobs {
		keys = append(keys, k)
	}
	return keys
}
