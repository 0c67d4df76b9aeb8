package store

import "sync"

// MemStore is an in-process Store used by tests and ephemeral runs.
type MemStore struct {
	mu      sync.RWMutex
	entries map[string]string
}

func NewMemStore() *MemStore {
	return &MemStore{entries: make(map[string]string)}
}

func (m *MemStore) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.entries[key]
	return v, ok, nil
}

func (m *MemStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	return nil
}

func (m *MemStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}
