package store

import (
	"context"
	"sync"
)

// memoryStore keeps records in a map. Used for tests and ephemeral runs; its
// contents are lost on exit.
type memoryStore struct {
	mu      sync.RWMutex
	records map[string]string
	closed  bool
}

// NewMemoryStore returns an empty in-memory [KeyValueStore].
func NewMemoryStore() KeyValueStore {
	return &memoryStore{records: make(map[string]string)}
}

func (m *memoryStore) Get(_ context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return "", ErrStoreClosed
	}
	value, ok := m.records[key]
	if !ok {
		return "", ErrRecordNotFound
	}
	return value, nil
}

func (m *memoryStore) Set(_ context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}
	m.records[key] = value
	return nil
}

func (m *memoryStore) Remove(_ context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}
	delete(m.records, key)
	return nil
}

func (m *memoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	return nil
}
