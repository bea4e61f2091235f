package kv

import (
	"context"
	"sync"
)

// MemStore is an in-memory Store used by tests and throwaway runs. Safe for
// concurrent use.
type MemStore struct {
	mu          sync.Mutex
	collections map[string][][]byte
	singles     map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{
		collections: map[string][][]byte{},
		singles:     map[string][]byte{},
	}
}

func (m *MemStore) LoadAll(_ context.Context, collection string) ([][]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	src := m.collections[collection]
	out := make([][]byte, len(src))
	for i, r := range src {
		out[i] = append([]byte(nil), r...)
	}
	return out, nil
}

func (m *MemStore) SaveAll(_ context.Context, collection string, records [][]byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([][]byte, len(records))
	for i, r := range records {
		cp[i] = append([]byte(nil), r...)
	}
	m.collections[collection] = cp
	return nil
}

func (m *MemStore) LoadOne(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.singles[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

func (m *MemStore) SaveOne(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.singles[key] = append([]byte(nil), value...)
	return nil
}

func (m *MemStore) DeleteOne(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.singles, key)
	return nil
}

func (m *MemStore) Close() error { return nil }
