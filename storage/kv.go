// Package storage persists the food groups to a local key-value store.
//
// The whole group list is stored as one JSON blob under a single key. The
// Adapter handles loading (with seeding and corrupt-data recovery) and saving,
// and the Saver batches saves behind a dirty flag.
package storage

import (
	"context"
	"sync"
)

// KV is the minimal local key-value store the adapter needs.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// MemoryKV is an in-process KV for tests.
type MemoryKV struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string]string)}
}

func (m *MemoryKV) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
