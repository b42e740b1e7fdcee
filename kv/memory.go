package kv

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value   []byte
	expires time.Time
}

type memoryFactory struct {
	mu          sync.Mutex
	collections map[string]*MemoryStore
}

// NewMemoryFactory returns a factory for process local stores
func NewMemoryFactory() Factory {
	return &memoryFactory{collections: make(map[string]*MemoryStore)}
}

func (f *memoryFactory) Collection(name string) ExpirableStore {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, ok := f.collections[name]; ok {
		return s
	}
	s := NewMemoryStore()
	f.collections[name] = s
	return s
}

// MemoryStore is a mutex guarded map with expiry, expired entries are dropped on access
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryStore returns an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// Get returns the value or ErrNotFound
func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[key]
	if !ok {
		return nil, ErrNotFound
	}
	if !e.expires.IsZero() && !m.now().Before(e.expires) {
		delete(m.entries, key)
		return nil, ErrNotFound
	}
	return e.value, nil
}

// SetWithExpire stores the value for ttl, a ttl <= 0 never expires
func (m *MemoryStore) SetWithExpire(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e := memoryEntry{value: append([]byte(nil), value...)}
	if ttl > 0 {
		e.expires = m.now().Add(ttl)
	}
	m.entries[key] = e
	return nil
}

// Delete removes the key
func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}
