package kvstore

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// DefaultMemorySize bounds the memory store when no size is configured.
const DefaultMemorySize = 10000

// MemoryStore is a process-local store with LRU eviction and a per-entry TTL.
// Entries do not survive a restart.
type MemoryStore struct {
	cache *expirable.LRU[string, string]
}

// NewMemoryStore creates a store holding at most size entries for ttl each.
// A non-positive ttl keeps entries until evicted by size.
func NewMemoryStore(size int, ttl time.Duration) *MemoryStore {
	if size <= 0 {
		size = DefaultMemorySize
	}
	return &MemoryStore{cache: expirable.NewLRU[string, string](size, nil, ttl)}
}

// Get implements domain.KVStore.
func (m *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.cache.Get(key)
	return v, ok, nil
}

// Set implements domain.KVStore.
func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	m.cache.Add(key, value)
	return nil
}

// Remove implements domain.KVStore.
func (m *MemoryStore) Remove(_ context.Context, key string) error {
	m.cache.Remove(key)
	return nil
}

// Len returns the number of live entries.
func (m *MemoryStore) Len() int {
	return m.cache.Len()
}

// Ping always succeeds.
func (m *MemoryStore) Ping(context.Context) error { return nil }

// Close purges the cache.
func (m *MemoryStore) Close() error {
	m.cache.Purge()
	return nil
}
