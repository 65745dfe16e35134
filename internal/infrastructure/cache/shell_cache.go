package cache

import (
	"context"
	"sync"
	"time"

	"lms-hub/metrics"
)

// cacheEntry holds one browser's shell and its idle deadline.
type cacheEntry[T any] struct {
	shell     T
	expiresAt time.Time
}

// ShellCache keeps one application shell per browser session id in memory.
// Entries expire after ttl without access; a later request for the same id
// builds a fresh shell, which restores from the durable store.
type ShellCache[T any] struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry[T]
	ttl     time.Duration
	now     func() time.Time
}

// NewShellCache creates a cache whose entries live for ttl after last use.
func NewShellCache[T any](ttl time.Duration) *ShellCache[T] {
	return &ShellCache[T]{
		entries: make(map[string]*cacheEntry[T]),
		ttl:     ttl,
		now:     time.Now,
	}
}

// GetOrCreate returns the shell of sid, calling create when none is live.
// Concurrent callers for one sid observe the same shell.
func (c *ShellCache[T]) GetOrCreate(sid string, create func() T) (shell T, created bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if entry, found := c.entries[sid]; found && !now.After(entry.expiresAt) {
		entry.expiresAt = now.Add(c.ttl)
		return entry.shell, false
	}

	shell = create()
	c.entries[sid] = &cacheEntry[T]{shell: shell, expiresAt: now.Add(c.ttl)}
	metrics.SetActiveShells(len(c.entries))
	return shell, true
}

// Delete drops the shell of sid.
func (c *ShellCache[T]) Delete(sid string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, sid)
	metrics.SetActiveShells(len(c.entries))
}

// Len returns the number of entries, expired ones included until cleanup.
func (c *ShellCache[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// cleanup removes expired entries.
func (c *ShellCache[T]) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for id, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, id)
		}
	}
	metrics.SetActiveShells(len(c.entries))
}

// Run removes expired entries every interval until ctx is done.
func (c *ShellCache[T]) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.cleanup()
		}
	}
}
