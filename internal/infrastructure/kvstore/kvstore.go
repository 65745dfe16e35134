// Package kvstore implements the domain.KVStore port over several backends.
package kvstore

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"lms-hub/internal/domain"
	"lms-hub/metrics"
)

// Backend names.
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Store is a KVStore with a lifecycle.
type Store interface {
	domain.KVStore
	Ping(ctx context.Context) error
	Close() error
}

// Options selects and configures a backend.
type Options struct {
	Backend     string
	MemorySize  int
	TTL         time.Duration
	RedisURL    string
	SQLitePath  string
	DatabaseURL string
}

// Open connects the configured backend and wraps it with metrics.
func Open(ctx context.Context, opts Options, logger *slog.Logger) (Store, error) {
	var (
		s   Store
		err error
	)

	switch opts.Backend {
	case BackendMemory, "":
		s = NewMemoryStore(opts.MemorySize, opts.TTL)
	case BackendRedis:
		s, err = NewRedisStoreWithURL(opts.RedisURL, opts.TTL)
	case BackendSQLite:
		s, err = OpenSQLiteStore(ctx, opts.SQLitePath)
	case BackendPostgres:
		s, err = OpenPostgresStore(ctx, opts.DatabaseURL, logger)
	default:
		return nil, fmt.Errorf("unknown store backend %q", opts.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", opts.Backend, err)
	}

	if err := s.Ping(ctx); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("ping %s store: %w", opts.Backend, err)
	}

	backend := opts.Backend
	if backend == "" {
		backend = BackendMemory
	}
	logger.Info("key-value store ready", "backend", backend)
	return Instrument(s, backend), nil
}

// Instrumented records metrics for every call and tags failures with
// domain.ErrStorageUnavailable.
type Instrumented struct {
	inner   Store
	backend string
}

// Instrument wraps s.
func Instrument(s Store, backend string) *Instrumented {
	return &Instrumented{inner: s, backend: backend}
}

// Get implements domain.KVStore.
func (i *Instrumented) Get(ctx context.Context, key string) (string, bool, error) {
	start := time.Now()
	v, ok, err := i.inner.Get(ctx, key)
	metrics.RecordKVOperation(i.backend, "get", err, start)
	return v, ok, i.wrap(err)
}

// Set implements domain.KVStore.
func (i *Instrumented) Set(ctx context.Context, key, value string) error {
	start := time.Now()
	err := i.inner.Set(ctx, key, value)
	metrics.RecordKVOperation(i.backend, "set", err, start)
	return i.wrap(err)
}

// Remove implements domain.KVStore.
func (i *Instrumented) Remove(ctx context.Context, key string) error {
	start := time.Now()
	err := i.inner.Remove(ctx, key)
	metrics.RecordKVOperation(i.backend, "remove", err, start)
	return i.wrap(err)
}

// Ping checks the backend.
func (i *Instrumented) Ping(ctx context.Context) error {
	return i.wrap(i.inner.Ping(ctx))
}

// Close releases the backend.
func (i *Instrumented) Close() error {
	return i.inner.Close()
}

func (i *Instrumented) wrap(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrStorageUnavailable, i.backend, err)
}

// Namespaced scopes every key of a shared store under a prefix, so each
// browser session sees its own "lms-user" entry.
type Namespaced struct {
	inner  domain.KVStore
	prefix string
}

// WithNamespace returns a view of s whose keys live under ns.
func WithNamespace(s domain.KVStore, ns string) *Namespaced {
	return &Namespaced{inner: s, prefix: strings.TrimSuffix(ns, ":") + ":"}
}

func (n *Namespaced) key(k string) string { return n.prefix + k }

// Get implements domain.KVStore.
func (n *Namespaced) Get(ctx context.Context, key string) (string, bool, error) {
	return n.inner.Get(ctx, n.key(key))
}

// Set implements domain.KVStore.
func (n *Namespaced) Set(ctx context.Context, key, value string) error {
	return n.inner.Set(ctx, n.key(key), value)
}

// Remove implements domain.KVStore.
func (n *Namespaced) Remove(ctx context.Context, key string) error {
	return n.inner.Remove(ctx, n.key(key))
}
