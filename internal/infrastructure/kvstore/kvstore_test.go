package kvstore

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"lms-hub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// exerciseStore runs the storage port contract against s.
func exerciseStore(t *testing.T, s domain.KVStore) {
	t.Helper()
	ctx := context.Background()

	_, found, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(ctx, "lms-user", `{"id":"1"}`))
	v, found, err := s.Get(ctx, "lms-user")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"id":"1"}`, v)

	require.NoError(t, s.Set(ctx, "lms-user", `{"id":"2"}`))
	v, _, err = s.Get(ctx, "lms-user")
	require.NoError(t, err)
	assert.Equal(t, `{"id":"2"}`, v)

	require.NoError(t, s.Remove(ctx, "lms-user"))
	_, found, err = s.Get(ctx, "lms-user")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Remove(ctx, "lms-user"), "removing a missing key is not an error")
}

func TestNamespaced(t *testing.T) {
	ctx := context.Background()
	shared := NewMemoryStore(10, 0)
	a := WithNamespace(shared, "sid:a")
	b := WithNamespace(shared, "sid:b:")

	exerciseStore(t, a)

	require.NoError(t, a.Set(ctx, domain.PersistedIdentityKey, "alice"))
	require.NoError(t, b.Set(ctx, domain.PersistedIdentityKey, "bob"))

	v, _, _ := a.Get(ctx, domain.PersistedIdentityKey)
	assert.Equal(t, "alice", v)
	v, _, _ = b.Get(ctx, domain.PersistedIdentityKey)
	assert.Equal(t, "bob", v)

	raw, found, _ := shared.Get(ctx, "sid:a:lms-user")
	assert.True(t, found)
	assert.Equal(t, "alice", raw)

	require.NoError(t, a.Remove(ctx, domain.PersistedIdentityKey))
	_, found, _ = b.Get(ctx, domain.PersistedIdentityKey)
	assert.True(t, found)
}

// failingStore fails every call.
type failingStore struct{ err error }

func (f failingStore) Get(context.Context, string) (string, bool, error) { return "", false, f.err }
func (f failingStore) Set(context.Context, string, string) error         { return f.err }
func (f failingStore) Remove(context.Context, string) error              { return f.err }
func (f failingStore) Ping(context.Context) error                        { return f.err }
func (f failingStore) Close() error                                      { return nil }

func TestInstrumented(t *testing.T) {
	ctx := context.Background()

	ok := Instrument(NewMemoryStore(10, 0), BackendMemory)
	exerciseStore(t, ok)
	assert.NoError(t, ok.Ping(ctx))

	cause := errors.New("connection refused")
	bad := Instrument(failingStore{err: cause}, BackendRedis)

	_, _, err := bad.Get(ctx, "k")
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "redis")

	assert.ErrorIs(t, bad.Set(ctx, "k", "v"), domain.ErrStorageUnavailable)
	assert.ErrorIs(t, bad.Remove(ctx, "k"), domain.ErrStorageUnavailable)
	assert.ErrorIs(t, bad.Ping(ctx), domain.ErrStorageUnavailable)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		s, err := Open(ctx, Options{Backend: BackendMemory, MemorySize: 5, TTL: time.Hour}, discardLogger())
		require.NoError(t, err)
		defer s.Close()
		exerciseStore(t, s)
	})

	t.Run("default is memory", func(t *testing.T) {
		s, err := Open(ctx, Options{}, discardLogger())
		require.NoError(t, err)
		defer s.Close()
		exerciseStore(t, s)
	})

	t.Run("sqlite", func(t *testing.T) {
		s, err := Open(ctx, Options{Backend: BackendSQLite, SQLitePath: ":memory:"}, discardLogger())
		require.NoError(t, err)
		defer s.Close()
		exerciseStore(t, s)
	})

	t.Run("unknown backend", func(t *testing.T) {
		_, err := Open(ctx, Options{Backend: "etcd"}, discardLogger())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown store backend")
	})

	t.Run("bad redis url", func(t *testing.T) {
		_, err := Open(ctx, Options{Backend: BackendRedis, RedisURL: "not-a-url"}, discardLogger())
		assert.Error(t, err)
	})
}
