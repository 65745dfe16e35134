package kvstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLiteStore(t *testing.T, path string) *SQLiteStore {
	t.Helper()
	s, err := OpenSQLiteStore(context.Background(), path)
	if err != nil {
		t.Fatalf("OpenSQLiteStore(%s): %v", path, err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStore_Contract(t *testing.T) {
	exerciseStore(t, newTestSQLiteStore(t, ":memory:"))
}

func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "lms.db")

	first, err := OpenSQLiteStore(ctx, path)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "lms-user", "persisted"))
	require.NoError(t, first.Close())

	second := newTestSQLiteStore(t, path)
	v, found, err := second.Get(ctx, "lms-user")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "persisted", v)
}

func TestSQLiteStore_MigrateIsIdempotent(t *testing.T) {
	s := newTestSQLiteStore(t, ":memory:")
	assert.NoError(t, s.Migrate(context.Background()))
	assert.NoError(t, s.Ping(context.Background()))
}
