package kvstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Contract(t *testing.T) {
	exerciseStore(t, NewMemoryStore(10, time.Hour))
}

func TestMemoryStore_Expiration(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(10, 100*time.Millisecond)

	require.NoError(t, s.Set(ctx, "k", "v"))

	// Before expiry
	_, found, _ := s.Get(ctx, "k")
	assert.True(t, found)

	// After expiry
	time.Sleep(150 * time.Millisecond)
	_, found, _ = s.Get(ctx, "k")
	assert.False(t, found)
}

func TestMemoryStore_EvictsLeastRecentlyUsed(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(2, 0)

	require.NoError(t, s.Set(ctx, "a", "1"))
	require.NoError(t, s.Set(ctx, "b", "2"))
	_, _, _ = s.Get(ctx, "a")
	require.NoError(t, s.Set(ctx, "c", "3"))

	_, found, _ := s.Get(ctx, "b")
	assert.False(t, found)
	_, found, _ = s.Get(ctx, "a")
	assert.True(t, found)
	assert.Equal(t, 2, s.Len())
}

func TestMemoryStore_DefaultSize(t *testing.T) {
	s := NewMemoryStore(0, 0)
	assert.NoError(t, s.Set(context.Background(), "k", "v"))
	assert.NoError(t, s.Close())
	assert.Equal(t, 0, s.Len())
}
