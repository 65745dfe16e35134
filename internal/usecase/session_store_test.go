package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"lms-hub/internal/domain"
	"lms-hub/internal/fixture"
	"lms-hub/utils/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memKV implements domain.KVStore for testing.
type memKV struct {
	entries   map[string]string
	getErr    error
	setErr    error
	removeErr error
	gets      int
	sets      int
	removes   int
}

func newMemKV() *memKV {
	return &memKV{entries: make(map[string]string)}
}

func (m *memKV) Get(_ context.Context, key string) (string, bool, error) {
	m.gets++
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.entries[key]
	return v, ok, nil
}

func (m *memKV) Set(_ context.Context, key, value string) error {
	m.sets++
	if m.setErr != nil {
		return m.setErr
	}
	m.entries[key] = value
	return nil
}

func (m *memKV) Remove(_ context.Context, key string) error {
	m.removes++
	if m.removeErr != nil {
		return m.removeErr
	}
	delete(m.entries, key)
	return nil
}

// countingRoster records lookups on top of the fixture roster.
type countingRoster struct {
	*fixture.Roster
	lookups int
}

func (r *countingRoster) FindByEmail(email string) (*domain.Identity, bool) {
	r.lookups++
	return r.Roster.FindByEmail(email)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestStore(kv domain.KVStore) (*SessionStore, *countingRoster) {
	roster := &countingRoster{Roster: fixture.DefaultRoster()}
	return NewSessionStore(roster, kv, validator.New(), discardLogger()), roster
}

func TestSessionStore_LoginEveryRosterIdentity(t *testing.T) {
	for _, u := range fixture.DefaultRoster().All() {
		t.Run(u.Email, func(t *testing.T) {
			kv := newMemKV()
			s, _ := newTestStore(kv)

			ok, err := s.Login(context.Background(), u.Email, "non-empty")
			require.NoError(t, err)
			assert.True(t, ok)

			sess := s.Session()
			assert.True(t, sess.Authenticated)
			assert.Equal(t, &u, sess.Identity)

			var cached domain.Identity
			require.NoError(t, json.Unmarshal([]byte(kv.entries[domain.PersistedIdentityKey]), &cached))
			assert.Equal(t, u, cached)
		})
	}
}

func TestSessionStore_LoginRejected(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "unknown user", email: "nobody@powergridindia.com", password: "password123"},
		{name: "empty password", email: "atharva.vaidya@powergridindia.com", password: ""},
		{name: "different case", email: "ATHARVA.VAIDYA@powergridindia.com", password: "password123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := newMemKV()
			s, _ := newTestStore(kv)

			ok, err := s.Login(context.Background(), tt.email, tt.password)
			assert.NoError(t, err)
			assert.False(t, ok)
			assert.False(t, s.Session().Authenticated)
			assert.Zero(t, kv.sets, "rejected login must not touch the cache")
		})
	}
}

func TestSessionStore_FailedLoginKeepsPriorSession(t *testing.T) {
	kv := newMemKV()
	s, _ := newTestStore(kv)

	ok, err := s.Login(context.Background(), "soham.patil@powergridindia.com", "x")
	require.NoError(t, err)
	require.True(t, ok)
	before := kv.entries[domain.PersistedIdentityKey]

	ok, err = s.Login(context.Background(), "nobody@powergridindia.com", "x")
	require.NoError(t, err)
	assert.False(t, ok)

	sess := s.Session()
	assert.True(t, sess.Authenticated)
	assert.Equal(t, "2", sess.Identity.ID)
	assert.Equal(t, before, kv.entries[domain.PersistedIdentityKey])
}

func TestSessionStore_LoginStorageFailure(t *testing.T) {
	kv := newMemKV()
	kv.setErr = errors.New("disk full")
	s, _ := newTestStore(kv)

	ok, err := s.Login(context.Background(), "atharva.vaidya@powergridindia.com", "x")
	assert.False(t, ok)
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
	assert.False(t, s.Session().Authenticated)
}

func TestSessionStore_LoginCanceledContext(t *testing.T) {
	s, roster := newTestStore(newMemKV())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ok, err := s.Login(ctx, "atharva.vaidya@powergridindia.com", "x")
	assert.False(t, ok)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, roster.lookups)
}

func TestSessionStore_Logout(t *testing.T) {
	kv := newMemKV()
	s, _ := newTestStore(kv)

	_, err := s.Login(context.Background(), "neha.kedar@powergridindia.com", "x")
	require.NoError(t, err)

	s.Logout(context.Background())

	assert.False(t, s.Session().Authenticated)
	assert.Nil(t, s.Session().Identity)
	_, present := kv.entries[domain.PersistedIdentityKey]
	assert.False(t, present)

	_, err = s.Identity()
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestSessionStore_LogoutIgnoresStorageError(t *testing.T) {
	kv := newMemKV()
	s, _ := newTestStore(kv)
	_, err := s.Login(context.Background(), "neha.kedar@powergridindia.com", "x")
	require.NoError(t, err)

	kv.removeErr = errors.New("connection reset")
	s.Logout(context.Background())

	assert.False(t, s.Session().Authenticated)
}

func TestSessionStore_RestoreValid(t *testing.T) {
	u, _ := fixture.DefaultRoster().FindByEmail("shashank.ponna@powergridindia.com")
	payload, err := json.Marshal(u)
	require.NoError(t, err)

	kv := newMemKV()
	kv.entries[domain.PersistedIdentityKey] = string(payload)
	s, roster := newTestStore(kv)

	sess := s.Restore(context.Background())

	assert.True(t, sess.Authenticated)
	assert.Equal(t, u, sess.Identity)
	assert.Zero(t, roster.lookups, "restore must not go through login")
}

func TestSessionStore_RestoreMalformed(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "not json", value: "{not-json"},
		{name: "json null", value: "null"},
		{name: "wrong type", value: `["a","b"]`},
		{name: "missing fields", value: `{"id":"1"}`},
		{name: "unknown role", value: `{"id":"1","name":"A","email":"a@b.co","role":"root"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := newMemKV()
			kv.entries[domain.PersistedIdentityKey] = tt.value
			s, _ := newTestStore(kv)

			sess := s.Restore(context.Background())

			assert.False(t, sess.Authenticated)
			assert.Nil(t, sess.Identity)
			_, present := kv.entries[domain.PersistedIdentityKey]
			assert.False(t, present, "malformed entry must be discarded")
		})
	}
}

func TestSessionStore_RestoreEmptyAndError(t *testing.T) {
	s, _ := newTestStore(newMemKV())
	assert.False(t, s.Restore(context.Background()).Authenticated)

	kv := newMemKV()
	kv.getErr = errors.New("unreachable")
	s, _ = newTestStore(kv)
	assert.False(t, s.Restore(context.Background()).Authenticated)
	assert.Zero(t, kv.removes)
}

func TestSessionStore_SessionIsSnapshot(t *testing.T) {
	s, _ := newTestStore(newMemKV())
	_, err := s.Login(context.Background(), "atharva.vaidya@powergridindia.com", "x")
	require.NoError(t, err)

	snap := s.Session()
	snap.Identity.Name = "mutated"

	assert.Equal(t, "Atharva Vaidya", s.Session().Identity.Name)
}
