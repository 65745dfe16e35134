package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"lms-hub/internal/domain"
	"lms-hub/metrics"
)

// SessionStore holds the authenticated identity and writes it through to the
// key-value cache. Login, Logout and Restore are its only mutators.
type SessionStore struct {
	roster    domain.Roster
	store     domain.KVStore
	validator domain.IdentityValidator
	logger    *slog.Logger

	mu       sync.RWMutex
	identity *domain.Identity
}

// NewSessionStore creates a logged-out SessionStore. v may be nil.
func NewSessionStore(r domain.Roster, s domain.KVStore, v domain.IdentityValidator, l *slog.Logger) *SessionStore {
	return &SessionStore{roster: r, store: s, validator: v, logger: l}
}

// Login authenticates email against the roster. The password is a stand-in
// for a real identity provider call: any non-empty value is accepted.
// It returns false with a nil error for bad credentials, leaving state unchanged.
// A failed cache write is returned as ErrStorageUnavailable and also leaves state unchanged.
func (s *SessionStore) Login(ctx context.Context, email, password string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	found, ok := s.roster.FindByEmail(email)
	if !ok || password == "" {
		metrics.RecordLogin(metrics.OutcomeInvalid)
		s.logger.InfoContext(ctx, "login rejected")
		return false, nil
	}

	payload, err := json.Marshal(found)
	if err != nil {
		return false, fmt.Errorf("encode identity: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Set(ctx, domain.PersistedIdentityKey, string(payload)); err != nil {
		metrics.RecordLogin(metrics.OutcomeStorageError)
		s.logger.ErrorContext(ctx, "failed to persist identity", "error", err)
		return false, fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, err)
	}

	s.identity = found
	metrics.RecordLogin(metrics.OutcomeSuccess)
	s.logger.InfoContext(ctx, "login succeeded", "user_id", found.ID, "lms.role", string(found.Role))
	return true, nil
}

// Logout clears the identity and removes the cache entry. It always succeeds;
// a failed removal is only logged.
func (s *SessionStore) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	userID := ""
	if s.identity != nil {
		userID = s.identity.ID
	}
	s.identity = nil

	if err := s.store.Remove(ctx, domain.PersistedIdentityKey); err != nil {
		s.logger.WarnContext(ctx, "failed to remove cached identity", "error", err)
	}
	metrics.RecordLogout()
	s.logger.InfoContext(ctx, "logged out", "user_id", userID)
}

// Restore loads the cached identity without re-checking credentials.
// Malformed entries are removed. Storage errors leave the session logged out.
func (s *SessionStore) Restore(ctx context.Context) domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, found, err := s.store.Get(ctx, domain.PersistedIdentityKey)
	switch {
	case err != nil:
		metrics.RecordRestore(metrics.RestoreError)
		s.logger.WarnContext(ctx, "failed to read cached identity", "error", err)
		s.identity = nil
		return domain.Session{}
	case !found:
		metrics.RecordRestore(metrics.RestoreEmpty)
		s.identity = nil
		return domain.Session{}
	}

	identity, err := s.decode(raw)
	if err != nil {
		metrics.RecordRestore(metrics.RestoreCorrupt)
		s.logger.WarnContext(ctx, "discarding cached identity", "error", err)
		if rmErr := s.store.Remove(ctx, domain.PersistedIdentityKey); rmErr != nil {
			s.logger.WarnContext(ctx, "failed to remove cached identity", "error", rmErr)
		}
		s.identity = nil
		return domain.Session{}
	}

	s.identity = identity
	metrics.RecordRestore(metrics.RestoreRestored)
	s.logger.InfoContext(ctx, "session restored", "user_id", identity.ID, "lms.role", string(identity.Role))
	return domain.Session{Identity: identity.Clone(), Authenticated: true}
}

func (s *SessionStore) decode(raw string) (*domain.Identity, error) {
	var identity *domain.Identity
	if err := json.Unmarshal([]byte(raw), &identity); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCorruptIdentity, err)
	}
	if identity == nil {
		return nil, fmt.Errorf("%w: empty value", domain.ErrCorruptIdentity)
	}
	if s.validator != nil {
		if err := s.validator.Validate(identity); err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrCorruptIdentity, err)
		}
	}
	return identity, nil
}

// Session returns a snapshot of the current state.
func (s *SessionStore) Session() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.identity == nil {
		return domain.Session{}
	}
	return domain.Session{Identity: s.identity.Clone(), Authenticated: true}
}

// Identity returns a copy of the authenticated identity.
func (s *SessionStore) Identity() (*domain.Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.identity == nil {
		return nil, domain.ErrNotAuthenticated
	}
	return s.identity.Clone(), nil
}
