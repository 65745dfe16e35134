package domain

// Session is a read-only snapshot of the authentication state.
// Authenticated is true exactly when Identity is non-nil.
type Session struct {
	Identity      *Identity
	Authenticated bool
}

// PersistedIdentityKey is the fixed cache key holding the logged-in identity.
const PersistedIdentityKey = "lms-user"
