package domain

import "context"

// KVStore is the local persistent cache the session store writes through.
type KVStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// Roster looks identities up for login.
type Roster interface {
	FindByEmail(email string) (*Identity, bool)
}

// IdentityValidator checks that a decoded identity has a usable shape.
type IdentityValidator interface {
	Validate(i interface{}) error
}

// ScreenComposer builds the view model of a resolved route.
// identity is nil only for ScreenLogin.
type ScreenComposer interface {
	Compose(identity *Identity, route Route, q ScreenQuery) any
}
