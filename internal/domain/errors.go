package domain

import "errors"

// Authentication errors.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthenticated   = errors.New("not authenticated")
)

// Request errors.
var (
	ErrInvalidRequest = errors.New("invalid request")
)

// Storage errors.
var (
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrCorruptIdentity    = errors.New("cached identity is malformed")
)

// Rate limiting errors.
var (
	ErrRateLimited = errors.New("rate limit exceeded")
)
