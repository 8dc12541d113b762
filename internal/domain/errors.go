package domain

import "errors"

var (
	// ErrUnauthorized is returned by gated operations when no session user
	// has been resolved for the current request.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound is returned when a looked-up record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidEntity is returned when an entity fails its invariant check.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrRateLimited is returned when a caller exceeds the create-post window.
	ErrRateLimited = errors.New("rate limit exceeded")
)
