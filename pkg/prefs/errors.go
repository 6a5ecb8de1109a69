package prefs

import "errors"

var (
	// ErrInvalidArgument is returned for a theme outside the enumeration.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrPersistenceUnavailable wraps storage failures. The store never
	// returns it from a mutation; see Store.Err.
	ErrPersistenceUnavailable = errors.New("persistence unavailable")
)
