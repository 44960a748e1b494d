package core

import "errors"

// Common errors.
var (
	// ErrNavigationStackDisabled is returned synchronously when a
	// navigation-state operation is requested while history recording is
	// turned off. This is a caller mistake, not a failed navigation.
	ErrNavigationStackDisabled = errors.New("navigation stack is disabled")

	// ErrUnknownPageType indicates no construction path exists for a
	// requested source type.
	ErrUnknownPageType = errors.New("no constructor registered for page type")

	// ErrDuplicateCacheEntry indicates a second independent instantiation
	// of a type that is already cached. The history and the cache have
	// desynchronized; the navigation attempt fails.
	ErrDuplicateCacheEntry = errors.New("page type already present in cache")

	// ErrNoObjectFactory indicates a navigate-from-object request with no
	// object factory configured.
	ErrNoObjectFactory = errors.New("no object factory configured")

	// ErrMalformedState indicates structural damage in serialized
	// navigation state (missing or non-numeric counts, truncated lists).
	ErrMalformedState = errors.New("malformed navigation state")

	// ErrUnsupportedParameter indicates a parameter kind that does not
	// survive text serialization.
	ErrUnsupportedParameter = errors.New("parameter kind does not survive serialization")
)
