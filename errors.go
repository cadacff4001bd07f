package catalook

import "errors"

var (
	// ErrNoCatalogLoaded is returned by queries attempted before any
	// successful Load.
	ErrNoCatalogLoaded = errors.New("no catalog loaded")

	// ErrUnknownMode is returned when a Query carries a mode the engine
	// does not know.
	ErrUnknownMode = errors.New("unknown query mode")

	// ErrNoSuchEntry is returned by Repeat for an out-of-range history
	// position.
	ErrNoSuchEntry = errors.New("no such history entry")
)
