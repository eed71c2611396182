package lockout

import "errors"

var (
	// ErrEmptyIdentifier indicates a failure/success was recorded without an identifier.
	ErrEmptyIdentifier = errors.New("lockout: empty identifier")

	// ErrStoreUnavailable indicates the backing store could not be reached.
	ErrStoreUnavailable = errors.New("lockout: store unavailable")
)
