package authstate

import "errors"

var (
	// ErrInvalidState indicates the state violates the structural invariants.
	ErrInvalidState = errors.New("authstate: invalid state")

	// ErrInvalidTransition indicates the status change is not in the transition table.
	ErrInvalidTransition = errors.New("authstate: invalid transition")

	// ErrNoSnapshot indicates no persisted snapshot exists.
	ErrNoSnapshot = errors.New("authstate: no snapshot")

	// ErrSnapshotRejected indicates a persisted snapshot failed validation and was discarded.
	ErrSnapshotRejected = errors.New("authstate: snapshot rejected")

	// ErrStoreClosed indicates the store has been shut down.
	ErrStoreClosed = errors.New("authstate: store closed")
)
