package watch

import "errors"

var (
	// ErrAlreadyStarted indicates the watcher is already running.
	ErrAlreadyStarted = errors.New("watch: already started")
)
