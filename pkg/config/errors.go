package config

import "errors"

var (
	// ErrNilPointer indicates a nil destination was passed to Load.
	ErrNilPointer = errors.New("config: nil pointer")

	// ErrParsing indicates the environment could not be parsed into the
	// destination struct.
	ErrParsing = errors.New("config: parsing environment failed")
)
