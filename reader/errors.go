package reader

import "errors"

// Common reader errors
var (
	// ErrOpen indicates the input file could not be opened
	ErrOpen = errors.New("cannot open input")

	// ErrRead indicates an I/O failure while scanning the input
	ErrRead = errors.New("cannot read input")
)
