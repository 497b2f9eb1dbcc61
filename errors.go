package cubestate

import "errors"

// Sentinel errors for the cubestate package.
var (
	// Query errors
	ErrInvalidIndex = errors.New("cubestate: facelet index out of range")

	// State errors
	ErrInvalidState = errors.New("cubestate: invalid cube state")

	// History errors
	ErrEmptyHistory = errors.New("cubestate: history is empty")

	// Parsing errors
	ErrInvalidNotation       = errors.New("cubestate: invalid move notation")
	ErrInvalidScrambleLength = errors.New("cubestate: scramble length must be positive")
)
