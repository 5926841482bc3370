package maskgo

import "errors"

var (
	// ErrNotFound is returned when a named selection does not exist.
	ErrNotFound = errors.New("selection not found")

	// ErrSizeMismatch is returned when a mask or array length does not match
	// the workspace's atom count.
	ErrSizeMismatch = errors.New("size mismatch")

	// ErrNoHistory is returned when Undo or Redo has no state to move to.
	ErrNoHistory = errors.New("no history entry")

	// ErrInvalidStructure is returned when the workspace is created over a
	// nil, empty or inconsistent structure.
	ErrInvalidStructure = errors.New("invalid structure")
)
