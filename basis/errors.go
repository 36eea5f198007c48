// Package basis: sentinel error set.
// All basis operations return these sentinels and callers match them with
// errors.Is. No operation panics on user-triggered conditions; panics are
// reserved for programmer errors (out-of-range component access).

package basis

import "errors"

var (
	// ErrEmptyIndex is returned when a zero-length index is inserted into a Tree.
	ErrEmptyIndex = errors.New("basis: empty index")

	// ErrEmptyTree is returned by Generate when no index has been inserted.
	ErrEmptyTree = errors.New("basis: cannot generate offsets for empty tree")

	// ErrNotGenerated is returned by offset lookups before Generate has run.
	ErrNotGenerated = errors.New("basis: tree offsets not generated")

	// ErrNotFound is returned by OffsetOf for an index that was never inserted.
	ErrNotFound = errors.New("basis: index not found")

	// ErrOffsetOutOfRange is returned by IndexOf for an offset outside [0, Size).
	ErrOffsetOutOfRange = errors.New("basis: offset out of range")
)
