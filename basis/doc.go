// Package basis provides the physical-index representation and the basis
// enumeration container used to assemble sparse single-particle Hamiltonians.
//
// An Index is an ordered, hierarchical key identifying a quantum state, for
// example {x, y, orbital, spin}. Indices are immutable after construction and
// compare lexicographically over their components. The reserved component
// Wildcard matches any concrete value during pattern search.
//
// A Tree is a sorted, nested container of Index values. After Generate it
// exposes a bijection between the inserted indices and contiguous integer
// offsets in [0, Size) — the Hilbert-space basis ordering used by matrix
// assembly. The inverse lookup (offset → Index) is O(1) once generated, and
// wildcard pattern search visits only the matching subtrees.
//
// Errors:
//
//	ErrEmptyIndex       - attempt to insert a zero-length index.
//	ErrEmptyTree        - Generate called on a tree with no indices.
//	ErrNotGenerated     - offset lookup before Generate.
//	ErrNotFound         - index was never inserted.
//	ErrOffsetOutOfRange - offset outside [0, Size).
package basis
