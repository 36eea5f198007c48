// Package diag: sentinel error set.
// Configuration errors abort Run before any numerical work; numerical errors
// abort the current call without exposing partial spectra. Structural errors
// from the amplitude set and basis layers pass through unchanged.

package diag

import "errors"

var (
	// ErrNoModel is returned by Run when no model has been bound.
	ErrNoModel = errors.New("diag: no model set")

	// ErrEmptyBasis is returned by Run when the bound model reports a
	// zero-sized basis.
	ErrEmptyBasis = errors.New("diag: model basis is empty")

	// ErrEigenFailed is returned when the dense eigensolver fails to
	// converge. The solver's buffers hold no usable spectrum afterwards.
	ErrEigenFailed = errors.New("diag: eigensolver failed to converge")

	// ErrStateOutOfRange is returned by Amplitude for an eigenstate number
	// outside [0, basisSize).
	ErrStateOutOfRange = errors.New("diag: eigenstate out of range")

	// ErrNotDiagonalized is returned by Amplitude before a successful Run.
	ErrNotDiagonalized = errors.New("diag: spectrum not available yet")
)
