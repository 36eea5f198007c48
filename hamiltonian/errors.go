// Package hamiltonian: sentinel error set.
// Structural violations of the Set lifecycle surface as these sentinels;
// basis lookup failures pass through the basis package sentinels unchanged
// so callers can match either layer with errors.Is.

package hamiltonian

import "errors"

var (
	// ErrSealed is returned when Add is called after Construct has sealed the set.
	ErrSealed = errors.New("hamiltonian: amplitude set is sealed")

	// ErrNotSealed is returned by basis queries (BasisSize, BasisOffset,
	// ForEachEntry) while the set is still open.
	ErrNotSealed = errors.New("hamiltonian: amplitude set not constructed")

	// ErrCallbackNotSerializable is returned when an Evaluator-backed
	// amplitude is marshaled or a marshaled callback flag is decoded; the
	// callback behavior cannot round-trip and must not be dropped silently.
	ErrCallbackNotSerializable = errors.New("hamiltonian: callback-backed amplitude is not serializable")
)
