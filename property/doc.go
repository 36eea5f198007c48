// Package property extracts physical quantities from a solved spectrum.
// Extractors consume only the solver's read surface (eigenvalues,
// eigenvectors, per-index amplitudes); they never touch the assembly
// machinery.
//
// Provided extractors:
//
//	DOS         — density of states as a fixed-resolution histogram.
//	Occupations — per-state thermal occupation numbers under Fermi-Dirac
//	              or Bose-Einstein statistics.
//
// Errors:
//
//	ErrBadBounds     - upper bound not above the lower bound.
//	ErrBadResolution - non-positive bin count.
package property
