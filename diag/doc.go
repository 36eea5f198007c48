// Package diag solves a model by dense diagonalization of its Hamiltonian,
// optionally iterating to self-consistency.
//
// Description:
//
//	The Solver binds a Model (anything exposing a sealed amplitude set and
//	its basis), builds the dense N×N complex Hermitian matrix from the
//	set's (row, col, value) triples, and computes the full spectrum:
//	eigenvalues in non-decreasing order with orthonormal eigenvectors.
//	With a self-consistency callback installed, the solver re-enters the
//	build step after every diagonalization until the callback reports
//	convergence or the iteration cap is reached.
//
// State machine:
//
//	Uninitialized → Built → Diagonalized → {Converged | IterationLimit}
//	                  ▲          │
//	                  └──────────┘  (self-consistency iteration)
//
//	Reaching the iteration cap is a terminal state observable through
//	State(), not an error.
//
// Complexity:
//
//	Build       — O(entries)
//	Diagonalize — O(N³) in the basis size; strictly sequential iterations.
//
// The solver exclusively owns its matrix, eigenvalue and eigenvector
// buffers; they are reallocated only when the basis size changes and are
// mutated in place between iterations.
//
// Errors:
//
//	ErrNoModel     - Run before SetModel (configuration error).
//	ErrEmptyBasis  - bound model reports a zero basis (configuration error).
//	ErrEigenFailed - the dense eigensolver did not converge (numerical
//	                 error); no partial result is exposed.
package diag
