package diag

import (
	"io"
	"log/slog"

	"github.com/tbsolve/tbsolve/basis"
	"github.com/tbsolve/tbsolve/hamiltonian"
)

// Model is the external collaborator a Solver works on. BasisSize must
// report the sealed basis dimension (zero while unsealed), AmplitudeSet the
// set to assemble from, and BasisOffset the sealed offset of a physical
// index.
type Model interface {
	BasisSize() int
	AmplitudeSet() *hamiltonian.Set
	BasisOffset(idx basis.Index) (int, error)
}

// State is the solver's position in its lifecycle.
type State int

const (
	// StateUninitialized - Run has not completed any build yet.
	StateUninitialized State = iota

	// StateBuilt - the Hamiltonian matrix is assembled for the current
	// iteration but not yet (successfully) diagonalized.
	StateBuilt

	// StateDiagonalized - the spectrum is available; no callback was
	// installed, so no convergence judgement applies.
	StateDiagonalized

	// StateConverged - the self-consistency callback reported convergence.
	StateConverged

	// StateIterationLimit - the iteration cap was reached before
	// convergence. Terminal, observable, and not an error.
	StateIterationLimit
)

// String returns a readable state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "Uninitialized"
	case StateBuilt:
		return "Built"
	case StateDiagonalized:
		return "Diagonalized"
	case StateConverged:
		return "Converged"
	case StateIterationLimit:
		return "IterationLimitReached"
	default:
		return "Unknown"
	}
}

// DefaultMaxIterations bounds the self-consistency loop unless overridden.
const DefaultMaxIterations = 50

// Solver builds a dense Hamiltonian from a model's sealed amplitude set,
// diagonalizes it, and optionally drives a self-consistency iteration.
// Configure with SetModel (mandatory), SetSelfConsistencyCallback,
// SetMaxIterations and SetLogger, then call Run. The zero Solver is not
// usable; construct with NewSolver.
type Solver struct {
	model         Model
	callback      func(*Solver) bool
	maxIterations int
	logger        *slog.Logger

	state     State
	basisSize int

	// Exclusively owned buffers, reused across iterations at fixed size.
	hamiltonian  []complex128 // N², row-major
	eigenvalues  []float64    // N, non-decreasing
	eigenvectors []complex128 // N², eigenvector n at [n*N : (n+1)*N]
}

// NewSolver returns a Solver with the default iteration cap and a silent
// logger. Complexity: O(1).
func NewSolver() *Solver {
	return &Solver{
		maxIterations: DefaultMaxIterations,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// SetModel binds the model to work on. Must be called before Run.
func (s *Solver) SetModel(m Model) { s.model = m }

// Model returns the bound model, or nil.
func (s *Solver) Model() Model { return s.model }

// SetSelfConsistencyCallback installs the convergence judge. The callback is
// invoked with the solver after every diagonalization; returning true stops
// the loop as converged. When unset, Run performs exactly one
// build+diagonalize pass.
func (s *Solver) SetSelfConsistencyCallback(cb func(*Solver) bool) { s.callback = cb }

// SetMaxIterations bounds the self-consistency loop. Values below one are
// clamped to one build+diagonalize+callback cycle.
func (s *Solver) SetMaxIterations(n int) {
	if n < 1 {
		n = 1
	}
	s.maxIterations = n
}

// SetLogger routes per-iteration progress lines. A nil logger silences them.
func (s *Solver) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s.logger = l
}

// State returns the solver's current lifecycle state; after Run it exposes
// the terminal outcome (Diagonalized, Converged or IterationLimitReached).
func (s *Solver) State() State { return s.state }

// Run executes the build/diagonalize cycle.
//
//  1. Fails with ErrNoModel or ErrEmptyBasis when misconfigured.
//  2. Build: assemble H from the model's amplitude set, evaluated now.
//  3. Diagonalize: full Hermitian eigensolution; non-convergence is fatal.
//  4. Without a callback, stop after one cycle. With one, iterate until the
//     callback returns true (Converged) or the cap is reached
//     (IterationLimitReached — a terminal state, not an error).
func (s *Solver) Run() error {
	if s.model == nil {
		return ErrNoModel
	}
	n := s.model.BasisSize()
	if n <= 0 {
		return ErrEmptyBasis
	}

	for iteration := 1; ; iteration++ {
		if err := s.build(n); err != nil {
			return err
		}
		if err := s.solve(); err != nil {
			return err
		}
		s.state = StateDiagonalized
		s.logger.Info("diag: iteration complete",
			"iteration", iteration,
			"basisSize", n,
			"groundState", s.eigenvalues[0],
			"highestState", s.eigenvalues[n-1],
		)

		if s.callback == nil {
			return nil
		}
		if s.callback(s) {
			s.state = StateConverged
			s.logger.Info("diag: self-consistency reached", "iterations", iteration)

			return nil
		}
		if iteration >= s.maxIterations {
			s.state = StateIterationLimit
			s.logger.Warn("diag: iteration limit reached without convergence",
				"maxIterations", s.maxIterations)

			return nil
		}
	}
}

// build assembles the dense Hamiltonian for the current iteration, reusing
// the owned buffers when the basis size is unchanged.
func (s *Solver) build(n int) error {
	if s.basisSize != n || s.hamiltonian == nil {
		s.basisSize = n
		s.hamiltonian = make([]complex128, n*n)
		s.eigenvalues = make([]float64, n)
		s.eigenvectors = make([]complex128, n*n)
	} else {
		clear(s.hamiltonian)
	}

	err := s.model.AmplitudeSet().ForEachEntry(func(row, col int, value complex128) error {
		s.hamiltonian[row*n+col] += value

		return nil
	})
	if err != nil {
		return err
	}
	s.state = StateBuilt

	return nil
}

// solve diagonalizes the assembled Hamiltonian into the owned buffers.
func (s *Solver) solve() error {
	return hermitianEigen(s.hamiltonian, s.basisSize, s.eigenvalues, s.eigenvectors)
}

// Eigenvalues returns the eigenvalues of the last successful
// diagonalization in non-decreasing order. The returned slice is the
// solver's owned buffer: read-only for callers, overwritten by the next
// iteration.
func (s *Solver) Eigenvalues() []float64 { return s.eigenvalues }

// Eigenvectors returns the orthonormal eigenvectors of the last successful
// diagonalization; eigenvector n occupies [n*N, (n+1)*N). Within a
// degenerate eigenvalue subspace the particular vectors are whatever the
// eigensolver produced — not stable across runs. Same ownership rules as
// Eigenvalues.
func (s *Solver) Eigenvectors() []complex128 { return s.eigenvectors }

// Amplitude returns the eigenvector component Ψ_state(index), i.e.
// eigenvectors[N*state + basisOffset(index)]. Fails with
// ErrStateOutOfRange, ErrNotDiagonalized, or the model's offset error for
// unknown indices.
func (s *Solver) Amplitude(state int, idx basis.Index) (complex128, error) {
	switch s.state {
	case StateDiagonalized, StateConverged, StateIterationLimit:
	default:
		return 0, ErrNotDiagonalized
	}
	if state < 0 || state >= s.basisSize {
		return 0, ErrStateOutOfRange
	}
	offset, err := s.model.BasisOffset(idx)
	if err != nil {
		return 0, err
	}

	return s.eigenvectors[s.basisSize*state+offset], nil
}
