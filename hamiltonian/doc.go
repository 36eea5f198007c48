// Package hamiltonian provides the sparse-entry representation of a bilinear
// Hamiltonian H = Σ a_{ij} c_i† c_j and the adjacency-list container that
// assembles those entries into a sealed basis.
//
// An Amplitude is one coefficient a_{to,from} between two physical indices.
// Its value source is either a fixed complex scalar or an Evaluator — a
// capability invoked with (to, from) on demand, which lets closures read
// external feedback state during self-consistent calculations. The Hermitian
// conjugate of an amplitude swaps its indices and conjugates its source;
// conjugating twice reproduces the original observationally.
//
// A Set maps each from-index to its ordered outgoing amplitudes and owns one
// basis.Tree built from every endpoint ever added. The lifecycle is
//
//	Open ──Construct──▶ Sealed
//
// While Open, Add is allowed and basis offsets are unavailable; once Sealed,
// offsets are fixed and structural mutation is refused. Amplitude values may
// still change between assemblies when Evaluator-backed.
//
// Hermiticity policy: by default the Set emits exactly what was added. With
// WithAssumeHermitian, assembly synthesizes the conjugate (from, to) entry
// for every stored (to, from) that lacks an explicit counterpart. Synthesis
// is always value-level only — it never creates basis entries — and it is
// never inferred per call site; the flag is the single switch.
//
// Errors:
//
//	ErrSealed                  - structural mutation after Construct.
//	ErrNotSealed               - basis query before Construct.
//	ErrCallbackNotSerializable - (un)marshaling an Evaluator-backed amplitude.
package hamiltonian
