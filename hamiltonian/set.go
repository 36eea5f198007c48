package hamiltonian

import (
	"iter"
	"math/cmplx"

	"github.com/tbsolve/tbsolve/basis"
)

// SetOption configures a Set before use.
type SetOption func(*Set)

// WithAssumeHermitian enables conjugate synthesis during assembly: a stored
// (to, from) entry with no explicit (from, to) counterpart contributes its
// conjugate value at the mirrored position. This is the only switch for the
// behavior; it is never inferred from the inserted content.
func WithAssumeHermitian() SetOption {
	return func(s *Set) { s.assumeHermitian = true }
}

// Set is the adjacency-list sparse-matrix builder over Amplitudes.
//
// It maps each from-index to the ordered sequence of outgoing amplitudes and
// owns exactly one basis.Tree holding every to/from index ever added.
// Lifecycle: Open (Add allowed, offsets unavailable) → Construct → Sealed
// (offsets fixed, Add refused). Construct on an already sealed set is a
// no-op: the content provably cannot have changed, because every structural
// mutation path is refused once sealed.
//
// Set has no internal locking. A sealed set is safe for concurrent readers
// exactly because nothing mutates it anymore; upholding that is the
// caller's responsibility.
type Set struct {
	assumeHermitian bool
	sealed          bool

	tree  *basis.Tree
	rows  map[string]*setRow
	order []string            // row keys in first-insertion order
	pairs map[string]struct{} // "to|from" structural presence, for synthesis
}

// setRow is the adjacency bucket for one from-index.
type setRow struct {
	from basis.Index
	amps []Amplitude
}

// NewSet creates an empty, open Set. Complexity: O(1).
func NewSet(opts ...SetOption) *Set {
	s := &Set{
		tree:  basis.NewTree(),
		rows:  make(map[string]*setRow),
		pairs: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// pairKey identifies the (to, from) index pair structurally.
func pairKey(to, from basis.Index) string { return to.String() + "|" + from.String() }

// Add appends a to the adjacency list keyed by its from-index.
// Fails with ErrSealed once the set has been constructed.
func (s *Set) Add(a Amplitude) error {
	if s.sealed {
		return ErrSealed
	}

	key := a.From().String()
	row, ok := s.rows[key]
	if !ok {
		row = &setRow{from: a.From()}
		s.rows[key] = row
		s.order = append(s.order, key)
	}
	row.amps = append(row.amps, a)
	s.pairs[pairKey(a.To(), a.From())] = struct{}{}

	return nil
}

// AddWithConjugate adds a together with its Hermitian conjugate.
func (s *Set) AddWithConjugate(a Amplitude) error {
	pair := a.WithConjugate()
	if err := s.Add(pair[0]); err != nil {
		return err
	}

	return s.Add(pair[1])
}

// Construct inserts every endpoint of every stored amplitude into the owned
// tree, generates basis offsets, and seals the set. Re-invocation on a
// sealed set is a no-op. Fails with basis.ErrEmptyTree when no amplitude
// has been added.
func (s *Set) Construct() error {
	if s.sealed {
		return nil
	}

	for _, key := range s.order {
		for _, a := range s.rows[key].amps {
			if err := s.tree.Insert(a.To()); err != nil {
				return err
			}
			if err := s.tree.Insert(a.From()); err != nil {
				return err
			}
		}
	}
	if err := s.tree.Generate(); err != nil {
		return err
	}
	s.sealed = true

	return nil
}

// Sealed reports whether Construct has run.
func (s *Set) Sealed() bool { return s.sealed }

// BasisSize returns the number of distinct basis indices.
// Fails with ErrNotSealed while the set is open.
func (s *Set) BasisSize() (int, error) {
	if !s.sealed {
		return 0, ErrNotSealed
	}

	return s.tree.Size(), nil
}

// BasisOffset returns the basis offset of idx in the sealed basis.
// Fails with ErrNotSealed while open and basis.ErrNotFound for foreign indices.
func (s *Set) BasisOffset(idx basis.Index) (int, error) {
	if !s.sealed {
		return 0, ErrNotSealed
	}

	return s.tree.OffsetOf(idx)
}

// Tree exposes the owned basis tree for read-only use by extractors.
// Mutating the returned tree breaks the sealed-basis invariant.
func (s *Set) Tree() *basis.Tree { return s.tree }

// Amplitudes returns a lazy, restartable sequence over every stored
// amplitude: rows in first-insertion order, amplitudes in insertion order
// within a row. Available in both lifecycle states.
func (s *Set) Amplitudes() iter.Seq[Amplitude] {
	return func(yield func(Amplitude) bool) {
		for _, key := range s.order {
			for _, a := range s.rows[key].amps {
				if !yield(a) {
					return
				}
			}
		}
	}
}

// Len returns the number of stored amplitudes (synthesized conjugates are
// not stored and not counted).
func (s *Set) Len() int {
	n := 0
	for _, key := range s.order {
		n += len(s.rows[key].amps)
	}

	return n
}

// ForEachEntry yields every entry as a (rowOffset, colOffset, value) triple
// for Hamiltonian assembly, with rowOffset = offset(to) and
// colOffset = offset(from). Values are evaluated at call time, so
// Evaluator-backed entries track the current feedback state. Under
// WithAssumeHermitian, a stored (to, from) with no explicit (from, to)
// counterpart additionally yields (offset(from), offset(to), conj(value));
// a diagonal entry is its own counterpart and is never synthesized twice.
// Iteration stops at the first non-nil visitor error, which is returned.
func (s *Set) ForEachEntry(visit func(rowOffset, colOffset int, value complex128) error) error {
	if !s.sealed {
		return ErrNotSealed
	}

	for _, key := range s.order {
		row := s.rows[key]
		col, err := s.tree.OffsetOf(row.from)
		if err != nil {
			return err
		}
		for _, a := range row.amps {
			r, err := s.tree.OffsetOf(a.To())
			if err != nil {
				return err
			}
			v := a.Value()
			if err = visit(r, col, v); err != nil {
				return err
			}
			if !s.assumeHermitian {
				continue
			}
			if _, explicit := s.pairs[pairKey(a.From(), a.To())]; explicit {
				continue
			}
			if err = visit(col, r, cmplx.Conj(v)); err != nil {
				return err
			}
		}
	}

	return nil
}
