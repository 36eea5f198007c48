package basis

import (
	"iter"

	"github.com/tidwall/btree"
)

// Tree is a sorted, nested container of Index values.
//
// Description:
//
//	Each level of the tree corresponds to one index component; interior nodes
//	keep their children in an ordered map keyed by component value, so a
//	depth-first walk enumerates the stored indices in lexicographic order.
//	A node may simultaneously terminate a stored index and carry children,
//	which is how indices of different lengths share a prefix.
//
//	Generate performs that sorted walk once and freezes the bijection
//	index ↔ offset: every distinct stored index receives a sequential offset
//	in [0, Size) consistent with lexicographic order, and the inverse lookup
//	is a dense slice. The mapping depends only on tree content, never on
//	insertion order.
//
// Complexity:
//
//	Insert   — O(depth · log fanout)
//	Generate — O(Size · depth)
//	OffsetOf — O(depth · log fanout)
//	IndexOf  — O(1)
//	Match    — O(matches · depth · log fanout)
//
// Tree is not safe for concurrent mutation; a fully generated tree may be
// read from multiple goroutines provided no further Insert occurs.
type Tree struct {
	root      node
	size      int     // distinct stored indices
	generated bool    // offsets valid
	inverse   []Index // offset → Index, built by Generate
}

// node is one level of the nested index structure.
type node struct {
	children btree.Map[int, *node]
	terminal bool // an inserted Index ends here
	offset   int  // basis offset, valid when the owning tree is generated
}

// NewTree returns an empty Tree. Complexity: O(1).
func NewTree() *Tree { return &Tree{} }

// Size returns the number of distinct indices stored in the tree.
func (t *Tree) Size() int { return t.size }

// Generated reports whether basis offsets are currently valid.
func (t *Tree) Generated() bool { return t.generated }

// Insert adds idx to the tree. Duplicate insertions are no-ops. Inserting a
// new index invalidates previously generated offsets; call Generate again.
func (t *Tree) Insert(idx Index) error {
	if idx.Len() == 0 {
		return ErrEmptyIndex
	}

	n := &t.root
	for i := 0; i < idx.Len(); i++ {
		c := idx.At(i)
		child, ok := n.children.Get(c)
		if !ok {
			child = &node{}
			n.children.Set(c, child)
		}
		n = child
	}
	if !n.terminal {
		n.terminal = true
		t.size++
		t.generated = false
	}

	return nil
}

// Generate assigns sequential basis offsets to every stored index in
// lexicographic order and builds the O(1) inverse table. Calling Generate
// again with unchanged content is a no-op; an empty tree is an error.
func (t *Tree) Generate() error {
	if t.size == 0 {
		return ErrEmptyTree
	}
	if t.generated {
		return nil
	}

	t.inverse = make([]Index, 0, t.size)
	t.root.assignOffsets(&t.inverse, make([]int, 0, 8))
	t.generated = true

	return nil
}

// assignOffsets walks the subtree in sorted order, numbering terminals.
// A terminal is numbered before its children: a prefix sorts before its
// extensions under lexicographic order.
func (n *node) assignOffsets(inverse *[]Index, path []int) {
	if n.terminal {
		n.offset = len(*inverse)
		*inverse = append(*inverse, New(path...))
	}
	n.children.Scan(func(c int, child *node) bool {
		child.assignOffsets(inverse, append(path, c))

		return true
	})
}

// OffsetOf returns the basis offset assigned to idx.
// Fails with ErrNotGenerated before Generate and ErrNotFound if idx was
// never inserted.
func (t *Tree) OffsetOf(idx Index) (int, error) {
	if !t.generated {
		return 0, ErrNotGenerated
	}

	n := &t.root
	for i := 0; i < idx.Len(); i++ {
		child, ok := n.children.Get(idx.At(i))
		if !ok {
			return 0, ErrNotFound
		}
		n = child
	}
	if !n.terminal {
		return 0, ErrNotFound
	}

	return n.offset, nil
}

// IndexOf returns the index assigned to the given basis offset — the inverse
// of OffsetOf. Fails with ErrNotGenerated before Generate and
// ErrOffsetOutOfRange for offsets outside [0, Size). Complexity: O(1).
func (t *Tree) IndexOf(offset int) (Index, error) {
	if !t.generated {
		return Index{}, ErrNotGenerated
	}
	if offset < 0 || offset >= len(t.inverse) {
		return Index{}, ErrOffsetOutOfRange
	}

	return t.inverse[offset], nil
}

// Match returns a lazy, finite, restartable sequence of all stored indices
// matching pattern component-wise: a concrete pattern component follows the
// single matching child, a Wildcard component fans out over all children.
// Results arrive in lexicographic order without duplicates, and the walk
// visits only subtrees that can still produce matches. Each range over the
// returned sequence restarts the search from the top.
func (t *Tree) Match(pattern Index) iter.Seq[Index] {
	return func(yield func(Index) bool) {
		t.root.match(pattern, 0, make([]int, 0, pattern.Len()), yield)
	}
}

// match descends one pattern component per level; it returns false once the
// consumer stops the iteration.
func (n *node) match(pattern Index, depth int, path []int, yield func(Index) bool) bool {
	if depth == pattern.Len() {
		if n.terminal {
			return yield(New(path...))
		}

		return true
	}

	c := pattern.At(depth)
	if c == Wildcard {
		alive := true
		n.children.Scan(func(k int, child *node) bool {
			alive = child.match(pattern, depth+1, append(path, k), yield)

			return alive
		})

		return alive
	}

	child, ok := n.children.Get(c)
	if !ok {
		return true
	}

	return child.match(pattern, depth+1, append(path, c), yield)
}

// All returns a lazy, restartable sequence over every stored index in
// lexicographic order.
func (t *Tree) All() iter.Seq[Index] {
	return func(yield func(Index) bool) {
		t.root.walk(make([]int, 0, 8), yield)
	}
}

func (n *node) walk(path []int, yield func(Index) bool) bool {
	if n.terminal && !yield(New(path...)) {
		return false
	}
	alive := true
	n.children.Scan(func(c int, child *node) bool {
		alive = child.walk(append(path, c), yield)

		return alive
	})

	return alive
}
