package basis

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Wildcard is the reserved component value that matches any concrete value
// at its position during pattern search. Under plain equality a wildcard
// component is equal only to another wildcard. The sentinel sits far outside
// the range of physically meaningful subindices, so every other signed value
// remains available to callers.
const Wildcard = -(1 << 30)

// Index is an ordered, hierarchical key identifying a quantum state, e.g.
// {site, orbital, spin}. An Index is immutable after construction: the
// constructor copies its input and every accessor returns copies, so Index
// values may be shared and used as map-order keys freely.
type Index struct {
	components []int
}

// New constructs an Index from the given components.
// The component slice is copied. Complexity: O(len).
func New(components ...int) Index {
	c := make([]int, len(components))
	copy(c, components)

	return Index{components: c}
}

// Len returns the number of components.
func (x Index) Len() int { return len(x.components) }

// At returns the i-th component. It panics if i is outside [0, Len) —
// out-of-range access is a programmer error, not a runtime condition.
func (x Index) At(i int) int { return x.components[i] }

// Components returns a copy of the component slice.
func (x Index) Components() []int {
	c := make([]int, len(x.components))
	copy(c, x.components)

	return c
}

// Concat returns a new Index holding the components of x followed by the
// components of y. Used to compose subsystem indices into a full index.
func (x Index) Concat(y Index) Index {
	c := make([]int, 0, len(x.components)+len(y.components))
	c = append(c, x.components...)
	c = append(c, y.components...)

	return Index{components: c}
}

// Compare orders indices lexicographically over their components and returns
// -1, 0 or +1. A strict prefix sorts before its extensions. This ordering
// defines the basis offset assignment in Tree, so two trees holding the same
// index set always agree on offsets regardless of insertion order.
func (x Index) Compare(y Index) int {
	n := min(len(x.components), len(y.components))
	for i := 0; i < n; i++ {
		switch {
		case x.components[i] < y.components[i]:
			return -1
		case x.components[i] > y.components[i]:
			return 1
		}
	}
	switch {
	case len(x.components) < len(y.components):
		return -1
	case len(x.components) > len(y.components):
		return 1
	}

	return 0
}

// Equal reports whether x and y have identical length and components.
// A Wildcard component equals only another Wildcard; use Matches for
// pattern semantics.
func (x Index) Equal(y Index) bool { return x.Compare(y) == 0 }

// Matches reports whether x matches the given pattern component-wise:
// lengths must agree, concrete pattern components must be equal, and
// Wildcard pattern components match any stored value.
func (x Index) Matches(pattern Index) bool {
	if len(x.components) != len(pattern.components) {
		return false
	}
	for i, p := range pattern.components {
		if p != Wildcard && p != x.components[i] {
			return false
		}
	}

	return true
}

// HasWildcard reports whether any component is the Wildcard sentinel.
func (x Index) HasWildcard() bool {
	for _, c := range x.components {
		if c == Wildcard {
			return true
		}
	}

	return false
}

// String renders the index as "[a, b, c]", with "_" for wildcard components.
func (x Index) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, c := range x.components {
		if i > 0 {
			sb.WriteString(", ")
		}
		if c == Wildcard {
			sb.WriteByte('_')
		} else {
			sb.WriteString(strconv.Itoa(c))
		}
	}
	sb.WriteByte(']')

	return sb.String()
}

// MarshalJSON encodes the index as a plain JSON array of components.
func (x Index) MarshalJSON() ([]byte, error) {
	return json.Marshal(x.components)
}

// UnmarshalJSON decodes a JSON array of components.
func (x *Index) UnmarshalJSON(data []byte) error {
	var c []int
	if err := json.Unmarshal(data, &c); err != nil {
		return err
	}
	x.components = c

	return nil
}
