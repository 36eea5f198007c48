package basis_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbsolve/tbsolve/basis"
)

// TestIndex_Immutability verifies that New copies its input and that
// Components returns an independent copy.
func TestIndex_Immutability(t *testing.T) {
	raw := []int{1, 2, 3}
	idx := basis.New(raw...)

	raw[0] = 99
	assert.Equal(t, 1, idx.At(0), "mutating the source slice must not affect the index")

	got := idx.Components()
	got[1] = 99
	assert.Equal(t, 2, idx.At(1), "mutating the returned components must not affect the index")
}

// TestIndex_Compare checks lexicographic ordering, including the
// prefix-sorts-first rule for indices of different lengths.
func TestIndex_Compare(t *testing.T) {
	cases := []struct {
		name string
		a, b basis.Index
		want int
	}{
		{"equal", basis.New(0, 1), basis.New(0, 1), 0},
		{"less by component", basis.New(0, 1), basis.New(0, 2), -1},
		{"greater by component", basis.New(1, 0), basis.New(0, 9), 1},
		{"prefix sorts first", basis.New(0), basis.New(0, 0), -1},
		{"extension sorts last", basis.New(2, 1, 0), basis.New(2, 1), 1},
		{"negative components", basis.New(-3, 5), basis.New(-2, 0), -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Compare(tc.b), "Compare(%v, %v)", tc.a, tc.b)
			assert.Equal(t, -tc.want, tc.b.Compare(tc.a), "Compare must be antisymmetric")
		})
	}
}

// TestIndex_Equal verifies that equality requires identical length and
// components, and that a wildcard equals only another wildcard.
func TestIndex_Equal(t *testing.T) {
	assert.True(t, basis.New(0, 1).Equal(basis.New(0, 1)))
	assert.False(t, basis.New(0, 1).Equal(basis.New(0, 1, 2)), "different lengths are never equal")
	assert.False(t, basis.New(basis.Wildcard).Equal(basis.New(0)), "wildcard is not equal to a concrete value")
	assert.True(t, basis.New(basis.Wildcard).Equal(basis.New(basis.Wildcard)), "wildcard equals wildcard")
}

// TestIndex_Matches checks component-wise pattern matching semantics.
func TestIndex_Matches(t *testing.T) {
	x := basis.New(3, 0, 1)

	assert.True(t, x.Matches(basis.New(3, 0, 1)), "identical index matches")
	assert.True(t, x.Matches(basis.New(3, basis.Wildcard, 1)), "wildcard matches any stored value")
	assert.True(t, x.Matches(basis.New(basis.Wildcard, basis.Wildcard, basis.Wildcard)))
	assert.False(t, x.Matches(basis.New(3, 0)), "length mismatch never matches")
	assert.False(t, x.Matches(basis.New(3, 1, basis.Wildcard)), "concrete components must be equal")
}

// TestIndex_Concat verifies subsystem composition.
func TestIndex_Concat(t *testing.T) {
	sub := basis.New(2, 5)
	spin := basis.New(1)

	full := sub.Concat(spin)
	assert.Equal(t, []int{2, 5, 1}, full.Components())
	assert.Equal(t, 2, sub.Len(), "concat must not mutate the receiver")
	assert.Equal(t, 1, spin.Len(), "concat must not mutate the argument")
}

// TestIndex_String covers the printable form, including wildcards.
func TestIndex_String(t *testing.T) {
	assert.Equal(t, "[0, -2, 7]", basis.New(0, -2, 7).String())
	assert.Equal(t, "[1, _]", basis.New(1, basis.Wildcard).String())
	assert.Equal(t, "[]", basis.New().String())
}

// TestIndex_JSONRoundTrip verifies the plain-array JSON encoding.
func TestIndex_JSONRoundTrip(t *testing.T) {
	in := basis.New(4, -1, 0)

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, "[4,-1,0]", string(data))

	var out basis.Index
	require.NoError(t, json.Unmarshal(data, &out))
	assert.True(t, in.Equal(out), "round-trip must reproduce the index")
}

// TestIndex_HasWildcard checks sentinel detection.
func TestIndex_HasWildcard(t *testing.T) {
	assert.False(t, basis.New(0, 1).HasWildcard())
	assert.True(t, basis.New(0, basis.Wildcard).HasWildcard())
}
