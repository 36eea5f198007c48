package basis_test

import (
	"testing"

	"github.com/tbsolve/tbsolve/basis"
)

// buildSquareTree fills a tree with an n×n grid of {x, y} indices.
func buildSquareTree(b *testing.B, n int) *basis.Tree {
	b.Helper()
	tr := basis.NewTree()
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			if err := tr.Insert(basis.New(x, y)); err != nil {
				b.Fatalf("insert failed: %v", err)
			}
		}
	}

	return tr
}

// BenchmarkTree_InsertGenerate measures basis construction for a 100×100 grid.
func BenchmarkTree_InsertGenerate(b *testing.B) {
	for i := 0; i < b.N; i++ {
		tr := buildSquareTree(b, 100)
		if err := tr.Generate(); err != nil {
			b.Fatalf("generate failed: %v", err)
		}
	}
}

// BenchmarkTree_OffsetOf measures forward bijection lookup on a generated tree.
func BenchmarkTree_OffsetOf(b *testing.B) {
	tr := buildSquareTree(b, 100)
	if err := tr.Generate(); err != nil {
		b.Fatalf("generate failed: %v", err)
	}
	idx := basis.New(50, 50)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tr.OffsetOf(idx); err != nil {
			b.Fatalf("offset failed: %v", err)
		}
	}
}

// BenchmarkTree_MatchRow measures a one-wildcard row search; the walk must
// touch only the matching subtree.
func BenchmarkTree_MatchRow(b *testing.B) {
	tr := buildSquareTree(b, 100)
	pattern := basis.New(42, basis.Wildcard)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		count := 0
		for range tr.Match(pattern) {
			count++
		}
		if count != 100 {
			b.Fatalf("expected 100 matches, got %d", count)
		}
	}
}
