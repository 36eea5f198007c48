package hamiltonian_test

import (
	"testing"

	"github.com/tbsolve/tbsolve/basis"
	"github.com/tbsolve/tbsolve/hamiltonian"
)

// buildChainSet assembles an n-site nearest-neighbor chain with explicit
// conjugates and seals it.
func buildChainSet(b *testing.B, n int) *hamiltonian.Set {
	b.Helper()
	s := hamiltonian.NewSet()
	for i := 0; i < n-1; i++ {
		if err := s.AddWithConjugate(hamiltonian.New(-1, basis.New(i+1), basis.New(i))); err != nil {
			b.Fatalf("add failed: %v", err)
		}
	}
	if err := s.Construct(); err != nil {
		b.Fatalf("construct failed: %v", err)
	}

	return s
}

// BenchmarkSet_Construct measures populate+seal for a 1000-site chain.
func BenchmarkSet_Construct(b *testing.B) {
	for i := 0; i < b.N; i++ {
		buildChainSet(b, 1000)
	}
}

// BenchmarkSet_ForEachEntry measures one assembly pass over a sealed
// 1000-site chain.
func BenchmarkSet_ForEachEntry(b *testing.B) {
	s := buildChainSet(b, 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum := complex128(0)
		err := s.ForEachEntry(func(_, _ int, v complex128) error {
			sum += v

			return nil
		})
		if err != nil {
			b.Fatalf("forEachEntry failed: %v", err)
		}
	}
}
