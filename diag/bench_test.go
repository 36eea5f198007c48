package diag_test

import (
	"testing"

	"github.com/tbsolve/tbsolve/basis"
	"github.com/tbsolve/tbsolve/diag"
	"github.com/tbsolve/tbsolve/hamiltonian"
)

// chainModel builds a sealed n-site nearest-neighbor chain model.
func chainModel(b *testing.B, n int) diag.Model {
	b.Helper()
	set := hamiltonian.NewSet()
	for i := 0; i < n-1; i++ {
		if err := set.AddWithConjugate(hamiltonian.New(-1, basis.New(i+1), basis.New(i))); err != nil {
			b.Fatalf("add failed: %v", err)
		}
	}
	if err := set.Construct(); err != nil {
		b.Fatalf("construct failed: %v", err)
	}

	return &exampleModel{set: set}
}

// benchmarkSolverRun measures a full build+diagonalize pass at basis size n.
func benchmarkSolverRun(b *testing.B, n int) {
	s := diag.NewSolver()
	s.SetModel(chainModel(b, n))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := s.Run(); err != nil {
			b.Fatalf("run failed: %v", err)
		}
	}
}

// BenchmarkSolver_Run32 benchmarks a 32-site chain.
func BenchmarkSolver_Run32(b *testing.B) { benchmarkSolverRun(b, 32) }

// BenchmarkSolver_Run128 benchmarks a 128-site chain.
func BenchmarkSolver_Run128(b *testing.B) { benchmarkSolverRun(b, 128) }

// BenchmarkSolver_Run256 benchmarks a 256-site chain; diagonalization cost
// dominates as O(N³).
func BenchmarkSolver_Run256(b *testing.B) { benchmarkSolverRun(b, 256) }
