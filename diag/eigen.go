package diag

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// dependentTol is the residual-norm threshold below which a candidate
// eigenvector is considered linearly dependent on already accepted ones.
// Candidate columns are unit real vectors, so genuine new directions keep
// residual norms far above this.
const dependentTol = 1e-8

// hermitianEigen computes the full spectrum of the n×n Hermitian matrix h
// (row-major) into values (non-decreasing) and vectors (eigenvector k at
// [k*n, (k+1)*n), orthonormal).
//
// Algorithm:
//
//  1. Embed H = A + iB into the real symmetric 2n×2n matrix
//     M = [[A, -B], [B, A]]. Every eigenvalue λ of H appears in M twice,
//     and any real eigenvector z = (x; y) of M maps to the complex
//     eigenvector v = x + iy of H with the same λ.
//  2. Factorize M with gonum's dense symmetric eigensolver; eigenvalues
//     arrive in ascending order, so the duplicated pairs sit adjacent.
//  3. Recover n complex eigenvectors by scanning M's columns in order and
//     keeping each candidate's component orthogonal to the vectors already
//     accepted (complex Gram-Schmidt). Exactly one of each duplicated pair
//     survives; degenerate subspaces yield an orthonormal set without any
//     guaranteed vector choice.
//
// Non-convergence of the underlying factorization fails with ErrEigenFailed
// and leaves values/vectors unspecified.
func hermitianEigen(h []complex128, n int, values []float64, vectors []complex128) error {
	// Real-symmetric embedding.
	m := 2 * n
	data := make([]float64, m*m)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			re, im := real(h[i*n+j]), imag(h[i*n+j])
			data[i*m+j] = re
			data[i*m+n+j] = -im
			data[(n+i)*m+j] = im
			data[(n+i)*m+n+j] = re
		}
	}

	var es mat.EigenSym
	if ok := es.Factorize(mat.NewSymDense(m, data), true); !ok {
		return ErrEigenFailed
	}
	all := es.Values(nil)
	var ev mat.Dense
	es.VectorsTo(&ev)

	candidate := make([]complex128, n)
	accepted := 0
	for c := 0; c < m && accepted < n; c++ {
		for k := 0; k < n; k++ {
			candidate[k] = complex(ev.At(k, c), ev.At(n+k, c))
		}
		// Project out everything already accepted. Vectors of distinct
		// eigenvalues are orthogonal up to roundoff, so the projection only
		// bites inside duplicated/degenerate clusters.
		for p := 0; p < accepted; p++ {
			var overlap complex128
			for k := 0; k < n; k++ {
				overlap += cmplx.Conj(vectors[p*n+k]) * candidate[k]
			}
			for k := 0; k < n; k++ {
				candidate[k] -= overlap * vectors[p*n+k]
			}
		}
		norm := 0.0
		for k := 0; k < n; k++ {
			re, im := real(candidate[k]), imag(candidate[k])
			norm += re*re + im*im
		}
		norm = math.Sqrt(norm)
		if norm < dependentTol {
			continue // the pair partner of an accepted vector
		}
		inv := complex(1/norm, 0)
		for k := 0; k < n; k++ {
			vectors[accepted*n+k] = candidate[k] * inv
		}
		values[accepted] = all[c]
		accepted++
	}
	if accepted != n {
		return ErrEigenFailed
	}

	return nil
}
