package hamiltonian

import (
	"fmt"
	"math/cmplx"

	"github.com/tbsolve/tbsolve/basis"
)

// Evaluator supplies the value of an amplitude on demand. Implementations
// must be pure with respect to their arguments: they may read external state
// captured at construction (mean-field parameters updated between
// self-consistency iterations), but must not mutate it during evaluation.
type Evaluator interface {
	Evaluate(to, from basis.Index) complex128
}

// EvaluatorFunc adapts an ordinary function to the Evaluator interface.
type EvaluatorFunc func(to, from basis.Index) complex128

// Evaluate implements Evaluator.
func (f EvaluatorFunc) Evaluate(to, from basis.Index) complex128 { return f(to, from) }

// conjugateEvaluator wraps an Evaluator so that the wrapped value is the
// Hermitian conjugate of the inner one: arguments swapped, result conjugated.
type conjugateEvaluator struct {
	inner Evaluator
}

func (c conjugateEvaluator) Evaluate(to, from basis.Index) complex128 {
	return cmplx.Conj(c.inner.Evaluate(from, to))
}

// Amplitude is one sparse entry a_{to,from} of a bilinear Hamiltonian term
// a c_to† c_from. The value source is either the fixed scalar passed to New
// or the Evaluator passed to NewEvaluated. Amplitudes are immutable values;
// copies are independent.
type Amplitude struct {
	value    complex128
	eval     Evaluator
	to, from basis.Index
}

// New constructs a scalar-valued amplitude a_{to,from} = value.
func New(value complex128, to, from basis.Index) Amplitude {
	return Amplitude{value: value, to: to, from: from}
}

// NewEvaluated constructs an amplitude whose value is obtained from eval at
// assembly time. Use it for entries that depend on self-consistent feedback
// state.
func NewEvaluated(eval Evaluator, to, from basis.Index) Amplitude {
	return Amplitude{eval: eval, to: to, from: from}
}

// To returns the left (creation) index.
func (a Amplitude) To() basis.Index { return a.to }

// From returns the right (annihilation) index.
func (a Amplitude) From() basis.Index { return a.from }

// HasEvaluator reports whether the value is callback-backed.
func (a Amplitude) HasEvaluator() bool { return a.eval != nil }

// Value returns the current amplitude value: the fixed scalar, or the
// Evaluator invoked with the amplitude's own indices.
func (a Amplitude) Value() complex128 {
	if a.eval != nil {
		return a.eval.Evaluate(a.to, a.from)
	}

	return a.value
}

// HermitianConjugate returns the conjugate amplitude a*_{from,to}: indices
// swapped and value source conjugated. Conjugating an Evaluator wraps it to
// swap arguments and conjugate the result; conjugating twice unwraps, so the
// double conjugate evaluates identically to the original.
func (a Amplitude) HermitianConjugate() Amplitude {
	hc := Amplitude{
		value: cmplx.Conj(a.value),
		to:    a.from,
		from:  a.to,
	}
	if a.eval != nil {
		if c, ok := a.eval.(conjugateEvaluator); ok {
			hc.eval = c.inner
		} else {
			hc.eval = conjugateEvaluator{inner: a.eval}
		}
	}

	return hc
}

// WithConjugate returns the amplitude together with its Hermitian conjugate,
// the common pair for keeping an assembled Hamiltonian explicitly Hermitian.
func (a Amplitude) WithConjugate() [2]Amplitude {
	return [2]Amplitude{a, a.HermitianConjugate()}
}

// String renders "(re, im), to, from"; callback-backed values render as "(eval)".
func (a Amplitude) String() string {
	if a.eval != nil {
		return fmt.Sprintf("(eval), %s, %s", a.to, a.from)
	}

	return fmt.Sprintf("(%g, %g), %s, %s", real(a.value), imag(a.value), a.to, a.from)
}
