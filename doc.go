// Package tbsolve is an in-memory toolkit for building and solving sparse
// single-particle (tight-binding) Hamiltonians — from hierarchical physical
// indices to self-consistent diagonalization.
//
// 🚀 What is tbsolve?
//
//	A compact numerical library that brings together:
//		• Physical indices: ordered hierarchical keys with wildcard search
//		• Basis enumeration: a sorted index tree with a bijective offset map
//		• Amplitudes: scalar- or callback-valued sparse Hamiltonian entries
//		• AmplitudeSet: adjacency-list sparse assembly with an explicit
//		  Hermiticity policy
//		• DiagonalizationSolver: dense Hermitian eigensolution with an
//		  optional self-consistency loop
//		• Models & properties: concrete model contexts, density of states,
//		  thermal occupations
//
// ✨ Why choose tbsolve?
//
//   - Minimal API with clear, intuitive naming
//   - Deterministic basis ordering — offsets never depend on insertion order
//   - Explicit sentinel errors everywhere, no panics on user input
//   - Value semantics — no shared mutable buffers leak across components
//
// Everything is organized in leaf-first packages:
//
//	basis/       — Index (physical index) and Tree (basis enumeration)
//	hamiltonian/ — Amplitude, Evaluator and the Set assembly container
//	diag/        — Solver: build, diagonalize, iterate to self-consistency
//	model/       — a concrete single-particle model context
//	property/    — extractors over the solver's spectrum
//	examples/    — runnable demos (dimer spectrum, mean-field loop)
//
// Quick sketch of the data flow:
//
//	model ──Add──▶ hamiltonian.Set ──Construct──▶ sealed basis
//	   │                                             │
//	   └──▶ diag.Solver.Run: build H ──▶ eigensolve ──┴─▶ callback ↺
//
//	go get github.com/tbsolve/tbsolve
package tbsolve
