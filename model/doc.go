// Package model provides a concrete single-particle model context: the
// amplitude container plus the thermodynamic knobs (particle statistics,
// chemical potential, temperature) a property extractor needs.
//
// A Model owns one hamiltonian.Set and delegates population and basis
// queries to it, so it satisfies diag.Model directly:
//
//	m := model.New(hamiltonian.WithAssumeHermitian())
//	m.Add(hamiltonian.New(-1, basis.New(1), basis.New(0)))
//	m.Construct()
//	solver.SetModel(m)
//
// BasisSize reports zero while the model is unconstructed, which makes the
// solver's preflight reject premature runs with its configuration error.
package model
