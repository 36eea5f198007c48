package model

import (
	"github.com/tbsolve/tbsolve/basis"
	"github.com/tbsolve/tbsolve/hamiltonian"
)

// Statistics selects the particle statistics of a model.
type Statistics int

const (
	// FermiDirac statistics (default): occupation 1/(e^((E-μ)/T) + 1).
	FermiDirac Statistics = iota

	// BoseEinstein statistics: occupation 1/(e^((E-μ)/T) - 1).
	BoseEinstein
)

// String returns a readable statistics name.
func (s Statistics) String() string {
	switch s {
	case FermiDirac:
		return "Fermi-Dirac"
	case BoseEinstein:
		return "Bose-Einstein"
	default:
		return "Unknown"
	}
}

// Model is the single-particle context: an owned amplitude set together
// with statistics, chemical potential and temperature (energy units with
// k_B = 1). It satisfies diag.Model.
type Model struct {
	set *hamiltonian.Set

	statistics        Statistics
	chemicalPotential float64
	temperature       float64
}

// New creates an empty model with Fermi-Dirac statistics, zero chemical
// potential and zero temperature. Set options (e.g.
// hamiltonian.WithAssumeHermitian) pass through to the owned set.
func New(opts ...hamiltonian.SetOption) *Model {
	return &Model{set: hamiltonian.NewSet(opts...)}
}

// Add inserts one amplitude into the owned set.
func (m *Model) Add(a hamiltonian.Amplitude) error { return m.set.Add(a) }

// AddWithConjugate inserts an amplitude together with its Hermitian
// conjugate.
func (m *Model) AddWithConjugate(a hamiltonian.Amplitude) error {
	return m.set.AddWithConjugate(a)
}

// Construct seals the owned set and fixes the basis.
func (m *Model) Construct() error { return m.set.Construct() }

// BasisSize returns the sealed basis dimension, or zero while the model is
// still open.
func (m *Model) BasisSize() int {
	n, err := m.set.BasisSize()
	if err != nil {
		return 0
	}

	return n
}

// AmplitudeSet returns the owned amplitude set.
func (m *Model) AmplitudeSet() *hamiltonian.Set { return m.set }

// BasisOffset returns the sealed basis offset of idx.
func (m *Model) BasisOffset(idx basis.Index) (int, error) { return m.set.BasisOffset(idx) }

// SetStatistics selects the particle statistics.
func (m *Model) SetStatistics(s Statistics) { m.statistics = s }

// Statistics returns the selected particle statistics.
func (m *Model) Statistics() Statistics { return m.statistics }

// SetChemicalPotential sets μ.
func (m *Model) SetChemicalPotential(mu float64) { m.chemicalPotential = mu }

// ChemicalPotential returns μ.
func (m *Model) ChemicalPotential() float64 { return m.chemicalPotential }

// SetTemperature sets T (k_B = 1; zero selects the sharp step limit).
func (m *Model) SetTemperature(temperature float64) { m.temperature = temperature }

// Temperature returns T.
func (m *Model) Temperature() float64 { return m.temperature }
