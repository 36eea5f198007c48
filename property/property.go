package property

import (
	"errors"
	"math"

	"github.com/tbsolve/tbsolve/model"
)

var (
	// ErrBadBounds is returned when upperBound <= lowerBound.
	ErrBadBounds = errors.New("property: upper bound must exceed lower bound")

	// ErrBadResolution is returned for a non-positive histogram resolution.
	ErrBadResolution = errors.New("property: resolution must be positive")
)

// DOS is a density-of-states histogram over [LowerBound, UpperBound) with
// Resolution equally sized bins. Data[n] counts the eigenvalues falling in
// bin n; out-of-range eigenvalues are dropped.
type DOS struct {
	LowerBound float64
	UpperBound float64
	Resolution int
	Data       []float64
}

// NewDOS bins the given eigenvalues into a fresh histogram.
// Complexity: O(len(eigenvalues) + resolution).
func NewDOS(eigenvalues []float64, lowerBound, upperBound float64, resolution int) (*DOS, error) {
	if upperBound <= lowerBound {
		return nil, ErrBadBounds
	}
	if resolution <= 0 {
		return nil, ErrBadResolution
	}

	d := &DOS{
		LowerBound: lowerBound,
		UpperBound: upperBound,
		Resolution: resolution,
		Data:       make([]float64, resolution),
	}
	width := (upperBound - lowerBound) / float64(resolution)
	for _, e := range eigenvalues {
		bin := int(math.Floor((e - lowerBound) / width))
		if bin < 0 || bin >= resolution {
			continue
		}
		d.Data[bin]++
	}

	return d, nil
}

// Energy returns the center energy of bin n.
func (d *DOS) Energy(n int) float64 {
	width := (d.UpperBound - d.LowerBound) / float64(d.Resolution)

	return d.LowerBound + (float64(n)+0.5)*width
}

// Occupation returns the thermal occupation of a state at the given energy
// under the chosen statistics, chemical potential μ and temperature T
// (k_B = 1). At T = 0 the Fermi-Dirac weight degenerates to the sharp step
// (half weight exactly at μ); the Bose-Einstein weight is zero above μ.
func Occupation(energy, mu, temperature float64, statistics model.Statistics) float64 {
	if temperature <= 0 {
		return zeroTemperatureOccupation(energy, mu, statistics)
	}

	x := (energy - mu) / temperature
	switch statistics {
	case model.BoseEinstein:
		return 1 / (math.Exp(x) - 1)
	default:
		return 1 / (math.Exp(x) + 1)
	}
}

func zeroTemperatureOccupation(energy, mu float64, statistics model.Statistics) float64 {
	switch {
	case energy < mu:
		if statistics == model.BoseEinstein {
			return math.Inf(1)
		}

		return 1
	case energy == mu && statistics == model.FermiDirac:
		return 0.5
	default:
		return 0
	}
}

// Occupations maps Occupation over a spectrum, preserving state order.
func Occupations(eigenvalues []float64, mu, temperature float64, statistics model.Statistics) []float64 {
	out := make([]float64, len(eigenvalues))
	for i, e := range eigenvalues {
		out[i] = Occupation(e, mu, temperature, statistics)
	}

	return out
}
