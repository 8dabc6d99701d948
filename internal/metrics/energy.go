package metrics

import (
	"math"

	"github.com/san-kum/gravsim/internal/body"
	"github.com/san-kum/gravsim/internal/physics"
)

// EnergyDrift tracks the worst relative deviation of total mechanical
// energy from its value at the first observed step. For a well-behaved
// leapfrog run this stays small and bounded instead of growing.
type EnergyDrift struct {
	softening float64
	initial   float64
	maxDrift  float64
	samples   int
}

func NewEnergyDrift(softening float64) *EnergyDrift {
	return &EnergyDrift{softening: softening}
}

func (e *EnergyDrift) Name() string { return "energy_drift" }

func (e *EnergyDrift) Observe(step int, bodies []body.Body) {
	energy := physics.Energy(bodies, e.softening)

	if e.samples == 0 {
		e.initial = energy
	}
	e.samples++

	if e.initial != 0 {
		drift := math.Abs(energy-e.initial) / math.Abs(e.initial)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 {
	return e.maxDrift
}

func (e *EnergyDrift) Reset() {
	e.initial = 0
	e.maxDrift = 0
	e.samples = 0
}
