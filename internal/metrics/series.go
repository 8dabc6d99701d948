package metrics

import (
	"github.com/san-kum/gravsim/internal/body"
	"github.com/san-kum/gravsim/internal/physics"
)

// EnergySeries is a sim.Observer that records total energy at every
// snapshot it receives, for plotting or persisting after the run.
type EnergySeries struct {
	softening float64
	Steps     []int
	Values    []float64
}

func NewEnergySeries(softening float64) *EnergySeries {
	return &EnergySeries{softening: softening}
}

func (e *EnergySeries) OnSnapshot(step int, bodies []body.Body) {
	e.Steps = append(e.Steps, step)
	e.Values = append(e.Values, physics.Energy(bodies, e.softening))
}
