package metrics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/gravsim/internal/body"
	"github.com/san-kum/gravsim/internal/physics"
)

// MomentumDrift tracks the worst absolute deviation of total linear
// momentum from its first observed value. Gravity is internal to the
// set, so any drift here is purely numerical.
type MomentumDrift struct {
	initial  r3.Vec
	maxDrift float64
	samples  int
}

func NewMomentumDrift() *MomentumDrift {
	return &MomentumDrift{}
}

func (m *MomentumDrift) Name() string { return "momentum_drift" }

func (m *MomentumDrift) Observe(step int, bodies []body.Body) {
	p := physics.Momentum(bodies)
	if m.samples == 0 {
		m.initial = p
	}
	m.samples++

	m.maxDrift = math.Max(m.maxDrift, r3.Norm(r3.Sub(p, m.initial)))
}

func (m *MomentumDrift) Value() float64 {
	return m.maxDrift
}

func (m *MomentumDrift) Reset() {
	m.initial = r3.Vec{}
	m.maxDrift = 0
	m.samples = 0
}

// AngularMomentumDrift is the same bookkeeping for total angular
// momentum about the origin.
type AngularMomentumDrift struct {
	initial  r3.Vec
	maxDrift float64
	samples  int
}

func NewAngularMomentumDrift() *AngularMomentumDrift {
	return &AngularMomentumDrift{}
}

func (m *AngularMomentumDrift) Name() string { return "angular_momentum_drift" }

func (m *AngularMomentumDrift) Observe(step int, bodies []body.Body) {
	l := physics.AngularMomentum(bodies)
	if m.samples == 0 {
		m.initial = l
	}
	m.samples++

	m.maxDrift = math.Max(m.maxDrift, r3.Norm(r3.Sub(l, m.initial)))
}

func (m *AngularMomentumDrift) Value() float64 {
	return m.maxDrift
}

func (m *AngularMomentumDrift) Reset() {
	m.initial = r3.Vec{}
	m.maxDrift = 0
	m.samples = 0
}
