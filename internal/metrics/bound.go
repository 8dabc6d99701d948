package metrics

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/gravsim/internal/body"
)

// Bound reports the fraction of observed steps on which every body
// stayed within a radius of the origin. Useful for spotting clusters
// evaporating or slingshot escapes during long runs.
type Bound struct {
	radius     float64
	violations int
	samples    int
}

func NewBound(radius float64) *Bound {
	return &Bound{radius: radius}
}

func (b *Bound) Name() string { return "bound" }

func (b *Bound) Observe(step int, bodies []body.Body) {
	b.samples++
	r2 := b.radius * b.radius
	for i := range bodies {
		if r3.Norm2(bodies[i].Pos) > r2 {
			b.violations++
			break
		}
	}
}

func (b *Bound) Value() float64 {
	if b.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(b.violations)/float64(b.samples)
}

func (b *Bound) Reset() {
	b.violations = 0
	b.samples = 0
}
