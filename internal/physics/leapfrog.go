package physics

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/gravsim/internal/body"
)

// Step advances the body set by one fixed time step using the leapfrog
// kick-drift-kick scheme: half-kick on the accelerations already stored in
// the bodies, full drift, force refresh at the new positions, second
// half-kick on the fresh accelerations. The three-phase split around the
// force refresh is what makes the scheme symplectic; do not reorder it.
//
// The first half-kick reads whatever Acc currently holds, so callers must
// establish accelerations once (via Accelerations) before the first step
// of a run. dt = 0 is a no-op; a negative dt integrates backward.
func Step(bodies []body.Body, dt, softening float64) {
	half := 0.5 * dt

	for i := range bodies {
		bodies[i].Vel = r3.Add(bodies[i].Vel, r3.Scale(half, bodies[i].Acc))
	}

	for i := range bodies {
		bodies[i].Pos = r3.Add(bodies[i].Pos, r3.Scale(dt, bodies[i].Vel))
	}

	Accelerations(bodies, softening)

	for i := range bodies {
		bodies[i].Vel = r3.Add(bodies[i].Vel, r3.Scale(half, bodies[i].Acc))
	}
}
