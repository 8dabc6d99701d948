package physics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/gravsim/internal/body"
)

// Energy returns the total mechanical energy of the set: kinetic plus the
// softened pairwise potential. Using the same softening as the force law
// keeps the quantity consistent with what the integrator conserves.
func Energy(bodies []body.Body, softening float64) float64 {
	eps2 := softening * softening
	ke := 0.0
	pe := 0.0

	for i := range bodies {
		ke += 0.5 * bodies[i].Mass * r3.Norm2(bodies[i].Vel)

		for j := i + 1; j < len(bodies); j++ {
			d2 := r3.Norm2(r3.Sub(bodies[j].Pos, bodies[i].Pos))
			pe -= G * bodies[i].Mass * bodies[j].Mass / math.Sqrt(d2+eps2)
		}
	}

	return ke + pe
}

// Momentum returns the total linear momentum of the set.
func Momentum(bodies []body.Body) r3.Vec {
	var p r3.Vec
	for i := range bodies {
		p = r3.Add(p, r3.Scale(bodies[i].Mass, bodies[i].Vel))
	}
	return p
}

// AngularMomentum returns the total angular momentum about the origin.
func AngularMomentum(bodies []body.Body) r3.Vec {
	var l r3.Vec
	for i := range bodies {
		l = r3.Add(l, r3.Scale(bodies[i].Mass, r3.Cross(bodies[i].Pos, bodies[i].Vel)))
	}
	return l
}

// CenterOfMass returns the mass-weighted mean position.
func CenterOfMass(bodies []body.Body) r3.Vec {
	var com r3.Vec
	total := 0.0
	for i := range bodies {
		com = r3.Add(com, r3.Scale(bodies[i].Mass, bodies[i].Pos))
		total += bodies[i].Mass
	}
	if total == 0 {
		return r3.Vec{}
	}
	return r3.Scale(1/total, com)
}
