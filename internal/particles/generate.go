package particles

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/gravsim/internal/body"
	"github.com/san-kum/gravsim/internal/physics"
)

// Generate builds the initial conditions for a named scenario. n is the
// total body count; seed fixes the random draw so runs are repeatable.
func Generate(scenario string, n int, seed int64) ([]body.Body, error) {
	switch scenario {
	case "earthmoon":
		return EarthMoon(), nil
	case "cluster":
		return Cluster(n, seed), nil
	case "collision":
		return Collision(n, seed), nil
	case "disk":
		return Disk(n, seed), nil
	default:
		return nil, fmt.Errorf("unknown scenario: %s", scenario)
	}
}

// EarthMoon is the two-body reference system: Earth at rest at the
// origin, the Moon on a circular orbit at its mean distance.
func EarthMoon() []body.Body {
	const (
		mEarth = 5.972e24
		mMoon  = 7.348e22
		d      = 3.844e8
	)
	v := math.Sqrt(physics.G * mEarth / d)
	return []body.Body{
		body.New(mEarth, r3.Vec{}, r3.Vec{}),
		body.New(mMoon, r3.Vec{X: d}, r3.Vec{Y: v}),
	}
}

// Cluster places a heavy core at the origin and n-1 light members in a
// gaussian ball around it, each on a roughly circular orbit about the
// core with the orbital plane tilted by the draw.
func Cluster(n int, seed int64) []body.Body {
	rng := rand.New(rand.NewSource(seed))
	return clusterAround(rng, n, 5.972e24, r3.Vec{}, r3.Vec{}, r3.Vec{Z: 1})
}

// Collision is two counter-rotating clusters on a slow head-on approach.
func Collision(n int, seed int64) []body.Body {
	rng := rand.New(rand.NewSource(seed))
	const sep = 1.2e9
	const approach = 200.0

	half := n / 2
	left := clusterAround(rng, half, 5.972e24,
		r3.Vec{X: -sep}, r3.Vec{X: approach}, r3.Vec{Z: 1})
	right := clusterAround(rng, n-half, 5.972e24,
		r3.Vec{X: sep}, r3.Vec{X: -approach}, r3.Vec{Z: -1})

	return append(left, right...)
}

// Disk is a cold, thin disk in the xy plane around a heavy central body,
// every member on a near-circular orbit.
func Disk(n int, seed int64) []body.Body {
	rng := rand.New(rand.NewSource(seed))
	const (
		mCentral  = 5.972e24
		minRadius = 8.0e7
		maxRadius = 6.0e8
	)

	bodies := make([]body.Body, 0, n)
	bodies = append(bodies, body.New(mCentral, r3.Vec{}, r3.Vec{}))

	for len(bodies) < n {
		x, y := uniformSampleDisk(rng, maxRadius)
		if math.Hypot(x, y) < minRadius {
			continue
		}
		pos := r3.Vec{X: x, Y: y, Z: rng.NormFloat64() * 1e5}

		r := math.Hypot(x, y)
		v := math.Sqrt(physics.G * mCentral / r)
		vel := r3.Scale(v/r, r3.Vec{X: -y, Y: x})

		mass := math.Abs(rng.NormFloat64()*1e18 + 5e18)
		bodies = append(bodies, body.New(mass, pos, vel))
	}
	return bodies
}

// clusterAround builds one core plus members orbiting it. axis sets the
// cluster's spin; velocities are perpendicular to both the axis and the
// member-core separation, scaled for a circular orbit about the core.
func clusterAround(rng *rand.Rand, n int, coreMass float64, center, drift, axis r3.Vec) []body.Body {
	const spread = 2.0e8

	bodies := make([]body.Body, 0, n)
	bodies = append(bodies, body.New(coreMass, center, drift))

	for len(bodies) < n {
		offset := r3.Vec{
			X: rng.NormFloat64() * spread,
			Y: rng.NormFloat64() * spread,
			Z: rng.NormFloat64() * spread * 0.1,
		}
		d := r3.Norm(offset)
		if d == 0 {
			continue
		}

		tangent := r3.Cross(r3.Scale(1/d, offset), axis)
		v := math.Sqrt(physics.G * coreMass / d)

		mass := math.Abs(rng.NormFloat64()*1e18 + 5e18)
		bodies = append(bodies, body.New(mass,
			r3.Add(center, offset),
			r3.Add(drift, r3.Scale(v, tangent)),
		))
	}
	return bodies
}

// uniformSampleDisk samples a disk without bias toward the center.
func uniformSampleDisk(rng *rand.Rand, radius float64) (x, y float64) {
	r := radius * math.Sqrt(rng.Float64())
	theta := 2 * math.Pi * rng.Float64()
	sin, cos := math.Sincos(theta)
	return r * cos, r * sin
}
