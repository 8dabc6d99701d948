package physics

import (
	"runtime"
	"sync"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/gravsim/internal/body"
)

// G is the gravitational constant (m^3 kg^-1 s^-2).
const G = 6.67430e-11

// minParallel is the body count below which goroutine fan-out costs more
// than it saves on the O(N^2) pass.
const minParallel = 64

// Accelerations overwrites every body's Acc field with the net softened
// gravitational acceleration induced by all other bodies at their current
// positions. Positions, velocities and masses are left untouched.
//
// The softened magnitude for a pair at squared separation d2 is
// G*m_j/(d2 + eps^2), applied along the unit separation vector. A body
// never attracts itself; self-pairs are skipped by index. With no
// validation anywhere in this path, coincident bodies under zero
// softening surface as Inf/NaN in the result rather than as an error.
func Accelerations(bodies []body.Body, softening float64) {
	n := len(bodies)
	if n < minParallel {
		accelerate(bodies, softening, 0, n)
		return
	}

	workers := runtime.NumCPU()
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			accelerate(bodies, softening, s, e)
		}(start, end)
	}
	wg.Wait()
}

// accelerate computes accelerations for bodies[start:end) against the full
// set. Workers share the positions and masses read-only and each owns the
// Acc fields of its range exclusively, so no locking is needed. Every
// body's sum runs in fixed j order, which keeps results bit-identical
// regardless of how the range is split.
func accelerate(bodies []body.Body, softening float64, start, end int) {
	eps2 := softening * softening
	for i := start; i < end; i++ {
		var acc r3.Vec
		pi := bodies[i].Pos
		for j := range bodies {
			if j == i {
				continue
			}
			dir := r3.Sub(bodies[j].Pos, pi)
			d2 := r3.Norm2(dir)
			mag := G * bodies[j].Mass / (d2 + eps2)
			acc = r3.Add(acc, r3.Scale(mag, r3.Unit(dir)))
		}
		bodies[i].Acc = acc
	}
}
