// Package physics implements the gravitational core of the simulator:
// the pairwise softened force computation and the symplectic time
// integrator.
//
//   - [Accelerations]: O(N^2) softened gravity, parallel over bodies
//   - [Step]: one leapfrog kick-drift-kick step
//   - [Energy], [Momentum], [AngularMomentum]: conserved-quantity
//     diagnostics
//
// # Ordering
//
// Step reads the accelerations already stored in the bodies for its first
// half-kick, so a run must call Accelerations once before its first Step:
//
//	physics.Accelerations(bodies, eps)
//	for i := 0; i < steps; i++ {
//	    physics.Step(bodies, dt, eps)
//	}
//
// # Thread Safety
//
// Accelerations fans out across goroutines internally and returning from
// it is the synchronization barrier: all Acc writes are visible to the
// caller. Concurrent calls over the same body set are not safe.
package physics
