// Package sim drives the simulation loop: it owns the body set across
// steps, sequences fixed-count leapfrog integration, and fans snapshots
// out to observers at per-observer cadences.
//
//	s := sim.New(bodies)
//	s.AddObserver(renderer, 10)
//	result, err := s.Run(ctx, sim.Config{Dt: 1e3, Softening: 1e3, Steps: 1000})
//
// # Thread Safety
//
// A Simulator is not safe for concurrent use. Observers receive private
// copies of the body set and may do with them what they like; metrics
// see the live slice and must not write to it.
package sim
