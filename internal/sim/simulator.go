package sim

import (
	"context"
	"math"

	"github.com/san-kum/gravsim/internal/body"
	"github.com/san-kum/gravsim/internal/physics"
)

type observerEntry struct {
	obs   Observer
	every int
}

// Simulator owns one body set for the duration of a run and sequences
// fixed-step leapfrog integration over it. The physics package borrows
// the set for the duration of a single call and keeps nothing between
// calls; everything stateful lives here.
type Simulator struct {
	bodies    []body.Body
	observers []observerEntry
	metrics   []Metric
}

// New creates a Simulator that takes ownership of bodies. The caller
// must not touch the slice afterwards; use Snapshot for reads.
func New(bodies []body.Body) *Simulator {
	return &Simulator{bodies: bodies}
}

// AddObserver registers o to receive a snapshot every `every` steps.
// An every below 1 disables the observer.
func (s *Simulator) AddObserver(o Observer, every int) {
	s.observers = append(s.observers, observerEntry{obs: o, every: every})
}

func (s *Simulator) AddMetric(m Metric) { s.metrics = append(s.metrics, m) }

func (s *Simulator) Len() int { return len(s.bodies) }

// Snapshot returns an independent copy of the current body set.
func (s *Simulator) Snapshot() []body.Body {
	return body.CloneSet(s.bodies)
}

// Run executes exactly cfg.Steps integration steps, establishing initial
// accelerations before the first one so that step 0's half-kick sees
// forces consistent with the initial positions. Observers fire after a
// step when the step index hits their cadence; metrics observe every
// step. The only error Run returns is context cancellation.
func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	result := &Result{Metrics: make(map[string]float64)}

	for _, m := range s.metrics {
		m.Reset()
	}

	physics.Accelerations(s.bodies, cfg.Softening)
	initialEnergy := physics.Energy(s.bodies, cfg.Softening)

	for i := 0; i < cfg.Steps; i++ {
		select {
		case <-ctx.Done():
			s.finish(result, cfg, initialEnergy)
			return result, ctx.Err()
		default:
		}

		physics.Step(s.bodies, cfg.Dt, cfg.Softening)
		result.StepsTaken++

		for _, m := range s.metrics {
			m.Observe(i, s.bodies)
		}

		for _, e := range s.observers {
			if e.every > 0 && i%e.every == 0 {
				e.obs.OnSnapshot(i, body.CloneSet(s.bodies))
			}
		}
	}

	s.finish(result, cfg, initialEnergy)
	return result, nil
}

func (s *Simulator) finish(result *Result, cfg Config, initialEnergy float64) {
	finalEnergy := physics.Energy(s.bodies, cfg.Softening)
	if initialEnergy != 0 {
		result.EnergyDrift = math.Abs(finalEnergy-initialEnergy) / math.Abs(initialEnergy)
	}
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}
