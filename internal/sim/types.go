package sim

import "github.com/san-kum/gravsim/internal/body"

// Observer receives read-only snapshots of the body set at a cadence it
// chose when registering. The loop does not care what an observer does
// with a snapshot: rendering, recording and checkpointing all live
// outside the core.
type Observer interface {
	OnSnapshot(step int, bodies []body.Body)
}

// Metric observes the live body set every step and reduces it to a
// single value at the end of a run. It must treat the slice as
// read-only; unlike observers it is not handed a private copy.
type Metric interface {
	Name() string
	Observe(step int, bodies []body.Body)
	Value() float64
	Reset()
}

// Config carries the per-run parameters. Positivity of Dt and Softening
// is the caller's business (the config package validates user input);
// the loop itself runs whatever it is given.
type Config struct {
	Dt        float64
	Softening float64
	Steps     int
}

// Result summarizes a completed run.
type Result struct {
	StepsTaken  int
	EnergyDrift float64
	Metrics     map[string]float64
}
