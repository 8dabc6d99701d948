package body

import (
	"encoding/json"

	"gonum.org/v1/gonum/spatial/r3"
)

// Body is a single point mass. Acc is derived state: it is recomputed
// from the current positions before every integration step and never
// round-trips through serialization.
type Body struct {
	Mass float64
	Pos  r3.Vec
	Vel  r3.Vec
	Acc  r3.Vec
}

func New(mass float64, pos, vel r3.Vec) Body {
	return Body{Mass: mass, Pos: pos, Vel: vel}
}

// bodyJSON is the on-disk shape: vectors as 3-element arrays,
// acceleration omitted.
type bodyJSON struct {
	Mass     float64    `json:"mass"`
	Position [3]float64 `json:"position"`
	Velocity [3]float64 `json:"velocity"`
}

func (b Body) MarshalJSON() ([]byte, error) {
	return json.Marshal(bodyJSON{
		Mass:     b.Mass,
		Position: [3]float64{b.Pos.X, b.Pos.Y, b.Pos.Z},
		Velocity: [3]float64{b.Vel.X, b.Vel.Y, b.Vel.Z},
	})
}

func (b *Body) UnmarshalJSON(data []byte) error {
	var raw bodyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*b = Body{
		Mass: raw.Mass,
		Pos:  r3.Vec{X: raw.Position[0], Y: raw.Position[1], Z: raw.Position[2]},
		Vel:  r3.Vec{X: raw.Velocity[0], Y: raw.Velocity[1], Z: raw.Velocity[2]},
	}
	return nil
}

// CloneSet returns an independent copy of a body set. Observers receive
// clones so they can never mutate the simulation's authoritative state.
func CloneSet(bodies []Body) []Body {
	c := make([]Body, len(bodies))
	copy(c, bodies)
	return c
}
