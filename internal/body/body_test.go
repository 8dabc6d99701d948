package body

import (
	"encoding/json"
	"strings"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestBodyJSONRoundTrip(t *testing.T) {
	b := New(5.972e24, r3.Vec{X: 1, Y: 2, Z: 3}, r3.Vec{X: -0.5, Y: 0, Z: 4})

	data, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var got Body
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if got.Mass != b.Mass {
		t.Errorf("expected mass %g, got %g", b.Mass, got.Mass)
	}
	if got.Pos != b.Pos {
		t.Errorf("expected position %v, got %v", b.Pos, got.Pos)
	}
	if got.Vel != b.Vel {
		t.Errorf("expected velocity %v, got %v", b.Vel, got.Vel)
	}
}

func TestAccelerationNotSerialized(t *testing.T) {
	b := New(1.0, r3.Vec{}, r3.Vec{})
	b.Acc = r3.Vec{X: 9.81}

	data, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	if strings.Contains(string(data), "accel") {
		t.Errorf("acceleration leaked into JSON: %s", data)
	}

	var got Body
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if got.Acc != (r3.Vec{}) {
		t.Errorf("expected zero acceleration after decode, got %v", got.Acc)
	}
}

func TestUnmarshalArrayFormat(t *testing.T) {
	raw := `{"mass": 7.348e22, "position": [3.844e8, 0, 0], "velocity": [0, 1022, 0]}`

	var b Body
	if err := json.Unmarshal([]byte(raw), &b); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if b.Mass != 7.348e22 {
		t.Errorf("expected mass 7.348e22, got %g", b.Mass)
	}
	if b.Pos.X != 3.844e8 || b.Pos.Y != 0 || b.Pos.Z != 0 {
		t.Errorf("unexpected position %v", b.Pos)
	}
	if b.Vel.Y != 1022 {
		t.Errorf("expected vy 1022, got %g", b.Vel.Y)
	}
}

func TestCloneSetIndependence(t *testing.T) {
	bodies := []Body{
		New(1.0, r3.Vec{X: 1}, r3.Vec{}),
		New(2.0, r3.Vec{X: -1}, r3.Vec{}),
	}

	clone := CloneSet(bodies)
	clone[0].Pos.X = 99

	if bodies[0].Pos.X != 1 {
		t.Error("mutating clone changed the original set")
	}
	if len(clone) != len(bodies) {
		t.Errorf("expected %d bodies, got %d", len(bodies), len(clone))
	}
}
