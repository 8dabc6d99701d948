package store

import (
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/gravsim/internal/body"
)

func sampleRun() (RunMetadata, []body.Body, []int, []float64) {
	meta := RunMetadata{
		Scenario:  "earthmoon",
		Seed:      42,
		Dt:        1e3,
		Softening: 1e3,
		Steps:     100,
		Metrics:   map[string]float64{"energy_drift": 1.5e-6},
	}
	bodies := []body.Body{
		body.New(5.972e24, r3.Vec{}, r3.Vec{}),
		body.New(7.348e22, r3.Vec{X: 3.844e8}, r3.Vec{Y: 1018}),
	}
	return meta, bodies, []int{0, 10, 20}, []float64{-7.6e28, -7.6e28, -7.6e28}
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	meta, bodies, steps, energy := sampleRun()
	runID, err := st.Save(meta, bodies, steps, energy)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Fatal("expected non-empty run id")
	}

	got, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got.Scenario != "earthmoon" {
		t.Errorf("expected scenario earthmoon, got %s", got.Scenario)
	}
	if got.Seed != 42 {
		t.Errorf("expected seed 42, got %d", got.Seed)
	}
	if got.Bodies != 2 {
		t.Errorf("expected 2 bodies, got %d", got.Bodies)
	}
	if got.Metrics["energy_drift"] != 1.5e-6 {
		t.Errorf("metrics not preserved: %v", got.Metrics)
	}
}

func TestStoreLoadBodies(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	meta, bodies, steps, energy := sampleRun()
	runID, err := st.Save(meta, bodies, steps, energy)
	if err != nil {
		t.Fatal(err)
	}

	got, err := st.LoadBodies(runID)
	if err != nil {
		t.Fatalf("load bodies failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 bodies, got %d", len(got))
	}
	if got[1].Pos != bodies[1].Pos {
		t.Errorf("position not preserved: %v != %v", got[1].Pos, bodies[1].Pos)
	}
}

func TestStoreLoadEnergy(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	meta, bodies, steps, energy := sampleRun()
	runID, err := st.Save(meta, bodies, steps, energy)
	if err != nil {
		t.Fatal(err)
	}

	gotSteps, gotEnergy, err := st.LoadEnergy(runID)
	if err != nil {
		t.Fatalf("load energy failed: %v", err)
	}
	if len(gotSteps) != 3 || len(gotEnergy) != 3 {
		t.Fatalf("expected 3 samples, got %d/%d", len(gotSteps), len(gotEnergy))
	}
	if gotSteps[1] != 10 {
		t.Errorf("expected step 10, got %d", gotSteps[1])
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	meta, bodies, steps, energy := sampleRun()
	if _, err := st.Save(meta, bodies, steps, energy); err != nil {
		t.Fatal(err)
	}
	if _, err := st.Save(meta, bodies, steps, energy); err != nil {
		t.Fatal(err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Errorf("expected 2 runs, got %d", len(runs))
	}
}

func TestStoreFileStructure(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	meta, bodies, steps, energy := sampleRun()
	runID, err := st.Save(meta, bodies, steps, energy)
	if err != nil {
		t.Fatal(err)
	}

	runDir := filepath.Join(tmpDir, runID)
	for _, name := range []string{"metadata.json", "bodies_final.json", "energy.csv"} {
		if _, err := os.Stat(filepath.Join(runDir, name)); os.IsNotExist(err) {
			t.Errorf("%s not created", name)
		}
	}
}
