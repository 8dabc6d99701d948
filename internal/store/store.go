package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/gravsim/internal/body"
)

// Store keeps one directory per completed run: metadata.json, the final
// body set, and the recorded energy series.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID          string             `json:"id"`
	Scenario    string             `json:"scenario"`
	Timestamp   time.Time          `json:"timestamp"`
	Seed        int64              `json:"seed"`
	Dt          float64            `json:"dt"`
	Softening   float64            `json:"softening"`
	Steps       int                `json:"steps"`
	Bodies      int                `json:"bodies"`
	EnergyDrift float64            `json:"energy_drift"`
	Metrics     map[string]float64 `json:"metrics"`
}

// Save persists a finished run and returns its generated ID.
func (s *Store) Save(meta RunMetadata, final []body.Body, energySteps []int, energy []float64) (string, error) {
	runID := fmt.Sprintf("%s_%s", meta.Scenario, uuid.NewString()[:8])
	meta.ID = runID
	meta.Timestamp = time.Now()
	meta.Bodies = len(final)

	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	bodiesData, err := json.MarshalIndent(final, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(runDir, "bodies_final.json"), bodiesData, 0644); err != nil {
		return "", err
	}

	if err := s.writeEnergy(runDir, energySteps, energy); err != nil {
		return "", err
	}

	return runID, nil
}

func (s *Store) writeEnergy(runDir string, steps []int, energy []float64) error {
	f, err := os.Create(filepath.Join(runDir, "energy.csv"))
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"step", "energy"}); err != nil {
		return err
	}
	for i := range steps {
		row := []string{
			strconv.Itoa(steps[i]),
			strconv.FormatFloat(energy[i], 'e', 12, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// List returns metadata for every run under the base directory, skipping
// entries it cannot parse.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadBodies reads back the final body set of a run.
func (s *Store) LoadBodies(runID string) ([]body.Body, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "bodies_final.json"))
	if err != nil {
		return nil, err
	}
	var bodies []body.Body
	if err := json.Unmarshal(data, &bodies); err != nil {
		return nil, err
	}
	return bodies, nil
}

// LoadEnergy reads back the recorded energy series of a run.
func (s *Store) LoadEnergy(runID string) ([]int, []float64, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "energy.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, err
	}

	var steps []int
	var energy []float64
	for i, rec := range records {
		if i == 0 || len(rec) < 2 {
			continue
		}
		step, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, nil, fmt.Errorf("row %d: %w", i, err)
		}
		e, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("row %d: %w", i, err)
		}
		steps = append(steps, step)
		energy = append(energy, e)
	}
	return steps, energy, nil
}
