package particles

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/san-kum/gravsim/internal/body"
)

// Load reads a body set from a JSON file: an array of objects with mass
// and 3-element position/velocity arrays. Accelerations are derived
// state and never appear in the file.
func Load(path string) ([]body.Body, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading particles: %w", err)
	}

	var bodies []body.Body
	if err := json.Unmarshal(data, &bodies); err != nil {
		return nil, fmt.Errorf("parsing particles: %w", err)
	}
	return bodies, nil
}

// Save writes a body set in the same format Load reads.
func Save(path string, bodies []body.Body) error {
	data, err := json.MarshalIndent(bodies, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
