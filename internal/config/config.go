package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt           = 1.0e3
	DefaultSteps        = 1000
	DefaultSoftening    = 1.0e3
	DefaultPlotInterval = 10
	DefaultBodies       = 256
	DefaultOutput       = "output"
)

// Config is the user-facing run configuration. The core never validates
// these values; Validate is called at the CLI boundary before anything
// is handed to the simulation loop.
type Config struct {
	Scenario     string  `yaml:"scenario"`      // generator used when no input file is given
	Input        string  `yaml:"input"`         // particle JSON file, overrides Scenario
	Output       string  `yaml:"output"`        // directory for rendered frames
	Dt           float64 `yaml:"dt"`            // step length, seconds
	Steps        int     `yaml:"steps"`         // total step count
	Softening    float64 `yaml:"softening"`     // force softening length, meters
	PlotInterval int     `yaml:"plot_interval"` // steps between snapshots
	Bodies       int     `yaml:"bodies"`        // generator body count
	Seed         int64   `yaml:"seed"`          // generator seed
}

func DefaultConfig() *Config {
	return &Config{
		Scenario:     "cluster",
		Output:       DefaultOutput,
		Dt:           DefaultDt,
		Steps:        DefaultSteps,
		Softening:    DefaultSoftening,
		PlotInterval: DefaultPlotInterval,
		Bodies:       DefaultBodies,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate enforces the invariants the core assumes but never checks.
func (c *Config) Validate() error {
	if c.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %g", c.Dt)
	}
	if c.Steps < 0 {
		return fmt.Errorf("steps must be non-negative, got %d", c.Steps)
	}
	if c.Softening <= 0 {
		return fmt.Errorf("softening must be positive, got %g", c.Softening)
	}
	if c.PlotInterval <= 0 {
		return fmt.Errorf("plot interval must be positive, got %d", c.PlotInterval)
	}
	if c.Input == "" && c.Bodies <= 0 {
		return fmt.Errorf("bodies must be positive when generating initial conditions, got %d", c.Bodies)
	}
	return nil
}
