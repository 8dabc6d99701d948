package config

import "sort"

var presets = map[string]*Config{
	"earthmoon": {
		Scenario: "earthmoon", Output: DefaultOutput,
		Dt: 1.0e3, Steps: 2500, Softening: 1.0e3, PlotInterval: 25, Bodies: 2,
	},
	"cluster": {
		Scenario: "cluster", Output: DefaultOutput,
		Dt: 1.0e3, Steps: 1000, Softening: 1.0e3, PlotInterval: 10, Bodies: 256,
	},
	"collision": {
		Scenario: "collision", Output: DefaultOutput,
		Dt: 1.0e3, Steps: 2000, Softening: 1.0e3, PlotInterval: 10, Bodies: 512,
	},
	"disk": {
		Scenario: "disk", Output: DefaultOutput,
		Dt: 5.0e2, Steps: 4000, Softening: 5.0e2, PlotInterval: 20, Bodies: 512,
	},
}

// GetPreset returns a copy of the named preset, or nil when unknown.
func GetPreset(name string) *Config {
	p, ok := presets[name]
	if !ok {
		return nil
	}
	c := *p
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
