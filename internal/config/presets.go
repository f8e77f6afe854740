package config

import (
	"math"
	"sort"
)

var Presets = map[string]*Config{
	"traveling": {
		Magnitude: 1, Phase: 0, Beta: 2 * math.Pi, Omega: 2 * math.Pi,
		MaxTime: 10, MaxSpace: 2,
	},
	"standing": {
		Magnitude: 2, Phase: 0, Beta: 0, Omega: 1,
		MaxTime: 2 * math.Pi, MaxSpace: 1,
	},
	"unit_wavelength": {
		Magnitude: 1, Phase: 0, Beta: 2 * math.Pi, Omega: 2 * math.Pi,
		MaxTime: 10, MaxSpace: 1,
	},
	"reverse": {
		Magnitude: 1, Phase: math.Pi / 4, Beta: -2 * math.Pi, Omega: 2 * math.Pi,
		MaxTime: 5, MaxSpace: 1,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
