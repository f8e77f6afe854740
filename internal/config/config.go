package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/phasorsim/internal/phasor"
)

const (
	DefaultMagnitude = 1.0
	DefaultPhase     = 0.0
	DefaultBeta      = 2 * math.Pi
	DefaultOmega     = 2 * math.Pi
	DefaultMaxTime   = phasor.DefaultMaxTime
	DefaultMaxSpace  = phasor.DefaultMaxSpace
)

type Config struct {
	Magnitude   float64 `yaml:"magnitude"`
	Phase       float64 `yaml:"phase"`
	Beta        float64 `yaml:"beta"`
	Omega       float64 `yaml:"omega"`
	MaxTime     float64 `yaml:"max_time"`
	MaxSpace    float64 `yaml:"max_space"`
	CurrentTime float64 `yaml:"current_time"`
	CurrentLoc  float64 `yaml:"current_loc"`
}

func DefaultConfig() *Config {
	return &Config{
		Magnitude: DefaultMagnitude,
		Phase:     DefaultPhase,
		Beta:      DefaultBeta,
		Omega:     DefaultOmega,
		MaxTime:   DefaultMaxTime,
		MaxSpace:  DefaultMaxSpace,
	}
}

// Load reads a YAML file on top of base, or on top of DefaultConfig when
// base is nil. Keys missing from the file keep the base value.
func Load(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if base != nil {
		*cfg = *base
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
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

// NewSignal builds a Signal from the parameters and places its cursor.
func (c *Config) NewSignal() (*phasor.Signal, error) {
	sig, err := phasor.New(c.Magnitude, c.Phase, c.Beta, c.Omega,
		phasor.WithMaxTime(c.MaxTime),
		phasor.WithMaxSpace(c.MaxSpace),
	)
	if err != nil {
		return nil, err
	}
	if err := sig.SetCurrentTime(c.CurrentTime); err != nil {
		return nil, err
	}
	if err := sig.SetCurrentLoc(c.CurrentLoc); err != nil {
		return nil, err
	}
	return sig, nil
}
