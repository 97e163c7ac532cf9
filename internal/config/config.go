package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/solarsim/internal/gravity"
)

const (
	DefaultBodies     = 4
	DefaultSteps      = 10000
	DefaultDt         = 80000.0
	DefaultIntegrator = "rk4"
	DefaultOrbits     = "orbits.svg"
	DefaultTimeseries = "timeseries.svg"
)

// Config describes one simulation run. Zero-valued fields are filled from
// DefaultConfig on load.
type Config struct {
	Bodies        int     `yaml:"bodies"`
	Steps         int     `yaml:"steps"`
	Dt            float64 `yaml:"dt"`
	Integrator    string  `yaml:"integrator"`
	TrackCentroid bool    `yaml:"track_centroid"`
	G             float64 `yaml:"g"`
	Softening     float64 `yaml:"softening"`
	Orbits        string  `yaml:"orbits"`
	Timeseries    string  `yaml:"timeseries"`
}

func DefaultConfig() *Config {
	return &Config{
		Bodies:     DefaultBodies,
		Steps:      DefaultSteps,
		Dt:         DefaultDt,
		Integrator: DefaultIntegrator,
		G:          gravity.DefaultG,
		Softening:  gravity.DefaultSoftening,
		Orbits:     DefaultOrbits,
		Timeseries: DefaultTimeseries,
	}
}

// Field builds the force model described by this config.
func (c *Config) Field() *gravity.Field {
	return &gravity.Field{G: c.G, Softening: c.Softening}
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
