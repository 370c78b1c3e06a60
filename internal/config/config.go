package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultSubstance = "water"
	DefaultPair      = "TV"
	DefaultTolerance = 1e-8
)

// Config describes one state-resolution request for the CLI: which
// substance, which property pair is fixed, the two target values in the
// order named by the pair tag, and the relative tolerance.
type Config struct {
	Substance string  `yaml:"substance"`
	Pair      string  `yaml:"pair"`
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Tolerance float64 `yaml:"tolerance"`
}

func DefaultConfig() *Config {
	return &Config{
		Substance: DefaultSubstance,
		Pair:      DefaultPair,
		X:         500.0,
		Y:         0.02,
		Tolerance: DefaultTolerance,
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
