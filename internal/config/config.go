package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/thermdecay/internal/cooling"
)

// Config is the content of a parameter file. Scenarios, when present,
// replace the built-in presets for the scenario rotation.
type Config struct {
	cooling.Params `yaml:",inline"`
	Scenarios      []Scenario `yaml:"scenarios,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{Params: Presets[0].Params}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
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

func (c *Config) Validate() error {
	if err := c.Params.Validate(); err != nil {
		return err
	}
	for i, s := range c.Scenarios {
		if s.Name == "" {
			return fmt.Errorf("scenario %d has no name", i)
		}
		if err := s.Params.Validate(); err != nil {
			return fmt.Errorf("scenario %q: %w", s.Name, err)
		}
	}
	return nil
}

// ScenarioList returns the scenarios to rotate through.
func (c *Config) ScenarioList() []Scenario {
	if len(c.Scenarios) > 0 {
		return c.Scenarios
	}
	return Presets
}
