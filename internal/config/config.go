package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/babubl/loan-restructure-pro/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Server ServerConfig `yaml:"server"`
	// Presets, when present, replaces the built-in loan-type catalog.
	Presets []model.LoanTypePreset `yaml:"presets"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		Server:  ServerConfig{Port: "8080"},
		Presets: model.DefaultPresets,
	}
}

// Load reads, defaults, and validates a YAML config file.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := &Config{}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if len(c.Presets) == 0 {
		c.Presets = model.DefaultPresets
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	seen := make(map[string]bool, len(c.Presets))
	for _, p := range c.Presets {
		if p.ID == "" {
			return errors.New("preset id is required")
		}
		if seen[p.ID] {
			return fmt.Errorf("duplicate preset id %q", p.ID)
		}
		seen[p.ID] = true
		if p.DefaultPrincipal <= 0 || p.DefaultTenure <= 0 {
			return fmt.Errorf("preset %q must have positive principal and tenure", p.ID)
		}
		if p.DefaultRate < 0 {
			return fmt.Errorf("preset %q must have a non-negative rate", p.ID)
		}
	}
	return nil
}

type portfolioFile struct {
	Label string          `yaml:"label"`
	Loans model.Portfolio `yaml:"loans"`
}

// LoadPortfolio reads a YAML portfolio file for the CLI: an optional label
// plus the loan list. The portfolio is validated before it reaches the
// engine.
func LoadPortfolio(path string) (string, model.Portfolio, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", nil, err
	}
	var pf portfolioFile
	if err := yaml.Unmarshal(raw, &pf); err != nil {
		return "", nil, fmt.Errorf("parse portfolio %s: %w", path, err)
	}
	if err := pf.Loans.Validate(); err != nil {
		return "", nil, fmt.Errorf("portfolio %s: %w", path, err)
	}
	return pf.Label, pf.Loans, nil
}
