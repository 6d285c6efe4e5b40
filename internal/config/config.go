package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"der-feasibility/internal/scenario"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: start from a built-in scenario ("optimized", "original")
	// and overlay any non-zero fields from Scenario on top of it.
	BaseScenario string          `yaml:"base_scenario"`
	Scenario     scenario.Config `yaml:"scenario"`

	// Policy selects the battery dispatch policy for simulation
	// ("self-consumption" when empty, or "price-arbitrage").
	Policy string `yaml:"policy"`

	// ProfileFile points at an hourly generation/load/price JSON series
	// to use instead of the built-in synthetic design day.
	ProfileFile string `yaml:"profile_file"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}

	if c.BaseScenario != "" {
		base, ok := scenario.ByName(c.BaseScenario)
		if !ok {
			return nil, fmt.Errorf("unknown base scenario: %q", c.BaseScenario)
		}
		c.Scenario = MergeScenario(base, c.Scenario)
	}

	if c.ProfileFile != "" && !filepath.IsAbs(c.ProfileFile) {
		// Prefer interpreting relative paths as relative to the config file
		// directory, but fall back to the provided path (relative to cwd)
		// if that doesn't exist.
		cand := filepath.Join(filepath.Dir(path), c.ProfileFile)
		if _, err := os.Stat(cand); err == nil {
			c.ProfileFile = cand
		}
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if err := c.Scenario.Validate(); err != nil {
		return fmt.Errorf("scenario config invalid: %w", err)
	}
	if c.Policy != "" {
		if _, ok := policyNames[c.Policy]; !ok {
			return fmt.Errorf("unknown policy: %q", c.Policy)
		}
	}
	return nil
}

var policyNames = map[string]struct{}{
	"self-consumption": {},
	"price-arbitrage":  {},
}

// MergeScenario overlays non-zero fields from override onto base.
// This is used when a config file starts from a built-in scenario and
// adjusts only a few parameters.
func MergeScenario(base, override scenario.Config) scenario.Config {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.PPARateCentsPerKWh != 0 {
		out.PPARateCentsPerKWh = override.PPARateCentsPerKWh
	}
	if override.AnnualGenerationMWh != 0 {
		out.AnnualGenerationMWh = override.AnnualGenerationMWh
	}
	if override.AnnualOpexUSD != 0 {
		out.AnnualOpexUSD = override.AnnualOpexUSD
	}
	if len(override.Sites) != 0 {
		out.Sites = override.Sites
	}
	if override.Revenue.Total() != 0 {
		out.Revenue = override.Revenue
	}
	if override.HorizonYears != 0 {
		out.HorizonYears = override.HorizonYears
	}
	if override.DiscountRate != 0 {
		out.DiscountRate = override.DiscountRate
	}
	if override.ExportCapFraction != 0 {
		out.ExportCapFraction = override.ExportCapFraction
	}
	if override.GridLinkKW != 0 {
		out.GridLinkKW = override.GridLinkKW
	}
	return out
}
