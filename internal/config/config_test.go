package config

import (
	"os"
	"path/filepath"
	"testing"

	"der-feasibility/internal/scenario"
)

func writeConfig(t *testing.T, yaml string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadBaseScenarioOverlay(t *testing.T) {
	path := writeConfig(t, `
base_scenario: optimized
scenario:
  ppa_rate_cents_per_kwh: 8.2
policy: price-arbitrage
`)
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Scenario.PPARateCentsPerKWh != 8.2 {
		t.Errorf("PPA rate = %v, want override 8.2", c.Scenario.PPARateCentsPerKWh)
	}
	// Everything not overridden comes from the base.
	if got := c.Scenario.AnnualGenerationMWh; got != 3219 {
		t.Errorf("generation = %v, want base 3219", got)
	}
	if len(c.Scenario.Sites) != 3 {
		t.Errorf("sites = %d, want base 3", len(c.Scenario.Sites))
	}
	if c.Policy != "price-arbitrage" {
		t.Errorf("policy = %q", c.Policy)
	}
}

func TestLoadStandaloneScenario(t *testing.T) {
	path := writeConfig(t, `
scenario:
  name: single-site
  ppa_rate_cents_per_kwh: 9.0
  annual_generation_mwh: 900
  annual_opex_usd: 12000
  horizon_years: 25
  discount_rate: 0.08
  export_cap_fraction: 0.1
  grid_link_kw: 2000
  sites:
    - name: Depot
      host: retail
      solar_kw: 500
      battery_kw: 250
      battery_kwh: 125
  revenue:
    base_ppa: 81000
`)
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Scenario.Name != "single-site" || c.Scenario.Sites[0].SolarKW != 500 {
		t.Errorf("scenario = %+v", c.Scenario)
	}
	if c.Scenario.Revenue.Total() != 81000 {
		t.Errorf("revenue total = %v, want 81000", c.Scenario.Revenue.Total())
	}
}

func TestLoadRejectsUnknownBaseScenario(t *testing.T) {
	path := writeConfig(t, "base_scenario: aggressive\n")
	if _, err := Load(path); err == nil {
		t.Error("accepted unknown base scenario")
	}
}

func TestLoadRejectsUnknownPolicy(t *testing.T) {
	path := writeConfig(t, `
base_scenario: optimized
policy: oracle
`)
	if _, err := Load(path); err == nil {
		t.Error("accepted unknown policy")
	}
}

func TestLoadRejectsInvalidScenario(t *testing.T) {
	path := writeConfig(t, `
scenario:
  name: broken
`)
	if _, err := Load(path); err == nil {
		t.Error("accepted scenario with no sites")
	}
}

func TestLoadResolvesProfileFileRelativeToConfig(t *testing.T) {
	dir := t.TempDir()
	profile := filepath.Join(dir, "day.json")
	if err := os.WriteFile(profile, []byte(`{"hours": []}`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfgPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("base_scenario: optimized\nprofile_file: day.json\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.ProfileFile != profile {
		t.Errorf("ProfileFile = %q, want %q", c.ProfileFile, profile)
	}
}

func TestMergeScenario(t *testing.T) {
	base := scenario.Optimized()
	merged := MergeScenario(base, scenario.Config{PPARateCentsPerKWh: 8.0})

	if merged.PPARateCentsPerKWh != 8.0 {
		t.Errorf("PPA rate = %v, want 8.0", merged.PPARateCentsPerKWh)
	}
	if merged.Name != base.Name || merged.AnnualOpexUSD != base.AnnualOpexUSD {
		t.Error("non-overridden fields changed")
	}
	if merged.Revenue != base.Revenue {
		t.Error("zero-total revenue override should keep base revenue")
	}

	merged = MergeScenario(base, scenario.Config{Name: "variant", HorizonYears: 20})
	if merged.Name != "variant" || merged.HorizonYears != 20 {
		t.Errorf("merged = %q/%d", merged.Name, merged.HorizonYears)
	}
}
