package scenario

import (
	"errors"
	"fmt"

	"der-feasibility/internal/finance"
)

// HostType identifies the kind of on-site consumer behind a canopy.
// It selects the synthetic load shape used by the simulation.
type HostType string

const (
	HostRetail  HostType = "retail"
	HostCampus  HostType = "campus"
	HostAirport HostType = "airport"
)

// Site describes one canopy installation.
// Units: kW for power capacities, kWh for battery energy.
type Site struct {
	Name             string   `yaml:"name" json:"name"`
	Host             HostType `yaml:"host" json:"host"`
	SolarKW          float64  `yaml:"solar_kw" json:"solar_kw"`
	BatteryPowerKW   float64  `yaml:"battery_kw" json:"battery_kw"`
	BatteryEnergyKWh float64  `yaml:"battery_kwh" json:"battery_kwh"`
}

// Config is one what-if configuration of the portfolio. Construct it
// explicitly (or load from YAML) and pass by value; nothing mutates it
// after definition.
type Config struct {
	Name string `yaml:"name" json:"name"`

	PPARateCentsPerKWh  float64 `yaml:"ppa_rate_cents_per_kwh" json:"ppa_rate_cents_per_kwh"`
	AnnualGenerationMWh float64 `yaml:"annual_generation_mwh" json:"annual_generation_mwh"`
	AnnualOpexUSD       float64 `yaml:"annual_opex_usd" json:"annual_opex_usd"`

	Sites   []Site                 `yaml:"sites" json:"sites"`
	Revenue finance.RevenueStreams `yaml:"revenue" json:"revenue"`

	HorizonYears int     `yaml:"horizon_years" json:"horizon_years"`
	DiscountRate float64 `yaml:"discount_rate" json:"discount_rate"`

	// ExportCapFraction limits grid export to a fraction of the grid
	// link capacity (1.0 = unrestricted, behind-the-meter cases use 0.1).
	ExportCapFraction float64 `yaml:"export_cap_fraction" json:"export_cap_fraction"`
	GridLinkKW        float64 `yaml:"grid_link_kw" json:"grid_link_kw"`
}

func (c Config) TotalSolarKW() float64 {
	t := 0.0
	for _, s := range c.Sites {
		t += s.SolarKW
	}
	return t
}

func (c Config) TotalBatteryPowerKW() float64 {
	t := 0.0
	for _, s := range c.Sites {
		t += s.BatteryPowerKW
	}
	return t
}

func (c Config) TotalBatteryEnergyKWh() float64 {
	t := 0.0
	for _, s := range c.Sites {
		t += s.BatteryEnergyKWh
	}
	return t
}

// PPARevenueUSD is the annual contracted energy revenue implied by the PPA
// rate and annual generation: cents/kWh * 10 = $/MWh.
func (c Config) PPARevenueUSD() float64 {
	return c.PPARateCentsPerKWh * 10 * c.AnnualGenerationMWh
}

// Metrics evaluates the scenario's revenue table against its opex and the
// given net capital cost.
func (c Config) Metrics(netCAPEX float64) finance.Metrics {
	return finance.ComputeMetrics(c.Revenue.Total(), c.AnnualOpexUSD, netCAPEX, c.HorizonYears, c.DiscountRate)
}

func (c Config) Validate() error {
	if c.Name == "" {
		return errors.New("scenario name is required")
	}
	if len(c.Sites) == 0 {
		return errors.New("at least one site is required")
	}
	for _, s := range c.Sites {
		if s.Name == "" {
			return errors.New("site name is required")
		}
		if s.SolarKW <= 0 {
			return fmt.Errorf("site %s: solar_kw must be > 0", s.Name)
		}
		if s.BatteryPowerKW < 0 || s.BatteryEnergyKWh < 0 {
			return fmt.Errorf("site %s: battery capacities must be >= 0", s.Name)
		}
		switch s.Host {
		case HostRetail, HostCampus, HostAirport:
		default:
			return fmt.Errorf("site %s: unknown host type %q", s.Name, s.Host)
		}
	}
	if c.PPARateCentsPerKWh < 0 {
		return errors.New("ppa_rate_cents_per_kwh must be >= 0")
	}
	if c.AnnualGenerationMWh < 0 {
		return errors.New("annual_generation_mwh must be >= 0")
	}
	if c.AnnualOpexUSD < 0 {
		return errors.New("annual_opex_usd must be >= 0")
	}
	if c.HorizonYears <= 0 {
		return errors.New("horizon_years must be > 0")
	}
	if c.DiscountRate < 0 {
		return errors.New("discount_rate must be >= 0")
	}
	if c.ExportCapFraction < 0 || c.ExportCapFraction > 1 {
		return errors.New("export_cap_fraction must be in [0, 1]")
	}
	if c.GridLinkKW < 0 {
		return errors.New("grid_link_kw must be >= 0")
	}
	return c.Revenue.Validate()
}
