package models

import "der-feasibility/internal/scenario"

// CapexRequest represents the request body for a CAPEX computation.
type CapexRequest struct {
	SolarKW          float64 `json:"solar_kw" binding:"required"`
	BatteryPowerKW   float64 `json:"battery_kw"`
	BatteryEnergyKWh float64 `json:"battery_kwh"`
}

// MetricsRequest represents the request body for a financial-metrics
// computation. HorizonYears and DiscountRate default to 25 and 0.08.
type MetricsRequest struct {
	AnnualRevenue float64 `json:"annual_revenue" binding:"required"`
	AnnualOpex    float64 `json:"annual_opex"`
	NetCAPEX      float64 `json:"net_capex" binding:"required"`
	HorizonYears  int     `json:"horizon_years,omitempty"`
	DiscountRate  float64 `json:"discount_rate,omitempty"`
}

// BatterySweepRequest configures a battery-sizing grid search.
// Empty grids fall back to the standard durations and power fractions.
type BatterySweepRequest struct {
	SolarKW             float64   `json:"solar_kw" binding:"required"`
	PPARateCentsPerKWh  float64   `json:"ppa_rate_cents_per_kwh" binding:"required"`
	AnnualGenerationMWh float64   `json:"annual_generation_mwh" binding:"required"`
	DurationsHours      []float64 `json:"durations_hours,omitempty"`
	PowerFractions      []float64 `json:"power_fractions,omitempty"`
	Limit               int       `json:"limit,omitempty"` // 0 = all
}

// PPACapexSweepRequest configures the PPA-rate x CAPEX-multiplier search.
type PPACapexSweepRequest struct {
	BaseNetCAPEX        float64 `json:"base_net_capex" binding:"required"`
	AnnualOpex          float64 `json:"annual_opex"`
	AnnualGenerationMWh float64 `json:"annual_generation_mwh" binding:"required"`
}

// ImprovementsRequest configures the what-if improvement analysis.
type ImprovementsRequest struct {
	AnnualRevenue float64 `json:"annual_revenue" binding:"required"`
	AnnualOpex    float64 `json:"annual_opex"`
	NetCAPEX      float64 `json:"net_capex" binding:"required"`
}

// SimulateRequest runs the hourly balance engine. Either a built-in
// scenario name or an inline scenario config must be provided.
type SimulateRequest struct {
	Scenario      string           `json:"scenario,omitempty"`
	Config        *scenario.Config `json:"config,omitempty"`
	Policy        string           `json:"policy,omitempty"`
	IncludeLedger bool             `json:"include_ledger,omitempty"`
}
