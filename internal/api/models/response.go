package models

import (
	"der-feasibility/internal/finance"
	"der-feasibility/internal/sim"
	"der-feasibility/internal/sweep"
)

// MetricsResponse is the wire shape of finance.Metrics. PaybackYears is
// omitted entirely when the scenario never pays back, so no infinity
// sentinel leaks into JSON.
type MetricsResponse struct {
	AnnualCashFlow float64  `json:"annual_cash_flow"`
	PaysBack       bool     `json:"pays_back"`
	PaybackYears   *float64 `json:"payback_years,omitempty"`
	NPV            float64  `json:"npv"`
	IRR            float64  `json:"irr"`
	IRRConverged   bool     `json:"irr_converged"`
	ROI            float64  `json:"roi"`
}

func NewMetricsResponse(m finance.Metrics) MetricsResponse {
	resp := MetricsResponse{
		AnnualCashFlow: m.AnnualCashFlow,
		PaysBack:       m.PaysBack,
		NPV:            m.NPV,
		IRR:            m.IRR,
		IRRConverged:   m.IRRConverged,
		ROI:            m.ROI,
	}
	if m.PaysBack {
		years := m.PaybackYears
		resp.PaybackYears = &years
	}
	return resp
}

// CapexResponse returns the itemized cost breakdown.
type CapexResponse struct {
	Breakdown finance.CostBreakdown `json:"breakdown"`
}

// BatterySweepResponse returns ranked sizing results, best first.
type BatterySweepResponse struct {
	Results []SizingResult `json:"results"`
}

// SizingResult is one evaluated battery configuration.
type SizingResult struct {
	BatteryPowerKW   float64               `json:"battery_kw"`
	BatteryEnergyKWh float64               `json:"battery_kwh"`
	DurationHours    float64               `json:"duration_hours"`
	PowerFraction    float64               `json:"power_fraction"`
	NetCAPEX         float64               `json:"net_capex"`
	Metrics          MetricsResponse       `json:"metrics"`
	Breakdown        finance.CostBreakdown `json:"breakdown"`
}

func NewSizingResult(r sweep.SizingResult) SizingResult {
	return SizingResult{
		BatteryPowerKW:   r.BatteryPowerKW,
		BatteryEnergyKWh: r.BatteryEnergyKWh,
		DurationHours:    r.DurationHours,
		PowerFraction:    r.PowerFraction,
		NetCAPEX:         r.Breakdown.NetTotal,
		Metrics:          NewMetricsResponse(r.Metrics),
		Breakdown:        r.Breakdown,
	}
}

// PPACapexSweepResponse returns the best point of the rate/CAPEX grid.
type PPACapexSweepResponse struct {
	PPARateCentsPerKWh float64         `json:"ppa_rate_cents_per_kwh"`
	CapexMultiplier    float64         `json:"capex_multiplier"`
	NetCAPEX           float64         `json:"net_capex"`
	AnnualRevenue      float64         `json:"annual_revenue"`
	Metrics            MetricsResponse `json:"metrics"`
}

// ImprovementsResponse lists what-if adjustments in presentation order.
type ImprovementsResponse struct {
	Improvements []Improvement `json:"improvements"`
}

type Improvement struct {
	Name          string          `json:"name"`
	AnnualRevenue float64         `json:"annual_revenue"`
	NetCAPEX      float64         `json:"net_capex"`
	Metrics       MetricsResponse `json:"metrics"`
}

// SimulateResponse summarizes a simulated day.
type SimulateResponse struct {
	Scenario string `json:"scenario"`
	Policy   string `json:"policy"`

	TotalGenerationKWh float64 `json:"total_generation_kwh"`
	TotalLoadKWh       float64 `json:"total_load_kwh"`
	EnergyToHostsKWh   float64 `json:"energy_to_hosts_kwh"`
	GridImportKWh      float64 `json:"grid_import_kwh"`
	GridExportKWh      float64 `json:"grid_export_kwh"`
	CurtailedKWh       float64 `json:"curtailed_kwh"`

	PPARevenue  float64 `json:"ppa_revenue"`
	GridRevenue float64 `json:"grid_revenue"`
	ImportCost  float64 `json:"import_cost"`
	NetRevenue  float64 `json:"net_revenue"`

	AnnualizedNetRevenue float64 `json:"annualized_net_revenue"`
	FinalSOC             float64 `json:"final_soc"`

	Ledger []sim.LedgerRow `json:"ledger,omitempty"`
}

func NewSimulateResponse(res *sim.Result, includeLedger bool) SimulateResponse {
	resp := SimulateResponse{
		Scenario:             res.Scenario,
		Policy:               res.Policy,
		TotalGenerationKWh:   res.TotalGenerationKWh,
		TotalLoadKWh:         res.TotalLoadKWh,
		EnergyToHostsKWh:     res.EnergyToHostsKWh,
		GridImportKWh:        res.GridImportKWh,
		GridExportKWh:        res.GridExportKWh,
		CurtailedKWh:         res.CurtailedKWh,
		PPARevenue:           res.PPARevenue,
		GridRevenue:          res.GridRevenue,
		ImportCost:           res.ImportCost,
		NetRevenue:           res.NetRevenue,
		AnnualizedNetRevenue: res.AnnualizedNetRevenue(),
		FinalSOC:             res.FinalSOC,
	}
	if includeLedger {
		resp.Ledger = res.Ledger
	}
	return resp
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
