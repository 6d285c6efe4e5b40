package sim

// Action is a human-friendly battery operating mode for a timestep.
// Keep these values stable; they are intended for CSV output.
type Action string

const (
	ActionCharging    Action = "CHARGING"
	ActionIdle        Action = "IDLE"
	ActionDischarging Action = "DISCHARGING"
)

func ActionFromPowerKW(powerKW float64) Action {
	switch {
	case powerKW < 0:
		return ActionCharging
	case powerKW > 0:
		return ActionDischarging
	default:
		return ActionIdle
	}
}

// LedgerRow is one hour of balance output. This is the primary artifact
// for "what happened" in a simulated day.
type LedgerRow struct {
	Hour int `json:"hour"`

	LMPUSDPerMWh float64 `json:"lmp_usd_per_mwh"`

	GenerationKW float64 `json:"generation_kw"`
	LoadKW       float64 `json:"load_kw"`

	Action             Action  `json:"action"`
	RequestedBatteryKW float64 `json:"requested_battery_kw"`
	BatteryKW          float64 `json:"battery_kw"`
	SOCStart           float64 `json:"soc_start"`
	SOCEnd             float64 `json:"soc_end"`

	GridImportKW float64 `json:"grid_import_kw"`
	GridExportKW float64 `json:"grid_export_kw"`
	CurtailedKW  float64 `json:"curtailed_kw"`

	PPARevenue    float64 `json:"ppa_revenue"`
	GridRevenue   float64 `json:"grid_revenue"`
	ImportCost    float64 `json:"import_cost"`
	NetRevenue    float64 `json:"net_revenue"`
	CumNetRevenue float64 `json:"cum_net_revenue"`
}

// Result aggregates a simulated day.
type Result struct {
	Scenario string
	Policy   string

	Ledger []LedgerRow

	TotalGenerationKWh float64
	TotalLoadKWh       float64
	EnergyToHostsKWh   float64
	GridImportKWh      float64
	GridExportKWh      float64
	CurtailedKWh       float64

	PPARevenue  float64
	GridRevenue float64
	ImportCost  float64
	NetRevenue  float64

	FinalSOC float64
}

// AnnualizedNetRevenue scales the design-day net revenue to a year.
// A crude estimate; the scenario revenue tables remain the primary inputs
// to the financial metrics.
func (r *Result) AnnualizedNetRevenue() float64 {
	return r.NetRevenue * 365
}
