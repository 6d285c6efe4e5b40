package sim

import (
	"fmt"

	"der-feasibility/internal/scenario"
)

// Default aggregate battery round-trip characteristics and SOC window.
const (
	defaultChargeEff    = 0.95
	defaultDischargeEff = 0.95
	defaultMinSOC       = 0.0
	defaultMaxSOC       = 1.0
)

type Engine struct{}

func New() *Engine { return &Engine{} }

// Run simulates one day of hourly energy balance for a scenario: solar
// serves host load first, the policy dispatches the aggregate battery,
// surplus exports up to the scenario's cap, and any residual deficit
// imports from the grid (host load is always served).
func (e *Engine) Run(cfg scenario.Config, hours []Hour, pol Policy) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("scenario invalid: %w", err)
	}
	if len(hours) == 0 {
		return nil, fmt.Errorf("no hours")
	}
	if pol == nil {
		return nil, fmt.Errorf("policy is nil")
	}

	var batt *Battery
	if cfg.TotalBatteryEnergyKWh() > 0 {
		var err error
		batt, err = NewBattery(BatteryParams{
			EnergyCapacityKWh:   cfg.TotalBatteryEnergyKWh(),
			PowerCapacityKW:     cfg.TotalBatteryPowerKW(),
			ChargeEfficiency:    defaultChargeEff,
			DischargeEfficiency: defaultDischargeEff,
			MinSOC:              defaultMinSOC,
			MaxSOC:              defaultMaxSOC,
		}, defaultMinSOC)
		if err != nil {
			return nil, fmt.Errorf("battery config invalid: %w", err)
		}
	}

	exportLimitKW := cfg.ExportCapFraction * cfg.GridLinkKW
	ppaUSDPerKWh := cfg.PPARateCentsPerKWh / 100

	res := &Result{
		Scenario: cfg.Name,
		Policy:   pol.Name(),
		Ledger:   make([]LedgerRow, 0, len(hours)),
	}
	cum := 0.0

	for _, h := range hours {
		const dtH = 1.0
		surplus := h.GenerationKW - h.LoadKW

		req := pol.Decide(Context{
			Hour:         h.Hour,
			SurplusKW:    surplus,
			LMPUSDPerMWh: h.LMPUSDPerMWh,
			Battery:      batt,
		})

		var step StepResult
		if batt != nil {
			var err error
			step, err = batt.Apply(req, dtH)
			if err != nil {
				return nil, fmt.Errorf("hour %d apply dispatch: %w", h.Hour, err)
			}
		}

		supplyKW := h.GenerationKW + step.EnergyToBusKWh/dtH
		drawKW := h.LoadKW + step.EnergyFromBusKWh/dtH

		servedKW := h.LoadKW
		if supplyKW < servedKW {
			servedKW = supplyKW
		}

		netKW := supplyKW - drawKW
		var importKW, exportKW, curtailedKW float64
		if netKW > 0 {
			exportKW = netKW
			if exportKW > exportLimitKW {
				curtailedKW = exportKW - exportLimitKW
				exportKW = exportLimitKW
			}
		} else if netKW < 0 {
			importKW = -netKW
		}

		lmpUSDPerKWh := h.LMPUSDPerMWh / 1000
		ppaRevenue := servedKW * dtH * ppaUSDPerKWh
		gridRevenue := exportKW * dtH * lmpUSDPerKWh
		importCost := importKW * dtH * lmpUSDPerKWh
		net := ppaRevenue + gridRevenue - importCost
		cum += net

		res.Ledger = append(res.Ledger, LedgerRow{
			Hour:               h.Hour,
			LMPUSDPerMWh:       h.LMPUSDPerMWh,
			GenerationKW:       h.GenerationKW,
			LoadKW:             h.LoadKW,
			Action:             ActionFromPowerKW(step.PowerKW),
			RequestedBatteryKW: req,
			BatteryKW:          step.PowerKW,
			SOCStart:           step.SOCStart,
			SOCEnd:             step.SOCEnd,
			GridImportKW:       importKW,
			GridExportKW:       exportKW,
			CurtailedKW:        curtailedKW,
			PPARevenue:         ppaRevenue,
			GridRevenue:        gridRevenue,
			ImportCost:         importCost,
			NetRevenue:         net,
			CumNetRevenue:      cum,
		})

		res.TotalGenerationKWh += h.GenerationKW * dtH
		res.TotalLoadKWh += h.LoadKW * dtH
		res.EnergyToHostsKWh += servedKW * dtH
		res.GridImportKWh += importKW * dtH
		res.GridExportKWh += exportKW * dtH
		res.CurtailedKWh += curtailedKW * dtH
		res.PPARevenue += ppaRevenue
		res.GridRevenue += gridRevenue
		res.ImportCost += importCost
	}

	res.NetRevenue = res.PPARevenue + res.GridRevenue - res.ImportCost
	if batt != nil {
		res.FinalSOC = batt.SOC
	}
	return res, nil
}
