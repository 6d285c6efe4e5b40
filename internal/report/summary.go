package report

import (
	"fmt"
	"strings"

	"der-feasibility/internal/finance"
	"der-feasibility/internal/scenario"
	"der-feasibility/internal/sweep"
)

const rule = "================================================================================"

// Investor-appeal thresholds: commercial solar funds typically want 8%,
// infrastructure/ESG capital accepts 6%.
const (
	commercialIRRThreshold = 0.08
	infraIRRThreshold      = 0.06
)

// Payback formats a payback period without leaking infinity sentinels.
func Payback(m finance.Metrics) string {
	if !m.PaysBack {
		return "never"
	}
	return fmt.Sprintf("%.1f years", m.PaybackYears)
}

// ScenarioSummary renders the full console summary for one scenario:
// revenue breakdown, financial metrics, and investor-appeal verdicts.
func ScenarioSummary(cfg scenario.Config, netCAPEX float64, m finance.Metrics) string {
	var b strings.Builder
	rev := cfg.Revenue

	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "SCENARIO: %s\n", cfg.Name)
	fmt.Fprintln(&b, rule)

	fmt.Fprintln(&b, "\nRevenue Breakdown:")
	fmt.Fprintf(&b, "  Base PPA: $%.0fk\n", rev.BasePPA/1e3)
	fmt.Fprintf(&b, "  Platform Fees: $%.0fk\n", rev.PlatformFees/1e3)
	fmt.Fprintf(&b, "  Grid Services: $%.0fk (battery-based + demand response)\n", rev.GridServices/1e3)
	fmt.Fprintf(&b, "  EV Charging: $%.0fk\n", rev.EVCharging/1e3)
	fmt.Fprintf(&b, "  REC Sales: $%.0fk\n", rev.RECSales/1e3)
	fmt.Fprintf(&b, "  Digital Twin Licensing: $%.0fk\n", rev.DigitalTwinLicensing/1e3)
	fmt.Fprintf(&b, "  Total: $%.0fk/year\n", rev.Total()/1e3)

	fmt.Fprintln(&b, "\nFinancial Metrics:")
	fmt.Fprintf(&b, "  Net CAPEX: $%.2fM\n", netCAPEX/1e6)
	fmt.Fprintf(&b, "  Annual Revenue: $%.0fk\n", rev.Total()/1e3)
	fmt.Fprintf(&b, "  Annual OPEX: $%.0fk\n", cfg.AnnualOpexUSD/1e3)
	fmt.Fprintf(&b, "  Annual Cash Flow: $%.0fk\n", m.AnnualCashFlow/1e3)
	fmt.Fprintf(&b, "  IRR: %.1f%%%s\n", m.IRR*100, convergenceNote(m))
	fmt.Fprintf(&b, "  Payback: %s\n", Payback(m))
	fmt.Fprintf(&b, "  NPV: $%.2fM\n", m.NPV/1e6)
	fmt.Fprintf(&b, "  ROI: %.1f%%\n", m.ROI)

	fmt.Fprintln(&b, "\nInvestor Appeal:")
	if m.IRR >= commercialIRRThreshold {
		fmt.Fprintf(&b, "  Commercial Solar Investors: YES (%.1f%% >= 8%%)\n", m.IRR*100)
	} else {
		fmt.Fprintf(&b, "  Commercial Solar Investors: BORDERLINE (%.1f%% < 8%%)\n", m.IRR*100)
	}
	if m.IRR >= infraIRRThreshold {
		fmt.Fprintf(&b, "  Infrastructure/ESG Investors: YES (%.1f%% acceptable)\n", m.IRR*100)
	} else {
		fmt.Fprintf(&b, "  Infrastructure/ESG Investors: BORDERLINE (%.1f%% below typical threshold)\n", m.IRR*100)
	}

	fmt.Fprintln(&b, "\n"+rule)
	return b.String()
}

// MetricsBlock renders the standalone metrics output used by the CLI.
// Metrics.ROI is already a percentage and is printed as-is.
func MetricsBlock(m finance.Metrics, discountRate float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Annual cash flow: $%.0f\n", m.AnnualCashFlow)
	fmt.Fprintf(&b, "Payback:          %s\n", Payback(m))
	fmt.Fprintf(&b, "NPV @ %.0f%%:        $%.0f\n", discountRate*100, m.NPV)
	fmt.Fprintf(&b, "IRR:              %.2f%%%s\n", m.IRR*100, convergenceNote(m))
	fmt.Fprintf(&b, "Simple ROI:       %.1f%%\n", m.ROI)
	return b.String()
}

func convergenceNote(m finance.Metrics) string {
	if m.IRRConverged {
		return ""
	}
	return " (bisection did not converge)"
}

// CapexTable renders the itemized CAPEX breakdown.
func CapexTable(b finance.CostBreakdown) string {
	var s strings.Builder
	fmt.Fprintln(&s, "CAPEX Breakdown:")
	fmt.Fprintf(&s, "  Solar PV:          $%12.0f\n", b.SolarPV)
	fmt.Fprintf(&s, "  Battery (power):   $%12.0f\n", b.BatteryPower)
	fmt.Fprintf(&s, "  Battery (energy):  $%12.0f\n", b.BatteryEnergy)
	fmt.Fprintf(&s, "  Inverter:          $%12.0f\n", b.Inverter)
	fmt.Fprintf(&s, "  Electrical:        $%12.0f\n", b.Electrical)
	fmt.Fprintf(&s, "  Installation:      $%12.0f\n", b.Installation)
	fmt.Fprintf(&s, "  Engineering:       $%12.0f\n", b.Engineering)
	fmt.Fprintf(&s, "  Subtotal:          $%12.0f\n", b.Subtotal)
	fmt.Fprintf(&s, "  Contingency (10%%): $%12.0f\n", b.Contingency)
	fmt.Fprintf(&s, "  Gross Total:       $%12.0f\n", b.GrossTotal)
	fmt.Fprintf(&s, "  ITC Credit:        $%12.0f\n", b.ITCCredit)
	fmt.Fprintf(&s, "  Net Total:         $%12.0f\n", b.NetTotal)
	if b.CostPerKW > 0 {
		fmt.Fprintf(&s, "  Cost per kW:       $%12.0f\n", b.CostPerKW)
	}
	fmt.Fprintf(&s, "  Annual OPEX:       $%12.0f/year\n", b.AnnualOpex)
	return s.String()
}

// ImprovementsTable renders the what-if analysis as a fixed-width table.
func ImprovementsTable(improvements []sweep.Improvement) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-28s %-10s %-12s %-12s %-10s\n", "scenario", "irr", "payback", "npv", "cashflow")
	for _, imp := range improvements {
		fmt.Fprintf(&b, "%-28s %-10s %-12s %-12s %-10s\n",
			imp.Name,
			fmt.Sprintf("%.1f%%", imp.Metrics.IRR*100),
			Payback(imp.Metrics),
			fmt.Sprintf("$%.2fM", imp.Metrics.NPV/1e6),
			fmt.Sprintf("$%.0fk", imp.Metrics.AnnualCashFlow/1e3),
		)
	}
	return b.String()
}

// SizingTable renders ranked battery sizing results.
func SizingTable(results []sweep.SizingResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-4s %-10s %-10s %-8s %-8s %-10s %-12s\n",
		"rank", "power_kw", "energy_kwh", "dur_h", "frac", "irr", "net_capex")
	for i, r := range results {
		fmt.Fprintf(&b, "%-4d %-10.0f %-10.0f %-8.1f %-8.2f %-10s %-12s\n",
			i+1,
			r.BatteryPowerKW,
			r.BatteryEnergyKWh,
			r.DurationHours,
			r.PowerFraction,
			fmt.Sprintf("%.2f%%", r.Metrics.IRR*100),
			fmt.Sprintf("$%.2fM", r.Breakdown.NetTotal/1e6),
		)
	}
	return b.String()
}
