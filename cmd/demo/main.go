package main

import (
	"flag"
	"fmt"

	"der-feasibility/internal/finance"
	"der-feasibility/internal/report"
	"der-feasibility/internal/scenario"
	"der-feasibility/internal/sim"
	"der-feasibility/internal/sweep"
)

// Demo:
// - Evaluate the optimized portfolio scenario end to end
// - Price the three sites, compute financial metrics, run a design day
// - Print the investor summary plus the first hours of the dispatch ledger
func main() {
	scen := flag.String("scenario", "optimized", "Built-in scenario name (optimized, original)")
	policyName := flag.String("policy", "", "Dispatch policy (default self-consumption)")
	flag.Parse()

	cfg, ok := scenario.ByName(*scen)
	if !ok {
		panic(fmt.Errorf("unknown scenario: %q", *scen))
	}

	var capex finance.CostBreakdown
	for _, s := range cfg.Sites {
		b, err := finance.ComputeCAPEX(s.SolarKW, s.BatteryPowerKW, s.BatteryEnergyKWh)
		if err != nil {
			panic(err)
		}
		capex.Add(b)
	}

	m := cfg.Metrics(capex.NetTotal)
	fmt.Print(report.ScenarioSummary(cfg, capex.NetTotal, m))
	fmt.Println()
	fmt.Print(report.CapexTable(capex))

	improvements := sweep.AnalyzeImprovements(cfg.Revenue.Total(), cfg.AnnualOpexUSD, capex.NetTotal, cfg.HorizonYears, cfg.DiscountRate)
	fmt.Println()
	fmt.Print(report.ImprovementsTable(improvements))

	pol, ok := sim.PolicyByName(*policyName)
	if !ok {
		panic(fmt.Errorf("unknown policy: %q", *policyName))
	}
	res, err := sim.New().Run(cfg, sim.SyntheticDay(cfg), pol)
	if err != nil {
		panic(err)
	}

	fmt.Printf("\nDesign day dispatch (%s, policy=%s):\n", res.Scenario, res.Policy)
	for i := 0; i < min(12, len(res.Ledger)); i++ {
		r := res.Ledger[i]
		fmt.Printf(
			"h=%02d lmp=%6.2f gen=%7.1f load=%7.1f action=%-11s p=%7.1f soc=%.3f->%.3f net=%8.2f cum=%8.2f\n",
			r.Hour,
			r.LMPUSDPerMWh,
			r.GenerationKW,
			r.LoadKW,
			string(r.Action),
			r.BatteryKW,
			r.SOCStart,
			r.SOCEnd,
			r.NetRevenue,
			r.CumNetRevenue,
		)
	}

	fmt.Printf("\nDone. Final SOC=%.3f  Net revenue/day=$%.2f\n", res.FinalSOC, res.NetRevenue)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
