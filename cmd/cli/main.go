package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"der-feasibility/internal/config"
	"der-feasibility/internal/data"
	"der-feasibility/internal/finance"
	"der-feasibility/internal/report"
	"der-feasibility/internal/scenario"
	"der-feasibility/internal/sim"
	"der-feasibility/internal/sweep"

	"github.com/lmittmann/tint"
)

var log = slog.New(tint.NewHandler(os.Stderr, nil))

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "capex":
		cmdCapex(os.Args[2:])
	case "metrics":
		cmdMetrics(os.Args[2:])
	case "sweep":
		cmdSweep(os.Args[2:])
	case "simulate":
		cmdSimulate(os.Args[2:])
	case "report":
		cmdReport(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli capex --solar-kw 1730 --battery-kw 865 --battery-kwh 433")
	fmt.Println("  cli metrics --revenue 477000 --opex 43000 --capex 4710145")
	fmt.Println("  cli sweep [--scenario optimized] [--mode ppa-capex|battery]")
	fmt.Println("  cli simulate --config examples/config.yaml --out results/dispatch.csv")
	fmt.Println("  cli report [--scenario optimized] [--html results/report.html]")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - metrics are evaluated over a 25-year horizon at an 8% discount rate by default")
	fmt.Println("  - sweep picks the PPA/CAPEX or battery sizing with the highest IRR")
}

func fatal(msg string, err error) {
	log.Error(msg, "error", err)
	os.Exit(1)
}

func cmdCapex(args []string) {
	fs := flag.NewFlagSet("capex", flag.ExitOnError)
	solarKW := fs.Float64("solar-kw", 0, "Solar PV capacity (kW DC)")
	battKW := fs.Float64("battery-kw", 0, "Battery power capacity (kW)")
	battKWh := fs.Float64("battery-kwh", 0, "Battery energy capacity (kWh)")
	_ = fs.Parse(args)

	b, err := finance.ComputeCAPEX(*solarKW, *battKW, *battKWh)
	if err != nil {
		fatal("capex failed", err)
	}
	fmt.Print(report.CapexTable(b))
}

func cmdMetrics(args []string) {
	fs := flag.NewFlagSet("metrics", flag.ExitOnError)
	revenue := fs.Float64("revenue", 0, "Annual revenue ($/yr)")
	opex := fs.Float64("opex", 0, "Annual operating cost ($/yr)")
	capex := fs.Float64("capex", 0, "Net capital cost ($)")
	years := fs.Int("years", finance.DefaultHorizonYears, "Analysis horizon (years)")
	rate := fs.Float64("rate", finance.DefaultDiscountRate, "Discount rate (fraction)")
	_ = fs.Parse(args)

	m := finance.ComputeMetrics(*revenue, *opex, *capex, *years, *rate)
	fmt.Print(report.MetricsBlock(m, *rate))
}

func cmdSweep(args []string) {
	fs := flag.NewFlagSet("sweep", flag.ExitOnError)
	scen := fs.String("scenario", "optimized", "Built-in scenario name")
	mode := fs.String("mode", "ppa-capex", "Sweep mode: ppa-capex or battery")
	limit := fs.Int("limit", 10, "Rows to print for battery sweeps")
	_ = fs.Parse(args)

	cfg, ok := scenario.ByName(*scen)
	if !ok {
		fatal("unknown scenario", fmt.Errorf("%q", *scen))
	}

	switch *mode {
	case "ppa-capex":
		grid := sweep.DefaultPPACapexGrid(scenario.OptimizedNetCAPEXUSD, cfg.AnnualOpexUSD, cfg.AnnualGenerationMWh)
		best, err := sweep.BestPPACapex(grid)
		if err != nil {
			fatal("sweep failed", err)
		}
		fmt.Printf("Best PPA rate:    %.2f cents/kWh\n", best.PPARateCentsPerKWh)
		fmt.Printf("Best net CAPEX:   $%.0f (x%.2f)\n", best.NetCAPEX, best.CapexMultiplier)
		fmt.Printf("IRR:              %.2f%%\n", best.Metrics.IRR*100)
		fmt.Printf("Payback:          %s\n", report.Payback(best.Metrics))
	case "battery":
		grid := sweep.DefaultBatterySizingGrid(cfg.TotalSolarKW(), cfg.PPARateCentsPerKWh, cfg.AnnualGenerationMWh)
		ranked, err := sweep.RankBatterySizings(grid)
		if err != nil {
			fatal("sweep failed", err)
		}
		if *limit > 0 && *limit < len(ranked) {
			ranked = ranked[:*limit]
		}
		fmt.Print(report.SizingTable(ranked))
	default:
		fatal("unknown sweep mode", fmt.Errorf("%q", *mode))
	}
}

func cmdSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	scen := fs.String("scenario", "optimized", "Built-in scenario name (ignored when --config is set)")
	outPath := fs.String("out", "results/dispatch.csv", "Output CSV path")
	_ = fs.Parse(args)

	cfg, hours, pol, err := loadSimInputs(*cfgPath, *scen)
	if err != nil {
		fatal("load failed", err)
	}

	res, err := sim.New().Run(cfg, hours, pol)
	if err != nil {
		fatal("simulation failed", err)
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		fatal("mkdir failed", err)
	}
	if err := sim.WriteLedgerCSV(*outPath, res.Ledger); err != nil {
		fatal("write failed", err)
	}

	fmt.Printf("Wrote %d rows to %s\n", len(res.Ledger), *outPath)
	fmt.Printf("Policy=%s Net revenue/day=$%.2f Annualized=$%.0f Final SOC=%.3f\n",
		pol.Name(), res.NetRevenue, res.AnnualizedNetRevenue(), res.FinalSOC)
}

func cmdReport(args []string) {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	scen := fs.String("scenario", "optimized", "Built-in scenario name (ignored when --config is set)")
	htmlPath := fs.String("html", "", "Optional: also write an HTML chart page")
	_ = fs.Parse(args)

	cfg, hours, pol, err := loadSimInputs(*cfgPath, *scen)
	if err != nil {
		fatal("load failed", err)
	}

	capex := portfolioCAPEX(cfg)
	m := cfg.Metrics(capex.NetTotal)

	fmt.Print(report.ScenarioSummary(cfg, capex.NetTotal, m))
	fmt.Println()
	fmt.Print(report.CapexTable(capex))

	improvements := sweep.AnalyzeImprovements(cfg.Revenue.Total(), cfg.AnnualOpexUSD, capex.NetTotal, cfg.HorizonYears, cfg.DiscountRate)
	fmt.Println()
	fmt.Print(report.ImprovementsTable(improvements))

	if *htmlPath != "" {
		res, err := sim.New().Run(cfg, hours, pol)
		if err != nil {
			fatal("simulation failed", err)
		}
		page, err := report.ScenarioPage(capex, m, improvements, res)
		if err != nil {
			fatal("chart render failed", err)
		}
		if err := os.MkdirAll(filepath.Dir(*htmlPath), 0o755); err != nil {
			fatal("mkdir failed", err)
		}
		if err := os.WriteFile(*htmlPath, page, 0o644); err != nil {
			fatal("write failed", err)
		}
		fmt.Printf("\nWrote chart page to %s\n", *htmlPath)
	}
}

// loadSimInputs resolves the scenario, hourly profile, and dispatch policy
// either from a YAML config file or from a built-in scenario name.
func loadSimInputs(cfgPath, scen string) (scenario.Config, []sim.Hour, sim.Policy, error) {
	if cfgPath == "" {
		cfg, ok := scenario.ByName(scen)
		if !ok {
			return scenario.Config{}, nil, nil, fmt.Errorf("unknown scenario: %q", scen)
		}
		pol, _ := sim.PolicyByName("")
		return cfg, sim.SyntheticDay(cfg), pol, nil
	}

	c, err := config.Load(cfgPath)
	if err != nil {
		return scenario.Config{}, nil, nil, err
	}
	pol, ok := sim.PolicyByName(c.Policy)
	if !ok {
		return scenario.Config{}, nil, nil, fmt.Errorf("unknown policy: %q", c.Policy)
	}

	hours := sim.SyntheticDay(c.Scenario)
	if c.ProfileFile != "" {
		hours, err = data.LoadHourlyJSON(c.ProfileFile)
		if err != nil {
			return scenario.Config{}, nil, nil, err
		}
	}
	return c.Scenario, hours, pol, nil
}

func portfolioCAPEX(cfg scenario.Config) finance.CostBreakdown {
	var total finance.CostBreakdown
	for _, s := range cfg.Sites {
		b, err := finance.ComputeCAPEX(s.SolarKW, s.BatteryPowerKW, s.BatteryEnergyKWh)
		if err != nil {
			fatal("capex failed", err)
		}
		total.Add(b)
	}
	return total
}
