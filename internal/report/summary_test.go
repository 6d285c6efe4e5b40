package report

import (
	"strings"
	"testing"

	"der-feasibility/internal/finance"
	"der-feasibility/internal/scenario"
	"der-feasibility/internal/sweep"
)

func TestPaybackFormatting(t *testing.T) {
	m := finance.ComputeMetricsDefault(243000, 43000, 4710145)
	if got := Payback(m); got != "23.6 years" {
		t.Errorf("Payback = %q, want %q", got, "23.6 years")
	}

	never := finance.ComputeMetricsDefault(0, 10000, 100000)
	if got := Payback(never); got != "never" {
		t.Errorf("Payback = %q, want %q", got, "never")
	}
}

func TestMetricsBlockROIIsNotRescaled(t *testing.T) {
	// ROI is already a percentage; formatting must not multiply again.
	m := finance.ComputeMetricsDefault(477000, 43000, 4710145)
	out := MetricsBlock(m, finance.DefaultDiscountRate)

	if !strings.Contains(out, "Simple ROI:       130.4%") {
		t.Errorf("metrics block ROI line wrong:\n%s", out)
	}
	if strings.Contains(out, "13035") {
		t.Errorf("ROI rescaled by 100:\n%s", out)
	}
	if !strings.Contains(out, "NPV @ 8%:") {
		t.Errorf("metrics block missing NPV line:\n%s", out)
	}
}

func TestScenarioSummaryContent(t *testing.T) {
	cfg := scenario.Optimized()
	m := cfg.Metrics(scenario.OptimizedNetCAPEXUSD)
	out := ScenarioSummary(cfg, scenario.OptimizedNetCAPEXUSD, m)

	for _, want := range []string{
		"SCENARIO: optimized",
		"Base PPA: $243k",
		"Digital Twin Licensing: $75k",
		"Total: $477k/year",
		"Net CAPEX: $4.71M",
		"Investor Appeal:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q", want)
		}
	}
	if strings.Contains(out, "Inf") || strings.Contains(out, "inf years") {
		t.Error("summary leaked an infinity sentinel")
	}
}

func TestScenarioSummaryNeverPaysBack(t *testing.T) {
	cfg := scenario.Original()
	cfg.Revenue = finance.RevenueStreams{BasePPA: 10000}
	m := cfg.Metrics(scenario.OptimizedNetCAPEXUSD)

	out := ScenarioSummary(cfg, scenario.OptimizedNetCAPEXUSD, m)
	if !strings.Contains(out, "Payback: never") {
		t.Error("summary should print 'never' for non-positive cash flow")
	}
	if strings.Contains(out, "+Inf") || strings.Contains(out, "Inf years") {
		t.Error("summary leaked an infinity sentinel")
	}
}

func TestCapexTable(t *testing.T) {
	b, err := finance.ComputeCAPEX(550, 275, 138)
	if err != nil {
		t.Fatal(err)
	}
	out := CapexTable(b)
	for _, want := range []string{"Solar PV:", "Contingency (10%)", "Net Total:", "Cost per kW:"} {
		if !strings.Contains(out, want) {
			t.Errorf("capex table missing %q", want)
		}
	}

	var portfolio finance.CostBreakdown
	portfolio.Add(b)
	if strings.Contains(CapexTable(portfolio), "Cost per kW:") {
		t.Error("portfolio table should omit the per-kW line")
	}
}

func TestImprovementsTable(t *testing.T) {
	imps := sweep.AnalyzeImprovements(477000, 43000, scenario.OptimizedNetCAPEXUSD,
		finance.DefaultHorizonYears, finance.DefaultDiscountRate)
	out := ImprovementsTable(imps)

	lines := strings.Count(out, "\n")
	if lines != len(imps)+1 {
		t.Errorf("table has %d lines, want header plus %d rows", lines, len(imps))
	}
	if !strings.Contains(out, "Baseline") || !strings.Contains(out, "+50% Revenue") {
		t.Error("table missing named what-if rows")
	}
}

func TestSizingTable(t *testing.T) {
	ranked, err := sweep.RankBatterySizings(sweep.DefaultBatterySizingGrid(1730, 7.54, 3219))
	if err != nil {
		t.Fatal(err)
	}
	out := SizingTable(ranked[:3])
	if strings.Count(out, "\n") != 4 {
		t.Errorf("table rows = %d, want header plus 3", strings.Count(out, "\n"))
	}
	if !strings.HasPrefix(out, "rank") {
		t.Error("table missing header")
	}
}
