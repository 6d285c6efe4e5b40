package sweep

import "der-feasibility/internal/finance"

// Improvement is one named what-if adjustment against a baseline.
type Improvement struct {
	Name          string
	AnnualRevenue float64
	NetCAPEX      float64
	Metrics       finance.Metrics
}

// batteryCapexShare is the approximate share of CAPEX attributable to the
// battery system in the baseline cost table, used by the battery what-ifs.
const batteryCapexShare = 0.40

// gridServicesUpliftUSD is the incremental ancillary-services revenue
// assumed by the grid-services what-if.
const gridServicesUpliftUSD = 50_000

// AnalyzeImprovements evaluates the standard set of what-if adjustments
// (revenue uplifts, CAPEX reductions, battery cost and sizing changes,
// PPA repricing, grid services, and stacked cases) against a baseline.
// Results are returned in presentation order.
func AnalyzeImprovements(baseRevenue, baseOpex, baseNetCAPEX float64, horizonYears int, discountRate float64) []Improvement {
	eval := func(name string, revenue, capex float64) Improvement {
		return Improvement{
			Name:          name,
			AnnualRevenue: revenue,
			NetCAPEX:      capex,
			Metrics:       finance.ComputeMetrics(revenue, baseOpex, capex, horizonYears, discountRate),
		}
	}

	// Battery cost drop halves the battery share; sizing optimization
	// (2h down to 1h duration) trims about 20% of it.
	batterySavings := baseNetCAPEX * batteryCapexShare * 0.50
	sizingSavings := baseNetCAPEX * batteryCapexShare * 0.20

	return []Improvement{
		eval("Baseline", baseRevenue, baseNetCAPEX),
		eval("+20% Revenue", baseRevenue*1.20, baseNetCAPEX),
		eval("+50% Revenue", baseRevenue*1.50, baseNetCAPEX),
		eval("-20% CAPEX", baseRevenue, baseNetCAPEX*0.80),
		eval("-30% CAPEX", baseRevenue, baseNetCAPEX*0.70),
		eval("Battery Cost -50%", baseRevenue, baseNetCAPEX-batterySavings),
		eval("Revenue +20% & CAPEX -20%", baseRevenue*1.20, baseNetCAPEX*0.80),
		eval("PPA 12 cents/kWh", baseRevenue*(12.0/9.0), baseNetCAPEX),
		eval("+Grid Services", baseRevenue+gridServicesUpliftUSD, baseNetCAPEX),
		eval("Optimize Battery", baseRevenue, baseNetCAPEX-sizingSavings),
		eval("Best Case", baseRevenue*1.50, baseNetCAPEX*0.70),
	}
}

// Viable filters improvements meeting a target IRR.
func Viable(improvements []Improvement, targetIRR float64) []Improvement {
	out := make([]Improvement, 0, len(improvements))
	for _, imp := range improvements {
		if imp.Metrics.IRR >= targetIRR {
			out = append(out, imp)
		}
	}
	return out
}
