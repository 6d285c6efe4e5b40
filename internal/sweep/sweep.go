package sweep

import (
	"errors"

	"der-feasibility/internal/finance"
)

// PPACapexGrid defines an exhaustive search over PPA rate and CAPEX
// multiplier combinations. The grid is small (tens of points per axis);
// every combination is evaluated and the maximum-IRR result kept.
type PPACapexGrid struct {
	PPAMinCents  float64 // market-competitive band, cents/kWh
	PPAMaxCents  float64
	PPAStepCents float64

	CapexMultMin  float64 // multiplier on BaseNetCAPEX
	CapexMultMax  float64
	CapexMultStep float64

	BaseNetCAPEX        float64
	AnnualOpex          float64
	AnnualGenerationMWh float64

	HorizonYears int
	DiscountRate float64
}

// DefaultPPACapexGrid is the standard search: PPA within the 7.0-8.0
// cents/kWh market band, CAPEX between 30% and 100% of base.
func DefaultPPACapexGrid(baseNetCAPEX, annualOpex, annualGenerationMWh float64) PPACapexGrid {
	return PPACapexGrid{
		PPAMinCents:         7.0,
		PPAMaxCents:         8.0,
		PPAStepCents:        0.02,
		CapexMultMin:        0.3,
		CapexMultMax:        1.0,
		CapexMultStep:       0.01,
		BaseNetCAPEX:        baseNetCAPEX,
		AnnualOpex:          annualOpex,
		AnnualGenerationMWh: annualGenerationMWh,
		HorizonYears:        finance.DefaultHorizonYears,
		DiscountRate:        finance.DefaultDiscountRate,
	}
}

// PPACapexResult is one evaluated grid point.
type PPACapexResult struct {
	PPARateCentsPerKWh float64
	CapexMultiplier    float64
	NetCAPEX           float64
	AnnualRevenue      float64
	Metrics            finance.Metrics
}

// BestPPACapex enumerates the Cartesian product of PPA rates and CAPEX
// multipliers, preferring higher IRR and breaking IRR ties toward lower
// CAPEX (cost minimization).
func BestPPACapex(g PPACapexGrid) (PPACapexResult, error) {
	if g.PPAStepCents <= 0 || g.CapexMultStep <= 0 {
		return PPACapexResult{}, errors.New("grid steps must be > 0")
	}
	if g.PPAMinCents > g.PPAMaxCents || g.CapexMultMin > g.CapexMultMax {
		return PPACapexResult{}, errors.New("grid bounds are inverted")
	}

	var best PPACapexResult
	found := false

	for ppa := g.PPAMinCents; ppa <= g.PPAMaxCents+1e-9; ppa += g.PPAStepCents {
		for mult := g.CapexMultMin; mult <= g.CapexMultMax+1e-9; mult += g.CapexMultStep {
			netCAPEX := g.BaseNetCAPEX * mult
			revenue := ppa * 10 * g.AnnualGenerationMWh
			m := finance.ComputeMetrics(revenue, g.AnnualOpex, netCAPEX, g.HorizonYears, g.DiscountRate)

			r := PPACapexResult{
				PPARateCentsPerKWh: ppa,
				CapexMultiplier:    mult,
				NetCAPEX:           netCAPEX,
				AnnualRevenue:      revenue,
				Metrics:            m,
			}
			if !found || better(r, best) {
				best = r
				found = true
			}
		}
	}
	return best, nil
}

func better(a, b PPACapexResult) bool {
	if a.Metrics.IRR != b.Metrics.IRR {
		return a.Metrics.IRR > b.Metrics.IRR
	}
	return a.NetCAPEX < b.NetCAPEX
}
