package sweep

import (
	"errors"
	"sort"

	"der-feasibility/internal/finance"
)

// BatterySizingGrid enumerates battery duration and power-fraction
// combinations for a fixed solar fleet, recomputing CAPEX for each combo.
type BatterySizingGrid struct {
	SolarKW            float64
	PPARateCentsPerKWh float64

	AnnualGenerationMWh float64

	DurationsHours []float64 // battery energy = power * duration
	PowerFractions []float64 // battery power = solar * fraction

	Assumptions  finance.CostAssumptions
	HorizonYears int
	DiscountRate float64
}

// DefaultBatterySizingGrid is the standard sizing sweep.
func DefaultBatterySizingGrid(solarKW, ppaRateCents, annualGenerationMWh float64) BatterySizingGrid {
	return BatterySizingGrid{
		SolarKW:             solarKW,
		PPARateCentsPerKWh:  ppaRateCents,
		AnnualGenerationMWh: annualGenerationMWh,
		DurationsHours:      []float64{0.5, 1.0, 1.5, 2.0, 2.5, 3.0},
		PowerFractions:      []float64{0.5, 0.75, 1.0, 1.25},
		Assumptions:         finance.DefaultCostAssumptions(),
		HorizonYears:        finance.DefaultHorizonYears,
		DiscountRate:        finance.DefaultDiscountRate,
	}
}

// SizingResult is one evaluated battery configuration.
type SizingResult struct {
	BatteryPowerKW   float64
	BatteryEnergyKWh float64
	DurationHours    float64
	PowerFraction    float64

	Breakdown finance.CostBreakdown
	Metrics   finance.Metrics
}

// RankBatterySizings evaluates every duration x power-fraction combination
// and returns all results sorted descending by IRR. The first element is
// the arg-max.
func RankBatterySizings(g BatterySizingGrid) ([]SizingResult, error) {
	if g.SolarKW <= 0 {
		return nil, errors.New("solar_kw must be > 0")
	}
	if len(g.DurationsHours) == 0 || len(g.PowerFractions) == 0 {
		return nil, errors.New("empty sizing grid")
	}

	revenue := g.PPARateCentsPerKWh * 10 * g.AnnualGenerationMWh
	annualOpex := g.SolarKW * g.Assumptions.OpexPerKWYear

	out := make([]SizingResult, 0, len(g.DurationsHours)*len(g.PowerFractions))
	for _, dur := range g.DurationsHours {
		for _, frac := range g.PowerFractions {
			battKW := g.SolarKW * frac
			battKWh := battKW * dur

			b, err := g.Assumptions.SiteCAPEX(g.SolarKW, battKW, battKWh)
			if err != nil {
				return nil, err
			}
			m := finance.ComputeMetrics(revenue, annualOpex, b.NetTotal, g.HorizonYears, g.DiscountRate)

			out = append(out, SizingResult{
				BatteryPowerKW:   battKW,
				BatteryEnergyKWh: battKWh,
				DurationHours:    dur,
				PowerFraction:    frac,
				Breakdown:        b,
				Metrics:          m,
			})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Metrics.IRR != out[j].Metrics.IRR {
			return out[i].Metrics.IRR > out[j].Metrics.IRR
		}
		return out[i].Breakdown.NetTotal < out[j].Breakdown.NetTotal
	})
	return out, nil
}

// BestBatterySizing is RankBatterySizings keeping only the arg-max.
func BestBatterySizing(g BatterySizingGrid) (SizingResult, error) {
	ranked, err := RankBatterySizings(g)
	if err != nil {
		return SizingResult{}, err
	}
	return ranked[0], nil
}
