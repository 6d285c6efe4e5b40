package finance

import "math"

// Default evaluation parameters for project-finance metrics.
const (
	DefaultHorizonYears = 25
	DefaultDiscountRate = 0.08
)

// IRR bisection bounds. These are fixed for output compatibility with the
// feasibility spreadsheets this tool replaces: search interval [0, 50%],
// 100 iterations, absolute residual tolerance of $0.001 on NPV.
const (
	irrUpperBound    = 0.5
	irrMaxIterations = 100
	irrToleranceUSD  = 0.001
)

// Metrics holds project-finance results for one evaluated scenario.
// Computed fresh on each call; never mutated.
type Metrics struct {
	AnnualCashFlow float64 // revenue - opex, $/year; may be <= 0

	// PaysBack is false when annual cash flow is non-positive, in which
	// case PaybackYears is meaningless and set to zero. Formatters must
	// check PaysBack rather than testing for an infinity sentinel.
	PaysBack     bool
	PaybackYears float64

	NPV float64 // at the fixed discount rate, signed

	// IRR is a fraction in [0, 0.5]. Defined as exactly 0 when annual
	// cash flow is non-positive (the search interval cannot bracket a
	// root there). IRRConverged reports whether the bisection met the
	// residual tolerance within the iteration cap.
	IRR          float64
	IRRConverged bool

	ROI float64 // simple undiscounted return over the horizon, percent
}

// ComputeMetrics evaluates payback, NPV, IRR and ROI for a constant annual
// cash flow against an upfront capital cost.
//
// Degenerate inputs do not fault: zero or negative cash flow yields
// PaysBack=false and IRR=0; zero capital cost yields ROI=0.
func ComputeMetrics(annualRevenue, annualOpex, netCAPEX float64, horizonYears int, discountRate float64) Metrics {
	m := Metrics{AnnualCashFlow: annualRevenue - annualOpex}

	if m.AnnualCashFlow > 0 {
		m.PaysBack = true
		m.PaybackYears = netCAPEX / m.AnnualCashFlow
	}

	m.NPV = npvAt(m.AnnualCashFlow, netCAPEX, discountRate, horizonYears)

	if m.AnnualCashFlow > 0 {
		m.IRR, m.IRRConverged = bisectIRR(m.AnnualCashFlow, netCAPEX, horizonYears)
	} else {
		m.IRR = 0
		m.IRRConverged = true
	}

	if netCAPEX > 0 {
		totalRevenue := annualRevenue * float64(horizonYears)
		totalOpex := annualOpex * float64(horizonYears)
		m.ROI = (totalRevenue - totalOpex - netCAPEX) / netCAPEX * 100
	}

	return m
}

// ComputeMetricsDefault applies the standard 25-year horizon and 8% discount rate.
func ComputeMetricsDefault(annualRevenue, annualOpex, netCAPEX float64) Metrics {
	return ComputeMetrics(annualRevenue, annualOpex, netCAPEX, DefaultHorizonYears, DefaultDiscountRate)
}

// npvAt discounts a constant annual cash flow over years at rate,
// net of the upfront cost.
func npvAt(annualCashFlow, netCAPEX, rate float64, years int) float64 {
	npv := -netCAPEX
	for t := 1; t <= years; t++ {
		npv += annualCashFlow / math.Pow(1+rate, float64(t))
	}
	return npv
}

// bisectIRR finds the discount rate in [0, irrUpperBound] at which the NPV
// of the cash-flow stream is zero. The returned rate is whatever midpoint
// the loop lands on; converged reports whether the residual tolerance was
// actually met, so callers can flag an unvalidated answer.
func bisectIRR(annualCashFlow, netCAPEX float64, years int) (rate float64, converged bool) {
	lo, hi := 0.0, irrUpperBound
	mid := (lo + hi) / 2

	for i := 0; i < irrMaxIterations; i++ {
		mid = (lo + hi) / 2
		residual := npvAt(annualCashFlow, netCAPEX, mid, years)
		if math.Abs(residual) < irrToleranceUSD {
			return mid, true
		}
		if residual > 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return mid, false
}
