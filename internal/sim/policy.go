package sim

// Context is what a dispatch policy sees for one hour.
type Context struct {
	Hour         int
	SurplusKW    float64 // generation - load, before battery
	LMPUSDPerMWh float64
	Battery      *Battery // nil when the scenario has no storage
}

// Policy decides the requested battery power for an hour.
// Convention: positive kW = discharge to the bus, negative = charge.
type Policy interface {
	Name() string
	Decide(ctx Context) float64
}

// SelfConsumption charges from solar surplus and discharges into host
// deficit. It never charges from the grid.
type SelfConsumption struct{}

func (SelfConsumption) Name() string { return "self-consumption" }

func (SelfConsumption) Decide(ctx Context) float64 {
	if ctx.Battery == nil {
		return 0
	}
	if ctx.SurplusKW > 0 {
		return -ctx.SurplusKW
	}
	if ctx.SurplusKW < 0 {
		return -ctx.SurplusKW // positive: discharge to cover deficit
	}
	return 0
}

// PriceArbitrage charges at full power when the LMP is at or below
// ChargeBelow and discharges at full power at or above DischargeAbove.
// Between the two thresholds it falls back to self-consumption.
type PriceArbitrage struct {
	ChargeBelowUSDPerMWh    float64
	DischargeAboveUSDPerMWh float64
}

func (PriceArbitrage) Name() string { return "price-arbitrage" }

func (p PriceArbitrage) Decide(ctx Context) float64 {
	if ctx.Battery == nil {
		return 0
	}
	if ctx.LMPUSDPerMWh >= p.DischargeAboveUSDPerMWh {
		return ctx.Battery.Params.PowerCapacityKW
	}
	if ctx.LMPUSDPerMWh <= p.ChargeBelowUSDPerMWh {
		return -ctx.Battery.Params.PowerCapacityKW
	}
	return SelfConsumption{}.Decide(ctx)
}

// PolicyByName resolves the built-in policies. Arbitrage thresholds are the
// standard curve's night price and afternoon peak.
func PolicyByName(name string) (Policy, bool) {
	switch name {
	case "", "self-consumption":
		return SelfConsumption{}, true
	case "price-arbitrage":
		return PriceArbitrage{ChargeBelowUSDPerMWh: 25, DischargeAboveUSDPerMWh: 55}, true
	default:
		return nil, false
	}
}
