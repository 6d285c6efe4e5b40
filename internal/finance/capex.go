package finance

import "errors"

// CostAssumptions defines the unit-cost model for commercial solar canopy
// installations with battery storage. Figures are based on NREL ATB and
// industry benchmarks for systems in the 100 kW - 1 MW class.
// Units:
// - *PerKW: $/kW
// - BatteryPerKWh: $/kWh
// - ContingencyRate, ITCRate: fraction 0..1
// - OpexPerKWYear: $/kW/year
type CostAssumptions struct {
	SolarPerKW        float64 // PV panels + mounting structure
	BatteryPerKW      float64 // battery power capacity
	BatteryPerKWh     float64 // battery energy capacity
	InverterPerKW     float64 // DC/AC inverters, sized on solar + battery power
	ElectricalPerKW   float64 // wiring, transformers, switchgear (solar kW)
	InstallationPerKW float64 // installation and commissioning labor (solar kW)
	EngineeringPerKW  float64 // engineering, design, permits (solar kW)
	ContingencyRate   float64 // project contingency on subtotal
	ITCRate           float64 // investment tax credit on gross total
	OpexPerKWYear     float64 // O&M (solar kW)
}

// DefaultCostAssumptions returns the baseline cost table.
// ITC is zero: the credit is expiring and the base case assumes no credit.
func DefaultCostAssumptions() CostAssumptions {
	return CostAssumptions{
		SolarPerKW:        1200,
		BatteryPerKW:      800,
		BatteryPerKWh:     400,
		InverterPerKW:     150,
		ElectricalPerKW:   200,
		InstallationPerKW: 250,
		EngineeringPerKW:  100,
		ContingencyRate:   0.10,
		ITCRate:           0.0,
		OpexPerKWYear:     25,
	}
}

// CostBreakdown itemizes capital expenditure for one site. All amounts USD.
type CostBreakdown struct {
	SolarPV       float64
	BatteryPower  float64
	BatteryEnergy float64
	BatteryTotal  float64
	Inverter      float64
	Electrical    float64
	Installation  float64
	Engineering   float64

	Subtotal    float64 // sum of components before contingency
	Contingency float64
	GrossTotal  float64 // Subtotal + Contingency
	ITCCredit   float64
	NetTotal    float64 // GrossTotal - ITCCredit

	// CostPerKW is GrossTotal normalized by solar capacity.
	// Zero when solar capacity is zero.
	CostPerKW float64

	AnnualOpex float64 // $/year
}

// SiteCAPEX computes the itemized CAPEX for a single site.
// Capacities must be non-negative; solarKW of zero is allowed but yields
// a zero CostPerKW rather than a division fault.
func (a CostAssumptions) SiteCAPEX(solarKW, batteryPowerKW, batteryEnergyKWh float64) (CostBreakdown, error) {
	if solarKW < 0 || batteryPowerKW < 0 || batteryEnergyKWh < 0 {
		return CostBreakdown{}, errors.New("capacities must be non-negative")
	}

	b := CostBreakdown{
		SolarPV:       solarKW * a.SolarPerKW,
		BatteryPower:  batteryPowerKW * a.BatteryPerKW,
		BatteryEnergy: batteryEnergyKWh * a.BatteryPerKWh,
		Inverter:      (solarKW + batteryPowerKW) * a.InverterPerKW,
		Electrical:    solarKW * a.ElectricalPerKW,
		Installation:  solarKW * a.InstallationPerKW,
		Engineering:   solarKW * a.EngineeringPerKW,
	}
	b.BatteryTotal = b.BatteryPower + b.BatteryEnergy

	b.Subtotal = b.SolarPV + b.BatteryTotal + b.Inverter + b.Electrical +
		b.Installation + b.Engineering
	b.Contingency = b.Subtotal * a.ContingencyRate
	b.GrossTotal = b.Subtotal + b.Contingency
	b.ITCCredit = b.GrossTotal * a.ITCRate
	b.NetTotal = b.GrossTotal - b.ITCCredit

	if solarKW > 0 {
		b.CostPerKW = b.GrossTotal / solarKW
	}
	b.AnnualOpex = solarKW * a.OpexPerKWYear

	return b, nil
}

// ComputeCAPEX is SiteCAPEX with the default cost table.
func ComputeCAPEX(solarKW, batteryPowerKW, batteryEnergyKWh float64) (CostBreakdown, error) {
	return DefaultCostAssumptions().SiteCAPEX(solarKW, batteryPowerKW, batteryEnergyKWh)
}

// Add accumulates another breakdown into b, for portfolio-level totals.
// CostPerKW is not additive and must be recomputed by the caller if needed.
func (b *CostBreakdown) Add(o CostBreakdown) {
	b.SolarPV += o.SolarPV
	b.BatteryPower += o.BatteryPower
	b.BatteryEnergy += o.BatteryEnergy
	b.BatteryTotal += o.BatteryTotal
	b.Inverter += o.Inverter
	b.Electrical += o.Electrical
	b.Installation += o.Installation
	b.Engineering += o.Engineering
	b.Subtotal += o.Subtotal
	b.Contingency += o.Contingency
	b.GrossTotal += o.GrossTotal
	b.ITCCredit += o.ITCCredit
	b.NetTotal += o.NetTotal
	b.AnnualOpex += o.AnnualOpex
	b.CostPerKW = 0
}
