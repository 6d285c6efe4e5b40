package sim

import (
	"errors"
	"math"
)

// BatteryParams defines the physical parameters of the aggregate battery.
// Units:
// - EnergyCapacityKWh: kWh
// - PowerCapacityKW: kW
// - Efficiencies: 0..1
// - SOC: fraction 0..1
type BatteryParams struct {
	EnergyCapacityKWh   float64
	PowerCapacityKW     float64
	ChargeEfficiency    float64
	DischargeEfficiency float64
	MinSOC              float64
	MaxSOC              float64
}

// Battery bundles params with mutable state of charge.
type Battery struct {
	Params BatteryParams
	SOC    float64 // fraction [0,1]
}

func NewBattery(params BatteryParams, initialSOC float64) (*Battery, error) {
	b := &Battery{Params: params, SOC: initialSOC}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Battery) Validate() error {
	p := b.Params
	if p.EnergyCapacityKWh <= 0 {
		return errors.New("EnergyCapacityKWh must be > 0")
	}
	if p.PowerCapacityKW <= 0 {
		return errors.New("PowerCapacityKW must be > 0")
	}
	if p.ChargeEfficiency <= 0 || p.ChargeEfficiency > 1 {
		return errors.New("ChargeEfficiency must be in (0, 1]")
	}
	if p.DischargeEfficiency <= 0 || p.DischargeEfficiency > 1 {
		return errors.New("DischargeEfficiency must be in (0, 1]")
	}
	if p.MinSOC < 0 || p.MinSOC > 1 || p.MaxSOC < 0 || p.MaxSOC > 1 || p.MinSOC > p.MaxSOC {
		return errors.New("MinSOC/MaxSOC must satisfy 0<=MinSOC<=MaxSOC<=1")
	}
	if b.SOC < p.MinSOC || b.SOC > p.MaxSOC {
		return errors.New("initial SOC must be within [MinSOC, MaxSOC]")
	}
	return nil
}

// StepResult captures what the battery did in one step.
// Convention: positive kW = discharge to the site bus, negative = charge.
type StepResult struct {
	PowerKW          float64 // realized power (may be clipped)
	EnergyToBusKWh   float64 // discharge energy delivered
	EnergyFromBusKWh float64 // charge energy drawn
	SOCStart         float64
	SOCEnd           float64
}

// Apply applies a requested power setpoint for one step, enforcing the
// power limit and SOC bounds (by clipping the requested power).
func (b *Battery) Apply(requestKW, durationHours float64) (StepResult, error) {
	if durationHours <= 0 {
		return StepResult{}, errors.New("durationHours must be > 0")
	}

	p := requestKW
	if p > b.Params.PowerCapacityKW {
		p = b.Params.PowerCapacityKW
	}
	if p < -b.Params.PowerCapacityKW {
		p = -b.Params.PowerCapacityKW
	}

	res := StepResult{SOCStart: b.SOC}

	if p < 0 {
		// Charging: magnitude is kW drawn from the bus.
		reqFromBusKWh := math.Abs(p) * durationHours
		if limit := b.maxChargeFromBusKWh(durationHours); reqFromBusKWh > limit {
			reqFromBusKWh = limit
			p = -reqFromBusKWh / durationHours
		}
		storedKWh := reqFromBusKWh * b.Params.ChargeEfficiency
		b.SOC = clamp01((b.SOC*b.Params.EnergyCapacityKWh + storedKWh) / b.Params.EnergyCapacityKWh)

		res.PowerKW = p
		res.EnergyFromBusKWh = reqFromBusKWh
	} else if p > 0 {
		// Discharging: kW delivered to the bus.
		reqToBusKWh := p * durationHours
		if limit := b.maxDischargeToBusKWh(durationHours); reqToBusKWh > limit {
			reqToBusKWh = limit
			p = reqToBusKWh / durationHours
		}
		withdrawnKWh := reqToBusKWh / b.Params.DischargeEfficiency
		b.SOC = clamp01((b.SOC*b.Params.EnergyCapacityKWh - withdrawnKWh) / b.Params.EnergyCapacityKWh)

		res.PowerKW = p
		res.EnergyToBusKWh = reqToBusKWh
	}

	res.SOCEnd = b.SOC
	return res, nil
}

func (b *Battery) maxChargeFromBusKWh(durationHours float64) float64 {
	storableKWh := (b.Params.MaxSOC - b.SOC) * b.Params.EnergyCapacityKWh
	if storableKWh <= 0 {
		return 0
	}
	limitBySOC := storableKWh / b.Params.ChargeEfficiency
	limitByPower := b.Params.PowerCapacityKW * durationHours
	return math.Max(0, math.Min(limitBySOC, limitByPower))
}

func (b *Battery) maxDischargeToBusKWh(durationHours float64) float64 {
	withdrawableKWh := (b.SOC - b.Params.MinSOC) * b.Params.EnergyCapacityKWh
	if withdrawableKWh <= 0 {
		return 0
	}
	limitBySOC := withdrawableKWh * b.Params.DischargeEfficiency
	limitByPower := b.Params.PowerCapacityKW * durationHours
	return math.Max(0, math.Min(limitBySOC, limitByPower))
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
