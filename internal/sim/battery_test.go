package sim

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func testBattery(t *testing.T, soc float64) *Battery {
	t.Helper()
	b, err := NewBattery(BatteryParams{
		EnergyCapacityKWh:   100,
		PowerCapacityKW:     50,
		ChargeEfficiency:    0.95,
		DischargeEfficiency: 0.95,
		MinSOC:              0.1,
		MaxSOC:              0.9,
	}, soc)
	if err != nil {
		t.Fatalf("NewBattery: %v", err)
	}
	return b
}

func TestNewBatteryValidation(t *testing.T) {
	bad := []BatteryParams{
		{EnergyCapacityKWh: 0, PowerCapacityKW: 50, ChargeEfficiency: 0.95, DischargeEfficiency: 0.95, MaxSOC: 1},
		{EnergyCapacityKWh: 100, PowerCapacityKW: 0, ChargeEfficiency: 0.95, DischargeEfficiency: 0.95, MaxSOC: 1},
		{EnergyCapacityKWh: 100, PowerCapacityKW: 50, ChargeEfficiency: 1.2, DischargeEfficiency: 0.95, MaxSOC: 1},
		{EnergyCapacityKWh: 100, PowerCapacityKW: 50, ChargeEfficiency: 0.95, DischargeEfficiency: 0, MaxSOC: 1},
		{EnergyCapacityKWh: 100, PowerCapacityKW: 50, ChargeEfficiency: 0.95, DischargeEfficiency: 0.95, MinSOC: 0.9, MaxSOC: 0.1},
	}
	for i, p := range bad {
		if _, err := NewBattery(p, p.MinSOC); err == nil {
			t.Errorf("case %d: NewBattery accepted invalid params", i)
		}
	}

	if _, err := NewBattery(BatteryParams{
		EnergyCapacityKWh: 100, PowerCapacityKW: 50,
		ChargeEfficiency: 0.95, DischargeEfficiency: 0.95,
		MinSOC: 0.1, MaxSOC: 0.9,
	}, 0.95); err == nil {
		t.Error("NewBattery accepted initial SOC outside the SOC window")
	}
}

func TestApplyPowerClipping(t *testing.T) {
	b := testBattery(t, 0.5)
	step, err := b.Apply(1000, 1.0)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if step.PowerKW > b.Params.PowerCapacityKW {
		t.Errorf("PowerKW = %v, want <= %v", step.PowerKW, b.Params.PowerCapacityKW)
	}

	b = testBattery(t, 0.5)
	step, err = b.Apply(-1000, 1.0)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if step.PowerKW < -b.Params.PowerCapacityKW {
		t.Errorf("PowerKW = %v, want >= %v", step.PowerKW, -b.Params.PowerCapacityKW)
	}
}

func TestApplyChargeEfficiencyAccounting(t *testing.T) {
	b := testBattery(t, 0.5)
	step, err := b.Apply(-20, 1.0)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !almostEqual(step.EnergyFromBusKWh, 20, 1e-9) {
		t.Errorf("EnergyFromBusKWh = %v, want 20", step.EnergyFromBusKWh)
	}
	// 20 kWh drawn stores 19 kWh at 95% charge efficiency.
	wantSOC := 0.5 + 19.0/100.0
	if !almostEqual(b.SOC, wantSOC, 1e-9) {
		t.Errorf("SOC = %v, want %v", b.SOC, wantSOC)
	}
}

func TestApplyDischargeEfficiencyAccounting(t *testing.T) {
	b := testBattery(t, 0.5)
	step, err := b.Apply(19, 1.0)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !almostEqual(step.EnergyToBusKWh, 19, 1e-9) {
		t.Errorf("EnergyToBusKWh = %v, want 19", step.EnergyToBusKWh)
	}
	// Delivering 19 kWh withdraws 20 kWh at 95% discharge efficiency.
	wantSOC := 0.5 - 20.0/100.0
	if !almostEqual(b.SOC, wantSOC, 1e-9) {
		t.Errorf("SOC = %v, want %v", b.SOC, wantSOC)
	}
}

func TestApplyRespectsSOCWindow(t *testing.T) {
	b := testBattery(t, 0.88)
	// Headroom is 2 kWh of storage = 2/0.95 kWh from the bus; a full-power
	// request must be clipped to that.
	step, err := b.Apply(-50, 1.0)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !almostEqual(step.EnergyFromBusKWh, 2.0/0.95, 1e-9) {
		t.Errorf("EnergyFromBusKWh = %v, want %v", step.EnergyFromBusKWh, 2.0/0.95)
	}
	if !almostEqual(b.SOC, 0.9, 1e-9) {
		t.Errorf("SOC = %v, want pinned at MaxSOC 0.9", b.SOC)
	}

	b = testBattery(t, 0.12)
	step, err = b.Apply(50, 1.0)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !almostEqual(step.EnergyToBusKWh, 2.0*0.95, 1e-9) {
		t.Errorf("EnergyToBusKWh = %v, want %v", step.EnergyToBusKWh, 2.0*0.95)
	}
	if !almostEqual(b.SOC, 0.1, 1e-9) {
		t.Errorf("SOC = %v, want pinned at MinSOC 0.1", b.SOC)
	}
}

func TestApplyZeroRequestIsIdle(t *testing.T) {
	b := testBattery(t, 0.5)
	step, err := b.Apply(0, 1.0)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if step.PowerKW != 0 || step.EnergyToBusKWh != 0 || step.EnergyFromBusKWh != 0 {
		t.Errorf("idle step moved energy: %+v", step)
	}
	if b.SOC != 0.5 {
		t.Errorf("SOC = %v, want unchanged", b.SOC)
	}
}

func TestApplyRejectsNonPositiveDuration(t *testing.T) {
	b := testBattery(t, 0.5)
	if _, err := b.Apply(10, 0); err == nil {
		t.Error("Apply accepted zero duration")
	}
}

func TestSOCEnergyBalance(t *testing.T) {
	b := testBattery(t, 0.5)
	requests := []float64{-30, 15, -50, 50, 50, -10}
	for _, req := range requests {
		start := b.SOC
		step, err := b.Apply(req, 1.0)
		if err != nil {
			t.Fatalf("Apply(%v): %v", req, err)
		}
		delta := (b.SOC - start) * b.Params.EnergyCapacityKWh
		want := step.EnergyFromBusKWh*b.Params.ChargeEfficiency - step.EnergyToBusKWh/b.Params.DischargeEfficiency
		if math.Abs(delta-want) > 1e-9 {
			t.Fatalf("Apply(%v): stored delta %v kWh, want %v", req, delta, want)
		}
	}
}
