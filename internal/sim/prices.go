package sim

// LMP price curve bounds in $/MWh. The shape follows a typical ERCOT summer
// day: low overnight, morning ramp, afternoon peak.
const (
	lmpBaseUSDPerMWh  = 30.0
	lmpFloorUSDPerMWh = 15.0
	lmpCapUSDPerMWh   = 150.0
)

// LMPCurve returns the deterministic 24-hour locational marginal price
// curve in $/MWh.
func LMPCurve() [24]float64 {
	var out [24]float64
	for h := 0; h < 24; h++ {
		mult := 1.0
		switch {
		case h < 6:
			mult = 0.7
		case h >= 6 && h < 10:
			mult = 1.5
		case h >= 14 && h < 20:
			mult = 2.0
		}
		lmp := lmpBaseUSDPerMWh * mult
		if lmp < lmpFloorUSDPerMWh {
			lmp = lmpFloorUSDPerMWh
		}
		if lmp > lmpCapUSDPerMWh {
			lmp = lmpCapUSDPerMWh
		}
		out[h] = lmp
	}
	return out
}
