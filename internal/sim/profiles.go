package sim

import (
	"math"

	"der-feasibility/internal/scenario"
)

// Hour is one hour of exogenous inputs to the balance engine.
type Hour struct {
	Hour         int     `json:"hour"`
	GenerationKW float64 `json:"generation_kw"`
	LoadKW       float64 `json:"load_kw"`
	LMPUSDPerMWh float64 `json:"lmp_usd_per_mwh"`
}

// solarCapacityFactor derates nameplate capacity at the daily peak.
const solarCapacityFactor = 0.85

// SyntheticDay builds a deterministic 24-hour summer design day for the
// portfolio: per-site gaussian solar shapes and host load shapes summed
// to portfolio totals, with the standard LMP curve.
func SyntheticDay(cfg scenario.Config) []Hour {
	lmp := LMPCurve()
	out := make([]Hour, 24)
	for h := 0; h < 24; h++ {
		out[h].Hour = h
		out[h].LMPUSDPerMWh = lmp[h]
	}
	for _, site := range cfg.Sites {
		gen := solarShape(site)
		load := loadShape(site.Host)
		for h := 0; h < 24; h++ {
			out[h].GenerationKW += gen[h]
			out[h].LoadKW += load[h]
		}
	}
	return out
}

// solarShape returns hourly generation in kW for one site. Peak timing and
// width vary by host siting (street canopy vs open parking field).
func solarShape(site scenario.Site) [24]float64 {
	var peakCenter, peakWidth float64
	switch site.Host {
	case scenario.HostRetail:
		peakCenter, peakWidth = 13.0, 6.0
	case scenario.HostCampus:
		peakCenter, peakWidth = 14.0, 5.0
	default: // airport
		peakCenter, peakWidth = 13.5, 7.0
	}

	var out [24]float64
	for h := 0; h < 24; h++ {
		x := (float64(h) - peakCenter) / (peakWidth / 2)
		factor := math.Exp(-0.5 * x * x)
		out[h] = factor * site.SolarKW * solarCapacityFactor
	}
	return out
}

// loadShape returns hourly host load in kW by host type: flat base load
// scaled by time-of-day multipliers.
func loadShape(host scenario.HostType) [24]float64 {
	var out [24]float64
	switch host {
	case scenario.HostRetail:
		// Commercial/retail: lunch and dinner peaks, deep night trough.
		for h := range out {
			out[h] = 50
		}
		scaleRange(&out, 11, 14, 2.0)
		scaleRange(&out, 17, 20, 2.2)
		scaleRange(&out, 0, 6, 0.3)
	case scenario.HostCampus:
		for h := range out {
			out[h] = 200
		}
		scaleRange(&out, 14, 18, 1.8)
		scaleRange(&out, 18, 22, 1.5)
		scaleRange(&out, 0, 6, 0.5)
	default: // airport: morning and afternoon banks
		for h := range out {
			out[h] = 300
		}
		scaleRange(&out, 6, 10, 1.5)
		scaleRange(&out, 14, 18, 1.6)
		scaleRange(&out, 0, 5, 0.6)
	}
	return out
}

// scaleRange multiplies hours [from, to) by factor.
func scaleRange(p *[24]float64, from, to int, factor float64) {
	for h := from; h < to && h < 24; h++ {
		p[h] *= factor
	}
}
