package finance

import "fmt"

// RevenueStreams is the set of annual revenue streams for a site portfolio.
// All amounts are $/year. The total is derived on access (Total) so the sum
// can never drift from the named components.
type RevenueStreams struct {
	BasePPA              float64 `yaml:"base_ppa" json:"base_ppa"`                             // contracted energy sales to hosts
	PlatformFees         float64 `yaml:"platform_fees" json:"platform_fees"`                   // exchange fees on marketplace trades
	GridServices         float64 `yaml:"grid_services" json:"grid_services"`                   // battery-based ancillary + demand response
	EVCharging           float64 `yaml:"ev_charging" json:"ev_charging"`                       // charging session fees
	RECSales             float64 `yaml:"rec_sales" json:"rec_sales"`                           // renewable energy certificates
	DigitalTwinLicensing float64 `yaml:"digital_twin_licensing" json:"digital_twin_licensing"` // data licensing SaaS
}

// Total sums all named streams.
func (r RevenueStreams) Total() float64 {
	return r.BasePPA + r.PlatformFees + r.GridServices + r.EVCharging +
		r.RECSales + r.DigitalTwinLicensing
}

// Validate rejects negative stream amounts.
func (r RevenueStreams) Validate() error {
	for _, s := range []struct {
		name string
		v    float64
	}{
		{"base_ppa", r.BasePPA},
		{"platform_fees", r.PlatformFees},
		{"grid_services", r.GridServices},
		{"ev_charging", r.EVCharging},
		{"rec_sales", r.RECSales},
		{"digital_twin_licensing", r.DigitalTwinLicensing},
	} {
		if s.v < 0 {
			return fmt.Errorf("revenue stream %s must be >= 0, got %v", s.name, s.v)
		}
	}
	return nil
}
