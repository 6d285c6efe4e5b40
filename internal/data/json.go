package data

import (
	"encoding/json"
	"fmt"
	"os"

	"der-feasibility/internal/sim"
)

// ProfileFile matches the JSON shape of an exported hourly series, e.g. the
// output of an external power-system solve or a measured day:
//
//	{
//	  "hours": [
//	    {"hour": 0, "generation_kw": 0, "load_kw": 310, "lmp_usd_per_mwh": 21},
//	    ...
//	  ]
//	}
type ProfileFile struct {
	Hours []sim.Hour `json:"hours"`
}

// LoadHourlyJSON reads an hourly profile series from disk. The series must
// cover exactly 24 hours in order.
func LoadHourlyJSON(path string) ([]sim.Hour, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var pf ProfileFile
	if err := json.Unmarshal(raw, &pf); err != nil {
		return nil, err
	}
	if len(pf.Hours) != 24 {
		return nil, fmt.Errorf("profile %s: expected 24 hours, got %d", path, len(pf.Hours))
	}
	for i, h := range pf.Hours {
		if h.Hour != i {
			return nil, fmt.Errorf("profile %s: hour %d out of order (got %d)", path, i, h.Hour)
		}
		if h.GenerationKW < 0 || h.LoadKW < 0 {
			return nil, fmt.Errorf("profile %s: hour %d has negative generation or load", path, i)
		}
	}
	return pf.Hours, nil
}
