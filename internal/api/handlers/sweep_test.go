package handlers

import (
	"net/http"
	"testing"

	"der-feasibility/internal/api/models"

	"github.com/gin-gonic/gin"
)

func TestSweepBatteryEndpoint(t *testing.T) {
	r := testRouter()
	w := postJSON(t, r, "/api/v1/sweep/battery", gin.H{
		"solar_kw":               1730,
		"ppa_rate_cents_per_kwh": 7.54,
		"annual_generation_mwh":  3219,
		"limit":                  5,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	resp := decode[models.BatterySweepResponse](t, w)
	if len(resp.Results) != 5 {
		t.Fatalf("got %d results, want limit 5", len(resp.Results))
	}
	for i := 1; i < len(resp.Results); i++ {
		if resp.Results[i].Metrics.IRR > resp.Results[i-1].Metrics.IRR {
			t.Errorf("results not sorted descending by IRR at %d", i)
		}
	}
}

func TestSweepBatteryEndpointCustomGrid(t *testing.T) {
	r := testRouter()
	w := postJSON(t, r, "/api/v1/sweep/battery", gin.H{
		"solar_kw":               500,
		"ppa_rate_cents_per_kwh": 9.0,
		"annual_generation_mwh":  900,
		"durations_hours":        []float64{1.0},
		"power_fractions":        []float64{0.5, 1.0},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	resp := decode[models.BatterySweepResponse](t, w)
	if len(resp.Results) != 2 {
		t.Fatalf("got %d results, want 2 for the custom grid", len(resp.Results))
	}
}

func TestSweepPPACapexEndpoint(t *testing.T) {
	r := testRouter()
	w := postJSON(t, r, "/api/v1/sweep/ppa-capex", gin.H{
		"base_net_capex":        4710145,
		"annual_opex":           43000,
		"annual_generation_mwh": 3219,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	resp := decode[models.PPACapexSweepResponse](t, w)
	if resp.PPARateCentsPerKWh < 7.0 || resp.PPARateCentsPerKWh > 8.0 {
		t.Errorf("best PPA = %v, want within the 7-8 band", resp.PPARateCentsPerKWh)
	}
	if resp.CapexMultiplier < 0.3 || resp.CapexMultiplier > 1.0 {
		t.Errorf("best multiplier = %v, want within [0.3, 1.0]", resp.CapexMultiplier)
	}
	if resp.Metrics.IRR <= 0 {
		t.Errorf("best IRR = %v, want > 0", resp.Metrics.IRR)
	}
}

func TestSweepEndpointsRejectMalformedBody(t *testing.T) {
	r := testRouter()
	for _, path := range []string{"/api/v1/sweep/battery", "/api/v1/sweep/ppa-capex"} {
		w := postJSON(t, r, path, gin.H{})
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", path, w.Code)
		}
	}
}
