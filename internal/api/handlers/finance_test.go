package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"der-feasibility/internal/api/models"

	"github.com/gin-gonic/gin"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	finance := NewFinanceHandler()
	sweep := NewSweepHandler()
	simulate := NewSimulateHandler()

	api := r.Group("/api/v1")
	api.POST("/capex", finance.ComputeCapex)
	api.POST("/metrics", finance.ComputeMetrics)
	api.POST("/improvements", finance.AnalyzeImprovements)
	api.POST("/sweep/battery", sweep.SweepBattery)
	api.POST("/sweep/ppa-capex", sweep.SweepPPACapex)
	api.POST("/simulate", simulate.RunSimulation)
	api.GET("/scenarios", ListScenarios)
	api.GET("/scenarios/:name/chart", simulate.ScenarioChart)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode response: %v\nbody: %s", err, w.Body.String())
	}
	return v
}

func TestComputeCapexEndpoint(t *testing.T) {
	r := testRouter()
	w := postJSON(t, r, "/api/v1/capex", gin.H{
		"solar_kw":    550,
		"battery_kw":  275,
		"battery_kwh": 138,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	resp := decode[models.CapexResponse](t, w)
	if resp.Breakdown.GrossTotal != 1497595 {
		t.Errorf("GrossTotal = %v, want 1497595", resp.Breakdown.GrossTotal)
	}
}

func TestComputeCapexEndpointRejectsMissingSolar(t *testing.T) {
	r := testRouter()
	w := postJSON(t, r, "/api/v1/capex", gin.H{"battery_kw": 100})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	resp := decode[models.ErrorResponse](t, w)
	if resp.Error.Code != "INVALID_REQUEST" {
		t.Errorf("error code = %q", resp.Error.Code)
	}
}

func TestComputeMetricsEndpoint(t *testing.T) {
	r := testRouter()
	w := postJSON(t, r, "/api/v1/metrics", gin.H{
		"annual_revenue": 243000,
		"annual_opex":    43000,
		"net_capex":      4710145,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	resp := decode[models.MetricsResponse](t, w)
	if resp.AnnualCashFlow != 200000 {
		t.Errorf("AnnualCashFlow = %v, want 200000", resp.AnnualCashFlow)
	}
	if !resp.PaysBack || resp.PaybackYears == nil {
		t.Fatal("expected payback_years to be present")
	}
	if *resp.PaybackYears < 23 || *resp.PaybackYears > 24 {
		t.Errorf("PaybackYears = %v, want about 23.6", *resp.PaybackYears)
	}
}

func TestComputeMetricsEndpointOmitsPaybackWhenNever(t *testing.T) {
	r := testRouter()
	w := postJSON(t, r, "/api/v1/metrics", gin.H{
		"annual_revenue": 1000,
		"annual_opex":    5000,
		"net_capex":      100000,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatal(err)
	}
	if _, present := raw["payback_years"]; present {
		t.Error("payback_years present for a scenario that never pays back")
	}
}

func TestAnalyzeImprovementsEndpoint(t *testing.T) {
	r := testRouter()
	w := postJSON(t, r, "/api/v1/improvements", gin.H{
		"annual_revenue": 477000,
		"annual_opex":    43000,
		"net_capex":      4710145,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	resp := decode[models.ImprovementsResponse](t, w)
	if len(resp.Improvements) != 11 {
		t.Fatalf("got %d improvements, want 11", len(resp.Improvements))
	}
	if resp.Improvements[0].Name != "Baseline" {
		t.Errorf("first improvement = %q", resp.Improvements[0].Name)
	}
}
