package handlers

import (
	"net/http"

	"der-feasibility/internal/api/models"
	"der-feasibility/internal/finance"
	"der-feasibility/internal/report"
	"der-feasibility/internal/scenario"
	"der-feasibility/internal/sim"
	"der-feasibility/internal/sweep"

	"github.com/gin-gonic/gin"
)

// SimulateHandler serves the hourly balance engine and its chart page.
type SimulateHandler struct{}

func NewSimulateHandler() *SimulateHandler { return &SimulateHandler{} }

// RunSimulation handles POST /api/v1/simulate
func (h *SimulateHandler) RunSimulation(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err.Error())
		return
	}

	cfg, ok := resolveScenario(req.Scenario, req.Config)
	if !ok {
		badRequest(c, "UNKNOWN_SCENARIO", "scenario not found: "+req.Scenario)
		return
	}
	pol, ok := sim.PolicyByName(req.Policy)
	if !ok {
		badRequest(c, "UNKNOWN_POLICY", "policy not found: "+req.Policy)
		return
	}

	res, err := sim.New().Run(cfg, sim.SyntheticDay(cfg), pol)
	if err != nil {
		badRequest(c, "SIMULATION_ERROR", err.Error())
		return
	}

	c.JSON(http.StatusOK, models.NewSimulateResponse(res, req.IncludeLedger))
}

// ScenarioChart handles GET /api/v1/scenarios/:name/chart?policy=...
// It renders the standard chart page for a built-in scenario as HTML.
func (h *SimulateHandler) ScenarioChart(c *gin.Context) {
	name := c.Param("name")
	cfg, ok := scenario.ByName(name)
	if !ok {
		badRequest(c, "UNKNOWN_SCENARIO", "scenario not found: "+name)
		return
	}
	pol, ok := sim.PolicyByName(c.Query("policy"))
	if !ok {
		badRequest(c, "UNKNOWN_POLICY", "policy not found: "+c.Query("policy"))
		return
	}

	breakdown := portfolioCAPEX(cfg)
	m := cfg.Metrics(breakdown.NetTotal)
	improvements := sweep.AnalyzeImprovements(
		cfg.Revenue.Total(), cfg.AnnualOpexUSD, breakdown.NetTotal,
		cfg.HorizonYears, cfg.DiscountRate,
	)

	simRes, err := sim.New().Run(cfg, sim.SyntheticDay(cfg), pol)
	if err != nil {
		badRequest(c, "SIMULATION_ERROR", err.Error())
		return
	}

	page, err := report.ScenarioPage(breakdown, m, improvements, simRes)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "CHART_ERROR", Message: err.Error()},
		})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

func resolveScenario(name string, inline *scenario.Config) (scenario.Config, bool) {
	if inline != nil {
		return *inline, true
	}
	if name == "" {
		name = "optimized"
	}
	return scenario.ByName(name)
}

// portfolioCAPEX sums per-site breakdowns with the default cost table.
func portfolioCAPEX(cfg scenario.Config) finance.CostBreakdown {
	var total finance.CostBreakdown
	for _, s := range cfg.Sites {
		b, err := finance.ComputeCAPEX(s.SolarKW, s.BatteryPowerKW, s.BatteryEnergyKWh)
		if err != nil {
			continue // validated configs cannot hit this
		}
		total.Add(b)
	}
	return total
}
