package handlers

import (
	"net/http"

	"der-feasibility/internal/api/models"
	"der-feasibility/internal/sweep"

	"github.com/gin-gonic/gin"
)

// SweepHandler serves the grid-search endpoints.
type SweepHandler struct{}

func NewSweepHandler() *SweepHandler { return &SweepHandler{} }

// SweepBattery handles POST /api/v1/sweep/battery
func (h *SweepHandler) SweepBattery(c *gin.Context) {
	var req models.BatterySweepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err.Error())
		return
	}

	grid := sweep.DefaultBatterySizingGrid(req.SolarKW, req.PPARateCentsPerKWh, req.AnnualGenerationMWh)
	if len(req.DurationsHours) > 0 {
		grid.DurationsHours = req.DurationsHours
	}
	if len(req.PowerFractions) > 0 {
		grid.PowerFractions = req.PowerFractions
	}

	ranked, err := sweep.RankBatterySizings(grid)
	if err != nil {
		badRequest(c, "INVALID_GRID", err.Error())
		return
	}
	if req.Limit > 0 && req.Limit < len(ranked) {
		ranked = ranked[:req.Limit]
	}

	resp := models.BatterySweepResponse{}
	for _, r := range ranked {
		resp.Results = append(resp.Results, models.NewSizingResult(r))
	}
	c.JSON(http.StatusOK, resp)
}

// SweepPPACapex handles POST /api/v1/sweep/ppa-capex
func (h *SweepHandler) SweepPPACapex(c *gin.Context) {
	var req models.PPACapexSweepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err.Error())
		return
	}

	grid := sweep.DefaultPPACapexGrid(req.BaseNetCAPEX, req.AnnualOpex, req.AnnualGenerationMWh)
	best, err := sweep.BestPPACapex(grid)
	if err != nil {
		badRequest(c, "INVALID_GRID", err.Error())
		return
	}

	c.JSON(http.StatusOK, models.PPACapexSweepResponse{
		PPARateCentsPerKWh: best.PPARateCentsPerKWh,
		CapexMultiplier:    best.CapexMultiplier,
		NetCAPEX:           best.NetCAPEX,
		AnnualRevenue:      best.AnnualRevenue,
		Metrics:            models.NewMetricsResponse(best.Metrics),
	})
}
