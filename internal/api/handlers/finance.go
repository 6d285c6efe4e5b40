package handlers

import (
	"net/http"

	"der-feasibility/internal/api/models"
	"der-feasibility/internal/finance"
	"der-feasibility/internal/sweep"

	"github.com/gin-gonic/gin"
)

// FinanceHandler serves CAPEX and financial-metrics computations.
type FinanceHandler struct{}

func NewFinanceHandler() *FinanceHandler { return &FinanceHandler{} }

// ComputeCapex handles POST /api/v1/capex
func (h *FinanceHandler) ComputeCapex(c *gin.Context) {
	var req models.CapexRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err.Error())
		return
	}

	b, err := finance.ComputeCAPEX(req.SolarKW, req.BatteryPowerKW, req.BatteryEnergyKWh)
	if err != nil {
		badRequest(c, "INVALID_CAPACITIES", err.Error())
		return
	}

	c.JSON(http.StatusOK, models.CapexResponse{Breakdown: b})
}

// ComputeMetrics handles POST /api/v1/metrics
func (h *FinanceHandler) ComputeMetrics(c *gin.Context) {
	var req models.MetricsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err.Error())
		return
	}

	horizon := req.HorizonYears
	if horizon <= 0 {
		horizon = finance.DefaultHorizonYears
	}
	rate := req.DiscountRate
	if rate == 0 {
		rate = finance.DefaultDiscountRate
	}

	m := finance.ComputeMetrics(req.AnnualRevenue, req.AnnualOpex, req.NetCAPEX, horizon, rate)
	c.JSON(http.StatusOK, models.NewMetricsResponse(m))
}

// AnalyzeImprovements handles POST /api/v1/improvements
func (h *FinanceHandler) AnalyzeImprovements(c *gin.Context) {
	var req models.ImprovementsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err.Error())
		return
	}

	improvements := sweep.AnalyzeImprovements(
		req.AnnualRevenue, req.AnnualOpex, req.NetCAPEX,
		finance.DefaultHorizonYears, finance.DefaultDiscountRate,
	)

	resp := models.ImprovementsResponse{}
	for _, imp := range improvements {
		resp.Improvements = append(resp.Improvements, models.Improvement{
			Name:          imp.Name,
			AnnualRevenue: imp.AnnualRevenue,
			NetCAPEX:      imp.NetCAPEX,
			Metrics:       models.NewMetricsResponse(imp.Metrics),
		})
	}
	c.JSON(http.StatusOK, resp)
}

func badRequest(c *gin.Context, code, message string) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}
