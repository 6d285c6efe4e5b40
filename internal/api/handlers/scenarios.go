package handlers

import (
	"net/http"

	"der-feasibility/internal/api/models"
	"der-feasibility/internal/scenario"

	"github.com/gin-gonic/gin"
)

// ScenarioSummary lists one built-in scenario with headline metrics.
type ScenarioSummary struct {
	Name               string                 `json:"name"`
	PPARateCentsPerKWh float64                `json:"ppa_rate_cents_per_kwh"`
	TotalSolarKW       float64                `json:"total_solar_kw"`
	TotalBatteryKW     float64                `json:"total_battery_kw"`
	TotalBatteryKWh    float64                `json:"total_battery_kwh"`
	AnnualRevenue      float64                `json:"annual_revenue"`
	AnnualOpex         float64                `json:"annual_opex"`
	NetCAPEX           float64                `json:"net_capex"`
	Metrics            models.MetricsResponse `json:"metrics"`
}

// ListScenarios handles GET /api/v1/scenarios
func ListScenarios(c *gin.Context) {
	out := make([]ScenarioSummary, 0, 2)
	for _, cfg := range scenario.Builtin() {
		breakdown := portfolioCAPEX(cfg)
		out = append(out, ScenarioSummary{
			Name:               cfg.Name,
			PPARateCentsPerKWh: cfg.PPARateCentsPerKWh,
			TotalSolarKW:       cfg.TotalSolarKW(),
			TotalBatteryKW:     cfg.TotalBatteryPowerKW(),
			TotalBatteryKWh:    cfg.TotalBatteryEnergyKWh(),
			AnnualRevenue:      cfg.Revenue.Total(),
			AnnualOpex:         cfg.AnnualOpexUSD,
			NetCAPEX:           breakdown.NetTotal,
			Metrics:            models.NewMetricsResponse(cfg.Metrics(breakdown.NetTotal)),
		})
	}
	c.JSON(http.StatusOK, gin.H{"scenarios": out})
}
