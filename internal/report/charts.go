package report

import (
	"bytes"
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"der-feasibility/internal/finance"
	"der-feasibility/internal/sim"
	"der-feasibility/internal/sweep"
)

// CapexPie charts the CAPEX component shares.
func CapexPie(b finance.CostBreakdown) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "CAPEX Breakdown by Component",
		}))
	pie.AddSeries("capex", []opts.PieData{
		{Name: "Solar PV", Value: b.SolarPV},
		{Name: "Battery", Value: b.BatteryTotal},
		{Name: "Inverter", Value: b.Inverter},
		{Name: "Electrical", Value: b.Electrical},
		{Name: "Installation", Value: b.Installation},
		{Name: "Engineering", Value: b.Engineering},
		{Name: "Contingency", Value: b.Contingency},
	})
	return pie
}

// ImprovementsBar charts IRR per what-if scenario.
func ImprovementsBar(improvements []sweep.Improvement) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "IRR by Scenario (%)",
		}))
	var xAxis []string
	var yAxis []opts.BarData
	for _, imp := range improvements {
		xAxis = append(xAxis, imp.Name)
		yAxis = append(yAxis, opts.BarData{Value: imp.Metrics.IRR * 100})
	}
	bar.SetXAxis(xAxis).
		AddSeries("IRR %", yAxis)
	return bar
}

// CashFlowLine charts cumulative undiscounted cash flow over the horizon,
// starting from the upfront capital outlay.
func CashFlowLine(m finance.Metrics, netCAPEX float64, horizonYears int) *charts.Line {
	line := charts.NewLine()
	title := fmt.Sprintf("Cumulative Cash Flow (payback %s)", Payback(m))
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}))
	var xAxis []string
	var yAxis []opts.LineData
	cum := -netCAPEX
	xAxis = append(xAxis, "0")
	yAxis = append(yAxis, opts.LineData{Value: cum / 1e6})
	for year := 1; year <= horizonYears; year++ {
		cum += m.AnnualCashFlow
		xAxis = append(xAxis, fmt.Sprintf("%d", year))
		yAxis = append(yAxis, opts.LineData{Value: cum / 1e6})
	}
	line.SetXAxis(xAxis).
		AddSeries("$M", yAxis)
	return line
}

// DispatchLines charts the simulated hourly balance: generation, load,
// battery power, and grid exchange.
func DispatchLines(res *sim.Result) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("Hourly Dispatch (%s, %s)", res.Scenario, res.Policy),
		}))
	var xAxis []string
	var gen, load, batt, grid []opts.LineData
	for _, r := range res.Ledger {
		xAxis = append(xAxis, fmt.Sprintf("%02d:00", r.Hour))
		gen = append(gen, opts.LineData{Value: r.GenerationKW})
		load = append(load, opts.LineData{Value: r.LoadKW})
		batt = append(batt, opts.LineData{Value: r.BatteryKW})
		grid = append(grid, opts.LineData{Value: r.GridExportKW - r.GridImportKW})
	}
	line.SetXAxis(xAxis).
		AddSeries("Generation kW", gen).
		AddSeries("Load kW", load).
		AddSeries("Battery kW", batt).
		AddSeries("Grid kW (export +)", grid)
	return line
}

// ScenarioPage assembles the standard chart page for one evaluated scenario
// and renders it as a self-contained HTML document. The simulation result
// is optional.
func ScenarioPage(b finance.CostBreakdown, m finance.Metrics, improvements []sweep.Improvement, simRes *sim.Result) ([]byte, error) {
	page := components.NewPage()
	page.SetLayout(components.PageFlexLayout)

	page.AddCharts(CapexPie(b))
	page.AddCharts(CashFlowLine(m, b.NetTotal, finance.DefaultHorizonYears))
	if len(improvements) > 0 {
		page.AddCharts(ImprovementsBar(improvements))
	}
	if simRes != nil {
		page.AddCharts(DispatchLines(simRes))
	}

	bodyBuf := bytes.NewBuffer([]byte{})
	if err := page.Render(bodyBuf); err != nil {
		return nil, err
	}
	return bodyBuf.Bytes(), nil
}
