package sim

import (
	"encoding/csv"
	"os"
	"strconv"
)

func WriteLedgerCSV(path string, ledger []LedgerRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"hour",
		"lmp_usd_per_mwh",
		"generation_kw",
		"load_kw",
		"action",
		"requested_battery_kw",
		"battery_kw",
		"soc_start",
		"soc_end",
		"grid_import_kw",
		"grid_export_kw",
		"curtailed_kw",
		"ppa_revenue",
		"grid_revenue",
		"import_cost",
		"net_revenue",
		"cum_net_revenue",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range ledger {
		row := []string{
			strconv.Itoa(r.Hour),
			fmtFloat(r.LMPUSDPerMWh),
			fmtFloat(r.GenerationKW),
			fmtFloat(r.LoadKW),
			string(r.Action),
			fmtFloat(r.RequestedBatteryKW),
			fmtFloat(r.BatteryKW),
			fmtFloat(r.SOCStart),
			fmtFloat(r.SOCEnd),
			fmtFloat(r.GridImportKW),
			fmtFloat(r.GridExportKW),
			fmtFloat(r.CurtailedKW),
			fmtFloat(r.PPARevenue),
			fmtFloat(r.GridRevenue),
			fmtFloat(r.ImportCost),
			fmtFloat(r.NetRevenue),
			fmtFloat(r.CumNetRevenue),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
