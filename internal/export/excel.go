package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"sdgtrack.eurodata.org/internal/forecast"
	"sdgtrack.eurodata.org/internal/models"
)

const (
	backtestSheet = "Backtest"
	statusSheet   = "Status"
	summarySheet  = "Scores"
)

// WriteWorkbook builds an Excel workbook with the backtest summary, the
// per-pair status table, and the per-country score leaderboard, and saves it
// at path.
func WriteWorkbook(path string, rows []forecast.BacktestRow, outcomes []models.IndicatorOutcome, summaries []models.CountrySummary) error {
	f := excelize.NewFile()

	f.SetSheetName("Sheet1", backtestSheet)
	writeBacktestSheet(f, rows)

	if _, err := f.NewSheet(statusSheet); err != nil {
		return fmt.Errorf("create status sheet: %w", err)
	}
	writeStatusSheet(f, outcomes)

	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("create summary sheet: %w", err)
	}
	writeSummarySheet(f, summaries)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return f.Close()
}

func writeBacktestSheet(f *excelize.File, rows []forecast.BacktestRow) {
	headers := []string{"Indicator", "MAE", "Samples", "Evaluable"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(backtestSheet, cell, header)
		f.SetColWidth(backtestSheet, cell, cell, 24)
	}

	for i, row := range rows {
		r := i + 2
		f.SetCellValue(backtestSheet, fmt.Sprintf("A%d", r), row.Indicator)
		if row.Evaluable {
			f.SetCellValue(backtestSheet, fmt.Sprintf("B%d", r), row.MAE)
		} else {
			f.SetCellValue(backtestSheet, fmt.Sprintf("B%d", r), "n/a")
		}
		f.SetCellValue(backtestSheet, fmt.Sprintf("C%d", r), row.Samples)
		f.SetCellValue(backtestSheet, fmt.Sprintf("D%d", r), row.Evaluable)
	}
}

func writeStatusSheet(f *excelize.File, outcomes []models.IndicatorOutcome) {
	headers := []string{"Country", "Indicator", "Baseline", "Forecast", "Status"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(statusSheet, cell, header)
		f.SetColWidth(statusSheet, cell, cell, 24)
	}

	for i, o := range outcomes {
		r := i + 2
		f.SetCellValue(statusSheet, fmt.Sprintf("A%d", r), o.Country)
		f.SetCellValue(statusSheet, fmt.Sprintf("B%d", r), o.Indicator)
		f.SetCellValue(statusSheet, fmt.Sprintf("C%d", r), o.Baseline)
		f.SetCellValue(statusSheet, fmt.Sprintf("D%d", r), o.Forecast)
		f.SetCellValue(statusSheet, fmt.Sprintf("E%d", r), string(o.Status))
	}
}

func writeSummarySheet(f *excelize.File, summaries []models.CountrySummary) {
	headers := []string{"Country", "Score", "Grade", "Indicators"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(summarySheet, cell, header)
		f.SetColWidth(summarySheet, cell, cell, 18)
	}

	for i, s := range summaries {
		r := i + 2
		f.SetCellValue(summarySheet, fmt.Sprintf("A%d", r), s.Country)
		f.SetCellValue(summarySheet, fmt.Sprintf("B%d", r), s.Score)
		f.SetCellValue(summarySheet, fmt.Sprintf("C%d", r), string(s.Grade))
		f.SetCellValue(summarySheet, fmt.Sprintf("D%d", r), s.Indicators)
	}
}
