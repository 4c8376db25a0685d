// Package export writes the pipeline's results as flat tabular files: CSV
// tables for the forecast and status outputs and an Excel workbook for the
// backtest summary.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"sdgtrack.eurodata.org/internal/forecast"
	"sdgtrack.eurodata.org/internal/models"
)

// WriteForecasts writes one row per forecast record:
// country, indicator, year, value.
func WriteForecasts(w io.Writer, records []models.ForecastRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"country", "indicator", "year", "value"}); err != nil {
		return err
	}
	for _, rec := range records {
		row := []string{
			rec.Country,
			rec.Indicator,
			strconv.Itoa(rec.Year),
			formatValue(rec.Value),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteStatuses writes one row per classified pair:
// country, indicator, baseline, forecast, status.
func WriteStatuses(w io.Writer, outcomes []models.IndicatorOutcome) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"country", "indicator", "baseline", "forecast", "status"}); err != nil {
		return err
	}
	for _, o := range outcomes {
		row := []string{
			o.Country,
			o.Indicator,
			formatValue(o.Baseline),
			formatValue(o.Forecast),
			string(o.Status),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteSummaries writes the per-country leaderboard:
// country, score, grade, indicators.
func WriteSummaries(w io.Writer, summaries []models.CountrySummary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"country", "score", "grade", "indicators"}); err != nil {
		return err
	}
	for _, s := range summaries {
		row := []string{
			s.Country,
			strconv.FormatFloat(s.Score, 'f', 2, 64),
			string(s.Grade),
			strconv.Itoa(s.Indicators),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteBacktest writes the validation summary:
// indicator, mae, samples, evaluable.
func WriteBacktest(w io.Writer, rows []forecast.BacktestRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"indicator", "mae", "samples", "evaluable"}); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			row.Indicator,
			formatValue(row.MAE),
			strconv.Itoa(row.Samples),
			strconv.FormatBool(row.Evaluable),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile opens path for writing and applies the given writer function.
func WriteFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, closeErr)
		}
	}()

	if err := write(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
