package forecast

import "math"

// BacktestRow is the per-indicator validation summary: mean absolute error of
// the recursive predictions for the held-out years, aggregated across
// countries. An indicator with no comparable actuals is reported as not
// evaluable rather than failing the run.
type BacktestRow struct {
	Indicator string  `json:"indicator"`
	MAE       float64 `json:"mae"`
	Samples   int     `json:"samples"`
	Evaluable bool    `json:"evaluable"`
}

// Backtest refits every (country, indicator) model on the training window
// and recursively predicts the held-out years between the training end and
// the baseline year, then reports mean absolute error against the observed
// actuals. The output is diagnostic only; it never feeds the production fit.
func (e *Engine) Backtest() []BacktestRow {
	holdoutStart := e.cfg.TrainEnd + 1
	holdoutEnd := e.cfg.BaselineYear

	absErrSums := make(map[string]float64)
	sampleCounts := make(map[string]int)

	for _, country := range e.data.Countries() {
		produced, pairErrs := e.runCountry(country, holdoutStart, holdoutEnd)
		for _, pe := range pairErrs {
			e.logger.Debug("backtest pair skipped",
				"country", pe.Country,
				"indicator", pe.Indicator,
				"reason", pe.Reason)
		}

		for name, recs := range produced {
			for _, rec := range recs {
				actual, ok := e.data.Value(country, name, rec.Year)
				if !ok {
					continue
				}
				absErrSums[name] += math.Abs(rec.Value - actual)
				sampleCounts[name]++
			}
		}
	}

	rows := make([]BacktestRow, 0, len(e.cfg.Names()))
	for _, name := range e.cfg.Names() {
		row := BacktestRow{Indicator: name}
		if n := sampleCounts[name]; n > 0 {
			row.MAE = absErrSums[name] / float64(n)
			row.Samples = n
			row.Evaluable = true
		}
		rows = append(rows, row)
	}
	return rows
}
