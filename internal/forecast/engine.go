// Package forecast implements the forecasting pipeline: per-country,
// per-indicator linear model fits on the historical window, recursive
// year-by-year projection to the 2030 horizon, target classification, and
// backtest evaluation.
package forecast

import (
	"fmt"
	"log/slog"

	"sdgtrack.eurodata.org/internal/dataset"
	"sdgtrack.eurodata.org/internal/models"
)

// Engine runs the forecasting pipeline over one loaded dataset. The dataset
// is read-only; the engine itself holds no mutable state between runs, so two
// runs over the same input produce identical output.
type Engine struct {
	cfg    Config
	data   *dataset.Manager
	logger *slog.Logger
}

// NewEngine validates the configuration and returns an Engine. Dataset
// indicators absent from the configuration table are not checked here: they
// are a per-pair configuration error recorded during the run, so one stray
// column never aborts the whole batch.
func NewEngine(cfg Config, data *dataset.Manager, logger *slog.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{cfg: cfg, data: data, logger: logger}, nil
}

// Config returns the engine's configuration table.
func (e *Engine) Config() Config {
	return e.cfg
}

type pairKey struct {
	country   string
	indicator string
}

// Result is the output of one production run: every forecast record, the
// classified outcome per pair, per-country summaries, and the pairs skipped
// with their reasons.
type Result struct {
	Forecasts []models.ForecastRecord
	Outcomes  []models.IndicatorOutcome
	Summaries []models.CountrySummary
	Skipped   []PairError

	forecastsByPair map[pairKey][]models.ForecastRecord
	outcomesByPair  map[pairKey]models.IndicatorOutcome
	summaryByCtry   map[string]models.CountrySummary
}

// ForecastsFor returns the horizon records for one (country, indicator) pair.
func (r *Result) ForecastsFor(country, indicator string) ([]models.ForecastRecord, bool) {
	recs, ok := r.forecastsByPair[pairKey{country, indicator}]
	return recs, ok
}

// OutcomeFor returns the classified outcome for one (country, indicator) pair.
func (r *Result) OutcomeFor(country, indicator string) (models.IndicatorOutcome, bool) {
	out, ok := r.outcomesByPair[pairKey{country, indicator}]
	return out, ok
}

// SummaryFor returns the aggregate summary for one country.
func (r *Result) SummaryFor(country string) (models.CountrySummary, bool) {
	s, ok := r.summaryByCtry[country]
	return s, ok
}

// Run executes the full production pipeline: fit once per pair on the
// training window, project the horizon years oldest-first, classify each
// completed pair against its target, and aggregate per-country summaries.
func (e *Engine) Run() *Result {
	result := &Result{
		forecastsByPair: make(map[pairKey][]models.ForecastRecord),
		outcomesByPair:  make(map[pairKey]models.IndicatorOutcome),
		summaryByCtry:   make(map[string]models.CountrySummary),
	}

	unconfigured := e.unconfiguredIndicators()

	for _, country := range e.data.Countries() {
		result.Skipped = append(result.Skipped, e.skipUnconfiguredPairs(country, unconfigured)...)

		produced, pairErrs := e.runCountry(country, e.cfg.HorizonStart, e.cfg.HorizonEnd)
		result.Skipped = append(result.Skipped, pairErrs...)

		for _, name := range e.cfg.Names() {
			recs, ok := produced[name]
			if !ok {
				continue
			}
			result.Forecasts = append(result.Forecasts, recs...)
			result.forecastsByPair[pairKey{country, name}] = recs

			outcome, err := e.classifyPair(country, name, recs)
			if err != nil {
				result.Skipped = append(result.Skipped, newPairError(country, name, err))
				continue
			}
			result.Outcomes = append(result.Outcomes, outcome)
			result.outcomesByPair[pairKey{country, name}] = outcome
		}
	}

	result.Summaries = Summarize(result.Outcomes)
	for _, s := range result.Summaries {
		result.summaryByCtry[s.Country] = s
	}

	for _, pe := range result.Skipped {
		e.logger.Warn("pair skipped",
			"country", pe.Country,
			"indicator", pe.Indicator,
			"reason", pe.Reason)
	}
	e.logger.Info("forecast run completed",
		"countries", len(e.data.Countries()),
		"forecasts", len(result.Forecasts),
		"outcomes", len(result.Outcomes),
		"skipped", len(result.Skipped))

	return result
}

// unconfiguredIndicators returns the dataset indicators missing from the
// configuration table, in dataset order.
func (e *Engine) unconfiguredIndicators() []string {
	var names []string
	for _, name := range e.data.Indicators() {
		if _, err := e.cfg.Indicator(name); err != nil {
			names = append(names, name)
		}
	}
	return names
}

// skipUnconfiguredPairs records one configuration-error skip per
// (country, unconfigured indicator) pair the country actually has data for.
// Configured pairs are unaffected.
func (e *Engine) skipUnconfiguredPairs(country string, unconfigured []string) []PairError {
	minYear, maxYear := e.data.YearRange()

	var pairErrs []PairError
	for _, name := range unconfigured {
		years, _ := e.data.Series(country, name, minYear, maxYear)
		if len(years) == 0 {
			continue
		}
		_, err := e.cfg.Indicator(name)
		pairErrs = append(pairErrs, newPairError(country, name, err))
	}
	return pairErrs
}

// runCountry fits one model per indicator and projects [horizonStart,
// horizonEnd] in increasing year order. Later years depend on earlier
// synthetic outputs, so this is an explicit ordered loop: the lag lookup for
// year Y resolves to the observed value when Y-1 precedes the horizon and to
// the previously produced forecast otherwise.
func (e *Engine) runCountry(country string, horizonStart, horizonEnd int) (map[string][]models.ForecastRecord, []PairError) {
	fitted := make(map[string]linearModel)
	failed := make(map[string]error)
	for _, name := range e.cfg.Names() {
		model, err := e.fitPair(country, name)
		if err != nil {
			failed[name] = err
			continue
		}
		fitted[name] = model
	}

	produced := make(map[string]map[int]float64)
	records := make(map[string][]models.ForecastRecord)

	lookup := func(name string, year int) (float64, bool) {
		if year < horizonStart {
			return e.data.Value(country, name, year)
		}
		v, ok := produced[name][year]
		return v, ok
	}

	for year := horizonStart; year <= horizonEnd; year++ {
		for _, name := range e.cfg.Names() {
			if _, bad := failed[name]; bad {
				continue
			}
			ind := e.cfg.indicators[name]

			features, err := assembleFeatures(ind, year, lookup)
			if err != nil {
				// Abort this pair only: discard its partial output so a
				// truncated series never reaches the results.
				failed[name] = err
				delete(produced, name)
				delete(records, name)
				continue
			}

			value, err := fitted[name].predict(features)
			if err != nil {
				failed[name] = err
				delete(produced, name)
				delete(records, name)
				continue
			}
			if ind.NonNegative && value < 0 {
				value = 0
			}

			if produced[name] == nil {
				produced[name] = make(map[int]float64)
			}
			produced[name][year] = value
			records[name] = append(records[name], models.ForecastRecord{
				Country:   country,
				Indicator: name,
				Year:      year,
				Value:     value,
			})
		}
	}

	var pairErrs []PairError
	for _, name := range e.cfg.Names() {
		if err, bad := failed[name]; bad {
			pairErrs = append(pairErrs, newPairError(country, name, err))
		}
	}
	return records, pairErrs
}

// fitPair fits the model for one (country, indicator) pair on the training
// window. The model is fit exactly once and reused for every horizon year.
func (e *Engine) fitPair(country, name string) (linearModel, error) {
	ind := e.cfg.indicators[name]

	if ind.Family == models.ModelFamilyTrend {
		yearInts, values := e.data.Series(country, name, e.cfg.TrainStart, e.cfg.TrainEnd)
		years := make([]float64, len(yearInts))
		for i, y := range yearInts {
			years[i] = float64(y)
		}
		return fitTrend(years, values)
	}

	// Autoregressive: one training row per year whose target and every lag
	// predictor value are observed. Rows with gaps are dropped, never
	// zero-filled.
	var rows [][]float64
	var targets []float64
	for year := e.cfg.TrainStart + 1; year <= e.cfg.TrainEnd; year++ {
		target, ok := e.data.Value(country, name, year)
		if !ok {
			continue
		}
		row := make([]float64, 0, len(ind.Predictors)+1)
		row = append(row, float64(year))
		complete := true
		for _, pred := range ind.Predictors {
			lag, ok := e.data.Value(country, pred, year-1)
			if !ok {
				complete = false
				break
			}
			row = append(row, lag)
		}
		if !complete {
			continue
		}
		rows = append(rows, row)
		targets = append(targets, target)
	}

	return fitOLS(rows, targets)
}

// assembleFeatures builds the prediction-time feature vector for one horizon
// year, in the same order used at fit time.
func assembleFeatures(ind models.Indicator, year int, lookup func(name string, year int) (float64, bool)) ([]float64, error) {
	features := make([]float64, 0, len(ind.Predictors)+1)
	features = append(features, float64(year))
	for _, pred := range ind.Predictors {
		lag, ok := lookup(pred, year-1)
		if !ok {
			return nil, fmt.Errorf("%w: %s for year %d", ErrMissingInput, pred, year-1)
		}
		features = append(features, lag)
	}
	return features, nil
}

// classifyPair derives the status for a completed pair from its horizon-year
// forecast and the baseline-year actual.
func (e *Engine) classifyPair(country, name string, recs []models.ForecastRecord) (models.IndicatorOutcome, error) {
	baseline, ok := e.data.Value(country, name, e.cfg.BaselineYear)
	if !ok {
		return models.IndicatorOutcome{}, fmt.Errorf("%w: baseline %d actual", ErrMissingInput, e.cfg.BaselineYear)
	}

	horizon := recs[len(recs)-1]
	ind := e.cfg.indicators[name]

	return models.IndicatorOutcome{
		Country:   country,
		Indicator: name,
		Baseline:  baseline,
		Forecast:  horizon.Value,
		Status:    Classify(ind.Target, baseline, horizon.Value),
	}, nil
}
