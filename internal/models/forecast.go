package models

// Status is the three-tier classification of a country's projected outcome
// against an indicator's 2030 target.
type Status string

const (
	StatusOnTrack      Status = "on-track"
	StatusSlowProgress Status = "slow-progress"
	StatusOffTrack     Status = "off-track"
)

// ForecastRecord is one predicted value for a horizon year. Every record's
// year is strictly after the training window's last year.
type ForecastRecord struct {
	Country   string  `json:"country"`
	Indicator string  `json:"indicator"`
	Year      int     `json:"year"`
	Value     float64 `json:"value"`
}

// SeriesPoint is one point of a combined historical-plus-forecast series as
// served to the presentation layer.
type SeriesPoint struct {
	Year     int     `json:"year"`
	Value    float64 `json:"value"`
	Forecast bool    `json:"forecast"`
}

// IndicatorOutcome is the classified result for one (country, indicator)
// pair: the baseline value, the horizon-year forecast, and the status tier.
type IndicatorOutcome struct {
	Country   string  `json:"country"`
	Indicator string  `json:"indicator"`
	Baseline  float64 `json:"baseline"`
	Forecast  float64 `json:"forecast"`
	Status    Status  `json:"status"`
}

// CountrySummary aggregates a country's per-indicator statuses into a single
// score and grade, as shown on the dashboard leaderboard.
type CountrySummary struct {
	Country    string  `json:"country"`
	Score      float64 `json:"score"`
	Grade      Status  `json:"grade"`
	Indicators int     `json:"indicators"`
}
