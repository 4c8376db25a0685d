package models

// Observation is the atomic unit of the historical dataset: one numeric value
// for a (country, year, indicator) key. Keys are unique within a dataset.
type Observation struct {
	Country   string  `json:"country"`
	Year      int     `json:"year"`
	Indicator string  `json:"indicator"`
	Value     float64 `json:"value"`
}
