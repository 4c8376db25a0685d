// Package dataset loads the cleaned indicator table into an in-memory index.
// The data is read once at startup and is read-only afterwards, so the
// manager needs no locking.
package dataset

import (
	"fmt"
	"sort"

	"sdgtrack.eurodata.org/internal/models"
)

type key struct {
	country   string
	indicator string
	year      int
}

// Manager holds the complete cleaned dataset, indexed by
// (country, indicator, year).
type Manager struct {
	values     map[key]float64
	countries  []string
	indicators []string
	minYear    int
	maxYear    int
}

// NewManager builds a Manager from a slice of observations. Duplicate
// (country, year, indicator) keys are rejected: the cleaned dataset is
// defined to have unique keys, so a duplicate means a broken input file.
func NewManager(observations []models.Observation) (*Manager, error) {
	m := &Manager{
		values: make(map[key]float64, len(observations)),
	}

	countrySet := make(map[string]struct{})
	indicatorSet := make(map[string]struct{})

	for _, obs := range observations {
		if obs.Country == "" || obs.Indicator == "" {
			return nil, fmt.Errorf("observation with empty country or indicator (year %d)", obs.Year)
		}
		k := key{country: obs.Country, indicator: obs.Indicator, year: obs.Year}
		if _, exists := m.values[k]; exists {
			return nil, fmt.Errorf("duplicate observation for %s/%s/%d", obs.Country, obs.Indicator, obs.Year)
		}
		m.values[k] = obs.Value

		countrySet[obs.Country] = struct{}{}
		indicatorSet[obs.Indicator] = struct{}{}

		if m.minYear == 0 || obs.Year < m.minYear {
			m.minYear = obs.Year
		}
		if obs.Year > m.maxYear {
			m.maxYear = obs.Year
		}
	}

	m.countries = sortedKeys(countrySet)
	m.indicators = sortedKeys(indicatorSet)

	return m, nil
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Value returns the observed value for a (country, indicator, year) key and
// whether it is present.
func (m *Manager) Value(country, indicator string, year int) (float64, bool) {
	v, ok := m.values[key{country: country, indicator: indicator, year: year}]
	return v, ok
}

// Series returns the observed points for one (country, indicator) pair inside
// [fromYear, toYear], in increasing year order. Years with no observation are
// simply absent from the result.
func (m *Manager) Series(country, indicator string, fromYear, toYear int) (years []int, values []float64) {
	for year := fromYear; year <= toYear; year++ {
		if v, ok := m.Value(country, indicator, year); ok {
			years = append(years, year)
			values = append(values, v)
		}
	}
	return years, values
}

// Countries returns all country codes in the dataset, sorted.
func (m *Manager) Countries() []string {
	return m.countries
}

// Indicators returns all indicator names in the dataset, sorted.
func (m *Manager) Indicators() []string {
	return m.indicators
}

// HasCountry reports whether the dataset contains any observation for the
// given country.
func (m *Manager) HasCountry(country string) bool {
	i := sort.SearchStrings(m.countries, country)
	return i < len(m.countries) && m.countries[i] == country
}

// HasIndicator reports whether the dataset contains any observation for the
// given indicator.
func (m *Manager) HasIndicator(indicator string) bool {
	i := sort.SearchStrings(m.indicators, indicator)
	return i < len(m.indicators) && m.indicators[i] == indicator
}

// YearRange returns the earliest and latest observed years across the whole
// dataset.
func (m *Manager) YearRange() (int, int) {
	return m.minYear, m.maxYear
}

// Len returns the number of observations held by the manager.
func (m *Manager) Len() int {
	return len(m.values)
}
