package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sdgtrack.eurodata.org/internal/models"
)

func TestNewManagerIndexesObservations(t *testing.T) {
	m, err := NewManager([]models.Observation{
		{Country: "FR", Year: 2019, Indicator: "Unemployment_Rate", Value: 8.4},
		{Country: "FR", Year: 2020, Indicator: "Unemployment_Rate", Value: 8.0},
		{Country: "DE", Year: 2019, Indicator: "Unemployment_Rate", Value: 3.1},
		{Country: "DE", Year: 2019, Indicator: "Renewable_Energy_Share", Value: 17.3},
	})
	require.NoError(t, err)

	v, ok := m.Value("FR", "Unemployment_Rate", 2019)
	assert.True(t, ok)
	assert.Equal(t, 8.4, v)

	_, ok = m.Value("FR", "Unemployment_Rate", 2018)
	assert.False(t, ok, "absent year must not resolve")

	assert.Equal(t, []string{"DE", "FR"}, m.Countries())
	assert.Equal(t, []string{"Renewable_Energy_Share", "Unemployment_Rate"}, m.Indicators())
	assert.True(t, m.HasCountry("DE"))
	assert.False(t, m.HasCountry("IT"))
	assert.True(t, m.HasIndicator("Unemployment_Rate"))
	assert.False(t, m.HasIndicator("NEET_Rate"))

	minYear, maxYear := m.YearRange()
	assert.Equal(t, 2019, minYear)
	assert.Equal(t, 2020, maxYear)
	assert.Equal(t, 4, m.Len())
}

func TestNewManagerRejectsDuplicateKeys(t *testing.T) {
	_, err := NewManager([]models.Observation{
		{Country: "FR", Year: 2019, Indicator: "Unemployment_Rate", Value: 8.4},
		{Country: "FR", Year: 2019, Indicator: "Unemployment_Rate", Value: 8.5},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate observation")
}

func TestSeriesSkipsMissingYears(t *testing.T) {
	m, err := NewManager([]models.Observation{
		{Country: "FR", Year: 2018, Indicator: "NEET_Rate", Value: 13.0},
		{Country: "FR", Year: 2020, Indicator: "NEET_Rate", Value: 12.1},
	})
	require.NoError(t, err)

	years, values := m.Series("FR", "NEET_Rate", 2017, 2021)
	assert.Equal(t, []int{2018, 2020}, years)
	assert.Equal(t, []float64{13.0, 12.1}, values)
}

func TestReadCSV(t *testing.T) {
	input := strings.Join([]string{
		"country,year,indicator,value",
		"FR,2019,Unemployment_Rate,8.4",
		"FR,2020,Unemployment_Rate,",
		"DE,2019,Renewable_Energy_Share,17.3",
	}, "\n")

	m, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)

	v, ok := m.Value("FR", "Unemployment_Rate", 2019)
	assert.True(t, ok)
	assert.Equal(t, 8.4, v)

	_, ok = m.Value("FR", "Unemployment_Rate", 2020)
	assert.False(t, ok, "blank value cell must stay a gap")

	assert.Equal(t, 2, m.Len())
}

func TestReadCSVRejectsBadHeader(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("geo,time,series,obs\nFR,2019,x,1.0"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected column")
}

func TestReadCSVRejectsMalformedRows(t *testing.T) {
	t.Run("invalid year", func(t *testing.T) {
		_, err := ReadCSV(strings.NewReader("country,year,indicator,value\nFR,twenty,NEET_Rate,12.0"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid year")
	})

	t.Run("invalid value", func(t *testing.T) {
		_, err := ReadCSV(strings.NewReader("country,year,indicator,value\nFR,2019,NEET_Rate,high"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid value")
	})
}

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cleaned.csv")
	content := "country,year,indicator,value\nFR,2019,Unemployment_Rate,8.4\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	m, err := LoadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Len())

	_, err = LoadCSV(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
}
