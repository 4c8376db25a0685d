package forecast

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sdgtrack.eurodata.org/internal/models"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 2005, cfg.TrainStart)
	assert.Equal(t, 2019, cfg.TrainEnd)
	assert.Equal(t, 2022, cfg.BaselineYear)
	assert.Equal(t, 2023, cfg.HorizonStart)
	assert.Equal(t, 2030, cfg.HorizonEnd)
	assert.Len(t, cfg.Names(), 7)

	unemployment, err := cfg.Indicator("Unemployment_Rate")
	require.NoError(t, err)
	assert.Equal(t, models.ModelFamilyAutoregressive, unemployment.Family)
	assert.Equal(t, []string{"NEET_Rate", "Income_Distribution_Ratio"}, unemployment.Predictors)
	assert.Equal(t, models.TargetAtMost, unemployment.Target.Kind)
	assert.Equal(t, 5.0, unemployment.Target.Bound)

	ghg, err := cfg.Indicator("GHG_Emissions")
	require.NoError(t, err)
	assert.Equal(t, models.ModelFamilyTrend, ghg.Family)
	assert.Empty(t, ghg.Predictors)
}

func TestConfigRejectsUnknownIndicator(t *testing.T) {
	cfg := DefaultConfig()
	_, err := cfg.Indicator("Life_Expectancy")
	require.ErrorIs(t, err, ErrNotConfigured)
}

func TestNewConfigRejectsUnknownPredictor(t *testing.T) {
	_, err := NewConfig(2005, 2019, 2022, 2023, 2030, []models.Indicator{
		{
			Name:       "a",
			Family:     models.ModelFamilyAutoregressive,
			Predictors: []string{"nonexistent"},
			Target:     models.Target{Kind: models.TargetAtMost, Bound: 1},
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a configured indicator")
}

func TestNewConfigRejectsBadWindows(t *testing.T) {
	ind := []models.Indicator{{
		Name:   "a",
		Family: models.ModelFamilyTrend,
		Target: models.Target{Kind: models.TargetAtMost, Bound: 1},
	}}

	t.Run("horizon inside training window", func(t *testing.T) {
		_, err := NewConfig(2005, 2019, 2018, 2019, 2030, ind)
		require.Error(t, err)
	})

	t.Run("baseline not adjacent to horizon", func(t *testing.T) {
		_, err := NewConfig(2005, 2019, 2020, 2023, 2030, ind)
		require.Error(t, err)
	})

	t.Run("duplicate indicator", func(t *testing.T) {
		_, err := NewConfig(2005, 2019, 2022, 2023, 2030, append(ind, ind[0]))
		require.Error(t, err)
	})
}

func TestLoadConfig(t *testing.T) {
	content := `
train_start: 2005
train_end: 2019
baseline_year: 2022
horizon_start: 2023
horizon_end: 2030
indicators:
  - name: Unemployment_Rate
    sdg: 8
    unit: "%"
    family: autoregressive
    predictors: [NEET_Rate]
    non_negative: true
    target:
      kind: at_most
      bound: 5.0
  - name: NEET_Rate
    sdg: 8
    family: trend
    non_negative: true
    target:
      kind: at_most
      bound: 9.0
`
	path := filepath.Join(t.TempDir(), "indicators.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Unemployment_Rate", "NEET_Rate"}, cfg.Names())

	unemployment, err := cfg.Indicator("Unemployment_Rate")
	require.NoError(t, err)
	assert.True(t, unemployment.NonNegative)
	assert.Equal(t, []string{"NEET_Rate"}, unemployment.Predictors)
}

func TestLoadConfigErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.yaml")
		require.NoError(t, os.WriteFile(path, []byte("indicators: ["), 0o644))
		_, err := LoadConfig(path)
		require.Error(t, err)
	})

	t.Run("unknown predictor", func(t *testing.T) {
		content := `
train_start: 2005
train_end: 2019
baseline_year: 2022
horizon_start: 2023
horizon_end: 2030
indicators:
  - name: a
    family: autoregressive
    predictors: [ghost]
    target: {kind: at_most, bound: 1.0}
`
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		_, err := LoadConfig(path)
		require.Error(t, err)
	})
}
