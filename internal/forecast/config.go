package forecast

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"sdgtrack.eurodata.org/internal/models"
)

// Config is the static model-selection and target table plus the year windows
// driving the pipeline. The table must be total over every indicator the
// pipeline touches; it is configuration, not learned state.
type Config struct {
	TrainStart   int `yaml:"train_start"`
	TrainEnd     int `yaml:"train_end"`
	BaselineYear int `yaml:"baseline_year"`
	HorizonStart int `yaml:"horizon_start"`
	HorizonEnd   int `yaml:"horizon_end"`

	indicators map[string]models.Indicator
	order      []string
}

// configFile is the on-disk YAML shape of a Config.
type configFile struct {
	TrainStart   int                `yaml:"train_start"`
	TrainEnd     int                `yaml:"train_end"`
	BaselineYear int                `yaml:"baseline_year"`
	HorizonStart int                `yaml:"horizon_start"`
	HorizonEnd   int                `yaml:"horizon_end"`
	Indicators   []models.Indicator `yaml:"indicators"`
}

// NewConfig builds a Config from year windows and an ordered indicator list.
// The list order is preserved and determines output ordering, so results are
// reproducible run to run.
func NewConfig(trainStart, trainEnd, baselineYear, horizonStart, horizonEnd int, indicators []models.Indicator) (Config, error) {
	cfg := Config{
		TrainStart:   trainStart,
		TrainEnd:     trainEnd,
		BaselineYear: baselineYear,
		HorizonStart: horizonStart,
		HorizonEnd:   horizonEnd,
		indicators:   make(map[string]models.Indicator, len(indicators)),
	}
	for _, ind := range indicators {
		if _, dup := cfg.indicators[ind.Name]; dup {
			return Config{}, fmt.Errorf("indicator %s configured twice", ind.Name)
		}
		cfg.indicators[ind.Name] = ind
		cfg.order = append(cfg.order, ind.Name)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DefaultConfig returns the built-in table: the seven EU indicators tracked
// by the project, their SDG grouping, model families, and 2030 targets.
func DefaultConfig() Config {
	cfg, err := NewConfig(2005, 2019, 2022, 2023, 2030, defaultIndicators())
	if err != nil {
		// The built-in table is checked by tests; failing here means the
		// defaults themselves are broken.
		panic(fmt.Sprintf("invalid built-in indicator table: %v", err))
	}
	return cfg
}

func defaultIndicators() []models.Indicator {
	return []models.Indicator{
		{
			Name:       "Real_GDP_Per_Capita",
			SDG:        8,
			Unit:       "EUR",
			Family:     models.ModelFamilyAutoregressive,
			Predictors: []string{"NEET_Rate", "Income_Distribution_Ratio"},
			Target:     models.Target{Kind: models.TargetIncrease, MinMargin: 0.10},
		},
		{
			Name:        "NEET_Rate",
			SDG:         8,
			Unit:        "%",
			Family:      models.ModelFamilyAutoregressive,
			Predictors:  []string{"Unemployment_Rate", "Income_Distribution_Ratio"},
			NonNegative: true,
			Target:      models.Target{Kind: models.TargetAtMost, Bound: 9.0},
		},
		{
			Name:        "Unemployment_Rate",
			SDG:         8,
			Unit:        "%",
			Family:      models.ModelFamilyAutoregressive,
			Predictors:  []string{"NEET_Rate", "Income_Distribution_Ratio"},
			NonNegative: true,
			Target:      models.Target{Kind: models.TargetAtMost, Bound: 5.0},
		},
		{
			Name:        "Income_Distribution_Ratio",
			SDG:         10,
			Unit:        "S80/S20",
			Family:      models.ModelFamilyAutoregressive,
			Predictors:  []string{"NEET_Rate", "Income_Share_Bottom_40"},
			NonNegative: true,
			Target:      models.Target{Kind: models.TargetAtMost, Bound: 4.0},
		},
		{
			Name:        "Income_Share_Bottom_40",
			SDG:         10,
			Unit:        "%",
			Family:      models.ModelFamilyAutoregressive,
			Predictors:  []string{"NEET_Rate", "Income_Distribution_Ratio"},
			NonNegative: true,
			Target:      models.Target{Kind: models.TargetAtLeast, Bound: 24.0},
		},
		{
			Name:        "Renewable_Energy_Share",
			SDG:         13,
			Unit:        "%",
			Family:      models.ModelFamilyAutoregressive,
			Predictors:  []string{"Real_GDP_Per_Capita"},
			NonNegative: true,
			Target:      models.Target{Kind: models.TargetAtLeast, Bound: 42.5},
		},
		{
			Name:   "GHG_Emissions",
			SDG:    13,
			Unit:   "t CO2e",
			Family: models.ModelFamilyTrend,
			Target: models.Target{Kind: models.TargetDecrease, MinMargin: 0.05},
		},
	}
}

// LoadConfig reads a full Config from a YAML file. The file replaces the
// built-in table entirely rather than patching it, so a config file is always
// self-describing.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var file configFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg, err := NewConfig(file.TrainStart, file.TrainEnd, file.BaselineYear, file.HorizonStart, file.HorizonEnd, file.Indicators)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Indicator resolves a name against the table. An unknown name is a
// configuration error and must be rejected before any fitting occurs.
func (c Config) Indicator(name string) (models.Indicator, error) {
	ind, ok := c.indicators[name]
	if !ok {
		return models.Indicator{}, fmt.Errorf("%w: %s", ErrNotConfigured, name)
	}
	return ind, nil
}

// Names returns the configured indicator names in table order.
func (c Config) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Validate checks the year windows and the indicator table, including that
// every predictor resolves to a configured indicator.
func (c Config) Validate() error {
	if len(c.order) == 0 {
		return fmt.Errorf("no indicators configured")
	}
	if c.TrainEnd <= c.TrainStart {
		return fmt.Errorf("training window [%d, %d] is empty", c.TrainStart, c.TrainEnd)
	}
	if c.HorizonStart <= c.TrainEnd {
		return fmt.Errorf("forecast horizon must start after the training window (train end %d, horizon start %d)", c.TrainEnd, c.HorizonStart)
	}
	if c.HorizonEnd < c.HorizonStart {
		return fmt.Errorf("forecast horizon [%d, %d] is empty", c.HorizonStart, c.HorizonEnd)
	}
	if c.BaselineYear != c.HorizonStart-1 {
		return fmt.Errorf("baseline year %d must immediately precede the horizon start %d", c.BaselineYear, c.HorizonStart)
	}

	for _, name := range c.order {
		ind := c.indicators[name]
		if err := ind.Validate(); err != nil {
			return err
		}
		for _, pred := range ind.Predictors {
			if _, ok := c.indicators[pred]; !ok {
				return fmt.Errorf("indicator %s: predictor %s is not a configured indicator", name, pred)
			}
		}
	}
	return nil
}
