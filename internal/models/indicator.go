package models

import "fmt"

// ModelFamily selects how an indicator is regressed against its history.
type ModelFamily string

const (
	// ModelFamilyTrend fits the indicator against the calendar year only.
	ModelFamilyTrend ModelFamily = "trend"
	// ModelFamilyAutoregressive fits the indicator against the year plus the
	// prior-year values of its configured predictor indicators.
	ModelFamilyAutoregressive ModelFamily = "autoregressive"
)

// TargetKind distinguishes fixed numeric bounds from directional goals.
type TargetKind string

const (
	// TargetAtMost is satisfied when the value is less than or equal to the bound.
	TargetAtMost TargetKind = "at_most"
	// TargetAtLeast is satisfied when the value is greater than or equal to the bound.
	TargetAtLeast TargetKind = "at_least"
	// TargetIncrease requires growth relative to the baseline year.
	TargetIncrease TargetKind = "increase"
	// TargetDecrease requires reduction relative to the baseline year.
	TargetDecrease TargetKind = "decrease"
)

// Target is a 2030 policy goal for one indicator. Fixed kinds carry an
// absolute Bound; directional kinds carry MinMargin, the minimum relative
// improvement over the baseline (as a fraction of the baseline value) that
// counts as on-track.
type Target struct {
	Kind      TargetKind `yaml:"kind" json:"kind"`
	Bound     float64    `yaml:"bound,omitempty" json:"bound,omitempty"`
	MinMargin float64    `yaml:"min_margin,omitempty" json:"minMargin,omitempty"`
}

// IsDirectional reports whether the target is measured against the baseline
// rather than an absolute bound.
func (t Target) IsDirectional() bool {
	return t.Kind == TargetIncrease || t.Kind == TargetDecrease
}

// Validate checks that the target kind is known and its parameters make sense.
func (t Target) Validate() error {
	switch t.Kind {
	case TargetAtMost, TargetAtLeast:
		return nil
	case TargetIncrease, TargetDecrease:
		if t.MinMargin < 0 {
			return fmt.Errorf("directional target margin must not be negative, got %v", t.MinMargin)
		}
		return nil
	default:
		return fmt.Errorf("unknown target kind %q", t.Kind)
	}
}

// Indicator describes one tracked metric: its SDG grouping, the model family
// used to forecast it, and the target it is judged against.
type Indicator struct {
	Name        string      `yaml:"name" json:"name"`
	SDG         int         `yaml:"sdg" json:"sdg"`
	Unit        string      `yaml:"unit,omitempty" json:"unit,omitempty"`
	Family      ModelFamily `yaml:"family" json:"family"`
	Predictors  []string    `yaml:"predictors,omitempty" json:"predictors,omitempty"`
	NonNegative bool        `yaml:"non_negative,omitempty" json:"nonNegative,omitempty"`
	Target      Target      `yaml:"target" json:"target"`
}

// Validate checks internal consistency of a single indicator definition.
// Cross-indicator checks (predictors resolving to configured indicators)
// belong to the configuration table.
func (ind Indicator) Validate() error {
	if ind.Name == "" {
		return fmt.Errorf("indicator name must not be empty")
	}
	switch ind.Family {
	case ModelFamilyTrend:
		if len(ind.Predictors) > 0 {
			return fmt.Errorf("indicator %s: trend family takes no predictors", ind.Name)
		}
	case ModelFamilyAutoregressive:
		if len(ind.Predictors) == 0 {
			return fmt.Errorf("indicator %s: autoregressive family requires at least one predictor", ind.Name)
		}
	default:
		return fmt.Errorf("indicator %s: unknown model family %q", ind.Name, ind.Family)
	}
	if err := ind.Target.Validate(); err != nil {
		return fmt.Errorf("indicator %s: %w", ind.Name, err)
	}
	return nil
}
