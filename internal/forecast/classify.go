package forecast

import (
	"sort"

	"sdgtrack.eurodata.org/internal/models"
)

// Classify assigns the three-tier status from the horizon-year forecast, the
// baseline-year value, and the target definition. Bound comparisons are
// inclusive: a forecast exactly on the bound is on-track.
func Classify(target models.Target, baseline, forecast float64) models.Status {
	switch target.Kind {
	case models.TargetAtMost:
		if forecast <= target.Bound {
			return models.StatusOnTrack
		}
		if forecast < baseline {
			return models.StatusSlowProgress
		}
		return models.StatusOffTrack

	case models.TargetAtLeast:
		if forecast >= target.Bound {
			return models.StatusOnTrack
		}
		if forecast > baseline {
			return models.StatusSlowProgress
		}
		return models.StatusOffTrack

	case models.TargetIncrease:
		return classifyDirectional(forecast-baseline, baseline, target.MinMargin)

	case models.TargetDecrease:
		return classifyDirectional(baseline-forecast, baseline, target.MinMargin)
	}

	// Target kinds are validated at configuration time; an unknown kind here
	// would be a programming error. Fail conservative.
	return models.StatusOffTrack
}

// classifyDirectional grades movement in the required direction. change is
// positive when the forecast moved the right way; the on-track margin is a
// fraction of the baseline magnitude, inclusive at the boundary.
func classifyDirectional(change, baseline, minMargin float64) models.Status {
	margin := minMargin * abs(baseline)
	if change >= margin && change > 0 {
		return models.StatusOnTrack
	}
	if change > 0 {
		return models.StatusSlowProgress
	}
	return models.StatusOffTrack
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Status scores and grade cutoffs for the country leaderboard.
const (
	scoreOnTrack      = 3.0
	scoreSlowProgress = 2.0
	scoreOffTrack     = 1.0

	gradeOnTrackCutoff      = 2.5
	gradeSlowProgressCutoff = 1.8
)

func statusScore(s models.Status) float64 {
	switch s {
	case models.StatusOnTrack:
		return scoreOnTrack
	case models.StatusSlowProgress:
		return scoreSlowProgress
	default:
		return scoreOffTrack
	}
}

func gradeForScore(score float64) models.Status {
	switch {
	case score >= gradeOnTrackCutoff:
		return models.StatusOnTrack
	case score >= gradeSlowProgressCutoff:
		return models.StatusSlowProgress
	default:
		return models.StatusOffTrack
	}
}

// Summarize aggregates per-indicator outcomes into one summary per country:
// the mean status score across that country's classified indicators and the
// grade it maps to. Countries are returned in sorted order.
func Summarize(outcomes []models.IndicatorOutcome) []models.CountrySummary {
	totals := make(map[string]float64)
	counts := make(map[string]int)
	for _, o := range outcomes {
		totals[o.Country] += statusScore(o.Status)
		counts[o.Country]++
	}

	countries := make([]string, 0, len(totals))
	for c := range totals {
		countries = append(countries, c)
	}
	sort.Strings(countries)

	summaries := make([]models.CountrySummary, 0, len(countries))
	for _, c := range countries {
		score := totals[c] / float64(counts[c])
		summaries = append(summaries, models.CountrySummary{
			Country:    c,
			Score:      score,
			Grade:      gradeForScore(score),
			Indicators: counts[c],
		})
	}
	return summaries
}
