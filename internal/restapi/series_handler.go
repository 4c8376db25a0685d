package restapi

import (
	"log/slog"
	"net/http"

	"sdgtrack.eurodata.org/internal/logging"
	"sdgtrack.eurodata.org/internal/models"
	"sdgtrack.eurodata.org/internal/utils"
)

type seriesEntry struct {
	Country   string               `json:"country"`
	Indicator string               `json:"indicator"`
	Points    []models.SeriesPoint `json:"points"`
}

// seriesHandler serves the combined series for one (country, indicator) pair:
// every observed value first, then the projected horizon years.
func (api *RestAPI) seriesHandler(w http.ResponseWriter, r *http.Request) {
	country := utils.ExtractParam(r, "country")
	indicator := utils.ExtractParam(r, "indicator")

	fieldErrors := make(map[string][]string)
	if err := utils.ValidateCountry(country); err != nil {
		fieldErrors["country"] = []string{err.Error()}
	}
	if err := utils.ValidateIndicator(indicator); err != nil {
		fieldErrors["indicator"] = []string{err.Error()}
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	if !api.Data.HasCountry(country) || !api.Data.HasIndicator(indicator) {
		api.sendNotFound(w, r)
		return
	}

	minYear, maxYear := api.Data.YearRange()
	years, values := api.Data.Series(country, indicator, minYear, maxYear)

	points := make([]models.SeriesPoint, 0, len(years))
	for i, year := range years {
		points = append(points, models.SeriesPoint{Year: year, Value: values[i]})
	}
	if recs, ok := api.Results.ForecastsFor(country, indicator); ok {
		for _, rec := range recs {
			points = append(points, models.SeriesPoint{Year: rec.Year, Value: rec.Value, Forecast: true})
		}
	}

	if len(points) == 0 {
		api.sendNotFound(w, r)
		return
	}

	logger := logging.FromContext(r.Context()).With(slog.String("component", "series"))
	logging.LogOperation(logger, "series_served",
		slog.String("country", country),
		slog.String("indicator", indicator),
		slog.Int("points", len(points)))

	entry := seriesEntry{
		Country:   country,
		Indicator: indicator,
		Points:    points,
	}
	api.sendResponse(w, r, models.NewEntryResponse(entry))
}
