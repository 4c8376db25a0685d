package restapi

import (
	"net/http"

	"sdgtrack.eurodata.org/internal/models"
	"sdgtrack.eurodata.org/internal/utils"
)

type summaryEntry struct {
	models.CountrySummary
	Outcomes []models.IndicatorOutcome `json:"outcomes"`
}

// summaryHandler serves a country's aggregate score plus its per-indicator
// outcomes.
func (api *RestAPI) summaryHandler(w http.ResponseWriter, r *http.Request) {
	country := utils.ExtractParam(r, "country")

	if err := utils.ValidateCountry(country); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"country": {err.Error()},
		})
		return
	}

	summary, ok := api.Results.SummaryFor(country)
	if !ok {
		api.sendNotFound(w, r)
		return
	}

	entry := summaryEntry{CountrySummary: summary}
	for _, name := range api.Engine.Config().Names() {
		if outcome, ok := api.Results.OutcomeFor(country, name); ok {
			entry.Outcomes = append(entry.Outcomes, outcome)
		}
	}

	api.sendResponse(w, r, models.NewEntryResponse(entry))
}
