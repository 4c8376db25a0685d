package restapi

import (
	"net/http"

	"sdgtrack.eurodata.org/internal/models"
	"sdgtrack.eurodata.org/internal/utils"
)

// statusHandler serves the classified outcome for one (country, indicator)
// pair. Pairs skipped during the run have no outcome and report not found.
func (api *RestAPI) statusHandler(w http.ResponseWriter, r *http.Request) {
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

	outcome, ok := api.Results.OutcomeFor(country, indicator)
	if !ok {
		api.sendNotFound(w, r)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(outcome))
}
