package restapi

import (
	"net/http"

	"sdgtrack.eurodata.org/internal/models"
)

func (api *RestAPI) indicatorsHandler(w http.ResponseWriter, r *http.Request) {
	cfg := api.Engine.Config()

	indicators := make([]models.Indicator, 0, len(cfg.Names()))
	for _, name := range cfg.Names() {
		ind, err := cfg.Indicator(name)
		if err != nil {
			api.serverErrorResponse(w, r, err)
			return
		}
		indicators = append(indicators, ind)
	}

	response := models.NewListResponse(indicators)
	api.sendResponse(w, r, response)
}
