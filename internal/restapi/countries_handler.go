package restapi

import (
	"net/http"

	"sdgtrack.eurodata.org/internal/models"
)

func (api *RestAPI) countriesHandler(w http.ResponseWriter, r *http.Request) {
	response := models.NewListResponse(api.Data.Countries())
	api.sendResponse(w, r, response)
}
