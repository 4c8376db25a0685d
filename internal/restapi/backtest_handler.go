package restapi

import (
	"net/http"

	"sdgtrack.eurodata.org/internal/forecast"
	"sdgtrack.eurodata.org/internal/models"
)

func (api *RestAPI) backtestHandler(w http.ResponseWriter, r *http.Request) {
	rows := api.Backtest
	if rows == nil {
		rows = []forecast.BacktestRow{}
	}
	response := models.NewListResponse(rows)
	api.sendResponse(w, r, response)
}
