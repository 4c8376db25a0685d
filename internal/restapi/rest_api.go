// Package restapi serves the pipeline's results over HTTP: the loaded
// dataset, the production forecasts and classifications, and the backtest
// summary, all wrapped in the standard response envelope.
package restapi

import (
	"sdgtrack.eurodata.org/internal/app"
)

type RestAPI struct {
	*app.Application
}

// NewRestAPI creates a new RestAPI instance around the shared application
// dependencies.
func NewRestAPI(application *app.Application) *RestAPI {
	return &RestAPI{Application: application}
}
