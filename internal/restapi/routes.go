package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

// Router builds the full handler chain: the routing table wrapped in the
// metrics and request logging middleware.
func (api *RestAPI) Router() http.Handler {
	router := httprouter.New()
	api.SetRoutes(router)

	handler := NewMetricsMiddleware()(router)
	handler = NewRequestLoggingMiddleware(api.Logger)(handler)
	return handler
}

// SetRoutes registers every endpoint on the given router. The data endpoints
// all require a valid API key; the operational endpoints do not.
func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.Handler(http.MethodGet, "/api/v1/countries", validateAPIKey(api, api.countriesHandler))
	router.Handler(http.MethodGet, "/api/v1/indicators", validateAPIKey(api, api.indicatorsHandler))
	router.Handler(http.MethodGet, "/api/v1/series/:country/:indicator", validateAPIKey(api, api.seriesHandler))
	router.Handler(http.MethodGet, "/api/v1/status/:country/:indicator", validateAPIKey(api, api.statusHandler))
	router.Handler(http.MethodGet, "/api/v1/summary/:country", validateAPIKey(api, api.summaryHandler))
	router.Handler(http.MethodGet, "/api/v1/backtest", validateAPIKey(api, api.backtestHandler))

	router.Handler(http.MethodGet, "/metrics", promhttp.Handler())
	router.HandlerFunc(http.MethodGet, "/health", api.healthHandler)
}

func (api *RestAPI) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
