package restapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"

	"sdgtrack.eurodata.org/internal/app"
	"sdgtrack.eurodata.org/internal/dataset"
	"sdgtrack.eurodata.org/internal/forecast"
	"sdgtrack.eurodata.org/internal/logging"
	"sdgtrack.eurodata.org/internal/models"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(t *testing.T) forecast.Config {
	t.Helper()
	cfg, err := forecast.NewConfig(2005, 2019, 2022, 2023, 2030, []models.Indicator{
		{
			Name:        "Renewable_Energy_Share",
			SDG:         13,
			Unit:        "%",
			Family:      models.ModelFamilyTrend,
			NonNegative: true,
			Target:      models.Target{Kind: models.TargetAtLeast, Bound: 42.5},
		},
		{
			Name:   "GHG_Emissions",
			SDG:    13,
			Unit:   "t CO2e",
			Family: models.ModelFamilyTrend,
			Target: models.Target{Kind: models.TargetDecrease, MinMargin: 0.05},
		},
	})
	require.NoError(t, err)
	return cfg
}

func testObservations() []models.Observation {
	var observations []models.Observation
	for year := 2005; year <= 2022; year++ {
		t := float64(year - 2005)
		observations = append(observations,
			models.Observation{Country: "FR", Year: year, Indicator: "Renewable_Energy_Share", Value: 20 + 1.5*t},
			models.Observation{Country: "FR", Year: year, Indicator: "GHG_Emissions", Value: 100 - 2*t},
			models.Observation{Country: "DE", Year: year, Indicator: "Renewable_Energy_Share", Value: 18 + 1.2*t},
			models.Observation{Country: "DE", Year: year, Indicator: "GHG_Emissions", Value: 120 - 1.5*t},
		)
	}
	return observations
}

// createTestApi creates a RestAPI instance with a small synthetic dataset,
// runs the engine, and keeps the results for the handlers under test.
func createTestApi(t *testing.T) *RestAPI {
	t.Helper()

	data, err := dataset.NewManager(testObservations())
	require.NoError(t, err)

	logger := discardLogger()
	engine, err := forecast.NewEngine(testConfig(t), data, logger)
	require.NoError(t, err)

	application := &app.Application{
		Config: app.Config{
			Env:     "test",
			ApiKeys: []string{"TEST"},
		},
		Logger:   logger,
		Data:     data,
		Engine:   engine,
		Results:  engine.Run(),
		Backtest: engine.Backtest(),
	}

	return NewRestAPI(application)
}

// serveAndRetrieveEndpoint sets up a test server, makes a request to the
// specified endpoint, and returns the response and decoded model.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*RestAPI, *http.Response, models.ResponseModel) {
	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, endpoint)
	return api, resp, model
}

func newTestRouter(api *RestAPI) *httprouter.Router {
	router := httprouter.New()
	api.SetRoutes(router)
	return router
}

func newTestRequest(t *testing.T, target string) (*http.Request, *httptest.ResponseRecorder) {
	t.Helper()
	return httptest.NewRequest(http.MethodGet, target, nil), httptest.NewRecorder()
}

func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	router := httprouter.New()
	api.SetRoutes(router)
	server := httptest.NewServer(router)
	defer server.Close()
	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	var response models.ResponseModel
	err = json.NewDecoder(resp.Body).Decode(&response)
	require.NoError(t, err)

	return resp, response
}
