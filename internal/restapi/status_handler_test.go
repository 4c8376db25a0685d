package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusHandlerEndToEnd(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/v1/status/FR/Renewable_Energy_Share?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok)
	entry, ok := data["entry"].(map[string]interface{})
	require.True(t, ok)

	assert.Equal(t, "FR", entry["country"])
	assert.Equal(t, "Renewable_Energy_Share", entry["indicator"])
	// Baseline is the 2022 actual; forecast is the 2030 projection.
	assert.InDelta(t, 45.5, entry["baseline"].(float64), 1e-6)
	assert.InDelta(t, 57.5, entry["forecast"].(float64), 1e-6)
	assert.Equal(t, "on-track", entry["status"])
}

func TestStatusHandlerDirectionalTarget(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/v1/status/DE/GHG_Emissions?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok)
	entry, ok := data["entry"].(map[string]interface{})
	require.True(t, ok)

	// Emissions fall well past the required reduction margin.
	assert.Equal(t, "on-track", entry["status"])
}

func TestStatusHandlerUnknownPairReturnsNotFound(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/v1/status/FR/Unknown_Indicator?key=TEST")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, http.StatusNotFound, model.Code)
}

func TestStatusHandlerRequiresValidApiKey(t *testing.T) {
	_, resp, _ := serveAndRetrieveEndpoint(t, "/api/v1/status/FR/Renewable_Energy_Share")

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
