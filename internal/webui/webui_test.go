package webui

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wastewatch.io/internal/app"
	"wastewatch.io/internal/appconf"
	"wastewatch.io/internal/dataset"
)

func createTestWebUI(t *testing.T) *WebUI {
	datasetConfig := dataset.Config{
		DataSource:   filepath.Join("../../testdata", "food_waste.csv"),
		DBPath:       ":memory:",
		ClusterCount: 3,
		Env:          appconf.Test,
	}
	datasetManager, err := dataset.InitManager(datasetConfig, slog.Default())
	require.NoError(t, err)
	t.Cleanup(datasetManager.Shutdown)

	return NewWebUI(&app.Application{
		Config: appconf.Config{
			Env:             appconf.Test,
			ApiKeys:         []string{"TEST"},
			DashboardApiKey: "TEST-DASHBOARD",
		},
		DatasetConfig:  datasetConfig,
		Logger:         slog.Default(),
		DatasetManager: datasetManager,
	})
}

func retrievePage(t *testing.T, endpoint string) (*http.Response, string) {
	webUI := createTestWebUI(t)

	mux := http.NewServeMux()
	webUI.SetWebUIRoutes(mux)
	server := httptest.NewServer(mux)
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, string(body)
}

func TestDashboardHandler(t *testing.T) {
	resp, body := retrievePage(t, "/")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/html", resp.Header.Get("Content-Type"))
	assert.Contains(t, body, "Global Food Waste Dashboard")
	assert.Contains(t, body, "plotly")
	assert.Contains(t, body, `"TEST-DASHBOARD"`)
	assert.NotContains(t, body, `"TEST"`)
}

func TestDebugIndexHandlerListsDataTypes(t *testing.T) {
	resp, body := retrievePage(t, "/debug/")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Choose a data type")
	assert.Contains(t, body, "countries, warnings, summary, clusters, rankings, regions")
}

func TestDebugIndexHandlerCountries(t *testing.T) {
	resp, body := retrievePage(t, "/debug/?dataType=countries")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Dataset - Countries")
	assert.Contains(t, body, "Austria")
}

func TestDebugIndexHandlerWarnings(t *testing.T) {
	resp, body := retrievePage(t, "/debug/?dataType=warnings")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "duplicate country")
}
