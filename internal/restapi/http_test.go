package restapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"wastewatch.io/internal/app"
	"wastewatch.io/internal/appconf"
	"wastewatch.io/internal/dataset"
	"wastewatch.io/internal/logging"
	"wastewatch.io/internal/models"
)

// createTestApi creates a new RestAPI instance with a dataset manager
// initialized for use in tests.
func createTestApi(t *testing.T) *RestAPI {
	datasetConfig := dataset.Config{
		DataSource:   filepath.Join("../../testdata", "food_waste.csv"),
		DBPath:       ":memory:",
		ClusterCount: 3,
		Env:          appconf.Test,
	}
	datasetManager, err := dataset.InitManager(datasetConfig, slog.Default())
	require.NoError(t, err)
	t.Cleanup(datasetManager.Shutdown)

	testApp := &app.Application{
		Config: appconf.Config{
			Env:       appconf.EnvFlagToEnvironment("test"),
			ApiKeys:   []string{"TEST"},
			RateLimit: 100,
		},
		DatasetConfig:  datasetConfig,
		Logger:         slog.Default(),
		DatasetManager: datasetManager,
	}

	return NewRestAPI(testApp)
}

// serveAndRetrieveEndpoint sets up a test server, makes a request to the
// specified endpoint, and returns the response and decoded model.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*RestAPI, *http.Response, models.ResponseModel) {
	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, endpoint)
	return api, resp, model
}

func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	mux := http.NewServeMux()
	api.SetRoutes(mux)
	server := httptest.NewServer(mux)
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

func servePostAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	mux := http.NewServeMux()
	api.SetRoutes(mux)
	server := httptest.NewServer(mux)
	defer server.Close()
	resp, err := http.Post(server.URL+endpoint, "application/json", nil)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	var response models.ResponseModel
	err = json.NewDecoder(resp.Body).Decode(&response)
	require.NoError(t, err)

	return resp, response
}

// postRaw issues a POST request against the mux and returns the raw recorder
// for assertions on non-envelope responses.
func postRaw(t *testing.T, mux *http.ServeMux, endpoint string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest("POST", endpoint, nil)
	recorder := httptest.NewRecorder()
	mux.ServeHTTP(recorder, req)
	return recorder
}

// responseData decodes the data section of a response into a map for
// assertions against the envelope payload.
func responseData(t *testing.T, model models.ResponseModel) map[string]interface{} {
	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok)
	return data
}
