package main

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

func createTestApplication(t *testing.T) *app.Application {
	datasetConfig := dataset.Config{
		DataSource:   filepath.Join("../../testdata", "food_waste.csv"),
		DBPath:       ":memory:",
		ClusterCount: 3,
		Env:          appconf.Test,
	}
	datasetManager, err := dataset.InitManager(datasetConfig, slog.Default())
	require.NoError(t, err)
	t.Cleanup(datasetManager.Shutdown)

	return &app.Application{
		Config: appconf.Config{
			Env:             appconf.Test,
			ApiKeys:         []string{"TEST"},
			RateLimit:       100,
			DashboardApiKey: "TEST-DASHBOARD",
		},
		DatasetConfig:  datasetConfig,
		Logger:         slog.Default(),
		DatasetManager: datasetManager,
	}
}

func TestRoutesServesApiAndDashboard(t *testing.T) {
	server := httptest.NewServer(routes(createTestApplication(t)))
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/where/summary.json?key=TEST")
	require.NoError(t, err)
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))

	resp, err = http.Get(server.URL + "/")
	require.NoError(t, err)
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/html", resp.Header.Get("Content-Type"))
}

func TestRoutesRejectsMissingApiKey(t *testing.T) {
	server := httptest.NewServer(routes(createTestApplication(t)))
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/where/countries.json")
	require.NoError(t, err)
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
