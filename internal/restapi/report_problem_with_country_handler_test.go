package restapi

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportProblemWithCountryHandlerStoresReport(t *testing.T) {
	api := createTestApi(t)

	resp, model := servePostAndRetrieveEndpoint(t, api,
		"/api/where/report-problem-with-country/austria.json?key=TEST&code=value_looks_wrong&userComment=figure+looks+stale")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 200, model.Code)
	assert.Equal(t, "OK", model.Text)

	count, err := api.DatasetManager.WasteDB.Queries.CountProblemReports(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	reports, err := api.DatasetManager.WasteDB.Queries.ListProblemReportsForCountry(context.Background(), "austria")
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "value_looks_wrong", reports[0].Code)
	assert.Equal(t, "figure looks stale", reports[0].UserComment)
	assert.NotEmpty(t, reports[0].ID)
}

func TestReportProblemWithCountryHandlerSanitizesComment(t *testing.T) {
	api := createTestApi(t)

	resp, _ := servePostAndRetrieveEndpoint(t, api,
		"/api/where/report-problem-with-country/kenya.json?key=TEST&code=other&userComment=%3Cscript%3Ealert(1)%3C/script%3Ehello")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	reports, err := api.DatasetManager.WasteDB.Queries.ListProblemReportsForCountry(context.Background(), "kenya")
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "alert(1)hello", reports[0].UserComment)
}

func TestReportProblemWithCountryHandlerRejectsInvalidCode(t *testing.T) {
	api := createTestApi(t)

	mux := http.NewServeMux()
	api.SetRoutes(mux)

	resp := postRaw(t, mux, "/api/where/report-problem-with-country/austria.json?key=TEST&code=bogus")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "fieldErrors")
	assert.Contains(t, resp.Body.String(), "code")

	count, err := api.DatasetManager.WasteDB.Queries.CountProblemReports(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}

func TestReportProblemWithCountryHandlerUnknownCountry(t *testing.T) {
	api := createTestApi(t)

	resp, model := servePostAndRetrieveEndpoint(t, api,
		"/api/where/report-problem-with-country/atlantis.json?key=TEST&code=other")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, http.StatusNotFound, model.Code)
}

func TestProblemReportsForCountryHandlerEndToEnd(t *testing.T) {
	api := createTestApi(t)

	resp, _ := servePostAndRetrieveEndpoint(t, api,
		"/api/where/report-problem-with-country/japan.json?key=TEST&code=region_incorrect")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, model := serveApiAndRetrieveEndpoint(t, api, "/api/where/problem-reports-for-country/japan.json?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data := responseData(t, model)
	list, ok := data["list"].([]interface{})
	require.True(t, ok)
	require.Len(t, list, 1)

	report, ok := list[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "japan", report["countryId"])
	assert.Equal(t, "region_incorrect", report["code"])
}
