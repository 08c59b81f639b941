package restapi

import (
	"net/http"
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

func (api *RestAPI) SetRoutes(mux *http.ServeMux) {
	routes := map[string]handlerFunc{
		"GET /api/where/countries.json":                    api.countriesHandler,
		"GET /api/where/country/{id}":                      api.countryHandler,
		"GET /api/where/rankings.json":                     api.rankingsHandler,
		"GET /api/where/sectors-for-country/{id}":          api.sectorsForCountryHandler,
		"GET /api/where/clusters.json":                     api.clustersHandler,
		"GET /api/where/summary.json":                      api.summaryHandler,
		"GET /api/where/current-time.json":                 api.currentTimeHandler,
		"POST /api/where/report-problem-with-country/{id}": api.reportProblemWithCountryHandler,
		"GET /api/where/problem-reports-for-country/{id}":  api.problemReportsForCountryHandler,
	}

	for pattern, handler := range routes {
		mux.Handle(pattern, api.rateLimiter(validateAPIKey(api, handler)))
	}
}
