package restapi

import (
	"net/http"
	"strings"

	"wastewatch.io/internal/models"
	"wastewatch.io/internal/utils"
)

func (api *RestAPI) countriesHandler(w http.ResponseWriter, r *http.Request) {
	region, err := utils.ValidateAndSanitizeQuery(r.URL.Query().Get("region"))
	if err != nil {
		fieldErrors := map[string][]string{
			"region": {err.Error()},
		}
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	query, err := utils.ValidateAndSanitizeQuery(r.URL.Query().Get("q"))
	if err != nil {
		fieldErrors := map[string][]string{
			"q": {err.Error()},
		}
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	maxCount := utils.QueryInt(r, "maxCount", 0)
	if maxCount != 0 {
		if err := utils.ValidateLimit(maxCount); err != nil {
			fieldErrors := map[string][]string{
				"maxCount": {err.Error()},
			}
			api.validationErrorResponse(w, r, fieldErrors)
			return
		}
	}

	countries := api.DatasetManager.GetCountries()

	if region != "" {
		filtered := make([]models.Country, 0, len(countries))
		for _, country := range countries {
			if country.Region == region {
				filtered = append(filtered, country)
			}
		}
		countries = filtered
	}

	if query != "" {
		needle := strings.ToLower(query)
		filtered := make([]models.Country, 0, len(countries))
		for _, country := range countries {
			if strings.Contains(strings.ToLower(country.Name), needle) {
				filtered = append(filtered, country)
			}
		}
		countries = filtered
	}

	limitExceeded := false
	if maxCount > 0 && len(countries) > maxCount {
		countries = countries[:maxCount]
		limitExceeded = true
	}

	references := models.NewEmptyReferences()
	references.Regions = api.DatasetManager.Regions()

	response := models.NewListResponseWithRange(countries, references, limitExceeded)
	api.sendResponse(w, r, response)
}
