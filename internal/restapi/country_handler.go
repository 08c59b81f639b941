package restapi

import (
	"net/http"

	"wastewatch.io/internal/models"
	"wastewatch.io/internal/utils"
)

func (api *RestAPI) countryHandler(w http.ResponseWriter, r *http.Request) {
	id := utils.ExtractIDFromParams(r)

	if err := utils.ValidateID(id); err != nil {
		fieldErrors := map[string][]string{
			"id": {err.Error()},
		}
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	country := api.DatasetManager.FindCountry(id)
	if country == nil {
		api.sendNotFound(w, r)
		return
	}

	references := models.NewEmptyReferences()
	if country.Region != "" {
		references.Regions = append(references.Regions, country.Region)
	}

	response := models.NewEntryResponse(country, references)
	api.sendResponse(w, r, response)
}
