package restapi

import (
	"net/http"

	"wastewatch.io/internal/models"
	"wastewatch.io/internal/utils"
)

func (api *RestAPI) sectorsForCountryHandler(w http.ResponseWriter, r *http.Request) {
	id := utils.ExtractIDFromParams(r)

	if err := utils.ValidateID(id); err != nil {
		fieldErrors := map[string][]string{
			"id": {err.Error()},
		}
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	breakdown := api.DatasetManager.SectorBreakdown(id)
	if breakdown == nil {
		api.sendNotFound(w, r)
		return
	}

	references := models.NewEmptyReferences()
	if country := api.DatasetManager.FindCountry(id); country != nil {
		references.Countries = append(references.Countries,
			models.NewCountryReference(country.ID, country.Name, country.Region))
	}

	response := models.NewEntryResponse(breakdown, references)
	api.sendResponse(w, r, response)
}
