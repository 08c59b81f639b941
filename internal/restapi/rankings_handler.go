package restapi

import (
	"net/http"

	"wastewatch.io/internal/models"
	"wastewatch.io/internal/utils"
)

const defaultRankingsLimit = 10

func (api *RestAPI) rankingsHandler(w http.ResponseWriter, r *http.Request) {
	order := r.URL.Query().Get("order")
	if order == "" {
		order = "highest"
	}
	if err := utils.ValidateOrder(order); err != nil {
		fieldErrors := map[string][]string{
			"order": {err.Error()},
		}
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	limit := utils.QueryInt(r, "limit", defaultRankingsLimit)
	if err := utils.ValidateLimit(limit); err != nil {
		fieldErrors := map[string][]string{
			"limit": {err.Error()},
		}
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	rankings := api.DatasetManager.Rankings(order, limit)

	references := models.NewEmptyReferences()
	for _, entry := range rankings {
		references.Countries = append(references.Countries,
			models.NewCountryReference(entry.CountryID, entry.Name, entry.Region))
	}

	limitExceeded := len(api.DatasetManager.GetCountries()) > limit
	response := models.NewListResponseWithRange(rankings, references, limitExceeded)
	api.sendResponse(w, r, response)
}
