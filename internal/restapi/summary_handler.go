package restapi

import (
	"net/http"

	"wastewatch.io/internal/models"
)

func (api *RestAPI) summaryHandler(w http.ResponseWriter, r *http.Request) {
	summary := api.DatasetManager.Summary()

	response := models.NewEntryResponse(summary, models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
