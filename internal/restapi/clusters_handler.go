package restapi

import (
	"net/http"

	"wastewatch.io/internal/models"
)

func (api *RestAPI) clustersHandler(w http.ResponseWriter, r *http.Request) {
	clusterData := api.DatasetManager.Clusters()

	response := models.NewEntryResponse(clusterData, models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
