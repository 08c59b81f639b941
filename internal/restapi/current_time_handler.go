package restapi

import (
	"net/http"
	"time"

	"wastewatch.io/internal/models"
)

// Declare a handler which writes a JSON response with information about the
// current time.
func (api *RestAPI) currentTimeHandler(w http.ResponseWriter, r *http.Request) {
	timeData := models.NewCurrentTimeData(time.Now())
	response := models.NewOKResponse(timeData)

	api.sendResponse(w, r, response)
}
