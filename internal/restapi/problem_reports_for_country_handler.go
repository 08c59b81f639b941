package restapi

import (
	"net/http"

	"wastewatch.io/internal/models"
	"wastewatch.io/internal/utils"
)

func (api *RestAPI) problemReportsForCountryHandler(w http.ResponseWriter, r *http.Request) {
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

	stored, err := api.DatasetManager.WasteDB.Queries.ListProblemReportsForCountry(r.Context(), id)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	reports := make([]models.ProblemReport, len(stored))
	for i, report := range stored {
		reports[i] = models.ProblemReport{
			ID:          report.ID,
			CountryID:   report.CountryID,
			Code:        report.Code,
			UserComment: report.UserComment,
			CreatedAt:   report.CreatedAt,
		}
	}

	references := models.NewEmptyReferences()
	references.Countries = append(references.Countries,
		models.NewCountryReference(country.ID, country.Name, country.Region))

	response := models.NewListResponse(reports, references)
	api.sendResponse(w, r, response)
}
