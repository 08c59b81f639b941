package restapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"wastewatch.io/internal/logging"
	"wastewatch.io/internal/models"
	"wastewatch.io/internal/utils"
	"wastewatch.io/wastedb"
)

func (api *RestAPI) reportProblemWithCountryHandler(w http.ResponseWriter, r *http.Request) {
	id := utils.ExtractIDFromParams(r)

	if err := utils.ValidateID(id); err != nil {
		fieldErrors := map[string][]string{
			"id": {err.Error()},
		}
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	if api.DatasetManager.FindCountry(id) == nil {
		api.sendNotFound(w, r)
		return
	}

	query := r.URL.Query()

	code := query.Get("code")
	if !models.IsValidProblemCode(code) {
		fieldErrors := map[string][]string{
			"code": {"code must be one of: value_looks_wrong, country_missing, region_incorrect, duplicate_country, other"},
		}
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	userComment := utils.SanitizeInput(query.Get("userComment"))

	report := wastedb.ProblemReport{
		ID:          uuid.NewString(),
		CountryID:   id,
		Code:        code,
		UserComment: userComment,
		CreatedAt:   time.Now().UnixMilli(),
	}

	if err := api.DatasetManager.WasteDB.Queries.InsertProblemReport(r.Context(), report); err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	logger := logging.FromContext(r.Context()).With(slog.String("component", "problem_reporting"))
	logging.LogOperation(logger, "problem_report_received_for_country",
		slog.String("country_id", id),
		slog.String("code", code),
		slog.String("report_id", report.ID))

	api.sendResponse(w, r, models.NewOKResponse(struct{}{}))
}
