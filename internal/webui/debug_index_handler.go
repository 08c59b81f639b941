package webui

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/davecgh/go-spew/spew"
)

//go:embed debug_index.html dashboard.html
var templateFS embed.FS

type debugData struct {
	Title string
	Pre   string
}

func writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	content := spew.Sdump(data)
	w.Header().Set("Content-Type", "text/html")
	w.Header().Set("Content-Security-Policy", "default-src 'self'; style-src 'unsafe-inline'")
	tmpl, err := template.ParseFS(templateFS, "debug_index.html")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dataStruct := debugData{
		Title: title,
		Pre:   content,
	}

	err = tmpl.Execute(w, dataStruct)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	dataType := r.URL.Query().Get("dataType")

	var data interface{}
	var title string

	manager := webUI.DatasetManager

	switch dataType {
	case "countries":
		data = manager.GetCountries()
		title = "Dataset - Countries"
	case "warnings":
		data = manager.Warnings()
		title = "Dataset - Load Warnings"
	case "summary":
		data = manager.Summary()
		title = "Dataset - Summary Statistics"
	case "clusters":
		data = manager.Clusters()
		title = "Dataset - Cluster Assignments"
	case "rankings":
		data = manager.Rankings("highest", 25)
		title = "Dataset - Rankings"
	case "regions":
		data = manager.Regions()
		title = "Dataset - Regions"
	default:
		data = map[string]string{
			"error": "Please use one of the following: countries, warnings, summary, clusters, rankings, regions.",
		}
		title = "Choose a data type"
	}

	writeDebugData(w, title, data)
}
