package webui

import (
	"html/template"
	"net/http"
)

type dashboardData struct {
	ApiKey string
}

// dashboardHandler serves the interactive dashboard. The page fetches its
// data from the JSON API using the per-process dashboard key, never one of
// the operator keys.
func (webUI *WebUI) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	tmpl, err := template.ParseFS(templateFS, "dashboard.html")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	apiKey := webUI.Config.DashboardApiKey

	w.Header().Set("Content-Type", "text/html")
	// The API middleware sets a CSP that blocks all scripts; the dashboard
	// needs Plotly from its CDN plus its own inline script and styles.
	w.Header().Set("Content-Security-Policy",
		"default-src 'self'; script-src 'self' 'unsafe-inline' https://cdn.plot.ly; style-src 'unsafe-inline'; connect-src 'self'")
	err = tmpl.Execute(w, dashboardData{ApiKey: apiKey})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
