package webui

import "net/http"

func (webUI *WebUI) SetWebUIRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", webUI.dashboardHandler)
	mux.HandleFunc("GET /debug/", webUI.debugIndexHandler)
}
