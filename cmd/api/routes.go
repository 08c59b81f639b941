package main

import (
	"net/http"

	"wastewatch.io/internal/app"
	"wastewatch.io/internal/restapi"
	"wastewatch.io/internal/webui"
)

// routes builds the full handler chain: API and dashboard routes wrapped in
// compression, request logging and security headers middleware.
func routes(application *app.Application) http.Handler {
	mux := http.NewServeMux()

	api := restapi.NewRestAPI(application)
	api.SetRoutes(mux)

	ui := webui.NewWebUI(application)
	ui.SetWebUIRoutes(mux)

	var handler http.Handler = mux
	handler = restapi.CompressionMiddleware(handler)
	handler = restapi.NewRequestLoggingMiddleware(application.Logger)(handler)
	handler = api.WithSecurityHeaders(handler)

	return handler
}
