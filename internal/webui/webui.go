// Package webui serves the interactive dashboard and a debug view over the
// loaded dataset.
package webui

import (
	"wastewatch.io/internal/app"
)

type WebUI struct {
	*app.Application
}

func NewWebUI(app *app.Application) *WebUI {
	return &WebUI{Application: app}
}
