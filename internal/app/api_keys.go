package app

import "net/http"

func (app *Application) RequestHasInvalidAPIKey(r *http.Request) bool {
	key := r.URL.Query().Get("key")
	return app.IsInvalidAPIKey(key)
}

func (app *Application) IsInvalidAPIKey(key string) bool {
	if key == "" {
		return true
	}

	if key == app.Config.DashboardApiKey {
		return false
	}

	for _, validKey := range app.Config.ApiKeys {
		if key == validKey {
			return false
		}
	}

	return true
}
