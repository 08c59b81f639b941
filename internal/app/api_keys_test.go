package app

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"wastewatch.io/internal/appconf"
)

func testApp() *Application {
	return &Application{
		Config: appconf.Config{
			ApiKeys:         []string{"key"},
			DashboardApiKey: "dashboard-key",
		},
	}
}

func TestBlankKeyIsInvalid(t *testing.T) {
	assert.True(t, testApp().IsInvalidAPIKey(""))
}

func TestUnknownKeyIsInvalid(t *testing.T) {
	assert.True(t, testApp().IsInvalidAPIKey("nope"))
}

func TestConfiguredKeyIsValid(t *testing.T) {
	assert.False(t, testApp().IsInvalidAPIKey("key"))
}

func TestDashboardKeyIsValid(t *testing.T) {
	assert.False(t, testApp().IsInvalidAPIKey("dashboard-key"))
}

func TestBlankDashboardKeyDoesNotMatchBlank(t *testing.T) {
	app := testApp()
	app.Config.DashboardApiKey = ""
	assert.True(t, app.IsInvalidAPIKey(""))
}

func TestRequestHasInvalidAPIKey(t *testing.T) {
	app := testApp()

	r := httptest.NewRequest("GET", "/api/where/countries.json?key=key", nil)
	assert.False(t, app.RequestHasInvalidAPIKey(r))

	r = httptest.NewRequest("GET", "/api/where/countries.json", nil)
	assert.True(t, app.RequestHasInvalidAPIKey(r))
}
