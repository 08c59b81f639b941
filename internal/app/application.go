package app

import (
	"log/slog"

	"wastewatch.io/internal/appconf"
	"wastewatch.io/internal/dataset"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware.
type Application struct {
	Config         appconf.Config
	DatasetConfig  dataset.Config
	Logger         *slog.Logger
	DatasetManager *dataset.Manager
}
