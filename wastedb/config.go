package wastedb

import "wastewatch.io/internal/appconf"

// Config holds configuration options for the Client
type Config struct {
	DBPath  string              // Path to SQLite database file
	Env     appconf.Environment // Operating environment; tests must use :memory:
	verbose bool                // Verbose logging
}

func NewConfig(dbPath string, env appconf.Environment, verbose bool) Config {
	return Config{
		DBPath:  dbPath,
		Env:     env,
		verbose: verbose,
	}
}
