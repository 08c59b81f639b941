package dataset

import "wastewatch.io/internal/appconf"

// Config carries everything the Manager needs to load and refresh the waste
// dataset. DataSource can be either a URL or a local file path.
type Config struct {
	DataSource   string
	DBPath       string
	ClusterCount int
	Env          appconf.Environment
	Verbose      bool
}
