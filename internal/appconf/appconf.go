package appconf

// Environment is the operating environment for the application.
type Environment int

const (
	Development Environment = iota
	Test
	Production
)

func (e Environment) String() string {
	switch e {
	case Test:
		return "test"
	case Production:
		return "production"
	default:
		return "development"
	}
}

// EnvFlagToEnvironment maps the -env flag value to an Environment.
// Unknown values fall back to development.
func EnvFlagToEnvironment(flag string) Environment {
	switch flag {
	case "test":
		return Test
	case "production":
		return Production
	default:
		return Development
	}
}

// Config holds all the configuration settings for the application: the
// network port the server listens on, the operating environment, the
// accepted API keys, and the per-key rate limit. These are read from
// command-line flags when the application starts, with optional overrides
// from a YAML config file.
type Config struct {
	Port      int
	Env       Environment
	ApiKeys   []string
	RateLimit int

	// DashboardApiKey is the key the dashboard page uses to call the JSON
	// API. It is generated per process rather than configured, so the key
	// embedded in the public dashboard HTML is never one of the operator
	// keys.
	DashboardApiKey string
}
