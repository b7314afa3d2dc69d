package client

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config carries the environment-tunable SDK defaults. Explicit options
// passed to New take precedence over these values.
type Config struct {
	// ServiceURL is the API base, including the version prefix.
	ServiceURL string `envconfig:"SERVICE_URL" default:"http://localhost:8000/api/v1"`

	// HTTPTimeout bounds a single request end to end.
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`

	// CredentialFile overrides the default credential location.
	CredentialFile string `envconfig:"CREDENTIAL_FILE"`
}

// ConfigFromEnv loads configuration from TRIPPLANNER_* environment
// variables, falling back to the documented defaults.
func ConfigFromEnv() (Config, error) {
	var c Config
	return c, envconfig.Process("TRIPPLANNER", &c)
}
