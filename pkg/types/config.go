package types

import "time"

// HTTPConfig holds HTTP settings for the dictionary request.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero leaves the transport default
	// (no client-side timeout).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with the request
	// (e.g. "urban/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// OutputFormat selects how results are written.
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

// LookupConfig holds the settings for one lookup run, merged from flags,
// the config file, and URBAN_* environment variables.
type LookupConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the define endpoint. Defaults to the public Urban
	// Dictionary API.
	BaseURL string `json:"base_url" yaml:"base_url"`

	// Display selects how many records are rendered.
	Display DisplayOptions `json:"display" yaml:"display"`

	// Format selects text, json, or yaml output.
	Format OutputFormat `json:"format" yaml:"format"`

	// NoColor disables ANSI colors on status lines.
	NoColor bool `json:"no_color" yaml:"no_color"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level" yaml:"log_level"`
}
