// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by every component that makes
// network requests.
type HTTPConfig struct {
	// Timeout is the per-request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "scrape-lab/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// FetcherConfig holds settings for the rate-limited fetcher.
type FetcherConfig struct {
	// MinInterval is the minimum spacing between two dispatches (default 1.5s).
	MinInterval time.Duration `json:"min_interval" yaml:"min_interval" mapstructure:"min_interval"`

	// Headers are sent with every request. They override the session defaults.
	Headers map[string]string `json:"headers,omitempty" yaml:"headers,omitempty" mapstructure:"headers"`
}

// RetryConfig holds settings for the retry helper.
type RetryConfig struct {
	// MaxAttempts is the number of attempts before giving up (default 3).
	MaxAttempts int `json:"max_attempts" yaml:"max_attempts" mapstructure:"max_attempts"`

	// BaseDelay is the first backoff delay; it doubles on every attempt (default 1s).
	BaseDelay time.Duration `json:"base_delay" yaml:"base_delay" mapstructure:"base_delay"`
}

// APIConfig holds settings for the API steps.
type APIConfig struct {
	// BaseURL, when set, points every source at a single host (usually the
	// practice server) instead of the public endpoints.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty" mapstructure:"base_url"`

	// InterSourceDelay paces consecutive API sections (default 500ms).
	InterSourceDelay time.Duration `json:"inter_source_delay" yaml:"inter_source_delay" mapstructure:"inter_source_delay"`

	// ExchangeAccessKey is the optional exchangerate.host access key.
	ExchangeAccessKey string `json:"exchange_access_key,omitempty" yaml:"exchange_access_key,omitempty" mapstructure:"exchange_access_key"`
}

// LogConfig selects the diagnostic log level and format.
type LogConfig struct {
	Level  string `json:"level" yaml:"level" mapstructure:"level"`
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// OutputFormat selects how step reports are rendered.
type OutputFormat string

const (
	OutputTable OutputFormat = "table"
	OutputJSON  OutputFormat = "json"
	OutputYAML  OutputFormat = "yaml"
)

// Config groups all settings for a scrape-lab run.
type Config struct {
	HTTP    HTTPConfig    `json:"http" yaml:"http" mapstructure:"http"`
	Fetcher FetcherConfig `json:"fetcher" yaml:"fetcher" mapstructure:"fetcher"`
	Retry   RetryConfig   `json:"retry" yaml:"retry" mapstructure:"retry"`
	APIs    APIConfig     `json:"apis" yaml:"apis" mapstructure:"apis"`
	Log     LogConfig     `json:"log" yaml:"log" mapstructure:"log"`
	Output  OutputFormat  `json:"output" yaml:"output" mapstructure:"output"`
}
