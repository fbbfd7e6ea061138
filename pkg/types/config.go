// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// DefaultBaseURL is the public GTDB API host.
const DefaultBaseURL = "https://api.gtdb.ecogenomic.org"

// ClientConfig holds shared settings for API requests and batch execution.
type ClientConfig struct {
	// BaseURL is the API host, without a trailing slash.
	BaseURL string `json:"base_url" yaml:"base_url"`

	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with requests
	// (e.g. "gtdb-cli/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`

	// MaxRetries is the number of extra attempts after a retryable
	// failure (timeout, HTTP 429 or 5xx).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`

	// RetryDelay is the fixed backoff between attempts.
	RetryDelay time.Duration `json:"retry_delay" yaml:"retry_delay"`

	// Concurrency bounds the number of in-flight requests in batch mode.
	Concurrency int `json:"concurrency" yaml:"concurrency"`
}

// DefaultClientConfig returns the built-in defaults, overridable through
// the config file and flags.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		BaseURL:     DefaultBaseURL,
		Timeout:     30 * time.Second,
		UserAgent:   "gtdb-cli/0.1",
		MaxRetries:  2,
		RetryDelay:  500 * time.Millisecond,
		Concurrency: 4,
	}
}
