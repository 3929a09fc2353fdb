package congressclient

import (
	"fmt"
	"net/url"
	"os"

	"github.com/fivetwenty-io/congress-client/internal/client"
	"github.com/fivetwenty-io/congress-client/internal/constants"
	"github.com/fivetwenty-io/congress-client/pkg/congress"
	"golang.org/x/net/http/httpguts"
)

// Environment variables read by NewFromEnv.
const (
	EnvAPIKey  = "CONGRESS_API_KEY"
	EnvBaseURL = "CONGRESS_BASE_URL"
)

// New creates a new Congress.gov API client. config is not modified.
func New(config *congress.Config) (congress.Client, error) {
	if config == nil {
		return nil, &congress.ConfigError{Err: congress.ErrConfigRequired}
	}

	normalized := *config

	err := validate(&normalized)
	if err != nil {
		return nil, err
	}

	cli, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return cli, nil
}

// validate checks config and fills in defaults.
func validate(config *congress.Config) error {
	if config.APIKey == "" {
		return &congress.ConfigError{Field: "APIKey", Err: congress.ErrAPIKeyRequired}
	}

	if config.BaseURL == "" {
		config.BaseURL = constants.DefaultBaseURL
	}

	baseURL, err := url.Parse(config.BaseURL)
	if err != nil {
		return &congress.ConfigError{Field: "BaseURL", Err: err}
	}

	if (baseURL.Scheme != "http" && baseURL.Scheme != "https") || baseURL.Host == "" {
		return &congress.ConfigError{Field: "BaseURL", Err: congress.ErrInvalidBaseURL}
	}

	if config.UserAgent == "" {
		config.UserAgent = constants.DefaultUserAgent
	}

	if !httpguts.ValidHeaderFieldValue(config.UserAgent) {
		return &congress.ConfigError{Field: "UserAgent", Err: congress.ErrInvalidUserAgent}
	}

	if config.HTTPTimeout < 0 {
		return &congress.ConfigError{Field: "HTTPTimeout", Err: congress.ErrInvalidTimeout}
	}

	if config.HTTPTimeout == 0 {
		config.HTTPTimeout = constants.DefaultHTTPTimeout
	}

	return nil
}

// NewWithAPIKey creates a client for the public API with default settings.
func NewWithAPIKey(apiKey string) (congress.Client, error) {
	return New(&congress.Config{
		APIKey: apiKey,
	})
}

// NewFromEnv creates a client from CONGRESS_API_KEY and CONGRESS_BASE_URL.
func NewFromEnv() (congress.Client, error) {
	return New(&congress.Config{
		APIKey:  os.Getenv(EnvAPIKey),
		BaseURL: os.Getenv(EnvBaseURL),
	})
}
