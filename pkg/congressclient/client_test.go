package congressclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fivetwenty-io/congress-client/pkg/congress"
	"github.com/fivetwenty-io/congress-client/pkg/congressclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("creates client with config", func(t *testing.T) {
		t.Parallel()

		config := &congress.Config{
			APIKey: "test-key",
		}

		client, err := congressclient.New(config)
		require.NoError(t, err)
		assert.NotNil(t, client)
		assert.Empty(t, config.BaseURL)
		assert.Empty(t, config.UserAgent)
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestNew_InvalidConfig(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		config    *congress.Config
		wantField string
		wantErr   error
	}{
		{
			name:    "nil config",
			config:  nil,
			wantErr: congress.ErrConfigRequired,
		},
		{
			name:      "empty API key",
			config:    &congress.Config{},
			wantField: "APIKey",
			wantErr:   congress.ErrAPIKeyRequired,
		},
		{
			name:      "relative base URL",
			config:    &congress.Config{APIKey: "key", BaseURL: "api.congress.gov"},
			wantField: "BaseURL",
			wantErr:   congress.ErrInvalidBaseURL,
		},
		{
			name:      "unsupported scheme",
			config:    &congress.Config{APIKey: "key", BaseURL: "ftp://api.congress.gov/"},
			wantField: "BaseURL",
			wantErr:   congress.ErrInvalidBaseURL,
		},
		{
			name:      "unparsable base URL",
			config:    &congress.Config{APIKey: "key", BaseURL: "https://api.congress.gov/%zz"},
			wantField: "BaseURL",
		},
		{
			name:      "user agent with newline",
			config:    &congress.Config{APIKey: "key", UserAgent: "bad\nagent"},
			wantField: "UserAgent",
			wantErr:   congress.ErrInvalidUserAgent,
		},
		{
			name:      "negative timeout",
			config:    &congress.Config{APIKey: "key", HTTPTimeout: -time.Second},
			wantField: "HTTPTimeout",
			wantErr:   congress.ErrInvalidTimeout,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			client, err := congressclient.New(testCase.config)
			assert.Nil(t, client)

			var configErr *congress.ConfigError
			require.ErrorAs(t, err, &configErr)
			assert.Equal(t, testCase.wantField, configErr.Field)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
			}
		})
	}
}

func TestNewWithAPIKey(t *testing.T) {
	t.Parallel()

	client, err := congressclient.NewWithAPIKey("test-key")
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv(congressclient.EnvAPIKey, "env-key")
	t.Setenv(congressclient.EnvBaseURL, "https://proxy.example.com/")

	client, err := congressclient.NewFromEnv()
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestClientIntegration(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/v3/congress/118", request.URL.Path)
		assert.Equal(t, "my-app/2.0", request.Header.Get("User-Agent"))
		assert.Equal(t, "test-key", request.URL.Query().Get("api_key"))

		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{"congress":{"name":"118th Congress","number":118,"startYear":"2023","endYear":"2024"}}`))
	}))
	defer server.Close()

	client, err := congressclient.New(&congress.Config{
		APIKey:    "test-key",
		BaseURL:   server.URL,
		UserAgent: "my-app/2.0",
	})
	require.NoError(t, err)

	resp, err := client.Congress(118).Send(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "118th Congress", resp.Congress.Name)
	assert.Equal(t, uint32(118), resp.Congress.Number)
}
