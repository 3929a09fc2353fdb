package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	congresshttp "github.com/fivetwenty-io/congress-client/internal/http"
	"github.com/fivetwenty-io/congress-client/pkg/congress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockLogger for testing.
type MockLogger struct {
	logs []map[string]interface{}
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "debug", "msg": msg, "fields": fields})
}

func (l *MockLogger) Info(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "info", "msg": msg, "fields": fields})
}

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "warn", "msg": msg, "fields": fields})
}

func (l *MockLogger) Error(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "error", "msg": msg, "fields": fields})
}

func mustParseURL(t *testing.T, raw string) *url.URL {
	t.Helper()

	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	return parsed
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v3/bill/118", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "test-key", request.URL.Query().Get("api_key"))
			assert.Equal(t, "json", request.URL.Query().Get("format"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))
			assert.Equal(t, "congress-client/0.3.0", request.Header.Get("User-Agent"))

			_, _ = writer.Write([]byte(`{"bills":[],"pagination":{"count":0}}`))
		}))
		defer server.Close()

		client := congresshttp.NewClient(mustParseURL(t, server.URL), "test-key")

		resp, err := client.Do(context.Background(), &congresshttp.Request{
			Method: "GET",
			Path:   "/v3/bill/118",
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"bills":[],"pagination":{"count":0}}`, string(resp.Body))
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			query := request.URL.Query()
			assert.Equal(t, "5", query.Get("limit"))
			assert.Equal(t, "updateDate asc", query.Get("sort"))
			assert.Equal(t, []string{"test-key"}, query["api_key"])
			assert.Equal(t, []string{"json"}, query["format"])
			writer.WriteHeader(http.StatusOK)
			_, _ = writer.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := congresshttp.NewClient(mustParseURL(t, server.URL), "test-key")

		query := url.Values{}
		query.Set("limit", "5")
		query.Set("sort", "updateDate asc")
		query.Set("api_key", "attacker-key")
		query.Set("format", "xml")

		_, err := client.Get(context.Background(), "/v3/bill", query)
		require.NoError(t, err)
	})

	t.Run("base URL path prefix is preserved for relative paths", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/proxy/v3/congress", request.URL.Path)
			_, _ = writer.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := congresshttp.NewClient(mustParseURL(t, server.URL+"/proxy/"), "test-key")

		_, err := client.Get(context.Background(), "v3/congress", nil)
		require.NoError(t, err)
	})

	t.Run("error response", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusTooManyRequests)
			_, _ = writer.Write([]byte(`{"error":"rate limited"}`))
		}))
		defer server.Close()

		client := congresshttp.NewClient(mustParseURL(t, server.URL), "test-key")

		resp, err := client.Get(context.Background(), "/v3/bill", nil)
		require.Error(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)

		var apiErr *congress.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
		assert.Equal(t, "rate limited", apiErr.Message)
		assert.True(t, congress.IsRateLimited(err))
	})

	t.Run("error response with object body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusForbidden)
			_, _ = writer.Write([]byte(`{"error":{"code":"API_KEY_INVALID","message":"An invalid api_key was supplied."}}`))
		}))
		defer server.Close()

		client := congresshttp.NewClient(mustParseURL(t, server.URL), "bad-key")

		_, err := client.Get(context.Background(), "/v3/bill", nil)

		var apiErr *congress.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "API_KEY_INVALID", apiErr.Code)
		assert.True(t, congress.IsUnauthorized(err))
	})

	t.Run("error response with unexpected body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusBadGateway)
			_, _ = writer.Write([]byte(`<html>bad gateway</html>`))
		}))
		defer server.Close()

		client := congresshttp.NewClient(mustParseURL(t, server.URL), "test-key")

		resp, err := client.Get(context.Background(), "/v3/bill", nil)
		require.NotNil(t, resp)
		assert.Equal(t, "<html>bad gateway</html>", string(resp.Body))

		var decodeErr *congress.DecodeError
		require.ErrorAs(t, err, &decodeErr)

		var apiErr *congress.APIError
		assert.False(t, errors.As(err, &apiErr))
	})

	t.Run("error response without error field", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"message":"not here"}`))
		}))
		defer server.Close()

		client := congresshttp.NewClient(mustParseURL(t, server.URL), "test-key")

		_, err := client.Get(context.Background(), "/v3/bill", nil)

		var decodeErr *congress.DecodeError
		require.ErrorAs(t, err, &decodeErr)
		assert.Equal(t, "error", decodeErr.Path)
		assert.ErrorIs(t, err, congress.ErrMissingErrorField)
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "custom-value", request.Header.Get("X-Custom-Header"))
			assert.Equal(t, "my-app/1.0", request.Header.Get("User-Agent"))
			_, _ = writer.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := congresshttp.NewClient(mustParseURL(t, server.URL), "test-key",
			congresshttp.WithUserAgent("my-app/1.0"))

		_, err := client.Do(context.Background(), &congresshttp.Request{
			Method:  "GET",
			Path:    "/v3/bill",
			Headers: map[string]string{"X-Custom-Header": "custom-value"},
		})
		require.NoError(t, err)
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte(`{}`))
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := congresshttp.NewClient(mustParseURL(t, server.URL), "secret-key",
			congresshttp.WithLogger(logger),
			congresshttp.WithDebug(true),
		)

		_, err := client.Get(context.Background(), "/v3/bill", nil)
		require.NoError(t, err)

		require.Len(t, logger.logs, 2)
		assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
		assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])

		fields, ok := logger.logs[0]["fields"].(map[string]interface{})
		require.True(t, ok)
		assert.NotContains(t, fields["url"], "secret-key")
		assert.Contains(t, fields["url"], "REDACTED")
	})
}

func TestClient_InvalidPath(t *testing.T) {
	t.Parallel()

	client := congresshttp.NewClient(mustParseURL(t, "https://api.congress.gov/"), "test-key")

	testCases := []struct {
		name string
		path string
	}{
		{name: "bad escape", path: "/v3/bill/%zz"},
		{name: "absolute URL", path: "https://example.com/v3/bill"},
		{name: "scheme relative URL", path: "//example.com/v3/bill"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			resp, err := client.Get(context.Background(), testCase.path, nil)
			assert.Nil(t, resp)

			var urlErr *congress.InvalidURLError
			require.ErrorAs(t, err, &urlErr)
			assert.Equal(t, testCase.path, urlErr.Path)
		})
	}
}

func TestClient_TransportError(t *testing.T) {
	t.Parallel()
	t.Run("connection refused redacts the key", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {}))
		baseURL := mustParseURL(t, server.URL)
		server.Close()

		client := congresshttp.NewClient(baseURL, "secret-key")

		resp, err := client.Get(context.Background(), "/v3/bill", nil)
		assert.Nil(t, resp)

		var transportErr *congress.TransportError
		require.ErrorAs(t, err, &transportErr)
		assert.Equal(t, "GET", transportErr.Method)
		assert.NotContains(t, err.Error(), "secret-key")
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := congresshttp.NewClient(mustParseURL(t, server.URL), "test-key")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := client.Get(ctx, "/v3/bill", nil)

		var transportErr *congress.TransportError
		require.ErrorAs(t, err, &transportErr)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("timeout", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			time.Sleep(200 * time.Millisecond)
			_, _ = writer.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := congresshttp.NewClient(mustParseURL(t, server.URL), "test-key",
			congresshttp.WithTimeout(20*time.Millisecond))

		_, err := client.Get(context.Background(), "/v3/bill", nil)

		var transportErr *congress.TransportError
		require.ErrorAs(t, err, &transportErr)
	})
}

func TestClient_SingleAttempt(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		status int
	}{
		{name: "server error", status: http.StatusInternalServerError},
		{name: "rate limiting", status: http.StatusTooManyRequests},
		{name: "client error", status: http.StatusBadRequest},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var attempts int32

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				atomic.AddInt32(&attempts, 1)
				writer.WriteHeader(testCase.status)
				_, _ = writer.Write([]byte(`{"error":"nope"}`))
			}))
			defer server.Close()

			client := congresshttp.NewClient(mustParseURL(t, server.URL), "test-key")

			resp, err := client.Get(context.Background(), "/v3/bill", nil)
			require.Error(t, err)
			assert.Equal(t, testCase.status, resp.StatusCode)
			assert.Equal(t, int32(1), atomic.LoadInt32(&attempts))
		})
	}
}
