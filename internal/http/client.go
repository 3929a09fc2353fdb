// Package http is the low-level request executor shared by every resource
// handler. It joins paths onto the base URL, attaches the API key and format
// flag, sends a single attempt, and reads the full body before branching on
// the status code.
package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fivetwenty-io/congress-client/internal/constants"
	"github.com/fivetwenty-io/congress-client/pkg/congress"
	"github.com/hashicorp/go-retryablehttp"
)

// Static errors for err113 compliance.
var (
	ErrAbsolutePath = errors.New("request path must be relative to the base URL")
)

// Logger is the logging surface the executor writes to.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request is a single API call.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Headers map[string]string
}

// Response is a fully read API response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client executes requests against the Congress.gov API.
type Client struct {
	baseURL    *url.URL
	apiKey     string
	userAgent  string
	httpClient *retryablehttp.Client
	logger     Logger
	debug      bool
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request and response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout bounds each request, including reading the body.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying *http.Client, for example to supply
// a custom transport.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient = httpClient
	}
}

// NewClient creates an executor rooted at baseURL. Every request carries
// apiKey as the api_key query parameter.
func NewClient(baseURL *url.URL, apiKey string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.CheckRetry = singleAttempt
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout

	root := *baseURL

	client := &Client{
		baseURL:    &root,
		apiKey:     apiKey,
		userAgent:  constants.DefaultUserAgent,
		httpClient: retryClient,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.logger != nil {
		retryClient.Logger = &leveledLogger{logger: client.logger}
	}

	return client
}

// singleAttempt never retries; callers own their retry policy.
func singleAttempt(_ context.Context, _ *http.Response, _ error) (bool, error) {
	return false, nil
}

// Do executes req. On a non-2xx status the fully read response is returned
// together with a *congress.APIError, or a *congress.DecodeError when the
// error body is not the expected shape.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	endpoint, err := c.buildURL(req.Path, req.Query)
	if err != nil {
		return nil, err
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	redacted := congress.RedactURL(endpoint.String())

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, method, endpoint.String(), nil)
	if err != nil {
		return nil, &congress.InvalidURLError{Path: req.Path, Err: err}
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": method,
			"url":    redacted,
		})
	}

	start := time.Now()

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &congress.TransportError{Method: method, URL: redacted, Err: redactError(err)}
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &congress.ResponseReadError{Err: redactError(err)}
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      method,
			"url":         redacted,
			"status_code": resp.StatusCode,
			"bytes":       len(body),
			"duration":    time.Since(start).String(),
		})
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return resp, nil
	}

	apiErr, err := congress.ParseAPIError(resp.StatusCode, body)
	if err != nil {
		return resp, err
	}

	return resp, apiErr
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
	})
}

// buildURL resolves path against the base URL and sets the query. The api_key
// and format entries are set last so caller values never replace them.
func (c *Client) buildURL(path string, query url.Values) (*url.URL, error) {
	ref, err := url.Parse(path)
	if err != nil {
		return nil, &congress.InvalidURLError{Path: path, Err: err}
	}

	if ref.IsAbs() || ref.Host != "" {
		return nil, &congress.InvalidURLError{Path: path, Err: ErrAbsolutePath}
	}

	endpoint := c.baseURL.ResolveReference(ref)

	values := ref.Query()
	for key, entries := range query {
		for _, entry := range entries {
			values.Add(key, entry)
		}
	}

	values.Set(constants.QueryAPIKey, c.apiKey)
	values.Set(constants.QueryFormat, constants.FormatJSON)

	endpoint.RawQuery = values.Encode()

	return endpoint, nil
}

// redactError masks the API key inside a *url.Error, which embeds the full
// request URL in its message.
func redactError(err error) error {
	urlErr := &url.Error{}
	if !errors.As(err, &urlErr) {
		return err
	}

	return &url.Error{
		Op:  urlErr.Op,
		URL: congress.RedactURL(urlErr.URL),
		Err: urlErr.Err,
	}
}

// leveledLogger adapts Logger to retryablehttp.LeveledLogger. Request tracing
// is done by Do, so only warnings and errors from the transport pass through.
type leveledLogger struct {
	logger Logger
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, toFields(keysAndValues))
}

func (l *leveledLogger) Info(string, ...interface{}) {}

func (l *leveledLogger) Debug(string, ...interface{}) {}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, toFields(keysAndValues))
}

func toFields(keysAndValues []interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, len(keysAndValues)/2)

	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key := fmt.Sprint(keysAndValues[i])
		value := keysAndValues[i+1]

		switch typed := value.(type) {
		case error:
			value = redactError(typed).Error()
		case *url.URL:
			value = congress.RedactURL(typed.String())
		case string:
			if key == "url" {
				value = congress.RedactURL(typed)
			}
		}

		fields[key] = value
	}

	return fields
}

var _ retryablehttp.LeveledLogger = (*leveledLogger)(nil)
