package congress

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// APIError is a request the API explicitly rejected. It is decoded from the
// {"error": "..."} body of a non-2xx response.
type APIError struct {
	StatusCode int    `json:"-"                 yaml:"status_code"`
	Code       string `json:"code,omitempty"    yaml:"code,omitempty"`
	Message    string `json:"message,omitempty" yaml:"message,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("congress.gov API error (status %d, code %s): %s", e.StatusCode, e.Code, e.Message)
	}

	return fmt.Sprintf("congress.gov API error (status %d): %s", e.StatusCode, e.Message)
}

// errorBody is the upstream error shape. api.data.gov, which fronts the API,
// reports key and rate limit failures with an object in place of the string.
type errorBody struct {
	Error json.RawMessage `json:"error"`
}

type errorObject struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ParseAPIError decodes a non-2xx response body. A body that is not the
// expected shape yields a *DecodeError.
func ParseAPIError(statusCode int, data []byte) (*APIError, error) {
	var body errorBody

	err := json.Unmarshal(data, &body)
	if err != nil {
		return nil, NewDecodeError(err)
	}

	if len(body.Error) == 0 || string(body.Error) == "null" {
		return nil, &DecodeError{Path: "error", Err: ErrMissingErrorField}
	}

	var message string

	err = json.Unmarshal(body.Error, &message)
	if err == nil {
		return &APIError{StatusCode: statusCode, Message: message}, nil
	}

	var object errorObject

	err = json.Unmarshal(body.Error, &object)
	if err != nil {
		return nil, &DecodeError{Path: "error", Err: err}
	}

	return &APIError{StatusCode: statusCode, Code: object.Code, Message: object.Message}, nil
}

// DecodeError reports a response body that does not match the expected
// schema. Path locates the first divergence, e.g. "bills[0].congress".
//
// NewDecodeError alone yields the path encoding/json reports, which has no
// slice indexes ("bills.congress"). Responses decoded by the client carry
// the index of the failing element.
type DecodeError struct {
	Path string
	Err  error
}

// NewDecodeError wraps a JSON decoding error, lifting the field path out of
// *json.UnmarshalTypeError when present.
func NewDecodeError(err error) *DecodeError {
	decodeErr := &DecodeError{Err: err}

	typeErr := &json.UnmarshalTypeError{}
	if errors.As(err, &typeErr) {
		decodeErr.Path = typeErr.Field
	}

	return decodeErr
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("decoding response: %v", e.Err)
	}

	return fmt.Sprintf("decoding response at %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// TransportError is a failure to send a request or receive its response
// headers (DNS, connect, TLS, timeout, cancellation).
type TransportError struct {
	Method string
	URL    string
	Err    error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// ResponseReadError is a failure reading the response body.
type ResponseReadError struct {
	Err error
}

// Error implements the error interface.
func (e *ResponseReadError) Error() string {
	return fmt.Sprintf("reading response body: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *ResponseReadError) Unwrap() error {
	return e.Err
}

// InvalidURLError is a path that cannot be joined onto the base URL.
type InvalidURLError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("invalid request path %q: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *InvalidURLError) Unwrap() error {
	return e.Err
}

// QueryDecodeError is a malformed query value met while rebuilding
// QueryParams from a query string.
type QueryDecodeError struct {
	Key   string
	Value string
	Err   error
}

// Error implements the error interface.
func (e *QueryDecodeError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("decoding query: %v", e.Err)
	}

	return fmt.Sprintf("decoding query parameter %s=%q: %v", e.Key, e.Value, e.Err)
}

// Unwrap returns the underlying error.
func (e *QueryDecodeError) Unwrap() error {
	return e.Err
}

// ConfigError is an invalid client configuration. It is only returned while
// constructing a client.
type ConfigError struct {
	Field string
	Err   error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid configuration: %v", e.Err)
	}

	return fmt.Sprintf("invalid configuration %s: %v", e.Field, e.Err)
}

// Unwrap returns the underlying error.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Static errors for err113 compliance.
var (
	ErrConfigRequired       = errors.New("config is required")
	ErrAPIKeyRequired       = errors.New("API key is required")
	ErrInvalidBaseURL       = errors.New("base URL must be an absolute http or https URL")
	ErrInvalidUserAgent     = errors.New("user agent is not a valid header value")
	ErrInvalidTimeout       = errors.New("HTTP timeout must not be negative")
	ErrMissingErrorField    = errors.New("error body has no error field")
	ErrMissingField         = errors.New("required field is missing or empty")
	ErrInvalidField         = errors.New("field failed validation")
	ErrUnknownBillType      = errors.New("unknown bill type")
	ErrUnknownAmendmentType = errors.New("unknown amendment type")
	ErrUnknownChamber       = errors.New("unknown chamber")
	ErrUnknownSort          = errors.New("unknown sort order")
	ErrNoMoreItems          = errors.New("no more items")
)

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsRateLimited reports whether err is an APIError with status 429 or an
// api.data.gov OVER_RATE_LIMIT code.
func IsRateLimited(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests || apiErr.Code == "OVER_RATE_LIMIT"
	}

	return false
}

// IsUnauthorized reports whether err is an APIError caused by a missing or
// rejected API key.
func IsUnauthorized(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized ||
			apiErr.StatusCode == http.StatusForbidden ||
			strings.HasPrefix(apiErr.Code, "API_KEY_")
	}

	return false
}

func hasStatus(err error, status int) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == status
	}

	return false
}

// RedactURL returns rawURL with the api_key query value masked.
func RedactURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	return redact(parsed)
}

func redact(u *url.URL) string {
	query := u.Query()
	if !query.Has("api_key") {
		return u.String()
	}

	query.Set("api_key", "REDACTED")

	clone := *u
	clone.RawQuery = query.Encode()

	return clone.String()
}
