package congress

import (
	"encoding/json"
	"fmt"
	"net/url"
	"reflect"
	"strings"
	"time"
)

// URL is an absolute link issued by the API.
type URL struct {
	url.URL
}

// MarshalText implements encoding.TextMarshaler.
func (u URL) MarshalText() ([]byte, error) {
	return []byte(u.URL.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *URL) UnmarshalText(text []byte) error {
	parsed, err := url.Parse(string(text))
	if err != nil {
		return fmt.Errorf("parsing link %q: %w", text, err)
	}

	u.URL = *parsed

	return nil
}

// IsEmpty reports whether the API sent an empty string for the link.
func (u *URL) IsEmpty() bool {
	return u.URL == url.URL{}
}

// Copy returns an independent *url.URL, or nil if u is nil or empty.
func (u *URL) Copy() *url.URL {
	if u == nil || u.IsEmpty() {
		return nil
	}

	clone := u.URL
	if u.User != nil {
		user := *u.User
		clone.User = &user
	}

	return &clone
}

// Date layouts used by the API.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02T15:04:05Z"
)

// Date is a calendar date or timestamp. The API emits both "2006-01-02" and
// RFC 3339 timestamps, sometimes for the same field across endpoints.
type Date struct {
	time.Time
}

// ParseDate accepts a bare date or an RFC 3339 timestamp.
func ParseDate(value string) (Date, error) {
	if t, err := time.Parse(DateLayout, value); err == nil {
		return Date{Time: t}, nil
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return Date{}, fmt.Errorf("parsing date %q: %w", value, err)
	}

	return Date{Time: t}, nil
}

// String renders a bare date when there is no time-of-day component.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}

	utc := d.UTC()
	if utc.Hour() == 0 && utc.Minute() == 0 && utc.Second() == 0 && utc.Nanosecond() == 0 {
		return utc.Format(DateLayout)
	}

	return d.Format(time.RFC3339)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*d = Date{}

		return nil
	}

	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var raw string

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return &json.UnmarshalTypeError{Value: describeJSON(data), Type: reflect.TypeFor[Date]()}
	}

	if raw == "" {
		*d = Date{}

		return nil
	}

	parsed, err := ParseDate(raw)
	if err != nil {
		return &json.UnmarshalTypeError{Value: "string " + raw, Type: reflect.TypeFor[Date]()}
	}

	*d = parsed

	return nil
}

// describeJSON names the JSON kind of a raw value for type errors.
func describeJSON(data []byte) string {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return "empty"
	}

	switch trimmed[0] {
	case '{':
		return "object"
	case '[':
		return "array"
	case '"':
		return "string"
	case 't', 'f':
		return "bool"
	default:
		return "number"
	}
}

// Pagination is the envelope attached to every list response.
type Pagination struct {
	Count    uint32 `json:"count"          yaml:"count"`
	Previous *URL   `json:"prev,omitempty" yaml:"prev,omitempty"`
	Next     *URL   `json:"next,omitempty" yaml:"next,omitempty"`
}

// Paged is embedded by list responses to carry the pagination envelope.
type Paged struct {
	Pagination Pagination `json:"pagination" yaml:"pagination"`
}

// PageInfo returns the pagination envelope.
func (p Paged) PageInfo() Pagination {
	return p.Pagination
}

// PreviousURL returns a copy of the previous-page link, or nil.
func (p Paged) PreviousURL() *url.URL {
	return p.Pagination.Previous.Copy()
}

// NextURL returns a copy of the next-page link, or nil.
func (p Paged) NextURL() *url.URL {
	return p.Pagination.Next.Copy()
}

// LatestAction is the most recent action recorded against a measure.
type LatestAction struct {
	ActionDate Date   `json:"actionDate"           yaml:"actionDate"`
	ActionTime string `json:"actionTime,omitempty" yaml:"actionTime,omitempty"`
	Text       string `json:"text"                 yaml:"text"`
}

// CountRef is a count of related records plus the link that lists them.
type CountRef struct {
	Count uint32 `json:"count" yaml:"count"`
	URL   string `json:"url"   yaml:"url"`
}

// CosponsorsRef extends CountRef with the count that includes withdrawn cosponsors.
type CosponsorsRef struct {
	Count                             uint32 `json:"count"                             yaml:"count"`
	CountIncludingWithdrawnCosponsors uint32 `json:"countIncludingWithdrawnCosponsors" yaml:"countIncludingWithdrawnCosponsors"`
	URL                               string `json:"url"                               yaml:"url"`
}
