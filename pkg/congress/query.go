package congress

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/google/go-querystring/query"
)

// Query parameter names.
const (
	ParamLimit    = "limit"
	ParamOffset   = "offset"
	ParamFromDate = "fromDateTime"
	ParamToDate   = "toDateTime"
	ParamSort     = "sort"
)

// QueryParams holds the recognized list options. Unset fields are omitted
// from the encoded query.
type QueryParams struct {
	Limit    *uint32    `url:"limit,omitempty"        json:"limit,omitempty"        yaml:"limit,omitempty"`
	Offset   *uint32    `url:"offset,omitempty"       json:"offset,omitempty"       yaml:"offset,omitempty"`
	FromDate *time.Time `url:"fromDateTime,omitempty" json:"fromDateTime,omitempty" yaml:"fromDateTime,omitempty" layout:"2006-01-02T15:04:05Z"`
	ToDate   *time.Time `url:"toDateTime,omitempty"   json:"toDateTime,omitempty"   yaml:"toDateTime,omitempty"   layout:"2006-01-02T15:04:05Z"`
	Sort     *Sort      `url:"sort,omitempty"         json:"sort,omitempty"         yaml:"sort,omitempty"`
}

// NewQueryParams creates an empty QueryParams.
func NewQueryParams() *QueryParams {
	return &QueryParams{}
}

// WithLimit sets the page size.
func (q *QueryParams) WithLimit(limit uint32) *QueryParams {
	q.Limit = &limit

	return q
}

// WithOffset sets the zero-based number of items to skip.
func (q *QueryParams) WithOffset(offset uint32) *QueryParams {
	q.Offset = &offset

	return q
}

// WithFromDate sets the inclusive lower update bound. The wire format has
// second precision in UTC, so t is normalized to match.
func (q *QueryParams) WithFromDate(t time.Time) *QueryParams {
	normalized := normalizeTime(t)
	q.FromDate = &normalized

	return q
}

// WithToDate sets the inclusive upper update bound.
func (q *QueryParams) WithToDate(t time.Time) *QueryParams {
	normalized := normalizeTime(t)
	q.ToDate = &normalized

	return q
}

// WithSort sets the sort order.
func (q *QueryParams) WithSort(sort Sort) *QueryParams {
	q.Sort = &sort

	return q
}

// Clone returns a deep copy. A nil receiver yields an empty QueryParams.
func (q *QueryParams) Clone() *QueryParams {
	clone := &QueryParams{}
	if q == nil {
		return clone
	}

	if q.Limit != nil {
		clone.WithLimit(*q.Limit)
	}

	if q.Offset != nil {
		clone.WithOffset(*q.Offset)
	}

	if q.FromDate != nil {
		clone.WithFromDate(*q.FromDate)
	}

	if q.ToDate != nil {
		clone.WithToDate(*q.ToDate)
	}

	if q.Sort != nil {
		clone.WithSort(*q.Sort)
	}

	return clone
}

// IsEmpty reports whether no field is set.
func (q *QueryParams) IsEmpty() bool {
	return q == nil || (q.Limit == nil && q.Offset == nil && q.FromDate == nil && q.ToDate == nil && q.Sort == nil)
}

// Values converts the populated fields to url.Values. Dates are sent in UTC
// with second precision however the fields were set.
func (q *QueryParams) Values() (url.Values, error) {
	if q == nil {
		return url.Values{}, nil
	}

	values, err := query.Values(q.Clone())
	if err != nil {
		return nil, fmt.Errorf("encoding query parameters: %w", err)
	}

	return values, nil
}

// Encode returns the populated fields as a URL-encoded query string.
func (q *QueryParams) Encode() (string, error) {
	values, err := q.Values()
	if err != nil {
		return "", err
	}

	return values.Encode(), nil
}

// ParseQueryParams parses a raw query string, such as the query of a
// pagination link. Unrecognized keys are ignored.
func ParseQueryParams(raw string) (*QueryParams, error) {
	values, err := url.ParseQuery(raw)
	if err != nil {
		return nil, &QueryDecodeError{Err: err}
	}

	return QueryParamsFromValues(values)
}

// QueryParamsFromValues reads the recognized keys from values. Unrecognized
// keys, including api_key and format, are ignored.
func QueryParamsFromValues(values url.Values) (*QueryParams, error) {
	params := NewQueryParams()

	if values.Has(ParamLimit) {
		limit, err := parseUint32(values, ParamLimit)
		if err != nil {
			return nil, err
		}

		params.WithLimit(limit)
	}

	if values.Has(ParamOffset) {
		offset, err := parseUint32(values, ParamOffset)
		if err != nil {
			return nil, err
		}

		params.WithOffset(offset)
	}

	if values.Has(ParamFromDate) {
		from, err := parseDateTime(values, ParamFromDate)
		if err != nil {
			return nil, err
		}

		params.WithFromDate(from)
	}

	if values.Has(ParamToDate) {
		to, err := parseDateTime(values, ParamToDate)
		if err != nil {
			return nil, err
		}

		params.WithToDate(to)
	}

	if values.Has(ParamSort) {
		raw := values.Get(ParamSort)

		sort, err := ParseSort(raw)
		if err != nil {
			return nil, &QueryDecodeError{Key: ParamSort, Value: raw, Err: err}
		}

		params.WithSort(sort)
	}

	return params, nil
}

func parseUint32(values url.Values, key string) (uint32, error) {
	raw := values.Get(key)

	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, &QueryDecodeError{Key: key, Value: raw, Err: err}
	}

	return uint32(parsed), nil
}

func parseDateTime(values url.Values, key string) (time.Time, error) {
	raw := values.Get(key)

	parsed, err := time.Parse(DateTimeLayout, raw)
	if err != nil {
		return time.Time{}, &QueryDecodeError{Key: key, Value: raw, Err: err}
	}

	return parsed, nil
}

func normalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}
