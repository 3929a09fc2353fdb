package congress

import (
	"context"
	"fmt"
	"time"
)

// PagedRequest builds a request against an endpoint that accepts limit and
// offset. Setters record options; only Send performs I/O.
type PagedRequest[R any] struct {
	requester Requester
	path      string
	params    *QueryParams
}

// NewPagedRequest creates a request for path. R is the response type.
func NewPagedRequest[R any](requester Requester, path string) *PagedRequest[R] {
	return &PagedRequest[R]{
		requester: requester,
		path:      path,
		params:    NewQueryParams(),
	}
}

// Path returns the endpoint path the request targets.
func (r *PagedRequest[R]) Path() string {
	return r.path
}

// Params returns a copy of the accumulated query parameters.
func (r *PagedRequest[R]) Params() *QueryParams {
	return r.params.Clone()
}

// Limit sets the maximum number of items per page.
func (r *PagedRequest[R]) Limit(limit uint32) *PagedRequest[R] {
	r.params.WithLimit(limit)

	return r
}

// Offset sets the number of items to skip.
func (r *PagedRequest[R]) Offset(offset uint32) *PagedRequest[R] {
	r.params.WithOffset(offset)

	return r
}

// Send performs the request.
func (r *PagedRequest[R]) Send(ctx context.Context) (*R, error) {
	return send[R](ctx, r.requester, r.path, r.params)
}

// FilteredRequest builds a request against an endpoint that additionally
// accepts an update-date range and sort order.
type FilteredRequest[R any] struct {
	requester Requester
	path      string
	params    *QueryParams
}

// NewFilteredRequest creates a request for path. R is the response type.
func NewFilteredRequest[R any](requester Requester, path string) *FilteredRequest[R] {
	return &FilteredRequest[R]{
		requester: requester,
		path:      path,
		params:    NewQueryParams(),
	}
}

// Path returns the endpoint path the request targets.
func (r *FilteredRequest[R]) Path() string {
	return r.path
}

// Params returns a copy of the accumulated query parameters.
func (r *FilteredRequest[R]) Params() *QueryParams {
	return r.params.Clone()
}

// Limit sets the maximum number of items per page.
func (r *FilteredRequest[R]) Limit(limit uint32) *FilteredRequest[R] {
	r.params.WithLimit(limit)

	return r
}

// Offset sets the number of items to skip.
func (r *FilteredRequest[R]) Offset(offset uint32) *FilteredRequest[R] {
	r.params.WithOffset(offset)

	return r
}

// FromDate restricts results to items updated at or after t.
func (r *FilteredRequest[R]) FromDate(t time.Time) *FilteredRequest[R] {
	r.params.WithFromDate(t)

	return r
}

// ToDate restricts results to items updated at or before t.
func (r *FilteredRequest[R]) ToDate(t time.Time) *FilteredRequest[R] {
	r.params.WithToDate(t)

	return r
}

// Sort sets the result order.
func (r *FilteredRequest[R]) Sort(sort Sort) *FilteredRequest[R] {
	r.params.WithSort(sort)

	return r
}

// Send performs the request.
func (r *FilteredRequest[R]) Send(ctx context.Context) (*R, error) {
	return send[R](ctx, r.requester, r.path, r.params)
}

// ItemRequest fetches a single resource. It takes no query options.
type ItemRequest[R any] struct {
	requester Requester
	path      string
}

// NewItemRequest creates a request for path. R is the response type.
func NewItemRequest[R any](requester Requester, path string) *ItemRequest[R] {
	return &ItemRequest[R]{requester: requester, path: path}
}

// Path returns the endpoint path the request targets.
func (r *ItemRequest[R]) Path() string {
	return r.path
}

// Send performs the request.
func (r *ItemRequest[R]) Send(ctx context.Context) (*R, error) {
	return send[R](ctx, r.requester, r.path, nil)
}

func send[R any](ctx context.Context, requester Requester, path string, params *QueryParams) (*R, error) {
	var out R

	err := requester.Get(ctx, path, params, &out)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", path, err)
	}

	return &out, nil
}
