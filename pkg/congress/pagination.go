package congress

import (
	"context"
	"fmt"
	"iter"
	"net/url"
)

// Pager is implemented by every list response.
type Pager interface {
	PageInfo() Pagination
	PreviousURL() *url.URL
	NextURL() *url.URL
}

// PagedResponse is a list response whose items are of type T.
type PagedResponse[T any] interface {
	Pager
	Items() []T
}

// Direction selects which pagination link to follow.
type Direction int

// Directions.
const (
	DirectionForward Direction = iota
	DirectionPrevious
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	if d == DirectionPrevious {
		return "previous"
	}

	return "next"
}

// FetchAdjacentPage follows the previous or next link of resp and decodes
// the page into a new value of the same type. It returns nil, nil when resp
// has no link in that direction. resp is never modified.
//
// The link's path and query are re-sent through requester, so the configured
// base URL and API key apply; the link's host is not used.
func FetchAdjacentPage[E any, R interface {
	*E
	Pager
}](ctx context.Context, requester Requester, resp R, direction Direction) (R, error) {
	if resp == nil {
		return nil, nil
	}

	link := resp.NextURL()
	if direction == DirectionPrevious {
		link = resp.PreviousURL()
	}

	if link == nil || *link == (url.URL{}) {
		return nil, nil
	}

	params, err := ParseQueryParams(link.RawQuery)
	if err != nil {
		return nil, fmt.Errorf("following %s page link: %w", direction, err)
	}

	page := R(new(E))

	err = requester.Get(ctx, link.EscapedPath(), params, page)
	if err != nil {
		return nil, fmt.Errorf("fetching %s page: %w", direction, err)
	}

	return page, nil
}

// Next fetches the page after resp, or returns nil, nil on the last page.
func Next[E any, R interface {
	*E
	Pager
}](ctx context.Context, requester Requester, resp R) (R, error) {
	return FetchAdjacentPage[E, R](ctx, requester, resp, DirectionForward)
}

// Previous fetches the page before resp, or returns nil, nil on the first page.
func Previous[E any, R interface {
	*E
	Pager
}](ctx context.Context, requester Requester, resp R) (R, error) {
	return FetchAdjacentPage[E, R](ctx, requester, resp, DirectionPrevious)
}

// Pages yields first and then every following page until the last one or
// the first error. Iteration runs on the caller's goroutine.
func Pages[E any, R interface {
	*E
	Pager
}](ctx context.Context, requester Requester, first R) iter.Seq2[R, error] {
	return func(yield func(R, error) bool) {
		page := first
		for page != nil {
			if !yield(page, nil) {
				return
			}

			next, err := Next[E, R](ctx, requester, page)
			if err != nil {
				yield(nil, err)

				return
			}

			page = next
		}
	}
}

// PaginationOptions bounds a multi-page fetch.
type PaginationOptions struct {
	// MaxPages stops after this many pages, counting the first. Zero means no limit.
	MaxPages int
}

// DefaultPaginationOptions returns options with no page limit.
func DefaultPaginationOptions() *PaginationOptions {
	return &PaginationOptions{}
}

// FetchAllPages collects the items of first and every following page.
// Callers name the item type; the response types are inferred:
//
//	bills, err := congress.FetchAllPages[congress.BillSummary](ctx, cli, first, nil)
func FetchAllPages[T any, E any, R interface {
	*E
	PagedResponse[T]
}](ctx context.Context, requester Requester, first R, opts *PaginationOptions) ([]T, error) {
	if opts == nil {
		opts = DefaultPaginationOptions()
	}

	var (
		items []T
		pages int
	)

	for page, err := range Pages[E, R](ctx, requester, first) {
		if err != nil {
			return nil, fmt.Errorf("failed to fetch page %d: %w", pages+1, err)
		}

		items = append(items, page.Items()...)
		pages++

		if opts.MaxPages > 0 && pages >= opts.MaxPages {
			break
		}
	}

	return items, nil
}

// PaginationIterator walks the items of a paged collection one at a time,
// fetching pages lazily.
type PaginationIterator[T any, E any, R interface {
	*E
	PagedResponse[T]
}] struct {
	ctx       context.Context
	requester Requester
	page      R
	index     int
	err       error
}

// NewPaginationIterator starts an iterator at the first item of first.
func NewPaginationIterator[T any, E any, R interface {
	*E
	PagedResponse[T]
}](ctx context.Context, requester Requester, first R) *PaginationIterator[T, E, R] {
	return &PaginationIterator[T, E, R]{
		ctx:       ctx,
		requester: requester,
		page:      first,
	}
}

// HasNext reports whether another item is available, fetching the next page
// when the current one is exhausted. Errors are reported by Err.
func (it *PaginationIterator[T, E, R]) HasNext() bool {
	for it.err == nil && it.page != nil {
		if it.index < len(it.page.Items()) {
			return true
		}

		next, err := Next[E, R](it.ctx, it.requester, it.page)
		if err != nil {
			it.err = err

			return false
		}

		it.page = next
		it.index = 0
	}

	return false
}

// Next returns the next item. It returns ErrNoMoreItems once the collection
// is exhausted, or the error that stopped iteration.
func (it *PaginationIterator[T, E, R]) Next() (T, error) {
	var zero T

	if !it.HasNext() {
		if it.err != nil {
			return zero, it.err
		}

		return zero, ErrNoMoreItems
	}

	item := it.page.Items()[it.index]
	it.index++

	return item, nil
}

// Err returns the error that stopped iteration, if any.
func (it *PaginationIterator[T, E, R]) Err() error {
	return it.err
}
