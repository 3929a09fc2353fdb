// Package congress provides types, interfaces, and helpers for working with the
// Congress.gov v3 API.
//
// # Overview
//
// The congress package defines the domain types (e.g., BillSummary, Bill,
// Amendment, Action, Cosponsor, Member) and the interfaces for resource
// handlers (e.g., BillHandler, AmendmentHandler). A concrete implementation is
// provided by the congressclient package, which wires configuration and
// transport. Most consumers should import congressclient to construct a client
// and then interact with the handlers exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/congress-client/pkg/congress"
//	  "github.com/fivetwenty-io/congress-client/pkg/congressclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := congressclient.New(&congress.Config{APIKey: "DEMO_KEY"})
//	  if err != nil { log.Fatal(err) }
//
//	  // First page of bills from the 118th Congress, oldest update first.
//	  bills, err := cli.BillsByCongress(118).
//	    Limit(5).
//	    Sort(congress.SortUpdateDateAscending).
//	    Send(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = bills
//	}
//
// Nothing is sent until Send is called. Required path components (congress
// number, bill type, bill number) are constructor arguments; optional query
// options are chained setters.
//
// # Queries and pagination
//
// QueryParams carries the recognized query options (limit, offset,
// fromDateTime, toDateTime, sort). It encodes to a query string and decodes
// from one, which is how pagination links are followed: the server-issued
// next or prev URL is parsed back into QueryParams and re-sent through the
// same pipeline.
//
//	next, err := congress.Next(ctx, cli, bills)
//	if err != nil { /* handle error */ }
//	if next == nil { /* last page */ }
//
// or walk every page:
//
//	for page, err := range congress.Pages(ctx, cli, bills) {
//	  if err != nil { break }
//	  _ = page.Items()
//	}
//
// # Errors
//
// Failures are typed: ConfigError, InvalidURLError, TransportError,
// ResponseReadError, DecodeError, APIError and QueryDecodeError. Use
// errors.As to branch on them. IsNotFound, IsRateLimited and IsUnauthorized
// cover the common upstream rejections.
package congress
