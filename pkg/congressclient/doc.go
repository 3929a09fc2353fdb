// Package congressclient provides the primary entry point for constructing a
// Congress.gov v3 API client that implements the congress.Client interface.
//
// It validates configuration and wires the HTTP executor underneath the
// resource builders defined in the congress package. Construction is the only
// place a *congress.ConfigError can come from; once a client exists, every
// failure is one of the request-time error types.
//
// Quick start
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
//
//	  cli, err := congressclient.NewWithAPIKey("DEMO_KEY")
//	  if err != nil { log.Fatal(err) }
//
//	  bills, err := cli.BillsByCongress(118).
//	    Limit(5).
//	    Sort(congress.SortUpdateDateAscending).
//	    Send(ctx)
//	  if err != nil { log.Fatal(err) }
//
//	  next, err := congress.Next(ctx, cli, bills)
//	  if err != nil { log.Fatal(err) }
//	  _ = next // nil on the last page
//	}
//
// # Environment
//
// NewFromEnv reads CONGRESS_API_KEY and, when set, CONGRESS_BASE_URL.
package congressclient
