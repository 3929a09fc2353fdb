package client

import (
	"net/url"
	"strings"

	"github.com/fivetwenty-io/congress-client/internal/constants"
	"github.com/fivetwenty-io/congress-client/pkg/congress"
)

// resourcePath joins segments under the API version prefix, escaping each.
func resourcePath(segments ...string) string {
	escaped := make([]string, 0, len(segments))
	for _, segment := range segments {
		escaped = append(escaped, url.PathEscape(segment))
	}

	return constants.APIPathPrefix + "/" + strings.Join(escaped, "/")
}

// subResource builds a paged request for a child collection of parent.
func subResource[R any](requester congress.Requester, parent, segment string) *congress.PagedRequest[R] {
	return congress.NewPagedRequest[R](requester, parent+"/"+segment)
}
