package client

import (
	"github.com/fivetwenty-io/congress-client/internal/constants"
	"github.com/fivetwenty-io/congress-client/pkg/congress"
)

// AmendmentHandler implements congress.AmendmentHandler.
type AmendmentHandler struct {
	requester congress.Requester
	path      string
}

// NewAmendmentHandler creates a handler for /v3/amendment/{congress}/{type}/{number}.
func NewAmendmentHandler(
	requester congress.Requester,
	congressNumber uint32,
	amendmentType congress.AmendmentType,
	amendmentNumber uint32,
) *AmendmentHandler {
	return &AmendmentHandler{
		requester: requester,
		path: resourcePath(constants.PathAmendment, number(congressNumber),
			amendmentType.String(), number(amendmentNumber)),
	}
}

// Path implements congress.AmendmentHandler.Path.
func (h *AmendmentHandler) Path() string {
	return h.path
}

// Get implements congress.AmendmentHandler.Get.
func (h *AmendmentHandler) Get() *congress.ItemRequest[congress.AmendmentResponse] {
	return congress.NewItemRequest[congress.AmendmentResponse](h.requester, h.path)
}

// Actions implements congress.AmendmentHandler.Actions.
func (h *AmendmentHandler) Actions() *congress.PagedRequest[congress.ActionsResponse] {
	return subResource[congress.ActionsResponse](h.requester, h.path, constants.PathActions)
}

// Amendments lists amendments to this amendment.
func (h *AmendmentHandler) Amendments() *congress.PagedRequest[congress.AmendmentsResponse] {
	return subResource[congress.AmendmentsResponse](h.requester, h.path, constants.PathAmendments)
}

// Cosponsors implements congress.AmendmentHandler.Cosponsors.
func (h *AmendmentHandler) Cosponsors() *congress.PagedRequest[congress.CosponsorsResponse] {
	return subResource[congress.CosponsorsResponse](h.requester, h.path, constants.PathCosponsors)
}

var _ congress.AmendmentHandler = (*AmendmentHandler)(nil)
