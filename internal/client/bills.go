package client

import (
	"github.com/fivetwenty-io/congress-client/internal/constants"
	"github.com/fivetwenty-io/congress-client/pkg/congress"
)

// BillHandler implements congress.BillHandler.
type BillHandler struct {
	requester congress.Requester
	path      string
}

// NewBillHandler creates a handler for /v3/bill/{congress}/{type}/{number}.
func NewBillHandler(
	requester congress.Requester,
	congressNumber uint32,
	billType congress.BillType,
	billNumber uint32,
) *BillHandler {
	return &BillHandler{
		requester: requester,
		path:      resourcePath(constants.PathBill, number(congressNumber), billType.String(), number(billNumber)),
	}
}

// Path implements congress.BillHandler.Path.
func (h *BillHandler) Path() string {
	return h.path
}

// Get implements congress.BillHandler.Get.
func (h *BillHandler) Get() *congress.ItemRequest[congress.BillResponse] {
	return congress.NewItemRequest[congress.BillResponse](h.requester, h.path)
}

// Actions implements congress.BillHandler.Actions.
func (h *BillHandler) Actions() *congress.PagedRequest[congress.ActionsResponse] {
	return subResource[congress.ActionsResponse](h.requester, h.path, constants.PathActions)
}

// Amendments implements congress.BillHandler.Amendments.
func (h *BillHandler) Amendments() *congress.PagedRequest[congress.AmendmentsResponse] {
	return subResource[congress.AmendmentsResponse](h.requester, h.path, constants.PathAmendments)
}

// Committees implements congress.BillHandler.Committees.
func (h *BillHandler) Committees() *congress.PagedRequest[congress.CommitteesResponse] {
	return subResource[congress.CommitteesResponse](h.requester, h.path, constants.PathCommittees)
}

// Cosponsors implements congress.BillHandler.Cosponsors.
func (h *BillHandler) Cosponsors() *congress.PagedRequest[congress.CosponsorsResponse] {
	return subResource[congress.CosponsorsResponse](h.requester, h.path, constants.PathCosponsors)
}

// RelatedBills implements congress.BillHandler.RelatedBills.
func (h *BillHandler) RelatedBills() *congress.PagedRequest[congress.RelatedBillsResponse] {
	return subResource[congress.RelatedBillsResponse](h.requester, h.path, constants.PathRelated)
}

// Subjects implements congress.BillHandler.Subjects.
func (h *BillHandler) Subjects() *congress.PagedRequest[congress.SubjectsResponse] {
	return subResource[congress.SubjectsResponse](h.requester, h.path, constants.PathSubjects)
}

// Summaries implements congress.BillHandler.Summaries.
func (h *BillHandler) Summaries() *congress.PagedRequest[congress.SummariesResponse] {
	return subResource[congress.SummariesResponse](h.requester, h.path, constants.PathSummaries)
}

// Text implements congress.BillHandler.Text.
func (h *BillHandler) Text() *congress.PagedRequest[congress.TextVersionsResponse] {
	return subResource[congress.TextVersionsResponse](h.requester, h.path, constants.PathText)
}

// Titles implements congress.BillHandler.Titles.
func (h *BillHandler) Titles() *congress.PagedRequest[congress.TitlesResponse] {
	return subResource[congress.TitlesResponse](h.requester, h.path, constants.PathTitles)
}

var _ congress.BillHandler = (*BillHandler)(nil)
