package client

import (
	"github.com/fivetwenty-io/congress-client/internal/constants"
	"github.com/fivetwenty-io/congress-client/pkg/congress"
)

// MemberHandler implements congress.MemberHandler.
type MemberHandler struct {
	requester congress.Requester
	path      string
}

// NewMemberHandler creates a handler for /v3/member/{bioguideId}.
func NewMemberHandler(requester congress.Requester, bioguideID string) *MemberHandler {
	return &MemberHandler{
		requester: requester,
		path:      resourcePath(constants.PathMember, bioguideID),
	}
}

// Path implements congress.MemberHandler.Path.
func (h *MemberHandler) Path() string {
	return h.path
}

// Get implements congress.MemberHandler.Get.
func (h *MemberHandler) Get() *congress.ItemRequest[congress.MemberResponse] {
	return congress.NewItemRequest[congress.MemberResponse](h.requester, h.path)
}

// SponsoredLegislation implements congress.MemberHandler.SponsoredLegislation.
func (h *MemberHandler) SponsoredLegislation() *congress.PagedRequest[congress.SponsoredLegislationResponse] {
	return subResource[congress.SponsoredLegislationResponse](h.requester, h.path, constants.PathSponsored)
}

// CosponsoredLegislation implements congress.MemberHandler.CosponsoredLegislation.
func (h *MemberHandler) CosponsoredLegislation() *congress.PagedRequest[congress.CosponsoredLegislationResponse] {
	return subResource[congress.CosponsoredLegislationResponse](h.requester, h.path, constants.PathCosponsored)
}

var _ congress.MemberHandler = (*MemberHandler)(nil)
