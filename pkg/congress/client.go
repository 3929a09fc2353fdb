package congress

import (
	"context"
	"time"
)

// Requester performs a GET against path relative to the configured base URL
// and decodes the JSON body into out. It is the single entry point every
// request builder and page fetcher goes through.
type Requester interface {
	Get(ctx context.Context, path string, params *QueryParams, out any) error
}

// Client is the main interface for interacting with the Congress.gov API.
type Client interface {
	Requester

	// Bills
	Bills() *FilteredRequest[BillsResponse]
	BillsByCongress(congress uint32) *FilteredRequest[BillsResponse]
	BillsByType(congress uint32, billType BillType) *FilteredRequest[BillsResponse]
	Bill(congress uint32, billType BillType, number uint32) BillHandler

	// Amendments
	Amendments() *FilteredRequest[AmendmentsResponse]
	AmendmentsByCongress(congress uint32) *FilteredRequest[AmendmentsResponse]
	AmendmentsByType(congress uint32, amendmentType AmendmentType) *FilteredRequest[AmendmentsResponse]
	Amendment(congress uint32, amendmentType AmendmentType, number uint32) AmendmentHandler

	// Summaries
	Summaries() *FilteredRequest[SummariesResponse]
	SummariesByCongress(congress uint32) *FilteredRequest[SummariesResponse]
	SummariesByType(congress uint32, billType BillType) *FilteredRequest[SummariesResponse]

	// Members
	Members() *FilteredRequest[MembersResponse]
	Member(bioguideID string) MemberHandler

	// Congresses
	Congresses() *PagedRequest[CongressesResponse]
	Congress(number uint32) *ItemRequest[CongressResponse]
	CurrentCongress() *ItemRequest[CongressResponse]
}

// BillHandler exposes a single bill and its sub-resources. Obtaining a
// handler performs no request.
type BillHandler interface {
	Path() string
	Get() *ItemRequest[BillResponse]
	Actions() *PagedRequest[ActionsResponse]
	Amendments() *PagedRequest[AmendmentsResponse]
	Committees() *PagedRequest[CommitteesResponse]
	Cosponsors() *PagedRequest[CosponsorsResponse]
	RelatedBills() *PagedRequest[RelatedBillsResponse]
	Subjects() *PagedRequest[SubjectsResponse]
	Summaries() *PagedRequest[SummariesResponse]
	Text() *PagedRequest[TextVersionsResponse]
	Titles() *PagedRequest[TitlesResponse]
}

// AmendmentHandler exposes a single amendment and its sub-resources.
type AmendmentHandler interface {
	Path() string
	Get() *ItemRequest[AmendmentResponse]
	Actions() *PagedRequest[ActionsResponse]
	Amendments() *PagedRequest[AmendmentsResponse]
	Cosponsors() *PagedRequest[CosponsorsResponse]
}

// MemberHandler exposes a single member of Congress.
type MemberHandler interface {
	Path() string
	Get() *ItemRequest[MemberResponse]
	SponsoredLegislation() *PagedRequest[SponsoredLegislationResponse]
	CosponsoredLegislation() *PagedRequest[CosponsoredLegislationResponse]
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config holds client configuration.
type Config struct {
	// APIKey is the api.data.gov key sent as the api_key query parameter. Required.
	APIKey string

	// BaseURL overrides the API root. Defaults to https://api.congress.gov/.
	BaseURL string

	// UserAgent overrides the User-Agent header. Defaults to congress-client/<version>.
	UserAgent string

	// HTTPTimeout bounds a single request. Defaults to 30s.
	HTTPTimeout time.Duration

	// Debug logs every request and response through Logger.
	Debug bool

	// Logger receives client logs. Optional.
	Logger Logger
}
