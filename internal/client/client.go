// Package client implements congress.Client on top of the internal HTTP
// executor.
package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/fivetwenty-io/congress-client/internal/constants"
	"github.com/fivetwenty-io/congress-client/internal/http"
	"github.com/fivetwenty-io/congress-client/pkg/congress"
	"github.com/go-playground/validator/v10"
)

// Client implements the congress.Client interface.
type Client struct {
	httpClient *http.Client
	validate   *validator.Validate
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *congress.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	return httpOpts
}

// New creates a client from an already validated config. An empty BaseURL
// selects the public API.
func New(config *congress.Config) (*Client, error) {
	if config == nil {
		return nil, &congress.ConfigError{Err: congress.ErrConfigRequired}
	}

	if config.APIKey == "" {
		return nil, &congress.ConfigError{Field: "APIKey", Err: congress.ErrAPIKeyRequired}
	}

	rawBaseURL := config.BaseURL
	if rawBaseURL == "" {
		rawBaseURL = constants.DefaultBaseURL
	}

	baseURL, err := url.Parse(rawBaseURL)
	if err != nil {
		return nil, &congress.ConfigError{Field: "BaseURL", Err: err}
	}

	httpClient := http.NewClient(baseURL, config.APIKey, createHTTPClientOptions(config)...)

	return &Client{
		httpClient: httpClient,
		validate:   newValidator(),
	}, nil
}

// Get implements congress.Requester. The body of a 2xx response is decoded
// into out and checked for required fields.
func (c *Client) Get(ctx context.Context, path string, params *congress.QueryParams, out any) error {
	query, err := params.Values()
	if err != nil {
		return fmt.Errorf("encoding query parameters: %w", err)
	}

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return err
	}

	return c.decode(resp.Body, out)
}

// Bills implements congress.Client.Bills.
func (c *Client) Bills() *congress.FilteredRequest[congress.BillsResponse] {
	return congress.NewFilteredRequest[congress.BillsResponse](c, resourcePath(constants.PathBill))
}

// BillsByCongress implements congress.Client.BillsByCongress.
func (c *Client) BillsByCongress(congressNumber uint32) *congress.FilteredRequest[congress.BillsResponse] {
	return congress.NewFilteredRequest[congress.BillsResponse](c,
		resourcePath(constants.PathBill, number(congressNumber)))
}

// BillsByType implements congress.Client.BillsByType.
func (c *Client) BillsByType(congressNumber uint32, billType congress.BillType) *congress.FilteredRequest[congress.BillsResponse] {
	return congress.NewFilteredRequest[congress.BillsResponse](c,
		resourcePath(constants.PathBill, number(congressNumber), billType.String()))
}

// Bill implements congress.Client.Bill.
func (c *Client) Bill(congressNumber uint32, billType congress.BillType, billNumber uint32) congress.BillHandler {
	return NewBillHandler(c, congressNumber, billType, billNumber)
}

// Amendments implements congress.Client.Amendments.
func (c *Client) Amendments() *congress.FilteredRequest[congress.AmendmentsResponse] {
	return congress.NewFilteredRequest[congress.AmendmentsResponse](c, resourcePath(constants.PathAmendment))
}

// AmendmentsByCongress implements congress.Client.AmendmentsByCongress.
func (c *Client) AmendmentsByCongress(congressNumber uint32) *congress.FilteredRequest[congress.AmendmentsResponse] {
	return congress.NewFilteredRequest[congress.AmendmentsResponse](c,
		resourcePath(constants.PathAmendment, number(congressNumber)))
}

// AmendmentsByType implements congress.Client.AmendmentsByType.
func (c *Client) AmendmentsByType(
	congressNumber uint32,
	amendmentType congress.AmendmentType,
) *congress.FilteredRequest[congress.AmendmentsResponse] {
	return congress.NewFilteredRequest[congress.AmendmentsResponse](c,
		resourcePath(constants.PathAmendment, number(congressNumber), amendmentType.String()))
}

// Amendment implements congress.Client.Amendment.
func (c *Client) Amendment(
	congressNumber uint32,
	amendmentType congress.AmendmentType,
	amendmentNumber uint32,
) congress.AmendmentHandler {
	return NewAmendmentHandler(c, congressNumber, amendmentType, amendmentNumber)
}

// Summaries implements congress.Client.Summaries.
func (c *Client) Summaries() *congress.FilteredRequest[congress.SummariesResponse] {
	return congress.NewFilteredRequest[congress.SummariesResponse](c, resourcePath(constants.PathSummaries))
}

// SummariesByCongress implements congress.Client.SummariesByCongress.
func (c *Client) SummariesByCongress(congressNumber uint32) *congress.FilteredRequest[congress.SummariesResponse] {
	return congress.NewFilteredRequest[congress.SummariesResponse](c,
		resourcePath(constants.PathSummaries, number(congressNumber)))
}

// SummariesByType implements congress.Client.SummariesByType.
func (c *Client) SummariesByType(
	congressNumber uint32,
	billType congress.BillType,
) *congress.FilteredRequest[congress.SummariesResponse] {
	return congress.NewFilteredRequest[congress.SummariesResponse](c,
		resourcePath(constants.PathSummaries, number(congressNumber), billType.String()))
}

// Members implements congress.Client.Members.
func (c *Client) Members() *congress.FilteredRequest[congress.MembersResponse] {
	return congress.NewFilteredRequest[congress.MembersResponse](c, resourcePath(constants.PathMember))
}

// Member implements congress.Client.Member.
func (c *Client) Member(bioguideID string) congress.MemberHandler {
	return NewMemberHandler(c, bioguideID)
}

// Congresses implements congress.Client.Congresses.
func (c *Client) Congresses() *congress.PagedRequest[congress.CongressesResponse] {
	return congress.NewPagedRequest[congress.CongressesResponse](c, resourcePath(constants.PathCongress))
}

// Congress implements congress.Client.Congress.
func (c *Client) Congress(congressNumber uint32) *congress.ItemRequest[congress.CongressResponse] {
	return congress.NewItemRequest[congress.CongressResponse](c,
		resourcePath(constants.PathCongress, number(congressNumber)))
}

// CurrentCongress implements congress.Client.CurrentCongress.
func (c *Client) CurrentCongress() *congress.ItemRequest[congress.CongressResponse] {
	return congress.NewItemRequest[congress.CongressResponse](c,
		resourcePath(constants.PathCongress, constants.PathCurrent))
}

func number(n uint32) string {
	return strconv.FormatUint(uint64(n), 10)
}

var _ congress.Client = (*Client)(nil)
