package client_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/fivetwenty-io/congress-client/internal/client"
	"github.com/fivetwenty-io/congress-client/pkg/congress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *client.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cli, err := client.New(&congress.Config{
		APIKey:  "test-key",
		BaseURL: server.URL,
	})
	require.NoError(t, err)

	return cli
}

func writeJSON(writer http.ResponseWriter, status int, body string) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	_, _ = writer.Write([]byte(body))
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		_, err := client.New(nil)

		var configErr *congress.ConfigError
		require.ErrorAs(t, err, &configErr)
		assert.ErrorIs(t, err, congress.ErrConfigRequired)
	})

	t.Run("missing API key", func(t *testing.T) {
		t.Parallel()

		_, err := client.New(&congress.Config{})

		var configErr *congress.ConfigError
		require.ErrorAs(t, err, &configErr)
		assert.Equal(t, "APIKey", configErr.Field)
	})

	t.Run("default base URL", func(t *testing.T) {
		t.Parallel()

		cli, err := client.New(&congress.Config{APIKey: "key"})
		require.NoError(t, err)
		assert.NotNil(t, cli)
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Paths(t *testing.T) {
	t.Parallel()

	cli, err := client.New(&congress.Config{APIKey: "key"})
	require.NoError(t, err)

	testCases := []struct {
		name string
		path string
		want string
	}{
		{name: "bills", path: cli.Bills().Path(), want: "/v3/bill"},
		{name: "bills by congress", path: cli.BillsByCongress(118).Path(), want: "/v3/bill/118"},
		{
			name: "bills by type",
			path: cli.BillsByType(118, congress.BillTypeHouse).Path(),
			want: "/v3/bill/118/hr",
		},
		{
			name: "bill",
			path: cli.Bill(118, congress.BillTypeHouse, 1234).Path(),
			want: "/v3/bill/118/hr/1234",
		},
		{
			name: "bill actions",
			path: cli.Bill(118, congress.BillTypeHouse, 1234).Actions().Path(),
			want: "/v3/bill/118/hr/1234/actions",
		},
		{
			name: "bill amendments",
			path: cli.Bill(117, congress.BillTypeSenate, 5).Amendments().Path(),
			want: "/v3/bill/117/s/5/amendments",
		},
		{
			name: "bill committees",
			path: cli.Bill(118, congress.BillTypeHouseJointResolution, 7).Committees().Path(),
			want: "/v3/bill/118/hjres/7/committees",
		},
		{
			name: "bill cosponsors",
			path: cli.Bill(118, congress.BillTypeHouse, 1).Cosponsors().Path(),
			want: "/v3/bill/118/hr/1/cosponsors",
		},
		{
			name: "bill related bills",
			path: cli.Bill(118, congress.BillTypeHouse, 1).RelatedBills().Path(),
			want: "/v3/bill/118/hr/1/relatedbills",
		},
		{
			name: "bill subjects",
			path: cli.Bill(118, congress.BillTypeHouse, 1).Subjects().Path(),
			want: "/v3/bill/118/hr/1/subjects",
		},
		{
			name: "bill summaries",
			path: cli.Bill(118, congress.BillTypeHouse, 1).Summaries().Path(),
			want: "/v3/bill/118/hr/1/summaries",
		},
		{
			name: "bill text",
			path: cli.Bill(118, congress.BillTypeHouse, 1).Text().Path(),
			want: "/v3/bill/118/hr/1/text",
		},
		{
			name: "bill titles",
			path: cli.Bill(118, congress.BillTypeHouse, 1).Titles().Path(),
			want: "/v3/bill/118/hr/1/titles",
		},
		{name: "amendments", path: cli.Amendments().Path(), want: "/v3/amendment"},
		{name: "amendments by congress", path: cli.AmendmentsByCongress(117).Path(), want: "/v3/amendment/117"},
		{
			name: "amendments by type",
			path: cli.AmendmentsByType(117, congress.AmendmentTypeSenate).Path(),
			want: "/v3/amendment/117/samdt",
		},
		{
			name: "amendment actions",
			path: cli.Amendment(117, congress.AmendmentTypeHouse, 2).Actions().Path(),
			want: "/v3/amendment/117/hamdt/2/actions",
		},
		{
			name: "amendment cosponsors",
			path: cli.Amendment(117, congress.AmendmentTypeSenate, 2137).Cosponsors().Path(),
			want: "/v3/amendment/117/samdt/2137/cosponsors",
		},
		{
			name: "amendment amendments",
			path: cli.Amendment(117, congress.AmendmentTypeSenate, 2137).Amendments().Path(),
			want: "/v3/amendment/117/samdt/2137/amendments",
		},
		{name: "summaries", path: cli.Summaries().Path(), want: "/v3/summaries"},
		{name: "summaries by congress", path: cli.SummariesByCongress(118).Path(), want: "/v3/summaries/118"},
		{
			name: "summaries by type",
			path: cli.SummariesByType(118, congress.BillTypeSenateResolution).Path(),
			want: "/v3/summaries/118/sres",
		},
		{name: "members", path: cli.Members().Path(), want: "/v3/member"},
		{name: "member", path: cli.Member("L000174").Path(), want: "/v3/member/L000174"},
		{
			name: "member sponsored legislation",
			path: cli.Member("L000174").SponsoredLegislation().Path(),
			want: "/v3/member/L000174/sponsored-legislation",
		},
		{
			name: "member cosponsored legislation",
			path: cli.Member("L000174").CosponsoredLegislation().Path(),
			want: "/v3/member/L000174/cosponsored-legislation",
		},
		{name: "member id is escaped", path: cli.Member("a/b").Path(), want: "/v3/member/a%2Fb"},
		{name: "congresses", path: cli.Congresses().Path(), want: "/v3/congress"},
		{name: "congress", path: cli.Congress(118).Path(), want: "/v3/congress/118"},
		{name: "current congress", path: cli.CurrentCongress().Path(), want: "/v3/congress/current"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.want, testCase.path)
		})
	}
}

const billsPageOne = `{
  "bills": [
    {
      "congress": 118,
      "number": "1",
      "originChamber": "House",
      "originChamberCode": "H",
      "title": "Lower Energy Costs Act",
      "type": "HR",
      "updateDate": "2024-01-05",
      "updateDateIncludingText": "2024-01-05T15:21:13Z",
      "url": "https://api.congress.gov/v3/bill/118/hr/1?format=json",
      "latestAction": {"actionDate": "2023-03-30", "text": "Received in the Senate."}
    }
  ],
  "pagination": {
    "count": 2,
    "next": "https://api.congress.gov/v3/bill/118?offset=1&limit=1&sort=updateDate+asc&format=json"
  }
}`

const billsPageTwo = `{
  "bills": [
    {"congress": 118, "number": "2", "type": "S", "title": "Second", "updateDate": "2024-01-06", "url": ""}
  ],
  "pagination": {
    "count": 2,
    "prev": "https://api.congress.gov/v3/bill/118?offset=0&limit=1&sort=updateDate+asc&format=json"
  }
}`

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_BillsPagination(t *testing.T) {
	t.Parallel()

	var (
		mu       sync.Mutex
		requests []string
	)

	cli := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		query := request.URL.Query()

		mu.Lock()
		requests = append(requests, request.URL.Path+"?offset="+query.Get("offset"))
		mu.Unlock()

		assert.Equal(t, "/v3/bill/118", request.URL.Path)
		assert.Equal(t, "test-key", query.Get("api_key"))
		assert.Equal(t, "json", query.Get("format"))
		assert.Equal(t, "1", query.Get("limit"))
		assert.Equal(t, "updateDate asc", query.Get("sort"))

		if query.Get("offset") == "1" {
			writeJSON(writer, http.StatusOK, billsPageTwo)

			return
		}

		writeJSON(writer, http.StatusOK, billsPageOne)
	})

	ctx := context.Background()

	first, err := cli.BillsByCongress(118).
		Limit(1).
		Sort(congress.SortUpdateDateAscending).
		Send(ctx)
	require.NoError(t, err)
	require.Len(t, first.Items(), 1)
	assert.Equal(t, congress.BillTypeHouse, first.Bills[0].Type)
	assert.Equal(t, congress.ChamberHouse, first.Bills[0].OriginChamber)
	assert.Equal(t, "2023-03-30", first.Bills[0].LatestAction.ActionDate.String())
	assert.Equal(t, uint32(2), first.PageInfo().Count)
	assert.Nil(t, first.PreviousURL())

	prev, err := congress.Previous(ctx, cli, first)
	require.NoError(t, err)
	assert.Nil(t, prev)

	second, err := congress.Next(ctx, cli, first)
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, "2", second.Bills[0].Number)
	assert.Equal(t, congress.BillTypeSenate, second.Bills[0].Type)

	last, err := congress.Next(ctx, cli, second)
	require.NoError(t, err)
	assert.Nil(t, last)

	back, err := congress.Previous(ctx, cli, second)
	require.NoError(t, err)
	require.NotNil(t, back)
	assert.Equal(t, first.Bills, back.Bills)

	all, err := congress.FetchAllPages[congress.BillSummary](ctx, cli, first, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mu.Lock()
	defer mu.Unlock()

	assert.Equal(t, "/v3/bill/118?offset=", requests[0])
	assert.Equal(t, "/v3/bill/118?offset=1", requests[1])
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_DecodeErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		body     string
		wantPath string
		wantErr  error
	}{
		{
			name:     "missing required field",
			body:     `{"bills":[{"number":"1","type":"hr","updateDate":"2024-01-01"}],"pagination":{"count":1}}`,
			wantPath: "bills[0].congress",
			wantErr:  congress.ErrMissingField,
		},
		{
			name: "missing required field in later item",
			body: `{"bills":[` +
				`{"congress":118,"number":"1","type":"hr","updateDate":"2024-01-01"},` +
				`{"congress":118,"type":"s","updateDate":"2024-01-01"}` +
				`],"pagination":{"count":2}}`,
			wantPath: "bills[1].number",
			wantErr:  congress.ErrMissingField,
		},
		{
			name:     "type mismatch",
			body:     `{"bills":[{"congress":"one-eighteen","number":"1","type":"hr"}],"pagination":{"count":1}}`,
			wantPath: "bills[0].congress",
		},
		{
			name: "type mismatch in later item",
			body: `{"bills":[` +
				`{"congress":118,"number":"1","type":"hr","updateDate":"2024-01-01"},` +
				`{"congress":118,"number":"2","type":"hr","updateDate":"2024-01-01"},` +
				`{"congress":"118","number":"3","type":"hr","updateDate":"2024-01-01"}` +
				`],"pagination":{"count":3}}`,
			wantPath: "bills[2].congress",
		},
		{
			name:     "unknown bill type",
			body:     `{"bills":[{"congress":118,"number":"1","type":"xx"}],"pagination":{"count":1}}`,
			wantPath: "bills[0].type",
		},
		{
			name:     "bad date",
			body:     `{"bills":[{"congress":118,"number":"1","type":"hr","updateDate":"yesterday"}],"pagination":{"count":1}}`,
			wantPath: "bills[0].updateDate",
		},
		{
			name:     "pagination type mismatch",
			body:     `{"bills":[],"pagination":{"count":"many"}}`,
			wantPath: "pagination.count",
		},
		{
			name:     "truncated body",
			body:     `{"bills":[`,
			wantPath: "",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			cli := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
				writeJSON(writer, http.StatusOK, testCase.body)
			})

			resp, err := cli.Bills().Send(context.Background())
			assert.Nil(t, resp)

			var decodeErr *congress.DecodeError
			require.ErrorAs(t, err, &decodeErr)
			assert.Equal(t, testCase.wantPath, decodeErr.Path)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
			}
		})
	}
}

func TestClient_APIErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		status       int
		body         string
		notFound     bool
		rateLimited  bool
		unauthorized bool
		wantMessage  string
	}{
		{
			name:        "not found",
			status:      http.StatusNotFound,
			body:        `{"error":"Unknown resource: bill/118/hr/999999"}`,
			notFound:    true,
			wantMessage: "Unknown resource: bill/118/hr/999999",
		},
		{
			name:        "rate limited",
			status:      http.StatusTooManyRequests,
			body:        `{"error":"rate limited"}`,
			rateLimited: true,
			wantMessage: "rate limited",
		},
		{
			name:         "missing key",
			status:       http.StatusForbidden,
			body:         `{"error":{"code":"API_KEY_MISSING","message":"No api_key was supplied."}}`,
			unauthorized: true,
			wantMessage:  "No api_key was supplied.",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			cli := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
				writeJSON(writer, testCase.status, testCase.body)
			})

			_, err := cli.Bill(118, congress.BillTypeHouse, 999999).Get().Send(context.Background())
			require.Error(t, err)

			var apiErr *congress.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, testCase.status, apiErr.StatusCode)
			assert.Equal(t, testCase.wantMessage, apiErr.Message)
			assert.Equal(t, testCase.notFound, congress.IsNotFound(err))
			assert.Equal(t, testCase.rateLimited, congress.IsRateLimited(err))
			assert.Equal(t, testCase.unauthorized, congress.IsUnauthorized(err))
		})
	}
}

func TestClient_SubResources(t *testing.T) {
	t.Parallel()

	cli := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		switch request.URL.Path {
		case "/v3/bill/118/hr/1234/actions":
			assert.Equal(t, "2", request.URL.Query().Get("limit"))
			writeJSON(writer, http.StatusOK, `{
			  "actions": [
			    {"actionCode": "H11100", "actionDate": "2023-03-30", "text": "Passed", "type": "Floor",
			     "sourceSystem": {"code": 2, "name": "House floor actions"}}
			  ],
			  "pagination": {"count": 1}
			}`)
		case "/v3/member/L000174":
			writeJSON(writer, http.StatusOK, `{
			  "member": {"bioguideId": "L000174", "firstName": "Patrick", "lastName": "Leahy",
			             "directOrderName": "Patrick J. Leahy", "invertedOrderName": "Leahy, Patrick J.",
			             "state": "Vermont", "currentMember": false}
			}`)
		case "/v3/congress/current":
			writeJSON(writer, http.StatusOK, `{
			  "congress": {"name": "118th Congress", "number": 118, "startYear": "2023", "endYear": "2024",
			               "sessions": [{"chamber": "House of Representatives", "number": 1, "startDate": "2023-01-03", "type": "R"}]}
			}`)
		default:
			writeJSON(writer, http.StatusNotFound, `{"error":"not found"}`)
		}
	})

	ctx := context.Background()

	actions, err := cli.Bill(118, congress.BillTypeHouse, 1234).Actions().Limit(2).Send(ctx)
	require.NoError(t, err)
	require.Len(t, actions.Items(), 1)
	assert.Equal(t, congress.ActionType("Floor"), actions.Actions[0].Type)
	require.NotNil(t, actions.Actions[0].SourceSystem.Code)
	assert.Equal(t, uint32(2), *actions.Actions[0].SourceSystem.Code)

	member, err := cli.Member("L000174").Get().Send(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Leahy", member.Member.LastName)

	current, err := cli.CurrentCongress().Send(ctx)
	require.NoError(t, err)
	assert.Equal(t, "118th Congress", current.Congress.Name)

	_, err = cli.Congress(1).Send(ctx)
	assert.True(t, congress.IsNotFound(err))
	assert.False(t, errors.Is(err, congress.ErrMissingField))
}
