//go:build integration

package integration

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/fivetwenty-io/congress-client/pkg/congress"
	"github.com/fivetwenty-io/congress-client/pkg/congressclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const requestTimeout = 30 * time.Second

func newLiveClient(t *testing.T) congress.Client {
	t.Helper()

	if os.Getenv(congressclient.EnvAPIKey) == "" {
		t.Skipf("%s not set", congressclient.EnvAPIKey)
	}

	client, err := congressclient.NewFromEnv()
	require.NoError(t, err)

	return client
}

func TestBillsPagination(t *testing.T) {
	client := newLiveClient(t)

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	first, err := client.BillsByCongress(118).
		Limit(5).
		Sort(congress.SortUpdateDateAscending).
		Send(ctx)
	require.NoError(t, err)
	require.Len(t, first.Bills, 5)
	assert.Positive(t, first.Pagination.Count)

	for _, bill := range first.Bills {
		assert.Equal(t, uint32(118), bill.Congress)
	}

	previous, err := congress.Previous(ctx, client, first)
	require.NoError(t, err)
	assert.Nil(t, previous)

	second, err := congress.Next(ctx, client, first)
	require.NoError(t, err)
	require.NotNil(t, second)
	require.Len(t, second.Bills, 5)
	assert.NotEqual(t, first.Bills[0].Number+string(first.Bills[0].Type), second.Bills[0].Number+string(second.Bills[0].Type))

	back, err := congress.Previous(ctx, client, second)
	require.NoError(t, err)
	require.NotNil(t, back)
	require.Len(t, back.Bills, 5)
	assert.Equal(t, first.Bills[0].Number, back.Bills[0].Number)
	assert.Equal(t, first.Bills[0].Type, back.Bills[0].Type)
}

func TestBillSubResources(t *testing.T) {
	client := newLiveClient(t)

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	bill := client.Bill(117, congress.BillTypeHouse, 3076)

	detail, err := bill.Get().Send(ctx)
	require.NoError(t, err)
	assert.Equal(t, "3076", detail.Bill.Number)

	actions, err := bill.Actions().Limit(3).Send(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, actions.Actions)

	titles, err := bill.Titles().Send(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, titles.Titles)
}

func TestCurrentCongress(t *testing.T) {
	client := newLiveClient(t)

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	current, err := client.CurrentCongress().Send(ctx)
	require.NoError(t, err)
	assert.Positive(t, current.Congress.Number)
	assert.NotEmpty(t, current.Congress.Sessions)
}

func TestNotFound(t *testing.T) {
	client := newLiveClient(t)

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	_, err := client.Bill(118, congress.BillTypeHouse, 999999).Get().Send(ctx)
	require.Error(t, err)
	assert.True(t, congress.IsNotFound(err), "unexpected error: %v", err)
}
