package commands

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/congress-client/internal/constants"
	"github.com/fivetwenty-io/congress-client/pkg/congress"
	"github.com/spf13/cobra"
)

// NewSummariesCommand creates the summaries command group.
func NewSummariesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "summaries",
		Aliases: []string{"summary"},
		Short:   "Browse bill summaries",
		Long:    "List summaries written by the Congressional Research Service",
	}

	cmd.AddCommand(newSummariesListCommand())

	return cmd
}

func newSummariesListCommand() *cobra.Command {
	var (
		congressNumber uint32
		billType       string
	)

	cmd := newListCommand[congress.Summary](
		listCommand{
			use:     "list",
			aliases: []string{"ls"},
			short:   "List summaries",
			long:    "List bill summaries, optionally restricted to a congress and bill type",
			args:    cobra.NoArgs,
			filters: true,
		},
		func(ctx context.Context, client congress.Client, _ []string, opts *listOptions) (*congress.SummariesResponse, error) {
			req, err := summariesRequest(client, congressNumber, billType)
			if err != nil {
				return nil, err
			}

			req, err = applyFilters(req, opts)
			if err != nil {
				return nil, err
			}

			return req.Send(ctx)
		},
		summaryTable,
	)

	cmd.Flags().Uint32Var(&congressNumber, "congress", 0, "congress number, e.g. 118")
	cmd.Flags().StringVar(&billType, "type", "", "bill type (hr, s, hjres, sjres, hconres, sconres, hres, sres); requires --congress")

	return cmd
}

func summariesRequest(
	client congress.Client,
	congressNumber uint32,
	billType string,
) (*congress.FilteredRequest[congress.SummariesResponse], error) {
	switch {
	case billType != "" && congressNumber == 0:
		return nil, constants.ErrBillTypeNeedsCongress
	case billType != "":
		parsed, err := congress.ParseBillType(billType)
		if err != nil {
			return nil, fmt.Errorf("invalid --type: %w", err)
		}

		return client.SummariesByType(congressNumber, parsed), nil
	case congressNumber != 0:
		return client.SummariesByCongress(congressNumber), nil
	default:
		return client.Summaries(), nil
	}
}
