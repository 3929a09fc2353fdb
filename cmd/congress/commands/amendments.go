package commands

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/congress-client/internal/constants"
	"github.com/fivetwenty-io/congress-client/pkg/congress"
	"github.com/spf13/cobra"
)

const amendmentArgsUse = "CONGRESS TYPE NUMBER"

// NewAmendmentsCommand creates the amendments command group.
func NewAmendmentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "amendments",
		Aliases: []string{"amendment", "amdt"},
		Short:   "Browse amendments",
		Long:    "List House and Senate amendments and inspect an amendment's actions, amendments and cosponsors",
	}

	sub := func(use, short, long string) listCommand {
		return listCommand{
			use:   use + " " + amendmentArgsUse,
			short: short,
			long:  long,
			args:  cobra.ExactArgs(billArgCount),
		}
	}

	cmd.AddCommand(newAmendmentsListCommand())
	cmd.AddCommand(newAmendmentsGetCommand())
	cmd.AddCommand(newListCommand[congress.Action](
		sub("actions", "List amendment actions", "List the actions taken on an amendment"),
		pagedSubResource(amendmentFromArgs, congress.AmendmentHandler.Actions),
		actionTable,
	))
	cmd.AddCommand(newListCommand[congress.AmendmentSummary](
		sub("amendments", "List amendments to an amendment", "List the amendments offered to an amendment"),
		pagedSubResource(amendmentFromArgs, congress.AmendmentHandler.Amendments),
		amendmentSummaryTable,
	))
	cmd.AddCommand(newListCommand[congress.Cosponsor](
		sub("cosponsors", "List amendment cosponsors", "List the members cosponsoring an amendment"),
		pagedSubResource(amendmentFromArgs, congress.AmendmentHandler.Cosponsors),
		cosponsorTable,
	))

	return cmd
}

func newAmendmentsListCommand() *cobra.Command {
	var (
		congressNumber uint32
		amendmentType  string
	)

	cmd := newListCommand[congress.AmendmentSummary](
		listCommand{
			use:     "list",
			aliases: []string{"ls"},
			short:   "List amendments",
			long:    "List amendments sorted by latest update, optionally restricted to a congress and amendment type",
			args:    cobra.NoArgs,
			filters: true,
		},
		func(ctx context.Context, client congress.Client, _ []string, opts *listOptions) (*congress.AmendmentsResponse, error) {
			req, err := amendmentsRequest(client, congressNumber, amendmentType)
			if err != nil {
				return nil, err
			}

			req, err = applyFilters(req, opts)
			if err != nil {
				return nil, err
			}

			return req.Send(ctx)
		},
		amendmentSummaryTable,
	)

	cmd.Flags().Uint32Var(&congressNumber, "congress", 0, "congress number, e.g. 118")
	cmd.Flags().StringVar(&amendmentType, "type", "", "amendment type (hamdt, samdt, suamdt); requires --congress")

	return cmd
}

func amendmentsRequest(
	client congress.Client,
	congressNumber uint32,
	amendmentType string,
) (*congress.FilteredRequest[congress.AmendmentsResponse], error) {
	switch {
	case amendmentType != "" && congressNumber == 0:
		return nil, constants.ErrBillTypeNeedsCongress
	case amendmentType != "":
		parsed, err := congress.ParseAmendmentType(amendmentType)
		if err != nil {
			return nil, fmt.Errorf("invalid --type: %w", err)
		}

		return client.AmendmentsByType(congressNumber, parsed), nil
	case congressNumber != 0:
		return client.AmendmentsByCongress(congressNumber), nil
	default:
		return client.Amendments(), nil
	}
}

func amendmentFromArgs(client congress.Client, args []string) (congress.AmendmentHandler, error) {
	congressNumber, err := parseCongress(args[0])
	if err != nil {
		return nil, err
	}

	amendmentType, err := congress.ParseAmendmentType(args[1])
	if err != nil {
		return nil, fmt.Errorf("invalid amendment type: %w", err)
	}

	number, err := parseNumber(args[2])
	if err != nil {
		return nil, err
	}

	return client.Amendment(congressNumber, amendmentType, number), nil
}

func newAmendmentsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get " + amendmentArgsUse,
		Short: "Get amendment details",
		Long:  "Display detailed information about a specific amendment, e.g. 'congress amendments get 117 samdt 2137'",
		Args:  cobra.ExactArgs(billArgCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			handler, err := amendmentFromArgs(client, args)
			if err != nil {
				return err
			}

			resp, err := handler.Get().Send(cmd.Context())
			if err != nil {
				return err
			}

			amendment := resp.Amendment

			return renderOutput(amendment, func() error {
				return renderTable([]string{"Property", "Value"}, amendmentDetailRows(&amendment))
			})
		},
	}
}

func amendmentDetailRows(amendment *congress.Amendment) [][]string {
	actionDate, actionText := formatLatestAction(amendment.LatestAction)

	rows := [][]string{
		{"Amendment", formatCount(amendment.Congress) + " " + billLabel(amendment.Type, amendment.Number)},
		{"Chamber", amendment.Chamber.String()},
		{"Purpose", amendment.Purpose},
		{"Proposed", formatDate(amendment.ProposedDate)},
		{"Submitted", formatDate(amendment.SubmittedDate)},
		{"Latest Action", actionDate + " " + actionText},
		{"Actions", formatCount(amendment.Actions.Count)},
		{"Updated", formatDate(&amendment.UpdateDate)},
	}

	if amendment.AmendedBill != nil {
		rows = append(rows, []string{"Amended Bill", amendedBillLabel(amendment.AmendedBill)})
	}

	for _, sponsor := range amendment.Sponsors {
		rows = append(rows, []string{"Sponsor", sponsor.FullName})
	}

	return rows
}
