package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fivetwenty-io/congress-client/internal/constants"
	"github.com/fivetwenty-io/congress-client/pkg/congress"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const (
	billArgCount        = 3
	billArgsUse         = "CONGRESS TYPE NUMBER"
	overviewActionLimit = 5
)

// NewBillsCommand creates the bills command group.
func NewBillsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "bills",
		Aliases: []string{"bill"},
		Short:   "Browse bills and resolutions",
		Long:    "List bills and resolutions and inspect a bill's actions, cosponsors, text and related records",
	}

	cmd.AddCommand(newBillsListCommand())
	cmd.AddCommand(newBillsGetCommand())
	cmd.AddCommand(newBillsOverviewCommand())

	for _, sub := range billSubResourceCommands() {
		cmd.AddCommand(sub)
	}

	return cmd
}

func newBillsListCommand() *cobra.Command {
	var (
		congressNumber uint32
		billType       string
	)

	cmd := newListCommand[congress.BillSummary](
		listCommand{
			use:     "list",
			aliases: []string{"ls"},
			short:   "List bills",
			long:    "List bills sorted by latest update, optionally restricted to a congress and bill type",
			args:    cobra.NoArgs,
			filters: true,
		},
		func(ctx context.Context, client congress.Client, _ []string, opts *listOptions) (*congress.BillsResponse, error) {
			req, err := billsRequest(client, congressNumber, billType)
			if err != nil {
				return nil, err
			}

			req, err = applyFilters(req, opts)
			if err != nil {
				return nil, err
			}

			return req.Send(ctx)
		},
		billSummaryTable,
	)

	cmd.Flags().Uint32Var(&congressNumber, "congress", 0, "congress number, e.g. 118")
	cmd.Flags().StringVar(&billType, "type", "", "bill type (hr, s, hjres, sjres, hconres, sconres, hres, sres); requires --congress")

	return cmd
}

// billsRequest picks the narrowest bill list endpoint for the flags given.
func billsRequest(client congress.Client, congressNumber uint32, billType string) (*congress.FilteredRequest[congress.BillsResponse], error) {
	switch {
	case billType != "" && congressNumber == 0:
		return nil, constants.ErrBillTypeNeedsCongress
	case billType != "":
		parsed, err := congress.ParseBillType(billType)
		if err != nil {
			return nil, fmt.Errorf("invalid --type: %w", err)
		}

		return client.BillsByType(congressNumber, parsed), nil
	case congressNumber != 0:
		return client.BillsByCongress(congressNumber), nil
	default:
		return client.Bills(), nil
	}
}

// billFromArgs resolves CONGRESS TYPE NUMBER into a bill handler.
func billFromArgs(client congress.Client, args []string) (congress.BillHandler, error) {
	congressNumber, err := parseCongress(args[0])
	if err != nil {
		return nil, err
	}

	billType, err := congress.ParseBillType(args[1])
	if err != nil {
		return nil, fmt.Errorf("invalid bill type: %w", err)
	}

	number, err := parseNumber(args[2])
	if err != nil {
		return nil, err
	}

	return client.Bill(congressNumber, billType, number), nil
}

func newBillsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get " + billArgsUse,
		Short: "Get bill details",
		Long:  "Display detailed information about a specific bill, e.g. 'congress bills get 118 hr 1'",
		Args:  cobra.ExactArgs(billArgCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			handler, err := billFromArgs(client, args)
			if err != nil {
				return err
			}

			resp, err := handler.Get().Send(cmd.Context())
			if err != nil {
				return err
			}

			bill := resp.Bill

			return renderOutput(bill, func() error {
				return renderTable([]string{"Property", "Value"}, billDetailRows(&bill))
			})
		},
	}
}

func billDetailRows(bill *congress.Bill) [][]string {
	actionDate, actionText := formatLatestAction(bill.LatestAction)

	rows := [][]string{
		{"Bill", formatCount(bill.Congress) + " " + billLabel(bill.Type, bill.Number)},
		{"Title", bill.Title},
		{"Origin Chamber", bill.OriginChamber.String()},
		{"Introduced", formatDate(&bill.IntroducedDate)},
		{"Latest Action", actionDate + " " + actionText},
		{"Actions", formatCount(bill.Actions.Count)},
		{"Committees", formatCount(bill.Committees.Count)},
		{"Updated", formatDate(&bill.UpdateDate)},
	}

	if bill.PolicyArea != nil {
		rows = append(rows, []string{"Policy Area", bill.PolicyArea.Name})
	}

	for _, sponsor := range bill.Sponsors {
		rows = append(rows, []string{"Sponsor", sponsor.FullName})
	}

	if bill.Cosponsors != nil {
		rows = append(rows, []string{"Cosponsors", formatCount(bill.Cosponsors.Count)})
	}

	for _, law := range bill.Laws {
		rows = append(rows, []string{"Law", law.Type + " " + law.Number})
	}

	return rows
}

func billSubResourceCommands() []*cobra.Command {
	sub := func(use, short, long string) listCommand {
		return listCommand{
			use:   use + " " + billArgsUse,
			short: short,
			long:  long,
			args:  cobra.ExactArgs(billArgCount),
		}
	}

	return []*cobra.Command{
		newListCommand[congress.Action](
			sub("actions", "List bill actions", "List the actions taken on a bill"),
			pagedSubResource(billFromArgs, congress.BillHandler.Actions),
			actionTable,
		),
		newListCommand[congress.AmendmentSummary](
			sub("amendments", "List bill amendments", "List the amendments offered to a bill"),
			pagedSubResource(billFromArgs, congress.BillHandler.Amendments),
			amendmentSummaryTable,
		),
		newListCommand[congress.Committee](
			sub("committees", "List bill committees", "List the committees a bill was referred to and their activities"),
			pagedSubResource(billFromArgs, congress.BillHandler.Committees),
			committeeTable,
		),
		newListCommand[congress.Cosponsor](
			sub("cosponsors", "List bill cosponsors", "List the members cosponsoring a bill"),
			pagedSubResource(billFromArgs, congress.BillHandler.Cosponsors),
			cosponsorTable,
		),
		newListCommand[congress.RelatedBill](
			sub("related", "List related bills", "List bills related to a bill and how they are related"),
			pagedSubResource(billFromArgs, congress.BillHandler.RelatedBills),
			relatedBillTable,
		),
		newListCommand[congress.LegislativeSubject](
			sub("subjects", "List bill subjects", "List the legislative subjects assigned to a bill"),
			pagedSubResource(billFromArgs, congress.BillHandler.Subjects),
			subjectTable,
		),
		newListCommand[congress.Summary](
			sub("summaries", "List bill summaries", "List the CRS summaries written for a bill"),
			pagedSubResource(billFromArgs, congress.BillHandler.Summaries),
			summaryTable,
		),
		newListCommand[congress.TextVersion](
			sub("text", "List bill text versions", "List the published text versions of a bill and their formats"),
			pagedSubResource(billFromArgs, congress.BillHandler.Text),
			textVersionTable,
		),
		newListCommand[congress.Title](
			sub("titles", "List bill titles", "List the official, short and popular titles of a bill"),
			pagedSubResource(billFromArgs, congress.BillHandler.Titles),
			titleTable,
		),
	}
}

// BillOverview combines a bill with its most recent actions, cosponsors and
// subjects.
type BillOverview struct {
	Bill       congress.Bill                 `json:"bill"       yaml:"bill"`
	Actions    []congress.Action             `json:"actions"    yaml:"actions"`
	Cosponsors []congress.Cosponsor          `json:"cosponsors" yaml:"cosponsors"`
	Subjects   []congress.LegislativeSubject `json:"subjects"   yaml:"subjects"`
}

func newBillsOverviewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "overview " + billArgsUse,
		Short: "Show a bill with its actions, cosponsors and subjects",
		Long:  "Fetch a bill and its latest actions, cosponsors and subjects concurrently and display them together",
		Args:  cobra.ExactArgs(billArgCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			handler, err := billFromArgs(client, args)
			if err != nil {
				return err
			}

			overview, err := fetchBillOverview(cmd.Context(), handler)
			if err != nil {
				return err
			}

			return renderOutput(overview, func() error {
				return renderBillOverview(overview)
			})
		},
	}
}

// fetchBillOverview issues the four requests concurrently. The first
// failure cancels the rest.
func fetchBillOverview(ctx context.Context, handler congress.BillHandler) (*BillOverview, error) {
	overview := &BillOverview{}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(constants.DefaultConcurrencyLimit)

	g.Go(func() error {
		resp, err := handler.Get().Send(ctx)
		if err != nil {
			return err
		}

		overview.Bill = resp.Bill

		return nil
	})

	g.Go(func() error {
		resp, err := handler.Actions().Limit(overviewActionLimit).Send(ctx)
		if err != nil {
			return err
		}

		overview.Actions = resp.Actions

		return nil
	})

	g.Go(func() error {
		resp, err := handler.Cosponsors().Send(ctx)
		if err != nil {
			return err
		}

		overview.Cosponsors = resp.Cosponsors

		return nil
	})

	g.Go(func() error {
		resp, err := handler.Subjects().Send(ctx)
		if err != nil {
			return err
		}

		overview.Subjects = resp.Subjects.LegislativeSubjects

		return nil
	})

	err := g.Wait()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch overview of %s: %w", handler.Path(), err)
	}

	return overview, nil
}

func renderBillOverview(overview *BillOverview) error {
	err := renderTable([]string{"Property", "Value"}, billDetailRows(&overview.Bill))
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(os.Stdout, "\nRecent Actions:")

	err = renderItems(overview.Actions, congress.Pagination{}, false, actionTable)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(overview.Cosponsors))
	for _, cosponsor := range overview.Cosponsors {
		names = append(names, cosponsor.FullName)
	}

	subjects := make([]string, 0, len(overview.Subjects))
	for _, subject := range overview.Subjects {
		subjects = append(subjects, subject.Name)
	}

	_, _ = fmt.Fprintf(os.Stdout, "\nCosponsors (%d): %s\n", len(names), strings.Join(names, "; "))
	_, _ = fmt.Fprintf(os.Stdout, "Subjects (%d): %s\n", len(subjects), strings.Join(subjects, "; "))

	return nil
}
