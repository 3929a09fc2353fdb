package commands

import (
	"context"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/congress-client/pkg/congress"
	"github.com/spf13/cobra"
)

const bioguideArgUse = "BIOGUIDE_ID"

// NewMembersCommand creates the members command group.
func NewMembersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "members",
		Aliases: []string{"member"},
		Short:   "Browse members of Congress",
		Long:    "List members of Congress and inspect a member's record and legislation",
	}

	sub := func(use, short, long string) listCommand {
		return listCommand{
			use:   use + " " + bioguideArgUse,
			short: short,
			long:  long,
			args:  cobra.ExactArgs(1),
		}
	}

	cmd.AddCommand(newMembersListCommand())
	cmd.AddCommand(newMembersGetCommand())
	cmd.AddCommand(newListCommand[congress.LegislationItem](
		sub("sponsored", "List sponsored legislation", "List the bills and amendments a member sponsored"),
		pagedSubResource(memberFromArgs, congress.MemberHandler.SponsoredLegislation),
		legislationTable,
	))
	cmd.AddCommand(newListCommand[congress.LegislationItem](
		sub("cosponsored", "List cosponsored legislation", "List the bills and amendments a member cosponsored"),
		pagedSubResource(memberFromArgs, congress.MemberHandler.CosponsoredLegislation),
		legislationTable,
	))

	return cmd
}

func newMembersListCommand() *cobra.Command {
	return newListCommand[congress.MemberSummary](
		listCommand{
			use:     "list",
			aliases: []string{"ls"},
			short:   "List members",
			long:    "List members of Congress sorted by latest update",
			args:    cobra.NoArgs,
			filters: true,
		},
		func(ctx context.Context, client congress.Client, _ []string, opts *listOptions) (*congress.MembersResponse, error) {
			req, err := applyFilters(client.Members(), opts)
			if err != nil {
				return nil, err
			}

			return req.Send(ctx)
		},
		memberSummaryTable,
	)
}

func memberFromArgs(client congress.Client, args []string) (congress.MemberHandler, error) {
	return client.Member(strings.ToUpper(strings.TrimSpace(args[0]))), nil
}

func newMembersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get " + bioguideArgUse,
		Short: "Get member details",
		Long:  "Display detailed information about a member of Congress, e.g. 'congress members get L000174'",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			handler, err := memberFromArgs(client, args)
			if err != nil {
				return err
			}

			resp, err := handler.Get().Send(cmd.Context())
			if err != nil {
				return err
			}

			member := resp.Member

			return renderOutput(member, func() error {
				return renderTable([]string{"Property", "Value"}, memberDetailRows(&member))
			})
		},
	}
}

func memberDetailRows(member *congress.Member) [][]string {
	rows := [][]string{
		{"Bioguide ID", member.BioguideID},
		{"Name", member.DirectOrderName},
		{"State", member.State},
		{"Current Member", strconv.FormatBool(member.CurrentMember)},
		{"Updated", formatDate(member.UpdateDate)},
	}

	if len(member.PartyHistory) > 0 {
		rows = append(rows, []string{"Party", member.PartyHistory[len(member.PartyHistory)-1].PartyName})
	}

	if member.SponsoredLegislation != nil {
		rows = append(rows, []string{"Sponsored", formatCount(member.SponsoredLegislation.Count)})
	}

	if member.CosponsoredLegislation != nil {
		rows = append(rows, []string{"Cosponsored", formatCount(member.CosponsoredLegislation.Count)})
	}

	for _, term := range member.Terms {
		rows = append(rows, []string{"Term", formatCount(term.Congress) + " " + term.Chamber})
	}

	return rows
}
