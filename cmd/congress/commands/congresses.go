package commands

import (
	"github.com/fivetwenty-io/congress-client/pkg/congress"
	"github.com/spf13/cobra"
)

// NewCongressesCommand creates the congresses command group.
func NewCongressesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "congresses",
		Aliases: []string{"congress"},
		Short:   "Browse congresses and sessions",
		Long:    "List congresses and show the dates of their sessions",
	}

	cmd.AddCommand(newCongressesListCommand())
	cmd.AddCommand(newCongressesGetCommand())
	cmd.AddCommand(newCongressesCurrentCommand())

	return cmd
}

func newCongressesListCommand() *cobra.Command {
	return newListCommand[congress.CongressInfo](
		listCommand{
			use:     "list",
			aliases: []string{"ls"},
			short:   "List congresses",
			long:    "List congresses, most recent first",
			args:    cobra.NoArgs,
		},
		pagedSubResource(func(client congress.Client, _ []string) (congress.Client, error) {
			return client, nil
		}, congress.Client.Congresses),
		congressTable,
	)
}

func newCongressesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CONGRESS",
		Short: "Get congress details",
		Long:  "Display a congress and its sessions, e.g. 'congress congresses get 118'",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			number, err := parseCongress(args[0])
			if err != nil {
				return err
			}

			resp, err := client.Congress(number).Send(cmd.Context())
			if err != nil {
				return err
			}

			return renderCongress(&resp.Congress)
		},
	}
}

func newCongressesCurrentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Get the current congress",
		Long:  "Display the congress currently in session and its sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			resp, err := client.CurrentCongress().Send(cmd.Context())
			if err != nil {
				return err
			}

			return renderCongress(&resp.Congress)
		},
	}
}

func renderCongress(info *congress.CongressInfo) error {
	return renderOutput(info, func() error {
		rows := make([][]string, 0, len(info.Sessions))
		for _, session := range info.Sessions {
			rows = append(rows, []string{
				info.Name,
				formatCount(session.Number),
				session.Chamber.String(),
				session.Type,
				formatDate(&session.StartDate),
				formatDate(session.EndDate),
			})
		}

		return renderTable([]string{"Congress", "Session", "Chamber", "Type", "Start", "End"}, rows)
	})
}
