package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/fivetwenty-io/congress-client/pkg/congress"
	"github.com/spf13/cobra"
)

// listCommand describes a list command and how it is invoked.
type listCommand struct {
	use     string
	aliases []string
	short   string
	long    string
	args    cobra.PositionalArgs
	// filters adds --from, --to and --sort in addition to the paging flags.
	filters bool
}

// itemTable renders one table row per item.
type itemTable[T any] struct {
	header []string
	row    func(T) []string
}

// newListCommand builds a command that sends the request returned by send,
// optionally walks the remaining pages, and renders the items.
func newListCommand[T any, E any, R interface {
	*E
	congress.PagedResponse[T]
}](
	def listCommand,
	send func(ctx context.Context, client congress.Client, args []string, opts *listOptions) (R, error),
	table itemTable[T],
) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:     def.use,
		Aliases: def.aliases,
		Short:   def.short,
		Long:    def.long,
		Args:    def.args,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			items, pagination, err := fetchItems[T, E, R](
				cmd.Context(),
				client,
				func(ctx context.Context) (R, error) {
					return send(ctx, client, args, opts)
				},
				opts,
			)
			if err != nil {
				return err
			}

			return renderItems(items, pagination, opts.all, table)
		},
	}

	if def.filters {
		opts.addFilterFlags(cmd)
	} else {
		opts.addPagingFlags(cmd)
	}

	return cmd
}

// pagedSubResource sends a sub-resource request of the handler resolved
// from the positional arguments.
func pagedSubResource[H any, R any](
	resolve func(client congress.Client, args []string) (H, error),
	pick func(H) *congress.PagedRequest[R],
) func(ctx context.Context, client congress.Client, args []string, opts *listOptions) (*R, error) {
	return func(ctx context.Context, client congress.Client, args []string, opts *listOptions) (*R, error) {
		handler, err := resolve(client, args)
		if err != nil {
			return nil, err
		}

		return applyPaging(pick(handler), opts).Send(ctx)
	}
}

func renderItems[T any](items []T, pagination congress.Pagination, allPages bool, table itemTable[T]) error {
	return renderOutput(items, func() error {
		if len(items) == 0 {
			_, _ = fmt.Fprintln(os.Stdout, "No results found")

			return nil
		}

		rows := make([][]string, 0, len(items))
		for _, item := range items {
			rows = append(rows, table.row(item))
		}

		err := renderTable(table.header, rows)
		if err != nil {
			return err
		}

		renderPageFooter(len(items), pagination, allPages)

		return nil
	})
}
