package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fivetwenty-io/congress-client/internal/constants"
	"github.com/fivetwenty-io/congress-client/pkg/congress"
	"github.com/fivetwenty-io/congress-client/pkg/congressclient"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Viper keys shared by flags, the config file and CONGRESS_* variables.
const (
	keyAPIKey  = "api_key"
	keyBaseURL = "base_url"
	keyOutput  = "output"
	keyVerbose = "verbose"
)

const (
	sortAsc     = "asc"
	sortDesc    = "desc"
	ellipsis    = "..."
	notReported = "-"
)

// newClient builds an API client from the merged flag, file and environment
// configuration.
func newClient() (congress.Client, error) {
	apiKey := viper.GetString(keyAPIKey)
	if apiKey == "" {
		return nil, constants.ErrNoAPIKeyConfigured
	}

	verbose := viper.GetBool(keyVerbose)

	client, err := congressclient.New(&congress.Config{
		APIKey:  apiKey,
		BaseURL: viper.GetString(keyBaseURL),
		Debug:   verbose,
		Logger:  newLogger(verbose),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// renderOutput writes data in the configured output format. The table
// callback is only invoked for table output.
func renderOutput(data any, table func() error) error {
	output := viper.GetString(keyOutput)

	switch output {
	case constants.OutputJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		err := encoder.Encode(data)
		if err != nil {
			return fmt.Errorf("encoding data to JSON: %w", err)
		}

		return nil
	case constants.OutputYAML:
		encoder := yaml.NewEncoder(os.Stdout)

		err := encoder.Encode(data)
		if err != nil {
			return fmt.Errorf("encoding data to YAML: %w", err)
		}

		return nil
	case constants.OutputTable, "":
		return table()
	default:
		return fmt.Errorf("%w: %s", constants.ErrInvalidOutputFormat, output)
	}
}

// renderTable renders rows under header.
func renderTable(header []string, rows [][]string) error {
	table := tablewriter.NewWriter(os.Stdout)

	columns := make([]any, 0, len(header))
	for _, column := range header {
		columns = append(columns, column)
	}

	table.Header(columns...)

	for _, row := range rows {
		_ = table.Append(row)
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// renderPageFooter reports how much of the collection a single page covers.
func renderPageFooter(shown int, pagination congress.Pagination, allPages bool) {
	if allPages {
		_, _ = fmt.Fprintf(os.Stdout, "\nFetched %d of %d\n", shown, pagination.Count)

		return
	}

	if pagination.Next != nil {
		_, _ = fmt.Fprintf(os.Stdout, "\nShowing %d of %d. Use --all or --offset to see more.\n", shown, pagination.Count)
	}
}

// listOptions holds the paging and filter flags of list commands.
type listOptions struct {
	limit    uint32
	offset   uint32
	from     string
	to       string
	sort     string
	all      bool
	maxPages int
}

func (o *listOptions) addPagingFlags(cmd *cobra.Command) {
	cmd.Flags().Uint32Var(&o.limit, "limit", 0, "maximum number of results per page (API default 20, max 250)")
	cmd.Flags().Uint32Var(&o.offset, "offset", 0, "number of results to skip")
	cmd.Flags().BoolVar(&o.all, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&o.maxPages, "max-pages", constants.DefaultMaxPages, "maximum number of pages to fetch with --all")
}

func (o *listOptions) addFilterFlags(cmd *cobra.Command) {
	o.addPagingFlags(cmd)
	cmd.Flags().StringVar(&o.from, "from", "", "only include items updated at or after this date (YYYY-MM-DD or RFC 3339)")
	cmd.Flags().StringVar(&o.to, "to", "", "only include items updated at or before this date (YYYY-MM-DD or RFC 3339)")
	cmd.Flags().StringVar(&o.sort, "sort", "", "sort by update date (asc, desc)")
}

func applyPaging[R any](req *congress.PagedRequest[R], opts *listOptions) *congress.PagedRequest[R] {
	if opts.limit > 0 {
		req.Limit(opts.limit)
	}

	if opts.offset > 0 {
		req.Offset(opts.offset)
	}

	return req
}

func applyFilters[R any](req *congress.FilteredRequest[R], opts *listOptions) (*congress.FilteredRequest[R], error) {
	if opts.limit > 0 {
		req.Limit(opts.limit)
	}

	if opts.offset > 0 {
		req.Offset(opts.offset)
	}

	if opts.from != "" {
		from, err := parseDateFlag(opts.from)
		if err != nil {
			return nil, fmt.Errorf("invalid --from: %w", err)
		}

		req.FromDate(from)
	}

	if opts.to != "" {
		to, err := parseDateFlag(opts.to)
		if err != nil {
			return nil, fmt.Errorf("invalid --to: %w", err)
		}

		req.ToDate(to)
	}

	if opts.sort != "" {
		sort, err := parseSortFlag(opts.sort)
		if err != nil {
			return nil, fmt.Errorf("invalid --sort: %w", err)
		}

		req.Sort(sort)
	}

	return req, nil
}

// fetchItems sends the first request and, with --all, follows next links up
// to --max-pages. It returns the items and the first page's pagination.
func fetchItems[T any, E any, R interface {
	*E
	congress.PagedResponse[T]
}](
	ctx context.Context,
	requester congress.Requester,
	send func(context.Context) (R, error),
	opts *listOptions,
) ([]T, congress.Pagination, error) {
	first, err := send(ctx)
	if err != nil {
		return nil, congress.Pagination{}, err
	}

	if !opts.all {
		return first.Items(), first.PageInfo(), nil
	}

	items, err := congress.FetchAllPages[T, E, R](ctx, requester, first, &congress.PaginationOptions{MaxPages: opts.maxPages})
	if err != nil {
		return nil, congress.Pagination{}, err
	}

	return items, first.PageInfo(), nil
}

func parseDateFlag(value string) (time.Time, error) {
	parsed, err := time.Parse(congress.DateLayout, value)
	if err == nil {
		return parsed, nil
	}

	parsed, err = time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing %q: %w", value, err)
	}

	return parsed, nil
}

func parseSortFlag(value string) (congress.Sort, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case sortAsc:
		return congress.SortUpdateDateAscending, nil
	case sortDesc:
		return congress.SortUpdateDateDescending, nil
	default:
		sort, err := congress.ParseSort(value)
		if err != nil {
			return "", fmt.Errorf("parsing sort: %w", err)
		}

		return sort, nil
	}
}

func parseCongress(value string) (uint32, error) {
	number, err := strconv.ParseUint(value, 10, 32)
	if err != nil || number == 0 {
		return 0, fmt.Errorf("%w: %s", constants.ErrInvalidCongress, value)
	}

	return uint32(number), nil
}

func parseNumber(value string) (uint32, error) {
	number, err := strconv.ParseUint(value, 10, 32)
	if err != nil || number == 0 {
		return 0, fmt.Errorf("%w: %s", constants.ErrInvalidNumber, value)
	}

	return uint32(number), nil
}

func truncate(value string, length int) string {
	runes := []rune(value)
	if len(runes) <= length {
		return value
	}

	return string(runes[:length-len(ellipsis)]) + ellipsis
}

func formatDate(date *congress.Date) string {
	if date == nil || date.IsZero() {
		return notReported
	}

	return date.String()
}

func formatLatestAction(action *congress.LatestAction) (string, string) {
	if action == nil {
		return notReported, notReported
	}

	return action.ActionDate.String(), truncate(action.Text, constants.TextDisplayLength)
}

func formatCount(count uint32) string {
	return strconv.FormatUint(uint64(count), 10)
}
