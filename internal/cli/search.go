package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"shopdrive/internal/domain"
	"shopdrive/internal/livesearch"
	"shopdrive/internal/search"
	"shopdrive/internal/validate"
)

type searchOptions struct {
	limit       int
	json        bool
	kind        string
	interactive bool
}

func newSearchCmd(a *app) *cobra.Command {
	var o searchOptions
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search promotions, articles and products",
		Long: `Search the configured content store the same way the storefront does:
visible records only, title matches first.

Examples:
  shopdrive search oli                 # Table of the top results
  shopdrive search ban mobil -n 3      # At most 3 results
  shopdrive search oli -t article      # Articles only
  shopdrive search oli --json          # JSON array, as served by the API
  shopdrive search -i                  # Live search: each input line is a keystroke burst`,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBackend(a.cfg)
			if err != nil {
				return fmt.Errorf("opening %s store: %w", a.cfg.Store, err)
			}
			defer b.close()
			svc := b.searchService(a.cfg)

			if o.limit < 0 || o.limit > validate.MaxLimit {
				return fmt.Errorf("limit must be between 1 and %d", validate.MaxLimit)
			}
			if o.limit == 0 {
				o.limit = a.cfg.SearchLimit
			}
			if o.interactive {
				return a.liveSearch(cmd, svc, o)
			}
			results, err := runSearch(cmd.Context(), svc, strings.Join(args, " "), o)
			if err != nil {
				return err
			}
			return printResults(cmd.OutOrStdout(), results, o.json)
		},
	}

	cmd.Flags().IntVarP(&o.limit, "limit", "n", 0, "maximum number of results (default SEARCH_LIMIT)")
	cmd.Flags().BoolVar(&o.json, "json", false, "output as JSON")
	cmd.Flags().StringVarP(&o.kind, "type", "t", "", "only search one type: promotion, article or product")
	cmd.Flags().BoolVarP(&o.interactive, "interactive", "i", false, "live search over standard input")
	return cmd
}

func runSearch(ctx context.Context, svc *search.Service, q string, o searchOptions) ([]domain.SearchResult, error) {
	q, ok := validate.Q(q)
	if !ok {
		return nil, fmt.Errorf("invalid search query %q", q)
	}
	if o.kind == "" {
		return svc.SearchAll(ctx, q, o.limit)
	}
	kind, ok := domain.ParseKind(o.kind)
	if !ok {
		return nil, fmt.Errorf("unknown type %q (want promotion, article or product)", o.kind)
	}
	results, err := svc.SearchKind(ctx, kind, q)
	if err != nil {
		return nil, err
	}
	if results == nil {
		results = []domain.SearchResult{}
	}
	if len(results) > o.limit {
		results = results[:o.limit]
	}
	return results, nil
}

func printResults(w io.Writer, results []domain.SearchResult, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}
	if len(results) == 0 {
		color.New(color.Faint).Fprintln(w, "no matches")
		return nil
	}

	table := tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoWrap: tw.WrapNone},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoFormat: tw.On},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{Borders: tw.BorderNone}),
	)
	table.Header([]string{"Type", "Title", "Detail", "URL"})
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{string(r.Kind), r.Title, r.Extra, r.URL})
	}
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

// liveSearch feeds each input line to a debounced session, the way the
// storefront's search box feeds keystrokes, and prints every delivered update.
func (a *app) liveSearch(cmd *cobra.Command, svc *search.Service, o searchOptions) error {
	sess := livesearch.New(svc, a.cfg.Debounce, o.limit)
	out := cmd.OutOrStdout()

	printed := make(chan struct{})
	go func() {
		defer close(printed)
		for u := range sess.Updates() {
			switch {
			case u.Err != nil:
				color.New(color.FgRed).Fprintf(out, "%q: search failed: %v\n", u.Query, u.Err)
			case strings.TrimSpace(u.Query) == "":
				// cleared input
			default:
				color.New(color.Bold).Fprintf(out, "%q: %d result(s)\n", u.Query, len(u.Results))
				_ = printResults(out, u.Results, o.json)
			}
		}
	}()

	sc := bufio.NewScanner(cmd.InOrStdin())
	for sc.Scan() {
		sess.Type(sc.Text())
	}
	sess.Flush()
	sess.Close()
	<-printed
	return sc.Err()
}
