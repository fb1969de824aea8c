package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"shopdrive/internal/validate"
)

func newSuggestCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest [query]",
		Short: "Show search suggestions for a partial query",
		RunE: func(cmd *cobra.Command, args []string) error {
			q, ok := validate.Q(strings.Join(args, " "))
			if !ok {
				return fmt.Errorf("invalid search query")
			}
			b, err := openBackend(a.cfg)
			if err != nil {
				return fmt.Errorf("opening %s store: %w", a.cfg.Store, err)
			}
			defer b.close()

			out, err := b.searchService(a.cfg).Suggest(cmd.Context(), q)
			if err != nil {
				return err
			}
			for _, s := range out {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}
}
