// Package cli contains the shopdrive commands.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"shopdrive/internal/config"
)

// app carries state shared by every command of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
}

// NewRootCmd builds the command tree. Running it without a subcommand serves HTTP.
func NewRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:   "shopdrive",
		Short: "Shop & Drive storefront search service",
		Long: `shopdrive serves the Shop & Drive storefront API: unified search over
promotions, articles and products, content listings and the admin API.

Example usage:
  shopdrive serve                          # Start the HTTP server
  shopdrive search oli                     # One-shot search, table output
  shopdrive search oli -t product --json   # Only products, as JSON
  shopdrive search -i                      # Live search, one query per line
  shopdrive suggest ti                     # Query suggestions
  shopdrive --store memory search aki      # Search the built-in sample data`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is ./shopdrive.yaml)")
	flags.String("store", "", "content backend: sqlite, postgres, memory or http")
	flags.String("db-dsn", "", "database DSN for the sqlite and postgres backends")
	flags.String("store-url", "", "base URL of the remote API for the http backend")
	_ = a.v.BindPFlag("store", flags.Lookup("store"))
	_ = a.v.BindPFlag("db_dsn", flags.Lookup("db-dsn"))
	_ = a.v.BindPFlag("store_url", flags.Lookup("store-url"))

	root.AddCommand(newServeCmd(a), newSearchCmd(a), newSuggestCmd(a))
	return root
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

func (a *app) loadConfig() error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	a.cfg = cfg
	return nil
}
