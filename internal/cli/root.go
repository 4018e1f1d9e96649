package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/cardlist/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the cardlist CLI.
// It loads configuration, wires up logging and tracing, and registers the
// browse, page and config subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:           "cardlist",
		Short:         "Browse and search tagged item catalogs",
		Long:          "cardlist: a paginated, tag-searchable view over JSON and YAML item catalogs",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			cmd.SetContext(contextWithConfig(cmd.Context(), cfg))

			result := setupLogging(cmd, cfg)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
	}

	cmd.PersistentFlags().String("config", "", "config file (default $CARDLIST_HOME/config.yaml)")
	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.AddCommand(NewBrowseCmd(), NewPageCmd(), newConfigCmd())

	return cmd
}

const rootCmdExample = `  # Browse a catalog interactively
  cardlist browse --data products.json

  # Print the second page of items tagged "red"
  cardlist page --data products.yaml --search red --page 2

  # Print a page as JSON
  cardlist page --data products.json --output json

  # Initialize configuration
  cardlist config init`

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd())
	return cmd
}
