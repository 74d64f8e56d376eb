package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridtable/pkg/buildinfo"
)

// Execute runs the gridtable CLI and returns an error if any command fails.
//
// The root command wires all subcommands, configures logging based on the
// --verbose flag, and attaches the logger to the command context where
// subcommands retrieve it via loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "Gridtable renders tabular data as framed text tables",
		Long:         `Gridtable is a CLI tool for rendering CSV and JSON data as text tables, with configurable border styles, column and row spans, and custom themes.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newViewCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newStylesCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}
