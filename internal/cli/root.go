package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/loomworks/knitgraph/pkg/buildinfo"
)

// Execute runs the knitgraph CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands (build, courses,
// symbols, render), configures logging based on the --verbose flag, and
// executes the command tree against ctx.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "knitgraph",
		Short:        "Knitgraph models knitted fabric as loop graphs",
		Long:         `Knitgraph is a CLI tool for building, inspecting, and rendering knit graphs: directed graphs whose nodes are yarn loops and whose edges are the stitches pulled through them.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newBuildCmd())
	root.AddCommand(newCoursesCmd())
	root.AddCommand(newSymbolsCmd())
	root.AddCommand(newRenderCmd())

	return root.ExecuteContext(ctx)
}
