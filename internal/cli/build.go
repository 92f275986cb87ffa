package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/loomworks/knitgraph/pkg/graphio"
	"github.com/loomworks/knitgraph/pkg/manifest"
)

// buildOpts holds the command-line flags for the build command.
type buildOpts struct {
	output string // output file path; derived from the manifest name if empty
}

// newBuildCmd creates the build command for constructing knit graphs from
// swatch manifests. The graph is written as JSON, ready for the courses and
// render commands.
func newBuildCmd() *cobra.Command {
	var opts buildOpts

	cmd := &cobra.Command{
		Use:   "build <manifest.toml>",
		Short: "Build a knit graph from a swatch manifest",
		Long: `Build a knit graph from a TOML swatch manifest.

The manifest names a pattern (stockinette, rib, seed, lace, twists) and its
dimensions; the resulting loop graph is written as JSON.

Examples:
  knitgraph build swatch.toml
  knitgraph build swatch.toml -o fabric.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (derived from manifest name if empty)")

	return cmd
}

// runBuild loads the manifest, builds the swatch graph, and writes it as JSON.
func runBuild(ctx context.Context, input string, opts *buildOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	logger.Infof("Building %s", input)

	s, err := manifest.Load(input)
	if err != nil {
		return err
	}
	logger.Debugf("Manifest: pattern=%s width=%d height=%d yarn=%s", s.Pattern, s.Width, s.Height, s.Yarn)

	g, err := s.Build()
	if err != nil {
		return err
	}

	output := opts.output
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".json"
	}
	if err := graphio.WriteGraphFile(g, output); err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Built %s swatch: %d loops, %d stitches", s.Pattern, g.LoopCount(), g.EdgeCount()))
	printFile(output)
	return nil
}
