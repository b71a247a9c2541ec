package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/permgen/pkg/errors"
	"github.com/matzehuels/permgen/pkg/perm"
	"github.com/matzehuels/permgen/pkg/pipeline"
)

type graphOptions struct {
	algorithm perm.Algorithm
	input     inputFlags
	output    string
	format    string
	cycle     bool
	title     string
	noCache   bool
}

// graphCommand creates the graph command, which renders the transition
// graph of a small enumeration.
func (c *CLI) graphCommand() *cobra.Command {
	var opts graphOptions

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Render the transition graph of a small enumeration",
		Long: `Graph enumerates at most 6 elements and draws every permutation as a node, in
visit order, with an edge to the next permutation labelled by the positions
that changed. Plain changes show adjacent swaps, Ehrlich swaps always involve
position 1, and cyclic shifts show prefix rotations.

The format is taken from --format, or from the extension of -o (.dot or .svg).
Without -o the graph is written to stdout.`,
		Example: `  permgen graph -p -n 4 -o plain.svg
  permgen graph -e -n 3 --format dot
  permgen graph -p -n 3 --cycle -o cycle.svg`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !algorithmChanged(cmd.Flags()) {
				opts.algorithm = c.Config.AlgorithmOr(opts.algorithm)
			}
			return c.runGraph(cmd, opts)
		},
	}

	fs := cmd.Flags()
	addAlgorithmFlags(cmd, &opts.algorithm)
	addInputFlags(fs, &opts.input)
	fs.StringVarP(&opts.output, "output", "o", "", "write the graph to `file` instead of stdout")
	fs.StringVar(&opts.format, "format", "", "graph format: svg or dot (default from -o, else svg)")
	fs.BoolVar(&opts.cycle, "cycle", false, "add an edge from the last permutation back to the first")
	fs.StringVar(&opts.title, "title", "", "graph label (default \"<algorithm> n=<n>\")")
	fs.BoolVar(&opts.noCache, "no-cache", false, "render SVG without reading or writing the graph cache")
	return cmd
}

func (c *CLI) runGraph(cmd *cobra.Command, opts graphOptions) error {
	src, err := opts.input.source(cmd.Flags())
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	runner := c.newRunner(logger)
	runner.Cache = c.graphCache(opts.noCache)
	defer runner.Cache.Close()

	elems, err := runner.Load(ctx, src)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	data, err := runner.Graph(ctx, pipeline.GraphOptions{
		Algorithm: opts.algorithm,
		Elements:  elems,
		Sort:      opts.input.sort,
		Format:    graphFormat(opts.format, opts.output),
		Cycle:     opts.cycle,
		Title:     opts.title,
	})
	if err != nil {
		return err
	}

	if opts.output == "" {
		_, err := c.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "can't write graph to %s", opts.output)
	}
	prog.done("Rendered transition graph")

	p := newPrinter(c.Stdout)
	p.Success("Rendered %s graph", opts.algorithm)
	p.File(opts.output)
	return nil
}

// graphFormat picks the explicit format, else the output extension, else svg.
func graphFormat(format, output string) string {
	if format != "" {
		return format
	}
	if strings.EqualFold(filepath.Ext(output), ".dot") {
		return pipeline.GraphFormatDOT
	}
	return pipeline.GraphFormatSVG
}
