package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	permerrors "github.com/matzehuels/permgen/pkg/errors"
	"github.com/matzehuels/permgen/pkg/perm"
	"github.com/matzehuels/permgen/pkg/pipeline"
)

// generateOptions holds the generator flags.
type generateOptions struct {
	algorithm perm.Algorithm
	input     inputFlags
	output    string
	format    string
	limit     int
	quiet     bool
	index     bool
	separator string
}

// generateCommand creates the root command, which generates permutations.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   appName + " [flags]",
		Short: "Permgen generates every permutation of a set or multiset",
		Long: `Permgen enumerates every distinct permutation of a set or multiset with one
of four algorithms from Knuth's TAOCP 7.2.1.2, writing one permutation per line.

  L  lexicographic order; the input may repeat elements and must be sorted
  P  plain changes; consecutive permutations differ by an adjacent swap
  C  cyclic shifts; every step rotates a prefix to the left
  E  Ehrlich swaps; every step swaps the first element with another

Elements come from a file of whitespace-separated integers (-i) or are the
numbers 1..n (-n). When several algorithm flags are given, the last one wins.`,
		Example: `  permgen -l -i multiset.txt -o perms.txt
  permgen -p -n 4
  permgen -e -n 10 --quiet
  permgen --algorithm cyclic -n 3 --format json`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		FParseErrWhitelist: cobra.FParseErrWhitelist{
			UnknownFlags: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			c.warnUnrecognized(cmd, args)
			if cmd.Flags().NFlag() == 0 {
				return cmd.Help()
			}
			c.applyConfig(cmd, &opts)
			return c.runGenerate(cmd.Context(), cmd, opts)
		},
	}

	fs := cmd.Flags()
	addAlgorithmFlags(cmd, &opts.algorithm)
	addInputFlags(fs, &opts.input)
	fs.StringVarP(&opts.output, "output", "o", "", "write permutations to `file` instead of stdout")
	fs.StringVar(&opts.format, "format", pipeline.DefaultFormat, "output format: text or json")
	fs.IntVar(&opts.limit, "limit", 0, "stop after `n` permutations (0 means no limit)")
	fs.BoolVarP(&opts.quiet, "quiet", "q", false, "only print the number of permutations")
	fs.BoolVar(&opts.index, "index", false, "with --format json, wrap each permutation with its visit number")
	fs.StringVar(&opts.separator, "separator", "", "with --format text, put `sep` between elements instead of a space")

	return cmd
}

// warnUnrecognized prints a warning for every option and argument the
// generator ignores.
func (c *CLI) warnUnrecognized(cmd *cobra.Command, args []string) {
	p := newPrinter(c.Stderr)
	for _, opt := range unrecognizedOptions(cmd.Flags(), c.args) {
		p.Unrecognized(opt)
	}
	for _, arg := range args {
		p.Unrecognized(arg)
	}
}

// applyConfig fills in config file values for flags not given on the
// command line.
func (c *CLI) applyConfig(cmd *cobra.Command, opts *generateOptions) {
	fs := cmd.Flags()
	cfg := c.Config
	if !algorithmChanged(fs) {
		opts.algorithm = cfg.AlgorithmOr(opts.algorithm)
	}
	if !fs.Changed("format") {
		opts.format = cfg.FormatOr(opts.format)
	}
	if !fs.Changed("limit") && cfg.Limit > 0 {
		opts.limit = cfg.Limit
	}
	if !fs.Changed("sort") && cfg.Sort {
		opts.input.sort = true
	}
}

// runGenerate loads the input, streams every permutation to the output and
// prints the summary line.
func (c *CLI) runGenerate(ctx context.Context, cmd *cobra.Command, opts generateOptions) (err error) {
	src, err := opts.input.source(cmd.Flags())
	if err != nil {
		return err
	}

	logger := loggerFromContext(ctx).With("run", uuid.NewString())
	ctx = withLogger(ctx, logger)
	runner := c.newRunner(logger)

	elems, err := runner.Load(ctx, src)
	if err != nil {
		return err
	}
	logger.Debugf("n = %d", len(elems))

	popts := pipeline.Options{
		Algorithm: opts.algorithm,
		Elements:  elems,
		Sort:      opts.input.sort,
		Format:    opts.format,
		Index:     opts.index,
		Separator: opts.separator,
		Limit:     opts.limit,
		Quiet:     opts.quiet,
	}
	if err := runner.Check(popts); err != nil {
		return err
	}

	var out io.Writer = c.Stdout
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return permerrors.Wrap(permerrors.ErrCodeInvalidPath, err, "can't create output file %s", opts.output)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("close %s: %w", opts.output, cerr)
			}
		}()
		out = f
	}

	var spinner *Spinner
	if opts.output != "" && !opts.quiet && c.interactive {
		spinner = newSpinnerWithContext(ctx, c.Stderr, "Generating permutations...")
		spinner.Start()
		defer spinner.Stop()
	}

	prog := newProgress(logger)
	popts.Output = out
	res, err := runner.Execute(ctx, popts)
	if spinner != nil {
		if err != nil {
			spinner.StopWithError("Generation failed")
		} else {
			spinner.StopWithSuccess(fmt.Sprintf("Wrote %s", opts.output))
		}
	}
	if err != nil {
		if res != nil && errors.Is(err, context.Canceled) {
			logger.Warn("interrupted", "permutations", res.Count)
		}
		return err
	}

	prog.done(fmt.Sprintf("Generated %d permutations", res.Count))
	if !res.Complete() {
		logger.Info("stopped before the last permutation", "limit", opts.limit)
	}

	newPrinter(c.Stdout).Count(res.Count)
	return nil
}
