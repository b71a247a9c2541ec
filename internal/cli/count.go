package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/permgen/pkg/errors"
	"github.com/matzehuels/permgen/pkg/perm"
	"github.com/matzehuels/permgen/pkg/pipeline"
)

// countCommand creates the count command, which prints how many
// permutations a run would visit without generating them.
func (c *CLI) countCommand() *cobra.Command {
	var (
		alg perm.Algorithm
		in  inputFlags
	)

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Print the number of permutations without generating them",
		Long: `Count prints n! for plain changes, cyclic shifts and Ehrlich swaps, and the
multinomial coefficient n!/(m1!·m2!·…) for lexicographic order over a multiset.
The input is checked against the algorithm's preconditions first.`,
		Example: `  permgen count -n 12
  permgen count -l -i multiset.txt`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !algorithmChanged(cmd.Flags()) {
				alg = c.Config.AlgorithmOr(alg)
			}
			if !cmd.Flags().Changed("sort") && c.Config.Sort {
				in.sort = true
			}
			return c.runCount(cmd, alg, in)
		},
	}

	addAlgorithmFlags(cmd, &alg)
	addInputFlags(cmd.Flags(), &in)
	return cmd
}

func (c *CLI) runCount(cmd *cobra.Command, alg perm.Algorithm, in inputFlags) error {
	src, err := in.source(cmd.Flags())
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	runner := c.newRunner(loggerFromContext(ctx))

	elems, err := runner.Load(ctx, src)
	if err != nil {
		return err
	}

	n, err := runner.Count(pipeline.Options{Algorithm: alg, Elements: elems, Sort: in.sort})
	if errors.Is(err, errors.ErrCodeOverflow) {
		newPrinter(c.Stderr).Warning("%s", errors.UserMessage(err))
		return nil
	}
	if err != nil {
		return err
	}
	newPrinter(c.Stdout).Count(n)
	return nil
}
