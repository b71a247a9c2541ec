package cli

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	permio "github.com/matzehuels/permgen/pkg/io"
	"github.com/matzehuels/permgen/pkg/perm"
)

// stepCommand creates the step command, an interactive stepper over one
// enumeration.
func (c *CLI) stepCommand() *cobra.Command {
	var (
		alg perm.Algorithm
		in  inputFlags
	)

	cmd := &cobra.Command{
		Use:   "step",
		Short: "Step through an enumeration one transition at a time",
		Long: `Step shows the current permutation and advances by one transition on space or
enter, highlighting the positions that changed. Press q to quit.`,
		Example: `  permgen step -p -n 4
  permgen step -l -i multiset.txt --sort`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !algorithmChanged(cmd.Flags()) {
				alg = c.Config.AlgorithmOr(alg)
			}
			return c.runStep(cmd, alg, in)
		},
	}

	addAlgorithmFlags(cmd, &alg)
	addInputFlags(cmd.Flags(), &in)
	return cmd
}

func (c *CLI) runStep(cmd *cobra.Command, alg perm.Algorithm, in inputFlags) error {
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
	if in.sort {
		elems = permio.Sorted(elems)
	}

	g, err := perm.New(alg, elems)
	if err != nil {
		return err
	}
	total, err := perm.Count(alg, elems)
	if err != nil {
		total = 0
	}

	p := tea.NewProgram(NewStepModel(g, total),
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(c.Stdout),
	)
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	return nil
}
