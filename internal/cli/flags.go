package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/permgen/pkg/errors"
	"github.com/matzehuels/permgen/pkg/perm"
	"github.com/matzehuels/permgen/pkg/pipeline"
)

// =============================================================================
// Algorithm Selection
// =============================================================================

// algorithmFlagNames lists every flag that writes the selected algorithm.
var algorithmFlagNames = []string{"lexicographic", "plain", "cyclic", "ehrlich", "algorithm"}

// selectFlag is a boolean flag that selects one algorithm. All selectors of
// a command share one target, and pflag sets flags in command-line order, so
// the last selector given wins.
type selectFlag struct {
	target *perm.Algorithm
	alg    perm.Algorithm
}

func (f *selectFlag) String() string { return strconv.FormatBool(*f.target == f.alg) }
func (f *selectFlag) Type() string   { return "bool" }

func (f *selectFlag) Set(s string) error {
	on, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	if on {
		*f.target = f.alg
	}
	return nil
}

// nameFlag selects an algorithm by name (--algorithm plain).
type nameFlag struct {
	target *perm.Algorithm
}

func (f *nameFlag) String() string { return f.target.String() }
func (f *nameFlag) Type() string   { return "algorithm" }

func (f *nameFlag) Set(s string) error {
	alg, err := perm.ParseAlgorithm(s)
	if err != nil {
		return err
	}
	*f.target = alg
	return nil
}

// addAlgorithmFlags registers -l, -p, -c, -e and --algorithm on cmd, all
// writing to target.
func addAlgorithmFlags(cmd *cobra.Command, target *perm.Algorithm) {
	*target = pipeline.DefaultAlgorithm
	fs := cmd.Flags()

	selectors := []struct {
		alg   perm.Algorithm
		usage string
	}{
		{perm.Lexicographic, "use Algorithm L, lexicographic order (multisets allowed)"},
		{perm.PlainChanges, "use Algorithm P, plain changes (adjacent swaps)"},
		{perm.CyclicShift, "use Algorithm C, cyclic shifts (prefix rotations)"},
		{perm.Ehrlich, "use Algorithm E, Ehrlich swaps (swap with the first element)"},
	}
	for _, s := range selectors {
		f := fs.VarPF(&selectFlag{target: target, alg: s.alg}, s.alg.String(), s.alg.Letter(), s.usage)
		f.NoOptDefVal = "true"
	}

	fs.Var(&nameFlag{target: target}, "algorithm", "algorithm by `name`: lexicographic, plain, cyclic or ehrlich")
	_ = cmd.RegisterFlagCompletionFunc("algorithm", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, len(perm.Algorithms))
		for i, a := range perm.Algorithms {
			names[i] = a.String()
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
}

// algorithmChanged reports whether any algorithm flag was given.
func algorithmChanged(fs *pflag.FlagSet) bool {
	for _, name := range algorithmFlagNames {
		if fs.Changed(name) {
			return true
		}
	}
	return false
}

// =============================================================================
// Input Selection
// =============================================================================

// inputFlags selects the multiset to permute.
type inputFlags struct {
	path  string
	count int
	sort  bool
}

func addInputFlags(fs *pflag.FlagSet, in *inputFlags) {
	fs.StringVarP(&in.path, "input", "i", "", "read elements from `file` (whitespace-separated integers)")
	fs.IntVarP(&in.count, "count", "n", 0, "permute the elements 1..`n` when no input file is given")
	fs.BoolVar(&in.sort, "sort", false, "sort the elements before generating")
}

// source returns the pipeline source for the parsed flags. An input file
// takes precedence over -n.
func (in inputFlags) source(fs *pflag.FlagSet) (pipeline.Source, error) {
	if in.path == "" && !fs.Changed("count") {
		return pipeline.Source{}, errors.New(errors.ErrCodeInvalidInput, "no input: use -i <file> or -n <count>")
	}
	return pipeline.Source{Path: in.path, Count: in.count}, nil
}

// =============================================================================
// Unrecognized Options
// =============================================================================

// unrecognizedOptions returns the options in args that fs does not define,
// in command-line order. It follows pflag's rules for skipping the value of
// an unknown flag, so the result matches what the whitelisting parser
// dropped.
func unrecognizedOptions(fs *pflag.FlagSet, args []string) []string {
	var out []string
	skipValue := func(i int) int {
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			return i + 1
		}
		return i
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return out
		case strings.HasPrefix(arg, "--"):
			name, _, hasValue := strings.Cut(arg[2:], "=")
			f := fs.Lookup(name)
			switch {
			case f == nil:
				out = append(out, arg)
				if !hasValue {
					i = skipValue(i)
				}
			case !hasValue && f.NoOptDefVal == "":
				i++
			}
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			shorts := arg[1:]
			for j := 0; j < len(shorts); j++ {
				f := fs.ShorthandLookup(shorts[j : j+1])
				if f == nil {
					out = append(out, "-"+shorts[j:j+1])
					if j+1 < len(shorts) && shorts[j+1] == '=' {
						break
					}
					// pflag drops a following value for an unknown short
					// flag wherever it sits in the group.
					i = skipValue(i)
					continue
				}
				if f.NoOptDefVal == "" {
					// The rest of the group, or the next arg, is the value.
					if j == len(shorts)-1 {
						i++
					}
					break
				}
			}
		}
	}
	return out
}
