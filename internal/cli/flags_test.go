package cli

import (
	"slices"
	"testing"

	"github.com/spf13/cobra"

	"github.com/matzehuels/permgen/pkg/perm"
)

func newFlagTestCommand(alg *perm.Algorithm, in *inputFlags) *cobra.Command {
	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	addAlgorithmFlags(cmd, alg)
	addInputFlags(cmd.Flags(), in)
	cmd.Flags().StringP("output", "o", "", "")
	return cmd
}

func TestAlgorithmFlagsLastWins(t *testing.T) {
	tests := []struct {
		args []string
		want perm.Algorithm
	}{
		{nil, perm.Lexicographic},
		{[]string{"-p"}, perm.PlainChanges},
		{[]string{"-p", "-c"}, perm.CyclicShift},
		{[]string{"-c", "-p", "-e"}, perm.Ehrlich},
		{[]string{"-e", "-l"}, perm.Lexicographic},
		{[]string{"-pe"}, perm.Ehrlich},
		{[]string{"--algorithm", "cyclic", "-p"}, perm.PlainChanges},
		{[]string{"-p", "--algorithm=E"}, perm.Ehrlich},
		{[]string{"-p", "--ehrlich=false"}, perm.PlainChanges},
	}

	for _, tt := range tests {
		var alg perm.Algorithm
		var in inputFlags
		cmd := newFlagTestCommand(&alg, &in)
		if err := cmd.ParseFlags(tt.args); err != nil {
			t.Fatalf("ParseFlags(%v): %v", tt.args, err)
		}
		if alg != tt.want {
			t.Errorf("ParseFlags(%v) algorithm = %s, want %s", tt.args, alg, tt.want)
		}
		if changed := algorithmChanged(cmd.Flags()); changed != (len(tt.args) > 0) {
			t.Errorf("algorithmChanged(%v) = %v", tt.args, changed)
		}
	}
}

func TestAlgorithmFlagRejectsUnknownName(t *testing.T) {
	var alg perm.Algorithm
	var in inputFlags
	cmd := newFlagTestCommand(&alg, &in)
	if err := cmd.ParseFlags([]string{"--algorithm", "heap"}); err == nil {
		t.Error("unknown algorithm name should fail to parse")
	}
}

func TestInputSource(t *testing.T) {
	var alg perm.Algorithm
	var in inputFlags
	cmd := newFlagTestCommand(&alg, &in)
	if _, err := in.source(cmd.Flags()); err == nil {
		t.Error("no -i and no -n should be an error")
	}

	if err := cmd.ParseFlags([]string{"-n", "0"}); err != nil {
		t.Fatal(err)
	}
	src, err := in.source(cmd.Flags())
	if err != nil {
		t.Fatalf("-n 0 should be accepted: %v", err)
	}
	if src.Path != "" || src.Count != 0 {
		t.Errorf("source = %+v", src)
	}

	if err := cmd.ParseFlags([]string{"-i", "elems.txt"}); err != nil {
		t.Fatal(err)
	}
	src, _ = in.source(cmd.Flags())
	if src.Path != "elems.txt" || src.Kind() != "file" {
		t.Errorf("source = %+v", src)
	}
}

func TestUnrecognizedOptions(t *testing.T) {
	var alg perm.Algorithm
	var in inputFlags
	fs := newFlagTestCommand(&alg, &in).Flags()

	tests := []struct {
		args []string
		want []string
	}{
		{[]string{"-p", "-n", "3"}, nil},
		{[]string{"--bogus", "-n", "3"}, []string{"--bogus"}},
		{[]string{"--bogus=1", "-p"}, []string{"--bogus=1"}},
		{[]string{"-x", "-p"}, []string{"-x"}},
		{[]string{"-px"}, []string{"-x"}},
		{[]string{"-n3", "-z"}, []string{"-z"}},
		{[]string{"-i", "-weird-name.txt"}, nil},
		{[]string{"--input", "--x"}, nil},
		{[]string{"-p", "--", "--bogus"}, nil},
		{[]string{"--bogus", "value", "-q"}, []string{"--bogus", "-q"}},
		{[]string{"-px", "value", "--bogus"}, []string{"-x", "--bogus"}},
		// -x drops out.txt, so -o takes --bogus as its value.
		{[]string{"-xo", "out.txt", "--bogus"}, []string{"-x"}},
	}
	for _, tt := range tests {
		got := unrecognizedOptions(fs, tt.args)
		if !slices.Equal(got, tt.want) {
			t.Errorf("unrecognizedOptions(%v) = %v, want %v", tt.args, got, tt.want)
		}
	}
}

// TestUnrecognizedOptionsMatchesParser checks the scan against what the
// whitelisting parser actually assigns.
func TestUnrecognizedOptionsMatchesParser(t *testing.T) {
	var alg perm.Algorithm
	var in inputFlags
	cmd := newFlagTestCommand(&alg, &in)
	cmd.FParseErrWhitelist = cobra.FParseErrWhitelist{UnknownFlags: true}

	args := []string{"-xo", "out.txt", "--bogus"}
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags(%v): %v", args, err)
	}
	if got, _ := cmd.Flags().GetString("output"); got != "--bogus" {
		t.Errorf("output = %q, want --bogus", got)
	}
	if got := unrecognizedOptions(cmd.Flags(), args); !slices.Equal(got, []string{"-x"}) {
		t.Errorf("unrecognizedOptions(%v) = %v, want [-x]", args, got)
	}
}
