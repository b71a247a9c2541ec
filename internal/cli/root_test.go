package cli

import (
	"bytes"
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/matzehuels/permgen/pkg/errors"
)

// newTestCLI returns a CLI writing to buffers, with the config and cache
// directories pointed at empty temp dirs so a user's files cannot leak in.
func newTestCLI(t *testing.T) (*CLI, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	c := &CLI{
		Logger: newLogger(&stderr, LogInfo),
		Stdout: &stdout,
		Stderr: &stderr,
	}
	return c, &stdout, &stderr
}

// execute runs the CLI with args and returns stdout, stderr and the error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	c, stdout, stderr := newTestCLI(t)
	err := c.Execute(context.Background(), args)
	return stdout.String(), stderr.String(), err
}

func assertGolden(t *testing.T, name string, got string) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(got))
}

func TestGenerateGolden(t *testing.T) {
	tests := []struct {
		golden string
		args   []string
	}{
		{"lexicographic_multiset", []string{"-l", "-i", "testdata/multiset.txt"}},
		{"plain_n3", []string{"-p", "-n", "3"}},
		{"cyclic_n3", []string{"-c", "-n", "3"}},
		{"ehrlich_n3", []string{"-e", "-n", "3"}},
		{"plain_n3_json", []string{"--algorithm", "plain", "-n", "3", "--format", "json"}},
		{"empty", []string{"-n", "0"}},
		{"limit_3", []string{"-n", "4", "--limit", "3"}},
		{"quiet_n4", []string{"-e", "-n", "4", "-q"}},
		// The last algorithm flag wins.
		{"cyclic_n3", []string{"-p", "-e", "-c", "-n", "3"}},
		{"plain_n3", []string{"--algorithm", "ehrlich", "-p", "-n", "3"}},
		// Sorting lets L take unsorted input.
		{"lexicographic_multiset", []string{"-i", "testdata/multiset.txt", "--sort"}},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			stdout, stderr, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("Execute(%v) error: %v\nstderr: %s", tt.args, err, stderr)
			}
			assertGolden(t, tt.golden, stdout)
		})
	}
}

func TestGenerateNoArgsPrintsUsage(t *testing.T) {
	stdout, _, err := execute(t)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !strings.Contains(stdout, "Usage:") || !strings.Contains(stdout, "--plain") {
		t.Errorf("expected usage, got:\n%s", stdout)
	}
}

func TestGenerateHelp(t *testing.T) {
	stdout, _, err := execute(t, "-h")
	if err != nil {
		t.Fatalf("Execute(-h) error: %v", err)
	}
	for _, flag := range []string{"-l, --lexicographic", "-p, --plain", "-c, --cyclic", "-e, --ehrlich", "-i, --input", "-o, --output", "-n, --count"} {
		if !strings.Contains(stdout, flag) {
			t.Errorf("help is missing %q", flag)
		}
	}
}

func TestGenerateWarnsOnUnrecognizedOptions(t *testing.T) {
	stdout, stderr, err := execute(t, "--bogus", "-n", "2", "extra")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	for _, want := range []string{
		"Warning: unrecognized command-line option --bogus",
		"Warning: unrecognized command-line option extra",
	} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr missing %q:\n%s", want, stderr)
		}
	}
	if stdout != "1 2\n2 1\nNumber of permutations: 2\n" {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestGenerateOnlyUnrecognizedPrintsUsage(t *testing.T) {
	stdout, stderr, err := execute(t, "-x")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !strings.Contains(stderr, "unrecognized command-line option -x") {
		t.Errorf("stderr = %q", stderr)
	}
	if !strings.Contains(stdout, "Usage:") {
		t.Errorf("expected usage, got:\n%s", stdout)
	}
}

func TestGenerateOutputFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "perms.txt")
	stdout, _, err := execute(t, "-e", "-n", "3", "-o", out)
	if err != nil {
		t.Fatal(err)
	}
	if stdout != "Number of permutations: 6\n" {
		t.Errorf("stdout = %q", stdout)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	want := "1 2 3\n2 1 3\n3 1 2\n1 3 2\n2 3 1\n3 2 1\n"
	if string(data) != want {
		t.Errorf("output file = %q, want %q", data, want)
	}
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"no input", []string{"-p"}, errors.ErrCodeInvalidInput},
		{"missing input file", []string{"-i", "testdata/does-not-exist.txt"}, errors.ErrCodeFileNotFound},
		{"bad output path", []string{"-n", "2", "-o", filepath.Join("testdata", "no-such-dir", "out.txt")}, errors.ErrCodeInvalidPath},
		{"duplicates for plain", []string{"-p", "-i", "testdata/duplicates.txt"}, errors.ErrCodeDuplicateElement},
		{"unsorted for lexicographic", []string{"-l", "-i", "testdata/duplicates.txt"}, errors.ErrCodeUnsortedInput},
		{"negative count", []string{"-n", "-1"}, errors.ErrCodeInvalidInput},
		{"bad format", []string{"-n", "2", "--format", "xml"}, errors.ErrCodeInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			if !errors.Is(err, tt.code) {
				t.Errorf("Execute(%v) error = %v, want %s", tt.args, err, tt.code)
			}
		})
	}
}

func TestGenerateBadAlgorithmName(t *testing.T) {
	_, _, err := execute(t, "-n", "2", "--algorithm", "heap")
	if err == nil || !strings.Contains(err.Error(), "heap") {
		t.Errorf("error = %v, want a flag error naming the value", err)
	}
}

func TestGenerateCancelled(t *testing.T) {
	c, stdout, _ := newTestCLI(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Execute(ctx, []string{"-e", "-n", "9", "-q"})
	if !stderrors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
	if stdout.Len() != 0 {
		t.Errorf("cancelled run printed a summary: %q", stdout.String())
	}
}

func TestGenerateVerboseLogsElementCount(t *testing.T) {
	_, stderr, err := execute(t, "-v", "-p", "-n", "3", "-q")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stderr, "n = 3") {
		t.Errorf("verbose stderr missing element count:\n%s", stderr)
	}
	if !strings.Contains(stderr, "run=") {
		t.Errorf("verbose stderr missing run id:\n%s", stderr)
	}
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "--version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(stdout, "permgen version ") {
		t.Errorf("--version = %q", stdout)
	}
}

func TestGenerateRejectedRunLeavesNoOutputFile(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"duplicates for plain", []string{"-p", "-i", "testdata/duplicates.txt"}, errors.ErrCodeDuplicateElement},
		{"unsorted for lexicographic", []string{"-l", "-i", "testdata/duplicates.txt"}, errors.ErrCodeUnsortedInput},
		{"bad format", []string{"-n", "3", "--format", "xml"}, errors.ErrCodeInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "perms.txt")
			_, _, err := execute(t, append(tt.args, "-o", out)...)
			if !errors.Is(err, tt.code) {
				t.Fatalf("error = %v, want %s", err, tt.code)
			}
			if _, err := os.Stat(out); !os.IsNotExist(err) {
				t.Errorf("rejected run created %s", out)
			}
		})
	}
}

func TestGenerateSeparator(t *testing.T) {
	stdout, _, err := execute(t, "-p", "-n", "3", "--separator", ",", "--limit", "2")
	if err != nil {
		t.Fatal(err)
	}
	if want := "1,2,3\n1,3,2\nNumber of permutations: 2\n"; stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}
