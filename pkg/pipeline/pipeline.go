// Package pipeline provides the load → enumerate → write pipeline for permgen.
//
// The CLI commands (the generator itself, count, graph and step) all go
// through this package, so validation, defaults, logging, observability
// hooks and cancellation behave the same way for every entry point.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: resolve the element multiset from a file or synthesize 1..n
//  2. Enumerate: run one of the engines in package perm over the elements
//  3. Write: stream every visit to a sink (text or JSON lines)
//
// The graph stage replaces Write with a transition-graph renderer for small
// inputs.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	elems, err := runner.Load(ctx, pipeline.Source{Count: 4})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Algorithm: perm.PlainChanges,
//	    Elements:  elems,
//	    Output:    os.Stdout,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Number of permutations:", result.Count)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/permgen/pkg/errors"
	"github.com/matzehuels/permgen/pkg/perm"
)

// =============================================================================
// Default Values - Single Source of Truth for the CLI and config file
// =============================================================================

const (
	// DefaultAlgorithm is the engine used when none is selected.
	DefaultAlgorithm = perm.Lexicographic

	// DefaultFormat is the default output format.
	DefaultFormat = FormatText

	// CheckInterval is how many visits pass between context checks. A
	// cancelled run stops within this many extra visits.
	CheckInterval = 4096
)

// Format constants for output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Graph format constants.
const (
	GraphFormatSVG = "svg"
	GraphFormatDOT = "dot"
)

// ValidFormats is the set of supported permutation output formats.
var ValidFormats = map[string]bool{
	FormatText: true,
	FormatJSON: true,
}

// ValidGraphFormats is the set of supported transition graph formats.
var ValidGraphFormats = map[string]bool{
	GraphFormatSVG: true,
	GraphFormatDOT: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for an enumeration run.
type Options struct {
	// Algorithm selects the engine.
	Algorithm perm.Algorithm

	// Elements is the multiset to permute. It is never modified.
	Elements []int

	// Sort enumerates a sorted copy of Elements. This lets Lexicographic
	// take files that are not already in non-decreasing order.
	Sort bool

	// Output receives the permutations. A nil Output behaves like Quiet.
	Output io.Writer

	// Format is FormatText or FormatJSON.
	Format string

	// Index wraps each JSON permutation with its 1-based visit number.
	Index bool

	// Separator replaces the single space between text elements.
	Separator string

	// Limit stops the run after this many visits. Zero means no limit.
	Limit int

	// Quiet counts permutations without writing them.
	Quiet bool

	// Logger overrides the runner's logger for this run.
	Logger *log.Logger

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outcome of an enumeration run.
type Result struct {
	// Algorithm is the engine that ran.
	Algorithm perm.Algorithm

	// Elements is the number of elements permuted.
	Elements int

	// Count is the number of permutations visited.
	Count int

	// Expected is the number of permutations a complete run visits. It is
	// only meaningful when Overflow is false.
	Expected int

	// Overflow reports that Expected does not fit in an int.
	Overflow bool

	// Stopped reports that the run ended before visiting every
	// permutation, because of Limit or cancellation.
	Stopped bool

	// Duration is the wall time spent enumerating and writing.
	Duration time.Duration
}

// Complete reports whether every permutation was visited.
func (r *Result) Complete() bool {
	return !r.Stopped
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a permutation output format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: text, json)", format)
	}
	return nil
}

// ValidateGraphFormat checks that a transition graph format is valid.
func ValidateGraphFormat(format string) error {
	if !ValidGraphFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid graph format: %q (must be one of: svg, dot)", format)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the options and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if err := ValidateFormat(o.Format); err != nil {
		return err
	}
	if !o.Algorithm.Valid() {
		return errors.New(errors.ErrCodeInvalidAlgorithm, "unknown algorithm %d", int(o.Algorithm))
	}
	if o.Limit < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "limit must not be negative, got %d", o.Limit)
	}
	if o.Output == nil {
		o.Quiet = true
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// Writes reports whether the run writes permutations anywhere.
func (o *Options) Writes() bool {
	return !o.Quiet && o.Output != nil
}
