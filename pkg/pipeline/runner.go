package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/permgen/pkg/cache"
	"github.com/matzehuels/permgen/pkg/errors"
	permio "github.com/matzehuels/permgen/pkg/io"
	"github.com/matzehuels/permgen/pkg/observability"
	"github.com/matzehuels/permgen/pkg/perm"
	"github.com/matzehuels/permgen/pkg/sink"
)

// Runner encapsulates pipeline execution.
//
// The Runner is stateless except for the logger and the graph cache - it
// doesn't store enumeration results. Multiple goroutines can safely use the
// same Runner with different options; each run owns its own generator and
// sink.
type Runner struct {
	Logger *log.Logger

	// Cache holds rendered SVG graphs. A nil Cache disables caching.
	Cache cache.Cache
}

// NewRunner creates a runner that logs to logger.
// If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger, Cache: cache.NewNullCache()}
}

// Execute runs the enumeration described by opts, streaming every visit to
// opts.Output in opts.Format.
//
// The context is checked every [CheckInterval] visits. When it is cancelled
// the run stops, buffered output is flushed, and Execute returns the partial
// result together with ctx.Err().
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	logger := opts.Logger

	elems := opts.Elements
	if opts.Sort {
		elems = permio.Sorted(elems)
	}
	if err := perm.Validate(opts.Algorithm, elems); err != nil {
		return nil, err
	}

	result := &Result{Algorithm: opts.Algorithm, Elements: len(elems)}
	expected, err := perm.Count(opts.Algorithm, elems)
	switch {
	case errors.Is(err, errors.ErrCodeOverflow):
		result.Overflow = true
		logger.Warn("permutation count exceeds the integer range; generating anyway", "n", len(elems))
	case err != nil:
		return nil, err
	default:
		result.Expected = expected
	}
	logger.Debug("enumerating", "algorithm", opts.Algorithm, "n", len(elems), "expected", expected)

	hooks := observability.Enumeration()
	hooks.OnEnumerateStart(ctx, opts.Algorithm.String(), len(elems))

	var (
		w       sink.Writer
		counter sink.Counter
	)
	visit := counter.Visit
	if opts.Writes() {
		w = newWriter(opts)
		visit = w.Visit
	}
	stopped, cancelled := false, false
	chain := withContext(ctx, sink.Limit(opts.Limit, visit), &cancelled)
	visit = func(p []int) bool {
		if !chain(p) {
			stopped = true
			return false
		}
		return true
	}

	start := time.Now()
	n, err := perm.Enumerate(opts.Algorithm, elems, visit)
	if err == nil && w != nil {
		if ferr := w.Flush(); ferr != nil {
			err = fmt.Errorf("write permutations: %w", ferr)
		}
	}
	if err == nil && cancelled {
		err = ctx.Err()
	}
	result.Count = n
	result.Duration = time.Since(start)
	result.Stopped = stopped && (result.Overflow || n < expected)

	hooks.OnEnumerateComplete(ctx, opts.Algorithm.String(), n, result.Duration, err)

	if err != nil {
		return result, err
	}
	logger.Debug("enumeration finished", "count", n, "duration", result.Duration)
	return result, nil
}

// Count returns how many permutations a complete run over opts.Elements
// would visit, without enumerating them. Preconditions are checked first so
// that count agrees with what Execute would do. An OVERFLOW error is
// returned when the number does not fit in an int.
func (r *Runner) Count(opts Options) (int, error) {
	r.applyLogger(&opts)
	if err := r.Check(opts); err != nil {
		return 0, err
	}
	elems := opts.Elements
	if opts.Sort {
		elems = permio.Sorted(elems)
	}
	n, err := perm.Count(opts.Algorithm, elems)
	if err != nil {
		return 0, err
	}
	opts.Logger.Debug("counted permutations", "algorithm", opts.Algorithm, "n", len(elems), "count", n)
	return n, nil
}

// Check reports the error Execute would return before writing anything:
// invalid options or an input that violates the algorithm's preconditions.
// Callers that open an output destination check first so a rejected run
// leaves nothing behind.
func (r *Runner) Check(opts Options) error {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	elems := opts.Elements
	if opts.Sort {
		elems = permio.Sorted(elems)
	}
	return perm.Validate(opts.Algorithm, elems)
}

// Collect enumerates opts.Elements and returns a copy of every visited
// permutation. It is meant for small inputs (graphs, the stepper, tests);
// callers bound the size with opts.Limit or by checking the input length.
func (r *Runner) Collect(ctx context.Context, opts Options) ([][]int, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	elems := opts.Elements
	if opts.Sort {
		elems = permio.Sorted(elems)
	}
	var c sink.Collector[int]
	visit := withContext(ctx, sink.Limit(opts.Limit, c.Visit))
	if _, err := perm.Enumerate(opts.Algorithm, elems, visit); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.Perms, nil
}

// newWriter returns the sink for opts.Format.
func newWriter(opts Options) sink.Writer {
	if opts.Format == FormatJSON {
		var jsonOpts []sink.JSONOption
		if opts.Index {
			jsonOpts = append(jsonOpts, sink.WithIndex())
		}
		return sink.NewJSONLines(opts.Output, jsonOpts...)
	}
	var textOpts []sink.TextOption
	if opts.Separator != "" {
		textOpts = append(textOpts, sink.WithSeparator(opts.Separator))
	}
	return sink.NewText(opts.Output, textOpts...)
}

// withContext stops the run once ctx is done and sets *cancelled. The
// context is only polled every CheckInterval visits to keep the per-visit
// cost to a counter.
func withContext(ctx context.Context, next perm.Visitor[int], cancelled *bool) perm.Visitor[int] {
	if ctx.Done() == nil {
		return next
	}
	seen := 0
	return func(p []int) bool {
		if !next(p) {
			return false
		}
		seen++
		if seen%CheckInterval == 0 && ctx.Err() != nil {
			*cancelled = true
			return false
		}
		return true
	}
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
