package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/permgen/pkg/cache"
	"github.com/matzehuels/permgen/pkg/errors"
	"github.com/matzehuels/permgen/pkg/perm"
)

// GraphOptions configures a transition graph rendering.
type GraphOptions struct {
	Algorithm perm.Algorithm
	Elements  []int
	Sort      bool

	// Format is GraphFormatSVG (default) or GraphFormatDOT.
	Format string

	// Cycle adds the edge from the last permutation back to the first.
	Cycle bool

	// Title overrides the default "<algorithm> n=<n>" graph label.
	Title string
}

// Graph enumerates a small input and renders the sequence of visits as a
// transition graph. Inputs with more than [perm.MaxGraphElements] elements
// are rejected with TOO_LARGE.
func (r *Runner) Graph(ctx context.Context, opts GraphOptions) ([]byte, error) {
	if opts.Format == "" {
		opts.Format = GraphFormatSVG
	}
	if err := ValidateGraphFormat(opts.Format); err != nil {
		return nil, err
	}
	if n := len(opts.Elements); n > perm.MaxGraphElements {
		return nil, errors.New(errors.ErrCodeTooLarge,
			"transition graphs are limited to %d elements, got %d", perm.MaxGraphElements, n)
	}

	perms, err := r.Collect(ctx, Options{
		Algorithm: opts.Algorithm,
		Elements:  opts.Elements,
		Sort:      opts.Sort,
	})
	if err != nil {
		return nil, err
	}

	title := opts.Title
	if title == "" {
		title = fmt.Sprintf("%s n=%d", opts.Algorithm, len(opts.Elements))
	}
	dot := perm.ToDOT(perms, perm.DOTOptions{Title: title, Cycle: opts.Cycle})
	r.Logger.Debug("built transition graph", "nodes", len(perms), "format", opts.Format)

	if opts.Format == GraphFormatDOT {
		return []byte(dot), nil
	}
	return r.renderSVG(ctx, dot)
}

// renderSVG renders dot through the runner's cache. Cache failures are
// logged and otherwise ignored.
func (r *Runner) renderSVG(ctx context.Context, dot string) ([]byte, error) {
	c := r.Cache
	if c == nil {
		c = cache.NewNullCache()
	}
	key := cache.GraphKey([]byte(dot), GraphFormatSVG)

	data, ok, err := c.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("graph cache read failed", "err", err)
	}
	if ok {
		r.Logger.Debug("graph cache hit", "key", key)
		return data, nil
	}

	svg, err := perm.RenderSVG(ctx, dot)
	if err != nil {
		return nil, fmt.Errorf("render svg: %w", err)
	}
	if err := c.Set(ctx, key, svg, 0); err != nil {
		r.Logger.Warn("graph cache write failed", "err", err)
	}
	return svg, nil
}
