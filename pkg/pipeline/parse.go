package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/permgen/pkg/errors"
	permio "github.com/matzehuels/permgen/pkg/io"
	"github.com/matzehuels/permgen/pkg/observability"
)

// Source names where the elements come from. Path wins when both fields
// are set.
type Source struct {
	// Path is an input file of whitespace-separated integers.
	Path string

	// Count synthesizes the elements 1..Count when Path is empty.
	Count int
}

// Kind returns "file" or "identity" for logs and hooks.
func (s Source) Kind() string {
	if s.Path != "" {
		return "file"
	}
	return "identity"
}

// Load resolves the element multiset described by src.
func (r *Runner) Load(ctx context.Context, src Source) ([]int, error) {
	hooks := observability.Input()
	elems, err := load(src)
	if err != nil {
		hooks.OnInputError(ctx, src.Kind(), err)
		return nil, err
	}
	hooks.OnInputLoaded(ctx, src.Kind(), len(elems))
	r.Logger.Debug("loaded elements", "source", src.Kind(), "n", len(elems))
	return elems, nil
}

func load(src Source) ([]int, error) {
	if src.Path != "" {
		elems, err := permio.ImportElements(src.Path)
		if err != nil {
			return nil, fmt.Errorf("load input: %w", err)
		}
		return elems, nil
	}
	if src.Count < 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "element count must not be negative, got %d", src.Count)
	}
	return permio.Identity(src.Count), nil
}
