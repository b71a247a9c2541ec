package perm

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"
)

// MaxGraphElements bounds the size of transition graphs: 6! = 720 nodes is
// about as much as Graphviz lays out legibly.
const MaxGraphElements = 6

// DOTOptions configures [ToDOT].
type DOTOptions struct {
	// Title is rendered as the graph label. Empty means no label.
	Title string
	// Cycle adds an edge from the last permutation back to the first, which
	// closes the Gray cycle for plain changes.
	Cycle bool
}

// ToDOT returns a Graphviz DOT representation of a sequence of visited
// permutations. Each permutation becomes a node, in visit order, and each
// pair of consecutive visits is joined by an edge labelled with the 1-based
// positions that changed: "2↔3" for a transposition, "1..4" for a run of
// positions such as a prefix rotation.
//
// The perms slice is not modified.
func ToDOT[T comparable](perms [][]T, opts DOTOptions) string {
	var buf bytes.Buffer
	buf.WriteString("digraph Permutations {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	if opts.Title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n  labelloc=t;\n", opts.Title)
	}
	buf.WriteString("  node [fontname=\"SF Mono, Menlo, monospace\", fontsize=14, shape=box, style=\"filled,rounded\", fillcolor=white];\n")
	buf.WriteString("  edge [fontname=\"SF Mono, Menlo, monospace\", fontsize=10];\n\n")

	for i, p := range perms {
		fmt.Fprintf(&buf, "  n%d [label=%q];\n", i, joinElems(p))
	}
	if len(perms) > 1 {
		buf.WriteString("\n")
	}
	for i := 1; i < len(perms); i++ {
		writeDOTEdge(&buf, i-1, i, perms[i-1], perms[i])
	}
	if opts.Cycle && len(perms) > 2 {
		last := len(perms) - 1
		writeDOTEdge(&buf, last, 0, perms[last], perms[0])
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeDOTEdge[T comparable](buf *bytes.Buffer, from, to int, prev, next []T) {
	fmt.Fprintf(buf, "  n%d -> n%d [label=%q];\n", from, to, changeLabel(prev, next))
}

// changeLabel describes which 1-based positions differ between prev and
// next.
func changeLabel[T comparable](prev, next []T) string {
	changed := Diff(prev, next)
	switch len(changed) {
	case 0:
		return ""
	case 2:
		return fmt.Sprintf("%d↔%d", changed[0]+1, changed[1]+1)
	}
	return fmt.Sprintf("%d..%d", changed[0]+1, changed[len(changed)-1]+1)
}

func joinElems[T any](p []T) string {
	parts := make([]string, len(p))
	for i, v := range p {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, " ")
}

// RenderSVG renders a DOT document (typically from [ToDOT]) as an SVG image.
//
// RenderSVG uses the Graphviz library (github.com/goccy/go-graphviz). Errors
// are returned if Graphviz cannot initialize, the DOT is malformed, or
// rendering fails. All errors are wrapped with context using fmt.Errorf
// with %w.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
