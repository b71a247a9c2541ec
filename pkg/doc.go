// Package pkg provides the core libraries for permgen, a generator for
// every arrangement of a list of integers.
//
// # Overview
//
// permgen implements four classic permutation algorithms from Knuth's
// The Art of Computer Programming, Volume 4A, Section 7.2.1.2. Each one
// visits every distinct arrangement exactly once, in its own order:
//
//   - Algorithm L: lexicographic order, multisets allowed
//   - Algorithm P: plain changes, one adjacent swap per step
//   - Algorithm C: cyclic shifts, prefix rotations
//   - Algorithm E: Ehrlich swaps, one swap with the first element per step
//
// # Architecture
//
// The typical data flow through permgen:
//
//	Input file or -n count
//	         ↓
//	    [io] package (parse and validate elements)
//	         ↓
//	    [perm] package (generator + visitor)
//	         ↓
//	    [sink] package (text or JSON Lines)
//	         ↓
//	    stdout / output file
//
// [pipeline] ties the stages together, with cancellation, limits and
// observability hooks, and is what the CLI calls.
//
// # Quick Start
//
// Print the plain-changes sequence of three elements:
//
//	import (
//	    "os"
//	    "github.com/matzehuels/permgen/pkg/perm"
//	    "github.com/matzehuels/permgen/pkg/sink"
//	)
//
//	w := sink.NewText(os.Stdout)
//	n, _ := perm.Enumerate(perm.PlainChanges, []int{1, 2, 3}, w.Visit)
//	_ = w.Flush()
//
// # Main Packages
//
// [perm] - The four engines behind a pull [perm.Generator], a push
// [perm.Enumerate] API over a [perm.Visitor], range-over-func iteration,
// precondition checks, exact counts and transition graphs (DOT and SVG).
//
// [sink] - Visitors that format, count, collect or limit permutations.
//
// [io] - Element list parsing from files and readers.
//
// [pipeline] - Load → Enumerate → Write, shared by every CLI command.
//
// [config] - Optional TOML defaults for the CLI.
//
// [cache] - Content-addressed store for rendered SVG graphs.
//
// [errors] - Structured errors with machine-readable codes.
//
// [observability] - Hooks for enumeration and input events.
//
// [buildinfo] - Version information injected at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/perm/...     # Specific package
//	go test -run Example       # Examples only
//
// [perm]: https://pkg.go.dev/github.com/matzehuels/permgen/pkg/perm
// [sink]: https://pkg.go.dev/github.com/matzehuels/permgen/pkg/sink
// [io]: https://pkg.go.dev/github.com/matzehuels/permgen/pkg/io
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/permgen/pkg/pipeline
// [config]: https://pkg.go.dev/github.com/matzehuels/permgen/pkg/config
// [cache]: https://pkg.go.dev/github.com/matzehuels/permgen/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/permgen/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/permgen/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/permgen/pkg/buildinfo
package pkg
