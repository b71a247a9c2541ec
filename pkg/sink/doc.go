// Package sink provides visitors that consume the permutations produced by
// package perm.
//
// A sink exposes its visitor through a Visit method with the
// [perm.Visitor] signature, so it can be passed directly to
// [perm.Enumerate] or [perm.Walk]:
//
//	out := sink.NewText(os.Stdout)
//	defer out.Flush()
//	n, err := perm.Enumerate(perm.Lexicographic, elems, out.Visit)
//
// Sinks never modify the view they receive. Writer-backed sinks stop the
// enumeration on the first write error and report it from Err and Flush.
package sink
