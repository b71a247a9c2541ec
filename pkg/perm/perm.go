package perm

import (
	"cmp"
	"iter"

	"github.com/matzehuels/permgen/pkg/errors"
)

// Visitor receives each permutation as a read-only view of the engine's
// working array. The view is reused between calls and must be copied if it
// is retained. Returning false stops the enumeration before the next
// transition.
type Visitor[T any] func(p []T) bool

// Generator is a single enumeration run in progress. A new generator is
// positioned on the first permutation, which is the input order.
//
// Generators are not safe for concurrent use.
type Generator[T any] interface {
	// Algorithm reports which engine drives the run.
	Algorithm() Algorithm
	// Perm returns the current permutation. The slice aliases the working
	// array: it changes on the next call to Next and must not be modified.
	Perm() []T
	// Next applies one transition. It returns false, leaving Perm on the
	// last permutation, once every permutation has been produced.
	Next() bool
	// Len returns the number of elements being permuted.
	Len() int
}

// New validates elems against the preconditions of alg and returns a
// generator positioned on the first permutation. The generator works on a
// private copy of elems.
func New[T cmp.Ordered](alg Algorithm, elems []T) (Generator[T], error) {
	switch alg {
	case Lexicographic:
		return NewLexicographic(elems)
	case PlainChanges:
		return NewPlainChanges(elems)
	case CyclicShift:
		return NewCyclicShift(elems)
	case Ehrlich:
		return NewEhrlich(elems)
	}
	return nil, errors.New(errors.ErrCodeInvalidAlgorithm, "unknown algorithm %d", int(alg))
}

// Enumerate runs alg over elems to completion (or until visit returns
// false) and returns the number of permutations visited.
//
// A nil visitor just counts.
func Enumerate[T cmp.Ordered](alg Algorithm, elems []T, visit Visitor[T]) (int, error) {
	g, err := New(alg, elems)
	if err != nil {
		return 0, err
	}
	return Walk(g, visit), nil
}

// Walk visits the current permutation of g and every one after it. It
// returns the number of visits, including the one on which visit returned
// false.
func Walk[T any](g Generator[T], visit Visitor[T]) int {
	count := 0
	for p := range All(g) {
		count++
		if visit != nil && !visit(p) {
			break
		}
	}
	return count
}

// All returns an iterator over the remaining permutations of g. Yielded
// slices alias the working array, as with [Generator.Perm].
func All[T any](g Generator[T]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for {
			if !yield(g.Perm()) || !g.Next() {
				return
			}
		}
	}
}

// Seq returns a slice containing the sequence [0, 1, 2, ..., n-1].
//
// For n <= 0, Seq returns an empty slice.
func Seq(n int) []int {
	if n <= 0 {
		return []int{}
	}
	result := make([]int, n)
	for i := range result {
		result[i] = i
	}
	return result
}

// Diff returns the 0-based positions at which prev and next differ. Slices
// of unequal length are compared over their common prefix.
func Diff[T comparable](prev, next []T) []int {
	var out []int
	for i := range min(len(prev), len(next)) {
		if prev[i] != next[i] {
			out = append(out, i)
		}
	}
	return out
}

// oneBased copies elems into a new slice of length len(elems)+1 whose slot
// 0 is left at the zero value. L, P and C index their working array from 1.
func oneBased[T any](elems []T) []T {
	a := make([]T, len(elems)+1)
	copy(a[1:], elems)
	return a
}
