// Package perm enumerates every distinct permutation of a finite sequence
// using the four classic generators of Knuth, "The Art of Computer
// Programming", volume 4A, section 7.2.1.2.
//
// # Overview
//
// Each engine is a small state machine over a private working array. One
// call to [Generator.Next] performs exactly one transition, so every engine
// does O(1) amortized work per permutation:
//
//   - [Lexicographic] (Algorithm L): increasing lexicographic order. The only
//     engine defined on multisets; repeated values are skipped naturally, so
//     {1,2,2,3} yields 12 arrangements rather than 24.
//   - [PlainChanges] (Algorithm P): each step swaps two adjacent positions.
//   - [CyclicShift] (Algorithm C): each step left-rotates a prefix.
//   - [Ehrlich] (Algorithm E): each step swaps position 0 with another
//     position.
//
// # Index Convention
//
// Every engine takes the plain element slice, with no sentinel slot, and
// every view handed to a [Visitor] is the 0-based, n-length permutation.
// Internally L, P and C keep Knuth's 1-based arrays and E keeps its 0-based
// one, so each transition rule reads exactly like the book.
//
// # Preconditions
//
// [Validate] rejects input the engine cannot enumerate correctly:
// Lexicographic needs non-decreasing input, the others need distinct
// elements. Constructors call it, so a bad input is an error rather than a
// silently wrong enumeration.
//
// # Basic Usage
//
// Push style, with a visitor that may stop early:
//
//	n, err := perm.Enumerate(perm.PlainChanges, []int{1, 2, 3}, func(p []int) bool {
//	    fmt.Println(p)
//	    return true
//	})
//
// Pull style, one transition at a time:
//
//	g, _ := perm.New(perm.Ehrlich, []string{"a", "b", "c"})
//	for p := range perm.All(g) {
//	    fmt.Println(p)
//	}
//
// # Counting
//
// [Count] returns the number of visits without enumerating: n! for P, C and
// E, the multinomial coefficient for L. Results that do not fit in an int
// return an OVERFLOW error; enumeration itself is unaffected.
//
// # Concurrency
//
// A generator owns its arrays exclusively and is not safe for concurrent
// use. Independent generators may run in parallel.
package perm
