package perm

import "cmp"

// lexicographic implements Algorithm L (TAOCP 7.2.1.2). The working array
// is 1-based; Knuth's sentinel a[0] is replaced by bounding the scan in
// the find-j phase at index 1, so any ordered element type works.
type lexicographic[T cmp.Ordered] struct {
	a    []T
	n    int
	done bool
}

// NewLexicographic returns an Algorithm L generator. elems must be sorted
// in non-decreasing order and may contain repeated values; each distinct
// arrangement is visited exactly once, in increasing lexicographic order,
// ending with the fully descending arrangement.
func NewLexicographic[T cmp.Ordered](elems []T) (Generator[T], error) {
	if err := Validate(Lexicographic, elems); err != nil {
		return nil, err
	}
	return &lexicographic[T]{a: oneBased(elems), n: len(elems)}, nil
}

func (g *lexicographic[T]) Algorithm() Algorithm { return Lexicographic }
func (g *lexicographic[T]) Perm() []T            { return g.a[1:] }
func (g *lexicographic[T]) Len() int             { return g.n }

func (g *lexicographic[T]) Next() bool {
	if g.done {
		return false
	}
	a, n := g.a, g.n

	// Find j: the largest index with a[j] < a[j+1]. The suffix after it is
	// non-increasing, so every permutation with prefix a[1..j] has been seen.
	j := n - 1
	for j > 0 && a[j] >= a[j+1] {
		j--
	}
	if j <= 0 {
		g.done = true
		return false
	}

	// Increase a[j]: swap with the rightmost larger element of the suffix.
	l := n
	for a[j] >= a[l] {
		l--
	}
	a[j], a[l] = a[l], a[j]

	// Reverse a[j+1..n] from non-increasing to non-decreasing.
	for k, l := j+1, n; k < l; k, l = k+1, l-1 {
		a[k], a[l] = a[l], a[k]
	}
	return true
}
