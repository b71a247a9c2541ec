package perm

import "cmp"

// ehrlich implements Algorithm E. Unlike the other engines it works on a
// 0-based array: a[0..n-1] are the elements, b[0..n-1] is a permutation of
// indices that decides which position is swapped with a[0], and c[1..n]
// is a mixed-radix counter with 0 <= c[k] <= k. c[n] stays 0 and stops the
// carry loop.
type ehrlich[T cmp.Ordered] struct {
	a    []T
	b    []int
	c    []int
	n    int
	done bool
}

// NewEhrlich returns an Algorithm E generator. elems must be distinct.
// Each permutation after the first differs from its predecessor by one
// swap between position 0 and some other position.
func NewEhrlich[T cmp.Ordered](elems []T) (Generator[T], error) {
	if err := Validate(Ehrlich, elems); err != nil {
		return nil, err
	}
	n := len(elems)
	a := make([]T, n)
	copy(a, elems)
	return &ehrlich[T]{
		a: a,
		b: Seq(n),
		c: make([]int, n+1),
		n: n,
	}, nil
}

func (g *ehrlich[T]) Algorithm() Algorithm { return Ehrlich }
func (g *ehrlich[T]) Perm() []T            { return g.a }
func (g *ehrlich[T]) Len() int             { return g.n }

func (g *ehrlich[T]) Next() bool {
	if g.done {
		return false
	}
	if g.n < 2 {
		g.done = true
		return false
	}
	a, b, c := g.a, g.b, g.c

	// Find k: carry through every digit that is at its maximum.
	k := 1
	for c[k] == k {
		c[k] = 0
		k++
	}
	if k == g.n {
		g.done = true
		return false
	}
	c[k]++

	// Swap a[0] with a[b[k]].
	a[0], a[b[k]] = a[b[k]], a[0]

	// Flip b[1..k-1].
	for j, k := 1, k-1; j < k; j, k = j+1, k-1 {
		b[j], b[k] = b[k], b[j]
	}
	return true
}
