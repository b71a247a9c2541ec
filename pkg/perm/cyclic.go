package perm

import "cmp"

// cyclicShift implements Algorithm C. x is the initial order and marks, for
// each prefix length k, when rotating a[1..k] has come full circle.
type cyclicShift[T cmp.Ordered] struct {
	a    []T
	x    []T
	n    int
	done bool
}

// NewCyclicShift returns an Algorithm C generator. elems must be distinct.
// Every transition left-rotates a[1..n]; when that returns position n to
// its original element, the next shorter prefix is rotated as well, and so
// on down to length 2.
func NewCyclicShift[T cmp.Ordered](elems []T) (Generator[T], error) {
	if err := Validate(CyclicShift, elems); err != nil {
		return nil, err
	}
	return &cyclicShift[T]{
		a: oneBased(elems),
		x: oneBased(elems),
		n: len(elems),
	}, nil
}

func (g *cyclicShift[T]) Algorithm() Algorithm { return CyclicShift }
func (g *cyclicShift[T]) Perm() []T            { return g.a[1:] }
func (g *cyclicShift[T]) Len() int             { return g.n }

func (g *cyclicShift[T]) Next() bool {
	if g.done {
		return false
	}
	a, x := g.a, g.x
	for k := g.n; k > 1; k-- {
		rotateLeft(a[1 : k+1])
		if a[k] != x[k] {
			return true
		}
	}
	g.done = true
	return false
}

// rotateLeft moves s[0] to the end and shifts the rest down by one.
func rotateLeft[T any](s []T) {
	if len(s) < 2 {
		return
	}
	first := s[0]
	copy(s, s[1:])
	s[len(s)-1] = first
}
