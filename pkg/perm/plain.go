package perm

import "cmp"

// plainChanges implements Algorithm P. c is the inversion table, a
// mixed-radix counter with 0 <= c[j] < j, and o holds the direction in
// which each digit is currently moving. All three arrays are 1-based.
type plainChanges[T cmp.Ordered] struct {
	a    []T
	c    []int
	o    []int
	n    int
	done bool
}

// NewPlainChanges returns an Algorithm P generator. elems must be
// distinct. Each permutation after the first differs from its predecessor
// by a single swap of two adjacent positions.
func NewPlainChanges[T cmp.Ordered](elems []T) (Generator[T], error) {
	if err := Validate(PlainChanges, elems); err != nil {
		return nil, err
	}
	n := len(elems)
	g := &plainChanges[T]{
		a: oneBased(elems),
		c: make([]int, n+1),
		o: make([]int, n+1),
		n: n,
	}
	for j := range g.o {
		g.o[j] = 1
	}
	return g, nil
}

func (g *plainChanges[T]) Algorithm() Algorithm { return PlainChanges }
func (g *plainChanges[T]) Perm() []T            { return g.a[1:] }
func (g *plainChanges[T]) Len() int             { return g.n }

func (g *plainChanges[T]) Next() bool {
	if g.done {
		return false
	}
	if g.n < 2 {
		g.done = true
		return false
	}
	a, c, o := g.a, g.c, g.o

	// s counts the indices k > j whose digit is pinned at its upper end;
	// each one shifts the block that digit j moves within by one place.
	j, s := g.n, 0
	for {
		q := c[j] + o[j]
		switch {
		case q < 0:
			// Digit j hit its lower end: reverse it and carry left.
		case q == j:
			// Digit j hit its upper end. c[1] is always 0 and o[1] always
			// +1, so reaching j == 1 means the counter has wrapped.
			if j == 1 {
				g.done = true
				return false
			}
			s++
		default:
			x, y := j-c[j]+s, j-q+s
			a[x], a[y] = a[y], a[x]
			c[j] = q
			return true
		}
		o[j] = -o[j]
		j--
	}
}
