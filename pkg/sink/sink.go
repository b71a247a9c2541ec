package sink

import (
	"slices"

	"github.com/matzehuels/permgen/pkg/perm"
)

// Writer is a sink backed by an io.Writer.
type Writer interface {
	Visit(p []int) bool
	Flush() error
	Err() error
}

var (
	_ Writer = (*Text)(nil)
	_ Writer = (*JSONLines)(nil)
)

// Counter counts visits.
type Counter struct {
	N int
}

// Visit increments the count.
func (c *Counter) Visit([]int) bool {
	c.N++
	return true
}

// Collector keeps a copy of every permutation it visits.
type Collector[T any] struct {
	Perms [][]T
}

// Visit appends a copy of p.
func (c *Collector[T]) Visit(p []T) bool {
	c.Perms = append(c.Perms, slices.Clone(p))
	return true
}

// Limit returns a visitor that forwards to next and stops the enumeration
// after n visits. An n <= 0 means no limit.
func Limit[T any](n int, next perm.Visitor[T]) perm.Visitor[T] {
	if n <= 0 {
		return next
	}
	seen := 0
	return func(p []T) bool {
		seen++
		if !next(p) {
			return false
		}
		return seen < n
	}
}
