package perm

import (
	"cmp"
	"math"
	"math/bits"
	"slices"

	"github.com/matzehuels/permgen/pkg/errors"
)

// Factorial returns n! (n factorial), the product 1 × 2 × ... × n.
// For n <= 1, Factorial returns 1.
//
// Factorials grow extremely fast: 21! already exceeds a 64-bit int. When
// the result does not fit in an int, Factorial returns an OVERFLOW error
// together with the number of factors (i-1)! that still fit, so callers
// can report a lower bound.
func Factorial(n int) (int, error) {
	result := 1
	for i := 2; i <= n; i++ {
		next, ok := mulInt(result, i)
		if !ok {
			return result, errors.New(errors.ErrCodeOverflow, "%d! overflows a %d-bit integer", n, bits.UintSize)
		}
		result = next
	}
	return result, nil
}

// Multinomial returns (k1+k2+...)! / (k1! k2! ...), the number of distinct
// arrangements of a multiset with the given multiplicities. It is computed
// as a product of binomial coefficients with 128-bit intermediates, so it
// overflows only when the result itself does not fit in an int.
func Multinomial(multiplicities ...int) (int, error) {
	result, total := 1, 0
	for _, m := range multiplicities {
		if m < 0 {
			return 0, errors.New(errors.ErrCodeInvalidInput, "negative multiplicity %d", m)
		}
		total += m
		c, ok := binomial(total, m)
		if !ok {
			return 0, errors.New(errors.ErrCodeOverflow, "multinomial coefficient overflows a %d-bit integer", bits.UintSize)
		}
		if result, ok = mulInt(result, c); !ok {
			return 0, errors.New(errors.ErrCodeOverflow, "multinomial coefficient overflows a %d-bit integer", bits.UintSize)
		}
	}
	return result, nil
}

// Count returns how many permutations alg visits for elems without
// enumerating them: the multinomial coefficient of the element
// multiplicities for Lexicographic, n! for the other engines. Count does
// not check preconditions; see [Validate].
func Count[T cmp.Ordered](alg Algorithm, elems []T) (int, error) {
	if !alg.Valid() {
		return 0, errors.New(errors.ErrCodeInvalidAlgorithm, "unknown algorithm %d", int(alg))
	}
	if alg.AllowsDuplicates() {
		return Multinomial(Multiplicities(elems)...)
	}
	return Factorial(len(elems))
}

// Multiplicities returns how often each distinct value occurs in elems, in
// increasing order of value.
func Multiplicities[T cmp.Ordered](elems []T) []int {
	sorted := slices.Clone(elems)
	slices.Sort(sorted)
	var out []int
	for i := 0; i < len(sorted); {
		j := i + 1
		for j < len(sorted) && sorted[j] == sorted[i] {
			j++
		}
		out = append(out, j-i)
		i = j
	}
	return out
}

// binomial returns C(n, k) using C(n-k+i, i) = C(n-k+i-1, i-1)·(n-k+i)/i,
// where every intermediate quotient is exact.
func binomial(n, k int) (int, bool) {
	k = min(k, n-k)
	c := uint64(1)
	for i := 1; i <= k; i++ {
		hi, lo := bits.Mul64(c, uint64(n-k+i))
		if hi >= uint64(i) {
			return 0, false
		}
		c, _ = bits.Div64(hi, lo, uint64(i))
	}
	if c > math.MaxInt {
		return 0, false
	}
	return int(c), true
}

func mulInt(a, b int) (int, bool) {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > math.MaxInt {
		return 0, false
	}
	return int(lo), true
}
