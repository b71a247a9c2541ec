package perm

import (
	"cmp"
	"fmt"

	"github.com/matzehuels/permgen/pkg/errors"
)

// Validate checks elems against the precondition of alg:
//
//   - Lexicographic requires a non-decreasing sequence. Starting from any
//     other order would begin mid-sequence and skip earlier permutations.
//   - PlainChanges, CyclicShift and Ehrlich require distinct elements. On
//     duplicates they would visit repeated permutations.
//
// The returned error is an *errors.PreconditionError with code
// UNSORTED_INPUT or DUPLICATE_ELEMENT.
func Validate[T cmp.Ordered](alg Algorithm, elems []T) error {
	if !alg.Valid() {
		return errors.New(errors.ErrCodeInvalidAlgorithm, "unknown algorithm %d", int(alg))
	}
	if alg == Lexicographic {
		for i := 1; i < len(elems); i++ {
			if cmp.Less(elems[i], elems[i-1]) {
				return &errors.PreconditionError{
					Code:      errors.ErrCodeUnsortedInput,
					Algorithm: alg.String(),
					Index:     i,
					Other:     i - 1,
					Message: fmt.Sprintf("elements must be in non-decreasing order: position %d (%v) is less than position %d (%v)",
						i, elems[i], i-1, elems[i-1]),
				}
			}
		}
		return nil
	}

	seen := make(map[T]int, len(elems))
	for i, v := range elems {
		if j, ok := seen[v]; ok {
			return &errors.PreconditionError{
				Code:      errors.ErrCodeDuplicateElement,
				Algorithm: alg.String(),
				Index:     i,
				Other:     j,
				Message: fmt.Sprintf("elements must be distinct: %v appears at positions %d and %d",
					v, j, i),
			}
		}
		seen[v] = i
	}
	return nil
}
