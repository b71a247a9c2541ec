package io

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"

	"github.com/matzehuels/permgen/pkg/errors"
)

// ReadElements decodes whitespace-separated integers from r.
//
// An empty or whitespace-only input yields an empty, non-nil slice. A token
// that is not a decimal integer, or does not fit in an int, is an
// INVALID_INPUT error. ReadElements does not close r.
func ReadElements(r io.Reader) ([]int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	elems := []int{}
	for pos := 1; sc.Scan(); pos++ {
		tok := sc.Text()
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "element %d: %q is not an integer", pos, tok)
		}
		elems = append(elems, v)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read elements")
	}
	return elems, nil
}

// ImportElements reads the elements stored in the file at path.
//
// A missing file is a FILE_NOT_FOUND error; any other failure to open it
// is INVALID_PATH. Decoding errors are those of [ReadElements], with the
// path added for context.
func ImportElements(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "can't read input file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "can't read input file %s", path)
	}
	defer f.Close()

	elems, err := ReadElements(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return elems, nil
}

// Identity returns the elements 1, 2, ..., n. For n <= 0 it returns an
// empty slice.
func Identity(n int) []int {
	if n <= 0 {
		return []int{}
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// Sorted returns a sorted copy of elems.
func Sorted(elems []int) []int {
	out := slices.Clone(elems)
	slices.Sort(out)
	return out
}
