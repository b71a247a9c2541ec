package perm

import (
	"strings"

	"github.com/matzehuels/permgen/pkg/errors"
)

// Algorithm selects one of the four enumeration engines.
type Algorithm int

const (
	// Lexicographic is Knuth's Algorithm L. It accepts multisets and visits
	// each distinct permutation once, in increasing lexicographic order.
	Lexicographic Algorithm = iota
	// PlainChanges is Algorithm P (Johnson-Trotter order): consecutive
	// permutations differ by one adjacent transposition.
	PlainChanges
	// CyclicShift is Algorithm C: every step left-rotates a prefix.
	CyclicShift
	// Ehrlich is Algorithm E: consecutive permutations differ by one
	// transposition that always involves the first position.
	Ehrlich
)

// Algorithms lists every engine in declaration order.
var Algorithms = []Algorithm{Lexicographic, PlainChanges, CyclicShift, Ehrlich}

var algorithmNames = map[Algorithm]string{
	Lexicographic: "lexicographic",
	PlainChanges:  "plain",
	CyclicShift:   "cyclic",
	Ehrlich:       "ehrlich",
}

// String returns the long name used by --algorithm and in logs.
func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return "unknown"
}

// Letter returns the single-letter flag of the engine ("l", "p", "c", "e").
func (a Algorithm) Letter() string {
	if !a.Valid() {
		return "?"
	}
	return a.String()[:1]
}

// Valid reports whether a names one of the four engines.
func (a Algorithm) Valid() bool {
	_, ok := algorithmNames[a]
	return ok
}

// AllowsDuplicates reports whether the engine is defined on multisets.
// Only Lexicographic is; the others require distinct elements.
func (a Algorithm) AllowsDuplicates() bool {
	return a == Lexicographic
}

// ParseAlgorithm accepts a long name ("plain"), a single letter ("p"), or
// Knuth's upper-case tag ("P"). A few common aliases are also recognised.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "l", "lex", "lexicographic":
		return Lexicographic, nil
	case "p", "plain", "plain-changes", "johnson-trotter":
		return PlainChanges, nil
	case "c", "cyclic", "cyclic-shift", "cyclic-shifts":
		return CyclicShift, nil
	case "e", "ehrlich", "ehrlich-swaps":
		return Ehrlich, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidAlgorithm,
		"unknown algorithm %q (want lexicographic, plain, cyclic or ehrlich)", s)
}
