// Package io reads the multisets that permgen enumerates.
//
// # Input Format
//
// An input file holds the elements as whitespace-separated signed decimal
// integers, read in file order. There is no header and no explicit count:
// the number of elements is the number of tokens. Line breaks are just
// whitespace.
//
//	1 2 2 3
//
// Use [ImportElements] to read from a file path or [ReadElements] to read
// from any io.Reader. Errors name the offending token and its 1-based
// position.
//
// # Synthesized Input
//
// [Identity] builds the elements 1..n used when no input file is given.
// The engines in package perm take the elements without a sentinel slot,
// so the element 0 of the classic {0, 1, ..., n} array is not included.
package io
