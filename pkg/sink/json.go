package sink

import (
	"bufio"
	"encoding/json"
	"io"
)

// JSONLines writes one JSON document per permutation: a bare array by
// default, or {"n":1,"perm":[...]} with [WithIndex].
type JSONLines struct {
	w     *bufio.Writer
	enc   *json.Encoder
	index bool
	n     int
	err   error
}

// JSONOption configures a [JSONLines] sink.
type JSONOption func(*JSONLines)

// WithIndex wraps each permutation in an object carrying its 1-based
// visit number.
func WithIndex() JSONOption { return func(j *JSONLines) { j.index = true } }

type indexedPerm struct {
	N    int   `json:"n"`
	Perm []int `json:"perm"`
}

// NewJSONLines returns a JSON lines sink writing to w.
func NewJSONLines(w io.Writer, opts ...JSONOption) *JSONLines {
	bw := bufio.NewWriterSize(w, 64*1024)
	j := &JSONLines{w: bw, enc: json.NewEncoder(bw)}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Visit encodes p. It returns false once a write has failed.
func (j *JSONLines) Visit(p []int) bool {
	if j.err != nil {
		return false
	}
	j.n++
	var v any = p
	if j.index {
		v = indexedPerm{N: j.n, Perm: p}
	}
	if err := j.enc.Encode(v); err != nil {
		j.err = err
		return false
	}
	return true
}

// Flush writes any buffered output and returns the first error seen.
func (j *JSONLines) Flush() error {
	if j.err != nil {
		return j.err
	}
	j.err = j.w.Flush()
	return j.err
}

// Err returns the first write error, if any.
func (j *JSONLines) Err() error { return j.err }
