package sink

import (
	"bufio"
	"io"
	"strconv"
)

// Text writes one permutation per line, elements separated by a single
// space and the line terminated by '\n'. Output is buffered; call Flush
// when the enumeration is done.
type Text struct {
	w   *bufio.Writer
	sep string
	buf []byte
	err error
}

// TextOption configures a [Text] sink.
type TextOption func(*Text)

// WithSeparator replaces the single space between elements.
func WithSeparator(sep string) TextOption { return func(t *Text) { t.sep = sep } }

// NewText returns a text sink writing to w.
func NewText(w io.Writer, opts ...TextOption) *Text {
	t := &Text{w: bufio.NewWriterSize(w, 64*1024), sep: " "}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Visit writes p. It returns false once a write has failed.
func (t *Text) Visit(p []int) bool {
	if t.err != nil {
		return false
	}
	t.buf = t.buf[:0]
	for i, v := range p {
		if i > 0 {
			t.buf = append(t.buf, t.sep...)
		}
		t.buf = strconv.AppendInt(t.buf, int64(v), 10)
	}
	t.buf = append(t.buf, '\n')
	if _, err := t.w.Write(t.buf); err != nil {
		t.err = err
		return false
	}
	return true
}

// Flush writes any buffered output and returns the first error seen.
func (t *Text) Flush() error {
	if t.err != nil {
		return t.err
	}
	t.err = t.w.Flush()
	return t.err
}

// Err returns the first write error, if any.
func (t *Text) Err() error { return t.err }
