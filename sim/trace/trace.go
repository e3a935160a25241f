// Package trace provides trace ingestion and eviction-trace recording for the
// simulator. It stores pure data types plus the line readers that produce
// them; it has no dependencies on sim/.
package trace

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// PageID identifies a page in the reference stream. It is an opaque,
// comparable token: numeric in the course traces, but nothing in the engine
// assumes it parses as a number.
type PageID string

// Reference is a single trace event: one access to a page, optionally a
// write. Token-mode traces never set Write; address-mode traces derive it
// from the operation column.
type Reference struct {
	Page  PageID
	Write bool
}

// Reader yields trace references one at a time, in trace order.
// Next returns io.EOF after the final reference. A Reader is single-pass:
// restarting requires a fresh Reader over a fresh stream.
type Reader interface {
	Next() (Reference, error)
}

// ParseError reports a trace line that is neither blank, a comment, nor a
// parseable page reference. It is fatal for the run: skipping malformed data
// would silently corrupt the statistics.
type ParseError struct {
	Line    int    // 1-based line number in the input stream
	Content string // the offending line, trimmed
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("trace line %d: cannot parse page reference %q", e.Line, e.Content)
}

// LineReader reads token-mode traces: one page token per line, with blank
// lines and #-comment lines skipped uncounted.
type LineReader struct {
	scanner *bufio.Scanner
	line    int
}

// NewLineReader creates a LineReader over r.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{scanner: bufio.NewScanner(r)}
}

// Next returns the next page reference, io.EOF at end of stream, a
// *ParseError for a malformed line, or the underlying stream error.
func (lr *LineReader) Next() (Reference, error) {
	for lr.scanner.Scan() {
		lr.line++
		s := strings.TrimSpace(lr.scanner.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		if strings.ContainsAny(s, " \t") {
			return Reference{}, &ParseError{Line: lr.line, Content: s}
		}
		return Reference{Page: PageID(s)}, nil
	}
	if err := lr.scanner.Err(); err != nil {
		return Reference{}, fmt.Errorf("reading trace: %w", err)
	}
	return Reference{}, io.EOF
}

// ReadAll drains r and returns the full materialized trace. Only the Optimal
// policy needs this: it trades the single-pass streaming contract for
// O(trace length) storage to gain lookahead.
func ReadAll(r Reader) ([]Reference, error) {
	var refs []Reference
	for {
		ref, err := r.Next()
		if err == io.EOF {
			return refs, nil
		}
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
}

// SliceReader replays a materialized trace through the Reader interface,
// so the simulation driver is indifferent to whether the trace was buffered.
type SliceReader struct {
	refs []Reference
	next int
}

// NewSliceReader creates a SliceReader over refs.
func NewSliceReader(refs []Reference) *SliceReader {
	return &SliceReader{refs: refs}
}

// Next returns the next buffered reference, or io.EOF once exhausted.
func (sr *SliceReader) Next() (Reference, error) {
	if sr.next >= len(sr.refs) {
		return Reference{}, io.EOF
	}
	ref := sr.refs[sr.next]
	sr.next++
	return ref, nil
}
