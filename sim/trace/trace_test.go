package trace

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func drain(t *testing.T, r Reader) []Reference {
	t.Helper()
	refs, err := ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	return refs
}

func TestLineReader_SkipsBlanksAndComments(t *testing.T) {
	// GIVEN a trace with comments, blank lines, and page tokens
	input := "# header comment\n1\n\n2\n# trailing comment\n3\n2\n"
	lr := NewLineReader(strings.NewReader(input))

	// WHEN the trace is drained
	refs := drain(t, lr)

	// THEN only the page tokens appear, in order
	want := []PageID{"1", "2", "3", "2"}
	if len(refs) != len(want) {
		t.Fatalf("got %d references, want %d", len(refs), len(want))
	}
	for i, ref := range refs {
		if ref.Page != want[i] {
			t.Errorf("reference[%d] = %q, want %q", i, ref.Page, want[i])
		}
		if ref.Write {
			t.Errorf("reference[%d] unexpectedly marked as write", i)
		}
	}
}

func TestLineReader_TrimsSurroundingWhitespace(t *testing.T) {
	lr := NewLineReader(strings.NewReader("  42  \n\t7\n"))
	refs := drain(t, lr)
	if len(refs) != 2 || refs[0].Page != "42" || refs[1].Page != "7" {
		t.Fatalf("got %v, want pages 42 and 7", refs)
	}
}

func TestLineReader_NonNumericTokensAreValid(t *testing.T) {
	// Page identifiers are opaque tokens, not addresses.
	lr := NewLineReader(strings.NewReader("a\nblk-7\na\n"))
	refs := drain(t, lr)
	if len(refs) != 3 || refs[1].Page != "blk-7" {
		t.Fatalf("got %v, want 3 references with blk-7 second", refs)
	}
}

func TestLineReader_MalformedLineIsFatal(t *testing.T) {
	// GIVEN a trace with a multi-token line after one good reference
	lr := NewLineReader(strings.NewReader("1\nnot a page\n2\n"))

	// WHEN reading past the good reference
	if _, err := lr.Next(); err != nil {
		t.Fatalf("first Next: %v", err)
	}
	_, err := lr.Next()

	// THEN a ParseError identifies the offending line
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("got error %v, want *ParseError", err)
	}
	if perr.Line != 2 {
		t.Errorf("ParseError.Line = %d, want 2", perr.Line)
	}
	if perr.Content != "not a page" {
		t.Errorf("ParseError.Content = %q, want %q", perr.Content, "not a page")
	}
}

func TestLineReader_EmptyTrace(t *testing.T) {
	lr := NewLineReader(strings.NewReader("# only comments\n\n"))
	if _, err := lr.Next(); err != io.EOF {
		t.Fatalf("Next on empty trace: got %v, want io.EOF", err)
	}
}

func TestSliceReader_ReplaysInOrder(t *testing.T) {
	refs := []Reference{{Page: "1"}, {Page: "2"}, {Page: "1"}}
	sr := NewSliceReader(refs)

	got := drain(t, sr)
	if len(got) != 3 || got[0].Page != "1" || got[1].Page != "2" || got[2].Page != "1" {
		t.Fatalf("replayed %v, want %v", got, refs)
	}
	if _, err := sr.Next(); err != io.EOF {
		t.Fatalf("Next after exhaustion: got %v, want io.EOF", err)
	}
}

func TestReadAll_PropagatesParseError(t *testing.T) {
	_, err := ReadAll(NewLineReader(strings.NewReader("1\nbad line here\n")))
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("got error %v, want *ParseError", err)
	}
}
