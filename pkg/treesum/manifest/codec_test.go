package manifest

import (
	"errors"
	"strings"
	"testing"
)

const (
	digestA = "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"
	digestB = "486ea46224d1bb4fb680f34f7c9ad96a8f24ec88be73ea8e5a6c65260e9cb8a7"
)

func TestParse_Valid(t *testing.T) {
	t.Parallel()

	text := "a.txt:" + digestA + "\nsub/b.txt:" + digestB + "\n"
	m, err := Parse([]byte(text))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if m.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", m.Len())
	}
	if d, ok := m.Digest("a.txt"); !ok || d != digestA {
		t.Errorf("Digest(a.txt) = %q, %v", d, ok)
	}
	if d, ok := m.Digest("sub/b.txt"); !ok || d != digestB {
		t.Errorf("Digest(sub/b.txt) = %q, %v", d, ok)
	}
}

func TestParse_Rejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		reason string
	}{
		{"no colon", "foo.txt", "missing colon separator"},
		{"non-hex digest", "foo.txt:" + strings.Repeat("zz", 32), "digest is not 64 hex characters"},
		{"short digest", "foo.txt:abc", "digest is not 64 hex characters"},
		{"long digest", "foo.txt:" + digestA + "ff", "digest is not 64 hex characters"},
		{"empty path", ":" + digestA, "empty path"},
		{"spaces-only path", "   :" + digestA, "empty path"},
		{"empty digest", "foo.txt:", "empty digest"},
		{"spaces-only digest", "foo.txt:   ", "empty digest"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse([]byte(tt.input))
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want FormatError", tt.input)
			}
			var ferr *FormatError
			if !errors.As(err, &ferr) {
				t.Fatalf("Parse(%q) error = %v, want *FormatError", tt.input, err)
			}
			if ferr.Reason != tt.reason {
				t.Errorf("reason = %q, want %q", ferr.Reason, tt.reason)
			}
			if ferr.Line != 1 {
				t.Errorf("line = %d, want 1", ferr.Line)
			}
		})
	}
}

func TestParse_ReportsOffendingLine(t *testing.T) {
	t.Parallel()

	text := "a.txt:" + digestA + "\n\nbad line\n"
	_, err := Parse([]byte(text))
	var ferr *FormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("error = %v, want *FormatError", err)
	}
	if ferr.Line != 3 {
		t.Errorf("line = %d, want 3", ferr.Line)
	}
	if ferr.Content != "bad line" {
		t.Errorf("content = %q, want %q", ferr.Content, "bad line")
	}
}

func TestParse_AllOrNothing(t *testing.T) {
	t.Parallel()

	// A bad line anywhere means no manifest at all.
	text := "a.txt:" + digestA + "\nbroken\n"
	m, err := Parse([]byte(text))
	if err == nil {
		t.Fatal("Parse() succeeded, want error")
	}
	if m != nil {
		t.Fatal("Parse() returned a partial manifest alongside an error")
	}
}

func TestParse_FirstColonSplit(t *testing.T) {
	t.Parallel()

	// A path may itself contain colons; only the first splits.
	m, err := Parse([]byte("notes:2024:final.txt:" + digestA + "\n"))
	if err == nil {
		// "2024:final.txt:<digest>" is the digest field and is invalid,
		// so strict first-colon splitting must reject this line.
		t.Fatal("Parse() succeeded, want FormatError for non-hex digest")
	}

	// A colon-free path parses normally even when the digest has mixed case.
	m, err = Parse([]byte("a.txt:" + strings.ToUpper(digestA) + "\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if d, _ := m.Digest("a.txt"); d != digestA {
		t.Errorf("digest not normalized to lowercase: %q", d)
	}
}

func TestParse_ToleratesCRLFAndBlankLines(t *testing.T) {
	t.Parallel()

	text := "a.txt:" + digestA + "\r\n\r\n\nsub/b.txt:" + digestB + "\r\n"
	m, err := Parse([]byte(text))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if m.Len() != 2 {
		t.Errorf("Len() = %d, want 2", m.Len())
	}
}

func TestParse_TrimsFieldSpaces(t *testing.T) {
	t.Parallel()

	m, err := Parse([]byte("  a.txt : " + digestA + " \n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !m.Has("a.txt") {
		t.Errorf("path not trimmed: keys = %v", m.Entries())
	}
}

func TestParse_EmptyInput(t *testing.T) {
	t.Parallel()

	m, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) error = %v", err)
	}
	if m.Len() != 0 {
		t.Errorf("Len() = %d, want 0", m.Len())
	}
}

func TestSerialize_RoundTrip(t *testing.T) {
	t.Parallel()

	m := New()
	m.Add("a.txt", digestA)
	m.Add("sub/b.txt", digestB)

	got, err := Parse(m.Serialize())
	if err != nil {
		t.Fatalf("Parse(Serialize()) error = %v", err)
	}
	if got.Len() != m.Len() {
		t.Fatalf("round trip Len() = %d, want %d", got.Len(), m.Len())
	}
	for _, e := range m.Entries() {
		if d, ok := got.Digest(e.Path); !ok || d != e.Digest {
			t.Errorf("round trip lost %s: got %q, %v", e.Path, d, ok)
		}
	}
}

func TestSerialize_Empty(t *testing.T) {
	t.Parallel()

	if out := New().Serialize(); len(out) != 0 {
		t.Errorf("empty manifest serialized to %q, want zero bytes", out)
	}
}

func TestSerialize_PreservesOrder(t *testing.T) {
	t.Parallel()

	m := New()
	m.Add("z.txt", digestA)
	m.Add("a.txt", digestB)

	lines := strings.Split(strings.TrimSuffix(string(m.Serialize()), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.HasPrefix(lines[0], "z.txt:") || !strings.HasPrefix(lines[1], "a.txt:") {
		t.Errorf("insertion order not preserved: %v", lines)
	}
}

func TestAdd_LastWriteWins(t *testing.T) {
	t.Parallel()

	m := New()
	m.Add("a.txt", digestA)
	m.Add("a.txt", digestB)

	if m.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", m.Len())
	}
	if d, _ := m.Digest("a.txt"); d != digestB {
		t.Errorf("Digest = %q, want last-written %q", d, digestB)
	}
}
