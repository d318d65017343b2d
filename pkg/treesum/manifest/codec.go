package manifest

import (
	"fmt"
	"regexp"
	"strings"
)

// digestPattern matches a 256-bit digest encoded as hex.
var digestPattern = regexp.MustCompile(`^[0-9a-fA-F]{64}$`)

// FormatError describes a malformed manifest line. Parsing is strict
// and all-or-nothing: the first bad line aborts the whole parse.
type FormatError struct {
	// Line is the 1-based line number of the offending line.
	Line int

	// Content is the offending line as read, without its newline.
	Content string

	// Reason describes what was wrong with the line.
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("manifest line %d: %s: %q", e.Line, e.Reason, e.Content)
}

// Parse decodes manifest text. Each non-blank line must be
// "path:digest"; the line is split on the first colon only, so paths
// may contain colons. Both fields are trimmed of leading and trailing
// ASCII spaces. Trailing carriage returns are stripped and blank lines
// are skipped. Digests are normalized to lowercase.
func Parse(data []byte) (*Manifest, error) {
	m := New()
	for n, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		path, digest, found := strings.Cut(line, ":")
		if !found {
			return nil, &FormatError{Line: n + 1, Content: line, Reason: "missing colon separator"}
		}

		path = strings.Trim(path, " ")
		digest = strings.Trim(digest, " ")
		switch {
		case path == "":
			return nil, &FormatError{Line: n + 1, Content: line, Reason: "empty path"}
		case digest == "":
			return nil, &FormatError{Line: n + 1, Content: line, Reason: "empty digest"}
		case !digestPattern.MatchString(digest):
			return nil, &FormatError{Line: n + 1, Content: line, Reason: "digest is not 64 hex characters"}
		}

		m.Add(path, strings.ToLower(digest))
	}
	return m, nil
}

// Serialize encodes the manifest in its entry order, one
// newline-terminated "path:digest" record per line. An empty manifest
// serializes to zero bytes.
func (m *Manifest) Serialize() []byte {
	var b strings.Builder
	for _, e := range m.entries {
		b.WriteString(e.Path)
		b.WriteByte(':')
		b.WriteString(e.Digest)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}
