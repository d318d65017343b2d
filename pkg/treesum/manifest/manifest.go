// Package manifest defines the directory manifest data model and its
// line-oriented text codec. A manifest maps relative file paths to
// content digests and is the only artifact treesum persists.
package manifest

// Entry is a single manifest record.
type Entry struct {
	// Path is the file's location relative to the scanned root,
	// slash-separated, without a leading "./".
	Path string

	// Digest is the lowercase hex digest of the file's content.
	Digest string
}

// Manifest is an ordered set of entries indexed by path. Insertion
// order is preserved for serialization parity; lookups are O(1).
type Manifest struct {
	entries []Entry
	index   map[string]int
}

// New returns an empty Manifest.
func New() *Manifest {
	return &Manifest{index: make(map[string]int)}
}

// Add records a path/digest pair. If the path is already present the
// digest is replaced in place (last write wins) and order is unchanged.
func (m *Manifest) Add(path, digest string) {
	if i, ok := m.index[path]; ok {
		m.entries[i].Digest = digest
		return
	}
	m.index[path] = len(m.entries)
	m.entries = append(m.entries, Entry{Path: path, Digest: digest})
}

// Digest returns the recorded digest for path, if any.
func (m *Manifest) Digest(path string) (string, bool) {
	i, ok := m.index[path]
	if !ok {
		return "", false
	}
	return m.entries[i].Digest, true
}

// Has reports whether path is a key of the manifest.
func (m *Manifest) Has(path string) bool {
	_, ok := m.index[path]
	return ok
}

// Len returns the number of entries.
func (m *Manifest) Len() int {
	return len(m.entries)
}

// Entries returns the entries in insertion order. The returned slice is
// a copy and safe to modify.
func (m *Manifest) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}
