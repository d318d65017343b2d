// Package output renders create and verify results in multiple formats.
// Formatters register themselves by name and are selected at runtime
// via the --format flag.
package output

import (
	"bytes"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jamesainslie/treesum/pkg/treesum/verify"
)

// Result carries everything a formatter may render. Create mode leaves
// Report nil; verify mode fills it.
type Result struct {
	// Root is the directory that was snapshotted or verified.
	Root string `json:"root" yaml:"root"`

	// ManifestPath is the manifest written (create) or loaded (verify).
	ManifestPath string `json:"manifest" yaml:"manifest"`

	// Algorithm is the digest algorithm name in effect.
	Algorithm string `json:"algorithm" yaml:"algorithm"`

	// Files is the number of files hashed (create mode).
	Files int `json:"files,omitempty" yaml:"files,omitempty"`

	// Bytes is the total content size hashed (create mode).
	Bytes int64 `json:"bytes,omitempty" yaml:"bytes,omitempty"`

	// Elapsed is the operation duration.
	Elapsed time.Duration `json:"-" yaml:"-"`

	// Report is the verification outcome (verify mode).
	Report *verify.Report `json:"report,omitempty" yaml:"report,omitempty"`
}

// Formatter renders a Result into a buffer.
type Formatter interface {
	Format(w *bytes.Buffer, r *Result) error
}

// FormatterFactory creates a new Formatter instance.
type FormatterFactory func() Formatter

var (
	registryMu sync.RWMutex
	registry   = make(map[string]FormatterFactory)
)

// Register adds a formatter factory under a name, replacing any
// existing registration.
func Register(name string, factory FormatterFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = factory
}

// Get returns a new formatter instance by name.
func Get(name string) (Formatter, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	factory, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown formatter: %s", name)
	}
	return factory(), nil
}

// Available returns the sorted names of all registered formatters.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
