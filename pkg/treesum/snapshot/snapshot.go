// Package snapshot builds a fresh manifest for a directory tree. It
// orchestrates the walker and hasher; persisting the result is the
// caller's responsibility.
package snapshot

import (
	"context"
	"path/filepath"
	"time"

	"github.com/jamesainslie/treesum/pkg/treesum/hasher"
	"github.com/jamesainslie/treesum/pkg/treesum/logging"
	"github.com/jamesainslie/treesum/pkg/treesum/manifest"
	"github.com/jamesainslie/treesum/pkg/treesum/walker"
)

var logger = logging.Get("snapshot")

// Options configures a manifest build.
type Options struct {
	// Root is the directory to snapshot.
	Root string

	// Algorithm selects the digest algorithm. Empty means the default.
	Algorithm hasher.Algorithm

	// Workers bounds concurrent hashing. Values below 1 mean one
	// worker per CPU.
	Workers int

	// Exclude contains glob patterns for paths to skip.
	Exclude []string
}

// Stats summarizes a completed build.
type Stats struct {
	// Files is the number of regular files hashed.
	Files int

	// Bytes is the total content size hashed.
	Bytes int64

	// Elapsed is the wall-clock build duration.
	Elapsed time.Duration
}

// Build walks opts.Root, hashes every regular file, and returns the
// manifest with entries in walk order. Walk and hash failures propagate
// unchanged and abort the build: a single unreadable file means no
// manifest.
func Build(ctx context.Context, opts Options) (*manifest.Manifest, *Stats, error) {
	start := time.Now()

	w := walker.New(walker.Options{Root: opts.Root, Exclude: opts.Exclude})
	paths, err := w.Collect(ctx)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("walk complete", "root", opts.Root, "files", len(paths))

	h := hasher.New(opts.Algorithm)
	digests, bytes, err := h.SumTree(ctx, opts.Root, paths, opts.Workers)
	if err != nil {
		return nil, nil, err
	}

	m := manifest.New()
	for i, p := range paths {
		m.Add(p, digests[i])
	}

	stats := &Stats{Files: m.Len(), Bytes: bytes, Elapsed: time.Since(start)}
	logger.Debug("build complete", "files", stats.Files, "elapsed", stats.Elapsed)
	return m, stats, nil
}

// OutputName returns the conventional manifest file name for a root
// directory: the directory's base name plus the given extension.
func OutputName(root, ext string) string {
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}
	return filepath.Base(abs) + "." + ext
}
