// Package verify compares a directory tree against a manifest and
// classifies every file as valid, mismatched, missing, or extra.
package verify

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/jamesainslie/treesum/pkg/treesum/hasher"
	"github.com/jamesainslie/treesum/pkg/treesum/logging"
	"github.com/jamesainslie/treesum/pkg/treesum/manifest"
	"github.com/jamesainslie/treesum/pkg/treesum/walker"
)

var logger = logging.Get("verify")

// Status classifies a single manifest entry during verification.
type Status int

// Entry statuses.
const (
	StatusValid Status = iota
	StatusMismatch
	StatusMissing
)

// String returns the status label used in report output.
func (s Status) String() string {
	switch s {
	case StatusValid:
		return "valid"
	case StatusMismatch:
		return "mismatch"
	case StatusMissing:
		return "missing"
	default:
		return "unknown"
	}
}

// Options configures a verification run.
type Options struct {
	// Root is the directory to verify.
	Root string

	// Manifest holds the expected path/digest pairs. It is never
	// mutated by verification.
	Manifest *manifest.Manifest

	// Algorithm selects the digest algorithm. It must match the one
	// the manifest was built with or every file reports as mismatched.
	Algorithm hasher.Algorithm

	// Workers bounds concurrent hashing. Values below 1 mean one
	// worker per CPU.
	Workers int

	// Exclude contains glob patterns for paths to skip when looking
	// for extra files.
	Exclude []string

	// OnResult, if set, is called once per manifest entry in manifest
	// order as its status is decided.
	OnResult func(path string, status Status)
}

// Report holds the classified outcome of a verification run. Each path
// slice is sorted and the three categories are mutually disjoint.
// Manifest entries in none of them are valid.
type Report struct {
	// Mismatched lists paths present on disk whose digest differs
	// from the manifest.
	Mismatched []string

	// Missing lists manifest paths with no regular file on disk.
	Missing []string

	// Extra lists regular files on disk that the manifest does not
	// mention.
	Extra []string

	// Checked is the number of manifest entries examined.
	Checked int

	// Elapsed is the wall-clock verification duration.
	Elapsed time.Duration
}

// Clean reports whether every category is empty.
func (r *Report) Clean() bool {
	return len(r.Mismatched) == 0 && len(r.Missing) == 0 && len(r.Extra) == 0
}

// Run verifies opts.Root against opts.Manifest. Files still present but
// unreadable abort the run with the underlying I/O error; no partial
// report is returned. Mismatched, missing, and extra files are report
// content, not errors.
func Run(ctx context.Context, opts Options) (*Report, error) {
	start := time.Now()

	// Phase 1: split manifest entries into missing and present. A path
	// that no longer names a regular file (deleted, or replaced by a
	// directory or symlink) counts as missing. Any other stat failure,
	// such as an unreadable parent directory, is an I/O error and
	// aborts the run.
	entries := opts.Manifest.Entries()
	var (
		missing []string
		present []string
	)
	presentSet := make(map[string]bool, len(entries))
	for _, e := range entries {
		info, err := os.Lstat(filepath.Join(opts.Root, filepath.FromSlash(e.Path)))
		switch {
		case err == nil && info.Mode().IsRegular():
			present = append(present, e.Path)
			presentSet[e.Path] = true
		case err == nil || errors.Is(err, fs.ErrNotExist):
			missing = append(missing, e.Path)
		default:
			return nil, fmt.Errorf("verify %s: %w", e.Path, err)
		}
	}

	// Phase 2: hash the present files in parallel, then compare in
	// manifest order so per-entry reporting stays deterministic.
	h := hasher.New(opts.Algorithm)
	digests, _, err := h.SumTree(ctx, opts.Root, present, opts.Workers)
	if err != nil {
		return nil, err
	}
	current := make(map[string]string, len(present))
	for i, p := range present {
		current[p] = digests[i]
	}

	var mismatched []string
	for _, e := range entries {
		status := StatusMissing
		if presentSet[e.Path] {
			if current[e.Path] == e.Digest {
				status = StatusValid
			} else {
				status = StatusMismatch
				mismatched = append(mismatched, e.Path)
			}
		}
		if opts.OnResult != nil {
			opts.OnResult(e.Path, status)
		}
	}

	// Phase 3: an independent walk finds files the manifest does not
	// know about.
	w := walker.New(walker.Options{Root: opts.Root, Exclude: opts.Exclude})
	onDisk, err := w.Collect(ctx)
	if err != nil {
		return nil, err
	}
	var extra []string
	for _, p := range onDisk {
		if !opts.Manifest.Has(p) {
			extra = append(extra, p)
		}
	}

	sort.Strings(mismatched)
	sort.Strings(missing)
	sort.Strings(extra)

	report := &Report{
		Mismatched: mismatched,
		Missing:    missing,
		Extra:      extra,
		Checked:    len(entries),
		Elapsed:    time.Since(start),
	}
	logger.Debug("verification complete",
		"checked", report.Checked,
		"mismatched", len(report.Mismatched),
		"missing", len(report.Missing),
		"extra", len(report.Extra))
	return report, nil
}
