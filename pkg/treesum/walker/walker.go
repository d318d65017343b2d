// Package walker enumerates the regular files under a directory root.
// It wraps fastwalk for parallel traversal and yields slash-separated
// paths relative to the root, without a leading "./".
package walker

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/charlievieth/fastwalk"
)

// ErrNotDirectory is returned when the walk root exists but is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// Options configures a Walker.
type Options struct {
	// Root is the directory to walk.
	Root string

	// Exclude contains glob patterns matched against each relative path
	// and its base name. Matching files and directory subtrees are skipped.
	Exclude []string
}

// Walker walks a directory tree and collects regular files. Directories,
// symlinks, and special files (devices, sockets, FIFOs) are never yielded.
// Symlinks are not followed.
type Walker struct {
	opts Options
}

// New returns a Walker for the given options.
func New(opts Options) *Walker {
	return &Walker{opts: opts}
}

// Collect walks the root and returns the relative paths of all regular
// files, sorted lexically for reproducible output. Any traversal error
// aborts the whole walk; partial results are never returned.
func (w *Walker) Collect(ctx context.Context) ([]string, error) {
	root, err := w.validateRoot()
	if err != nil {
		return nil, err
	}

	var (
		mu    sync.Mutex
		paths []string
	)

	conf := fastwalk.Config{
		Follow: false, // symlinks to directories are not descended
	}

	walkErr := fastwalk.Walk(&conf, root, func(path string, d fs.DirEntry, err error) error {
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		// Unreadable subdirectory or stat failure: surface it and stop.
		if err != nil {
			return fmt.Errorf("walk %s: %w", path, err)
		}

		rel, rerr := filepath.Rel(root, path)
		if rerr != nil {
			return rerr
		}
		rel = filepath.ToSlash(rel)

		if rel != "." && w.excluded(rel) {
			if d.IsDir() {
				return fastwalk.SkipDir
			}
			return nil
		}

		if d.Type().IsRegular() {
			mu.Lock()
			paths = append(paths, rel)
			mu.Unlock()
		}
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	sort.Strings(paths)
	return paths, nil
}

// validateRoot resolves the root to an absolute path and verifies that
// it exists and is a directory.
func (w *Walker) validateRoot() (string, error) {
	root, err := filepath.Abs(w.opts.Root)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(root)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s: %w", root, ErrNotDirectory)
	}
	return root, nil
}

// excluded reports whether the relative path matches any exclude pattern.
func (w *Walker) excluded(rel string) bool {
	if len(w.opts.Exclude) == 0 {
		return false
	}
	base := rel
	if i := strings.LastIndexByte(rel, '/'); i >= 0 {
		base = rel[i+1:]
	}
	for _, pattern := range w.opts.Exclude {
		if ok, _ := filepath.Match(pattern, rel); ok {
			return true
		}
		if ok, _ := filepath.Match(pattern, base); ok {
			return true
		}
	}
	return false
}
