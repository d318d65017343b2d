package hasher

import (
	"context"
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"
)

// SumTree hashes root-relative paths with a bounded worker pool and
// returns the digests in the same order as relPaths, along with the
// total number of bytes hashed. The pool is a pure throughput
// optimization: output is identical to hashing sequentially. The first
// failure cancels remaining work and is returned; no partial result
// accompanies an error.
func (h *Hasher) SumTree(ctx context.Context, root string, relPaths []string, workers int) ([]string, int64, error) {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > len(relPaths) {
		workers = len(relPaths)
	}
	digests := make([]string, len(relPaths))
	if len(relPaths) == 0 {
		return digests, 0, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
		bytes    atomic.Int64
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			cancel()
		})
	}

	jobs := make(chan int)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				sum, n, err := h.sum(filepath.Join(root, filepath.FromSlash(relPaths[idx])))
				if err != nil {
					fail(err)
					return
				}
				digests[idx] = sum
				bytes.Add(n)
			}
		}()
	}

feed:
	for idx := range relPaths {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- idx:
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, 0, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	return digests, bytes.Load(), nil
}
