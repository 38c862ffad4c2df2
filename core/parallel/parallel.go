// Package parallel provides small helpers for splitting CPU-bound work
// across goroutines. The cross-validation evaluator uses them to score
// folds concurrently; callers only see the synchronous call.
package parallel

import (
	"runtime"
	"sync"
)

// Parallelize divides items into per-worker ranges sized by the number of
// CPU cores and runs fn(start, end) for each range, blocking until all
// ranges are done.
func Parallelize(items int, fn func(start, end int)) {
	if items == 0 {
		return
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > items {
		numWorkers = items
	}

	// Ceiling division so the last worker picks up the remainder.
	chunkSize := (items + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup

	for i := 0; i < numWorkers; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if end > items {
			end = items
		}
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
}

// ParallelizeWithThreshold runs fn sequentially when items is at or below
// threshold, and in parallel otherwise. Small workloads are not worth the
// goroutine overhead.
func ParallelizeWithThreshold(items int, threshold int, fn func(start, end int)) {
	if items <= threshold {
		fn(0, items)
		return
	}
	Parallelize(items, fn)
}

// ForEach runs fn(i) for every i in [0, items), one goroutine per range,
// and collects one error slot per item. The first non-nil error in index
// order is returned after all items finish; there is no early cancellation.
func ForEach(items int, fn func(i int) error) error {
	if items == 0 {
		return nil
	}

	errs := make([]error, items)
	Parallelize(items, func(start, end int) {
		for i := start; i < end; i++ {
			errs[i] = fn(i)
		}
	})

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
