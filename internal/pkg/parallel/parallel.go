// Package parallel runs order-preserving data-parallel reductions over slices.
package parallel

import (
	"runtime"
	"sync"
)

// MinChunkSize is the smallest slice share worth a goroutine of its own.
const MinChunkSize = 512

// Reduce splits items into contiguous chunks, folds each chunk with accumulate on
// its own goroutine and joins the partial results with combine in chunk order.
// combine must be associative and identity must return a fresh neutral value.
func Reduce[T, R any](items []T, identity func() R, accumulate func(R, T) R, combine func(R, R) R) R {
	workers := workerCount(len(items))
	if workers <= 1 {
		acc := identity()
		for _, item := range items {
			acc = accumulate(acc, item)
		}
		return acc
	}

	chunk := (len(items) + workers - 1) / workers
	partials := make([]R, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := min(lo+chunk, len(items))
		if lo >= hi {
			partials[w] = identity()
			continue
		}

		wg.Add(1)
		go func(w int, part []T) {
			defer wg.Done()
			acc := identity()
			for _, item := range part {
				acc = accumulate(acc, item)
			}
			partials[w] = acc
		}(w, items[lo:hi])
	}
	wg.Wait()

	result := identity()
	for _, partial := range partials {
		result = combine(result, partial)
	}
	return result
}

// Filter returns the items for which keep is true, in input order.
func Filter[T any](items []T, keep func(T) bool) []T {
	return Reduce(items,
		func() []T { return []T{} },
		func(acc []T, item T) []T {
			if keep(item) {
				acc = append(acc, item)
			}
			return acc
		},
		func(left, right []T) []T {
			return append(left, right...)
		},
	)
}

func workerCount(n int) int {
	workers := runtime.GOMAXPROCS(0)
	if chunks := (n + MinChunkSize - 1) / MinChunkSize; chunks < workers {
		workers = chunks
	}
	return workers
}
