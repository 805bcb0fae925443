// Package window evaluates a function over every start index of a sliding
// window, fanning large index ranges out across goroutines.
package window

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ParallelThreshold is the number of windows above which Map splits the
// work across workers. Below it the loop runs inline.
var ParallelThreshold = 4096

// Count returns how many windows of size w fit in a sequence of length n.
func Count(n, w int) int {
	if w < 1 || n < w {
		return 0
	}
	return n - w + 1
}

// Map calls fn for every index in [0, count) and returns the results in
// index order. Each call must be independent of the others.
func Map[T any](count int, fn func(i int) T) []T {
	if count <= 0 {
		return nil
	}
	out := make([]T, count)
	if count < ParallelThreshold {
		for i := range out {
			out[i] = fn(i)
		}
		return out
	}

	workers := runtime.GOMAXPROCS(0)
	chunk := (count + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < count; start += chunk {
		end := min(start+chunk, count)
		g.Go(func() error {
			for i := start; i < end; i++ {
				out[i] = fn(i)
			}
			return nil
		})
	}
	// Workers never fail; Wait only joins them.
	_ = g.Wait()
	return out
}
