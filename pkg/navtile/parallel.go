package navtile

import (
	"runtime"
	"sync"

	"github.com/beetlebugorg/navtile/internal/pipeline"
)

// generateLevels simplifies the merged collection at every tolerance in the
// ladder. Levels are independent of each other and share only read-only
// access to the input, so they are generated by a worker pool when
// opts.Parallel is set.
//
// Results are returned in ladder order regardless of completion order.
func generateLevels(merged pipeline.Collection, tolerances []float64, opts PrepareOptions) []pipeline.Collection {
	if !opts.Parallel || len(tolerances) == 1 {
		return generateLevelsSerial(merged, tolerances, opts)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(tolerances) {
		workers = len(tolerances)
	}

	type levelResult struct {
		index      int
		collection pipeline.Collection
	}

	jobs := make(chan int, len(tolerances))
	results := make(chan levelResult, len(tolerances))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for index := range jobs {
				results <- levelResult{
					index:      index,
					collection: pipeline.Simplify(merged, tolerances[index]),
				}
			}
		}()
	}

	for i := range tolerances {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	levels := make([]pipeline.Collection, len(tolerances))
	done := 0
	for result := range results {
		levels[result.index] = result.collection
		done++
		if opts.Progress != nil {
			opts.Progress(done, len(tolerances))
		}
	}
	return levels
}

// generateLevelsSerial is the fallback used when parallel generation is
// disabled.
func generateLevelsSerial(merged pipeline.Collection, tolerances []float64, opts PrepareOptions) []pipeline.Collection {
	levels := make([]pipeline.Collection, len(tolerances))
	for i, tol := range tolerances {
		levels[i] = pipeline.Simplify(merged, tol)
		if opts.Progress != nil {
			opts.Progress(i+1, len(tolerances))
		}
	}
	return levels
}
