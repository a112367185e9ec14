package composition

import (
	"context"
	"runtime"
	"sort"
	"sync"
)

// AnalyzeCorpus runs Analyze over every record on a pool of worker goroutines.
// Results come back in corpus order (by Order) whatever the completion order.
// The first failing record in corpus order is reported and no partial result
// is returned. threads <= 0 uses one worker per CPU.
func AnalyzeCorpus(ctx context.Context, records []ProteinRecord, threads int) ([]Analysis, error) {
	if len(records) == 0 {
		return nil, ErrEmptyCorpus
	}
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	if threads > len(records) {
		threads = len(records)
	}

	ordered := make([]ProteinRecord, len(records))
	copy(ordered, records)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Order < ordered[j].Order })

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]Analysis, len(ordered))
	errs := make([]error, len(ordered))
	jobs := make(chan int, threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(threads)
	for w := 0; w < threads; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				a, err := Analyze(ordered[i])
				if err != nil {
					errs[i] = err
					cancel()
					continue
				}
				results[i] = a
			}
		}()
	}

	// Feed jobs in corpus order so every record before a failure is dispatched
feed:
	for i := range ordered {
		select {
		case <-runCtx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
