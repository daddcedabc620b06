package degrees

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// QueryAll answers names in parallel and returns results in input order.
//
// Each worker owns a private Session, so no search state is shared; the graph
// is only read. workers <= 0 means GOMAXPROCS. The only error is ctx's: on
// cancellation the partial results are discarded.
func (e *Engine) QueryAll(ctx context.Context, names []string, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(names) {
		workers = len(names)
	}
	results := make([]Result, len(names))
	if len(names) == 0 {
		return results, nil
	}

	grp, ctx := errgroup.WithContext(ctx)
	jobs := make(chan int)

	grp.Go(func() error {
		defer close(jobs)
		for i := range names {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < workers; w++ {
		sess := e.NewSession()
		grp.Go(func() error {
			for i := range jobs {
				// each index is written by exactly one worker
				results[i] = sess.Query(names[i])
			}
			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
