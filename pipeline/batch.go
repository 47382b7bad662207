package pipeline

import (
	"context"

	"github.com/fwojciec/mirrordoc"
	"golang.org/x/sync/errgroup"
)

// Batch runs a Pipeline over many pages. Every page is an independent
// invocation: a failing page never affects the others.
type Batch struct {
	Pipeline    *Pipeline
	Concurrency int
}

// ProgressEvent reports that a page finished processing.
type ProgressEvent struct {
	Path      string
	Completed int
	Total     int
	Error     error
}

// ProgressFunc is a callback for reporting batch progress. It is never
// called concurrently.
type ProgressFunc func(event ProgressEvent)

// Run processes paths and returns one result per path, in input order.
// Page failures are reported on the results; the returned error is only
// set when ctx is cancelled, in which case pages not yet started fail with
// the context's error.
func (b *Batch) Run(ctx context.Context, paths []string, progress ProgressFunc) ([]*Result, error) {
	concurrency := b.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	type indexed struct {
		position int
		result   *Result
	}
	resultCh := make(chan indexed, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, path := range paths {
			i, path := i, path
			g.Go(func() error {
				resultCh <- indexed{position: i, result: b.process(gctx, path)}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	results := make([]*Result, len(paths))
	completed := 0
	for r := range resultCh {
		completed++
		results[r.position] = r.result
		if progress != nil {
			progress(ProgressEvent{
				Path:      r.result.InputPath,
				Completed: completed,
				Total:     len(paths),
				Error:     r.result.Err,
			})
		}
	}

	return results, ctx.Err()
}

func (b *Batch) process(ctx context.Context, path string) *Result {
	if err := ctx.Err(); err != nil {
		return &Result{
			InputPath:  path,
			OutputPath: mirrordoc.OutputPath(path),
			States:     []State{StateStart, StateFailed},
			Err:        err,
		}
	}
	r, _ := b.Pipeline.Process(ctx, path)
	return r
}

// Failed returns the results that carry an error.
func Failed(results []*Result) []*Result {
	var failed []*Result
	for _, r := range results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}
	return failed
}
