package shift

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// RunBatch runs independent requests concurrently with at most workers in
// flight (workers <= 0 means one per request). Results keep request order.
//
// The first failing request cancels the ones not yet started and its error,
// tagged with the request position, is returned with a nil result.
// Cancellation of ctx is observed between requests; a running request is
// never interrupted.
func (p *Pipeline) RunBatch(ctx context.Context, reqs []Request, workers int) ([][]Estimate, error) {
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	out := make([][]Estimate, len(reqs))
	for i := range reqs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := p.Run(reqs[i])
			if err != nil {
				return fmt.Errorf("request %d: %w", i, err)
			}
			out[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		p.log.Debug("batch failed", zap.Error(err))
		return nil, err
	}

	return out, nil
}
