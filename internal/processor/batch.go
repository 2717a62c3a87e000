package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// ProcessAll formats files with bounded concurrency. A failing file is logged
// and reported in the returned error but never stops the others.
func (p *implProcessor) ProcessAll(ctx context.Context, inputPaths []string) error {
	startTime := time.Now()
	errs := make([]error, len(inputPaths))

	var g errgroup.Group
	g.SetLimit(p.maxConcurrent)

	for i, path := range inputPaths {
		g.Go(func() error {
			if err := p.Process(ctx, path); err != nil {
				p.logger.Error(ctx, "Failed to process %s: %v", path, err)
				errs[i] = fmt.Errorf("%s: %w", path, err)
			}
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, err := range errs {
		if err != nil {
			failed++
		}
	}
	p.logger.Info(ctx, "Batch complete: %d formatted, %d failed (%s)",
		len(inputPaths)-failed, failed, time.Since(startTime).Round(time.Millisecond))

	return errors.Join(errs...)
}
