package source

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultWorkers is the number of downloads allowed in flight.
const DefaultWorkers = 8

type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]string, error)
}

// Batch is what one source contributed. Lines is empty when Err is set.
type Batch struct {
	URL   string
	Lines []string
	Err   error
}

// FetchAll downloads every url with at most workers requests in flight.
// Failures are logged and kept in the batch; they never stop the others.
// The result has one batch per url, in the order of urls.
func FetchAll(ctx context.Context, log *zap.Logger, src Fetcher, urls []string, workers int) []Batch {
	if workers <= 0 {
		workers = DefaultWorkers
	}

	batches := make([]Batch, len(urls))

	var g errgroup.Group
	g.SetLimit(workers)

	for i, u := range urls {
		g.Go(func() error {
			log.Info("downloading", zap.String("url", u))

			lines, err := src.Fetch(ctx, u)
			if err != nil {
				log.Warn("download failed", zap.String("url", u), zap.Error(err))
				batches[i] = Batch{URL: u, Err: err}
				return nil
			}

			log.Debug("downloaded", zap.String("url", u), zap.Int("lines", len(lines)))
			batches[i] = Batch{URL: u, Lines: lines}
			return nil
		})
	}

	_ = g.Wait() // workers never return errors
	return batches
}
