package board

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// CountAll evaluates every piece against b and returns the results in the
// order of pieces. Evaluations are independent, so with workers > 1 they run
// concurrently on the shared, read-only board. b must not be modified until
// CountAll returns.
func CountAll(ctx context.Context, b *Board, pieces []Piece, workers int) ([]Counts, error) {
	out := make([]Counts, len(pieces))
	if workers <= 1 {
		for i, p := range pieces {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			out[i] = b.Count(p)
		}
		return out, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, p := range pieces {
		i, p := i, p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = b.Count(p)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
