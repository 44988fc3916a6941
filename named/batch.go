package named

import (
	"context"

	"golang.org/x/sync/errgroup"
)

const opMulBatch = "named.MulBatch"

// ProductPair is one matrix-matrix multiplication in a MulBatch call.
type ProductPair struct {
	Left  *Matrix
	Right *Matrix
}

// MulBatch runs independent name-checked matrix products concurrently and
// returns the results in input order.
//
// Behavior highlights:
//   - limit bounds the number of in-flight multiplications; limit <= 0 means
//     unbounded.
//   - The first failure (name mismatch, shape mismatch, nil operand) cancels
//     the remaining work and is returned; partial results are discarded.
//   - Operands are read-only throughout, so pairs may freely share matrices.
//
// Determinism: results[i] always corresponds to pairs[i]; scheduling order
// never leaks into the output.
func MulBatch(ctx context.Context, limit int, pairs []ProductPair) ([]*Matrix, error) {
	results := make([]*Matrix, len(pairs))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, p := range pairs {
		i, p := i, p
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return namedErrorf(opMulBatch, ctx.Err())
			default:
			}
			out, err := MulMM(p.Left, p.Right)
			if err != nil {
				return err
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
