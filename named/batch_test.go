package named_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/namedmat/named"
)

// TestMulBatch_OrderPreserved verifies results line up with their input
// pairs regardless of scheduling.
func TestMulBatch_OrderPreserved(t *testing.T) {
	t.Parallel()
	id := mustNamed(t, 2, 2, []float64{1, 0, 0, 1}, "gene", "pc")
	pairs := make([]named.ProductPair, 8)
	for i := range pairs {
		scale := float64(i + 1)
		pairs[i] = named.ProductPair{
			Left:  mustNamed(t, 2, 2, []float64{scale, 0, 0, scale}, "obs", "gene"),
			Right: id,
		}
	}

	results, err := named.MulBatch(context.Background(), 3, pairs)
	require.NoError(t, err)
	require.Len(t, results, len(pairs))
	for i, m := range results {
		requireNames(t, m, "obs", "pc")
		got, err := m.At(0, 0)
		require.NoError(t, err)
		require.Equal(t, float64(i+1), got)
	}
}

// TestMulBatch_FirstErrorWins verifies a single bad pair fails the whole
// batch with its name mismatch.
func TestMulBatch_FirstErrorWins(t *testing.T) {
	t.Parallel()
	good := named.ProductPair{
		Left:  mustNamed(t, 2, 2, []float64{1, 0, 0, 1}, "obs", "gene"),
		Right: mustNamed(t, 2, 2, []float64{1, 2, 3, 4}, "gene", "pc"),
	}
	bad := named.ProductPair{
		Left:  mustNamed(t, 2, 2, []float64{1, 0, 0, 1}, "obs", "gene"),
		Right: mustNamed(t, 2, 2, []float64{1, 2, 3, 4}, "cell", "pc"),
	}

	_, err := named.MulBatch(context.Background(), 0, []named.ProductPair{good, bad, good})
	require.ErrorIs(t, err, named.ErrNameMismatch)
}

// TestMulBatch_CanceledContext verifies a pre-canceled context aborts serial
// execution before any multiplication.
func TestMulBatch_CanceledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pair := named.ProductPair{
		Left:  mustNamed(t, 2, 2, []float64{1, 0, 0, 1}, "obs", "gene"),
		Right: mustNamed(t, 2, 2, []float64{1, 2, 3, 4}, "gene", "pc"),
	}
	_, err := named.MulBatch(ctx, 1, []named.ProductPair{pair, pair})
	require.ErrorIs(t, err, context.Canceled)
}

// TestMulBatch_Empty returns an empty result set without touching the group.
func TestMulBatch_Empty(t *testing.T) {
	t.Parallel()
	results, err := named.MulBatch(context.Background(), 4, nil)
	require.NoError(t, err)
	require.Empty(t, results)
}
