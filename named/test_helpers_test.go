package named_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/namedmat/matrix"
	"github.com/katalvlaran/namedmat/named"
)

// mustDense builds a backend matrix from a flat row-major slice, failing the
// test on bad shapes.
func mustDense(t *testing.T, rows, cols int, vals []float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseFromRows(rows, cols, vals)
	require.NoError(t, err)
	return d
}

// mustNamed wraps a freshly built dense matrix with axis names.
func mustNamed(t *testing.T, rows, cols int, vals []float64, rowName, colName named.Name) *named.Matrix {
	t.Helper()
	m, err := named.Wrap(mustDense(t, rows, cols, vals), rowName, colName)
	require.NoError(t, err)
	return m
}

// mustVec wraps a slice with an axis name.
func mustVec(t *testing.T, vals []float64, name named.Name) *named.Vector {
	t.Helper()
	v, err := named.WrapVector(vals, name)
	require.NoError(t, err)
	return v
}

// requireNames asserts both axis names of a named matrix.
func requireNames(t *testing.T, m *named.Matrix, row, col named.Name) {
	t.Helper()
	gotRow, gotCol := m.Names()
	require.Equal(t, row, gotRow)
	require.Equal(t, col, gotCol)
}

// requireSameValues asserts element-wise equality of two backend matrices.
func requireSameValues(t *testing.T, want, got matrix.Matrix) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows())
	require.Equal(t, want.Cols(), got.Cols())
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			w, err := want.At(i, j)
			require.NoError(t, err)
			g, err := got.At(i, j)
			require.NoError(t, err)
			require.InDelta(t, w, g, 1e-12, "mismatch at (%d,%d)", i, j)
		}
	}
}
