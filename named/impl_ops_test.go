package named_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/namedmat/matrix"
	"github.com/katalvlaran/namedmat/named"
)

// TestMulMM_ValuesAndNames verifies the product matches the raw backend
// result exactly and carries the derived outer names.
func TestMulMM_ValuesAndNames(t *testing.T) {
	t.Parallel()
	a := mustNamed(t, 2, 2, []float64{1, 2, 3, 4}, "obs", "gene")
	b := mustNamed(t, 2, 2, []float64{0, 1, 1, 0}, "gene", "pc")

	got, err := named.MulMM(a, b)
	require.NoError(t, err)
	requireNames(t, got, "obs", "pc")

	want, err := matrix.Product(a.Raw(), b.Raw())
	require.NoError(t, err)
	requireSameValues(t, want, got.Raw())
}

// TestMulMM_NameMismatchBeforeNumericWork uses operands whose shapes are also
// incompatible: the name check must win, proving it runs before any
// arithmetic or shape validation.
func TestMulMM_NameMismatchBeforeNumericWork(t *testing.T) {
	t.Parallel()
	a := mustNamed(t, 2, 3, []float64{1, 2, 3, 4, 5, 6}, "obs", "gene")
	b := mustNamed(t, 2, 2, []float64{1, 0, 0, 1}, "cell", "pc")

	_, err := named.MulMM(a, b)
	require.ErrorIs(t, err, named.ErrNameMismatch)
	require.NotErrorIs(t, err, matrix.ErrDimensionMismatch)

	var mismatch *named.NameMismatchError
	require.True(t, errors.As(err, &mismatch))
	require.Equal(t, named.Name("gene"), mismatch.Left)
	require.Equal(t, named.Name("cell"), mismatch.Right)
}

// TestMulMM_FlippedOperandRejectedByNamesAlone models the transposed-operand
// bug: the right operand's axes were built the wrong way round, so the shapes
// still contract cleanly and only the names can reject the product.
func TestMulMM_FlippedOperandRejectedByNamesAlone(t *testing.T) {
	t.Parallel()
	samples := mustNamed(t, 4, 3, []float64{
		2.1, 0.3, 5.5,
		1.9, 0.5, 5.1,
		2.4, 0.2, 6.0,
		2.0, 0.4, 5.4,
	}, "sample", "gene")
	flipped := mustNamed(t, 3, 2, []float64{
		0.9, 0.1,
		0.0, 1.0,
		0.4, -0.2,
	}, "pc", "gene")

	// Sanity: the raw shapes multiply fine, so a shape check alone would let
	// the bug through.
	_, err := matrix.Product(samples.Raw(), flipped.Raw())
	require.NoError(t, err)

	_, err = named.MulMM(samples, flipped)
	require.ErrorIs(t, err, named.ErrNameMismatch)

	var mismatch *named.NameMismatchError
	require.True(t, errors.As(err, &mismatch))
	require.Equal(t, named.Name("gene"), mismatch.Left)
	require.Equal(t, named.Name("pc"), mismatch.Right)

	// The corrected orientation goes through and derives the outer names.
	got, err := named.MulMM(samples, flipped.Rename("gene", "pc"))
	require.NoError(t, err)
	requireNames(t, got, "sample", "pc")
}

// TestMulMM_WildcardBridges verifies a wildcard axis on either side lets the
// product through.
func TestMulMM_WildcardBridges(t *testing.T) {
	t.Parallel()
	anon := mustNamed(t, 2, 2, []float64{1, 0, 0, 1}, "obs", "")
	namedRight := mustNamed(t, 2, 2, []float64{1, 2, 3, 4}, "gene", "pc")

	got, err := named.MulMM(anon, namedRight)
	require.NoError(t, err)
	requireNames(t, got, "obs", "pc")

	got, err = named.MulMM(namedRight.Rename("obs", "gene"), anon.Rename("", "pc"))
	require.NoError(t, err)
	requireNames(t, got, "obs", "pc")
}

// TestMulMM_ShapeErrorPropagates verifies backend shape failures survive the
// named layer unchanged when names agree.
func TestMulMM_ShapeErrorPropagates(t *testing.T) {
	t.Parallel()
	a := mustNamed(t, 2, 3, []float64{1, 2, 3, 4, 5, 6}, "obs", "gene")
	b := mustNamed(t, 2, 2, []float64{1, 0, 0, 1}, "gene", "pc")
	_, err := named.MulMM(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestMulMM_NilOperands rejects nil wrappers up front.
func TestMulMM_NilOperands(t *testing.T) {
	t.Parallel()
	a := mustNamed(t, 2, 2, []float64{1, 0, 0, 1}, "r", "c")
	_, err := named.MulMM(nil, a)
	require.ErrorIs(t, err, named.ErrNilMatrix)
	_, err = named.MulMM(a, nil)
	require.ErrorIs(t, err, named.ErrNilMatrix)
}

// TestMulMV covers name derivation, mismatch and value agreement for
// matrix-vector products.
func TestMulMV(t *testing.T) {
	t.Parallel()
	a := mustNamed(t, 2, 2, []float64{1, 2, 3, 4}, "obs", "gene")
	x := mustVec(t, []float64{1, 1}, "gene")

	got, err := named.MulMV(a, x)
	require.NoError(t, err)
	require.Equal(t, named.Name("obs"), got.Name())
	require.Equal(t, []float64{3, 7}, got.Raw())

	_, err = named.MulMV(a, x.Rename("pc"))
	require.ErrorIs(t, err, named.ErrNameMismatch)
}

// TestMulVM covers vector-matrix products: always name-compatible, result
// named along the matrix's column axis.
func TestMulVM(t *testing.T) {
	t.Parallel()
	b := mustNamed(t, 2, 2, []float64{1, 2, 3, 4}, "obs", "gene")
	x := mustVec(t, []float64{1, 1}, "anything")

	got, err := named.MulVM(x, b)
	require.NoError(t, err)
	require.Equal(t, named.Name("gene"), got.Name())
	require.Equal(t, []float64{4, 6}, got.Raw())
}

// TestDot_RawScalar verifies the inner product ignores names and returns a
// plain scalar.
func TestDot_RawScalar(t *testing.T) {
	t.Parallel()
	x := mustVec(t, []float64{1, 2, 3}, "gene")
	y := mustVec(t, []float64{4, 5, 6}, "totally-different")

	s, err := named.Dot(x, y)
	require.NoError(t, err)
	require.Equal(t, 32.0, s)

	_, err = named.Dot(x, mustVec(t, []float64{1, 2}, "gene"))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestMulTV_RawResult verifies the transposed-vector product returns an
// unnamed slice, numerically identical to the named vector-matrix product.
func TestMulTV_RawResult(t *testing.T) {
	t.Parallel()
	b := mustNamed(t, 2, 2, []float64{1, 2, 3, 4}, "obs", "gene")
	x := mustVec(t, []float64{1, 1}, "obs")

	raw, err := named.MulTV(x, b)
	require.NoError(t, err)

	viaNamed, err := named.MulVM(x, b)
	require.NoError(t, err)
	require.Equal(t, viaNamed.Raw(), raw)
}

// TestInverse_SwapsNamesAndRoundTrips verifies name swapping, numeric
// correctness against the backend, and that a double inverse restores the
// original names.
func TestInverse_SwapsNamesAndRoundTrips(t *testing.T) {
	t.Parallel()
	a := mustNamed(t, 2, 2, []float64{4, 7, 2, 6}, "row", "col")

	inv, err := named.Inverse(a)
	require.NoError(t, err)
	requireNames(t, inv, "col", "row")

	want, err := matrix.InverseOf(a.Raw())
	require.NoError(t, err)
	requireSameValues(t, want, inv.Raw())

	back, err := named.Inverse(inv)
	require.NoError(t, err)
	requireNames(t, back, "row", "col")
}

// TestInverse_SingularPropagates verifies backend failures pass through.
func TestInverse_SingularPropagates(t *testing.T) {
	t.Parallel()
	a := mustNamed(t, 2, 2, []float64{1, 2, 2, 4}, "row", "col")
	_, err := named.Inverse(a)
	require.ErrorIs(t, err, matrix.ErrSingular)
}

// covData is a 3x2 observations-by-variables block shared by the reduction
// tests.
var covData = []float64{
	1, 10,
	2, 20,
	3, 33,
}

// TestCovariance_AxisIndex verifies reduction along axis 1: rows are
// observations, so the result is square over the column axis and both result
// dimensions carry the column name.
func TestCovariance_AxisIndex(t *testing.T) {
	t.Parallel()
	a := mustNamed(t, 3, 2, covData, "obs", "gene")

	got, err := named.Covariance(a, named.AxisIndex(1))
	require.NoError(t, err)
	requireNames(t, got, "gene", "gene")
	require.Equal(t, 2, got.Rows())
	require.Equal(t, 2, got.Cols())

	want, err := matrix.CovarianceAlong(a.Raw(), matrix.AxisRows)
	require.NoError(t, err)
	requireSameValues(t, want, got.Raw())
}

// TestCovariance_AxisName verifies name-based axis selection produces the
// same reduction as the positional form.
func TestCovariance_AxisName(t *testing.T) {
	t.Parallel()
	a := mustNamed(t, 3, 2, covData, "obs", "gene")

	byName, err := named.Covariance(a, named.AxisName("obs"))
	require.NoError(t, err)
	byIndex, err := named.Covariance(a, named.AxisIndex(1))
	require.NoError(t, err)

	requireNames(t, byName, "gene", "gene")
	requireSameValues(t, byIndex.Raw(), byName.Raw())
}

// TestCovariance_UnknownAxisName fails with ErrBadAxis before touching the
// backend.
func TestCovariance_UnknownAxisName(t *testing.T) {
	t.Parallel()
	a := mustNamed(t, 3, 2, covData, "obs", "gene")
	_, err := named.Covariance(a, named.AxisName("no-such-axis"))
	require.ErrorIs(t, err, named.ErrBadAxis)
}

// TestCovariance_BadAxisIndexPropagates verifies out-of-range positional axes
// surface as the backend's axis error.
func TestCovariance_BadAxisIndexPropagates(t *testing.T) {
	t.Parallel()
	a := mustNamed(t, 3, 2, covData, "obs", "gene")
	_, err := named.Covariance(a, named.AxisIndex(3))
	require.ErrorIs(t, err, matrix.ErrBadAxis)
}

// TestCorrelation_Names verifies the correlation reduction derives names the
// same way covariance does, on both axes.
func TestCorrelation_Names(t *testing.T) {
	t.Parallel()
	a := mustNamed(t, 3, 2, covData, "obs", "gene")

	alongRows, err := named.Correlation(a, named.AxisIndex(1))
	require.NoError(t, err)
	requireNames(t, alongRows, "gene", "gene")

	alongCols, err := named.Correlation(a, named.AxisIndex(2))
	require.NoError(t, err)
	requireNames(t, alongCols, "obs", "obs")
	require.Equal(t, 3, alongCols.Rows())
}

// TestCovarianceWith_Estimator verifies a caller-supplied estimator drives
// the numbers while the named layer still derives the names.
func TestCovarianceWith_Estimator(t *testing.T) {
	t.Parallel()
	a := mustNamed(t, 3, 2, covData, "obs", "gene")
	uncorrected := matrix.SampleCovariance{}

	got, err := named.CovarianceWith(a, uncorrected, named.AxisName("obs"))
	require.NoError(t, err)
	requireNames(t, got, "gene", "gene")

	want, err := uncorrected.CovarianceAlong(a.Raw(), matrix.AxisRows)
	require.NoError(t, err)
	requireSameValues(t, want, got.Raw())
}
