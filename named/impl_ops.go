package named

import (
	"github.com/katalvlaran/namedmat/matrix"
)

// Operation tags for error wrapping. Every exported operation wraps its
// failures as "named.<Op>: <sentinel>".
const (
	opWrap           = "named.Wrap"
	opAt             = "named.At"
	opMulMM          = "named.MulMM"
	opMulMV          = "named.MulMV"
	opMulVM          = "named.MulVM"
	opDot            = "named.Dot"
	opMulTV          = "named.MulTV"
	opInverse        = "named.Inverse"
	opCovariance     = "named.Covariance"
	opCorrelation    = "named.Correlation"
	opCovarianceWith = "named.CovarianceWith"
)

// MulMM computes the matrix product a * b with name checking.
//
// Implementation stages:
//  1. Reject nil operands.
//  2. Check the contracted names: a's column name against b's row name;
//     a mismatch fails with *NameMismatchError before any numeric work.
//  3. Delegate the multiplication to the backend on the raw values unchanged.
//  4. Re-wrap the raw product with the derived pair (a's row name, b's
//     column name).
//
// Numeric results are identical to the raw backend product; only the name
// metadata is new. Dimension mismatches still surface as the backend's
// ErrDimensionMismatch: names gate semantics, shapes gate arithmetic.
//
// Complexity: O(1) on top of the backend multiply.
func MulMM(a, b *Matrix) (*Matrix, error) {
	if err := requireMatrix(a, opMulMM); err != nil {
		return nil, err
	}
	if err := requireMatrix(b, opMulMM); err != nil {
		return nil, err
	}
	if err := CheckMM(a.names, b.names); err != nil {
		return nil, namedErrorf(opMulMM, err)
	}
	raw, err := matrix.Product(a.raw, b.raw)
	if err != nil {
		return nil, namedErrorf(opMulMM, err)
	}
	out := DeriveMM(a.names, b.names)
	return &Matrix{raw: raw, names: out}, nil
}

// MulMV computes the matrix-vector product a * x with name checking: a's
// column name must agree with x's name. The result is a vector along a's row
// axis.
func MulMV(a *Matrix, x *Vector) (*Vector, error) {
	if err := requireMatrix(a, opMulMV); err != nil {
		return nil, err
	}
	if err := requireVector(x, opMulMV); err != nil {
		return nil, err
	}
	if err := CheckMV(a.names, x.name); err != nil {
		return nil, namedErrorf(opMulMV, err)
	}
	raw, err := matrix.MatVecMul(a.raw, x.raw)
	if err != nil {
		return nil, namedErrorf(opMulMV, err)
	}
	return &Vector{raw: raw, name: DeriveMV(a.names)}, nil
}

// MulVM computes the vector-matrix product x * b. A rank-1 left operand is
// always name-compatible, so the only failure modes are nil operands and
// backend shape errors. The result is a vector along b's column axis.
func MulVM(x *Vector, b *Matrix) (*Vector, error) {
	if err := requireVector(x, opMulVM); err != nil {
		return nil, err
	}
	if err := requireMatrix(b, opMulVM); err != nil {
		return nil, err
	}
	if err := CheckVM(x.name, b.names); err != nil {
		return nil, namedErrorf(opMulVM, err)
	}
	raw, err := matrix.VecMatMul(x.raw, b.raw)
	if err != nil {
		return nil, namedErrorf(opMulVM, err)
	}
	return &Vector{raw: raw, name: DeriveVM(b.names)}, nil
}

// Dot computes the inner product of two named vectors. The result is a raw
// scalar: rank-0 values carry no axis, hence no name. Names are not checked;
// an inner product contracts both operands completely, so there is no
// surviving axis for a name conflict to poison.
func Dot(x, y *Vector) (float64, error) {
	if err := requireVector(x, opDot); err != nil {
		return 0, err
	}
	if err := requireVector(y, opDot); err != nil {
		return 0, err
	}
	s, err := matrix.Dot(x.raw, y.raw)
	if err != nil {
		return 0, namedErrorf(opDot, err)
	}
	return s, nil
}

// MulTV computes the transposed-vector product x' * b and returns the raw
// slice. An explicitly transposed vector opts out of the named layer: the
// caller asked for plain row-vector arithmetic, so the result carries no name
// metadata. Use MulVM for the named equivalent.
func MulTV(x *Vector, b *Matrix) ([]float64, error) {
	if err := requireVector(x, opMulTV); err != nil {
		return nil, err
	}
	if err := requireMatrix(b, opMulTV); err != nil {
		return nil, err
	}
	raw, err := matrix.VecMatMul(x.raw, b.raw)
	if err != nil {
		return nil, namedErrorf(opMulTV, err)
	}
	return raw, nil
}

// Inverse computes the matrix inverse with swapped axis names: the inverse of
// a map from columns named y to rows named x maps x back to y. Inverting
// twice restores the original names.
//
// Singular and non-square inputs surface as the backend's ErrSingular and
// ErrInvalidDimensions.
func Inverse(a *Matrix) (*Matrix, error) {
	if err := requireMatrix(a, opInverse); err != nil {
		return nil, err
	}
	raw, err := matrix.InverseOf(a.raw)
	if err != nil {
		return nil, namedErrorf(opInverse, err)
	}
	return &Matrix{raw: raw, names: DeriveInverse(a.names)}, nil
}

// Covariance computes the sample covariance of a along the given axis.
//
// Implementation stages:
//  1. Resolve ax against a's names (positional axes pass through).
//  2. Delegate to the backend's CovarianceAlong on the raw value.
//  3. Re-wrap with the reduction names: the reduced axis vanishes and the
//     surviving axis names both dimensions of the square result.
//
// Reducing along axis 1 treats rows as observations and yields a Cols x Cols
// matrix named (col, col); axis 2 is the transposed reading.
func Covariance(a *Matrix, ax Axis) (*Matrix, error) {
	return reduce(a, ax, opCovariance, matrix.CovarianceAlong)
}

// Correlation computes the Pearson correlation of a along the given axis,
// with the same axis resolution and name derivation as Covariance.
func Correlation(a *Matrix, ax Axis) (*Matrix, error) {
	return reduce(a, ax, opCorrelation, matrix.CorrelationAlong)
}

// CovarianceWith computes a covariance reduction through a caller-supplied
// estimator, keeping the named layer's axis resolution and name derivation
// while letting the numeric policy (correction, shrinkage) vary.
func CovarianceWith(a *Matrix, est matrix.CovarianceEstimator, ax Axis) (*Matrix, error) {
	if est == nil {
		return nil, namedErrorf(opCovarianceWith, ErrNilEstimator)
	}
	return reduce(a, ax, opCovarianceWith, est.CovarianceAlong)
}

// reduce is the shared body of the symmetric reductions: resolve axis, run
// the kernel, derive names.
func reduce(a *Matrix, ax Axis, op string, kernel func(matrix.Matrix, int) (matrix.Matrix, error)) (*Matrix, error) {
	if err := requireMatrix(a, op); err != nil {
		return nil, err
	}
	d, err := a.ResolveAxis(ax)
	if err != nil {
		return nil, namedErrorf(op, err)
	}
	raw, err := kernel(a.raw, d)
	if err != nil {
		return nil, namedErrorf(op, err)
	}
	return &Matrix{raw: raw, names: DeriveReduction(a.names, d)}, nil
}

// requireMatrix rejects nil wrappers and wrappers around nil raw values.
func requireMatrix(m *Matrix, op string) error {
	if m == nil || m.raw == nil {
		return namedErrorf(op, ErrNilMatrix)
	}
	return nil
}

// requireVector rejects nil wrappers and wrappers around empty slices.
func requireVector(v *Vector, op string) error {
	if v == nil || len(v.raw) == 0 {
		return namedErrorf(op, ErrNilVector)
	}
	return nil
}
