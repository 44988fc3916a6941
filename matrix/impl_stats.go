// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide axis-aware covariance and Pearson correlation as deterministic
//     compositions over the canonical kernels (Transpose/Mul/Scale) plus small
//     centering/scaling micro-kernels kept in this file.
//   - Axis convention (1-based, matching the reduction semantics of the named
//     package): axis=1 reduces over rows (rows are observations, columns are
//     variables, result Cols×Cols); axis=2 reduces over columns (result
//     Rows×Rows).
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense fast-paths avoid At/Set and operate on row-major flat buffers.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opCovariance  = "CovarianceAlong"
	opCorrelation = "CorrelationAlong"
)

// sampleCovarianceName identifies the built-in estimator in error/log surfaces.
const sampleCovarianceName = "sample-covariance"

// centerColumns subtracts the per-column mean from every element and returns
// the centered copy together with the column means.
//
// Implementation:
//   - Stage 1: Validate X (non-nil).
//   - Stage 2: Accumulate column sums in a deterministic pass (Dense fast-path;
//     At fallback), convert to means.
//   - Stage 3: Subtract means into a fresh Dense.
//
// Determinism: fixed i→j order. Complexity: Time O(r*c), Space O(r*c) + O(c).
func centerColumns(X Matrix) (*Dense, []float64, error) {
	// Stage 1 (Validate): ensure X is present.
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, err
	}

	r, c := X.Rows(), X.Cols()
	means := make([]float64, c)

	// Stage 2 (Accumulate): Dense fast-path uses the flat buffer directly.
	var i, j int
	var v float64
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				means[j] += d.data[base+j]
			}
		}
	} else {
		var err error
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				v, err = X.At(i, j)
				if err != nil {
					return nil, nil, err
				}
				means[j] += v
			}
		}
	}

	// Stage 2 (Finalize means): divide sums by r.
	invR := 1.0 / float64(r)
	for j = 0; j < c; j++ {
		means[j] *= invR
	}

	// Stage 3 (Apply): broadcast-subtract the means over rows.
	Xc, err := NewDense(r, c)
	if err != nil {
		return nil, nil, err
	}
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				Xc.data[base+j] = d.data[base+j] - means[j]
			}
		}
	} else {
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				v, err = X.At(i, j)
				if err != nil {
					return nil, nil, err
				}
				Xc.data[i*c+j] = v - means[j]
			}
		}
	}

	return Xc, means, nil
}

// scaleCols multiplies each column j of the Dense X by scale[j] in place.
// Internal micro-kernel; X is the callee's scratch copy, never a caller value.
// Determinism: fixed i→j order. Complexity: Time O(r*c), Space O(1).
func scaleCols(X *Dense, scale []float64) {
	var i, j, base int
	for i = 0; i < X.r; i++ {
		base = i * X.c
		for j = 0; j < X.c; j++ {
			X.data[base+j] *= scale[j]
		}
	}
}

// asVariableColumns reorients m so that variables run along columns:
// axis==AxisRows keeps m as-is, axis==AxisCols transposes it.
// The returned Matrix may alias m (axis==AxisRows); callers must not mutate it.
func asVariableColumns(m Matrix, axis int) (Matrix, error) {
	if axis == AxisRows {
		return m, nil
	}

	// axis == AxisCols: observations run along columns, so transpose once.
	return Transpose(m)
}

// covarianceOf computes Cov = (Xcᵀ * Xc)/denom for column variables, where
// denom is n-1 (corrected) or n (uncorrected) and n is the observation count.
//
// Implementation:
//   - Stage 1: Reorient via asVariableColumns, require n ≥ 2 observations.
//   - Stage 2: Center columns once, then compose Transpose → Mul → Scale.
//
// Behavior highlights:
//   - Symmetric output; diagonal equals per-variable (co)variance.
//
// Errors: ErrNilMatrix, ErrBadAxis, ErrTooFewObservations, wrapped kernel errors.
// Complexity: Time O(r*c + r*c^2), Space O(c^2).
func covarianceOf(m Matrix, axis int, corrected bool) (Matrix, error) {
	// Stage 1 (Validate): presence and axis range first, before numeric work.
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if err := ValidateAxis(axis); err != nil {
		return nil, err
	}
	X, err := asVariableColumns(m, axis)
	if err != nil {
		return nil, err
	}
	n := X.Rows() // observation count after reorientation
	if n < 2 {
		return nil, ErrTooFewObservations
	}

	// Stage 2 (Center): subtract column means.
	Xc, _, err := centerColumns(X)
	if err != nil {
		return nil, err
	}

	// Stage 3 (Compose): Cov = (Xcᵀ Xc)/denom via canonical kernels.
	Xct, err := Transpose(Xc)
	if err != nil {
		return nil, err
	}
	G, err := Mul(Xct, Xc)
	if err != nil {
		return nil, err
	}
	denom := float64(n)
	if corrected {
		denom = float64(n - 1)
	}

	return Scale(G, 1.0/denom)
}

// CovarianceAlong computes the sample covariance matrix of the variables laid
// out along the given 1-based axis (corrected divisor n−1).
//
// Inputs:
//   - m: input matrix (r×c), non-nil.
//   - axis: AxisRows (1) → result Cols×Cols; AxisCols (2) → result Rows×Rows.
//
// Returns:
//   - Matrix: symmetric covariance matrix.
//
// Errors:
//   - ErrNilMatrix, ErrBadAxis, ErrTooFewObservations, wrapped kernel errors.
//
// Determinism:
//   - Compositions of fixed-order kernels only; stable output.
//
// Complexity:
//   - Time O(r*c + r*c^2) for axis=1 (symmetrically for axis=2), Space O(c^2).
func CovarianceAlong(m Matrix, axis int) (Matrix, error) {
	cov, err := covarianceOf(m, axis, true)
	if err != nil {
		return nil, matrixErrorf(opCovariance, err)
	}

	return cov, nil
}

// CorrelationAlong computes the Pearson correlation matrix of the variables
// laid out along the given 1-based axis via z-scoring:
//
//	Z = (X − mean) * diag(1/std),  Corr = (Zᵀ Z)/(n−1).
//
// Degenerate variables (std==0) produce zero rows/columns by construction.
//
// Inputs:
//   - m: input matrix (r×c), non-nil.
//   - axis: AxisRows (1) or AxisCols (2); same convention as CovarianceAlong.
//
// Returns:
//   - Matrix: symmetric correlation matrix; diagonal is 1 for non-degenerate
//     variables, 0 for degenerate ones.
//
// Errors:
//   - ErrNilMatrix, ErrBadAxis, ErrTooFewObservations, wrapped kernel errors.
//
// Determinism:
//   - Fixed accumulation order; stable output.
//
// Complexity:
//   - Time O(r*c + r*c^2), Space O(c^2).
//
// Notes:
//   - Scale-invariant: CorrelationAlong(α*X) == CorrelationAlong(X) for α>0.
func CorrelationAlong(m Matrix, axis int) (Matrix, error) {
	// Stage 1 (Validate): presence and axis range.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opCorrelation, err)
	}
	if err := ValidateAxis(axis); err != nil {
		return nil, matrixErrorf(opCorrelation, err)
	}
	X, err := asVariableColumns(m, axis)
	if err != nil {
		return nil, matrixErrorf(opCorrelation, err)
	}
	r, c := X.Rows(), X.Cols()
	if r < 2 {
		return nil, matrixErrorf(opCorrelation, ErrTooFewObservations)
	}

	// Stage 2 (Center): subtract column means.
	Xc, _, err := centerColumns(X)
	if err != nil {
		return nil, matrixErrorf(opCorrelation, err)
	}

	// Stage 3 (Std): std[j] = sqrt( Σ_i Xc[i,j]^2 / (r-1) ).
	sumsq := make([]float64, c)
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		base := i * c
		for j = 0; j < c; j++ {
			v = Xc.data[base+j]
			sumsq[j] += v * v
		}
	}
	inv := 1.0 / float64(r-1)

	// Stage 4 (Build invStd): degenerate std==0 ⇒ invStd=0 (zero-out the column).
	invStd := make([]float64, c)
	var std float64
	for j = 0; j < c; j++ {
		std = math.Sqrt(sumsq[j] * inv)
		if std > 0 {
			invStd[j] = 1.0 / std
		}
	}

	// Stage 5 (Z-score): Z = Xc * diag(invStd); Xc is scratch, mutate in place.
	scaleCols(Xc, invStd)

	// Stage 6 (Corr): Corr = (Zᵀ Z)/(r-1).
	Zt, err := Transpose(Xc)
	if err != nil {
		return nil, matrixErrorf(opCorrelation, err)
	}
	G, err := Mul(Zt, Xc)
	if err != nil {
		return nil, matrixErrorf(opCorrelation, err)
	}
	Corr, err := Scale(G, inv)
	if err != nil {
		return nil, matrixErrorf(opCorrelation, err)
	}

	return Corr, nil
}

// SampleCovariance is the built-in CovarianceEstimator: plain empirical
// covariance with a corrected (n−1) or uncorrected (n) divisor.
//
// The zero value is the uncorrected estimator; SampleCovariance{Corrected: true}
// matches CovarianceAlong exactly.
type SampleCovariance struct {
	// Corrected selects the n−1 divisor (sample covariance) when true,
	// the n divisor (maximum-likelihood covariance) when false.
	Corrected bool
}

// CovarianceAlong implements CovarianceEstimator.
// Same contract, errors and complexity as the package-level CovarianceAlong,
// with the divisor selected by e.Corrected.
func (e SampleCovariance) CovarianceAlong(m Matrix, axis int) (Matrix, error) {
	cov, err := covarianceOf(m, axis, e.Corrected)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", e.Name(), err)
	}

	return cov, nil
}

// Name implements CovarianceEstimator.
func (e SampleCovariance) Name() string {
	if e.Corrected {
		return sampleCovarianceName + "(n-1)"
	}

	return sampleCovarianceName + "(n)"
}
