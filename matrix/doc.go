// Package matrix provides the dense numeric backend for namedmat.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with O(1) element access and a flat
//     backing slice for cache friendliness.
//   - Deterministic linear-algebra kernels: Mul, MatVec, VecMat, Dot,
//     Transpose, Scale, Inverse (Doolittle LU, no pivoting).
//   - Axis-aware statistics: CovarianceAlong and CorrelationAlong with a
//     1-based reduction axis, plus the CovarianceEstimator contract.
//
// All kernels perform strict fail-fast validation through the central
// validators and report failures via package sentinels matched with errors.Is.
// Operands are never mutated; every result is freshly allocated.
//
// The named package builds its axis-name propagation on top of this backend;
// nothing in this package knows about axis names.
package matrix
