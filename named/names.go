package named

// Name-compatibility checker and output-name deriver.
//
// Both halves are pure functions over fixed-size name arrays: no allocation,
// no I/O, no dependence on numeric data. The dispatcher in impl_ops.go calls
// the checker before any numeric work and the deriver after the backend
// returns, so numeric kernels never see names at all.

// Compatible reports whether two contracted axis names agree. Equal names
// agree; the Wildcard name agrees with everything.
//
// Complexity: O(1), allocation-free.
func Compatible(left, right Name) bool {
	return left == right || left == Wildcard || right == Wildcard
}

// CheckMM validates a matrix-matrix product a * b: the left operand's column
// name must agree with the right operand's row name.
//
// Returns a *NameMismatchError citing both names on conflict, nil otherwise.
func CheckMM(a, b [2]Name) error {
	if !Compatible(a[1], b[0]) {
		return &NameMismatchError{Left: a[1], Right: b[0]}
	}
	return nil
}

// CheckMV validates a matrix-vector product a * x: the matrix's column name
// must agree with the vector's name.
func CheckMV(a [2]Name, x Name) error {
	if !Compatible(a[1], x) {
		return &NameMismatchError{Left: a[1], Right: x}
	}
	return nil
}

// CheckVM validates a vector-matrix product x * b. A rank-1 left operand is
// always compatible: the vector contributes no column name to contract
// against, so there is nothing to conflict.
func CheckVM(x Name, b [2]Name) error {
	return nil
}

// DeriveMM derives the axis names of a matrix-matrix product: the result
// keeps the left operand's row name and the right operand's column name. The
// contracted pair (a[1], b[0]) vanishes with the contracted dimension.
//
// Complexity: O(1), allocation-free.
func DeriveMM(a, b [2]Name) [2]Name {
	return [2]Name{a[0], b[1]}
}

// DeriveMV derives the axis name of a matrix-vector product: the result is a
// vector along the matrix's row axis.
func DeriveMV(a [2]Name) Name {
	return a[0]
}

// DeriveVM derives the axis name of a vector-matrix product: the result is a
// vector along the matrix's column axis.
func DeriveVM(b [2]Name) Name {
	return b[1]
}

// DeriveInverse derives the axis names of a matrix inverse by swapping them:
// the inverse of a map from axis y to axis x maps x back to y.
//
// Applying DeriveInverse twice is the identity.
func DeriveInverse(n [2]Name) [2]Name {
	return [2]Name{n[1], n[0]}
}

// DeriveReduction derives the axis names of a symmetric statistical reduction
// (covariance, correlation) along the given 1-based axis. Reducing along the
// row axis leaves a square result over the column axis and vice versa. Any
// other axis value yields the fully anonymous pair; axis validation itself is
// the backend's job, not the deriver's.
func DeriveReduction(n [2]Name, axis int) [2]Name {
	switch axis {
	case 1:
		return [2]Name{n[1], n[1]}
	case 2:
		return [2]Name{n[0], n[0]}
	default:
		return [2]Name{Wildcard, Wildcard}
	}
}
