package named

import (
	"errors"
	"fmt"
)

// Package-wide sentinel errors. Call sites wrap sentinels with an operation
// tag via namedErrorf; callers unwrap with errors.Is / errors.As.
var (
	// ErrNilMatrix marks a nil named Matrix operand or a nil raw backing value.
	ErrNilMatrix = errors.New("named: matrix is nil")

	// ErrNilVector marks a nil named Vector operand or a nil raw backing slice.
	ErrNilVector = errors.New("named: vector is nil")

	// ErrNameMismatch marks a product whose contracted axes carry different
	// non-wildcard names. The concrete error is always a *NameMismatchError,
	// so both errors.Is(err, ErrNameMismatch) and errors.As with
	// *NameMismatchError work.
	ErrNameMismatch = errors.New("named: dimension name mismatch")

	// ErrBadAxis marks an Axis value that does not resolve against the
	// operand's names.
	ErrBadAxis = errors.New("named: axis does not match any dimension name")

	// ErrUnknownOperand marks a Product operand whose dynamic type is neither
	// a native wrapper nor registered with the Registry.
	ErrUnknownOperand = errors.New("named: operand type is not registered")

	// ErrUnsupportedProduct marks an operand pairing Product cannot dispatch,
	// such as vector * vector.
	ErrUnsupportedProduct = errors.New("named: unsupported operand pairing")

	// ErrDuplicateRegistration marks a second registration for a type already
	// present in a Registry.
	ErrDuplicateRegistration = errors.New("named: operand type already registered")

	// ErrNilPromotion marks a nil promotion callback passed to a Registry.
	ErrNilPromotion = errors.New("named: promotion callback is nil")

	// ErrNilEstimator marks a nil covariance estimator.
	ErrNilEstimator = errors.New("named: covariance estimator is nil")
)

// NameMismatchError reports the two conflicting axis names of a rejected
// product: Left is the name of the left operand's contracted axis, Right the
// name of the right operand's contracted axis. It matches ErrNameMismatch
// under errors.Is.
type NameMismatchError struct {
	Left  Name
	Right Name
}

// Error implements the error interface.
func (e *NameMismatchError) Error() string {
	return fmt.Sprintf("named: dimension name mismatch: %q vs %q", string(e.Left), string(e.Right))
}

// Is reports whether target is the ErrNameMismatch sentinel.
func (e *NameMismatchError) Is(target error) bool {
	return target == ErrNameMismatch
}

// namedErrorf prefixes err with the operation tag, preserving the sentinel
// chain for errors.Is / errors.As.
func namedErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
