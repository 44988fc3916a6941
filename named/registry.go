package named

import (
	"reflect"
	"sync"

	"github.com/katalvlaran/namedmat/matrix"
)

// Operation tags for the interop layer.
const (
	opRegister = "named.Register"
	opProduct  = "named.Product"
)

// MatrixPromotion converts one foreign value into a named Matrix. The
// promotion should alias the foreign value's storage where possible; the
// named layer never mutates promoted operands.
type MatrixPromotion func(v any) (*Matrix, error)

// VectorPromotion converts one foreign value into a named Vector.
type VectorPromotion func(v any) (*Vector, error)

// DimNamed is implemented by foreign types that carry their own axis names.
// Promotions built with NewMatrixPromotion / NewVectorPromotion consult it;
// types that do not implement it promote with wildcard names.
type DimNamed interface {
	// DimNames returns the ordered axis names: two for a matrix-like value,
	// one for a vector-like value.
	DimNames() []Name
}

// Registry maps foreign operand types onto promotions so they can take part
// in Product dispatch next to the native wrappers. Registration is
// write-once configuration, typically done in package init; lookups are safe
// for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	matrices map[reflect.Type]MatrixPromotion
	vectors  map[reflect.Type]VectorPromotion
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		matrices: make(map[reflect.Type]MatrixPromotion),
		vectors:  make(map[reflect.Type]VectorPromotion),
	}
}

// RegisterMatrix binds the dynamic type of sample to a matrix promotion.
// Registering the same type twice fails with ErrDuplicateRegistration; the
// first binding stays in force, so load order cannot silently change
// dispatch.
func (r *Registry) RegisterMatrix(sample any, p MatrixPromotion) error {
	if p == nil {
		return namedErrorf(opRegister, ErrNilPromotion)
	}
	t := reflect.TypeOf(sample)
	if t == nil {
		return namedErrorf(opRegister, ErrUnknownOperand)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.matrices[t]; dup {
		return namedErrorf(opRegister, ErrDuplicateRegistration)
	}
	if _, dup := r.vectors[t]; dup {
		return namedErrorf(opRegister, ErrDuplicateRegistration)
	}
	r.matrices[t] = p
	return nil
}

// RegisterVector binds the dynamic type of sample to a vector promotion,
// with the same duplicate policy as RegisterMatrix.
func (r *Registry) RegisterVector(sample any, p VectorPromotion) error {
	if p == nil {
		return namedErrorf(opRegister, ErrNilPromotion)
	}
	t := reflect.TypeOf(sample)
	if t == nil {
		return namedErrorf(opRegister, ErrUnknownOperand)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.matrices[t]; dup {
		return namedErrorf(opRegister, ErrDuplicateRegistration)
	}
	if _, dup := r.vectors[t]; dup {
		return namedErrorf(opRegister, ErrDuplicateRegistration)
	}
	r.vectors[t] = p
	return nil
}

// operand is the resolved form of a Product argument: exactly one of mat or
// vec is set.
type operand struct {
	mat *Matrix
	vec *Vector
}

// resolve maps one Product argument onto a native wrapper. Native wrappers
// pass through untouched; everything else goes through the registered
// promotion for its dynamic type.
func (r *Registry) resolve(v any) (operand, error) {
	switch t := v.(type) {
	case *Matrix:
		if t == nil || t.raw == nil {
			return operand{}, ErrNilMatrix
		}
		return operand{mat: t}, nil
	case *Vector:
		if t == nil || len(t.raw) == 0 {
			return operand{}, ErrNilVector
		}
		return operand{vec: t}, nil
	}
	t := reflect.TypeOf(v)
	if t == nil {
		return operand{}, ErrUnknownOperand
	}
	r.mu.RLock()
	mp, isMat := r.matrices[t]
	vp, isVec := r.vectors[t]
	r.mu.RUnlock()
	switch {
	case isMat:
		m, err := mp(v)
		if err != nil {
			return operand{}, err
		}
		return operand{mat: m}, nil
	case isVec:
		x, err := vp(v)
		if err != nil {
			return operand{}, err
		}
		return operand{vec: x}, nil
	}
	return operand{}, ErrUnknownOperand
}

// Product dispatches a name-checked product over two operands of any
// registered or native type. The pairing decides the kernel:
//
//	matrix * matrix -> MulMM, named Matrix result
//	matrix * vector -> MulMV, named Vector result
//	vector * matrix -> MulVM, named Vector result
//	vector * vector -> ErrUnsupportedProduct (use Dot for the inner product)
//
// Dispatch is deterministic: it depends only on the dynamic types of the
// operands, never on registration order.
func (r *Registry) Product(a, b any) (any, error) {
	left, err := r.resolve(a)
	if err != nil {
		return nil, namedErrorf(opProduct, err)
	}
	right, err := r.resolve(b)
	if err != nil {
		return nil, namedErrorf(opProduct, err)
	}
	switch {
	case left.mat != nil && right.mat != nil:
		return MulMM(left.mat, right.mat)
	case left.mat != nil && right.vec != nil:
		return MulMV(left.mat, right.vec)
	case left.vec != nil && right.mat != nil:
		return MulVM(left.vec, right.mat)
	default:
		return nil, namedErrorf(opProduct, ErrUnsupportedProduct)
	}
}

// NewMatrixPromotion builds a MatrixPromotion from an unwrap callback that
// extracts the raw backend matrix. Axis names come from DimNames when the
// value implements DimNamed (extra names are ignored, missing ones default to
// Wildcard); otherwise both axes are wildcard.
func NewMatrixPromotion(unwrap func(v any) (matrix.Matrix, error)) MatrixPromotion {
	return func(v any) (*Matrix, error) {
		raw, err := unwrap(v)
		if err != nil {
			return nil, err
		}
		row, col := Wildcard, Wildcard
		if dn, ok := v.(DimNamed); ok {
			names := dn.DimNames()
			if len(names) > 0 {
				row = names[0]
			}
			if len(names) > 1 {
				col = names[1]
			}
		}
		return Wrap(raw, row, col)
	}
}

// NewVectorPromotion builds a VectorPromotion from an unwrap callback that
// extracts the raw slice, with the same DimNames handling as
// NewMatrixPromotion.
func NewVectorPromotion(unwrap func(v any) ([]float64, error)) VectorPromotion {
	return func(v any) (*Vector, error) {
		raw, err := unwrap(v)
		if err != nil {
			return nil, err
		}
		name := Wildcard
		if dn, ok := v.(DimNamed); ok {
			if names := dn.DimNames(); len(names) > 0 {
				name = names[0]
			}
		}
		return WrapVector(raw, name)
	}
}

// defaultRegistry backs the package-level registration and Product helpers.
var defaultRegistry = NewRegistry()

// RegisterMatrix binds a matrix promotion in the package-level registry.
func RegisterMatrix(sample any, p MatrixPromotion) error {
	return defaultRegistry.RegisterMatrix(sample, p)
}

// RegisterVector binds a vector promotion in the package-level registry.
func RegisterVector(sample any, p VectorPromotion) error {
	return defaultRegistry.RegisterVector(sample, p)
}

// Product dispatches through the package-level registry.
func Product(a, b any) (any, error) {
	return defaultRegistry.Product(a, b)
}
