package named

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/namedmat/matrix"
)

// Name labels one axis of a matrix or vector. Names are plain strings with a
// single distinguished value, Wildcard, which is transparent during
// compatibility checks and is the default for axes nobody bothered to name.
type Name string

// Wildcard is the anonymous axis name. It compares compatible with every
// other name, so operands with unnamed axes always pass the checker.
const Wildcard Name = "_"

// Matrix pairs a raw backend matrix with two ordered axis names: names[0]
// labels the row axis, names[1] the column axis. The raw value is held by
// reference - wrapping and unwrapping never copy numeric data - and the
// wrapper treats it as read-only.
type Matrix struct {
	raw   matrix.Matrix
	names [2]Name
}

// Wrap attaches axis names to a raw matrix. The raw value is aliased, not
// copied. Empty names are normalized to Wildcard.
//
// Returns ErrNilMatrix when raw is nil.
func Wrap(raw matrix.Matrix, rowName, colName Name) (*Matrix, error) {
	if raw == nil {
		return nil, namedErrorf(opWrap, ErrNilMatrix)
	}
	return &Matrix{raw: raw, names: [2]Name{normalize(rowName), normalize(colName)}}, nil
}

// MustWrap is Wrap that panics on error; it exists for literals in examples
// and tests where the operand is known to be non-nil.
func MustWrap(raw matrix.Matrix, rowName, colName Name) *Matrix {
	m, err := Wrap(raw, rowName, colName)
	if err != nil {
		panic(err)
	}
	return m
}

// Raw returns the underlying backend matrix without copying.
func (m *Matrix) Raw() matrix.Matrix { return m.raw }

// Names returns the ordered axis names: row name, column name.
func (m *Matrix) Names() (row, col Name) { return m.names[0], m.names[1] }

// NamePair returns the axis names as a fixed-size array, the form consumed by
// the checker and deriver.
func (m *Matrix) NamePair() [2]Name { return m.names }

// Rows reports the row count of the underlying matrix.
func (m *Matrix) Rows() int { return m.raw.Rows() }

// Cols reports the column count of the underlying matrix.
func (m *Matrix) Cols() int { return m.raw.Cols() }

// At returns the element at (i, j) of the underlying matrix.
func (m *Matrix) At(i, j int) (float64, error) { return m.raw.At(i, j) }

// Rename returns a new wrapper around the same raw matrix with fresh axis
// names. The numeric data is shared, never copied.
func (m *Matrix) Rename(rowName, colName Name) *Matrix {
	return &Matrix{raw: m.raw, names: [2]Name{normalize(rowName), normalize(colName)}}
}

// String renders the axis names and shape, not the data.
func (m *Matrix) String() string {
	if m == nil || m.raw == nil {
		return "named.Matrix(nil)"
	}
	return fmt.Sprintf("named.Matrix[%s x %s](%dx%d)",
		string(m.names[0]), string(m.names[1]), m.raw.Rows(), m.raw.Cols())
}

// Vector pairs a raw slice with a single axis name. As with Matrix, the slice
// is aliased and treated as read-only.
type Vector struct {
	raw  []float64
	name Name
}

// WrapVector attaches an axis name to a raw vector. The slice is aliased, not
// copied. An empty name is normalized to Wildcard.
//
// Returns ErrNilVector when raw is nil or empty.
func WrapVector(raw []float64, name Name) (*Vector, error) {
	if len(raw) == 0 {
		return nil, namedErrorf(opWrap, ErrNilVector)
	}
	return &Vector{raw: raw, name: normalize(name)}, nil
}

// MustWrapVector is WrapVector that panics on error.
func MustWrapVector(raw []float64, name Name) *Vector {
	v, err := WrapVector(raw, name)
	if err != nil {
		panic(err)
	}
	return v
}

// Raw returns the underlying slice without copying.
func (v *Vector) Raw() []float64 { return v.raw }

// Name returns the axis name.
func (v *Vector) Name() Name { return v.name }

// Len reports the element count.
func (v *Vector) Len() int { return len(v.raw) }

// At returns the i-th element, or ErrBadAxis-free bounds error from a plain
// range check.
func (v *Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.raw) {
		return 0, namedErrorf(opAt, matrix.ErrOutOfRange)
	}
	return v.raw[i], nil
}

// Rename returns a new wrapper around the same slice with a fresh axis name.
func (v *Vector) Rename(name Name) *Vector {
	return &Vector{raw: v.raw, name: normalize(name)}
}

// String renders the axis name and length, not the data.
func (v *Vector) String() string {
	if v == nil {
		return "named.Vector(nil)"
	}
	return fmt.Sprintf("named.Vector[%s](%d)", string(v.name), len(v.raw))
}

// normalize maps the empty string onto Wildcard so that the checker only ever
// sees one spelling of "unnamed".
func normalize(n Name) Name {
	if strings.TrimSpace(string(n)) == "" {
		return Wildcard
	}
	return n
}
