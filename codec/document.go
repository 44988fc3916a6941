package codec

import (
	"fmt"

	"github.com/katalvlaran/namedmat/matrix"
	"github.com/katalvlaran/namedmat/named"
)

// MatrixDoc is the flat document form of a named matrix: axis names next to
// the shape and row-major data. Both JSON and YAML codecs serialize it as-is.
type MatrixDoc struct {
	RowName string    `json:"row_name" yaml:"row_name"`
	ColName string    `json:"col_name" yaml:"col_name"`
	Rows    int       `json:"rows" yaml:"rows"`
	Cols    int       `json:"cols" yaml:"cols"`
	Data    []float64 `json:"data" yaml:"data"`
}

// VectorDoc is the flat document form of a named vector.
type VectorDoc struct {
	Name string    `json:"name" yaml:"name"`
	Data []float64 `json:"data" yaml:"data"`
}

// EncodeMatrix flattens a named matrix into its document form. The data is
// copied row-major, so the document does not alias the operand.
func EncodeMatrix(m *named.Matrix) (*MatrixDoc, error) {
	if m == nil || m.Raw() == nil {
		return nil, fmt.Errorf("codec.EncodeMatrix: %w", ErrNilDocument)
	}
	rows, cols := m.Rows(), m.Cols()
	data := make([]float64, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("codec.EncodeMatrix: %w", err)
			}
			data = append(data, v)
		}
	}
	row, col := m.Names()
	return &MatrixDoc{
		RowName: string(row),
		ColName: string(col),
		Rows:    rows,
		Cols:    cols,
		Data:    data,
	}, nil
}

// Decode rebuilds the named matrix from the document, validating the declared
// shape against the data length.
//
// Returns ErrShapeMismatch when Rows*Cols != len(Data), and the backend's
// dimension error for non-positive shapes.
func (d *MatrixDoc) Decode() (*named.Matrix, error) {
	if d == nil {
		return nil, fmt.Errorf("codec.MatrixDoc.Decode: %w", ErrNilDocument)
	}
	if d.Rows*d.Cols != len(d.Data) {
		return nil, fmt.Errorf("codec.MatrixDoc.Decode: %dx%d vs %d values: %w",
			d.Rows, d.Cols, len(d.Data), ErrShapeMismatch)
	}
	raw, err := matrix.NewDenseFromRows(d.Rows, d.Cols, d.Data)
	if err != nil {
		return nil, fmt.Errorf("codec.MatrixDoc.Decode: %w", err)
	}
	return named.Wrap(raw, named.Name(d.RowName), named.Name(d.ColName))
}

// EncodeVector flattens a named vector into its document form. The data is
// copied.
func EncodeVector(v *named.Vector) (*VectorDoc, error) {
	if v == nil || v.Len() == 0 {
		return nil, fmt.Errorf("codec.EncodeVector: %w", ErrNilDocument)
	}
	data := make([]float64, v.Len())
	copy(data, v.Raw())
	return &VectorDoc{Name: string(v.Name()), Data: data}, nil
}

// Decode rebuilds the named vector from the document.
func (d *VectorDoc) Decode() (*named.Vector, error) {
	if d == nil {
		return nil, fmt.Errorf("codec.VectorDoc.Decode: %w", ErrNilDocument)
	}
	return named.WrapVector(d.Data, named.Name(d.Name))
}
