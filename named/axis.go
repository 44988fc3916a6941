package named

// Axis selects one dimension of a named Matrix either positionally (1-based,
// matching the backend's convention) or by axis name. The zero value is not a
// valid selector; construct with AxisIndex or AxisName.
type Axis struct {
	name   Name
	index  int
	byName bool
}

// AxisIndex selects a dimension by its 1-based position: 1 for rows, 2 for
// columns. The value is passed to the backend unchecked; out-of-range indices
// surface as the backend's own axis error.
func AxisIndex(i int) Axis {
	return Axis{index: i}
}

// AxisName selects a dimension by its axis name. Resolution happens against a
// concrete operand's names at dispatch time.
func AxisName(n Name) Axis {
	return Axis{name: normalize(n), byName: true}
}

// ResolveAxis maps ax onto a 1-based dimension index for m. Positional axes
// pass through untouched. Named axes match the row name first, then the
// column name, so on a matrix whose two axes share a name the row axis wins.
// The wildcard selects nothing: an unnamed axis can only be addressed
// positionally.
//
// Returns ErrBadAxis when a named axis matches neither dimension.
func (m *Matrix) ResolveAxis(ax Axis) (int, error) {
	if !ax.byName {
		return ax.index, nil
	}
	if ax.name == Wildcard {
		return 0, ErrBadAxis
	}
	switch ax.name {
	case m.names[0]:
		return 1, nil
	case m.names[1]:
		return 2, nil
	}
	return 0, ErrBadAxis
}
