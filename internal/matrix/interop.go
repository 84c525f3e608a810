package matrix

// FromSlice builds a matrix from an unpadded column-major slice of exactly
// rows*cols values. Padding rows keep their zero construction default. A
// length mismatch is a programmer error and panics; nil is returned only
// when allocation fails.
func FromSlice(v []float32, rows, cols int) *Matrix {
	if len(v) != rows*cols {
		panic("matrix: flat data length mismatch")
	}
	m := New(rows, cols)
	if m == nil {
		return nil
	}
	for c := 0; c < cols; c++ {
		copy(m.Data[c*m.Stride:c*m.Stride+rows], v[c*rows:(c+1)*rows])
	}
	return m
}

// ToSlice copies the logical region into a fresh unpadded column-major slice
// of length Rows*Cols, discarding padding. Nil receiver yields nil.
func (m *Matrix) ToSlice() []float32 {
	if m == nil {
		return nil
	}
	out := make([]float32, m.Rows*m.Cols)
	for c := 0; c < m.Cols; c++ {
		copy(out[c*m.Rows:(c+1)*m.Rows], m.Data[c*m.Stride:c*m.Stride+m.Rows])
	}
	return out
}
