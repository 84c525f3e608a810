package matrix

// IMatrix is the int32 counterpart of Matrix: same column-major layout, same
// row padding, same nil-sentinel lifecycle. It carries discrete intermediate
// state (encoded bases, traceback indices) and has no arithmetic kernels.
type IMatrix struct {
	Rows, Cols int
	Stride     int
	Data       []int32
}

// NewInt allocates a zero-initialised rows x cols integer matrix. Failure
// semantics match New.
func NewInt(rows, cols int) *IMatrix {
	if rows <= 0 || cols <= 0 {
		diag.Warn("refusing integer matrix with non-positive shape", "rows", rows, "cols", cols)
		return nil
	}
	stride := paddedStride(rows, cols)
	if stride < 0 {
		diag.Warn("integer matrix allocation size overflows", "rows", rows, "cols", cols)
		return nil
	}
	return &IMatrix{
		Rows:   rows,
		Cols:   cols,
		Stride: stride,
		Data:   alignedSlice[int32](stride * cols),
	}
}

// RemakeInt reuses m when the logical shape matches, allocating otherwise.
// Reused contents are not cleared.
func RemakeInt(m *IMatrix, rows, cols int) *IMatrix {
	if m == nil || m.Rows != rows || m.Cols != cols {
		m = m.Free()
		m = NewInt(rows, cols)
	}
	return m
}

// Clone deep-copies the matrix, padding included. Nil yields nil.
func (m *IMatrix) Clone() *IMatrix {
	if m == nil {
		return nil
	}
	c := NewInt(m.Rows, m.Cols)
	if c == nil {
		return nil
	}
	copy(c.Data, m.Data)
	return c
}

// Zero resets the whole padded buffer. No-op on nil.
func (m *IMatrix) Zero() {
	if m == nil {
		return
	}
	clear(m.Data)
}

// Free drops the backing buffer and returns the nil sentinel. Idempotent.
func (m *IMatrix) Free() *IMatrix {
	if m != nil {
		m.Data = nil
	}
	return nil
}
