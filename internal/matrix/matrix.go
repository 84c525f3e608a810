package matrix

import (
	"github.com/scottcoutts/scrappie/internal/logger"
)

// VecWidth is the number of float32 lanes in one SIMD vector group. Physical
// row counts are always a multiple of this.
const VecWidth = 4

// Matrix is a dense column-major float32 matrix with row padding.
//
// Rows and Cols describe the logical shape. Stride is the physical row count,
// the smallest multiple of VecWidth that is >= Rows; element (r, c) lives at
// Data[c*Stride+r]. Data has length Stride*Cols and its first element is
// 16-byte aligned. Padding rows (Rows..Stride-1 of each column) are zero
// after construction; kernels may rescale them but never read them as values.
type Matrix struct {
	Rows, Cols int
	Stride     int
	Data       []float32
}

var diag = logger.Default()

// SetLogger redirects the package's diagnostic output. Diagnostics are the
// only I/O this package performs.
func SetLogger(l logger.Logger) {
	if l != nil {
		diag = l
	}
}

// paddedStride returns the physical row count for rows logical rows, or -1
// when the padded buffer size rows x cols would overflow.
func paddedStride(rows, cols int) int {
	groups := (rows + VecWidth - 1) / VecWidth
	stride := groups * VecWidth
	if stride/VecWidth != groups {
		return -1
	}
	if n := stride * cols; n/stride != cols {
		return -1
	}
	return stride
}

// New allocates a zero-initialised rows x cols matrix. It returns nil, after
// logging one diagnostic, when the shape is non-positive or the padded buffer
// size overflows. Out-of-memory is not recoverable in Go; the overflow check
// rejects sizes that could wrap before reaching the allocator.
func New(rows, cols int) *Matrix {
	if rows <= 0 || cols <= 0 {
		diag.Warn("refusing matrix with non-positive shape", "rows", rows, "cols", cols)
		return nil
	}
	stride := paddedStride(rows, cols)
	if stride < 0 {
		diag.Warn("matrix allocation size overflows", "rows", rows, "cols", cols)
		return nil
	}
	return &Matrix{
		Rows:   rows,
		Cols:   cols,
		Stride: stride,
		Data:   alignedSlice[float32](stride * cols),
	}
}

// Remake returns a matrix of the requested logical shape, reusing m when its
// shape already matches and allocating otherwise. The reuse path does NOT
// clear the existing contents; callers that need zeroed storage must call
// Zero themselves.
func Remake(m *Matrix, rows, cols int) *Matrix {
	if m == nil || m.Rows != rows || m.Cols != cols {
		m = m.Free()
		m = New(rows, cols)
	}
	return m
}

// Clone deep-copies the matrix, padding included. A nil receiver yields nil.
func (m *Matrix) Clone() *Matrix {
	if m == nil {
		return nil
	}
	c := New(m.Rows, m.Cols)
	if c == nil {
		return nil
	}
	copy(c.Data, m.Data)
	return c
}

// Zero resets the whole padded buffer. No-op on a nil receiver.
func (m *Matrix) Zero() {
	if m == nil {
		return
	}
	clear(m.Data)
}

// Free drops the backing buffer and returns the nil sentinel so call sites
// can unconditionally reassign: m = m.Free(). Idempotent on nil.
func (m *Matrix) Free() *Matrix {
	if m != nil {
		m.Data = nil
	}
	return nil
}

// Groups returns the number of vector groups per column.
func (m *Matrix) Groups() int {
	return m.Stride / VecWidth
}
