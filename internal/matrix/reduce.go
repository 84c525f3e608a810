package matrix

import "math"

// Reductions scan logical entries only (padding excluded) in column-major
// order with strict comparisons, so the first occurrence wins ties.
//
// Argmax and Argmin return indices in logical column-major coordinates,
// col*Rows+row. This deviates from the reference pipeline, which reported
// offsets into the padded physical layout; those offsets are meaningless to
// callers once padding is present, and no consumer of this module depends on
// them. The convention is pinned by tests.

// Max returns the largest logical entry, or NaN for a nil input.
func Max(m *Matrix) float32 {
	if m == nil {
		// Nil from an earlier failure. Propagate.
		return float32(math.NaN())
	}
	amax := m.Data[0]
	for c := 0; c < m.Cols; c++ {
		off := c * m.Stride
		for r := 0; r < m.Rows; r++ {
			if m.Data[off+r] > amax {
				amax = m.Data[off+r]
			}
		}
	}
	return amax
}

// Min returns the smallest logical entry, or NaN for a nil input.
func Min(m *Matrix) float32 {
	if m == nil {
		return float32(math.NaN())
	}
	amin := m.Data[0]
	for c := 0; c < m.Cols; c++ {
		off := c * m.Stride
		for r := 0; r < m.Rows; r++ {
			if m.Data[off+r] < amin {
				amin = m.Data[off+r]
			}
		}
	}
	return amin
}

// Argmax returns the logical column-major index of the largest entry, or -1
// for a nil input.
func Argmax(m *Matrix) int {
	if m == nil {
		return -1
	}
	amax := m.Data[0]
	imax := 0
	for c := 0; c < m.Cols; c++ {
		off := c * m.Stride
		for r := 0; r < m.Rows; r++ {
			if m.Data[off+r] > amax {
				amax = m.Data[off+r]
				imax = c*m.Rows + r
			}
		}
	}
	return imax
}

// Argmin returns the logical column-major index of the smallest entry, or -1
// for a nil input.
func Argmin(m *Matrix) int {
	if m == nil {
		return -1
	}
	amin := m.Data[0]
	imin := 0
	for c := 0; c < m.Cols; c++ {
		off := c * m.Stride
		for r := 0; r < m.Rows; r++ {
			if m.Data[off+r] < amin {
				amin = m.Data[off+r]
				imin = c*m.Rows + r
			}
		}
	}
	return imin
}
