package matrix

// NormalizeColumns rescales each column in place so its logical entries sum
// to one (L1 normalisation; no max-subtraction, this is not a softmax).
// Padding rows are excluded from the sum but the scale factor is applied to
// the whole padded column, so padding values end up rescaled rather than
// reset; callers must not assume zero padding afterwards.
//
// A zero-sum column divides by zero and leaves non-finite values behind for
// a later Validate call to report. Nil input is a no-op.
func NormalizeColumns(m *Matrix) {
	if m == nil {
		// Nil from an earlier failure. Propagate.
		return
	}
	for c := 0; c < m.Cols; c++ {
		col := m.Data[c*m.Stride : (c+1)*m.Stride]
		var sum float32
		for r := 0; r < m.Rows; r++ {
			sum += col[r]
		}
		scale := 1 / sum
		for i := range col {
			col[i] *= scale
		}
	}
}
