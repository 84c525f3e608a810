package matrix

import (
	"math"
	"testing"
)

func TestNormalizeColumnSums(t *testing.T) {
	// Rows 1 and 4 exercise the no-padding layout, 5 the padded one.
	for _, rows := range []int{1, 4, 5} {
		const cols = 3
		v := make([]float32, rows*cols)
		for i := range v {
			v[i] = float32(i%7) + 0.5 // strictly positive
		}
		m := FromSlice(v, rows, cols)

		NormalizeColumns(m)

		for c := 0; c < cols; c++ {
			var sum float64
			for r := 0; r < rows; r++ {
				sum += float64(m.Data[c*m.Stride+r])
			}
			if math.Abs(sum-1) > 1e-5 {
				t.Errorf("rows=%d col=%d: sum = %v, want 1", rows, c, sum)
			}
		}
	}
}

func TestNormalizeRescalesPadding(t *testing.T) {
	m := FromSlice([]float32{1, 1, 1, 1, 1}, 5, 1)
	m.Data[6] = 10 // padding must not contribute to the sum

	NormalizeColumns(m)

	for r := 0; r < 5; r++ {
		if got := m.Data[r]; math.Abs(float64(got)-0.2) > 1e-6 {
			t.Errorf("row %d = %v, want 0.2", r, got)
		}
	}
	// The scale is applied across the whole padded column: callers cannot
	// assume zero padding afterwards.
	if got := m.Data[6]; math.Abs(float64(got)-2) > 1e-6 {
		t.Errorf("padding = %v, want rescaled value 2", got)
	}
}

func TestNormalizeZeroSumLeavesNonFinite(t *testing.T) {
	m := New(2, 1) // all zeros
	NormalizeColumns(m)
	if Validate(m, Unspecified(), Unspecified(), Unspecified(), true) {
		t.Error("zero-sum column should leave non-finite values for Validate to catch")
	}
}

func TestNormalizeNil(t *testing.T) {
	NormalizeColumns(nil) // must not panic
}
