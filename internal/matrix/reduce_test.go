package matrix

import (
	"math"
	"testing"
)

// paddedFixture is 5x1 (stride 8) with nonzero padding larger and smaller
// than every logical value, so any reduction touching padding is caught.
func paddedFixture(t *testing.T) *Matrix {
	t.Helper()
	m := FromSlice([]float32{1, 2, 3, 4, 5}, 5, 1)
	m.Data[5] = 100
	m.Data[6] = -100
	m.Data[7] = 100
	return m
}

func TestMaxMinIgnorePadding(t *testing.T) {
	m := paddedFixture(t)
	if got := Max(m); got != 5 {
		t.Errorf("Max = %v, want 5", got)
	}
	if got := Min(m); got != 1 {
		t.Errorf("Min = %v, want 1", got)
	}
}

func TestArgmaxLogicalIndexWithPadding(t *testing.T) {
	// Two columns, 5 logical rows: the maximum sits at row 1 of column 1,
	// logical index 1*5+1 = 6. The physical offset would be 9.
	m := FromSlice([]float32{0, 1, 2, 3, 4, 0, 9, 1, 1, 1}, 5, 2)
	m.Data[5] = 50 // padding of column 0
	if got := Argmax(m); got != 6 {
		t.Errorf("Argmax = %d, want logical index 6", got)
	}

	m.Data[13] = -50 // padding of column 1
	m.Data[2] = -7   // row 2 of column 0, logical index 2
	if got := Argmin(m); got != 2 {
		t.Errorf("Argmin = %d, want logical index 2", got)
	}
}

func TestReduceTieBreak(t *testing.T) {
	m := FromSlice([]float32{3, 3, 1, 1}, 2, 2)
	if got := Argmax(m); got != 0 {
		t.Errorf("first occurrence should win max ties, got %d", got)
	}
	if got := Argmin(m); got != 2 {
		t.Errorf("first occurrence should win min ties, got %d", got)
	}
}

func TestReduceNilSentinels(t *testing.T) {
	if !math.IsNaN(float64(Max(nil))) {
		t.Error("Max(nil) should be NaN")
	}
	if !math.IsNaN(float64(Min(nil))) {
		t.Error("Min(nil) should be NaN")
	}
	if Argmax(nil) != -1 {
		t.Error("Argmax(nil) should be -1")
	}
	if Argmin(nil) != -1 {
		t.Error("Argmin(nil) should be -1")
	}
}
