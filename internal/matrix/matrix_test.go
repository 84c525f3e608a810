package matrix

import (
	"math"
	"os"
	"testing"
	"unsafe"

	"github.com/scottcoutts/scrappie/internal/logger"
)

func TestMain(m *testing.M) {
	// Failure-path tests provoke diagnostics on purpose.
	SetLogger(logger.Discard())
	os.Exit(m.Run())
}

func TestNewPadsToVectorWidth(t *testing.T) {
	cases := []struct {
		rows, cols, stride int
	}{
		{1, 1, 4},
		{4, 1, 4},
		{5, 1, 8},
		{8, 3, 8},
		{9, 2, 12},
	}
	for _, tc := range cases {
		m := New(tc.rows, tc.cols)
		if m == nil {
			t.Fatalf("New(%d, %d) returned nil", tc.rows, tc.cols)
		}
		if m.Stride != tc.stride {
			t.Errorf("New(%d, %d): stride = %d, want %d", tc.rows, tc.cols, m.Stride, tc.stride)
		}
		if got, want := len(m.Data), tc.stride*tc.cols; got != want {
			t.Errorf("New(%d, %d): len(Data) = %d, want %d", tc.rows, tc.cols, got, want)
		}
		for i, v := range m.Data {
			if v != 0 {
				t.Fatalf("New(%d, %d): Data[%d] = %v, want zero", tc.rows, tc.cols, i, v)
			}
		}
	}
}

func TestNewAligned(t *testing.T) {
	for _, rows := range []int{1, 5, 7, 16} {
		m := New(rows, 3)
		addr := uintptr(unsafe.Pointer(&m.Data[0]))
		if addr%alignBytes != 0 {
			t.Errorf("rows=%d: buffer at %#x not %d-byte aligned", rows, addr, alignBytes)
		}
	}
}

func TestNewRejectsBadShape(t *testing.T) {
	if m := New(0, 3); m != nil {
		t.Error("New(0, 3) should return nil")
	}
	if m := New(3, -1); m != nil {
		t.Error("New(3, -1) should return nil")
	}
	if m := New(math.MaxInt/2, 8); m != nil {
		t.Error("overflowing shape should return nil")
	}
}

func TestRemakeReusesWithoutClearing(t *testing.T) {
	m := New(5, 2)
	m.Data[0] = 7

	got := Remake(m, 5, 2)
	if got != m {
		t.Fatal("Remake with matching shape should return the same container")
	}
	if got.Data[0] != 7 {
		t.Error("Remake reuse must not clear existing contents")
	}
}

func TestRemakeReallocates(t *testing.T) {
	m := New(5, 2)
	got := Remake(m, 6, 2)
	if got == m {
		t.Fatal("Remake with a different shape should allocate")
	}
	if got.Rows != 6 || got.Cols != 2 || got.Stride != 8 {
		t.Errorf("unexpected shape after Remake: %+v", got)
	}
	if fresh := Remake(nil, 3, 3); fresh == nil || fresh.Rows != 3 {
		t.Error("Remake(nil, ...) should create a fresh container")
	}
}

func TestCloneCopiesPadding(t *testing.T) {
	m := New(5, 1)
	for i := range m.Data {
		m.Data[i] = float32(i + 1) // includes padding rows 5..7
	}
	c := m.Clone()
	if c == m {
		t.Fatal("Clone returned the same container")
	}
	for i := range m.Data {
		if c.Data[i] != m.Data[i] {
			t.Fatalf("Data[%d] = %v, want %v", i, c.Data[i], m.Data[i])
		}
	}
	c.Data[0] = -1
	if m.Data[0] == -1 {
		t.Error("Clone must not alias the source buffer")
	}
	if got := (*Matrix)(nil).Clone(); got != nil {
		t.Error("Clone of nil should be nil")
	}
}

func TestZero(t *testing.T) {
	m := New(5, 2)
	for i := range m.Data {
		m.Data[i] = 3
	}
	m.Zero()
	for i, v := range m.Data {
		if v != 0 {
			t.Fatalf("Data[%d] = %v after Zero", i, v)
		}
	}
	(*Matrix)(nil).Zero() // must not panic
}

func TestFreeIdempotent(t *testing.T) {
	m := New(2, 2)
	m = m.Free()
	if m != nil {
		t.Fatal("Free should return the nil sentinel")
	}
	m = m.Free()
	if m != nil {
		t.Fatal("Free on nil should stay nil")
	}
}

func TestIntMatrixLifecycle(t *testing.T) {
	m := NewInt(5, 2)
	if m == nil || m.Stride != 8 || len(m.Data) != 16 {
		t.Fatalf("unexpected integer matrix: %+v", m)
	}
	m.Data[3] = 9

	c := m.Clone()
	if c.Data[3] != 9 {
		t.Error("Clone lost contents")
	}
	if same := RemakeInt(m, 5, 2); same != m {
		t.Error("RemakeInt should reuse a matching container")
	}
	if grown := RemakeInt(m, 9, 2); grown == m || grown.Stride != 12 {
		t.Error("RemakeInt should reallocate on shape change")
	}
	c.Zero()
	if c.Data[3] != 0 {
		t.Error("Zero left contents behind")
	}
	if c = c.Free(); c != nil {
		t.Error("Free should return nil")
	}
	if NewInt(0, 1) != nil {
		t.Error("NewInt(0, 1) should return nil")
	}
}
