package matrix

import (
	"fmt"
	"math"
	"path/filepath"
	"runtime"
)

// boundSlack absorbs one float32 ulp-at-one of rounding when checking bounds,
// matching the FLT_EPSILON slack of the reference pipeline.
const boundSlack = 1.1920929e-07

// Unspecified encodes an absent bound or mask value in the validation
// helpers: NaN never participates in a check.
func Unspecified() float32 {
	return float32(math.NaN())
}

func isNaN32(v float32) bool { return v != v }

func isFinite32(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// callerLocation names the call site of an exported validation helper.
func callerLocation() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "?"
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}

// Validate checks, in order: padding rows equal mask (when mask is
// specified), logical entries finite (when onlyFinite), logical entries
// >= lower-slack and <= upper+slack (when the bound is specified). Bounds and
// mask use Unspecified() / NaN to opt out. The scan is row-major within each
// column, columns in order, so the first reported violation is deterministic.
//
// The first violation is logged with the caller's location and the offending
// value, and false is returned. A nil matrix is a reported failure, not a
// crash. Under the nochecks build tag the function always returns true.
func Validate(m *Matrix, lower, upper, mask float32, onlyFinite bool) bool {
	if !checksEnabled {
		return true
	}
	loc := callerLocation()
	if m == nil {
		diag.Warn("validate: nil matrix", "caller", loc)
		return false
	}

	ld := m.Stride
	if !isNaN32(mask) {
		for c := 0; c < m.Cols; c++ {
			off := c * ld
			for r := m.Rows; r < ld; r++ {
				if m.Data[off+r] != mask {
					diag.Warn("validate: padding violates mask",
						"caller", loc, "row", r, "col", c, "value", m.Data[off+r])
					return false
				}
			}
		}
	}
	if onlyFinite {
		for c := 0; c < m.Cols; c++ {
			off := c * ld
			for r := 0; r < m.Rows; r++ {
				if !isFinite32(m.Data[off+r]) {
					diag.Warn("validate: non-finite entry",
						"caller", loc, "row", r, "col", c, "value", m.Data[off+r])
					return false
				}
			}
		}
	}
	if !isNaN32(lower) {
		for c := 0; c < m.Cols; c++ {
			off := c * ld
			for r := 0; r < m.Rows; r++ {
				if m.Data[off+r]+boundSlack < lower {
					diag.Warn("validate: entry below lower bound",
						"caller", loc, "row", r, "col", c,
						"value", m.Data[off+r], "excess", m.Data[off+r]-lower)
					return false
				}
			}
		}
	}
	if !isNaN32(upper) {
		for c := 0; c < m.Cols; c++ {
			off := c * ld
			for r := 0; r < m.Rows; r++ {
				if m.Data[off+r] > upper+boundSlack {
					diag.Warn("validate: entry above upper bound",
						"caller", loc, "row", r, "col", c,
						"value", m.Data[off+r], "excess", m.Data[off+r]-upper)
					return false
				}
			}
		}
	}
	return true
}

// ValidateSlice bound-checks a flat unpadded vector. NaN bounds are
// unspecified. Nil input is a reported failure. Always true under nochecks.
func ValidateSlice(vec []float32, lower, upper float32) bool {
	if !checksEnabled {
		return true
	}
	loc := callerLocation()
	if vec == nil {
		diag.Warn("validate: nil vector", "caller", loc)
		return false
	}
	if !isNaN32(lower) {
		for i, v := range vec {
			if v < lower {
				diag.Warn("validate: vector entry below lower bound",
					"caller", loc, "index", i, "value", v)
				return false
			}
		}
	}
	if !isNaN32(upper) {
		for i, v := range vec {
			if v > upper {
				diag.Warn("validate: vector entry above upper bound",
					"caller", loc, "index", i, "value", v)
				return false
			}
		}
	}
	return true
}

// ValidateIntSlice bound-checks a flat integer vector against an inclusive
// range. Nil input is a reported failure. Always true under nochecks.
func ValidateIntSlice(vec []int32, lower, upper int32) bool {
	if !checksEnabled {
		return true
	}
	loc := callerLocation()
	if vec == nil {
		diag.Warn("validate: nil vector", "caller", loc)
		return false
	}
	for i, v := range vec {
		if v < lower {
			diag.Warn("validate: vector entry below lower bound",
				"caller", loc, "index", i, "value", v)
			return false
		}
	}
	for i, v := range vec {
		if v > upper {
			diag.Warn("validate: vector entry above upper bound",
				"caller", loc, "index", i, "value", v)
			return false
		}
	}
	return true
}

// Equal reports whether every pair of logical entries differs by at most tol
// in absolute value. Two nils are equal, one nil is not, shape mismatch is
// not. Padding is never compared.
//
// This is an approximate-equality predicate under the '==' convention; it is
// not an ordering and must not seed a sort comparator.
func Equal(a, b *Matrix, tol float32) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Rows != b.Rows || a.Cols != b.Cols {
		return false
	}
	for c := 0; c < a.Cols; c++ {
		aOff := c * a.Stride
		bOff := c * b.Stride
		for r := 0; r < a.Rows; r++ {
			d := a.Data[aOff+r] - b.Data[bOff+r]
			if d < 0 {
				d = -d
			}
			if d > tol {
				return false
			}
		}
	}
	return true
}
