package matrix

import "unsafe"

// alignBytes is the natural alignment of one vector group.
const alignBytes = VecWidth * 4

// alignedSlice returns a zeroed slice of n 4-byte elements whose first
// element sits on an alignBytes boundary. Go has no aligned allocator, so
// over-allocate by one vector group and trim to the first aligned element.
func alignedSlice[T float32 | int32](n int) []T {
	buf := make([]T, n+VecWidth)
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	off := 0
	if rem := addr % alignBytes; rem != 0 {
		off = int((alignBytes - rem) / 4)
	}
	return buf[off : off+n : off+n]
}
