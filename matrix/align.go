package matrix

import "unsafe"

const (
	// Alignment is the byte boundary every matrix buffer starts on and is
	// padded to: the width of a 256-bit vector register.
	Alignment = 32

	floatSize = int(unsafe.Sizeof(float32(0)))
)

// alignPad returns the element count whose byte size is n float32 values
// rounded up to a multiple of Alignment.
func alignPad(n int) int {
	bytes := n * floatSize
	return (bytes + Alignment - 1) / Alignment * Alignment / floatSize
}

// allocAligned returns a zeroed slice of alignPad(n) elements whose first
// element sits on an Alignment boundary.
//
// The backing array is over-allocated by one vector minus one element and
// the slice starts at the first aligned address inside it. Heap objects
// are never moved, so the alignment holds for the lifetime of the slice.
func allocAligned(n int) []float32 {
	size := alignPad(n)
	raw := make([]float32, size+Alignment/floatSize-1)

	off := 0
	if rem := int(uintptr(unsafe.Pointer(unsafe.SliceData(raw))) % Alignment); rem != 0 {
		off = (Alignment - rem) / floatSize
	}

	return raw[off : off+size : off+size]
}

// isAligned reports whether buf starts on an Alignment boundary.
func isAligned(buf []float32) bool {
	return uintptr(unsafe.Pointer(unsafe.SliceData(buf)))%Alignment == 0
}
