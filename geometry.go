package vglite

// DefaultAddrAlign is the byte boundary total buffer sizes are rounded to.
const DefaultAddrAlign = 64

// pixelAlign is the width granularity applied when the 16-pixel alignment
// feature is enabled.
const pixelAlign = 16

// Geometry describes the row layout of a buffer.
type Geometry struct {
	// Stride is the number of bytes per row, including padding.
	Stride int

	// Mul and Div give the bytes-per-pixel ratio (Mul/Div).
	Mul, Div int

	// Align is the byte alignment Stride satisfies.
	Align int
}

// ComputeGeometry returns the row layout for width pixels of format f.
//
// When align16 is set the width is first rounded up to a multiple of 16
// pixels, mirroring hardware that fetches 16-pixel groups.
func ComputeGeometry(f Format, width int, align16 bool) Geometry {
	mul, div, align := f.Bytes()
	if align16 {
		width = alignUp(width, pixelAlign)
	}
	return Geometry{
		Stride: alignUp(MinRowBytes(f, width), align),
		Mul:    mul,
		Div:    div,
		Align:  align,
	}
}

// MinRowBytes returns the smallest number of bytes that can hold width
// pixels of f, ignoring alignment. Partial bytes of sub-byte formats are
// rounded up.
func MinRowBytes(f Format, width int) int {
	mul, div, _ := f.Bytes()
	return (width*mul + div - 1) / div
}

// alignUp rounds n up to a multiple of align. align must be a power of two.
func alignUp(n, align int) int {
	if align <= 1 {
		return n
	}
	return (n + align - 1) &^ (align - 1)
}
