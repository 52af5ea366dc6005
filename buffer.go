package vglite

import (
	"fmt"
	"image"
)

// ImageMode selects how a source image combines with the paint color when
// blitted.
type ImageMode uint8

const (
	// ImageModeNormal draws the image as is.
	ImageModeNormal ImageMode = iota
	// ImageModeNone draws the image as is and ignores the paint color.
	ImageModeNone
	// ImageModeMultiply scales the image opacity by the paint color alpha.
	ImageModeMultiply
	// ImageModeStencil uses the image as a stencil for the paint color.
	ImageModeStencil
)

// Swizzle selects the chroma order of YUV buffers.
type Swizzle uint8

const (
	// SwizzleUV stores U before V.
	SwizzleUV Swizzle = iota
	// SwizzleVU stores V before U.
	SwizzleVU
)

// Buffer is a pixel buffer descriptor together with the memory it owns.
//
// Buffers are created by an Allocator and released with Free. Buffers are
// not safe for concurrent mutation; a buffer must not be written while a
// Context or Unpacker reads it.
type Buffer struct {
	Width  int
	Height int
	Stride int
	Format Format

	// Memory holds Stride*Height bytes of pixel data followed by padding up
	// to the allocation alignment.
	Memory []byte

	Tiled     bool
	Swizzle   Swizzle
	ImageMode ImageMode

	// allocated marks buffers whose Memory came from an Allocator.
	allocated bool
}

// Allocator creates buffers with the stride and size rules of the
// VGLite buffer model.
//
// The zero value uses DefaultAddrAlign, no 16-pixel alignment and no size
// limit.
type Allocator struct {
	// AddrAlign is the byte boundary the total allocation is rounded up to.
	// Zero means DefaultAddrAlign.
	AddrAlign int

	// Align16 rounds every row to a multiple of 16 pixels.
	Align16 bool

	// MaxBytes caps a single allocation. Zero means unlimited. Requests above
	// the cap fail with ErrOutOfMemory.
	MaxBytes int
}

// NewBuffer allocates a buffer with the default Allocator.
func NewBuffer(width, height int, f Format) (*Buffer, error) {
	var a Allocator
	return a.Allocate(width, height, f)
}

// Allocate creates a zeroed buffer of the given dimensions and format.
//
// Allocation applies format quirks: ETC2 buffers need a width multiple of 16
// and a height multiple of 4, YUV formats have their height rounded up to 4
// rows with the UV swizzle selected, and tiled YUV formats are additionally
// marked tiled.
func (a *Allocator) Allocate(width, height int, f Format) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("vglite: allocate %dx%d: %w", width, height, ErrInvalidArgument)
	}
	if !f.IsValid() {
		return nil, fmt.Errorf("vglite: allocate %v: %w", f, ErrInvalidArgument)
	}
	if f == FormatRGBA8888ETC2EAC && (width%16 != 0 || height%4 != 0) {
		return nil, fmt.Errorf("vglite: allocate %v %dx%d: %w", f, width, height, ErrInvalidArgument)
	}

	b := &Buffer{
		Width:  width,
		Height: height,
		Format: f,
	}
	switch {
	case f.IsYUV():
		b.Height = alignUp(height, 4)
		b.Swizzle = SwizzleUV
	case f.IsTiledYUV():
		b.Height = alignUp(height, 4)
		b.Tiled = true
		b.Swizzle = SwizzleUV
	}

	b.Stride = ComputeGeometry(f, width, a.Align16).Stride
	mem, err := a.alloc(b.Stride * b.Height)
	if err != nil {
		return nil, err
	}
	b.Memory = mem
	b.allocated = true

	Logger().Debug("vglite: buffer allocated",
		"format", f.String(), "width", b.Width, "height", b.Height,
		"stride", b.Stride, "bytes", len(mem))
	return b, nil
}

// alloc returns size bytes rounded up to the address alignment.
func (a *Allocator) alloc(size int) ([]byte, error) {
	align := a.AddrAlign
	if align <= 0 {
		align = DefaultAddrAlign
	}
	total := alignUp(size, align)
	if total <= 0 || (a.MaxBytes > 0 && total > a.MaxBytes) {
		return nil, fmt.Errorf("vglite: allocate %d bytes: %w", total, ErrOutOfMemory)
	}
	return make([]byte, total), nil
}

// Free releases the buffer memory and clears the descriptor.
// Freeing a buffer that holds no memory returns ErrInvalidArgument.
func (b *Buffer) Free() error {
	if b == nil || b.Memory == nil {
		return fmt.Errorf("vglite: free: %w", ErrInvalidArgument)
	}
	*b = Buffer{}
	return nil
}

// Allocated reports whether the buffer memory came from an Allocator.
func (b *Buffer) Allocated() bool {
	return b.allocated
}

// Row returns the bytes of row y, including padding up to Stride.
// Returns nil if y is out of range.
func (b *Buffer) Row(y int) []byte {
	if y < 0 || y >= b.Height {
		return nil
	}
	start := y * b.Stride
	end := start + b.Stride
	if end > len(b.Memory) {
		return nil
	}
	return b.Memory[start:end]
}

// rowStride returns the row pitch of b, deriving it from the format when the
// descriptor does not carry one.
func (b *Buffer) rowStride() int {
	if b.Stride > 0 {
		return b.Stride
	}
	return ComputeGeometry(b.Format, b.Width, false).Stride
}

// ToImage copies a canonical (BGRA8888) buffer into a new image.RGBA.
// Pixel values are copied unchanged; they are treated as premultiplied.
func (b *Buffer) ToImage() (*image.RGBA, error) {
	if b.Format != CanonicalFormat {
		return nil, fmt.Errorf("vglite: to image %v: %w", b.Format, ErrUnsupportedFormat)
	}
	img := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	stride := b.rowStride()
	for y := 0; y < b.Height; y++ {
		src := b.Memory[y*stride : y*stride+b.Width*4]
		dst := img.Pix[y*img.Stride : y*img.Stride+b.Width*4]
		swapRB(dst, src)
	}
	return img, nil
}

// CopyFromImage writes img into a canonical buffer of the same size.
func (b *Buffer) CopyFromImage(img *image.RGBA) error {
	if b.Format != CanonicalFormat {
		return fmt.Errorf("vglite: copy from image %v: %w", b.Format, ErrUnsupportedFormat)
	}
	r := img.Bounds()
	if r.Dx() != b.Width || r.Dy() != b.Height {
		return fmt.Errorf("vglite: copy from image %v into %dx%d: %w", r.Size(), b.Width, b.Height, ErrInvalidArgument)
	}
	stride := b.rowStride()
	for y := 0; y < b.Height; y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+b.Width*4]
		dst := b.Memory[y*stride : y*stride+b.Width*4]
		swapRB(dst, src)
	}
	return nil
}

// swapRB copies 4-byte pixels from src to dst exchanging bytes 0 and 2,
// converting between BGRA and RGBA byte order.
func swapRB(dst, src []byte) {
	for i := 0; i+3 < len(src) && i+3 < len(dst); i += 4 {
		dst[i+0] = src[i+2]
		dst[i+1] = src[i+1]
		dst[i+2] = src[i+0]
		dst[i+3] = src[i+3]
	}
}
