package vglite

import (
	"fmt"
	"image/color"
)

// alphaRule says where the alpha of a packed pixel comes from.
type alphaRule uint8

const (
	alphaFromData alphaRule = iota
	alphaOpaque
	alphaZero
)

// channel locates one color component inside a packed little-endian word.
type channel struct {
	shift, bits uint8
}

// expand extracts the channel from v and shifts it into the high bits of a
// byte. Low bits are left zero.
func (c channel) expand(v uint32) uint8 {
	mask := uint32(1)<<c.bits - 1
	return uint8((v>>c.shift)&mask) << (8 - c.bits)
}

// packedLayout describes a format whose pixels are whole bytes wide.
type packedLayout struct {
	size       int
	r, g, b, a channel
	alpha      alphaRule
}

func (l *packedLayout) decode(p []byte) Color {
	var v uint32
	for i := 0; i < l.size; i++ {
		v |= uint32(p[i]) << (8 * i)
	}
	var a uint8
	switch l.alpha {
	case alphaFromData:
		a = l.a.expand(v)
	case alphaOpaque:
		a = 0xFF
	}
	return ARGB(a, l.r.expand(v), l.g.expand(v), l.b.expand(v))
}

var packedLayouts = map[Format]packedLayout{
	FormatRGBA8888: {size: 4, r: channel{0, 8}, g: channel{8, 8}, b: channel{16, 8}, a: channel{24, 8}},
	FormatABGR8888: {size: 4, a: channel{0, 8}, b: channel{8, 8}, g: channel{16, 8}, r: channel{24, 8}},
	FormatARGB8888: {size: 4, a: channel{0, 8}, r: channel{8, 8}, g: channel{16, 8}, b: channel{24, 8}},

	FormatBGRX8888: {size: 4, b: channel{0, 8}, g: channel{8, 8}, r: channel{16, 8}, alpha: alphaZero},
	FormatRGBX8888: {size: 4, r: channel{0, 8}, g: channel{8, 8}, b: channel{16, 8}, alpha: alphaZero},
	FormatXBGR8888: {size: 4, b: channel{8, 8}, g: channel{16, 8}, r: channel{24, 8}, alpha: alphaZero},
	FormatXRGB8888: {size: 4, r: channel{8, 8}, g: channel{16, 8}, b: channel{24, 8}, alpha: alphaZero},

	FormatBGR888: {size: 3, b: channel{0, 8}, g: channel{8, 8}, r: channel{16, 8}, alpha: alphaOpaque},
	FormatRGB888: {size: 3, r: channel{0, 8}, g: channel{8, 8}, b: channel{16, 8}, alpha: alphaOpaque},

	FormatBGR565: {size: 2, b: channel{0, 5}, g: channel{5, 6}, r: channel{11, 5}, alpha: alphaOpaque},
	FormatRGB565: {size: 2, r: channel{0, 5}, g: channel{5, 6}, b: channel{11, 5}, alpha: alphaOpaque},

	// The alpha byte of the 24-bit 565 forms is ignored.
	FormatBGRA5658: {size: 3, b: channel{0, 5}, g: channel{5, 6}, r: channel{11, 5}, alpha: alphaOpaque},
	FormatRGBA5658: {size: 3, r: channel{0, 5}, g: channel{5, 6}, b: channel{11, 5}, alpha: alphaOpaque},
	FormatABGR8565: {size: 3, b: channel{8, 5}, g: channel{13, 6}, r: channel{19, 5}, alpha: alphaOpaque},
	FormatARGB8565: {size: 3, r: channel{8, 5}, g: channel{13, 6}, b: channel{19, 5}, alpha: alphaOpaque},

	FormatRGBA4444: {size: 2, r: channel{0, 4}, g: channel{4, 4}, b: channel{8, 4}, a: channel{12, 4}},
	FormatBGRA4444: {size: 2, b: channel{0, 4}, g: channel{4, 4}, r: channel{8, 4}, a: channel{12, 4}},
	FormatABGR4444: {size: 2, a: channel{0, 4}, b: channel{4, 4}, g: channel{8, 4}, r: channel{12, 4}},
	FormatARGB4444: {size: 2, a: channel{0, 4}, r: channel{4, 4}, g: channel{8, 4}, b: channel{12, 4}},

	FormatRGBA5551: {size: 2, r: channel{0, 5}, g: channel{5, 5}, b: channel{10, 5}, a: channel{15, 1}},
	FormatBGRA5551: {size: 2, b: channel{0, 5}, g: channel{5, 5}, r: channel{10, 5}, a: channel{15, 1}},
	FormatABGR1555: {size: 2, a: channel{0, 1}, b: channel{1, 5}, g: channel{6, 5}, r: channel{11, 5}},
	FormatARGB1555: {size: 2, a: channel{0, 1}, r: channel{1, 5}, g: channel{6, 5}, b: channel{11, 5}},

	FormatRGBA2222: {size: 1, r: channel{0, 2}, g: channel{2, 2}, b: channel{4, 2}, a: channel{6, 2}},
	FormatBGRA2222: {size: 1, b: channel{0, 2}, g: channel{2, 2}, r: channel{4, 2}, a: channel{6, 2}},
	FormatABGR2222: {size: 1, a: channel{0, 2}, b: channel{2, 2}, g: channel{4, 2}, r: channel{6, 2}},
	FormatARGB2222: {size: 1, a: channel{0, 2}, r: channel{2, 2}, g: channel{4, 2}, b: channel{6, 2}},
}

// CanUnpack reports whether the unpacker understands f.
func CanUnpack(f Format) bool {
	if _, ok := packedLayouts[f]; ok {
		return true
	}
	switch f {
	case FormatBGRA8888, FormatA4, FormatA8, FormatL8,
		FormatYUYV, FormatYUY2, FormatYUY2Tiled:
		return true
	}
	return f.IsIndexed()
}

// Unpacker converts buffers of any supported encoding into canonical
// BGRA8888 buffers.
//
// The returned buffer (unless it is the source itself) aliases scratch memory
// owned by the Unpacker and stays valid until the next call to Unpack. An
// Unpacker is not safe for concurrent use.
type Unpacker struct {
	// Align16 selects the 16-pixel row rule when computing the row stride of
	// indexed sources.
	Align16 bool

	scratch []byte
	out     Buffer
}

// Unpack decodes src into a canonical buffer.
//
// BGRA8888 sources are returned by reference. Indexed sources look up colors
// in palette; alpha-only sources weight tint by their coverage. Sources with
// unknown encodings fail with ErrUnsupportedFormat.
func (u *Unpacker) Unpack(src *Buffer, palette Palette, tint Color) (*Buffer, error) {
	if src == nil || src.Width <= 0 || src.Height <= 0 {
		return nil, fmt.Errorf("vglite: unpack: %w", ErrInvalidArgument)
	}
	if src.Format == CanonicalFormat {
		if err := checkExtent(src, src.rowStride()); err != nil {
			return nil, err
		}
		return src, nil
	}
	if !CanUnpack(src.Format) {
		Logger().Warn("vglite: unpack: unsupported format", "format", src.Format.String())
		return nil, fmt.Errorf("vglite: unpack %v: %w", src.Format, ErrUnsupportedFormat)
	}

	stride := src.rowStride()
	if src.Format.IsIndexed() {
		stride = ComputeGeometry(src.Format, src.Width, u.Align16).Stride
	}
	if err := checkExtent(src, stride); err != nil {
		return nil, err
	}

	dst := u.target(src.Width, src.Height)
	var err error
	switch f := src.Format; {
	case f.IsIndexed():
		err = unpackIndexed(dst, src, stride, palette)
	case f == FormatA8:
		unpackA8(dst, src, stride, tint)
	case f == FormatA4:
		unpackA4(dst, src, stride, tint)
	case f == FormatL8:
		unpackL8(dst, src, stride)
	case f == FormatYUYV || f == FormatYUY2 || f == FormatYUY2Tiled:
		unpackYUV422(dst, src, stride, src.Tiled || f == FormatYUY2Tiled)
	default:
		layout := packedLayouts[f]
		unpackPacked(dst, src, stride, &layout)
	}
	if err != nil {
		return nil, err
	}
	return dst, nil
}

// checkExtent verifies that src.Memory covers every row the decoder reads.
func checkExtent(src *Buffer, stride int) error {
	need := (src.Height-1)*stride + MinRowBytes(src.Format, src.Width)
	if len(src.Memory) < need {
		return fmt.Errorf("vglite: unpack %v %dx%d: memory holds %d bytes, need %d: %w",
			src.Format, src.Width, src.Height, len(src.Memory), need, ErrInvalidArgument)
	}
	return nil
}

// target resizes the scratch image, growing its backing store only when the
// previous allocation is too small.
func (u *Unpacker) target(width, height int) *Buffer {
	size := width * 4 * height
	if cap(u.scratch) < size {
		u.scratch = make([]byte, size)
	}
	u.out = Buffer{
		Width:  width,
		Height: height,
		Stride: width * 4,
		Format: CanonicalFormat,
		Memory: u.scratch[:size],
	}
	return &u.out
}

// unpackIndexed walks indices most-significant bit first, wrapping to the
// next byte once the current one is consumed.
func unpackIndexed(dst, src *Buffer, stride int, palette Palette) error {
	bits := uint(src.Format.IndexBits())
	mask := byte(1)<<bits - 1
	for y := 0; y < src.Height; y++ {
		in := src.Memory[y*stride:]
		out := dst.Memory[y*dst.Stride:]
		pos := 0
		shift := int(8 - bits)
		for x := 0; x < src.Width; x++ {
			idx := int(in[pos]>>uint(shift)) & int(mask)
			if idx >= len(palette) {
				return fmt.Errorf("vglite: unpack %v: index %d outside palette of %d: %w",
					src.Format, idx, len(palette), ErrInvalidArgument)
			}
			putColor(out[x*4:], palette[idx])
			shift -= int(bits)
			if shift < 0 {
				shift = int(8 - bits)
				pos++
			}
		}
	}
	return nil
}

func unpackA8(dst, src *Buffer, stride int, tint Color) {
	for y := 0; y < src.Height; y++ {
		in := src.Memory[y*stride:]
		out := dst.Memory[y*dst.Stride:]
		for x := 0; x < src.Width; x++ {
			putColor(out[x*4:], tintCoverage(tint, in[x]))
		}
	}
}

func unpackA4(dst, src *Buffer, stride int, tint Color) {
	for y := 0; y < src.Height; y++ {
		in := src.Memory[y*stride:]
		out := dst.Memory[y*dst.Stride:]
		for x := 0; x < src.Width; x++ {
			b := in[x/2]
			var cov uint8
			if x%2 == 0 {
				cov = b & 0xF0
			} else {
				cov = (b & 0x0F) << 4
			}
			putColor(out[x*4:], tintCoverage(tint, cov))
		}
	}
}

// tintCoverage returns the premultiplied tint RGB at coverage cov. The
// coverage becomes the alpha; the tint's own alpha does not take part.
func tintCoverage(tint Color, cov uint8) Color {
	c := uint32(cov)
	return ARGB(
		cov,
		udiv255(uint32(tint.R())*c),
		udiv255(uint32(tint.G())*c),
		udiv255(uint32(tint.B())*c),
	)
}

func unpackL8(dst, src *Buffer, stride int) {
	for y := 0; y < src.Height; y++ {
		in := src.Memory[y*stride:]
		out := dst.Memory[y*dst.Stride:]
		for x := 0; x < src.Width; x++ {
			l := in[x]
			putColor(out[x*4:], ARGB(0xFF, l, l, l))
		}
	}
}

func unpackPacked(dst, src *Buffer, stride int, l *packedLayout) {
	for y := 0; y < src.Height; y++ {
		in := src.Memory[y*stride:]
		out := dst.Memory[y*dst.Stride:]
		for x := 0; x < src.Width; x++ {
			putColor(out[x*4:], l.decode(in[x*l.size:]))
		}
	}
}

// yuvTileSize is the edge length in pixels of a tiled 4:2:2 tile. A tile
// holds 4 rows of 8 bytes and tiles follow each other left to right.
const yuvTileSize = 4

// unpackYUV422 converts packed Y0 U Y1 V macropixels. SwizzleVU swaps the
// chroma bytes.
func unpackYUV422(dst, src *Buffer, stride int, tiled bool) {
	offset := func(x, y int) int {
		x &^= 1
		if !tiled {
			return y*stride + x*2
		}
		tileRow := (y / yuvTileSize) * stride * yuvTileSize
		tile := (x / yuvTileSize) * yuvTileSize * yuvTileSize * 2
		return tileRow + tile + (y%yuvTileSize)*yuvTileSize*2 + (x%yuvTileSize)*2
	}
	for y := 0; y < src.Height; y++ {
		out := dst.Memory[y*dst.Stride:]
		for x := 0; x < src.Width; x++ {
			off := offset(x, y)
			if off+3 >= len(src.Memory) {
				putColor(out[x*4:], Black)
				continue
			}
			p := src.Memory[off : off+4]
			luma := p[0]
			if x%2 == 1 {
				luma = p[2]
			}
			cb, cr := p[1], p[3]
			if src.Swizzle == SwizzleVU {
				cb, cr = cr, cb
			}
			r, g, b := color.YCbCrToRGB(luma, cb, cr)
			putColor(out[x*4:], ARGB(0xFF, r, g, b))
		}
	}
}
