package vglite

import "image/color"

// Color is a packed 32-bit color laid out as 0xAARRGGBB.
//
// Stored little-endian, a Color has the byte order B, G, R, A, which is the
// canonical buffer layout. Palettes, simple gradient stops, clear colors and
// paint colors all use this type.
type Color uint32

// ARGB packs 8-bit channels into a Color.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// A returns the alpha channel.
func (c Color) A() uint8 { return uint8(c >> 24) }

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c) }

// NRGBA converts c to a non-premultiplied color.NRGBA.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// Premultiplied converts c to a premultiplied color.RGBA, rounding each
// channel.
func (c Color) Premultiplied() color.RGBA {
	a := uint32(c.A())
	return color.RGBA{
		R: uint8((uint32(c.R())*a + 127) / 255),
		G: uint8((uint32(c.G())*a + 127) / 255),
		B: uint8((uint32(c.B())*a + 127) / 255),
		A: uint8(a),
	}
}

// putColor stores c at p[0:4] in canonical byte order.
func putColor(p []byte, c Color) {
	p[0] = c.B()
	p[1] = c.G()
	p[2] = c.R()
	p[3] = c.A()
}

// getColor loads a canonical pixel from p[0:4].
func getColor(p []byte) Color {
	return ARGB(p[3], p[2], p[1], p[0])
}

// Hex parses a color from a hex string "RGB", "RGBA", "RRGGBB" or
// "RRGGBBAA", with an optional leading '#'. Malformed input yields opaque
// black.
func Hex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255

	switch len(hex) {
	case 3:
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4:
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6:
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	case 8:
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
		parseHex(hex[6:8], &a)
	default:
		return Black
	}
	return ARGB(uint8(a), uint8(r), uint8(g), uint8(b))
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return
		}
	}
}

// udiv255 approximates x/255, truncating, for x in [0, 255*255].
func udiv255(x uint32) uint8 {
	return uint8((x * 0x8081) >> 0x17)
}

// Common colors
const (
	Black       Color = 0xFF000000
	White       Color = 0xFFFFFFFF
	Red         Color = 0xFFFF0000
	Green       Color = 0xFF00FF00
	Blue        Color = 0xFF0000FF
	Transparent Color = 0x00000000
)
