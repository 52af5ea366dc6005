package vglite

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// Format identifies a pixel encoding.
//
// Channel names follow the VGLite convention: channels are listed from the
// lowest address (byte formats) or least-significant bit (packed formats)
// upward. FormatBGRA8888 therefore stores bytes B, G, R, A, and FormatBGR565
// keeps blue in bits 0-4 of a little-endian 16-bit word.
//
// The OpenVG aliases (FormatVG*) only participate in buffer geometry.
type Format uint16

const (
	FormatRGBA8888 Format = iota
	FormatBGRA8888
	FormatRGBX8888
	FormatBGRX8888
	FormatRGB565
	FormatBGR565
	FormatRGBA4444
	FormatBGRA4444
	FormatBGRA5551
	FormatA4
	FormatA8
	FormatL8
	FormatYUYV

	// Planar and packed YUV. Allocation aligns the height of every format
	// from FormatYUY2 through FormatNV16 to 4 rows.
	FormatYUY2
	FormatNV12
	FormatANV12
	FormatAYUY2
	FormatYV12
	FormatYV24
	FormatYV16
	FormatNV16

	// Tiled YUV. Allocation additionally marks the buffer as tiled.
	FormatYUY2Tiled
	FormatNV12Tiled
	FormatANV12Tiled
	FormatAYUY2Tiled

	FormatIndex1
	FormatIndex2
	FormatIndex4
	FormatIndex8

	FormatRGBA2222
	FormatBGRA2222
	FormatABGR8888
	FormatARGB8888
	FormatABGR4444
	FormatARGB4444
	FormatABGR2222
	FormatARGB2222
	FormatABGR1555
	FormatARGB1555
	FormatRGBA5551
	FormatXBGR8888
	FormatXRGB8888
	FormatRGBA8888ETC2EAC
	FormatRGB888
	FormatBGR888
	FormatABGR8565
	FormatBGRA5658
	FormatARGB8565
	FormatRGBA5658
	FormatABGR8565Planar
	FormatARGB8565Planar
	FormatRGBA5658Planar
	FormatBGRA5658Planar

	// OpenVG image formats.
	FormatVGsRGBX8888
	FormatVGsRGBA8888
	FormatVGsRGBA8888Pre
	FormatVGsRGB565
	FormatVGsRGBA5551
	FormatVGsRGBA4444
	FormatVGsL8
	FormatVGlRGBX8888
	FormatVGlRGBA8888
	FormatVGlRGBA8888Pre
	FormatVGlL8
	FormatVGA8
	FormatVGBW1
	FormatVGA1
	FormatVGA4
	FormatVGsXRGB8888
	FormatVGsARGB8888
	FormatVGsARGB8888Pre
	FormatVGsARGB1555
	FormatVGsARGB4444
	FormatVGlXRGB8888
	FormatVGlARGB8888
	FormatVGlARGB8888Pre
	FormatVGsBGRX8888
	FormatVGsBGRA8888
	FormatVGsBGRA8888Pre
	FormatVGsBGR565
	FormatVGsBGRA5551
	FormatVGsBGRA4444
	FormatVGlBGRX8888
	FormatVGlBGRA8888
	FormatVGlBGRA8888Pre
	FormatVGsXBGR8888
	FormatVGsABGR8888
	FormatVGsABGR8888Pre
	FormatVGsABGR1555
	FormatVGsABGR4444
	FormatVGlXBGR8888
	FormatVGlABGR8888
	FormatVGlABGR8888Pre

	// formatCount is the number of formats (for internal use).
	formatCount
)

// CanonicalFormat is the encoding produced by the unpacker and accepted as
// a render target.
const CanonicalFormat = FormatBGRA8888

// formatInfo is one row of the format table: the bytes-per-pixel ratio
// mul/div and the required stride alignment in bytes.
type formatInfo struct {
	name  string
	mul   int
	div   int
	align int
}

// formatTable drives both geometry and String. Every format has an entry.
var formatTable = [formatCount]formatInfo{
	FormatRGBA8888:        {"RGBA8888", 4, 1, 4},
	FormatBGRA8888:        {"BGRA8888", 4, 1, 4},
	FormatRGBX8888:        {"RGBX8888", 4, 1, 4},
	FormatBGRX8888:        {"BGRX8888", 4, 1, 4},
	FormatRGB565:          {"RGB565", 2, 1, 4},
	FormatBGR565:          {"BGR565", 2, 1, 4},
	FormatRGBA4444:        {"RGBA4444", 2, 1, 4},
	FormatBGRA4444:        {"BGRA4444", 2, 1, 4},
	FormatBGRA5551:        {"BGRA5551", 2, 1, 4},
	FormatA4:              {"A4", 1, 2, 4},
	FormatA8:              {"A8", 1, 1, 4},
	FormatL8:              {"L8", 1, 1, 4},
	FormatYUYV:            {"YUYV", 2, 1, 4},
	FormatYUY2:            {"YUY2", 2, 1, 4},
	FormatNV12:            {"NV12", 3, 1, 4},
	FormatANV12:           {"ANV12", 4, 1, 4},
	FormatAYUY2:           {"AYUY2", 2, 1, 4},
	FormatYV12:            {"YV12", 1, 1, 4},
	FormatYV24:            {"YV24", 1, 1, 4},
	FormatYV16:            {"YV16", 1, 1, 4},
	FormatNV16:            {"NV16", 1, 1, 4},
	FormatYUY2Tiled:       {"YUY2_TILED", 2, 1, 4},
	FormatNV12Tiled:       {"NV12_TILED", 3, 1, 4},
	FormatANV12Tiled:      {"ANV12_TILED", 4, 1, 4},
	FormatAYUY2Tiled:      {"AYUY2_TILED", 2, 1, 4},
	FormatIndex1:          {"INDEX_1", 1, 8, 8},
	FormatIndex2:          {"INDEX_2", 1, 4, 8},
	FormatIndex4:          {"INDEX_4", 1, 2, 8},
	FormatIndex8:          {"INDEX_8", 1, 1, 1},
	FormatRGBA2222:        {"RGBA2222", 1, 1, 4},
	FormatBGRA2222:        {"BGRA2222", 1, 1, 4},
	FormatABGR8888:        {"ABGR8888", 4, 1, 4},
	FormatARGB8888:        {"ARGB8888", 4, 1, 4},
	FormatABGR4444:        {"ABGR4444", 2, 1, 4},
	FormatARGB4444:        {"ARGB4444", 2, 1, 4},
	FormatABGR2222:        {"ABGR2222", 1, 1, 4},
	FormatARGB2222:        {"ARGB2222", 1, 1, 4},
	FormatABGR1555:        {"ABGR1555", 2, 1, 4},
	FormatARGB1555:        {"ARGB1555", 2, 1, 4},
	FormatRGBA5551:        {"RGBA5551", 2, 1, 4},
	FormatXBGR8888:        {"XBGR8888", 4, 1, 4},
	FormatXRGB8888:        {"XRGB8888", 4, 1, 4},
	FormatRGBA8888ETC2EAC: {"RGBA8888_ETC2_EAC", 1, 1, 4},
	FormatRGB888:          {"RGB888", 3, 1, 4},
	FormatBGR888:          {"BGR888", 3, 1, 4},
	FormatABGR8565:        {"ABGR8565", 3, 1, 4},
	FormatBGRA5658:        {"BGRA5658", 3, 1, 4},
	FormatARGB8565:        {"ARGB8565", 3, 1, 4},
	FormatRGBA5658:        {"RGBA5658", 3, 1, 4},
	FormatABGR8565Planar:  {"ABGR8565_PLANAR", 2, 1, 4},
	FormatARGB8565Planar:  {"ARGB8565_PLANAR", 2, 1, 4},
	FormatRGBA5658Planar:  {"RGBA5658_PLANAR", 2, 1, 4},
	FormatBGRA5658Planar:  {"BGRA5658_PLANAR", 2, 1, 4},

	FormatVGsRGBX8888:    {"VG_sRGBX_8888", 4, 1, 4},
	FormatVGsRGBA8888:    {"VG_sRGBA_8888", 4, 1, 4},
	FormatVGsRGBA8888Pre: {"VG_sRGBA_8888_PRE", 4, 1, 4},
	FormatVGsRGB565:      {"VG_sRGB_565", 2, 1, 4},
	FormatVGsRGBA5551:    {"VG_sRGBA_5551", 2, 1, 4},
	FormatVGsRGBA4444:    {"VG_sRGBA_4444", 2, 1, 4},
	FormatVGsL8:          {"VG_sL_8", 1, 1, 4},
	FormatVGlRGBX8888:    {"VG_lRGBX_8888", 4, 1, 4},
	FormatVGlRGBA8888:    {"VG_lRGBA_8888", 4, 1, 4},
	FormatVGlRGBA8888Pre: {"VG_lRGBA_8888_PRE", 4, 1, 4},
	FormatVGlL8:          {"VG_lL_8", 1, 1, 4},
	FormatVGA8:           {"VG_A_8", 1, 1, 4},
	FormatVGBW1:          {"VG_BW_1", 1, 2, 4},
	FormatVGA1:           {"VG_A_1", 1, 2, 4},
	FormatVGA4:           {"VG_A_4", 1, 2, 4},
	FormatVGsXRGB8888:    {"VG_sXRGB_8888", 4, 1, 4},
	FormatVGsARGB8888:    {"VG_sARGB_8888", 4, 1, 4},
	FormatVGsARGB8888Pre: {"VG_sARGB_8888_PRE", 4, 1, 4},
	FormatVGsARGB1555:    {"VG_sARGB_1555", 2, 1, 4},
	FormatVGsARGB4444:    {"VG_sARGB_4444", 2, 1, 4},
	FormatVGlXRGB8888:    {"VG_lXRGB_8888", 4, 1, 4},
	FormatVGlARGB8888:    {"VG_lARGB_8888", 4, 1, 4},
	FormatVGlARGB8888Pre: {"VG_lARGB_8888_PRE", 4, 1, 4},
	FormatVGsBGRX8888:    {"VG_sBGRX_8888", 4, 1, 4},
	FormatVGsBGRA8888:    {"VG_sBGRA_8888", 4, 1, 4},
	FormatVGsBGRA8888Pre: {"VG_sBGRA_8888_PRE", 4, 1, 4},
	FormatVGsBGR565:      {"VG_sBGR_565", 2, 1, 4},
	FormatVGsBGRA5551:    {"VG_sBGRA_5551", 2, 1, 4},
	FormatVGsBGRA4444:    {"VG_sBGRA_4444", 2, 1, 4},
	FormatVGlBGRX8888:    {"VG_lBGRX_8888", 4, 1, 4},
	FormatVGlBGRA8888:    {"VG_lBGRA_8888", 4, 1, 4},
	FormatVGlBGRA8888Pre: {"VG_lBGRA_8888_PRE", 4, 1, 4},
	FormatVGsXBGR8888:    {"VG_sXBGR_8888", 4, 1, 4},
	FormatVGsABGR8888:    {"VG_sABGR_8888", 4, 1, 4},
	FormatVGsABGR8888Pre: {"VG_sABGR_8888_PRE", 4, 1, 4},
	FormatVGsABGR1555:    {"VG_sABGR_1555", 2, 1, 4},
	FormatVGsABGR4444:    {"VG_sABGR_4444", 2, 1, 4},
	FormatVGlXBGR8888:    {"VG_lXBGR_8888", 4, 1, 4},
	FormatVGlABGR8888:    {"VG_lABGR_8888", 4, 1, 4},
	FormatVGlABGR8888Pre: {"VG_lABGR_8888_PRE", 4, 1, 4},
}

// IsValid reports whether f is a known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// Bytes returns the byte multiplier, byte divisor and required stride
// alignment of f. A row of w pixels occupies w*mul/div bytes before
// alignment. Unknown formats report (1, 1, 4).
func (f Format) Bytes() (mul, div, align int) {
	if !f.IsValid() {
		return 1, 1, 4
	}
	info := formatTable[f]
	return info.mul, info.div, info.align
}

// String returns the VGLite name of the format.
func (f Format) String() string {
	if !f.IsValid() {
		return fmt.Sprintf("Format(%d)", uint16(f))
	}
	return formatTable[f].name
}

// IsIndexed reports whether f stores palette indices.
func (f Format) IsIndexed() bool {
	return f >= FormatIndex1 && f <= FormatIndex8
}

// IndexBits returns the bit width of one palette index, or 0 for
// non-indexed formats.
func (f Format) IndexBits() int {
	switch f {
	case FormatIndex1:
		return 1
	case FormatIndex2:
		return 2
	case FormatIndex4:
		return 4
	case FormatIndex8:
		return 8
	default:
		return 0
	}
}

// PaletteSize returns the number of palette entries an indexed format
// addresses: 2, 4, 16 or 256. Non-indexed formats return 0.
func (f Format) PaletteSize() int {
	bits := f.IndexBits()
	if bits == 0 {
		return 0
	}
	return 1 << bits
}

// IsAlphaOnly reports whether f carries only coverage (A4, A8).
func (f Format) IsAlphaOnly() bool {
	return f == FormatA4 || f == FormatA8
}

// IsYUV reports whether f is one of the linear YUV formats whose allocation
// forces 4-row height alignment.
func (f Format) IsYUV() bool {
	return f >= FormatYUY2 && f <= FormatNV16
}

// IsTiledYUV reports whether f is a tiled YUV format.
func (f Format) IsTiledYUV() bool {
	return f >= FormatYUY2Tiled && f <= FormatAYUY2Tiled
}

// TextureFormat returns the GPU texture format that matches the memory
// layout of f, or gputypes.TextureFormatUndefined when no native texture
// format exists and the buffer must be unpacked first.
func (f Format) TextureFormat() gputypes.TextureFormat {
	switch f {
	case FormatBGRA8888:
		return gputypes.TextureFormatBGRA8Unorm
	case FormatRGBA8888:
		return gputypes.TextureFormatRGBA8Unorm
	case FormatA8, FormatL8:
		return gputypes.TextureFormatR8Unorm
	default:
		return gputypes.TextureFormatUndefined
	}
}
