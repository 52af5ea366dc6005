package vglite

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestStrideAlignmentEveryFormat(t *testing.T) {
	for f := Format(0); f < formatCount; f++ {
		for _, width := range []int{1, 7, 33, 100} {
			for _, align16 := range []bool{false, true} {
				g := ComputeGeometry(f, width, align16)
				if g.Stride%g.Align != 0 {
					t.Errorf("%v width %d align16=%v: stride %d not a multiple of %d",
						f, width, align16, g.Stride, g.Align)
				}
				if min := MinRowBytes(f, width); g.Stride < min {
					t.Errorf("%v width %d: stride %d below minimum %d", f, width, g.Stride, min)
				}
			}
		}
	}
}

func TestComputeGeometry(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		width   int
		align16 bool
		want    int
	}{
		{"bgra8888", FormatBGRA8888, 10, false, 40},
		{"bgra8888 align16", FormatBGRA8888, 17, true, 128},
		{"rgb565", FormatRGB565, 3, false, 8},
		{"a8", FormatA8, 5, false, 8},
		{"index1 partial byte", FormatIndex1, 9, false, 8},
		{"index8 byte aligned", FormatIndex8, 3, false, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeGeometry(tt.format, tt.width, tt.align16).Stride; got != tt.want {
				t.Errorf("stride = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMinRowBytesRoundsUp(t *testing.T) {
	if got := MinRowBytes(FormatIndex1, 9); got != 2 {
		t.Errorf("MinRowBytes(INDEX_1, 9) = %d, want 2", got)
	}
	if got := MinRowBytes(FormatIndex4, 3); got != 2 {
		t.Errorf("MinRowBytes(INDEX_4, 3) = %d, want 2", got)
	}
}

func TestUnknownFormatBytes(t *testing.T) {
	mul, div, align := Format(0xFFFF).Bytes()
	if mul != 1 || div != 1 || align != 4 {
		t.Errorf("Bytes() = (%d, %d, %d), want (1, 1, 4)", mul, div, align)
	}
	if Format(0xFFFF).IsValid() {
		t.Error("IsValid() = true for unknown format")
	}
}

func TestFormatPredicates(t *testing.T) {
	tests := []struct {
		f          Format
		indexed    bool
		palette    int
		alphaOnly  bool
		yuv, tiled bool
	}{
		{FormatBGRA8888, false, 0, false, false, false},
		{FormatIndex1, true, 2, false, false, false},
		{FormatIndex2, true, 4, false, false, false},
		{FormatIndex4, true, 16, false, false, false},
		{FormatIndex8, true, 256, false, false, false},
		{FormatA4, false, 0, true, false, false},
		{FormatA8, false, 0, true, false, false},
		{FormatNV12, false, 0, false, true, false},
		{FormatYUY2Tiled, false, 0, false, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.f.String(), func(t *testing.T) {
			if got := tt.f.IsIndexed(); got != tt.indexed {
				t.Errorf("IsIndexed() = %v, want %v", got, tt.indexed)
			}
			if got := tt.f.PaletteSize(); got != tt.palette {
				t.Errorf("PaletteSize() = %d, want %d", got, tt.palette)
			}
			if got := tt.f.IsAlphaOnly(); got != tt.alphaOnly {
				t.Errorf("IsAlphaOnly() = %v, want %v", got, tt.alphaOnly)
			}
			if got := tt.f.IsYUV(); got != tt.yuv {
				t.Errorf("IsYUV() = %v, want %v", got, tt.yuv)
			}
			if got := tt.f.IsTiledYUV(); got != tt.tiled {
				t.Errorf("IsTiledYUV() = %v, want %v", got, tt.tiled)
			}
		})
	}
}

func TestTextureFormat(t *testing.T) {
	if got := FormatBGRA8888.TextureFormat(); got != gputypes.TextureFormatBGRA8Unorm {
		t.Errorf("BGRA8888 texture format = %v", got)
	}
	if got := FormatIndex4.TextureFormat(); got != gputypes.TextureFormatUndefined {
		t.Errorf("INDEX_4 texture format = %v, want undefined", got)
	}
}
