package vglite

import (
	"bytes"
	"errors"
	"image/png"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/vglite/internal/blend"
)

func TestSoftwareRendererNoTarget(t *testing.T) {
	r := NewSoftwareRenderer()
	err := r.PushShape(ShapeCommand{Shape: RectShape(Rect{Width: 1, Height: 1})})
	if !errors.Is(err, ErrOutOfResources) {
		t.Errorf("PushShape() error = %v, want ErrOutOfResources", err)
	}
	if err := r.PushPicture(PictureCommand{}); !errors.Is(err, ErrOutOfResources) {
		t.Errorf("PushPicture() error = %v, want ErrOutOfResources", err)
	}
	if err := r.Sync(); err != nil {
		t.Errorf("Sync() on empty queue = %v", err)
	}
}

func TestSoftwareRendererSetTarget(t *testing.T) {
	r := NewSoftwareRenderer()
	tests := []struct {
		name   string
		target *Buffer
		want   error
	}{
		{"nil", nil, ErrInvalidArgument},
		{"empty", &Buffer{Format: FormatBGRA8888}, ErrInvalidArgument},
		{"rgb565", &Buffer{Width: 1, Height: 1, Format: FormatRGB565, Memory: make([]byte, 64)}, ErrNotSupported},
		{"rgba8888", &Buffer{Width: 1, Height: 1, Format: FormatRGBA8888, Memory: make([]byte, 64)}, ErrNotSupported},
		{"short memory", &Buffer{Width: 4, Height: 4, Stride: 16, Format: FormatBGRA8888, Memory: make([]byte, 8)}, ErrInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := r.SetTarget(tt.target); !errors.Is(err, tt.want) {
				t.Errorf("SetTarget() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSoftwareRendererSwitchTargetFlushes(t *testing.T) {
	r := NewSoftwareRenderer()
	a, b := newTarget(t, 2, 2), newTarget(t, 2, 2)
	if err := r.SetTarget(a); err != nil {
		t.Fatal(err)
	}
	cmd := ShapeCommand{Shape: RectShape(Rect{Width: 2, Height: 2}), Transform: Identity(), Color: Red}
	if err := r.PushShape(cmd); err != nil {
		t.Fatal(err)
	}
	if r.Pending() != 1 {
		t.Fatalf("Pending() = %d, want 1", r.Pending())
	}
	if err := r.SetTarget(b); err != nil {
		t.Fatal(err)
	}
	if r.Pending() != 0 || r.Target() != b {
		t.Errorf("after switch Pending() = %d, target switched %v", r.Pending(), r.Target() == b)
	}
	assertPixel(t, a, 1, 1, [4]byte{0, 0, 255, 255})
	assertPixel(t, b, 1, 1, [4]byte{})
}

func TestSoftwareRendererRejectsDegenerateGradient(t *testing.T) {
	r := NewSoftwareRenderer()
	if err := r.SetTarget(newTarget(t, 2, 2)); err != nil {
		t.Fatal(err)
	}
	err := r.PushShape(ShapeCommand{
		Shape:    RectShape(Rect{Width: 2, Height: 2}),
		Gradient: &LinearPaint{X0: 1, Y0: 1, X1: 1, Y1: 1, Transform: Identity()},
	})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("PushShape() error = %v, want ErrInvalidArgument", err)
	}
	if r.Pending() != 0 {
		t.Errorf("Pending() = %d after rejected push", r.Pending())
	}
}

func TestSoftwareRendererPictureClip(t *testing.T) {
	r := NewSoftwareRenderer()
	target := newTarget(t, 4, 1)
	if err := r.SetTarget(target); err != nil {
		t.Fatal(err)
	}
	src := newTarget(t, 4, 1)
	for x := 0; x < 4; x++ {
		putColor(src.Memory[x*4:], Green)
	}
	err := r.PushPicture(PictureCommand{
		Image:         src,
		Transform:     Identity(),
		Filter:        FilterPoint,
		Opacity:       0xFF,
		Clip:          RectShape(Rect{Width: 2, Height: 1}),
		ClipTransform: Identity(),
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Sync(); err != nil {
		t.Fatal(err)
	}
	assertPixel(t, target, 1, 0, [4]byte{0, 255, 0, 255})
	assertPixel(t, target, 3, 0, [4]byte{})
}

func TestXorCoverage(t *testing.T) {
	a := []byte{0, 255, 255, 0}
	xorCoverage(a, []byte{0, 0, 255, 255})
	if want := []byte{0, 255, 0, 255}; !bytes.Equal(a, want) {
		t.Errorf("xorCoverage = %v, want %v", a, want)
	}
}

func TestEncodePNG(t *testing.T) {
	b := newTarget(t, 2, 1)
	putColor(b.Memory, Red)
	putColor(b.Memory[4:], Blue)

	var buf bytes.Buffer
	if err := b.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	r, g, bl, a := img.At(0, 0).RGBA()
	if r>>8 != 255 || g != 0 || bl != 0 || a>>8 != 255 {
		t.Errorf("pixel 0 = %d %d %d %d, want opaque red", r>>8, g>>8, bl>>8, a>>8)
	}

	var alloc Allocator
	back, err := alloc.FromImage(img)
	if err != nil {
		t.Fatalf("FromImage() error = %v", err)
	}
	if got := getColor(back.Memory[4:]); got != Blue {
		t.Errorf("round trip pixel 1 = %#08x, want blue", uint32(got))
	}
}

func TestBlendModeComposite(t *testing.T) {
	tests := []struct {
		mode BlendMode
		want blend.Mode
	}{
		{BlendNone, blend.ModeSourceOver},
		{BlendSrcOver, blend.ModeSourceOver},
		{BlendNormalLVGL, blend.ModeSourceOver},
		{BlendDstIn, blend.ModeDestinationIn},
		{BlendScreen, blend.ModeScreen},
		{BlendAdditive, blend.ModePlus},
		{BlendAdditiveLVGL, blend.ModePlus},
		{BlendMultiply, blend.ModeMultiply},
		{BlendDarken, blend.ModeDarken},
		{BlendLighten, blend.ModeLighten},
		{BlendSubtract, blend.ModeSourceOver},
	}
	for _, tt := range tests {
		if got := tt.mode.compositeMode(); got != tt.want {
			t.Errorf("%v.compositeMode() = %v, want %v", tt.mode, got, tt.want)
		}
	}
}

func TestSoftwareRendererTextureFormats(t *testing.T) {
	r := NewSoftwareRenderer()
	if got := r.TargetFormat(); got != gputypes.TextureFormatBGRA8Unorm {
		t.Fatalf("TargetFormat() = %v, want BGRA8Unorm", got)
	}
	if err := r.SetTarget(newTarget(t, 2, 2)); err != nil {
		t.Fatal(err)
	}
	rgba, err := NewBuffer(2, 2, FormatRGBA8888)
	if err != nil {
		t.Fatal(err)
	}
	err = r.PushPicture(PictureCommand{Image: rgba, Transform: Identity(), Opacity: 0xFF})
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("PushPicture(rgba8888) error = %v, want ErrUnsupportedFormat", err)
	}
	if r.Pending() != 0 {
		t.Errorf("Pending() = %d after rejected picture", r.Pending())
	}
}
