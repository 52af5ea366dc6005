package vglite

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// recordingRenderer captures the commands a Context pushes.
type recordingRenderer struct {
	targets  []*Buffer
	shapes   []ShapeCommand
	pictures []PictureCommand
	syncs    int
}

func (r *recordingRenderer) SetTarget(t *Buffer) error {
	r.targets = append(r.targets, t)
	return nil
}

func (r *recordingRenderer) PushShape(cmd ShapeCommand) error {
	r.shapes = append(r.shapes, cmd)
	return nil
}

func (r *recordingRenderer) PushPicture(cmd PictureCommand) error {
	r.pictures = append(r.pictures, cmd)
	return nil
}

func (r *recordingRenderer) Sync() error {
	r.syncs++
	return nil
}

func newTestContext(t *testing.T, opts ...ContextOption) *Context {
	t.Helper()
	ctx, err := NewContext(opts...)
	if err != nil {
		t.Fatalf("NewContext() error = %v", err)
	}
	return ctx
}

func newTarget(t *testing.T, w, h int) *Buffer {
	t.Helper()
	b, err := NewBuffer(w, h, FormatBGRA8888)
	if err != nil {
		t.Fatalf("NewBuffer() error = %v", err)
	}
	return b
}

func rectPath(t *testing.T, x0, y0, x1, y1 float32) *Path {
	t.Helper()
	p, err := NewPathEncoder(DataFP32).
		MoveTo(x0, y0).LineTo(x1, y0).LineTo(x1, y1).LineTo(x0, y1).Close().
		End().Path(QualityHigh)
	if err != nil {
		t.Fatalf("encode rect: %v", err)
	}
	return p
}

// pixelAt returns the canonical B, G, R, A bytes at (x, y).
func pixelAt(b *Buffer, x, y int) [4]byte {
	p := b.Memory[y*b.Stride+x*4:]
	return [4]byte{p[0], p[1], p[2], p[3]}
}

func assertPixel(t *testing.T, b *Buffer, x, y int, want [4]byte) {
	t.Helper()
	got := pixelAt(b, x, y)
	for i := range got {
		d := int(got[i]) - int(want[i])
		if d < -1 || d > 1 {
			t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			return
		}
	}
}

func TestNewContextDefaults(t *testing.T) {
	ctx := newTestContext(t)
	if _, ok := ctx.Renderer().(*SoftwareRenderer); !ok {
		t.Errorf("Renderer() = %T, want *SoftwareRenderer", ctx.Renderer())
	}
	if !ctx.QueryFeature(FeatureIndexFormat) || ctx.QueryFeature(FeatureDoubleImage) {
		t.Error("default features not reported")
	}
	if ctx.Allocator().Align16 {
		t.Error("Align16 set without FeatureAlign16")
	}

	ctx = newTestContext(t, WithFeatures(DefaultFeatures.With(FeatureAlign16)))
	if !ctx.Allocator().Align16 {
		t.Error("FeatureAlign16 did not set Align16")
	}
}

func TestNewContextUnknownFeatures(t *testing.T) {
	_, err := NewContext(WithFeatures(Features(1) << 31))
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("NewContext() error = %v, want ErrInvalidArgument", err)
	}
}

func TestSetCLUT(t *testing.T) {
	ctx := newTestContext(t)
	if err := ctx.SetCLUT([]Color{Red, Green, Blue}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("SetCLUT(3) error = %v", err)
	}
	colors := []Color{Black, White}
	if err := ctx.SetCLUT(colors); err != nil {
		t.Fatalf("SetCLUT(2) error = %v", err)
	}
	colors[0] = Red
	if diff := cmp.Diff(Palette{Black, White}, ctx.CLUT(FormatIndex1)); diff != "" {
		t.Errorf("CLUT(index1) (-want +got):\n%s", diff)
	}
	if ctx.CLUT(FormatIndex8) != nil {
		t.Error("CLUT(index8) set without SetCLUT")
	}

	ctx = newTestContext(t, WithFeatures(DefaultFeatures.Without(FeatureIndexFormat)))
	if err := ctx.SetCLUT(colors); !errors.Is(err, ErrNotSupported) {
		t.Errorf("SetCLUT without index feature error = %v", err)
	}
}

func TestContextNotSupported(t *testing.T) {
	ctx := newTestContext(t)
	target := newTarget(t, 4, 4)
	calls := map[string]error{
		"Blit2":              ctx.Blit2(target, target, target, nil, nil, BlendSrcOver, FilterPoint),
		"DrawRadialGradient": ctx.DrawRadialGradient(target, rectPath(t, 0, 0, 1, 1), FillNonZero, nil, NewRadialGradient(), Black, BlendSrcOver, FilterLinear),
		"SetScissor":         ctx.SetScissor(0, 0, 1, 1),
		"EnableScissor":      ctx.EnableScissor(),
		"DisableScissor":     ctx.DisableScissor(),
		"SourceGlobalAlpha":  ctx.SetSourceGlobalAlpha(GlobalAlphaOn, 0x80),
		"DestGlobalAlpha":    ctx.SetDestGlobalAlpha(GlobalAlphaOn, 0x80),
		"SetColorKey":        ctx.SetColorKey([4]ColorKey{}),
		"MapBuffer":          ctx.MapBuffer(target, 0),
		"UnmapBuffer":        ctx.UnmapBuffer(target),
		"UploadBuffer":       ctx.UploadBuffer(target, [3][]byte{}, [3]int{}),
		"UploadPath":         ctx.UploadPath(rectPath(t, 0, 0, 1, 1)),
	}
	for name, err := range calls {
		if !errors.Is(err, ErrNotSupported) {
			t.Errorf("%s error = %v, want ErrNotSupported", name, err)
		}
	}
	if _, err := NewArcPath(DataFP32, QualityHigh, nil, 0, 0, 1, 1); !errors.Is(err, ErrNotSupported) {
		t.Errorf("NewArcPath error = %v", err)
	}
}

func TestContextRejectsNonCanonicalTarget(t *testing.T) {
	rec := &recordingRenderer{}
	ctx := newTestContext(t, WithRenderer(rec))
	target, err := NewBuffer(4, 4, FormatRGB565)
	if err != nil {
		t.Fatal(err)
	}
	if err := ctx.Clear(target, nil, Red); !errors.Is(err, ErrNotSupported) {
		t.Errorf("Clear(rgb565) error = %v, want ErrNotSupported", err)
	}
	if err := ctx.Clear(nil, nil, Red); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Clear(nil) error = %v, want ErrInvalidArgument", err)
	}
	if len(rec.targets) != 0 || len(rec.shapes) != 0 {
		t.Errorf("renderer saw %d targets and %d shapes", len(rec.targets), len(rec.shapes))
	}
}

func TestContextFailuresPushNothing(t *testing.T) {
	rec := &recordingRenderer{}
	ctx := newTestContext(t, WithRenderer(rec))
	target := newTarget(t, 4, 4)
	path := rectPath(t, 0, 0, 2, 2)

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"blit nil source", ctx.Blit(target, nil, nil, BlendSrcOver, 0, FilterPoint), ErrInvalidArgument},
		{"draw gradient nil", ctx.DrawGradient(target, path, FillNonZero, nil, nil, BlendSrcOver), ErrInvalidArgument},
		{"draw linear gradient nil", ctx.DrawLinearGradient(target, path, FillNonZero, nil, nil, BlendSrcOver), ErrInvalidArgument},
	}
	for _, tt := range tests {
		if !errors.Is(tt.err, tt.want) {
			t.Errorf("%s: error = %v, want %v", tt.name, tt.err, tt.want)
		}
	}
	if len(rec.shapes) != 0 || len(rec.pictures) != 0 {
		t.Errorf("renderer received %d shapes and %d pictures", len(rec.shapes), len(rec.pictures))
	}
}

func TestContextCommands(t *testing.T) {
	rec := &recordingRenderer{}
	ctx := newTestContext(t, WithRenderer(rec))
	target := newTarget(t, 8, 8)

	rect := Rect{X: 1, Y: 2, Width: 3, Height: 4}
	if err := ctx.Clear(target, &rect, Blue); err != nil {
		t.Fatal(err)
	}
	got := rec.shapes[0]
	if got.Blend != BlendNone || got.Color != Blue || !got.Transform.IsIdentity() {
		t.Errorf("Clear command = %+v", got)
	}

	src := newTarget(t, 2, 2)
	src.ImageMode = ImageModeMultiply
	if err := ctx.Blit(target, src, nil, BlendSrcOver, ARGB(0x40, 0, 0, 0), FilterLinear); err != nil {
		t.Fatal(err)
	}
	if p := rec.pictures[0]; p.Opacity != 0x40 || p.Clip != nil {
		t.Errorf("multiply blit opacity = %#x clip = %v", p.Opacity, p.Clip)
	}

	src.ImageMode = ImageModeNormal
	m := Translate(3, 3)
	if err := ctx.BlitRect(target, src, Rect{Width: 1, Height: 1}, &m, BlendSrcOver, 0, FilterPoint); err != nil {
		t.Fatal(err)
	}
	if p := rec.pictures[1]; p.Opacity != 0xFF || p.Clip == nil || p.ClipTransform != m {
		t.Errorf("BlitRect command = %+v", p)
	}

	path := rectPath(t, 0, 0, 4, 2)
	shear := Identity()
	shear.M[0][1] = 0.5
	if err := ctx.DrawGradient(target, path, FillNonZero, &shear, NewGradient(), BlendSrcOver); err != nil {
		t.Fatal(err)
	}
	g := rec.shapes[1].Gradient
	if g == nil {
		t.Fatal("DrawGradient pushed no gradient")
	}
	want := [4]float32{0, 0, 0, 2}
	if diff := cmp.Diff(want, [4]float32{g.X0, g.Y0, g.X1, g.Y1}); diff != "" {
		t.Errorf("vertical gradient endpoints (-want +got):\n%s", diff)
	}
	if g.Spread != SpreadReflect {
		t.Errorf("gradient spread = %v, want reflect", g.Spread)
	}

	if err := ctx.Finish(); err != nil || rec.syncs != 1 {
		t.Errorf("Finish() = %v after %d syncs", err, rec.syncs)
	}
}

func TestContextBlit2(t *testing.T) {
	rec := &recordingRenderer{}
	ctx := newTestContext(t, WithRenderer(rec), WithFeatures(DefaultFeatures.With(FeatureDoubleImage)))
	target := newTarget(t, 4, 4)
	src := newTarget(t, 1, 1)
	m := Translate(2, 0)
	if err := ctx.Blit2(target, src, src, nil, &m, BlendSrcOver, FilterPoint); err != nil {
		t.Fatal(err)
	}
	if len(rec.pictures) != 2 || rec.pictures[1].Transform != m {
		t.Errorf("Blit2 pushed %+v", rec.pictures)
	}
}

func TestClearFillsTarget(t *testing.T) {
	ctx := newTestContext(t)
	target := newTarget(t, 4, 4)
	if err := ctx.Clear(target, nil, Red); err != nil {
		t.Fatal(err)
	}
	if err := ctx.Finish(); err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			assertPixel(t, target, x, y, [4]byte{0, 0, 255, 255})
		}
	}
}

func TestDrawSolidRect(t *testing.T) {
	ctx := newTestContext(t)
	target := newTarget(t, 8, 8)
	if err := ctx.Draw(target, rectPath(t, 2, 2, 6, 6), FillNonZero, nil, BlendSrcOver, Blue); err != nil {
		t.Fatal(err)
	}
	if err := ctx.Finish(); err != nil {
		t.Fatal(err)
	}
	assertPixel(t, target, 4, 4, [4]byte{255, 0, 0, 255})
	assertPixel(t, target, 0, 0, [4]byte{})
	assertPixel(t, target, 7, 7, [4]byte{})
}

func TestDrawClipsToBounds(t *testing.T) {
	ctx := newTestContext(t)
	target := newTarget(t, 8, 8)
	data, err := NewPathEncoder(DataFP32).
		MoveTo(0, 0).LineTo(8, 0).LineTo(8, 8).LineTo(0, 8).Close().End().Bytes()
	if err != nil {
		t.Fatal(err)
	}
	path, err := NewPath(DataFP32, QualityHigh, data, 0, 0, 4, 4)
	if err != nil {
		t.Fatal(err)
	}
	if err := ctx.Draw(target, path, FillNonZero, nil, BlendSrcOver, Green); err != nil {
		t.Fatal(err)
	}
	if err := ctx.Finish(); err != nil {
		t.Fatal(err)
	}
	assertPixel(t, target, 2, 2, [4]byte{0, 255, 0, 255})
	assertPixel(t, target, 6, 6, [4]byte{})
}

func TestDrawFillRules(t *testing.T) {
	data, err := NewPathEncoder(DataFP32).
		MoveTo(0, 0).LineTo(8, 0).LineTo(8, 8).LineTo(0, 8).Close().
		MoveTo(2, 2).LineTo(6, 2).LineTo(6, 6).LineTo(2, 6).Close().
		End().Bytes()
	if err != nil {
		t.Fatal(err)
	}
	path, err := NewPath(DataFP32, QualityHigh, data, 0, 0, 8, 8)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		rule   FillRule
		center [4]byte
	}{
		{FillNonZero, [4]byte{0, 0, 255, 255}},
		{FillEvenOdd, [4]byte{}},
	}
	for _, tt := range tests {
		ctx := newTestContext(t)
		target := newTarget(t, 8, 8)
		if err := ctx.Draw(target, path, tt.rule, nil, BlendSrcOver, Red); err != nil {
			t.Fatal(err)
		}
		if err := ctx.Finish(); err != nil {
			t.Fatal(err)
		}
		assertPixel(t, target, 4, 4, tt.center)
		assertPixel(t, target, 1, 1, [4]byte{0, 0, 255, 255})
	}
}

func TestBlitTranslated(t *testing.T) {
	ctx := newTestContext(t)
	target := newTarget(t, 4, 4)
	src := newTarget(t, 1, 1)
	putColor(src.Memory, Red)

	m := Translate(1, 1)
	if err := ctx.Blit(target, src, &m, BlendSrcOver, 0, FilterPoint); err != nil {
		t.Fatal(err)
	}
	putColor(src.Memory, Blue)
	if err := ctx.Finish(); err != nil {
		t.Fatal(err)
	}
	assertPixel(t, target, 1, 1, [4]byte{0, 0, 255, 255})
	assertPixel(t, target, 0, 0, [4]byte{})
	assertPixel(t, target, 2, 2, [4]byte{})
}

func TestBlitMultiplyImageMode(t *testing.T) {
	ctx := newTestContext(t)
	target := newTarget(t, 1, 1)
	src := newTarget(t, 1, 1)
	putColor(src.Memory, White)
	src.ImageMode = ImageModeMultiply

	if err := ctx.Blit(target, src, nil, BlendSrcOver, ARGB(0x80, 0, 0, 0), FilterPoint); err != nil {
		t.Fatal(err)
	}
	if err := ctx.Finish(); err != nil {
		t.Fatal(err)
	}
	assertPixel(t, target, 0, 0, [4]byte{128, 128, 128, 128})
}

func TestBlitAlphaTinted(t *testing.T) {
	ctx := newTestContext(t)
	target := newTarget(t, 1, 1)
	src, err := NewBuffer(1, 1, FormatA8)
	if err != nil {
		t.Fatal(err)
	}
	src.Memory[0] = 0xFF

	if err := ctx.Blit(target, src, nil, BlendSrcOver, Red, FilterPoint); err != nil {
		t.Fatal(err)
	}
	if err := ctx.Finish(); err != nil {
		t.Fatal(err)
	}
	assertPixel(t, target, 0, 0, [4]byte{0, 0, 255, 255})
}

func TestDrawGradientHorizontal(t *testing.T) {
	ctx := newTestContext(t)
	target := newTarget(t, 8, 1)
	if err := ctx.DrawGradient(target, rectPath(t, 0, 0, 8, 1), FillNonZero, nil, NewGradient(), BlendSrcOver); err != nil {
		t.Fatal(err)
	}
	if err := ctx.Finish(); err != nil {
		t.Fatal(err)
	}
	prev := -1
	for x := 0; x < 8; x++ {
		r := int(pixelAt(target, x, 0)[2])
		if r <= prev {
			t.Errorf("red at x=%d is %d, not above %d", x, r, prev)
		}
		prev = r
	}
	if r := pixelAt(target, 0, 0)[2]; r >= 40 {
		t.Errorf("red at x=0 = %d, want < 40", r)
	}
	if r := pixelAt(target, 7, 0)[2]; r <= 215 {
		t.Errorf("red at x=7 = %d, want > 215", r)
	}
}

func TestContextInfo(t *testing.T) {
	ctx := newTestContext(t)
	if got := ctx.Info().APIVersion; got != 0x30000 {
		t.Errorf("APIVersion = %#x", got)
	}
	name, chip, rev := ctx.ProductInfo()
	if name != "GCNanoLiteV" || chip != 0x265 || rev != 0x2000 {
		t.Errorf("ProductInfo() = %q %#x %#x", name, chip, rev)
	}
}

func TestDither(t *testing.T) {
	ctx := newTestContext(t)
	if err := ctx.EnableDither(); err != nil || !ctx.Dithering() {
		t.Fatalf("EnableDither() = %v, dithering %v", err, ctx.Dithering())
	}
	if err := ctx.DisableDither(); err != nil || ctx.Dithering() {
		t.Fatalf("DisableDither() = %v, dithering %v", err, ctx.Dithering())
	}

	ctx = newTestContext(t, WithFeatures(DefaultFeatures.Without(FeatureDither)))
	if err := ctx.EnableDither(); !errors.Is(err, ErrNotSupported) {
		t.Errorf("EnableDither() without feature = %v", err)
	}
}

func TestCloseDropsCLUT(t *testing.T) {
	ctx := newTestContext(t)
	if err := ctx.SetCLUT([]Color{Black, White}); err != nil {
		t.Fatal(err)
	}
	if err := ctx.Close(); err != nil {
		t.Fatal(err)
	}
	if ctx.CLUT(FormatIndex1) != nil {
		t.Error("CLUT survived Close")
	}
}
