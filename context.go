package vglite

import (
	"fmt"
	"log/slog"
)

// Context is the drawing state of one VGLite client: its renderer, color
// lookup tables, feature set and allocation rules.
//
// A Context is not safe for concurrent use. Independent Contexts may be used
// from different goroutines.
type Context struct {
	renderer  Renderer
	allocator Allocator
	features  Features
	clut      clutSet
	unpacker  Unpacker
	log       *slog.Logger
	dither    bool
}

// NewContext creates a Context. Without options it renders with a
// SoftwareRenderer and reports DefaultFeatures.
func NewContext(opts ...ContextOption) (*Context, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.features>>featureCount != 0 {
		return nil, fmt.Errorf("vglite: new context: unknown features %#x: %w", uint32(o.features), ErrInvalidArgument)
	}
	if o.renderer == nil {
		o.renderer = NewSoftwareRenderer()
	}

	c := &Context{
		renderer: o.renderer,
		features: o.features,
		log:      o.logger,
	}
	if o.allocator != nil {
		c.allocator = *o.allocator
	}
	if c.features.Has(FeatureAlign16) {
		c.allocator.Align16 = true
	}
	c.unpacker.Align16 = c.allocator.Align16

	c.logger().Info("vglite: context created", "features", c.features.String(),
		"align16", c.allocator.Align16)
	return c, nil
}

// logger returns the Context logger, falling back to the package logger.
func (c *Context) logger() *slog.Logger {
	if c.log != nil {
		return c.log
	}
	return Logger()
}

// Allocator returns the allocation rules of the Context. Buffers allocated
// with it match the row alignment the Context expects from indexed sources.
func (c *Context) Allocator() *Allocator {
	return &c.allocator
}

// Renderer returns the renderer commands are pushed to.
func (c *Context) Renderer() Renderer {
	return c.renderer
}

// QueryFeature reports whether f is enabled.
func (c *Context) QueryFeature(f Feature) bool {
	return c.features.Has(f)
}

// SetCLUT installs the palette for the indexed format whose palette size is
// len(colors): 2, 4, 16 or 256 entries.
func (c *Context) SetCLUT(colors []Color) error {
	if !c.features.Has(FeatureIndexFormat) {
		return fmt.Errorf("vglite: set CLUT: %w", ErrNotSupported)
	}
	return c.clut.set(colors)
}

// CLUT returns the palette used to decode buffers of format f, or nil if none
// is installed.
func (c *Context) CLUT(f Format) Palette {
	return c.clut.forFormat(f)
}

// EnableDither turns dithering on. The software renderer does not dither;
// the call only records the state.
func (c *Context) EnableDither() error {
	if !c.features.Has(FeatureDither) {
		return fmt.Errorf("vglite: enable dither: %w", ErrNotSupported)
	}
	c.dither = true
	return nil
}

// DisableDither turns dithering off.
func (c *Context) DisableDither() error {
	if !c.features.Has(FeatureDither) {
		return fmt.Errorf("vglite: disable dither: %w", ErrNotSupported)
	}
	c.dither = false
	return nil
}

// Dithering reports whether dithering was enabled.
func (c *Context) Dithering() bool {
	return c.dither
}

// setTarget validates target and hands it to the renderer.
func (c *Context) setTarget(target *Buffer) error {
	if target == nil {
		return fmt.Errorf("vglite: set target: %w", ErrInvalidArgument)
	}
	if target.Format != CanonicalFormat {
		return fmt.Errorf("vglite: set target %v: %w", target.Format, ErrNotSupported)
	}
	return c.renderer.SetTarget(target)
}

// picture decodes source for drawing and returns the opacity its image mode
// implies.
func (c *Context) picture(source *Buffer, color Color) (*Buffer, uint8, error) {
	if source == nil {
		return nil, 0, fmt.Errorf("vglite: picture: nil source: %w", ErrInvalidArgument)
	}
	img, err := c.unpacker.Unpack(source, c.clut.forFormat(source.Format), color)
	if err != nil {
		return nil, 0, err
	}
	opacity := uint8(0xFF)
	if source.ImageMode == ImageModeMultiply {
		opacity = color.A()
	}
	return img, opacity, nil
}

// Clear fills rect of target with color, or the whole target if rect is nil.
// The fill uses the renderer's default source-over blending.
func (c *Context) Clear(target *Buffer, rect *Rect, color Color) error {
	if err := c.setTarget(target); err != nil {
		return err
	}
	r := Rect{Width: float32(target.Width), Height: float32(target.Height)}
	if rect != nil {
		r = *rect
	}
	return c.renderer.PushShape(ShapeCommand{
		Shape:     RectShape(r),
		Transform: Identity(),
		Color:     color,
	})
}

// Blit draws source into target transformed by m. A nil matrix is the
// identity. Alpha-only sources are tinted with color and sources in
// ImageModeMultiply take their opacity from its alpha.
func (c *Context) Blit(target, source *Buffer, m *Matrix, mode BlendMode, color Color, filter Filter) error {
	if err := c.setTarget(target); err != nil {
		return err
	}
	img, opacity, err := c.picture(source, color)
	if err != nil {
		return err
	}
	return c.renderer.PushPicture(PictureCommand{
		Image:     img,
		Transform: matrixOrIdentity(m),
		Blend:     mode,
		Filter:    filter,
		Opacity:   opacity,
	})
}

// Blit2 draws two sources in order. It requires FeatureDoubleImage.
func (c *Context) Blit2(target, source0, source1 *Buffer, m0, m1 *Matrix, mode BlendMode, filter Filter) error {
	if !c.features.Has(FeatureDoubleImage) {
		return fmt.Errorf("vglite: blit2: %w", ErrNotSupported)
	}
	if err := c.Blit(target, source0, m0, mode, 0, filter); err != nil {
		return err
	}
	return c.Blit(target, source1, m1, mode, 0, filter)
}

// BlitRect draws the rect portion of source, in source coordinates, into
// target transformed by m.
func (c *Context) BlitRect(target, source *Buffer, rect Rect, m *Matrix, mode BlendMode, color Color, filter Filter) error {
	if err := c.setTarget(target); err != nil {
		return err
	}
	img, opacity, err := c.picture(source, color)
	if err != nil {
		return err
	}
	t := matrixOrIdentity(m)
	return c.renderer.PushPicture(PictureCommand{
		Image:         img,
		Transform:     t,
		Blend:         mode,
		Filter:        filter,
		Opacity:       opacity,
		Clip:          RectShape(rect),
		ClipTransform: t,
	})
}

// Draw fills path with color. The fill is clipped to the path bounding box.
func (c *Context) Draw(target *Buffer, path *Path, rule FillRule, m *Matrix, mode BlendMode, color Color) error {
	if err := c.setTarget(target); err != nil {
		return err
	}
	shape, err := ShapeFromPath(path, DecodeOptions{})
	if err != nil {
		return err
	}
	return c.renderer.PushShape(ShapeCommand{
		Shape:     shape,
		Transform: matrixOrIdentity(m),
		FillRule:  rule,
		Blend:     mode,
		Color:     color,
	})
}

// PatternMode selects how a pattern fills the path outside the image.
type PatternMode uint8

const (
	// PatternColor fills outside the image with the pattern color.
	PatternColor PatternMode = iota
	// PatternPad repeats the edge pixels of the image.
	PatternPad
)

// DrawPattern fills path with pattern. The pattern is positioned by
// patternMatrix and masked by the path transformed by pathMatrix. Alpha-only
// patterns are tinted with patternColor. The pattern mode and color are
// accepted for compatibility; uncovered area stays untouched.
func (c *Context) DrawPattern(target *Buffer, path *Path, rule FillRule, pathMatrix *Matrix,
	pattern *Buffer, patternMatrix *Matrix, mode BlendMode, _ PatternMode,
	patternColor, _ Color, filter Filter) error {
	if err := c.setTarget(target); err != nil {
		return err
	}
	clip, err := ShapeFromPath(path, DecodeOptions{})
	if err != nil {
		return err
	}
	img, opacity, err := c.picture(pattern, patternColor)
	if err != nil {
		return err
	}
	return c.renderer.PushPicture(PictureCommand{
		Image:         img,
		Transform:     matrixOrIdentity(patternMatrix),
		Blend:         mode,
		Filter:        filter,
		Opacity:       opacity,
		Clip:          clip,
		ClipTransform: matrixOrIdentity(pathMatrix),
		ClipFillRule:  rule,
	})
}

// DrawGradient fills path with a simple gradient. The gradient runs across
// the path bounding box, horizontally unless m has a shear in M[0][1], in
// which case it runs vertically. The ramp is reflected outside the box.
func (c *Context) DrawGradient(target *Buffer, path *Path, rule FillRule, m *Matrix, g *Gradient, mode BlendMode) error {
	if g == nil {
		return fmt.Errorf("vglite: draw gradient: nil gradient: %w", ErrInvalidArgument)
	}
	if err := c.setTarget(target); err != nil {
		return err
	}
	shape, err := ShapeFromPath(path, DecodeOptions{})
	if err != nil {
		return err
	}

	t := matrixOrIdentity(m)
	minX, minY, maxX, maxY := path.Bounds[0], path.Bounds[1], path.Bounds[2], path.Bounds[3]
	paint := &LinearPaint{
		X0: minX, Y0: minY, X1: maxX, Y1: minY,
		Transform: g.matrix,
		Stops:     g.colorStops(),
		Spread:    SpreadReflect,
	}
	if t.M[0][1] != 0 {
		paint.X1, paint.Y1 = minX, maxY
	}
	return c.renderer.PushShape(ShapeCommand{
		Shape:     shape,
		Transform: t,
		FillRule:  rule,
		Blend:     mode,
		Gradient:  paint,
	})
}

// DrawLinearGradient fills path with a continuous linear gradient using the
// gradient's endpoints, spread mode and ramp.
func (c *Context) DrawLinearGradient(target *Buffer, path *Path, rule FillRule, m *Matrix, g *LinearGradient, mode BlendMode) error {
	if g == nil {
		return fmt.Errorf("vglite: draw linear gradient: nil gradient: %w", ErrInvalidArgument)
	}
	if err := c.setTarget(target); err != nil {
		return err
	}
	shape, err := ShapeFromPath(path, DecodeOptions{})
	if err != nil {
		return err
	}
	p := g.Params()
	return c.renderer.PushShape(ShapeCommand{
		Shape:     shape,
		Transform: matrixOrIdentity(m),
		FillRule:  rule,
		Blend:     mode,
		Gradient: &LinearPaint{
			X0: p.X0, Y0: p.Y0, X1: p.X1, Y1: p.Y1,
			Transform: g.matrix,
			Stops:     rampColorStops(g.Ramp()),
			Spread:    g.Spread(),
		},
	})
}

// DrawRadialGradient is not supported.
func (c *Context) DrawRadialGradient(*Buffer, *Path, FillRule, *Matrix, *RadialGradient, Color, BlendMode, Filter) error {
	return fmt.Errorf("vglite: draw radial gradient: %w", ErrNotSupported)
}

// Finish renders all pending commands and waits for completion.
func (c *Context) Finish() error {
	if err := c.renderer.Sync(); err != nil {
		return fmt.Errorf("vglite: finish: %w", err)
	}
	return nil
}

// Flush behaves like Finish.
func (c *Context) Flush() error {
	return c.Finish()
}

// Close renders pending commands and drops the installed palettes.
func (c *Context) Close() error {
	err := c.Finish()
	c.clut = clutSet{}
	c.logger().Info("vglite: context closed")
	return err
}
