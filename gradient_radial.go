package vglite

import "fmt"

// RadialParams describe a radial gradient: center, radius and focal point.
type RadialParams struct {
	Cx, Cy float32
	R      float32
	Fx, Fy float32
}

// RadialGradient is a continuous radial gradient whose ramp is baked into a
// 1xN ABGR8888 image, N a multiple of 16.
//
// Drawing radial gradients is not supported; the baked image can still be
// used as a pattern source.
type RadialGradient struct {
	// Allocator creates the ramp image. Nil uses a default Allocator.
	Allocator *Allocator

	params        RadialParams
	spread        SpreadMode
	premultiplied bool
	ramp          []RampStop
	matrix        Matrix
	image         *Buffer
}

// NewRadialGradient creates a gradient with the default ramp, a unit radius
// and an identity matrix.
func NewRadialGradient() *RadialGradient {
	return &RadialGradient{
		params: RadialParams{R: 1},
		ramp:   DefaultRamp(),
		matrix: Identity(),
	}
}

// Set stores the gradient parameters and canonicalizes the ramp. A
// non-positive radius fails with ErrInvalidArgument and leaves the gradient
// unchanged.
func (g *RadialGradient) Set(stops []RampStop, p RadialParams, spread SpreadMode, premultiplied bool) error {
	if p.R <= 0 {
		return fmt.Errorf("vglite: set radial gradient: radius %g: %w", p.R, ErrInvalidArgument)
	}
	g.params = p
	g.spread = spread
	g.premultiplied = premultiplied
	g.ramp = CanonicalizeRamp(stops, premultiplied)
	return nil
}

// Update rebuilds the ramp image. Every texel of the row, including the
// alignment padding, is filled.
func (g *RadialGradient) Update() error {
	if !validExtent(g.params.R) {
		return fmt.Errorf("vglite: update radial gradient: radius %g: %w", g.params.R, ErrInvalidArgument)
	}
	ramp := g.Ramp()
	width := alignUp(RampWidth(g.params.R, ramp), pixelAlign)

	img, err := allocatorOrDefault(g.Allocator).Allocate(width, 1, FormatABGR8888)
	if err != nil {
		return fmt.Errorf("vglite: update radial gradient: %w", err)
	}
	img.ImageMode = ImageModeNone
	texels := img.Stride / 4
	bakeRamp(img.Memory, texels, ramp, g.premultiplied)

	if g.image != nil {
		_ = g.image.Free()
	}
	g.image = img
	Logger().Debug("vglite: radial gradient updated", "stops", len(ramp), "width", width, "texels", texels)
	return nil
}

// Clear releases the ramp image.
func (g *RadialGradient) Clear() error {
	if g.image == nil {
		return nil
	}
	err := g.image.Free()
	g.image = nil
	return err
}

// Matrix returns the gradient transform.
func (g *RadialGradient) Matrix() *Matrix {
	return &g.matrix
}

// Ramp returns the canonical ramp.
func (g *RadialGradient) Ramp() []RampStop {
	if len(g.ramp) == 0 {
		return defaultRamp
	}
	return g.ramp
}

// Params returns the gradient geometry.
func (g *RadialGradient) Params() RadialParams {
	return g.params
}

// Spread returns the spread mode.
func (g *RadialGradient) Spread() SpreadMode {
	return g.spread
}

// Image returns the baked ramp image, or nil before the first Update.
func (g *RadialGradient) Image() *Buffer {
	return g.image
}
