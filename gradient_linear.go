package vglite

import (
	"fmt"

	"github.com/chewxy/math32"
)

// LinearParams are the endpoints of a linear gradient in gradient space.
type LinearParams struct {
	X0, Y0, X1, Y1 float32
}

// Length returns the distance between the endpoints.
func (p LinearParams) Length() float32 {
	dx, dy := p.X1-p.X0, p.Y1-p.Y0
	return math32.Sqrt(dx*dx + dy*dy)
}

// LinearGradient is a continuous linear gradient whose ramp is baked into a
// 1xN ABGR8888 image by Update.
type LinearGradient struct {
	// Allocator creates the ramp image. Nil uses a default Allocator.
	Allocator *Allocator

	params        LinearParams
	spread        SpreadMode
	premultiplied bool
	ramp          []RampStop
	matrix        Matrix
	image         *Buffer
}

// NewLinearGradient creates a gradient with the default ramp and an
// identity matrix.
func NewLinearGradient() *LinearGradient {
	return &LinearGradient{
		params: LinearParams{X1: 1},
		ramp:   DefaultRamp(),
		matrix: Identity(),
	}
}

// Set stores the gradient parameters and canonicalizes the ramp. Degenerate
// endpoints fail with ErrInvalidArgument and leave the gradient unchanged.
func (g *LinearGradient) Set(stops []RampStop, p LinearParams, spread SpreadMode, premultiplied bool) error {
	if p.X0 == p.X1 && p.Y0 == p.Y1 {
		return fmt.Errorf("vglite: set linear gradient: degenerate endpoints: %w", ErrInvalidArgument)
	}
	g.params = p
	g.spread = spread
	g.premultiplied = premultiplied
	g.ramp = CanonicalizeRamp(stops, premultiplied)
	return nil
}

// Update rebuilds the ramp image. The new image is allocated before the old
// one is released, so on failure the previous image stays in place.
func (g *LinearGradient) Update() error {
	length := g.params.Length()
	if !validExtent(length) {
		return fmt.Errorf("vglite: update linear gradient: length %g: %w", length, ErrInvalidArgument)
	}
	ramp := g.Ramp()
	width := RampWidth(length, ramp)

	img, err := allocatorOrDefault(g.Allocator).Allocate(width, 1, FormatABGR8888)
	if err != nil {
		return fmt.Errorf("vglite: update linear gradient: %w", err)
	}
	img.ImageMode = ImageModeNone
	bakeRamp(img.Memory, width, ramp, g.premultiplied)

	if g.image != nil {
		_ = g.image.Free()
	}
	g.image = img
	Logger().Debug("vglite: linear gradient updated", "stops", len(ramp), "width", width)
	return nil
}

// Clear releases the ramp image.
func (g *LinearGradient) Clear() error {
	if g.image == nil {
		return nil
	}
	err := g.image.Free()
	g.image = nil
	return err
}

// Matrix returns the gradient transform. The matrix is passed through to the
// renderer unchanged and may be modified in place.
func (g *LinearGradient) Matrix() *Matrix {
	return &g.matrix
}

// Ramp returns the canonical ramp.
func (g *LinearGradient) Ramp() []RampStop {
	if len(g.ramp) == 0 {
		return defaultRamp
	}
	return g.ramp
}

// Params returns the gradient endpoints.
func (g *LinearGradient) Params() LinearParams {
	return g.params
}

// Spread returns the spread mode.
func (g *LinearGradient) Spread() SpreadMode {
	return g.spread
}

// Image returns the baked ramp image, or nil before the first Update.
func (g *LinearGradient) Image() *Buffer {
	return g.image
}

// allocatorOrDefault dereferences a, treating nil as the zero Allocator.
func allocatorOrDefault(a *Allocator) *Allocator {
	if a == nil {
		return &Allocator{}
	}
	return a
}
